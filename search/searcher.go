package search

import (
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/dairyreg/core"
	"github.com/poiesic/dairyreg/index"
	"github.com/poiesic/dairyreg/match"
)

// DefaultParallelThreshold is the catalog size from which the scoring pass
// is split across the worker pool.
const DefaultParallelThreshold = 2048

// Searcher ranks a shared, read-only index. It is safe for concurrent use.
type Searcher struct {
	index             *index.Index
	config            *Config
	pool              *ants.Pool
	parallelThreshold int
	monitor           SearchMonitor
	logger            *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithConfig sets the ranking parameters. Invalid values fall back to defaults.
func WithConfig(cfg *Config) Option {
	return func(s *Searcher) error {
		if cfg == nil {
			cfg = DefaultConfig()
		}
		c := *cfg
		if c.Normalize() {
			s.logger.Warn("invalid search configuration replaced with defaults",
				"threshold", cfg.Threshold, "limit", cfg.Limit)
		}
		s.config = &c
		return nil
	}
}

// WithPoolSize sets the worker pool size for the parallel scoring pass.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(s *Searcher) error {
		if size < 1 {
			size = 1
		}

		// Release old pool
		if s.pool != nil {
			s.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		s.pool = pool
		return nil
	}
}

// WithParallelThreshold sets the catalog size from which scoring is split
// across the worker pool. Values below 1 disable parallel scoring.
func WithParallelThreshold(n int) Option {
	return func(s *Searcher) error {
		s.parallelThreshold = n
		return nil
	}
}

// WithMonitor sets hooks called while ranking.
func WithMonitor(monitor SearchMonitor) Option {
	return func(s *Searcher) error {
		if monitor == nil {
			monitor = &noopMonitor{}
		}
		s.monitor = monitor
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// NewSearcher creates a new searcher over idx.
func NewSearcher(idx *index.Index, opts ...Option) (*Searcher, error) {
	if idx == nil {
		return nil, ErrIndexRequired
	}

	// Default pool size
	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	s := &Searcher{
		index:             idx,
		config:            DefaultConfig(),
		pool:              pool,
		parallelThreshold: DefaultParallelThreshold,
		monitor:           &noopMonitor{},
		logger:            slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(s); err != nil {
			s.pool.Release()
			return nil, err
		}
	}

	return s, nil
}

// Close releases the worker pool.
func (s *Searcher) Close() {
	s.pool.Release()
}

// Config returns a copy of the ranking parameters in use.
func (s *Searcher) Config() Config {
	return *s.config
}

// Search returns the establishments best matching query, best first.
func (s *Searcher) Search(query string) []*core.Establishment {
	return records(s.SearchResults(query))
}

// SearchResults returns the ranked results for query with their scores.
func (s *Searcher) SearchResults(query string) []*core.SearchResult {
	q, ok := prepareQuery(query)
	if !ok {
		return []*core.SearchResult{}
	}

	start := time.Now()
	s.monitor.Start(q.Text())

	slots := make([]scored, s.index.Len())
	if s.parallelThreshold > 0 && s.index.Len() >= s.parallelThreshold {
		s.scoreParallel(q, slots)
	} else {
		scoreRange(q, s.index.Records(), slots)
	}

	results := collect(s.index, slots, s.config, s.monitor)
	s.monitor.Finish(results)

	s.logger.Debug("search complete",
		"query", q.Text(),
		"records", s.index.Len(),
		"results", len(results),
		"elapsed", time.Since(start))

	return results
}

// scoreParallel splits the catalog into one chunk per worker. Each chunk
// writes only its own slots, so no locking is needed. A chunk the pool
// refuses is scored on the calling goroutine.
func (s *Searcher) scoreParallel(q match.Query, slots []scored) {
	records := s.index.Records()
	workers := s.pool.Cap()
	if workers < 1 {
		workers = 1
	}
	chunk := (len(records) + workers - 1) / workers

	var wg sync.WaitGroup
	for lo := 0; lo < len(records); lo += chunk {
		hi := min(lo+chunk, len(records))
		wg.Add(1)
		err := s.pool.Submit(func() {
			defer wg.Done()
			scoreRange(q, records[lo:hi], slots[lo:hi])
		})
		if err != nil {
			s.logger.Warn("worker pool rejected scoring task, scoring inline", "err", err)
			scoreRange(q, records[lo:hi], slots[lo:hi])
			wg.Done()
		}
	}
	wg.Wait()
}
