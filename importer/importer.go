package importer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/poiesic/dairyreg/core"
	"github.com/poiesic/dairyreg/storage"
)

// Result describes the outcome of an import.
type Result struct {
	// Info is the catalog metadata now held by the repository.
	Info *core.CatalogInfo

	// Imported is the number of establishments written. Zero when Unchanged.
	Imported int

	// Unchanged is true when the stored catalog already had the same digest.
	Unchanged bool
}

// Importer writes a catalog into a CatalogRepository.
type Importer struct {
	repo     storage.CatalogRepository
	config   *Config
	progress io.Writer
	logger   *slog.Logger
	now      func() time.Time
}

// Option configures an Importer.
type Option func(*Importer) error

// WithLogger sets the logger. A nil logger falls back to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(im *Importer) error {
		if logger == nil {
			logger = slog.Default()
		}
		im.logger = logger
		return nil
	}
}

// WithProgress sets where progress lines are written. Nil discards them.
func WithProgress(w io.Writer) Option {
	return func(im *Importer) error {
		if w == nil {
			w = io.Discard
		}
		im.progress = w
		return nil
	}
}

// WithClock overrides the clock used to stamp CatalogInfo.ImportedAt.
func WithClock(now func() time.Time) Option {
	return func(im *Importer) error {
		if now == nil {
			return fmt.Errorf("%w: clock must not be nil", ErrInvalidConfig)
		}
		im.now = now
		return nil
	}
}

// NewImporter creates an importer. A nil config uses DefaultConfig.
func NewImporter(repo storage.CatalogRepository, config *Config, opts ...Option) (*Importer, error) {
	if repo == nil {
		return nil, ErrRepositoryRequired
	}
	if config == nil {
		config = DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	im := &Importer{
		repo:     repo,
		config:   config,
		progress: io.Discard,
		logger:   slog.Default(),
		now:      time.Now,
	}
	for _, opt := range opts {
		if err := opt(im); err != nil {
			return nil, err
		}
	}
	im.logger = im.logger.With("component", "importer")
	return im, nil
}

// Import replaces the repository's catalog with records.
// The whole catalog is validated first; a data integrity violation aborts the
// import before anything is written. source is recorded in the catalog
// metadata.
func (im *Importer) Import(ctx context.Context, records []core.Establishment, source string) (*Result, error) {
	if err := core.ValidateCatalog(records); err != nil {
		return nil, err
	}

	digest := core.CatalogDigest(records)

	current, err := im.repo.LoadCatalogInfo(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog info: %w", err)
	}
	if current != nil && current.Digest == digest && current.Count == len(records) && !im.config.Force {
		im.logger.Info("catalog unchanged, skipping import", "digest", digest.String(), "count", current.Count)
		fmt.Fprintf(im.progress, "Catalog unchanged (%d establishments, digest %s)\n", current.Count, digest)
		return &Result{Info: current, Unchanged: true}, nil
	}

	if err := im.repo.Clear(ctx); err != nil {
		return nil, fmt.Errorf("failed to clear catalog: %w", err)
	}

	fmt.Fprintf(im.progress, "Importing %d establishments (batch size: %d)\n", len(records), im.config.BatchSize)

	tracker := NewProgressTracker(im.progress, len(records), im.config.ReportInterval)
	tracker.Start()

	for start := 0; start < len(records); start += im.config.BatchSize {
		end := min(start+im.config.BatchSize, len(records))
		if err := im.writeBatch(ctx, records[start:end]); err != nil {
			return nil, fmt.Errorf("failed to write establishments %d-%d: %w", start, end-1, err)
		}
		tracker.Increment(end - start)
	}
	tracker.Finish()

	info := &core.CatalogInfo{
		Digest:     digest,
		Count:      len(records),
		Source:     source,
		ImportedAt: im.now().UTC(),
	}
	if err := im.repo.SaveCatalogInfo(ctx, info); err != nil {
		return nil, fmt.Errorf("failed to save catalog info: %w", err)
	}

	elapsed := tracker.Elapsed()
	im.logger.Info("catalog imported", "count", info.Count, "digest", digest.String(), "source", source, "elapsed", elapsed)
	fmt.Fprintf(im.progress, "Import complete. Wrote %d establishments in %v\n", info.Count, elapsed.Round(time.Millisecond))

	return &Result{Info: info, Imported: info.Count}, nil
}

func (im *Importer) writeBatch(ctx context.Context, batch []core.Establishment) error {
	ptrs := make([]*core.Establishment, len(batch))
	for i := range batch {
		ptrs[i] = &batch[i]
	}
	return RetryWithBackoff(ctx, func() error {
		return im.repo.AddEstablishments(ctx, ptrs...)
	}, im.config.MaxRetries, im.config.RetryDelay, isPermanent)
}

// isPermanent reports errors a retry cannot fix.
func isPermanent(err error) bool {
	return errors.Is(err, storage.ErrDuplicateKey) ||
		errors.Is(err, storage.ErrStorageClosed) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}
