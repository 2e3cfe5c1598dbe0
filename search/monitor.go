package search

import (
	"log/slog"

	"github.com/poiesic/dairyreg/core"
)

// SearchMonitor provides hooks to observe a search.
// Hooks are called from the searching goroutine, in catalog order, after the
// scoring pass has finished.
type SearchMonitor interface {
	Start(query string)
	Candidate(result *core.SearchResult)
	BelowThreshold(record *core.Establishment, field core.Field, score float64)
	Finish(results []*core.SearchResult)
}

// noopMonitor is a no-op implementation of SearchMonitor
type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                                                {}
func (n *noopMonitor) Candidate(_ *core.SearchResult)                                {}
func (n *noopMonitor) BelowThreshold(_ *core.Establishment, _ core.Field, _ float64) {}
func (n *noopMonitor) Finish(_ []*core.SearchResult)                                 {}

// LogMonitor reports every search step at debug level.
type LogMonitor struct {
	logger *slog.Logger
}

var _ SearchMonitor = (*LogMonitor)(nil)

// NewLogMonitor creates a monitor writing to logger, or slog.Default() if nil.
func NewLogMonitor(logger *slog.Logger) *LogMonitor {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogMonitor{logger: logger}
}

func (m *LogMonitor) Start(query string) {
	m.logger.Debug("search started", "query", query)
}

func (m *LogMonitor) Candidate(result *core.SearchResult) {
	m.logger.Debug("candidate",
		"regNo", result.Record.RegNo,
		"field", result.Field.String(),
		"score", result.Score)
}

func (m *LogMonitor) BelowThreshold(record *core.Establishment, field core.Field, score float64) {
	m.logger.Debug("below threshold", "regNo", record.RegNo, "field", field.String(), "score", score)
}

func (m *LogMonitor) Finish(results []*core.SearchResult) {
	m.logger.Debug("search finished", "results", len(results))
}
