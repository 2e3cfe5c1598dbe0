package search

import "math"

const (
	// DefaultThreshold is the minimum normalized relevance for a result.
	DefaultThreshold = 0.3

	// DefaultLimit is the maximum number of results per query.
	DefaultLimit = 40
)

// Config holds the ranking parameters.
type Config struct {
	// Threshold is the minimum relevance, in [0, 1], a record needs to be returned.
	// Default: 0.3
	Threshold float64

	// Limit is the maximum number of records returned.
	// Default: 40
	Limit int
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithThreshold sets the relevance threshold.
func WithThreshold(threshold float64) ConfigOption {
	return func(c *Config) {
		c.Threshold = threshold
	}
}

// WithLimit sets the maximum number of results.
func WithLimit(limit int) ConfigOption {
	return func(c *Config) {
		c.Limit = limit
	}
}

// DefaultConfig returns a Config with the default threshold and limit.
func DefaultConfig() *Config {
	return &Config{
		Threshold: DefaultThreshold,
		Limit:     DefaultLimit,
	}
}

// NewConfig creates a Config with the default values and applies the provided options.
// The result is normalized.
//
// Example:
//
//	cfg := NewConfig(
//	    WithThreshold(0.5),
//	    WithLimit(10),
//	)
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	cfg.Normalize()
	return cfg
}

// Normalize replaces out-of-range values with their defaults: a threshold
// that is NaN or outside [0, 1], and a limit that is not positive.
// Reports whether anything was replaced.
func (c *Config) Normalize() bool {
	changed := false
	if math.IsNaN(c.Threshold) || c.Threshold < 0 || c.Threshold > 1 {
		c.Threshold = DefaultThreshold
		changed = true
	}
	if c.Limit <= 0 {
		c.Limit = DefaultLimit
		changed = true
	}
	return changed
}
