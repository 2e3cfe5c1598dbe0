package importer

import (
	"fmt"
	"time"
)

// Config holds importer settings.
type Config struct {
	// BatchSize is the number of establishments written per transaction
	BatchSize int

	// ReportInterval is how often to report progress (number of establishments)
	ReportInterval int

	// MaxRetries is the maximum number of attempts for a failed batch write
	MaxRetries int

	// RetryDelay is the base delay for exponential backoff
	RetryDelay time.Duration

	// Force re-imports a catalog even when its digest matches the stored one
	Force bool
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		BatchSize:      500,
		ReportInterval: 500,
		MaxRetries:     3,
		RetryDelay:     100 * time.Millisecond,
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.BatchSize <= 0 {
		return fmt.Errorf("%w: batch-size must be greater than 0", ErrInvalidConfig)
	}
	if c.ReportInterval <= 0 {
		return fmt.Errorf("%w: report-interval must be greater than 0", ErrInvalidConfig)
	}
	if c.MaxRetries <= 0 {
		return fmt.Errorf("%w: max-retries must be greater than 0", ErrInvalidConfig)
	}
	if c.RetryDelay < 0 {
		return fmt.Errorf("%w: retry-delay must not be negative", ErrInvalidConfig)
	}
	return nil
}
