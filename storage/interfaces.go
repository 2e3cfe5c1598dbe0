package storage

import (
	"context"

	"github.com/poiesic/dairyreg/core"
)

// CatalogRepository stores an establishment catalog in insertion order.
// Implementations must be thread-safe and support concurrent access.
type CatalogRepository interface {
	// AddEstablishments appends establishments after those already stored,
	// preserving their order. Registration numbers are trimmed before storing.
	// Returns ErrDuplicateKey if a registration number is already stored or
	// repeated within the call; nothing from the call is stored in that case.
	AddEstablishments(ctx context.Context, records ...*core.Establishment) error

	// GetEstablishment retrieves an establishment by registration number.
	// Returns ErrNotFound if it doesn't exist.
	GetEstablishment(ctx context.Context, regNo string) (*core.Establishment, error)

	// AllEstablishments returns every stored establishment in insertion order.
	AllEstablishments(ctx context.Context) ([]core.Establishment, error)

	// Count returns the number of stored establishments.
	Count(ctx context.Context) (int, error)

	// Clear removes all establishments and the catalog metadata.
	Clear(ctx context.Context) error

	// SaveCatalogInfo persists metadata about the stored catalog.
	SaveCatalogInfo(ctx context.Context, info *core.CatalogInfo) error

	// LoadCatalogInfo retrieves the catalog metadata.
	// Returns nil, nil if no catalog has been imported.
	LoadCatalogInfo(ctx context.Context) (*core.CatalogInfo, error)

	// Close releases resources held by the repository.
	Close() error
}
