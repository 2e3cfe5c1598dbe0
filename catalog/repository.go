package catalog

import (
	"context"

	"github.com/poiesic/dairyreg/core"
	"github.com/poiesic/dairyreg/storage"
)

// LoadRepository reads the catalog held by repo, in its original order.
// Returns storage.ErrEmptyCatalog if nothing has been imported.
func LoadRepository(ctx context.Context, repo storage.CatalogRepository) ([]core.Establishment, *core.CatalogInfo, error) {
	info, err := repo.LoadCatalogInfo(ctx)
	if err != nil {
		return nil, nil, err
	}
	if info == nil {
		return nil, nil, storage.ErrEmptyCatalog
	}

	records, err := repo.AllEstablishments(ctx)
	if err != nil {
		return nil, nil, err
	}
	return records, info, nil
}
