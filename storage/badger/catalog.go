package badger

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/dairyreg/core"
	"github.com/poiesic/dairyreg/storage"
)

// CatalogRepository implements storage.CatalogRepository for BadgerDB.
type CatalogRepository struct {
	backend *Backend
	posSeq  *badger.Sequence
	mu      sync.Mutex // serializes appends so positions follow call order
}

var _ storage.CatalogRepository = (*CatalogRepository)(nil)

// NewCatalogRepository creates a new CatalogRepository.
func NewCatalogRepository(backend *Backend) (*CatalogRepository, error) {
	posSeq, err := backend.GetSequence(establishmentPositionSeq)
	if err != nil {
		return nil, err
	}

	return &CatalogRepository{
		backend: backend,
		posSeq:  posSeq,
	}, nil
}

// Close releases the position sequence.
func (r *CatalogRepository) Close() error {
	return r.posSeq.Release()
}

// AddEstablishments appends establishments in the given order.
func (r *CatalogRepository) AddEstablishments(ctx context.Context, records ...*core.Establishment) error {
	if len(records) == 0 {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.backend.WithTx(func(tx *badger.Txn) error {
		seen := make(map[string]struct{}, len(records))
		for _, record := range records {
			stored := *record
			stored.RegNo = core.NormalizeRegNo(stored.RegNo)

			if _, dup := seen[stored.RegNo]; dup {
				return fmt.Errorf("%w: regNo %q", storage.ErrDuplicateKey, stored.RegNo)
			}
			seen[stored.RegNo] = struct{}{}

			regKey := makeRegNoKey(stored.RegNo)
			if _, err := tx.Get(regKey); err == nil {
				return fmt.Errorf("%w: regNo %q", storage.ErrDuplicateKey, stored.RegNo)
			} else if !errors.Is(err, badger.ErrKeyNotFound) {
				return err
			}

			pos, err := r.posSeq.Next()
			if err != nil {
				return err
			}

			if err := tx.Set(makeEstablishmentKey(pos), storage.MarshalEstablishment(&stored)); err != nil {
				return err
			}
			if err := tx.Set(regKey, storage.MarshalPosition(pos)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetEstablishment retrieves an establishment by registration number.
func (r *CatalogRepository) GetEstablishment(ctx context.Context, regNo string) (*core.Establishment, error) {
	var result *core.Establishment
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeRegNoKey(core.NormalizeRegNo(regNo)))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return storage.ErrNotFound
			}
			return err
		}

		var pos uint64
		err = item.Value(func(val []byte) error {
			var err error
			pos, err = storage.UnmarshalPosition(val)
			return err
		})
		if err != nil {
			return err
		}

		result, err = r.readEstablishment(tx, makeEstablishmentKey(pos))
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// AllEstablishments returns every stored establishment in insertion order.
func (r *CatalogRepository) AllEstablishments(ctx context.Context) ([]core.Establishment, error) {
	var results []core.Establishment
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(establishmentPrefix)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			err := iter.Item().Value(func(val []byte) error {
				record, err := storage.UnmarshalEstablishment(val)
				if err != nil {
					return err
				}
				results = append(results, *record)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}
	return results, nil
}

// Count returns the number of stored establishments.
func (r *CatalogRepository) Count(ctx context.Context) (int, error) {
	count := 0
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(establishmentPrefix)
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			count++
		}
		return nil
	}, false)
	return count, err
}

// Clear removes all establishments and the catalog metadata.
func (r *CatalogRepository) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, prefix := range []string{establishmentPrefix, establishmentRegNoPrefix, catalogInfoKey} {
		n, err := r.backend.DeletePrefix([]byte(prefix))
		if err != nil {
			return err
		}
		r.backend.logger.Debug("cleared catalog keys", "prefix", prefix, "count", n)
	}
	return nil
}

// SaveCatalogInfo persists metadata about the stored catalog.
func (r *CatalogRepository) SaveCatalogInfo(ctx context.Context, info *core.CatalogInfo) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		if err := tx.Set([]byte(catalogInfoKey), storage.MarshalCatalogInfo(info)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// LoadCatalogInfo retrieves the catalog metadata.
// Returns nil, nil if no catalog has been imported.
func (r *CatalogRepository) LoadCatalogInfo(ctx context.Context) (*core.CatalogInfo, error) {
	var info *core.CatalogInfo
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get([]byte(catalogInfoKey))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return nil
			}
			return err
		}

		return item.Value(func(val []byte) error {
			var unmarshalErr error
			info, unmarshalErr = storage.UnmarshalCatalogInfo(val)
			return unmarshalErr
		})
	}, false)

	return info, err
}

// readEstablishment reads an establishment within a transaction.
// Returns nil, nil if the key doesn't exist.
func (r *CatalogRepository) readEstablishment(tx *badger.Txn, key []byte) (*core.Establishment, error) {
	item, err := tx.Get(key)
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var record *core.Establishment
	err = item.Value(func(val []byte) error {
		var err error
		record, err = storage.UnmarshalEstablishment(val)
		return err
	})
	return record, err
}
