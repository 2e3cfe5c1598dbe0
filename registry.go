// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package dairyreg ties the dairy establishment catalog together: a badger
// backed store for the catalog, the importer that fills it, and the prepared
// index searchers rank against.
package dairyreg

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/poiesic/dairyreg/catalog"
	"github.com/poiesic/dairyreg/core"
	"github.com/poiesic/dairyreg/importer"
	"github.com/poiesic/dairyreg/index"
	"github.com/poiesic/dairyreg/search"
	"github.com/poiesic/dairyreg/storage"
	"github.com/poiesic/dairyreg/storage/badger"
)

// Registry is a persistent establishment catalog with fuzzy search.
type Registry struct {
	backend *badger.Backend
	repo    storage.CatalogRepository
	options *registryOptions
	logger  *slog.Logger

	mu    sync.Mutex
	index *index.Index
}

// RegistryOption configures a Registry.
type RegistryOption func(*registryOptions)

type registryOptions struct {
	inMemory       bool
	logger         *slog.Logger
	importerConfig *importer.Config
}

// WithInMemory keeps the catalog in memory instead of on disk.
func WithInMemory() RegistryOption {
	return func(o *registryOptions) {
		o.inMemory = true
	}
}

// WithLogger sets the logger. A nil logger falls back to slog.Default().
func WithLogger(logger *slog.Logger) RegistryOption {
	return func(o *registryOptions) {
		o.logger = logger
	}
}

// WithImporterConfig sets the configuration used by Import.
func WithImporterConfig(cfg *importer.Config) RegistryOption {
	return func(o *registryOptions) {
		o.importerConfig = cfg
	}
}

// Open opens the registry stored at filePath, creating it if needed.
// filePath is ignored when WithInMemory is given.
func Open(filePath string, opts ...RegistryOption) (*Registry, error) {
	options := &registryOptions{
		importerConfig: importer.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(options)
	}
	if options.logger == nil {
		options.logger = slog.Default()
	}
	if options.inMemory {
		filePath = ""
	}

	backend, err := badger.OpenBackendWithLogger(filePath, options.inMemory, options.logger)
	if err != nil {
		return nil, err
	}

	repo, err := badger.NewCatalogRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	return &Registry{
		backend: backend,
		repo:    repo,
		options: options,
		logger:  options.logger,
	}, nil
}

// Close releases the repository and the backend. The backend is closed even
// when releasing the repository fails.
func (r *Registry) Close() error {
	repoErr := r.repo.Close()
	if repoErr != nil {
		r.logger.Error("error closing catalog repository", "err", repoErr)
	}
	backendErr := r.backend.Close()
	if backendErr != nil {
		r.logger.Error("error closing backend storage", "err", backendErr)
	}
	return errors.Join(repoErr, backendErr)
}

// Repository returns the underlying catalog repository.
func (r *Registry) Repository() storage.CatalogRepository {
	return r.repo
}

// Import replaces the stored catalog with records.
// The prepared index is rebuilt on next use when the catalog changed.
func (r *Registry) Import(ctx context.Context, records []core.Establishment, source string, opts ...importer.Option) (*importer.Result, error) {
	opts = append([]importer.Option{importer.WithLogger(r.logger)}, opts...)
	im, err := importer.NewImporter(r.repo, r.options.importerConfig, opts...)
	if err != nil {
		return nil, err
	}

	result, err := im.Import(ctx, records, source)
	if err != nil {
		r.invalidate()
		return nil, err
	}
	if !result.Unchanged {
		r.invalidate()
	}
	return result, nil
}

// ImportFile loads a catalog file and imports it.
func (r *Registry) ImportFile(ctx context.Context, path string, opts ...importer.Option) (*importer.Result, error) {
	records, err := catalog.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return r.Import(ctx, records, path, opts...)
}

// ImportSample imports the embedded sample catalog.
func (r *Registry) ImportSample(ctx context.Context, opts ...importer.Option) (*importer.Result, error) {
	return r.Import(ctx, catalog.Sample(), catalog.SampleSource, opts...)
}

// Info returns metadata about the stored catalog.
// Returns storage.ErrEmptyCatalog if nothing has been imported.
func (r *Registry) Info(ctx context.Context) (*core.CatalogInfo, error) {
	info, err := r.repo.LoadCatalogInfo(ctx)
	if err != nil {
		return nil, err
	}
	if info == nil {
		return nil, storage.ErrEmptyCatalog
	}
	return info, nil
}

// Size returns the on-disk size of the store in bytes.
func (r *Registry) Size() int64 {
	lsm, vlog := r.backend.Size()
	return lsm + vlog
}

// Index returns the prepared index of the stored catalog, building it on
// first use. Returns storage.ErrEmptyCatalog if nothing has been imported.
func (r *Registry) Index(ctx context.Context) (*index.Index, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.index != nil {
		return r.index, nil
	}

	records, info, err := catalog.LoadRepository(ctx, r.repo)
	if err != nil {
		return nil, err
	}
	idx, err := index.Prepare(records)
	if err != nil {
		return nil, err
	}
	if idx.Digest() != info.Digest {
		return nil, fmt.Errorf("%w: stored catalog digest %s does not match contents %s",
			core.ErrDataIntegrity, info.Digest, idx.Digest())
	}

	r.logger.Debug("catalog index prepared", "count", idx.Len(), "digest", info.Digest.String())
	r.index = idx
	return idx, nil
}

// NewSearcher creates a searcher over the stored catalog.
// The caller must Close the searcher.
func (r *Registry) NewSearcher(ctx context.Context, opts ...search.Option) (*search.Searcher, error) {
	idx, err := r.Index(ctx)
	if err != nil {
		return nil, err
	}
	opts = append([]search.Option{search.WithLogger(r.logger)}, opts...)
	return search.NewSearcher(idx, opts...)
}

// IsEmpty reports whether err means no catalog has been imported.
func IsEmpty(err error) bool {
	return errors.Is(err, storage.ErrEmptyCatalog)
}

func (r *Registry) invalidate() {
	r.mu.Lock()
	r.index = nil
	r.mu.Unlock()
}
