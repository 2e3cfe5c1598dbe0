package dairyreg

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/dairyreg/catalog"
	"github.com/poiesic/dairyreg/core"
	"github.com/poiesic/dairyreg/search"
	"github.com/poiesic/dairyreg/storage"
)

func openMemory(t *testing.T) *Registry {
	t.Helper()
	reg, err := Open("", WithInMemory())
	require.NoError(t, err)
	t.Cleanup(func() { reg.Close() })
	return reg
}

func TestOpen(t *testing.T) {
	t.Run("create new registry", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "test_db")
		reg, err := Open(dir)
		require.NoError(t, err)
		require.NotNil(t, reg)
		defer reg.Close()

		assert.NotNil(t, reg.Repository())
		assert.NotNil(t, reg.logger)
	})

	t.Run("error with invalid path", func(t *testing.T) {
		tmpFile := filepath.Join(t.TempDir(), "not_a_dir")
		require.NoError(t, os.WriteFile(tmpFile, []byte("test"), 0644))

		reg, err := Open(tmpFile)
		assert.Error(t, err)
		assert.Nil(t, reg)
	})
}

func TestRegistry_EmptyCatalog(t *testing.T) {
	ctx := context.Background()
	reg := openMemory(t)

	_, err := reg.Info(ctx)
	assert.True(t, IsEmpty(err))

	_, err = reg.NewSearcher(ctx)
	assert.ErrorIs(t, err, storage.ErrEmptyCatalog)
}

func TestRegistry_ImportSampleAndSearch(t *testing.T) {
	ctx := context.Background()
	reg := openMemory(t)

	result, err := reg.ImportSample(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(catalog.Sample()), result.Imported)

	info, err := reg.Info(ctx)
	require.NoError(t, err)
	assert.Equal(t, catalog.SampleSource, info.Source)
	assert.Equal(t, core.CatalogDigest(catalog.Sample()), info.Digest)

	searcher, err := reg.NewSearcher(ctx)
	require.NoError(t, err)
	defer searcher.Close()

	results := searcher.Search("1234")
	require.NotEmpty(t, results)
	assert.Equal(t, "1234", results[0].RegNo)
	assert.Equal(t, "Acme Dairy", results[0].Name)
}

func TestRegistry_IndexIsCached(t *testing.T) {
	ctx := context.Background()
	reg := openMemory(t)
	_, err := reg.ImportSample(ctx)
	require.NoError(t, err)

	first, err := reg.Index(ctx)
	require.NoError(t, err)
	second, err := reg.Index(ctx)
	require.NoError(t, err)
	assert.Same(t, first, second)

	// Unchanged import keeps the index.
	_, err = reg.ImportSample(ctx)
	require.NoError(t, err)
	third, err := reg.Index(ctx)
	require.NoError(t, err)
	assert.Same(t, first, third)
}

func TestRegistry_ImportReplacesIndex(t *testing.T) {
	ctx := context.Background()
	reg := openMemory(t)
	_, err := reg.ImportSample(ctx)
	require.NoError(t, err)

	before, err := reg.Index(ctx)
	require.NoError(t, err)

	records := []core.Establishment{
		{RegNo: "9001", Name: "Northern Creamery", City: "Sudbury", Province: "ON"},
	}
	_, err = reg.Import(ctx, records, "manual")
	require.NoError(t, err)

	after, err := reg.Index(ctx)
	require.NoError(t, err)
	assert.NotSame(t, before, after)
	assert.Equal(t, 1, after.Len())

	searcher, err := reg.NewSearcher(ctx, search.WithConfig(&search.Config{Threshold: 0.3, Limit: 5}))
	require.NoError(t, err)
	defer searcher.Close()
	assert.Empty(t, searcher.Search("acme"))
	assert.Len(t, searcher.Search("creamery"), 1)
}

func TestRegistry_ImportFile(t *testing.T) {
	ctx := context.Background()
	reg := openMemory(t)

	path := filepath.Join(t.TempDir(), "catalog.csv")
	data := "regNo,name,adba,city,province\n" +
		"12,Maple Leaf Cheese,Leaf Fromagerie,Montreal,QC\n" +
		"13,Prairie Milk,,Regina,SK\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	result, err := reg.ImportFile(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Imported)

	info, err := reg.Info(ctx)
	require.NoError(t, err)
	assert.Equal(t, path, info.Source)

	idx, err := reg.Index(ctx)
	require.NoError(t, err)
	rec, ok := idx.Lookup("12")
	require.True(t, ok)
	assert.Equal(t, "Leaf Fromagerie", rec.Record.ADBA)
}

func TestRegistry_ImportIntegrityViolation(t *testing.T) {
	ctx := context.Background()
	reg := openMemory(t)

	records := []core.Establishment{
		{RegNo: "1", Name: "One"},
		{RegNo: "1", Name: "Also One"},
	}
	_, err := reg.Import(ctx, records, "bad")
	assert.ErrorIs(t, err, core.ErrDataIntegrity)

	_, err = reg.Info(ctx)
	assert.True(t, IsEmpty(err))
}

func TestRegistry_Persistence(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	reg, err := Open(dir)
	require.NoError(t, err)
	_, err = reg.ImportSample(ctx)
	require.NoError(t, err)
	require.NoError(t, reg.Close())

	reg, err = Open(dir)
	require.NoError(t, err)
	defer reg.Close()

	idx, err := reg.Index(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(catalog.Sample()), idx.Len())
	assert.Equal(t, core.CatalogDigest(catalog.Sample()), idx.Digest())
}

func TestRegistry_PaddedRegistrationNumbers(t *testing.T) {
	ctx := context.Background()
	reg := openMemory(t)

	records := []core.Establishment{
		{RegNo: " 88 ", Name: "Harbour Dairy", City: "Saint John", Province: "NB"},
	}
	_, err := reg.Import(ctx, records, "padded")
	require.NoError(t, err)

	idx, err := reg.Index(ctx)
	require.NoError(t, err, "stored catalog must match its recorded digest")
	_, ok := idx.Lookup("88")
	assert.True(t, ok)
}

// closeFailingRepo fails Close after releasing the wrapped repository.
type closeFailingRepo struct {
	storage.CatalogRepository
}

var errCloseFailed = errors.New("release failed")

func (r closeFailingRepo) Close() error {
	r.CatalogRepository.Close()
	return errCloseFailed
}

func TestRegistry_CloseReleasesBackendOnRepositoryError(t *testing.T) {
	reg, err := Open("", WithInMemory())
	require.NoError(t, err)
	reg.repo = closeFailingRepo{reg.repo}

	err = reg.Close()
	assert.ErrorIs(t, err, errCloseFailed)
	assert.True(t, reg.backend.IsClosed())
}
