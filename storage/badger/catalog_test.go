package badger

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/poiesic/dairyreg/core"
	"github.com/poiesic/dairyreg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) *CatalogRepository {
	t.Helper()
	repo, backend, err := NewMemoryRepository()
	require.NoError(t, err)
	t.Cleanup(func() {
		repo.Close()
		backend.Close()
	})
	return repo
}

func sampleEstablishments() []*core.Establishment {
	return []*core.Establishment{
		{RegNo: "1234", Name: "Acme Dairy", City: "Toronto", Province: "ON"},
		{RegNo: "77", Name: "Laiterie Chalifoux", ADBA: "Fromagerie Riviera", City: "Sorel-Tracy", Province: "QC"},
		{RegNo: " 501 ", Name: "Island Farms", City: "Victoria", Province: "BC"},
	}
}

func TestCatalogRepository_AddAndGet(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.AddEstablishments(ctx, sampleEstablishments()...))

	got, err := repo.GetEstablishment(ctx, "77")
	require.NoError(t, err)
	assert.Equal(t, "Laiterie Chalifoux", got.Name)
	assert.Equal(t, "Fromagerie Riviera", got.ADBA)

	got, err = repo.GetEstablishment(ctx, "501")
	require.NoError(t, err)
	assert.Equal(t, "501", got.RegNo, "regNo is stored trimmed")

	_, err = repo.GetEstablishment(ctx, "9999")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestCatalogRepository_AddDoesNotModifyInput(t *testing.T) {
	repo := newTestRepository(t)
	records := sampleEstablishments()

	require.NoError(t, repo.AddEstablishments(context.Background(), records...))
	assert.Equal(t, " 501 ", records[2].RegNo)
}

func TestCatalogRepository_AllEstablishmentsKeepsOrder(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	var want []string
	for batch := 0; batch < 5; batch++ {
		records := make([]*core.Establishment, 0, 60)
		for i := 0; i < 60; i++ {
			// Registration numbers deliberately out of lexical order
			regNo := fmt.Sprint((batch*60+i)*7919%100003 + 1)
			records = append(records, &core.Establishment{RegNo: regNo, Name: "Dairy " + regNo})
			want = append(want, regNo)
		}
		require.NoError(t, repo.AddEstablishments(ctx, records...))
	}

	all, err := repo.AllEstablishments(ctx)
	require.NoError(t, err)
	require.Len(t, all, len(want))
	for i, e := range all {
		assert.Equal(t, want[i], e.RegNo)
	}

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(want), count)
}

func TestCatalogRepository_DuplicateRegNo(t *testing.T) {
	ctx := context.Background()

	t.Run("already stored", func(t *testing.T) {
		repo := newTestRepository(t)
		require.NoError(t, repo.AddEstablishments(ctx, sampleEstablishments()...))

		err := repo.AddEstablishments(ctx,
			&core.Establishment{RegNo: "888", Name: "New Dairy"},
			&core.Establishment{RegNo: "1234", Name: "Other Dairy"})
		assert.ErrorIs(t, err, storage.ErrDuplicateKey)

		_, err = repo.GetEstablishment(ctx, "888")
		assert.ErrorIs(t, err, storage.ErrNotFound, "failed batch must not be partially stored")

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, count)
	})

	t.Run("within one call", func(t *testing.T) {
		repo := newTestRepository(t)
		err := repo.AddEstablishments(ctx,
			&core.Establishment{RegNo: "5", Name: "Five"},
			&core.Establishment{RegNo: "5 ", Name: "Five again"})
		assert.ErrorIs(t, err, storage.ErrDuplicateKey)

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, count)
	})
}

func TestCatalogRepository_Empty(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	all, err := repo.AllEstablishments(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	info, err := repo.LoadCatalogInfo(ctx)
	require.NoError(t, err)
	assert.Nil(t, info)

	assert.NoError(t, repo.AddEstablishments(ctx))
}

func TestCatalogRepository_CatalogInfo(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	info := &core.CatalogInfo{
		Digest:     core.Digest(42),
		Count:      3,
		Source:     "sample",
		ImportedAt: time.Now().UTC().Truncate(time.Microsecond),
	}
	require.NoError(t, repo.SaveCatalogInfo(ctx, info))

	loaded, err := repo.LoadCatalogInfo(ctx)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, info.Digest, loaded.Digest)
	assert.Equal(t, info.Count, loaded.Count)
	assert.Equal(t, info.Source, loaded.Source)
	assert.True(t, info.ImportedAt.Equal(loaded.ImportedAt))
}

func TestCatalogRepository_Clear(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.AddEstablishments(ctx, sampleEstablishments()...))
	require.NoError(t, repo.SaveCatalogInfo(ctx, &core.CatalogInfo{Count: 3}))

	require.NoError(t, repo.Clear(ctx))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	info, err := repo.LoadCatalogInfo(ctx)
	require.NoError(t, err)
	assert.Nil(t, info)

	// Registration numbers are free again after clearing
	require.NoError(t, repo.AddEstablishments(ctx, sampleEstablishments()...))
	all, err := repo.AllEstablishments(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "1234", all[0].RegNo)
}

func TestCatalogRepository_ContextCancelled(t *testing.T) {
	repo := newTestRepository(t)
	require.NoError(t, repo.AddEstablishments(context.Background(), sampleEstablishments()...))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := repo.AllEstablishments(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
