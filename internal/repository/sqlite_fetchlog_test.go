package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ml4phys/lhcdata/internal/testutil"
)

func newFetchLogRepo(t *testing.T) *SQLiteFetchLogRepo {
	t.Helper()
	return NewSQLiteFetchLogRepo(testutil.NewTestDB(t))
}

func TestFetchLogRepo_RecordAndListRecent(t *testing.T) {
	repo := newFetchLogRepo(t)
	ctx := context.Background()

	rec := testutil.NewTestRecord(2,
		testutil.WithDestDir("/data/top"),
		testutil.WithArchiveBytes(2048),
		testutil.WithFileCount(9),
	)
	require.NoError(t, repo.Record(ctx, rec))

	list, err := repo.ListRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, list, 1)

	got := list[0]
	assert.Equal(t, rec.ID, got.ID)
	assert.Equal(t, 2, got.DatasetID)
	assert.Equal(t, "toptagging-short.zip", got.Archive)
	assert.Equal(t, "top tagging", got.Description)
	assert.Equal(t, "/data/top", got.DestDir)
	assert.Equal(t, int64(2048), got.ArchiveBytes)
	assert.Equal(t, 9, got.FileCount)
	assert.Equal(t, rec.Duration, got.Duration)
}

func TestFetchLogRepo_ListRecent_NewestFirst(t *testing.T) {
	repo := newFetchLogRepo(t)
	ctx := context.Background()

	base := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
	oldest := testutil.NewTestRecord(1, testutil.WithFetchedAt(base.Add(-48*time.Hour)))
	middle := testutil.NewTestRecord(3, testutil.WithFetchedAt(base.Add(-24*time.Hour)))
	newest := testutil.NewTestRecord(4, testutil.WithFetchedAt(base))
	require.NoError(t, repo.Record(ctx, oldest))
	require.NoError(t, repo.Record(ctx, newest))
	require.NoError(t, repo.Record(ctx, middle))

	list, err := repo.ListRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, newest.ID, list[0].ID)
	assert.Equal(t, middle.ID, list[1].ID)
	assert.Equal(t, oldest.ID, list[2].ID)
}

func TestFetchLogRepo_ListRecent_HonorsLimit(t *testing.T) {
	repo := newFetchLogRepo(t)
	ctx := context.Background()

	base := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		rec := testutil.NewTestRecord(1, testutil.WithFetchedAt(base.Add(time.Duration(i)*time.Hour)))
		require.NoError(t, repo.Record(ctx, rec))
	}

	list, err := repo.ListRecent(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestFetchLogRepo_ListRecent_Empty(t *testing.T) {
	repo := newFetchLogRepo(t)

	list, err := repo.ListRecent(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestFetchLogRepo_LastByDataset(t *testing.T) {
	repo := newFetchLogRepo(t)
	ctx := context.Background()

	base := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
	older := testutil.NewTestRecord(2, testutil.WithFetchedAt(base.Add(-time.Hour)))
	newer := testutil.NewTestRecord(2, testutil.WithFetchedAt(base))
	other := testutil.NewTestRecord(3, testutil.WithFetchedAt(base.Add(time.Hour)))
	require.NoError(t, repo.Record(ctx, older))
	require.NoError(t, repo.Record(ctx, newer))
	require.NoError(t, repo.Record(ctx, other))

	got, err := repo.LastByDataset(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, newer.ID, got.ID)
	assert.Equal(t, base, got.FetchedAt)
}

func TestFetchLogRepo_LastByDataset_NotFound(t *testing.T) {
	repo := newFetchLogRepo(t)

	_, err := repo.LastByDataset(context.Background(), 4)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}
