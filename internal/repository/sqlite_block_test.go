package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/dmolina/ritmo/internal/repository"
	"github.com/dmolina/ritmo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlockRepo_CreateAndGet(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteBlockRepo(database)
	ctx := context.Background()

	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	actual := 50
	block := testutil.NewTestBlock(start, 60,
		testutil.WithCategory("study"),
		testutil.WithActualMin(actual),
		testutil.WithInterrupted(),
	)
	require.NoError(t, repo.Create(ctx, block))

	got, err := repo.GetByID(ctx, block.ID)
	require.NoError(t, err)
	assert.Equal(t, block.ID, got.ID)
	assert.True(t, got.Start.Equal(start))
	assert.Equal(t, "study", got.Category)
	require.NotNil(t, got.ActualMin)
	assert.Equal(t, actual, *got.ActualMin)
	assert.True(t, got.Interrupted)
	assert.True(t, got.Completed)
}

func TestBlockRepo_GetMissingIsNotFound(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteBlockRepo(database)

	_, err := repo.GetByID(context.Background(), "nope")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestBlockRepo_ListRange(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteBlockRepo(database)
	ctx := context.Background()

	inside := testutil.NewTestBlock(time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC), 60)
	outside := testutil.NewTestBlock(time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC), 60)
	// Straddles the upper bound: starts outside but ends inside.
	straddling := testutil.NewTestBlock(time.Date(2026, 3, 1, 23, 30, 0, 0, time.UTC), 60)
	require.NoError(t, repo.Create(ctx, inside))
	require.NoError(t, repo.Create(ctx, outside))
	require.NoError(t, repo.Create(ctx, straddling))

	got, err := repo.ListRange(ctx,
		time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	require.Len(t, got, 2)
	// Ordered by start.
	assert.Equal(t, straddling.ID, got[0].ID)
	assert.Equal(t, inside.ID, got[1].ID)
}

func TestBlockRepo_Update(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteBlockRepo(database)
	ctx := context.Background()

	block := testutil.NewTestBlock(time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC), 60)
	require.NoError(t, repo.Create(ctx, block))

	actual := 45
	block.ActualMin = &actual
	block.Interrupted = true
	require.NoError(t, repo.Update(ctx, block))

	got, err := repo.GetByID(ctx, block.ID)
	require.NoError(t, err)
	require.NotNil(t, got.ActualMin)
	assert.Equal(t, 45, *got.ActualMin)
	assert.True(t, got.Interrupted)

	missing := testutil.NewTestBlock(time.Now().UTC(), 30)
	assert.ErrorIs(t, repo.Update(ctx, missing), repository.ErrNotFound)
}

func TestBlockRepo_Delete(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteBlockRepo(database)
	ctx := context.Background()

	block := testutil.NewTestBlock(time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC), 60)
	require.NoError(t, repo.Create(ctx, block))
	require.NoError(t, repo.Delete(ctx, block.ID))

	_, err := repo.GetByID(ctx, block.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
