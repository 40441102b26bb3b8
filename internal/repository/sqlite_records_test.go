package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/dmolina/ritmo/internal/domain"
	"github.com/dmolina/ritmo/internal/repository"
	"github.com/dmolina/ritmo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskRepo_RoundTrip(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteTaskRepo(database)
	ctx := context.Background()

	due := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	task := testutil.NewTestTask("study for exam", testutil.WithDueDate(due))
	require.NoError(t, repo.Create(ctx, task))

	got, err := repo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "study for exam", got.Title)
	assert.Equal(t, "study", got.Category)
	require.NotNil(t, got.DueDate)
	assert.True(t, got.DueDate.Equal(due))
	assert.Nil(t, got.CompletedAt)
	assert.False(t, got.Done())

	completed := due.Add(-24 * time.Hour)
	got.CompletedAt = &completed
	require.NoError(t, repo.Update(ctx, got))

	again, err := repo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.True(t, again.Done())
}

func TestTaskRepo_ListOrderedByCreation(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteTaskRepo(database)
	ctx := context.Background()

	older := testutil.NewTestTask("first", testutil.WithCreatedAt(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)))
	newer := testutil.NewTestTask("second", testutil.WithCreatedAt(time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, repo.Create(ctx, newer))
	require.NoError(t, repo.Create(ctx, older))

	got, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "first", got[0].Title)
	assert.Equal(t, "second", got[1].Title)
}

func TestCheckInRepo_UpsertReplacesSameDate(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteCheckInRepo(database)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, testutil.NewTestCheckIn("2026-03-02", 3, 3, 3)))
	require.NoError(t, repo.Upsert(ctx, testutil.NewTestCheckIn("2026-03-02", 5, 4, 1)))

	got, err := repo.GetByDate(ctx, "2026-03-02")
	require.NoError(t, err)
	assert.Equal(t, 5, got.Mood)
	assert.Equal(t, 1, got.Stress)
}

func TestCheckInRepo_ListRange(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteCheckInRepo(database)
	ctx := context.Background()

	for _, date := range []string{"2026-03-01", "2026-03-03", "2026-03-09"} {
		require.NoError(t, repo.Upsert(ctx, testutil.NewTestCheckIn(date, 3, 3, 3)))
	}

	got, err := repo.ListRange(ctx, "2026-03-02", "2026-03-08")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "2026-03-03", got[0].Date)
}

func TestFeedbackRepo_ListByBlockAndRange(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteFeedbackRepo(database)
	ctx := context.Background()

	at := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	fb := testutil.NewTestFeedback("b1", domain.FeelingGood,
		testutil.WithFeedbackNote("solid session"),
		testutil.WithCompletedAtTime(at),
	)
	other := testutil.NewTestFeedback("b2", domain.FeelingTired,
		testutil.WithCompletedAtTime(at.AddDate(0, 1, 0)),
	)
	require.NoError(t, repo.Create(ctx, fb))
	require.NoError(t, repo.Create(ctx, other))

	byBlock, err := repo.ListByBlock(ctx, "b1")
	require.NoError(t, err)
	require.Len(t, byBlock, 1)
	assert.Equal(t, domain.FeelingGood, byBlock[0].Feeling)
	assert.Equal(t, "solid session", byBlock[0].Note)

	inRange, err := repo.ListRange(ctx, at.Add(-time.Hour), at.Add(time.Hour))
	require.NoError(t, err)
	require.Len(t, inRange, 1)
	assert.Equal(t, fb.ID, inRange[0].ID)
}

func TestSettingsRepo_DefaultsAndUpsert(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteSettingsRepo(database)
	ctx := context.Background()

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.True(t, got.DailyReflectionEnabled, "reflection defaults to on")

	require.NoError(t, repo.Upsert(ctx, &domain.Settings{DailyReflectionEnabled: false}))

	got, err = repo.Get(ctx)
	require.NoError(t, err)
	assert.False(t, got.DailyReflectionEnabled)
}
