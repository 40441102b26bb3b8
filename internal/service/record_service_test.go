package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmolina/ritmo/internal/contract"
	"github.com/dmolina/ritmo/internal/domain"
	"github.com/dmolina/ritmo/internal/repository"
	"github.com/dmolina/ritmo/internal/service"
	"github.com/dmolina/ritmo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRecordService(t *testing.T) service.RecordService {
	t.Helper()
	database := testutil.NewTestDB(t)
	return service.NewRecordService(
		repository.NewSQLiteBlockRepo(database),
		repository.NewSQLiteTaskRepo(database),
		repository.NewSQLiteCheckInRepo(database),
		repository.NewSQLiteFeedbackRepo(database),
		repository.NewSQLiteSettingsRepo(database),
		testutil.NewTestUoW(database),
	)
}

func TestRecordService_LogAndCompleteBlockWithFeedback(t *testing.T) {
	svc := newRecordService(t)
	ctx := context.Background()

	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	block := testutil.NewTestBlock(start, 60)
	block.Completed = false
	require.NoError(t, svc.LogBlock(ctx, block))

	fb := &domain.CompletionFeedback{
		Feeling:     domain.FeelingGood,
		Note:        "went well",
		CompletedAt: start.Add(55 * time.Minute),
	}
	require.NoError(t, svc.CompleteBlock(ctx, block.ID, 55, false, fb))

	bundle, err := svc.Records(ctx, domain.RangeBounds{From: start.AddDate(0, 0, -1), To: start.AddDate(0, 0, 1)})
	require.NoError(t, err)
	require.Len(t, bundle.Blocks, 1)
	assert.True(t, bundle.Blocks[0].Completed)
	require.NotNil(t, bundle.Blocks[0].ActualMin)
	assert.Equal(t, 55, *bundle.Blocks[0].ActualMin)
	require.Len(t, bundle.Feedback, 1)
	assert.Equal(t, block.ID, bundle.Feedback[0].BlockID)
}

func TestRecordService_LogBlockValidatesShape(t *testing.T) {
	svc := newRecordService(t)
	ctx := context.Background()

	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	inverted := testutil.NewTestBlock(start, 60)
	inverted.End = start.Add(-time.Hour)

	err := svc.LogBlock(ctx, inverted)
	var verr *contract.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "end", verr.Field)
}

func TestRecordService_CompleteBlockRejectsBadFeeling(t *testing.T) {
	svc := newRecordService(t)
	ctx := context.Background()

	block := testutil.NewTestBlock(time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC), 60)
	require.NoError(t, svc.LogBlock(ctx, block))

	err := svc.CompleteBlock(ctx, block.ID, 60, false, &domain.CompletionFeedback{Feeling: 9})
	var verr *contract.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "feeling", verr.Field)
}

func TestRecordService_CompleteBlockRollsBackWhenFeedbackFails(t *testing.T) {
	database := testutil.NewTestDB(t)
	blocks := repository.NewSQLiteBlockRepo(database)
	svc := service.NewRecordService(
		blocks,
		repository.NewSQLiteTaskRepo(database),
		repository.NewSQLiteCheckInRepo(database),
		repository.NewSQLiteFeedbackRepo(database),
		repository.NewSQLiteSettingsRepo(database),
		// First exec is the block update, second the feedback insert.
		&testutil.FailOnNthExecUoW{DB: database, FailOn: 2, Err: errors.New("disk full")},
	)
	ctx := context.Background()

	block := testutil.NewTestBlock(time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC), 60)
	block.Completed = false
	require.NoError(t, svc.LogBlock(ctx, block))

	err := svc.CompleteBlock(ctx, block.ID, 60, false, &domain.CompletionFeedback{Feeling: domain.FeelingGood})
	require.Error(t, err)

	// The completion must roll back with the failed feedback write.
	stored, err := blocks.GetByID(ctx, block.ID)
	require.NoError(t, err)
	assert.False(t, stored.Completed)
	assert.Nil(t, stored.ActualMin)
}

func TestRecordService_CompleteBlockMissingIsNotFound(t *testing.T) {
	svc := newRecordService(t)

	err := svc.CompleteBlock(context.Background(), "nope", 60, false, nil)
	assert.True(t, errors.Is(err, repository.ErrNotFound))
}

func TestRecordService_CompleteTaskSetsCompletionAndFeedback(t *testing.T) {
	svc := newRecordService(t)
	ctx := context.Background()

	task := testutil.NewTestTask("study for exam")
	require.NoError(t, svc.CreateTask(ctx, task))
	require.NoError(t, svc.CompleteTask(ctx, task.ID, &domain.CompletionFeedback{Feeling: domain.FeelingExcellent}))

	now := time.Now().UTC()
	bundle, err := svc.Records(ctx, domain.RangeBounds{From: now.AddDate(0, 0, -1), To: now.AddDate(0, 0, 1)})
	require.NoError(t, err)
	require.Len(t, bundle.Tasks, 1)
	assert.True(t, bundle.Tasks[0].Done())
	require.Len(t, bundle.Feedback, 1)
	assert.Equal(t, task.ID, bundle.Feedback[0].TaskID)
}

func TestRecordService_CheckInValidatesRange(t *testing.T) {
	svc := newRecordService(t)
	ctx := context.Background()

	err := svc.CheckIn(ctx, testutil.NewTestCheckIn("2026-03-02", 0, 3, 3))
	var verr *contract.ValidationError
	require.ErrorAs(t, err, &verr)

	err = svc.CheckIn(ctx, testutil.NewTestCheckIn("not-a-date", 3, 3, 3))
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "date", verr.Field)

	require.NoError(t, svc.CheckIn(ctx, testutil.NewTestCheckIn("2026-03-02", 4, 3, 2)))
}

func TestRecordService_SettingsRoundTrip(t *testing.T) {
	svc := newRecordService(t)
	ctx := context.Background()

	settings, err := svc.Settings(ctx)
	require.NoError(t, err)
	assert.True(t, settings.DailyReflectionEnabled)

	require.NoError(t, svc.UpdateSettings(ctx, &domain.Settings{DailyReflectionEnabled: false}))

	settings, err = svc.Settings(ctx)
	require.NoError(t, err)
	assert.False(t, settings.DailyReflectionEnabled)
}
