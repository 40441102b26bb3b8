package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/dmolina/ritmo/internal/contract"
	"github.com/dmolina/ritmo/internal/domain"
	"github.com/dmolina/ritmo/internal/service"
	"github.com/dmolina/ritmo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsightService_EndToEnd(t *testing.T) {
	records := newRecordService(t)
	insights := service.NewInsightService(records)
	ctx := context.Background()

	// Two weeks of Monday/Wednesday morning deep work plus some evening
	// reading, with feedback favoring the mornings.
	base := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC) // Monday
	for week := 0; week < 2; week++ {
		for _, dayOffset := range []int{0, 2} {
			start := base.AddDate(0, 0, week*7+dayOffset)
			block := testutil.NewTestBlock(start, 90, testutil.WithCategory("study"))
			block.Completed = false
			require.NoError(t, records.LogBlock(ctx, block))
			require.NoError(t, records.CompleteBlock(ctx, block.ID, 90, false,
				&domain.CompletionFeedback{Feeling: domain.FeelingExcellent}))

			evening := testutil.NewTestBlock(start.Add(10*time.Hour), 30,
				testutil.WithCategory("reading"), testutil.WithBlockType(domain.BlockLigero))
			evening.Completed = false
			require.NoError(t, records.LogBlock(ctx, evening))
			require.NoError(t, records.CompleteBlock(ctx, evening.ID, 20, true,
				&domain.CompletionFeedback{Feeling: domain.FeelingTired}))
		}
	}
	require.NoError(t, records.CheckIn(ctx, testutil.NewTestCheckIn("2026-03-02", 4, 4, 2)))

	bundle, err := insights.BuildInsights(ctx, contract.InsightRequest{
		Range: domain.RangeBounds{
			From: base.AddDate(0, 0, -1),
			To:   base.AddDate(0, 0, 14),
		},
		Settings: domain.Settings{DailyReflectionEnabled: true},
	})
	require.NoError(t, err)

	// Morning study dominates the evidence.
	assert.Contains(t, bundle.ProfileInsights.BestFocusWindow, "09:00")
	assert.Equal(t, "study", bundle.ProfileInsights.TopCategory)
	assert.NotEmpty(t, bundle.WeeklySummary)

	require.Equal(t, 7, len(bundle.FocusHeatmap.Days))
	assert.NotEmpty(t, bundle.FocusHeatmap.Cells)

	require.NotNil(t, bundle.ExtendedMetrics.CompletionRate)
	assert.InDelta(t, 1.0, *bundle.ExtendedMetrics.CompletionRate, 0.001)
	require.NotNil(t, bundle.ExtendedMetrics.InterruptionRate)
	assert.InDelta(t, 0.5, *bundle.ExtendedMetrics.InterruptionRate, 0.001)
}

func TestInsightService_EmptyWindow(t *testing.T) {
	records := newRecordService(t)
	insights := service.NewInsightService(records)

	bundle, err := insights.BuildInsights(context.Background(), contract.InsightRequest{
		Range: domain.RangeBounds{
			From: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			To:   time.Date(2026, 1, 7, 0, 0, 0, 0, time.UTC),
		},
	})
	require.NoError(t, err)

	assert.Empty(t, bundle.ProfileInsights.BestFocusWindow)
	assert.Empty(t, bundle.ExtendedMetrics.Daily)
	assert.Nil(t, bundle.ExtendedMetrics.CompletionRate)
	assert.NotEmpty(t, bundle.WeeklySummary, "empty windows still get a summary line")
}
