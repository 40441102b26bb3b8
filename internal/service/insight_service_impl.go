package service

import (
	"context"
	"time"

	"github.com/dmolina/ritmo/internal/analysis"
	"github.com/dmolina/ritmo/internal/contract"
	"github.com/dmolina/ritmo/internal/domain"
	"github.com/dmolina/ritmo/internal/insight"
)

type insightService struct {
	records  RecordService
	observer UseCaseObserver
}

// NewInsightService wires the analytics pipeline over the record service.
func NewInsightService(records RecordService, observers ...UseCaseObserver) InsightService {
	return &insightService{
		records:  records,
		observer: useCaseObserverOrNoop(observers),
	}
}

// BuildInsights runs the full pipeline: load, filter, analyze patterns,
// build heatmap and metrics, label trends, then derive recommendations.
func (s *insightService) BuildInsights(ctx context.Context, req contract.InsightRequest) (*contract.InsightBundle, error) {
	start := time.Now()
	bundle, err := s.build(ctx, req)
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "build_insights",
		Duration:  time.Since(start),
		Success:   err == nil,
		Err:       err,
		Fields:    map[string]any{"days": domain.NormalizeRange(req.Range).Days()},
		StartedAt: start,
	})
	return bundle, err
}

func (s *insightService) build(ctx context.Context, req contract.InsightRequest) (*contract.InsightBundle, error) {
	records, err := s.records.Records(ctx, req.Range)
	if err != nil {
		return nil, err
	}
	filtered := analysis.FilterRecords(*records, req.Range)
	idx := domain.BuildFeedbackIndex(filtered.Feedback)

	patterns := analysis.AnalyzePatterns(filtered.Blocks, idx)
	heatmap := analysis.BuildHeatmap(filtered.Blocks)
	metrics := analysis.BuildExtendedMetrics(filtered, idx)
	trends := analysis.BuildTrends(metrics.Daily, analysis.DefaultTrendThreshold)

	recs, profile, summary := insight.BuildInsights(insight.BuildInput{
		Patterns: patterns,
		Metrics:  metrics,
		Trends:   trends,
		Settings: req.Settings,
	})

	return &contract.InsightBundle{
		ProfileInsights: profile,
		WeeklySummary:   summary,
		FocusHeatmap:    heatmap,
		ExtendedMetrics: metrics,
		Recommendations: recs,
		Trends:          trends,
	}, nil
}
