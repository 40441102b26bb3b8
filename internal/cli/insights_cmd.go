package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/dmolina/ritmo/internal/cli/formatter"
	"github.com/dmolina/ritmo/internal/contract"
	"github.com/dmolina/ritmo/internal/domain"
	"github.com/spf13/cobra"
)

func newInsightsCmd(app *App) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "insights",
		Short: "Show behavioral patterns, metrics and recommendations",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			settings, err := app.Records.Settings(ctx)
			if err != nil {
				return fmt.Errorf("loading settings: %w", err)
			}

			now := time.Now()
			bundle, err := app.Insights.BuildInsights(ctx, contract.InsightRequest{
				Range: domain.RangeBounds{
					From: now.AddDate(0, 0, -days),
					To:   now,
				},
				Settings: *settings,
			})
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatInsights(bundle))
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 14, "Analysis window in days")

	return cmd
}
