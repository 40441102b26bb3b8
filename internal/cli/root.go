package cli

import (
	"github.com/dmolina/ritmo/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Records  service.RecordService
	Insights service.InsightService
	Planning service.PlanningService

	// IsInteractive reports whether stdin is attached to a terminal. Commands
	// fall back to flags-only or line-based input when it returns false.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "ritmo" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "ritmo",
		Short: "Personal rhythm tracker and multi-day planning companion",
	}

	root.AddCommand(
		newBlockCmd(app),
		newTaskCmd(app),
		newCheckinCmd(app),
		newInsightsCmd(app),
		newPlanCmd(app),
		newSettingsCmd(app),
	)

	return root
}
