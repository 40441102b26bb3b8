package cli

import (
	"context"
	"fmt"

	"github.com/dmolina/ritmo/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newSettingsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show and change settings",
	}

	cmd.AddCommand(
		newSettingsShowCmd(app),
		newSettingsReflectionCmd(app),
	)

	return cmd
}

func newSettingsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := app.Records.Settings(context.Background())
			if err != nil {
				return err
			}
			state := formatter.StyleGreen.Render("on")
			if !settings.DailyReflectionEnabled {
				state = formatter.Dim("off")
			}
			fmt.Printf("daily reflection reminder: %s\n", state)
			return nil
		},
	}
}

func newSettingsReflectionCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reflection on|off",
		Short: "Toggle the daily reflection reminder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			settings, err := app.Records.Settings(ctx)
			if err != nil {
				return err
			}
			switch args[0] {
			case "on":
				settings.DailyReflectionEnabled = true
			case "off":
				settings.DailyReflectionEnabled = false
			default:
				return fmt.Errorf("expected on or off, got %q", args[0])
			}
			if err := app.Records.UpdateSettings(ctx, settings); err != nil {
				return err
			}
			fmt.Printf("daily reflection reminder set to %s\n", args[0])
			return nil
		},
	}
}
