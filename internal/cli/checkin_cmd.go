package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/dmolina/ritmo/internal/domain"
	"github.com/spf13/cobra"
)

func newCheckinCmd(app *App) *cobra.Command {
	var date string
	var mood, energy, stress int

	cmd := &cobra.Command{
		Use:   "checkin",
		Short: "Record the daily mood, energy and stress check-in",
		RunE: func(cmd *cobra.Command, args []string) error {
			if mood == 0 {
				if !app.interactive() {
					return fmt.Errorf("--mood, --energy and --stress are required in non-interactive mode")
				}
				var moodStr, energyStr, stressStr string
				form := newForm(huh.NewGroup(
					scaleSelect("Mood", &moodStr),
					scaleSelect("Energy", &energyStr),
					scaleSelect("Stress", &stressStr),
				))
				if err := form.Run(); err != nil {
					return err
				}
				mood = parsePositiveInt(moodStr, 3)
				energy = parsePositiveInt(energyStr, 3)
				stress = parsePositiveInt(stressStr, 3)
			}

			if date == "" {
				date = time.Now().Format(domain.CheckInDateLayout)
			}

			checkin := &domain.CheckIn{Date: date, Mood: mood, Energy: energy, Stress: stress}
			if err := app.Records.CheckIn(context.Background(), checkin); err != nil {
				return err
			}

			fmt.Printf("Checked in for %s: mood %d, energy %d, stress %d\n", date, mood, energy, stress)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD, defaults to today)")
	cmd.Flags().IntVar(&mood, "mood", 0, "Mood 1-5")
	cmd.Flags().IntVar(&energy, "energy", 0, "Energy 1-5")
	cmd.Flags().IntVar(&stress, "stress", 0, "Stress 1-5")

	return cmd
}
