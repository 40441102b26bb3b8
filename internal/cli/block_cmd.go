package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/dmolina/ritmo/internal/cli/formatter"
	"github.com/dmolina/ritmo/internal/domain"
	"github.com/spf13/cobra"
)

func newBlockCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "block",
		Short: "Log and complete time blocks",
	}

	cmd.AddCommand(
		newBlockLogCmd(app),
		newBlockDoneCmd(app),
		newBlockListCmd(app),
	)

	return cmd
}

func newBlockLogCmd(app *App) *cobra.Command {
	var category, blockType, date, start string
	var minutes int

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Log a planned time block",
		RunE: func(cmd *cobra.Command, args []string) error {
			if category == "" || start == "" {
				if !app.interactive() {
					return fmt.Errorf("--category and --start are required in non-interactive mode")
				}
				minutesStr := fmt.Sprintf("%d", minutes)
				form := newForm(huh.NewGroup(
					huh.NewInput().
						Title("Category").
						Placeholder("study, training, reading...").
						Value(&category).
						Validate(validateRequired),
					huh.NewSelect[string]().
						Title("Block Type").
						Options(
							huh.NewOption("Profundo (demanding focus)", string(domain.BlockProfundo)),
							huh.NewOption("Ligero (light work)", string(domain.BlockLigero)),
						).
						Value(&blockType),
					huh.NewInput().
						Title("Start (HH:MM)").
						Placeholder("09:00").
						Value(&start).
						Validate(validateClockTime),
					huh.NewInput().
						Title("Planned Minutes").
						Placeholder("60").
						Value(&minutesStr).
						Validate(validatePositiveInt),
				))
				if err := form.Run(); err != nil {
					return err
				}
				minutes = parsePositiveInt(minutesStr, 60)
			}
			if start == "" {
				return fmt.Errorf("a start time is required")
			}

			startAt, err := blockStart(date, start)
			if err != nil {
				return err
			}
			if minutes <= 0 {
				minutes = 60
			}

			block := &domain.Block{
				Start:      startAt,
				End:        startAt.Add(time.Duration(minutes) * time.Minute),
				Category:   category,
				Type:       domain.BlockType(blockType),
				PlannedMin: minutes,
			}
			if err := app.Records.LogBlock(context.Background(), block); err != nil {
				return err
			}

			fmt.Printf("Logged %s %s block at %s (%s)\n",
				formatter.FormatMinutes(minutes), category, start, block.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Block category (study, training, ...)")
	cmd.Flags().StringVar(&blockType, "type", string(domain.BlockProfundo), "Block type: profundo or ligero")
	cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD, defaults to today)")
	cmd.Flags().StringVar(&start, "start", "", "Start time (HH:MM)")
	cmd.Flags().IntVar(&minutes, "minutes", 60, "Planned duration in minutes")

	return cmd
}

// blockStart combines an optional date with an HH:MM clock time.
func blockStart(date, clock string) (time.Time, error) {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid start time %q: use HH:MM", clock)
	}
	day := time.Now()
	if date != "" {
		day, err = time.ParseInLocation("2006-01-02", date, time.Local)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid date %q: use YYYY-MM-DD", date)
		}
	}
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, time.Local), nil
}

func newBlockDoneCmd(app *App) *cobra.Command {
	var minutes int
	var interrupted, skipFeedback bool
	var feeling, note string

	cmd := &cobra.Command{
		Use:   "done ID",
		Short: "Complete a block and record how it went",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if feeling == "" && !skipFeedback && app.interactive() {
				form := newForm(huh.NewGroup(
					feelingSelect(&feeling),
					huh.NewInput().
						Title("Note (optional)").
						Value(&note),
				))
				if err := form.Run(); err != nil {
					return err
				}
			}

			feedback, err := feedbackFromFlags(feeling, note, skipFeedback)
			if err != nil {
				return err
			}

			if err := app.Records.CompleteBlock(context.Background(), args[0], minutes, interrupted, feedback); err != nil {
				return err
			}

			fmt.Printf("Completed block %s (%s actual)\n", args[0], formatter.FormatMinutes(minutes))
			return nil
		},
	}

	cmd.Flags().IntVar(&minutes, "minutes", 0, "Actual duration in minutes")
	cmd.Flags().BoolVar(&interrupted, "interrupted", false, "Block was interrupted")
	cmd.Flags().StringVar(&feeling, "feeling", "", "How it felt: frustrated, tired, neutral, good, excellent")
	cmd.Flags().StringVar(&note, "note", "", "Feedback note")
	cmd.Flags().BoolVar(&skipFeedback, "no-feedback", false, "Complete without feedback")
	_ = cmd.MarkFlagRequired("minutes")

	return cmd
}

// feedbackFromFlags builds optional completion feedback from CLI inputs.
func feedbackFromFlags(feeling, note string, skip bool) (*domain.CompletionFeedback, error) {
	if skip || feeling == "" {
		return nil, nil
	}
	f, ok := domain.ParseFeeling(feeling)
	if !ok {
		return nil, fmt.Errorf("unknown feeling %q: use frustrated, tired, neutral, good or excellent", feeling)
	}
	return &domain.CompletionFeedback{Feeling: f, Note: note}, nil
}

func newBlockListCmd(app *App) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent blocks",
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()
			bundle, err := app.Records.Records(context.Background(), domain.RangeBounds{
				From: now.AddDate(0, 0, -days),
				To:   now.AddDate(0, 0, 1),
			})
			if err != nil {
				return err
			}
			if len(bundle.Blocks) == 0 {
				fmt.Println("No blocks found.")
				return nil
			}

			headers := []string{"ID", "WHEN", "CATEGORY", "TYPE", "PLANNED", "ACTUAL", "STATE"}
			rows := make([][]string, 0, len(bundle.Blocks))
			for _, b := range bundle.Blocks {
				actual := formatter.Dim("--")
				if b.ActualMin != nil {
					actual = formatter.FormatMinutes(*b.ActualMin)
				}
				state := formatter.Dim("○ open")
				switch {
				case b.Interrupted:
					state = formatter.StyleYellow.Render("! interrupted")
				case b.Completed:
					state = formatter.StyleGreen.Render("✔ done")
				}
				rows = append(rows, []string{
					formatter.TruncID(b.ID),
					fmt.Sprintf("%s %s", formatter.HumanDate(b.Start), b.Start.Format("15:04")),
					b.Category,
					formatter.BlockTypeBadge(b.Type),
					formatter.FormatMinutes(b.PlannedMin),
					actual,
					state,
				})
			}

			fmt.Print(formatter.RenderBox("Blocks", formatter.RenderTable(headers, rows)))
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 7, "Number of recent days to show")

	return cmd
}
