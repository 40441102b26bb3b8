package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/dmolina/ritmo/internal/cli/formatter"
	"github.com/dmolina/ritmo/internal/domain"
	"github.com/spf13/cobra"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Track intended work",
	}

	cmd.AddCommand(
		newTaskAddCmd(app),
		newTaskDoneCmd(app),
		newTaskListCmd(app),
	)

	return cmd
}

func newTaskAddCmd(app *App) *cobra.Command {
	var category, due string

	cmd := &cobra.Command{
		Use:   "add TITLE",
		Short: "Add a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			task := &domain.Task{Title: args[0], Category: category}
			if due != "" {
				d, err := time.ParseInLocation("2006-01-02", due, time.Local)
				if err != nil {
					return fmt.Errorf("invalid due date %q: use YYYY-MM-DD", due)
				}
				task.DueDate = &d
			}

			if err := app.Records.CreateTask(context.Background(), task); err != nil {
				return err
			}
			fmt.Printf("Added task %q (%s)\n", task.Title, task.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Task category")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD)")

	return cmd
}

func newTaskDoneCmd(app *App) *cobra.Command {
	var feeling, note string
	var skipFeedback bool

	cmd := &cobra.Command{
		Use:   "done ID",
		Short: "Mark a task complete",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			feedback, err := feedbackFromFlags(feeling, note, skipFeedback)
			if err != nil {
				return err
			}
			if err := app.Records.CompleteTask(context.Background(), args[0], feedback); err != nil {
				return err
			}
			fmt.Printf("Completed task %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&feeling, "feeling", "", "How it felt: frustrated, tired, neutral, good, excellent")
	cmd.Flags().StringVar(&note, "note", "", "Feedback note")
	cmd.Flags().BoolVar(&skipFeedback, "no-feedback", false, "Complete without feedback")

	return cmd
}

func newTaskListCmd(app *App) *cobra.Command {
	var days int
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()
			bundle, err := app.Records.Records(context.Background(), domain.RangeBounds{
				From: now.AddDate(0, 0, -days),
				To:   now.AddDate(0, 0, days),
			})
			if err != nil {
				return err
			}

			headers := []string{"ID", "TITLE", "CATEGORY", "DUE", "STATE"}
			rows := make([][]string, 0, len(bundle.Tasks))
			for _, t := range bundle.Tasks {
				if t.Done() && !all {
					continue
				}
				dueStr := formatter.Dim("--")
				if t.DueDate != nil {
					dueStr = formatter.HumanDate(*t.DueDate)
				}
				state := formatter.StyleBlue.Render("○ open")
				if t.Done() {
					state = formatter.Dim("✔ done")
				}
				rows = append(rows, []string{
					formatter.TruncID(t.ID),
					t.Title,
					t.Category,
					dueStr,
					state,
				})
			}

			if len(rows) == 0 {
				fmt.Println("No tasks found.")
				return nil
			}
			fmt.Print(formatter.RenderBox("Tasks", formatter.RenderTable(headers, rows)))
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 30, "Task horizon in days")
	cmd.Flags().BoolVar(&all, "all", false, "Include completed tasks")

	return cmd
}
