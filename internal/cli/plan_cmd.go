package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/dmolina/ritmo/internal/cli/formatter"
	"github.com/dmolina/ritmo/internal/contract"
	"github.com/dmolina/ritmo/internal/domain"
	"github.com/spf13/cobra"
)

// stepAnswer carries one user response back into the session.
type stepAnswer struct {
	OptionID    string
	CustomValue string
	FreeText    string
}

func newPlanCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   `plan "<what you want to plan>"`,
		Short: "Plan the next days interactively",
		Long: "Describe what you want to get done in plain language. The planner extracts\n" +
			"your intent, asks at most a few clarifying questions, then lays the work out\n" +
			"over your best historical focus windows.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlanSession(app, args[0])
		},
	}
	return cmd
}

func runPlanSession(app *App, input string) error {
	ctx := context.Background()

	var resp *contract.CreateSessionResponse
	err := runWithSpinner(app.interactive(), "reading your request...", func() error {
		var err error
		resp, err = app.Planning.CreateSession(ctx, contract.CreateSessionRequest{
			UserInput:   input,
			ContextDate: time.Now(),
		})
		return err
	})
	if err != nil {
		return err
	}

	result := resp.Result
	for {
		switch result.Kind {
		case contract.StepNeedQuestion:
			answer, err := askQuestion(app, *result.Question, result.QuestionsAsked, result.QuestionBudget)
			if err != nil {
				return err
			}
			in := contract.StepInput{
				SessionID:             resp.SessionID,
				LastQuestionID:        result.Question.ID,
				LastAnswerOptionID:    answer.OptionID,
				LastAnswerCustomValue: answer.CustomValue,
				LastAnswerFreeText:    answer.FreeText,
			}
			err = runWithSpinner(app.interactive(), "updating the plan...", func() error {
				var err error
				result, err = app.Planning.Step(ctx, in)
				return err
			})
			if err != nil {
				return err
			}

		case contract.StepFinalPlan:
			fmt.Print(formatter.FormatPlan(result.Plan))
			fmt.Println(formatter.Dim("session " + resp.SessionID))
			return nil

		case contract.StepRedirectSingleDay:
			fmt.Print(formatter.FormatRedirect())
			return nil

		case contract.StepError:
			return fmt.Errorf("planning failed: %s", result.Err.Message)

		default:
			return fmt.Errorf("unexpected step outcome %q", result.Kind)
		}
	}
}

// askQuestion collects one answer: a themed select on interactive terminals,
// a numbered line prompt otherwise.
func askQuestion(app *App, q domain.Question, asked, budget int) (stepAnswer, error) {
	if app.interactive() {
		return askQuestionForm(q, asked, budget)
	}
	return askQuestionLine(q, asked, budget, os.Stdin)
}

func askQuestionForm(q domain.Question, asked, budget int) (stepAnswer, error) {
	options := make([]huh.Option[string], 0, len(q.Options))
	for _, opt := range q.Options {
		options = append(options, huh.NewOption(opt.Label, opt.ID))
	}

	var chosen string
	form := newForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title(q.Prompt).
			Description(fmt.Sprintf("question %d of %d", asked, budget)).
			Options(options...).
			Value(&chosen),
	))
	if err := form.Run(); err != nil {
		return stepAnswer{}, err
	}

	answer := stepAnswer{OptionID: chosen}
	for _, opt := range q.Options {
		if opt.ID == chosen && opt.AllowsCustomValue {
			var custom string
			input := newForm(huh.NewGroup(
				huh.NewInput().
					Title("Your value").
					Value(&custom).
					Validate(validateRequired),
			))
			if err := input.Run(); err != nil {
				return stepAnswer{}, err
			}
			answer.CustomValue = custom
		}
	}
	return answer, nil
}

func askQuestionLine(q domain.Question, asked, budget int, in *os.File) (stepAnswer, error) {
	fmt.Print(formatter.FormatQuestion(q, asked, budget))
	fmt.Print("> ")

	reader := bufio.NewReader(in)
	line, err := reader.ReadString('\n')
	if err != nil {
		return stepAnswer{}, fmt.Errorf("reading answer: %w", err)
	}
	return resolveLineAnswer(q, strings.TrimSpace(line)), nil
}

// resolveLineAnswer maps raw line input onto the question's options: a number
// selects that option, anything else is carried as free text.
func resolveLineAnswer(q domain.Question, line string) stepAnswer {
	if n, err := strconv.Atoi(line); err == nil && n >= 1 && n <= len(q.Options) {
		return stepAnswer{OptionID: q.Options[n-1].ID}
	}
	return stepAnswer{FreeText: line}
}
