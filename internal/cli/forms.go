package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/dmolina/ritmo/internal/cli/formatter"
	"github.com/dmolina/ritmo/internal/domain"
)

// ritmoHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func ritmoHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// newForm wraps groups in a form with the shared theme.
func newForm(groups ...*huh.Group) *huh.Form {
	return huh.NewForm(groups...).WithTheme(ritmoHuhTheme()).WithShowHelp(false)
}

// validatePositiveInt accepts empty or a positive integer.
func validatePositiveInt(s string) error {
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return fmt.Errorf("enter a positive number")
	}
	return nil
}

// validateRequired rejects the empty string.
func validateRequired(s string) error {
	if s == "" {
		return fmt.Errorf("this field is required")
	}
	return nil
}

// validateClockTime accepts empty or an HH:MM time string.
func validateClockTime(s string) error {
	if s == "" {
		return nil
	}
	if _, err := time.Parse("15:04", s); err != nil {
		return fmt.Errorf("use HH:MM format")
	}
	return nil
}

// validateOptionalDate accepts empty or a YYYY-MM-DD date string.
func validateOptionalDate(s string) error {
	if s == "" {
		return nil
	}
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD format")
	}
	return nil
}

// parsePositiveInt parses s as a positive integer, returning fallback if s is
// empty, non-numeric, or non-positive.
func parsePositiveInt(s string, fallback int) int {
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

// feelingSelect creates a huh select over the five completion feelings.
func feelingSelect(result *string) *huh.Select[string] {
	*result = domain.FeelingGood.String()
	return huh.NewSelect[string]().
		Title("How did it feel?").
		Options(
			huh.NewOption("Excellent", domain.FeelingExcellent.String()),
			huh.NewOption("Good", domain.FeelingGood.String()),
			huh.NewOption("Neutral", domain.FeelingNeutral.String()),
			huh.NewOption("Tired", domain.FeelingTired.String()),
			huh.NewOption("Frustrated", domain.FeelingFrustrated.String()),
		).
		Value(result)
}

// scaleSelect creates a huh select for a 1..5 self-report scale.
func scaleSelect(title string, result *string) *huh.Select[string] {
	*result = "3"
	return huh.NewSelect[string]().
		Title(title).
		Options(
			huh.NewOption("5 - great", "5"),
			huh.NewOption("4", "4"),
			huh.NewOption("3 - okay", "3"),
			huh.NewOption("2", "2"),
			huh.NewOption("1 - rough", "1"),
		).
		Value(result)
}
