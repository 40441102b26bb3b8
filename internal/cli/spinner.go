package cli

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dmolina/ritmo/internal/cli/formatter"
)

type workDoneMsg struct{ err error }

// spinnerModel animates a spinner while a blocking call runs in the
// background, then quits when the call returns.
type spinnerModel struct {
	spinner spinner.Model
	message string
	work    func() error
	err     error
}

func newSpinnerModel(message string, work func() error) spinnerModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(formatter.ColorPurple)
	return spinnerModel{spinner: s, message: message, work: work}
}

func (m spinnerModel) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		func() tea.Msg { return workDoneMsg{err: m.work()} },
	)
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if done, ok := msg.(workDoneMsg); ok {
		m.err = done.err
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

func (m spinnerModel) View() string {
	return "  " + m.spinner.View() + formatter.Dim(m.message) + "\n"
}

// runWithSpinner runs work behind an animated spinner on interactive
// terminals, and plainly otherwise.
func runWithSpinner(interactive bool, message string, work func() error) error {
	if !interactive {
		return work()
	}
	final, err := tea.NewProgram(newSpinnerModel(message, work)).Run()
	if err != nil {
		return err
	}
	if m, ok := final.(spinnerModel); ok {
		return m.err
	}
	return nil
}
