package quiztui

import (
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"learnquiz/internal/quiz"
)

// Start runs the TUI shell until the user quits. Input comes from the
// terminal; the caller has already established that stdout is a TTY.
func Start(session *quiz.Session, opts Options, stdout io.Writer) error {
	if stdout == nil {
		stdout = os.Stdout
	}
	model := NewModel(session, opts)
	program := tea.NewProgram(model, tea.WithOutput(stdout), tea.WithAltScreen())
	_, err := program.Run()
	return err
}
