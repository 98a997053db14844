package shell

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the shell on the alternate screen and blocks until the user
// quits.
func Run(svc Service, opts Options) error {
	p := tea.NewProgram(New(svc, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
