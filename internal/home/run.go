package home

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// Run mounts p in a Bubble Tea program, blocks until the program exits and
// unmounts the page. It returns the final page state.
func Run(ctx context.Context, p Page, opts ...tea.ProgramOption) (Page, error) {
	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)
	final, err := tea.NewProgram(p, opts...).Run()
	p.Unmount()
	if fp, ok := final.(Page); ok {
		p = fp
	}
	return p, err
}
