package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/donikhodjaev/misbaha/internal/lockfile"
	"github.com/donikhodjaev/misbaha/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	if err := ctx.loadEngine(); err != nil {
		return err
	}

	lock, err := lockfile.Acquire(ctx.Store.Path())
	if err != nil {
		return err
	}
	defer func() {
		if err := lock.Release(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
	}()

	model := tui.NewModel(ctx.Engine, ctx.Store.Path())
	program := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run interactive session: %w", err)
	}
	return nil
}
