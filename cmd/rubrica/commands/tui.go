package commands

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/rubrica/internal/app"
	"github.com/jask/rubrica/internal/config"
	"github.com/jask/rubrica/internal/tui"
)

func runTUI(ctx context.Context, w *app.Wire) error {
	model := tui.New(ctx, w.Config, w.Registry, tui.Options{
		SaveSort: config.SaveSortOrder,
		Log:      w.Log,
	})
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
