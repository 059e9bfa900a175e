package cli

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/mytodo/internal/update"
)

func startTUI(ctx context.Context, app *App) error {
	m := update.NewModel(ctx, app.Store, update.Options{
		DarkMode: app.Config.DarkMode,
		Logger:   app.Logger,
	})
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
