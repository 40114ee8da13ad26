package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the review browser and blocks until the user quits.
func Run(ctx context.Context, cfg Config) error {
	if cfg.Storage == nil {
		return fmt.Errorf("tui requires a storage backend")
	}
	if cfg.Limit <= 0 {
		cfg.Limit = 100
	}

	program := tea.NewProgram(newModel(cfg), tea.WithContext(ctx), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("review browser failed: %w", err)
	}
	return nil
}
