package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the interactive UI and blocks until the user quits or ctx is
// canceled.
func Run(ctx context.Context, repo Ledger, opts ...Option) error {
	if repo == nil {
		return fmt.Errorf("ledger is required")
	}

	m := New(ctx, repo, opts...)

	programOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if m.config.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}

	slog.Debug("Starting terminal UI", "view", m.ActiveView())
	if _, err := tea.NewProgram(m, programOpts...).Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("failed to run terminal UI: %w", err)
	}
	return nil
}
