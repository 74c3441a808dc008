package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/DaanHessen/dicetray/internal/config"
	"github.com/DaanHessen/dicetray/internal/session"
	"github.com/DaanHessen/dicetray/internal/store"
)

// Run boots the TUI program and blocks until it exits. history may be nil.
func Run(ctx context.Context, sess *session.Session, history *store.HistoryRepo, cfg config.Config, version string) error {
	m := initialModel(ctx, sess, history, cfg, version)
	program := tea.NewProgram(m, tea.WithContext(ctx), tea.WithAltScreen())
	_, err := program.Run()
	return err
}
