// ABOUTME: Entry point that starts the bubbletea program in alt-screen mode
package tui

import (
	"database/sql"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/serviceradar/radar/api"
	"github.com/serviceradar/radar/store"
)

// Run starts the interactive interface and blocks until the user quits.
func Run(client *api.Client, cache *sql.DB, prefs *store.Store) error {
	p := tea.NewProgram(NewModel(client, cache, prefs), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run interface: %w", err)
	}
	return nil
}
