// ABOUTME: Shared wiring for CLI commands
// ABOUTME: Bundles config, preference store, cache DB, and API client
package cli

import (
	"database/sql"

	"github.com/serviceradar/radar/api"
	"github.com/serviceradar/radar/config"
	"github.com/serviceradar/radar/session"
	"github.com/serviceradar/radar/store"
)

// App carries everything a command needs. Built once in main.
type App struct {
	Config *config.Config
	Store  *store.Store
	Cache  *sql.DB
	API    *api.Client
}

// NewApp wires the API client to the preference store and installs the
// 401 cleanup hook: an expired token clears the persisted session.
func NewApp(cfg *config.Config, prefs *store.Store, cache *sql.DB) *App {
	client := api.New(cfg, prefs)
	client.OnUnauthorized(func() {
		_ = session.Logout(prefs)
	})
	return &App{
		Config: cfg,
		Store:  prefs,
		Cache:  cache,
		API:    client,
	}
}

// Session returns the current auth snapshot.
func (a *App) Session() session.Snapshot {
	return session.Load(a.Store)
}
