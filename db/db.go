// ABOUTME: Cache database lifecycle for locally persisted UI state
// ABOUTME: One sqlite file holds recent searches and favorite snapshots
package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// OpenCache opens the sqlite cache backing recent searches and favorites,
// creating the file and its schema on first use. The TUI and the web
// dashboard may hold the cache open at the same time, so it runs in WAL
// mode with a busy timeout and a single connection per process.
func OpenCache(path string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	cache, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open cache at %s: %w", path, err)
	}
	cache.SetMaxOpenConns(1)

	if err := InitSchema(cache); err != nil {
		cache.Close()
		return nil, fmt.Errorf("failed to initialize cache schema: %w", err)
	}
	return cache, nil
}
