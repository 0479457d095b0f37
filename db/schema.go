// ABOUTME: Database schema definitions for locally persisted UI state
// ABOUTME: Recent searches and favorited listings live here, nothing else
package db

import (
	"database/sql"
)

const schema = `
CREATE TABLE IF NOT EXISTS recent_searches (
	id TEXT PRIMARY KEY,
	query TEXT NOT NULL,
	location TEXT NOT NULL DEFAULT '',
	timestamp INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_recent_searches_timestamp ON recent_searches(timestamp DESC);

CREATE TABLE IF NOT EXISTS favorites (
	service_id INTEGER PRIMARY KEY,
	listing TEXT NOT NULL,
	added_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_favorites_added_at ON favorites(added_at DESC);
`

func InitSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
