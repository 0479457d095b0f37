// ABOUTME: Recent search history operations
// ABOUTME: Bounded to ten entries, deduplicated by (query, location), newest first
package db

import (
	"database/sql"
	"fmt"
	"math/rand"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/serviceradar/radar/models"
)

// maxRecentSearches bounds the history list.
const maxRecentSearches = 10

// AddRecentSearch records an attempted search. An identical (query, location)
// pair is removed first so a re-search bumps its position instead of
// duplicating, then the list is trimmed to the ten most recent.
func AddRecentSearch(db *sql.DB, query, location string) (*models.RecentSearch, error) {
	now := time.Now()
	entropy := ulid.Monotonic(rand.New(rand.NewSource(now.UnixNano())), 0)
	search := &models.RecentSearch{
		ID:        ulid.MustNew(ulid.Timestamp(now), entropy).String(),
		Query:     query,
		Location:  location,
		Timestamp: now.UnixMilli(),
	}

	tx, err := db.Begin()
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DELETE FROM recent_searches WHERE query = ? AND location = ?`,
		query, location); err != nil {
		return nil, fmt.Errorf("failed to deduplicate searches: %w", err)
	}

	if _, err := tx.Exec(`
		INSERT INTO recent_searches (id, query, location, timestamp)
		VALUES (?, ?, ?, ?)
	`, search.ID, search.Query, search.Location, search.Timestamp); err != nil {
		return nil, fmt.Errorf("failed to record search: %w", err)
	}

	if _, err := tx.Exec(`
		DELETE FROM recent_searches WHERE id NOT IN (
			SELECT id FROM recent_searches ORDER BY timestamp DESC, id DESC LIMIT ?
		)
	`, maxRecentSearches); err != nil {
		return nil, fmt.Errorf("failed to trim search history: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return search, nil
}

// GetRecentSearches returns the history, most recent first.
func GetRecentSearches(db *sql.DB) ([]models.RecentSearch, error) {
	rows, err := db.Query(`
		SELECT id, query, location, timestamp
		FROM recent_searches
		ORDER BY timestamp DESC, id DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var searches []models.RecentSearch
	for rows.Next() {
		var s models.RecentSearch
		if err := rows.Scan(&s.ID, &s.Query, &s.Location, &s.Timestamp); err != nil {
			return nil, err
		}
		searches = append(searches, s)
	}
	return searches, rows.Err()
}

// ClearRecentSearches wipes the history.
func ClearRecentSearches(db *sql.DB) error {
	_, err := db.Exec(`DELETE FROM recent_searches`)
	return err
}
