// ABOUTME: Favorited listing operations with set semantics keyed by listing id
// ABOUTME: Stores a point-in-time JSON snapshot of the listing, never re-synced
package db

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/serviceradar/radar/models"
)

// AddFavorite stores a listing snapshot. Adding an already-favorited id is a
// no-op; the original snapshot is kept.
func AddFavorite(db *sql.DB, listing models.Listing) error {
	snapshot, err := json.Marshal(listing)
	if err != nil {
		return fmt.Errorf("failed to encode listing: %w", err)
	}

	_, err = db.Exec(`
		INSERT INTO favorites (service_id, listing, added_at)
		VALUES (?, ?, ?)
		ON CONFLICT(service_id) DO NOTHING
	`, listing.ID, string(snapshot), time.Now().UnixMilli())
	return err
}

// RemoveFavorite drops a favorite. Removing an absent id is a no-op.
func RemoveFavorite(db *sql.DB, listingID int) error {
	_, err := db.Exec(`DELETE FROM favorites WHERE service_id = ?`, listingID)
	return err
}

// IsFavorite reports whether the listing id is favorited.
func IsFavorite(db *sql.DB, listingID int) (bool, error) {
	var count int
	err := db.QueryRow(`SELECT COUNT(*) FROM favorites WHERE service_id = ?`, listingID).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListFavorites returns all favorites, newest first, with decoded snapshots.
func ListFavorites(db *sql.DB) ([]models.FavoriteListing, error) {
	rows, err := db.Query(`
		SELECT service_id, listing, added_at
		FROM favorites
		ORDER BY added_at DESC, service_id DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var favorites []models.FavoriteListing
	for rows.Next() {
		var fav models.FavoriteListing
		var snapshot string
		if err := rows.Scan(&fav.ListingID, &snapshot, &fav.AddedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(snapshot), &fav.Listing); err != nil {
			// A corrupt snapshot keeps its id so it can still be removed.
			fav.Listing = models.Listing{ID: fav.ListingID}
		}
		favorites = append(favorites, fav)
	}
	return favorites, rows.Err()
}
