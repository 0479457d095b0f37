// ABOUTME: Migration utility that imports a browser local-storage export into the radar cache.
// ABOUTME: Provides dry-run and backup capabilities for safe imports.

package main

import (
	"database/sql"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/serviceradar/radar/config"
	"github.com/serviceradar/radar/db"
	"github.com/serviceradar/radar/models"
	"github.com/serviceradar/radar/store"
)

func main() {
	input := flag.String("input", "", "Path to local-storage JSON export (required)")
	dryRun := flag.Bool("dry-run", false, "Show what would happen without making changes")
	backup := flag.Bool("backup", true, "Create backup of the cache database before import")
	flag.Parse()

	if *input == "" {
		log.Fatal("Error: -input flag is required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := migrate(cfg, *input, *dryRun, *backup); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("Migration completed successfully")
}

// export mirrors the key layout the browser client used in local storage.
// Values may be stored either as raw JSON or as JSON-encoded strings, so each
// field is decoded leniently.
type export struct {
	Preferences *models.UserPreferences
	Theme       string
	Searches    []models.RecentSearch
	Favorites   []models.FavoriteListing
}

func parseExport(data []byte) (*export, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse export: %w", err)
	}

	out := &export{}
	if msg, ok := raw["user_preferences"]; ok {
		var prefs models.UserPreferences
		if err := decodeValue(msg, &prefs); err == nil {
			out.Preferences = &prefs
		}
	}
	if msg, ok := raw["theme_preference"]; ok {
		_ = decodeValue(msg, &out.Theme)
	}
	if msg, ok := raw["recent_searches"]; ok {
		_ = decodeValue(msg, &out.Searches)
	}
	if msg, ok := raw["favorite_services"]; ok {
		_ = decodeValue(msg, &out.Favorites)
	}
	return out, nil
}

// decodeValue handles both direct JSON and the double-encoded form local
// storage produces (a JSON string containing JSON).
func decodeValue(msg json.RawMessage, out interface{}) error {
	if err := json.Unmarshal(msg, out); err == nil {
		return nil
	}
	var inner string
	if err := json.Unmarshal(msg, &inner); err != nil {
		return fmt.Errorf("unrecognized value encoding")
	}
	return json.Unmarshal([]byte(inner), out)
}

func migrate(cfg *config.Config, inputPath string, dryRun, createBackup bool) error {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to read export: %w", err)
	}

	exp, err := parseExport(data)
	if err != nil {
		return err
	}

	log.Printf("Export contains: %d recent searches, %d favorites, preferences=%v, theme=%q",
		len(exp.Searches), len(exp.Favorites), exp.Preferences != nil, exp.Theme)

	if dryRun {
		log.Printf("[DRY RUN] Would import the above into the local cache and preference store")
		return nil
	}

	cachePath, err := cfg.CachePath()
	if err != nil {
		return fmt.Errorf("failed to resolve cache path: %w", err)
	}

	if createBackup {
		if _, err := os.Stat(cachePath); err == nil {
			backupPath := fmt.Sprintf("%s.backup.%s", cachePath, time.Now().Format("20060102-150405"))
			log.Printf("Creating backup: %s", backupPath)

			input, err := os.ReadFile(cachePath)
			if err != nil {
				return fmt.Errorf("failed to read database: %w", err)
			}
			if err := os.WriteFile(backupPath, input, 0600); err != nil {
				return fmt.Errorf("failed to create backup: %w", err)
			}
			log.Printf("Backup created successfully")
		}
	}

	database, err := db.OpenCache(cachePath)
	if err != nil {
		return fmt.Errorf("failed to open cache database: %w", err)
	}
	defer func() { _ = database.Close() }()

	if err := importSearches(database, exp.Searches); err != nil {
		return err
	}
	if err := importFavorites(database, exp.Favorites); err != nil {
		return err
	}

	if exp.Preferences != nil || exp.Theme != "" {
		prefsPath, err := cfg.PrefsPath()
		if err != nil {
			return fmt.Errorf("failed to resolve preference store path: %w", err)
		}
		prefs, err := store.Open(prefsPath)
		if err != nil {
			return fmt.Errorf("failed to open preference store: %w", err)
		}
		defer func() { _ = prefs.Close() }()

		if exp.Preferences != nil {
			if err := prefs.SetPreferences(*exp.Preferences); err != nil {
				return fmt.Errorf("failed to import preferences: %w", err)
			}
			log.Printf("Imported preferences")
		}
		switch exp.Theme {
		case "":
		case models.ThemeLight, models.ThemeDark, models.ThemeSystem:
			if err := prefs.SetTheme(exp.Theme); err != nil {
				return fmt.Errorf("failed to import theme: %w", err)
			}
			log.Printf("Imported theme: %s", exp.Theme)
		default:
			log.Printf("Skipping unknown theme: %q", exp.Theme)
		}
	}

	return nil
}

// importSearches preserves the exported IDs and timestamps so ordering
// survives the move. Existing entries with the same ID are left alone.
func importSearches(database *sql.DB, searches []models.RecentSearch) error {
	for _, rs := range searches {
		if rs.ID == "" || rs.Query == "" && rs.Location == "" {
			continue
		}
		_, err := database.Exec(
			`INSERT INTO recent_searches (id, query, location, timestamp) VALUES (?, ?, ?, ?)
			 ON CONFLICT(id) DO NOTHING`,
			rs.ID, rs.Query, rs.Location, rs.Timestamp,
		)
		if err != nil {
			return fmt.Errorf("failed to import search %q: %w", rs.Query, err)
		}
	}
	log.Printf("Imported %d recent searches", len(searches))
	return nil
}

func importFavorites(database *sql.DB, favorites []models.FavoriteListing) error {
	for _, fav := range favorites {
		id := fav.ListingID
		if id == 0 {
			id = fav.Listing.ID
		}
		if id == 0 {
			continue
		}
		snapshot, err := json.Marshal(fav.Listing)
		if err != nil {
			return fmt.Errorf("failed to encode favorite %d: %w", id, err)
		}
		_, err = database.Exec(
			`INSERT INTO favorites (service_id, listing, added_at) VALUES (?, ?, ?)
			 ON CONFLICT(service_id) DO NOTHING`,
			id, string(snapshot), fav.AddedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to import favorite %d: %w", id, err)
		}
	}
	log.Printf("Imported %d favorites", len(favorites))
	return nil
}
