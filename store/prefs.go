// ABOUTME: Typed accessors over the preference store
// ABOUTME: Preferences singleton and theme choice, with fail-open reads
package store

import (
	"encoding/json"

	"github.com/serviceradar/radar/models"
)

// Preferences returns the stored preferences record, or the documented
// defaults when the entry is missing or unparsable.
func (s *Store) Preferences() models.UserPreferences {
	raw, ok := s.Get(KeyPreferences)
	if !ok {
		return models.DefaultPreferences()
	}

	var prefs models.UserPreferences
	if err := json.Unmarshal([]byte(raw), &prefs); err != nil {
		return models.DefaultPreferences()
	}
	return prefs
}

// SetPreferences overwrites the preferences record.
func (s *Store) SetPreferences(prefs models.UserPreferences) error {
	data, err := json.Marshal(prefs)
	if err != nil {
		return err
	}
	return s.Set(KeyPreferences, string(data))
}

// Theme returns the stored theme choice, defaulting to system.
// Kept under its own key, separate from the preferences record; callers
// changing the theme are expected to update both.
func (s *Store) Theme() string {
	theme, ok := s.Get(KeyTheme)
	if !ok || theme == "" {
		return models.ThemeSystem
	}
	switch theme {
	case models.ThemeLight, models.ThemeDark, models.ThemeSystem:
		return theme
	}
	return models.ThemeSystem
}

// SetTheme stores the theme choice.
func (s *Store) SetTheme(theme string) error {
	return s.Set(KeyTheme, theme)
}
