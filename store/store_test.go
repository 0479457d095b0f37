// ABOUTME: Tests for the badger-backed preference store
// ABOUTME: Covers fail-open reads, typed accessors, and persistence across reopen
package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/serviceradar/radar/models"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestGetSetDelete(t *testing.T) {
	s := testStore(t)

	_, ok := s.Get("missing")
	assert.False(t, ok, "absent key must read as missing, not error")

	require.NoError(t, s.Set("k", "v"))
	v, ok := s.Get("k")
	assert.True(t, ok)
	assert.Equal(t, "v", v)

	require.NoError(t, s.Delete("k"))
	_, ok = s.Get("k")
	assert.False(t, ok)

	// Deleting again is a no-op
	assert.NoError(t, s.Delete("k"))
}

func TestPersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()

	s, err := Open(dir)
	require.NoError(t, err)
	require.NoError(t, s.Set(KeyAccessToken, "token-1"))
	require.NoError(t, s.Close())

	s, err = Open(dir)
	require.NoError(t, err)
	defer s.Close()

	v, ok := s.Get(KeyAccessToken)
	assert.True(t, ok)
	assert.Equal(t, "token-1", v)
}

func TestPreferencesDefaults(t *testing.T) {
	s := testStore(t)

	prefs := s.Preferences()
	assert.Equal(t, models.ThemeSystem, prefs.Theme)
	assert.Equal(t, "tr", prefs.Language)
	assert.True(t, prefs.Notifications)
	assert.False(t, prefs.EmailUpdates)
}

func TestPreferencesCorruptRecordFallsBack(t *testing.T) {
	s := testStore(t)
	require.NoError(t, s.Set(KeyPreferences, "{not json"))

	prefs := s.Preferences()
	assert.Equal(t, models.DefaultPreferences(), prefs)
}

func TestPreferencesRoundTrip(t *testing.T) {
	s := testStore(t)

	want := models.UserPreferences{
		Theme:         models.ThemeDark,
		Language:      "en",
		Notifications: false,
		EmailUpdates:  true,
	}
	require.NoError(t, s.SetPreferences(want))
	assert.Equal(t, want, s.Preferences())
}

func TestThemeDefaultsToSystem(t *testing.T) {
	s := testStore(t)
	assert.Equal(t, models.ThemeSystem, s.Theme())
}

func TestThemeUnknownValueFallsBack(t *testing.T) {
	s := testStore(t)
	require.NoError(t, s.Set(KeyTheme, "hotdog-stand"))
	assert.Equal(t, models.ThemeSystem, s.Theme())
}

func TestThemeRoundTrip(t *testing.T) {
	s := testStore(t)
	require.NoError(t, s.SetTheme(models.ThemeLight))
	assert.Equal(t, models.ThemeLight, s.Theme())
}
