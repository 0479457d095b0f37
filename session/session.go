// ABOUTME: Session snapshot derived from persisted auth tokens and role flags
// ABOUTME: Implements login persistence and idempotent logout cleanup
package session

import (
	"strconv"

	"github.com/serviceradar/radar/store"
)

// Store is the key/value surface the session layer needs. The badger-backed
// preference store satisfies it; tests use an in-memory fake.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Delete(key string) error
}

// authKeys are every persisted key logout must clear.
var authKeys = []string{
	store.KeyAccessToken,
	store.KeyRefreshToken,
	store.KeySuperuser,
	store.KeyFirmManager,
	store.KeyUserID,
	store.KeyFullName,
}

// Snapshot is the authentication/role state computed from storage.
// It is derived, never independently mutated.
type Snapshot struct {
	IsAuthenticated  bool
	UserID           int
	DisplayName      string
	IsSuperAdmin     bool
	IsCompanyManager bool
}

// Load computes a snapshot from whatever tokens and flags exist in storage.
// Presence of an access token string is treated as authenticated; there is
// no expiry check here — a 401 from the API triggers Logout instead.
func Load(s Store) Snapshot {
	token, _ := s.Get(store.KeyAccessToken)
	if token == "" {
		return Snapshot{}
	}

	snap := Snapshot{IsAuthenticated: true}
	if name, ok := s.Get(store.KeyFullName); ok {
		snap.DisplayName = name
	}
	if id, ok := s.Get(store.KeyUserID); ok {
		snap.UserID, _ = strconv.Atoi(id)
	}
	if v, _ := s.Get(store.KeySuperuser); v == "true" {
		snap.IsSuperAdmin = true
	}
	if v, _ := s.Get(store.KeyFirmManager); v == "true" {
		snap.IsCompanyManager = true
	}
	// Super admins hold every firm permission.
	if snap.IsSuperAdmin {
		snap.IsCompanyManager = true
	}
	return snap
}

// AccessToken returns the persisted access token, or empty when logged out.
func AccessToken(s Store) string {
	token, _ := s.Get(store.KeyAccessToken)
	return token
}

// LoginOut is the token endpoint's success payload.
type LoginOut struct {
	Access        string `json:"access"`
	Refresh       string `json:"refresh"`
	ID            int    `json:"id"`
	FullName      string `json:"full_name"`
	IsSuperuser   bool   `json:"is_superuser"`
	IsFirmManager bool   `json:"is_firm_manager"`
}

// SaveLogin persists tokens and role flags after a successful login.
func SaveLogin(s Store, out LoginOut) error {
	if out.Access != "" {
		if err := s.Set(store.KeyAccessToken, out.Access); err != nil {
			return err
		}
	}
	if out.Refresh != "" {
		if err := s.Set(store.KeyRefreshToken, out.Refresh); err != nil {
			return err
		}
	}
	if err := s.Set(store.KeySuperuser, strconv.FormatBool(out.IsSuperuser)); err != nil {
		return err
	}
	if err := s.Set(store.KeyFirmManager, strconv.FormatBool(out.IsFirmManager)); err != nil {
		return err
	}
	if out.ID != 0 {
		if err := s.Set(store.KeyUserID, strconv.Itoa(out.ID)); err != nil {
			return err
		}
	}
	return s.Set(store.KeyFullName, out.FullName)
}

// Logout clears every persisted auth key. Idempotent: clearing already-absent
// keys is a no-op.
func Logout(s Store) error {
	var firstErr error
	for _, key := range authKeys {
		if err := s.Delete(key); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
