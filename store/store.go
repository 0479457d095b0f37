// ABOUTME: Local preference store backed by a badger key/value database
// ABOUTME: Thread-safe wrapper used for theme, preferences, and session keys
package store

import (
	"errors"
	"fmt"
	"sync"

	badger "github.com/dgraph-io/badger/v3"
)

// Storage keys. Each concern gets its own key so clearing one cannot
// corrupt another. Names match the original client's localStorage keys.
const (
	KeyPreferences = "user_preferences"
	KeyTheme       = "theme_preference"

	KeyAccessToken  = "accessToken"
	KeyRefreshToken = "refreshToken"
	KeySuperuser    = "user_is_superuser"
	KeyFirmManager  = "user_is_firm_manager"
	KeyUserID       = "user_id"
	KeyFullName     = "full_name"
)

// Store wraps a badger database with string-keyed access.
type Store struct {
	db *badger.DB
	mu sync.RWMutex
}

// Open opens (or creates) the preference store at the given directory.
func Open(path string) (*Store, error) {
	opts := badger.DefaultOptions(path).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open preference store: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}

// Get retrieves a value by key. The second return is false when the key is
// absent or unreadable; reads fail open.
func (s *Store) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var value string
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		raw, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}
		value = string(raw)
		return nil
	})
	if err != nil {
		return "", false
	}
	return value, true
}

// Set stores a value. Write failures propagate to the caller.
func (s *Store) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), []byte(value))
	})
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

// Delete removes a key. Deleting an absent key is a no-op.
func (s *Store) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
	if err != nil && !errors.Is(err, badger.ErrKeyNotFound) {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}
