package db

import (
	"fmt"
	"testing"
	"time"
)

// Timestamps have millisecond resolution; keep inserts on distinct ticks so
// ordering assertions are deterministic.
func tick() {
	time.Sleep(2 * time.Millisecond)
}

func TestAddRecentSearch(t *testing.T) {
	database := testDB(t)

	search, err := AddRecentSearch(database, "plumber", "Kadikoy")
	if err != nil {
		t.Fatalf("AddRecentSearch failed: %v", err)
	}
	if search.ID == "" {
		t.Error("Expected a generated ID")
	}
	if search.Timestamp == 0 {
		t.Error("Expected a timestamp")
	}

	searches, err := GetRecentSearches(database)
	if err != nil {
		t.Fatalf("GetRecentSearches failed: %v", err)
	}
	if len(searches) != 1 {
		t.Fatalf("Expected 1 search, got %d", len(searches))
	}
	if searches[0].Query != "plumber" || searches[0].Location != "Kadikoy" {
		t.Errorf("Unexpected search: %+v", searches[0])
	}
}

func TestAddRecentSearchDeduplicates(t *testing.T) {
	database := testDB(t)

	if _, err := AddRecentSearch(database, "plumber", "Kadikoy"); err != nil {
		t.Fatalf("AddRecentSearch failed: %v", err)
	}
	tick()
	if _, err := AddRecentSearch(database, "electrician", ""); err != nil {
		t.Fatalf("AddRecentSearch failed: %v", err)
	}
	tick()
	// Repeating the first search must bump it to the top, not duplicate it
	if _, err := AddRecentSearch(database, "plumber", "Kadikoy"); err != nil {
		t.Fatalf("AddRecentSearch failed: %v", err)
	}

	searches, err := GetRecentSearches(database)
	if err != nil {
		t.Fatalf("GetRecentSearches failed: %v", err)
	}
	if len(searches) != 2 {
		t.Fatalf("Expected 2 searches after dedup, got %d", len(searches))
	}
	if searches[0].Query != "plumber" {
		t.Errorf("Expected repeated search first, got %q", searches[0].Query)
	}
	if searches[1].Query != "electrician" {
		t.Errorf("Expected older search second, got %q", searches[1].Query)
	}
}

func TestAddRecentSearchDifferentLocationIsDistinct(t *testing.T) {
	database := testDB(t)

	if _, err := AddRecentSearch(database, "plumber", "Kadikoy"); err != nil {
		t.Fatalf("AddRecentSearch failed: %v", err)
	}
	if _, err := AddRecentSearch(database, "plumber", "Besiktas"); err != nil {
		t.Fatalf("AddRecentSearch failed: %v", err)
	}

	searches, err := GetRecentSearches(database)
	if err != nil {
		t.Fatalf("GetRecentSearches failed: %v", err)
	}
	if len(searches) != 2 {
		t.Errorf("Same query with different location should be distinct, got %d entries", len(searches))
	}
}

func TestRecentSearchesBounded(t *testing.T) {
	database := testDB(t)

	for i := 0; i < 15; i++ {
		if _, err := AddRecentSearch(database, fmt.Sprintf("query-%d", i), ""); err != nil {
			t.Fatalf("AddRecentSearch failed: %v", err)
		}
		tick()
	}

	searches, err := GetRecentSearches(database)
	if err != nil {
		t.Fatalf("GetRecentSearches failed: %v", err)
	}
	if len(searches) != maxRecentSearches {
		t.Fatalf("Expected history bounded at %d, got %d", maxRecentSearches, len(searches))
	}
	// The oldest entries were evicted
	if searches[0].Query != "query-14" {
		t.Errorf("Expected newest entry first, got %q", searches[0].Query)
	}
	if searches[len(searches)-1].Query != "query-5" {
		t.Errorf("Expected query-5 as oldest surviving entry, got %q", searches[len(searches)-1].Query)
	}
}

func TestClearRecentSearches(t *testing.T) {
	database := testDB(t)

	if _, err := AddRecentSearch(database, "plumber", ""); err != nil {
		t.Fatalf("AddRecentSearch failed: %v", err)
	}
	if err := ClearRecentSearches(database); err != nil {
		t.Fatalf("ClearRecentSearches failed: %v", err)
	}

	searches, err := GetRecentSearches(database)
	if err != nil {
		t.Fatalf("GetRecentSearches failed: %v", err)
	}
	if len(searches) != 0 {
		t.Errorf("Expected empty history after clear, got %d entries", len(searches))
	}
}
