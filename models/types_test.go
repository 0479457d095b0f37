// ABOUTME: Tests for model helpers and defaults
package models

import "testing"

func TestListingLocation(t *testing.T) {
	l := Listing{Company: Company{Location: "Kadikoy", LocationText: "somewhere"}}
	if got := l.Location(); got != "Kadikoy" {
		t.Errorf("Location() = %q, want structured field preferred", got)
	}

	l = Listing{Company: Company{LocationText: "free text"}}
	if got := l.Location(); got != "free text" {
		t.Errorf("Location() = %q, want free-text fallback", got)
	}

	l = Listing{}
	if got := l.Location(); got != "" {
		t.Errorf("Location() = %q, want empty", got)
	}
}

func TestDefaultPreferences(t *testing.T) {
	prefs := DefaultPreferences()
	if prefs.Theme != ThemeSystem {
		t.Errorf("Theme = %q, want %q", prefs.Theme, ThemeSystem)
	}
	if prefs.Language != "tr" {
		t.Errorf("Language = %q, want tr", prefs.Language)
	}
	if !prefs.Notifications {
		t.Error("Notifications should default on")
	}
	if prefs.EmailUpdates {
		t.Error("EmailUpdates should default off")
	}
}

func TestFilterOptionsIsEmpty(t *testing.T) {
	if !(FilterOptions{}).IsEmpty() {
		t.Error("Zero options should be empty")
	}
	if !DefaultFilters().IsEmpty() {
		t.Error("Default sort alone should count as empty")
	}

	min := 10.0
	cases := []FilterOptions{
		{PriceMin: &min},
		{Location: "Kadikoy"},
		{Category: "repair"},
		{SortBy: SortPrice},
		{SortOrder: OrderAsc},
	}
	for i, opts := range cases {
		if opts.IsEmpty() {
			t.Errorf("case %d: options %+v should not be empty", i, opts)
		}
	}
}
