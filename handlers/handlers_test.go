// ABOUTME: Tests for MCP tool handlers
// ABOUTME: Validates tool input/output and error handling
package handlers

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/serviceradar/radar/api"
	"github.com/serviceradar/radar/config"
	"github.com/serviceradar/radar/db"
	"github.com/serviceradar/radar/models"
)

type fakeStore struct {
	data map[string]string
}

func (f *fakeStore) Get(key string) (string, bool) {
	v, ok := f.data[key]
	return v, ok
}

func (f *fakeStore) Set(key, value string) error {
	f.data[key] = value
	return nil
}

func (f *fakeStore) Delete(key string) error {
	delete(f.data, key)
	return nil
}

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenCache(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("OpenCache failed: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return database
}

func testAPI(t *testing.T, handler http.HandlerFunc) *api.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	cfg := &config.Config{APIBase: server.URL + "/api", AuthBase: server.URL}
	return api.New(cfg, &fakeStore{data: map[string]string{}})
}

func pricedListing(id int, title string, min, max float64) models.Listing {
	return models.Listing{
		ID: id, Title: title,
		PriceRangeMin: &min, PriceRangeMax: &max,
		Company: models.Company{ID: 7, Name: "Acme Plumbing", Location: "Kadikoy"},
	}
}

func TestSearchListingsHandler(t *testing.T) {
	client := testAPI(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]models.Listing{
			pricedListing(1, "Drain cleaning", 100, 300),
			pricedListing(2, "Full repipe", 800, 2000),
		})
	})
	cache := setupTestDB(t)
	handler := NewListingHandlers(client, cache)

	max := 500.0
	_, out, err := handler.SearchListings(context.Background(), nil, SearchListingsInput{
		Query:    "plumber",
		PriceMax: &max,
	})
	if err != nil {
		t.Fatalf("SearchListings failed: %v", err)
	}
	if out.Total != 1 {
		t.Fatalf("Expected 1 listing after price filter, got %d", out.Total)
	}
	if out.Listings[0].Title != "Drain cleaning" {
		t.Errorf("Unexpected listing: %+v", out.Listings[0])
	}
	if !strings.Contains(out.Listings[0].Price, "TL") {
		t.Errorf("Expected a formatted price, got %q", out.Listings[0].Price)
	}

	// The search was recorded into history
	searches, err := db.GetRecentSearches(cache)
	if err != nil {
		t.Fatalf("GetRecentSearches failed: %v", err)
	}
	if len(searches) != 1 || searches[0].Query != "plumber" {
		t.Errorf("Expected search recorded, got %+v", searches)
	}
}

func TestGetListingHandlerRequiresID(t *testing.T) {
	handler := NewListingHandlers(nil, nil)

	_, _, err := handler.GetListing(context.Background(), nil, GetListingInput{})
	if err == nil {
		t.Error("Expected an error for missing id")
	}
}

func TestAddFavoriteHandler(t *testing.T) {
	client := testAPI(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(pricedListing(42, "Drain cleaning", 100, 300))
	})
	cache := setupTestDB(t)
	handler := NewFavoriteHandlers(client, cache)

	_, out, err := handler.AddFavorite(context.Background(), nil, AddFavoriteInput{ListingID: 42})
	if err != nil {
		t.Fatalf("AddFavorite failed: %v", err)
	}
	if !out.Added || out.Title != "Drain cleaning" {
		t.Errorf("Unexpected output: %+v", out)
	}

	// A second add reports Added=false without refetching
	_, out, err = handler.AddFavorite(context.Background(), nil, AddFavoriteInput{ListingID: 42})
	if err != nil {
		t.Fatalf("Repeated AddFavorite failed: %v", err)
	}
	if out.Added {
		t.Error("Expected Added=false for an existing favorite")
	}
}

func TestListAndRemoveFavoriteHandlers(t *testing.T) {
	cache := setupTestDB(t)
	if err := db.AddFavorite(cache, pricedListing(42, "Drain cleaning", 100, 300)); err != nil {
		t.Fatalf("AddFavorite failed: %v", err)
	}
	handler := NewFavoriteHandlers(nil, cache)

	_, list, err := handler.ListFavorites(context.Background(), nil, ListFavoritesInput{})
	if err != nil {
		t.Fatalf("ListFavorites failed: %v", err)
	}
	if list.Total != 1 || list.Favorites[0].Title != "Drain cleaning" {
		t.Errorf("Unexpected list output: %+v", list)
	}

	_, _, err = handler.RemoveFavorite(context.Background(), nil, RemoveFavoriteInput{ListingID: 42})
	if err != nil {
		t.Fatalf("RemoveFavorite failed: %v", err)
	}

	_, list, err = handler.ListFavorites(context.Background(), nil, ListFavoritesInput{})
	if err != nil {
		t.Fatalf("ListFavorites failed: %v", err)
	}
	if list.Total != 0 {
		t.Errorf("Expected empty list after removal, got %d", list.Total)
	}
}

func TestRecentSearchesHandler(t *testing.T) {
	cache := setupTestDB(t)
	if _, err := db.AddRecentSearch(cache, "plumber", "Kadikoy"); err != nil {
		t.Fatalf("AddRecentSearch failed: %v", err)
	}
	handler := NewFavoriteHandlers(nil, cache)

	_, out, err := handler.RecentSearches(context.Background(), nil, RecentSearchesInput{})
	if err != nil {
		t.Fatalf("RecentSearches failed: %v", err)
	}
	if len(out.Searches) != 1 || out.Searches[0].Query != "plumber" {
		t.Errorf("Unexpected output: %+v", out)
	}
}

func TestCreateReferralHandlerValidates(t *testing.T) {
	client := testAPI(t, func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Path, "/services/") {
			_ = json.NewEncoder(w).Encode(pricedListing(42, "Drain cleaning", 100, 500))
			return
		}
		t.Errorf("Unexpected request to %s", r.URL.Path)
	})
	handler := NewReferralHandlers(client)

	price := 50.0
	_, _, err := handler.CreateReferral(context.Background(), nil, CreateReferralInput{
		ListingID:     42,
		CustomerName:  "Jane",
		CustomerEmail: "jane@example.com",
		Description:   "Leaky sink",
		OfferedPrice:  &price,
	})
	if err == nil {
		t.Fatal("Expected price-bounds validation error")
	}
	if !strings.Contains(err.Error(), "100") || !strings.Contains(err.Error(), "500") {
		t.Errorf("Error should cite the listing bounds, got: %v", err)
	}
}

func TestCreateReferralHandlerSuccess(t *testing.T) {
	client := testAPI(t, func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Path, "/services/") {
			_ = json.NewEncoder(w).Encode(pricedListing(42, "Drain cleaning", 100, 500))
			return
		}
		_ = json.NewEncoder(w).Encode(models.Referral{ID: 9, Status: models.ReferralPending})
	})
	handler := NewReferralHandlers(client)

	_, out, err := handler.CreateReferral(context.Background(), nil, CreateReferralInput{
		ListingID:     42,
		CustomerName:  "Jane",
		CustomerEmail: "jane@example.com",
		Description:   "Leaky sink",
	})
	if err != nil {
		t.Fatalf("CreateReferral failed: %v", err)
	}
	if out.Message == "" {
		t.Error("Expected a confirmation message")
	}
}
