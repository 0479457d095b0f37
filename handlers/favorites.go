// ABOUTME: Favorite and search-history MCP tool handlers
// ABOUTME: Implements list_favorites, add_favorite, remove_favorite, recent_searches
package handlers

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/serviceradar/radar/api"
	"github.com/serviceradar/radar/db"
)

type FavoriteHandlers struct {
	api   *api.Client
	cache *sql.DB
}

func NewFavoriteHandlers(client *api.Client, cache *sql.DB) *FavoriteHandlers {
	return &FavoriteHandlers{api: client, cache: cache}
}

type ListFavoritesInput struct{}

type FavoriteOutput struct {
	ListingID int    `json:"listing_id"`
	Title     string `json:"title"`
	Company   string `json:"company,omitempty"`
	AddedAt   string `json:"added_at"`
}

type ListFavoritesOutput struct {
	Favorites []FavoriteOutput `json:"favorites"`
	Total     int              `json:"total"`
}

func (h *FavoriteHandlers) ListFavorites(_ context.Context, request *mcp.CallToolRequest, input ListFavoritesInput) (*mcp.CallToolResult, ListFavoritesOutput, error) {
	favorites, err := db.ListFavorites(h.cache)
	if err != nil {
		return nil, ListFavoritesOutput{}, fmt.Errorf("failed to load favorites: %w", err)
	}

	out := ListFavoritesOutput{Total: len(favorites)}
	for _, fav := range favorites {
		company := fav.Listing.CompanyName
		if company == "" {
			company = fav.Listing.Company.Name
		}
		out.Favorites = append(out.Favorites, FavoriteOutput{
			ListingID: fav.ListingID,
			Title:     fav.Listing.Title,
			Company:   company,
			AddedAt:   time.UnixMilli(fav.AddedAt).Format(time.RFC3339),
		})
	}
	return nil, out, nil
}

type AddFavoriteInput struct {
	ListingID int `json:"listing_id" jsonschema:"Listing id to favorite (required)"`
}

type AddFavoriteOutput struct {
	ListingID int    `json:"listing_id"`
	Title     string `json:"title"`
	Added     bool   `json:"added"`
}

func (h *FavoriteHandlers) AddFavorite(ctx context.Context, request *mcp.CallToolRequest, input AddFavoriteInput) (*mcp.CallToolResult, AddFavoriteOutput, error) {
	if input.ListingID == 0 {
		return nil, AddFavoriteOutput{}, fmt.Errorf("listing_id is required")
	}

	already, err := db.IsFavorite(h.cache, input.ListingID)
	if err != nil {
		return nil, AddFavoriteOutput{}, err
	}
	if already {
		return nil, AddFavoriteOutput{ListingID: input.ListingID, Added: false}, nil
	}

	listing, err := h.api.GetService(ctx, input.ListingID)
	if err != nil {
		return nil, AddFavoriteOutput{}, err
	}

	if err := db.AddFavorite(h.cache, *listing); err != nil {
		return nil, AddFavoriteOutput{}, fmt.Errorf("failed to save favorite: %w", err)
	}
	return nil, AddFavoriteOutput{ListingID: listing.ID, Title: listing.Title, Added: true}, nil
}

type RemoveFavoriteInput struct {
	ListingID int `json:"listing_id" jsonschema:"Listing id to remove (required)"`
}

type RemoveFavoriteOutput struct {
	ListingID int `json:"listing_id"`
}

func (h *FavoriteHandlers) RemoveFavorite(_ context.Context, request *mcp.CallToolRequest, input RemoveFavoriteInput) (*mcp.CallToolResult, RemoveFavoriteOutput, error) {
	if input.ListingID == 0 {
		return nil, RemoveFavoriteOutput{}, fmt.Errorf("listing_id is required")
	}
	if err := db.RemoveFavorite(h.cache, input.ListingID); err != nil {
		return nil, RemoveFavoriteOutput{}, err
	}
	return nil, RemoveFavoriteOutput{ListingID: input.ListingID}, nil
}

type RecentSearchesInput struct{}

type RecentSearchOutput struct {
	Query    string `json:"query"`
	Location string `json:"location,omitempty"`
	When     string `json:"when"`
}

type RecentSearchesOutput struct {
	Searches []RecentSearchOutput `json:"searches"`
}

func (h *FavoriteHandlers) RecentSearches(_ context.Context, request *mcp.CallToolRequest, input RecentSearchesInput) (*mcp.CallToolResult, RecentSearchesOutput, error) {
	searches, err := db.GetRecentSearches(h.cache)
	if err != nil {
		return nil, RecentSearchesOutput{}, fmt.Errorf("failed to load search history: %w", err)
	}

	var out RecentSearchesOutput
	for _, s := range searches {
		out.Searches = append(out.Searches, RecentSearchOutput{
			Query:    s.Query,
			Location: s.Location,
			When:     time.UnixMilli(s.Timestamp).Format(time.RFC3339),
		})
	}
	return nil, out, nil
}
