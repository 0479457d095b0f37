// ABOUTME: Listing MCP tool handlers
// ABOUTME: Implements search_listings and get_listing tools
package handlers

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/serviceradar/radar/api"
	"github.com/serviceradar/radar/db"
	"github.com/serviceradar/radar/models"
	"github.com/serviceradar/radar/search"
)

type ListingHandlers struct {
	api   *api.Client
	cache *sql.DB
}

func NewListingHandlers(client *api.Client, cache *sql.DB) *ListingHandlers {
	return &ListingHandlers{api: client, cache: cache}
}

type SearchListingsInput struct {
	Query    string   `json:"query" jsonschema:"Free-text search term"`
	Location string   `json:"location,omitempty" jsonschema:"Location to search in"`
	PriceMin *float64 `json:"price_min,omitempty" jsonschema:"Keep listings priced at or above this"`
	PriceMax *float64 `json:"price_max,omitempty" jsonschema:"Keep listings priced at or below this"`
	Category string   `json:"category,omitempty" jsonschema:"Category to refine by"`
	SortBy   string   `json:"sort_by,omitempty" jsonschema:"Sort key: recent, price, or name"`
}

type ListingOutput struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Company  string `json:"company"`
	Location string `json:"location,omitempty"`
	Price    string `json:"price,omitempty"`
	Category string `json:"category,omitempty"`
}

type SearchListingsOutput struct {
	Listings []ListingOutput `json:"listings"`
	Total    int             `json:"total"`
}

func (h *ListingHandlers) SearchListings(ctx context.Context, request *mcp.CallToolRequest, input SearchListingsInput) (*mcp.CallToolResult, SearchListingsOutput, error) {
	if h.cache != nil {
		if _, err := db.AddRecentSearch(h.cache, input.Query, input.Location); err != nil {
			return nil, SearchListingsOutput{}, fmt.Errorf("failed to record search: %w", err)
		}
	}

	listings, err := h.api.SearchServices(ctx, input.Query, input.Location)
	if err != nil {
		return nil, SearchListingsOutput{}, err
	}

	opts := models.DefaultFilters()
	opts.PriceMin = input.PriceMin
	opts.PriceMax = input.PriceMax
	opts.Category = input.Category
	if input.SortBy != "" {
		opts.SortBy = input.SortBy
	}
	refined := search.Apply(listings, opts)

	out := SearchListingsOutput{Total: len(refined)}
	for _, l := range refined {
		out.Listings = append(out.Listings, toListingOutput(l))
	}
	return nil, out, nil
}

type GetListingInput struct {
	ID int `json:"id" jsonschema:"Listing id (required)"`
}

type GetListingOutput struct {
	ListingOutput
	Description string `json:"description,omitempty"`
	CompanyID   int    `json:"company_id"`
}

func (h *ListingHandlers) GetListing(ctx context.Context, request *mcp.CallToolRequest, input GetListingInput) (*mcp.CallToolResult, GetListingOutput, error) {
	if input.ID == 0 {
		return nil, GetListingOutput{}, fmt.Errorf("id is required")
	}

	listing, err := h.api.GetService(ctx, input.ID)
	if err != nil {
		return nil, GetListingOutput{}, err
	}

	return nil, GetListingOutput{
		ListingOutput: toListingOutput(*listing),
		Description:   listing.Description,
		CompanyID:     listing.Company.ID,
	}, nil
}

func toListingOutput(l models.Listing) ListingOutput {
	company := l.CompanyName
	if company == "" {
		company = l.Company.Name
	}
	price := l.PriceRange
	if l.PriceRangeMin != nil && l.PriceRangeMax != nil {
		price = fmt.Sprintf("%v - %v TL", *l.PriceRangeMin, *l.PriceRangeMax)
	}
	return ListingOutput{
		ID:       l.ID,
		Title:    l.Title,
		Company:  company,
		Location: l.Location(),
		Price:    price,
		Category: l.Category,
	}
}
