// ABOUTME: Public listing endpoints: search, single fetch, categories
// ABOUTME: All three are reachable without authentication
package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/serviceradar/radar/models"
)

// SearchServices runs the server-side free-text/location search.
// Both parameters may be empty; an empty query returns all listings.
func (c *Client) SearchServices(ctx context.Context, query, location string) ([]models.Listing, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("location", location)

	var listings []models.Listing
	err := c.call(ctx, "search services", http.MethodGet, "core/services/search", params, nil, &listings, false)
	if err != nil {
		return nil, err
	}
	return listings, nil
}

// GetService fetches a single listing by id.
func (c *Client) GetService(ctx context.Context, id int) (*models.Listing, error) {
	var listing models.Listing
	endpoint := fmt.Sprintf("core/services/%d", id)
	if err := c.call(ctx, "fetch service", http.MethodGet, endpoint, nil, nil, &listing, false); err != nil {
		return nil, err
	}
	return &listing, nil
}

// ListCategories returns the category taxonomy used by the filter panel.
func (c *Client) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := c.call(ctx, "list categories", http.MethodGet, "core/categories", nil, nil, &categories, false); err != nil {
		return nil, err
	}
	return categories, nil
}
