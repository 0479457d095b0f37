// ABOUTME: Firm-scoped endpoints: own listings CRUD, company profile, registration
// ABOUTME: Everything except registration requires an authenticated firm account
package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/serviceradar/radar/models"
)

// ServiceIn is the listing create/update payload for firm endpoints.
type ServiceIn struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	PriceRangeMin *float64 `json:"price_range_min"`
	PriceRangeMax *float64 `json:"price_range_max"`
	Category      string   `json:"category,omitempty"`
}

// FirmServices lists the authenticated firm's own listings.
func (c *Client) FirmServices(ctx context.Context) ([]models.Listing, error) {
	var out []models.Listing
	if err := c.call(ctx, "list firm services", http.MethodGet, "core/firm/services", nil, nil, &out, true); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateFirmService publishes a new listing.
func (c *Client) CreateFirmService(ctx context.Context, in ServiceIn) (*models.Listing, error) {
	var out models.Listing
	if err := c.call(ctx, "create service", http.MethodPost, "core/firm/services", nil, in, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateFirmService overwrites an existing listing.
func (c *Client) UpdateFirmService(ctx context.Context, id int, in ServiceIn) (*models.Listing, error) {
	var out models.Listing
	endpoint := fmt.Sprintf("core/firm/services/%d", id)
	if err := c.call(ctx, "update service", http.MethodPut, endpoint, nil, in, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteFirmService removes a listing.
func (c *Client) DeleteFirmService(ctx context.Context, id int) error {
	endpoint := fmt.Sprintf("core/firm/services/%d", id)
	return c.call(ctx, "delete service", http.MethodDelete, endpoint, nil, nil, nil, true)
}

// CompanyIn is the firm profile update payload.
type CompanyIn struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	Location     string `json:"location"`
	LocationText string `json:"location_text,omitempty"`
}

// FirmCompany fetches the authenticated firm's company profile.
func (c *Client) FirmCompany(ctx context.Context) (*models.Company, error) {
	var out models.Company
	if err := c.call(ctx, "fetch company", http.MethodGet, "core/firm/company", nil, nil, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateFirmCompany updates the firm's company profile.
func (c *Client) UpdateFirmCompany(ctx context.Context, in CompanyIn) (*models.Company, error) {
	var out models.Company
	if err := c.call(ctx, "update company", http.MethodPut, "core/firm/company", nil, in, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

// FirmRegisterIn creates a firm plus its first manager account.
type FirmRegisterIn struct {
	CompanyName string `json:"company_name"`
	Location    string `json:"location"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	FullName    string `json:"full_name"`
	Password    string `json:"password"`
}

// RegisterFirm registers a new firm and its manager. Public endpoint.
func (c *Client) RegisterFirm(ctx context.Context, in FirmRegisterIn) error {
	return c.call(ctx, "register firm", http.MethodPost, "core/firm/register", nil, in, nil, false)
}
