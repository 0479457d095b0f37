// ABOUTME: User address book endpoints
// ABOUTME: CRUD plus marking one address as the default
package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/serviceradar/radar/models"
)

// AddressIn is the create/update payload for an address.
type AddressIn struct {
	Title    string `json:"title"`
	Line     string `json:"line"`
	City     string `json:"city"`
	District string `json:"district,omitempty"`
}

// ListAddresses returns the authenticated user's saved addresses.
func (c *Client) ListAddresses(ctx context.Context) ([]models.Address, error) {
	var out []models.Address
	if err := c.call(ctx, "list addresses", http.MethodGet, "users/addresses", nil, nil, &out, true); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateAddress saves a new address.
func (c *Client) CreateAddress(ctx context.Context, in AddressIn) (*models.Address, error) {
	var out models.Address
	if err := c.call(ctx, "create address", http.MethodPost, "users/addresses", nil, in, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateAddress overwrites an existing address.
func (c *Client) UpdateAddress(ctx context.Context, id int, in AddressIn) (*models.Address, error) {
	var out models.Address
	endpoint := fmt.Sprintf("users/addresses/%d", id)
	if err := c.call(ctx, "update address", http.MethodPut, endpoint, nil, in, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteAddress removes an address.
func (c *Client) DeleteAddress(ctx context.Context, id int) error {
	endpoint := fmt.Sprintf("users/addresses/%d", id)
	return c.call(ctx, "delete address", http.MethodDelete, endpoint, nil, nil, nil, true)
}

// SetDefaultAddress marks the given address as the default one.
func (c *Client) SetDefaultAddress(ctx context.Context, id int) error {
	endpoint := fmt.Sprintf("users/addresses/%d/default", id)
	return c.call(ctx, "set default address", http.MethodPut, endpoint, nil, nil, nil, true)
}
