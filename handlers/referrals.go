// ABOUTME: Referral MCP tool handlers
// ABOUTME: Implements create_referral with the same local validation as the forms
package handlers

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/serviceradar/radar/api"
	"github.com/serviceradar/radar/referral"
)

type ReferralHandlers struct {
	api *api.Client
}

func NewReferralHandlers(client *api.Client) *ReferralHandlers {
	return &ReferralHandlers{api: client}
}

type CreateReferralInput struct {
	ListingID     int      `json:"listing_id" jsonschema:"Listing id to inquire about (required)"`
	CustomerName  string   `json:"customer_name" jsonschema:"Customer name (required)"`
	CustomerEmail string   `json:"customer_email" jsonschema:"Customer email (required)"`
	Description   string   `json:"description" jsonschema:"What the customer needs (required)"`
	OfferedPrice  *float64 `json:"offered_price,omitempty" jsonschema:"Optional price offer, must fall within the listing's range"`
}

type CreateReferralOutput struct {
	Message string `json:"message"`
}

func (h *ReferralHandlers) CreateReferral(ctx context.Context, request *mcp.CallToolRequest, input CreateReferralInput) (*mcp.CallToolResult, CreateReferralOutput, error) {
	if input.ListingID == 0 {
		return nil, CreateReferralOutput{}, fmt.Errorf("listing_id is required")
	}

	listing, err := h.api.GetService(ctx, input.ListingID)
	if err != nil {
		return nil, CreateReferralOutput{}, err
	}

	form := &referral.Form{
		TargetCompanyID: listing.Company.ID,
		ListingID:       listing.ID,
		CustomerName:    input.CustomerName,
		CustomerEmail:   input.CustomerEmail,
		Description:     input.Description,
		OfferedPrice:    input.OfferedPrice,
	}

	submitter := referral.NewSubmitter(h.api)
	message, err := submitter.Submit(ctx, form, *listing)
	if err != nil {
		return nil, CreateReferralOutput{}, err
	}
	return nil, CreateReferralOutput{Message: message}, nil
}
