// ABOUTME: Referral endpoints: public creation plus firm and admin review
// ABOUTME: Accept/reject goes through the legacy company request action route
package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/serviceradar/radar/models"
)

// ReferralIn is the creation payload for POST core/referral/create.
type ReferralIn struct {
	TargetCompanyID    int      `json:"target_company_id"`
	RequestedServiceID int      `json:"requested_service_id"`
	CustomerName       string   `json:"customer_name"`
	CustomerEmail      string   `json:"customer_email"`
	Description        string   `json:"description"`
	OfferedPrice       *float64 `json:"offered_price,omitempty"`
}

// CreateReferral submits a referral request. Public endpoint.
func (c *Client) CreateReferral(ctx context.Context, in ReferralIn) (*models.Referral, error) {
	var out models.Referral
	if err := c.call(ctx, "create referral", http.MethodPost, "core/referral/create", nil, in, &out, false); err != nil {
		return nil, err
	}
	return &out, nil
}

// FirmReferrals lists the authenticated firm's incoming referrals.
func (c *Client) FirmReferrals(ctx context.Context) ([]models.Referral, error) {
	var out []models.Referral
	if err := c.call(ctx, "list firm referrals", http.MethodGet, "core/firm/my-referrals", nil, nil, &out, true); err != nil {
		return nil, err
	}
	return out, nil
}

// AdminReferrals lists every referral system-wide. Requires super admin.
func (c *Client) AdminReferrals(ctx context.Context) ([]models.Referral, error) {
	var out []models.Referral
	if err := c.call(ctx, "list all referrals", http.MethodGet, "core/admin/referrals", nil, nil, &out, true); err != nil {
		return nil, err
	}
	return out, nil
}

// ReferralAction accepts or rejects a referral. action must be
// models.ActionAccept or models.ActionReject.
func (c *Client) ReferralAction(ctx context.Context, id int, action string) error {
	if action != models.ActionAccept && action != models.ActionReject {
		return fmt.Errorf("invalid referral action %q", action)
	}
	endpoint := fmt.Sprintf("core/company/request/%d/action", id)
	body := map[string]string{"action": action}
	return c.call(ctx, "referral action", http.MethodPost, endpoint, nil, body, nil, true)
}
