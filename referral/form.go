// ABOUTME: Referral submission flow: local validation plus a single POST
// ABOUTME: Shared by the plain inquiry and the price-quoted variants
package referral

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/serviceradar/radar/api"
	"github.com/serviceradar/radar/models"
)

// ErrInFlight is returned when Submit is called while a previous submission
// is still running; no second request is issued.
var ErrInFlight = errors.New("submission already in progress")

// ValidationError carries field-level messages rendered inline, never sent
// over the network.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	return strings.Join(parts, "; ")
}

// Form holds the values a customer fills in before submitting a referral.
type Form struct {
	TargetCompanyID int
	ListingID       int
	CustomerName    string
	CustomerEmail   string
	Description     string

	// OfferedPrice is set only for the quote variant.
	OfferedPrice *float64
}

// Validate checks required fields and, when the listing defines a price
// range, that the offer falls inside it. The range message cites the exact
// bounds from the listing.
func (f *Form) Validate(listing models.Listing) error {
	fields := map[string]string{}

	if strings.TrimSpace(f.CustomerName) == "" {
		fields["customer_name"] = "name is required"
	}
	email := strings.TrimSpace(f.CustomerEmail)
	if email == "" {
		fields["customer_email"] = "email is required"
	} else if !strings.Contains(email, "@") {
		fields["customer_email"] = "enter a valid email address"
	}
	if strings.TrimSpace(f.Description) == "" {
		fields["description"] = "description is required"
	}

	if f.OfferedPrice != nil && listing.PriceRangeMin != nil && listing.PriceRangeMax != nil {
		if *f.OfferedPrice < *listing.PriceRangeMin || *f.OfferedPrice > *listing.PriceRangeMax {
			fields["offered_price"] = fmt.Sprintf("enter a price between %v and %v",
				*listing.PriceRangeMin, *listing.PriceRangeMax)
		}
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// gateway is the slice of the API client the submitter needs; narrowed so
// tests can count requests without a server.
type gateway interface {
	CreateReferral(ctx context.Context, in api.ReferralIn) (*models.Referral, error)
}

// Submitter runs validated submissions with an in-flight guard: exactly one
// request per accepted submission, re-entrant calls rejected while running.
type Submitter struct {
	api gateway

	mu       sync.Mutex
	inFlight bool
}

// NewSubmitter creates a submitter over the API client.
func NewSubmitter(client gateway) *Submitter {
	return &Submitter{api: client}
}

// InFlight reports whether a submission is currently running.
func (s *Submitter) InFlight() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inFlight
}

// Submit validates the form against the listing and posts it. On success the
// form is reset and a confirmation message returned; on failure the form
// values are preserved so the user can retry without re-typing.
func (s *Submitter) Submit(ctx context.Context, form *Form, listing models.Listing) (string, error) {
	if err := form.Validate(listing); err != nil {
		return "", err
	}

	s.mu.Lock()
	if s.inFlight {
		s.mu.Unlock()
		return "", ErrInFlight
	}
	s.inFlight = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.inFlight = false
		s.mu.Unlock()
	}()

	_, err := s.api.CreateReferral(ctx, api.ReferralIn{
		TargetCompanyID:    form.TargetCompanyID,
		RequestedServiceID: form.ListingID,
		CustomerName:       strings.TrimSpace(form.CustomerName),
		CustomerEmail:      strings.TrimSpace(form.CustomerEmail),
		Description:        strings.TrimSpace(form.Description),
		OfferedPrice:       form.OfferedPrice,
	})
	if err != nil {
		return "", err
	}

	form.CustomerName = ""
	form.CustomerEmail = ""
	form.Description = ""
	form.OfferedPrice = nil

	return fmt.Sprintf("Your request was sent to %s. The company will contact you.", listing.Company.Name), nil
}
