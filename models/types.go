// ABOUTME: Data models for marketplace entities
// ABOUTME: Defines Listing, Company, Referral, and locally persisted record types
package models

import "time"

type Company struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Slug         string `json:"slug,omitempty"`
	Description  string `json:"description,omitempty"`
	Location     string `json:"location,omitempty"`
	LocationText string `json:"location_text,omitempty"`
}

type Category struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
}

type Listing struct {
	ID            int      `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	PriceRange    string   `json:"price_range,omitempty"`
	PriceRangeMin *float64 `json:"price_range_min"`
	PriceRangeMax *float64 `json:"price_range_max"`
	Company       Company  `json:"company"`
	CompanyName   string   `json:"company_name,omitempty"`
	Category      string   `json:"category,omitempty"`
}

// Location returns the company location used for filtering and display,
// preferring the structured field over free text.
func (l Listing) Location() string {
	if l.Company.Location != "" {
		return l.Company.Location
	}
	return l.Company.LocationText
}

type Referral struct {
	ID               int       `json:"id"`
	CustomerName     string    `json:"customer_name"`
	CustomerEmail    string    `json:"customer_email"`
	Description      string    `json:"description"`
	OfferedPrice     *float64  `json:"offered_price,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	Status           string    `json:"status"`
	TargetCompany    Company   `json:"target_company"`
	RequestedListing Listing   `json:"requested_service"`
}

// Referral status constants.
const (
	ReferralPending  = "pending"
	ReferralAccepted = "accepted"
	ReferralRejected = "rejected"
)

// Referral actions accepted by the company request endpoint.
const (
	ActionAccept = "accept"
	ActionReject = "reject"
)

type Employee struct {
	ID            int    `json:"id"`
	Username      string `json:"username"`
	Email         string `json:"email"`
	FullName      string `json:"full_name"`
	CompanyID     int    `json:"company,omitempty"`
	IsFirmManager bool   `json:"is_firm_manager,omitempty"`
}

type Address struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Line      string `json:"line"`
	City      string `json:"city"`
	District  string `json:"district,omitempty"`
	IsDefault bool   `json:"is_default"`
}

// Theme constants.
const (
	ThemeLight  = "light"
	ThemeDark   = "dark"
	ThemeSystem = "system"
)

type UserPreferences struct {
	Theme         string `json:"theme"`
	Language      string `json:"language"`
	Notifications bool   `json:"notifications"`
	EmailUpdates  bool   `json:"emailUpdates"`
}

// DefaultPreferences returns the preferences record created on first read.
func DefaultPreferences() UserPreferences {
	return UserPreferences{
		Theme:         ThemeSystem,
		Language:      "tr",
		Notifications: true,
		EmailUpdates:  false,
	}
}

type RecentSearch struct {
	ID        string `json:"id"`
	Query     string `json:"query"`
	Location  string `json:"location"`
	Timestamp int64  `json:"timestamp"`
}

type FavoriteListing struct {
	ListingID int     `json:"serviceId"`
	Listing   Listing `json:"service"`
	AddedAt   int64   `json:"addedAt"`
}

// Sort key constants for FilterOptions.
const (
	SortRecent = "recent"
	SortPrice  = "price"
	SortName   = "name"
)

// Sort order constants for FilterOptions.
const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// FilterOptions describes the client-side refinement applied to a raw
// search result set. Zero values mean "no constraint".
type FilterOptions struct {
	PriceMin  *float64
	PriceMax  *float64
	Location  string
	Category  string
	SortBy    string
	SortOrder string
}

// DefaultFilters returns the options in effect before the user touches the
// filter panel: newest first, nothing excluded.
func DefaultFilters() FilterOptions {
	return FilterOptions{SortBy: SortRecent, SortOrder: OrderDesc}
}

// IsEmpty reports whether the options carry no constraint beyond the sort
// defaults. Applying empty options is the Reset action.
func (f FilterOptions) IsEmpty() bool {
	return f.PriceMin == nil && f.PriceMax == nil && f.Location == "" && f.Category == "" &&
		(f.SortBy == "" || f.SortBy == SortRecent) &&
		(f.SortOrder == "" || f.SortOrder == OrderDesc)
}
