// ABOUTME: Client-side refinement of raw search results
// ABOUTME: Pure filter/sort pass, never re-queries the backend
package search

import (
	"sort"
	"strings"

	"github.com/serviceradar/radar/models"
)

// Apply filters and sorts a raw result set according to opts. It is a pure
// function: the input slice is never mutated, and repeated calls with the
// same inputs yield identical output. Applying empty options returns the
// input unchanged apart from the default sort.
func Apply(listings []models.Listing, opts models.FilterOptions) []models.Listing {
	filtered := make([]models.Listing, 0, len(listings))
	for _, l := range listings {
		if keep(l, opts) {
			filtered = append(filtered, l)
		}
	}
	sortListings(filtered, opts)
	return filtered
}

func keep(l models.Listing, opts models.FilterOptions) bool {
	// A listing with no price of its own passes price filters.
	if opts.PriceMin != nil && l.PriceRangeMin != nil && *l.PriceRangeMin < *opts.PriceMin {
		return false
	}
	if opts.PriceMax != nil && l.PriceRangeMax != nil && *l.PriceRangeMax > *opts.PriceMax {
		return false
	}

	if opts.Location != "" {
		loc := l.Location()
		if loc == "" || !strings.Contains(strings.ToLower(loc), strings.ToLower(opts.Location)) {
			return false
		}
	}

	if opts.Category != "" && !strings.EqualFold(l.Category, opts.Category) {
		return false
	}
	return true
}

func sortListings(listings []models.Listing, opts models.FilterOptions) {
	sortBy := opts.SortBy
	if sortBy == "" {
		sortBy = models.SortRecent
	}
	order := opts.SortOrder
	if order == "" {
		order = models.OrderDesc
	}

	sort.SliceStable(listings, func(i, j int) bool {
		c := compare(listings[i], listings[j], sortBy)
		if order == models.OrderDesc {
			// Negating the comparator matches the original client exactly.
			// For "recent" the base comparator is already newest-first, so
			// desc flips it back to ascending-by-id; see the pipeline tests.
			c = -c
		}
		return c < 0
	})
}

// compare returns a three-way comparison for the given sort key. The "recent"
// key uses id as a proxy for recency (higher id = newer) and is descending at
// base; "price" and "name" are ascending at base.
func compare(a, b models.Listing, sortBy string) int {
	switch sortBy {
	case models.SortPrice:
		return cmpFloat(priceOf(a), priceOf(b))
	case models.SortName:
		return strings.Compare(a.Title, b.Title)
	default: // recent
		return cmpInt(b.ID, a.ID)
	}
}

func priceOf(l models.Listing) float64 {
	if l.PriceRangeMin == nil {
		return 0
	}
	return *l.PriceRangeMin
}

func cmpFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
