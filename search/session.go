// ABOUTME: Search session state machine over the two-stage retrieval
// ABOUTME: Server-side search first, client-side refinement after
package search

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"strings"
	"sync"

	"github.com/serviceradar/radar/api"
	"github.com/serviceradar/radar/db"
	"github.com/serviceradar/radar/models"
)

// ErrEmptyQuery rejects a submission with no search term before any network
// call or history write happens.
var ErrEmptyQuery = errors.New("please enter a search term")

// State names the phases of a search session.
type State int

const (
	StateIdle State = iota
	StateSearching
	StateResults
	StateError
)

// Searcher mediates between the API gateway and local search history, and
// holds the raw result set plus whatever filters are active.
type Searcher struct {
	api   *api.Client
	cache *sql.DB

	mu      sync.Mutex
	state   State
	raw     []models.Listing
	filters models.FilterOptions
	lastErr string
	seq     uint64
}

// NewSearcher wires a searcher to the API client and the local history DB.
// cache may be nil, in which case no search history is recorded.
func NewSearcher(client *api.Client, cache *sql.DB) *Searcher {
	return &Searcher{
		api:     client,
		cache:   cache,
		filters: models.DefaultFilters(),
	}
}

// State returns the current phase.
func (s *Searcher) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Err returns the surfaced error message, if any.
func (s *Searcher) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// Search runs the server-side stage. The (query, location) pair is recorded
// into search history before the request goes out, since the search was
// attempted regardless of outcome. On failure the prior result set is
// preserved. A response that arrives after a newer Search started is
// discarded rather than applied to stale state.
func (s *Searcher) Search(ctx context.Context, query, location string) ([]models.Listing, error) {
	s.mu.Lock()
	s.state = StateSearching
	s.lastErr = ""
	s.seq++
	seq := s.seq
	s.mu.Unlock()

	if s.cache != nil {
		if _, err := db.AddRecentSearch(s.cache, query, location); err != nil {
			// History is best-effort; the search itself proceeds.
			log.Printf("failed to record search: %v", err)
		}
	}

	listings, err := s.api.SearchServices(ctx, query, location)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.seq != seq {
		// A newer search superseded this one.
		return nil, ctx.Err()
	}
	if err != nil {
		s.state = StateError
		s.lastErr = err.Error()
		return s.raw, err
	}
	s.state = StateResults
	s.raw = listings
	return Apply(listings, s.filters), nil
}

// Submit validates a form submission and then searches. An empty query is
// rejected locally and leaves the session state untouched.
func (s *Searcher) Submit(ctx context.Context, query, location string) ([]models.Listing, error) {
	if isBlank(query) {
		return nil, ErrEmptyQuery
	}
	return s.Search(ctx, query, location)
}

// ApplyFilters replaces the active filter options and returns the refined
// view of the raw results. Passing empty options is the Reset action.
func (s *Searcher) ApplyFilters(opts models.FilterOptions) []models.Listing {
	s.mu.Lock()
	defer s.mu.Unlock()
	if opts.SortBy == "" {
		opts.SortBy = models.SortRecent
	}
	if opts.SortOrder == "" {
		opts.SortOrder = models.OrderDesc
	}
	s.filters = opts
	return Apply(s.raw, s.filters)
}

// Results returns the current refined result set.
func (s *Searcher) Results() []models.Listing {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Apply(s.raw, s.filters)
}

// Raw returns the unfiltered result set from the last successful search.
func (s *Searcher) Raw() []models.Listing {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Listing, len(s.raw))
	copy(out, s.raw)
	return out
}

// Filters returns the active filter options.
func (s *Searcher) Filters() models.FilterOptions {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filters
}

func isBlank(v string) bool {
	return strings.TrimSpace(v) == ""
}
