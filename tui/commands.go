// ABOUTME: Async tea.Cmd constructors and their result messages
// ABOUTME: All network and database work happens off the update loop
package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/serviceradar/radar/db"
	"github.com/serviceradar/radar/models"
)

type searchDoneMsg struct {
	listings []models.Listing
	err      error
}

type favoritesLoadedMsg struct {
	favorites []models.FavoriteListing
}

type recentLoadedMsg struct {
	searches []models.RecentSearch
}

type referralsLoadedMsg struct {
	referrals []models.Referral
	err       error
}

type referralActionDoneMsg struct {
	status string
	err    error
}

type referralSubmitDoneMsg struct {
	confirmation string
	err          error
}

func (m *Model) runSearch(query, location string) tea.Cmd {
	searcher := m.searcher
	filters := m.filters
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if _, err := searcher.Submit(ctx, query, location); err != nil {
			return searchDoneMsg{err: err}
		}
		return searchDoneMsg{listings: searcher.ApplyFilters(filters)}
	}
}

func (m *Model) loadFavorites() tea.Cmd {
	cache := m.cache
	return func() tea.Msg {
		favorites, err := db.ListFavorites(cache)
		if err != nil {
			return favoritesLoadedMsg{}
		}
		return favoritesLoadedMsg{favorites: favorites}
	}
}

func (m *Model) loadRecent() tea.Cmd {
	cache := m.cache
	return func() tea.Msg {
		searches, err := db.GetRecentSearches(cache)
		if err != nil {
			return recentLoadedMsg{}
		}
		return recentLoadedMsg{searches: searches}
	}
}

func (m *Model) loadReferrals() tea.Cmd {
	client := m.client
	admin := m.snap.IsSuperAdmin
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		var (
			referrals []models.Referral
			err       error
		)
		if admin {
			referrals, err = client.AdminReferrals(ctx)
		} else {
			referrals, err = client.FirmReferrals(ctx)
		}
		return referralsLoadedMsg{referrals: referrals, err: err}
	}
}

func (m *Model) runReferralAction(id int, action string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := client.ReferralAction(ctx, id, action); err != nil {
			return referralActionDoneMsg{err: err}
		}
		return referralActionDoneMsg{status: "Referral " + action + "ed"}
	}
}

func (m *Model) toggleFavorite(listing models.Listing) tea.Cmd {
	cache := m.cache
	return func() tea.Msg {
		if isFav, err := db.IsFavorite(cache, listing.ID); err == nil {
			if isFav {
				_ = db.RemoveFavorite(cache, listing.ID)
			} else {
				_ = db.AddFavorite(cache, listing)
			}
		}
		// Always re-read so the view reflects actual db state.
		favorites, err := db.ListFavorites(cache)
		if err != nil {
			return favoritesLoadedMsg{}
		}
		return favoritesLoadedMsg{favorites: favorites}
	}
}
