// ABOUTME: Listing detail view with favorite state and referral entry point
package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/serviceradar/radar/db"
)

func (m Model) renderDetailView() string {
	if m.detail == nil {
		return "No listing selected"
	}
	listing := *m.detail

	var s strings.Builder

	s.WriteString(titleStyle.Render(listing.Title))
	s.WriteString("\n\n")

	s.WriteString(labelStyle.Render("Company:  "))
	s.WriteString(listing.Company.Name)
	s.WriteString("\n")

	if loc := listing.Location(); loc != "" {
		s.WriteString(labelStyle.Render("Location: "))
		s.WriteString(loc)
		s.WriteString("\n")
	}

	s.WriteString(labelStyle.Render("Price:    "))
	s.WriteString(priceLabel(listing))
	s.WriteString("\n")

	if listing.Category != "" {
		s.WriteString(labelStyle.Render("Category: "))
		s.WriteString(listing.Category)
		s.WriteString("\n")
	}

	if m.cache != nil {
		if fav, err := db.IsFavorite(m.cache, listing.ID); err == nil && fav {
			s.WriteString(labelStyle.Render("Saved:    "))
			s.WriteString("★ in favorites\n")
		}
	}

	if listing.Description != "" {
		s.WriteString("\n")
		s.WriteString(listing.Description)
		s.WriteString("\n")
	}

	if m.errMsg != "" {
		s.WriteString("\n")
		s.WriteString(errorStyle.Render("Error: " + m.errMsg))
		s.WriteString("\n")
	}
	if m.statusMsg != "" {
		s.WriteString("\n")
		s.WriteString(statusStyle.Render(m.statusMsg))
		s.WriteString("\n")
	}

	s.WriteString("\n")
	s.WriteString(helpStyle.Render("r: Request service • f: Toggle favorite • Esc: Back • q: Quit"))

	return s.String()
}

func (m Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.viewMode = ViewBrowse
		m.errMsg = ""
		m.statusMsg = ""
		return m, nil
	case "q":
		return m, tea.Quit
	case "f":
		if m.detail != nil {
			return m, m.toggleFavorite(*m.detail)
		}
	case "r":
		if m.detail != nil {
			m.form = newReferralFormState(*m.detail)
			m.viewMode = ViewReferralForm
			m.errMsg = ""
			m.statusMsg = ""
		}
	}
	return m, nil
}
