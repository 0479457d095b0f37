// ABOUTME: Browse view: tab bar, search inputs, results table, banners
// ABOUTME: Tables are rebuilt each render from the current model data
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/serviceradar/radar/models"
)

func (m Model) renderBrowseView() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("RADAR"))
	s.WriteString("\n\n")

	s.WriteString(m.renderTabs())
	s.WriteString("\n\n")

	if m.tab == TabSearch {
		s.WriteString(m.renderSearchBar())
		s.WriteString("\n\n")
	}

	if m.errMsg != "" {
		s.WriteString(errorStyle.Render("Error: " + m.errMsg))
		s.WriteString("\n\n")
	} else if m.statusMsg != "" {
		s.WriteString(statusStyle.Render(m.statusMsg))
		s.WriteString("\n\n")
	}

	s.WriteString(m.renderTable())
	s.WriteString("\n\n")

	s.WriteString(m.renderBrowseHelp())

	return s.String()
}

func (m Model) renderTabs() string {
	tabs := []string{"Search", "Favorites", "Recent", "Referrals"}
	var rendered []string

	for i, tab := range tabs {
		if Tab(i) == m.tab {
			rendered = append(rendered, tabActiveStyle.Render(tab))
		} else {
			rendered = append(rendered, tabInactiveStyle.Render(tab))
		}
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m Model) renderSearchBar() string {
	bar := m.queryInput.View() + "  " + m.locationInput.View()
	if m.busy {
		bar += "  " + m.spinner.View() + " searching"
	}
	return bar
}

func (m Model) renderTable() string {
	switch m.tab {
	case TabFavorites:
		return m.renderFavoritesTable()
	case TabRecent:
		return m.renderRecentTable()
	case TabReferrals:
		return m.renderReferralsTable()
	default:
		return m.renderResultsTable()
	}
}

func (m Model) renderResultsTable() string {
	if len(m.results) == 0 {
		return labelStyle.Render("No results. Press / to search.")
	}

	columns := []table.Column{
		{Title: "Title", Width: 30},
		{Title: "Company", Width: 22},
		{Title: "Location", Width: 16},
		{Title: "Price", Width: 18},
	}

	var rows []table.Row
	for _, listing := range m.results {
		rows = append(rows, table.Row{
			listing.Title,
			listing.Company.Name,
			listing.Location(),
			priceLabel(listing),
		})
	}

	return m.buildTable(columns, rows)
}

func (m Model) renderFavoritesTable() string {
	if len(m.favorites) == 0 {
		return labelStyle.Render("No favorites yet. Press f on a result to save it.")
	}

	columns := []table.Column{
		{Title: "Title", Width: 30},
		{Title: "Company", Width: 22},
		{Title: "Price", Width: 18},
		{Title: "Added", Width: 16},
	}

	var rows []table.Row
	for _, fav := range m.favorites {
		rows = append(rows, table.Row{
			fav.Listing.Title,
			fav.Listing.Company.Name,
			priceLabel(fav.Listing),
			time.UnixMilli(fav.AddedAt).Format("2006-01-02 15:04"),
		})
	}

	return m.buildTable(columns, rows)
}

func (m Model) renderRecentTable() string {
	if len(m.recent) == 0 {
		return labelStyle.Render("No recent searches.")
	}

	columns := []table.Column{
		{Title: "Query", Width: 30},
		{Title: "Location", Width: 20},
		{Title: "When", Width: 20},
	}

	var rows []table.Row
	for _, rs := range m.recent {
		rows = append(rows, table.Row{
			rs.Query,
			rs.Location,
			time.UnixMilli(rs.Timestamp).Format("2006-01-02 15:04"),
		})
	}

	return m.buildTable(columns, rows)
}

func (m Model) renderReferralsTable() string {
	if !m.snap.IsAuthenticated {
		return labelStyle.Render("Log in with 'radar login' to see referrals.")
	}
	if len(m.referrals) == 0 {
		return labelStyle.Render("No referrals. Press R to refresh.")
	}

	columns := []table.Column{
		{Title: "ID", Width: 6},
		{Title: "Customer", Width: 20},
		{Title: "Service", Width: 24},
		{Title: "Price", Width: 10},
		{Title: "Status", Width: 10},
	}

	var rows []table.Row
	for _, ref := range m.referrals {
		price := "-"
		if ref.OfferedPrice != nil {
			price = fmt.Sprintf("%.0f TL", *ref.OfferedPrice)
		}
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", ref.ID),
			ref.CustomerName,
			ref.RequestedListing.Title,
			price,
			ref.Status,
		})
	}

	return m.buildTable(columns, rows)
}

func (m Model) buildTable(columns []table.Column, rows []table.Row) string {
	height := m.height - 12
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	if m.selectedRow < len(rows) {
		t.SetCursor(m.selectedRow)
	}

	return t.View()
}

func (m Model) renderBrowseHelp() string {
	var help []string
	switch m.tab {
	case TabFavorites:
		help = []string{"↑/↓: Navigate", "Tab: Switch tabs", "Enter: Details", "f: Remove favorite", "q: Quit"}
	case TabRecent:
		help = []string{"↑/↓: Navigate", "Tab: Switch tabs", "Enter: Search again", "q: Quit"}
	case TabReferrals:
		help = []string{"↑/↓: Navigate", "Tab: Switch tabs", "a: Accept", "x: Reject", "R: Refresh", "q: Quit"}
	default:
		help = []string{"↑/↓: Navigate", "Tab: Switch tabs", "/: Search", "Enter: Details", "f: Favorite", "s: Sort", "q: Quit"}
	}
	return helpStyle.Render(strings.Join(help, " • "))
}

// rowCount reports how many rows the active tab currently shows.
func (m Model) rowCount() int {
	switch m.tab {
	case TabFavorites:
		return len(m.favorites)
	case TabRecent:
		return len(m.recent)
	case TabReferrals:
		return len(m.referrals)
	default:
		return len(m.results)
	}
}

func (m Model) handleBrowseKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// While the search inputs are focused, keys go to them first.
	if m.tab == TabSearch && (m.queryInput.Focused() || m.locationInput.Focused()) {
		return m.handleSearchInputKeys(msg)
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.selectedRow > 0 {
			m.selectedRow--
		}
	case "down", "j":
		if m.selectedRow < m.rowCount()-1 {
			m.selectedRow++
		}
	case "tab":
		m.tab = (m.tab + 1) % tabCount
		m.selectedRow = 0
		m.statusMsg = ""
		return m, m.loadTab()
	case "/":
		if m.tab == TabSearch {
			m.queryInput.Focus()
			return m, nil
		}
	case "enter":
		return m.handleBrowseEnter()
	case "f":
		return m.handleFavoriteToggle()
	case "s":
		if m.tab == TabSearch {
			m.cycleSort()
			m.searcher.ApplyFilters(m.filters)
			m.results = m.searcher.Results()
		}
	case "a":
		if m.tab == TabReferrals {
			return m.handleReferralAction(models.ActionAccept)
		}
	case "x":
		if m.tab == TabReferrals {
			return m.handleReferralAction(models.ActionReject)
		}
	case "R":
		if m.tab == TabReferrals && !m.busy {
			m.busy = true
			return m, m.loadReferrals()
		}
	}

	return m, nil
}

func (m Model) handleSearchInputKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		// The in-flight flag makes repeated Enter presses no-ops until the
		// running search completes.
		if m.busy {
			return m, nil
		}
		query := m.queryInput.Value()
		location := m.locationInput.Value()
		if strings.TrimSpace(query) == "" {
			m.errMsg = "please enter a search term"
			return m, nil
		}
		m.busy = true
		m.errMsg = ""
		m.queryInput.Blur()
		m.locationInput.Blur()
		return m, tea.Batch(m.runSearch(query, location), m.spinner.Tick)
	case "tab":
		if m.queryInput.Focused() {
			m.queryInput.Blur()
			m.locationInput.Focus()
		} else {
			m.locationInput.Blur()
			m.queryInput.Focus()
		}
		return m, nil
	case "esc":
		m.queryInput.Blur()
		m.locationInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	if m.queryInput.Focused() {
		m.queryInput, cmd = m.queryInput.Update(msg)
	} else {
		m.locationInput, cmd = m.locationInput.Update(msg)
	}
	return m, cmd
}

func (m Model) handleBrowseEnter() (tea.Model, tea.Cmd) {
	switch m.tab {
	case TabSearch:
		if m.selectedRow < len(m.results) {
			listing := m.results[m.selectedRow]
			m.detail = &listing
			m.viewMode = ViewDetail
		}
	case TabFavorites:
		if m.selectedRow < len(m.favorites) {
			listing := m.favorites[m.selectedRow].Listing
			m.detail = &listing
			m.viewMode = ViewDetail
		}
	case TabRecent:
		if m.selectedRow < len(m.recent) && !m.busy {
			rs := m.recent[m.selectedRow]
			m.queryInput.SetValue(rs.Query)
			m.locationInput.SetValue(rs.Location)
			m.tab = TabSearch
			m.selectedRow = 0
			m.busy = true
			return m, tea.Batch(m.runSearch(rs.Query, rs.Location), m.spinner.Tick)
		}
	}
	return m, nil
}

func (m Model) handleFavoriteToggle() (tea.Model, tea.Cmd) {
	switch m.tab {
	case TabSearch:
		if m.selectedRow < len(m.results) {
			return m, m.toggleFavorite(m.results[m.selectedRow])
		}
	case TabFavorites:
		if m.selectedRow < len(m.favorites) {
			fav := m.favorites[m.selectedRow]
			if m.selectedRow == len(m.favorites)-1 && m.selectedRow > 0 {
				m.selectedRow--
			}
			return m, m.toggleFavorite(fav.Listing)
		}
	}
	return m, nil
}

func (m Model) handleReferralAction(action string) (tea.Model, tea.Cmd) {
	if m.busy || m.selectedRow >= len(m.referrals) {
		return m, nil
	}
	ref := m.referrals[m.selectedRow]
	if ref.Status != models.ReferralPending {
		m.errMsg = "only pending referrals can be " + action + "ed"
		return m, nil
	}
	m.busy = true
	m.errMsg = ""
	return m, m.runReferralAction(ref.ID, action)
}

// loadTab returns the refresh command for the tab just switched to.
func (m *Model) loadTab() tea.Cmd {
	switch m.tab {
	case TabFavorites:
		return m.loadFavorites()
	case TabRecent:
		return m.loadRecent()
	case TabReferrals:
		if m.snap.IsAuthenticated {
			m.busy = true
			return m.loadReferrals()
		}
	}
	return nil
}

// cycleSort rotates sort key, then order, mirroring the filter panel cycle.
func (m *Model) cycleSort() {
	switch m.filters.SortBy {
	case models.SortRecent:
		m.filters.SortBy = models.SortPrice
		m.filters.SortOrder = models.OrderAsc
	case models.SortPrice:
		m.filters.SortBy = models.SortName
		m.filters.SortOrder = models.OrderAsc
	default:
		m.filters.SortBy = models.SortRecent
		m.filters.SortOrder = models.OrderDesc
	}
}

func priceLabel(listing models.Listing) string {
	min, max := listing.PriceRangeMin, listing.PriceRangeMax
	switch {
	case min != nil && max != nil && *min == *max:
		return fmt.Sprintf("%v TL", *min)
	case min != nil && max != nil:
		return fmt.Sprintf("%v - %v TL", *min, *max)
	case listing.PriceRange != "":
		return listing.PriceRange
	default:
		return "-"
	}
}
