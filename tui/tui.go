// ABOUTME: Terminal User Interface using bubbletea framework
// ABOUTME: Tabs for search, favorites, history, and referrals over the shared core
package tui

import (
	"database/sql"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/serviceradar/radar/api"
	"github.com/serviceradar/radar/models"
	"github.com/serviceradar/radar/referral"
	"github.com/serviceradar/radar/search"
	"github.com/serviceradar/radar/session"
	"github.com/serviceradar/radar/store"
)

// ViewMode represents the current TUI view.
type ViewMode int

const (
	ViewBrowse ViewMode = iota
	ViewDetail
	ViewReferralForm
)

// Tab represents the active list tab.
type Tab int

const (
	TabSearch Tab = iota
	TabFavorites
	TabRecent
	TabReferrals
)

const tabCount = 4

// Model is the main bubbletea model.
type Model struct {
	client *api.Client
	cache  *sql.DB
	prefs  *store.Store

	searcher  *search.Searcher
	submitter *referral.Submitter
	snap      session.Snapshot

	viewMode ViewMode
	tab      Tab

	// Search tab state
	queryInput    textinput.Model
	locationInput textinput.Model
	searchFocus   int
	results       []models.Listing
	filters       models.FilterOptions

	// List data for the other tabs
	favorites []models.FavoriteListing
	recent    []models.RecentSearch
	referrals []models.Referral

	selectedRow int

	// Detail / referral form state
	detail *models.Listing
	form   referralFormState

	// In-flight flag: while a request runs the triggering control is
	// disabled and re-entrant submissions are ignored.
	busy    bool
	spinner spinner.Model

	errMsg    string
	statusMsg string

	width  int
	height int
}

// NewModel wires the TUI to the shared application dependencies.
func NewModel(client *api.Client, cache *sql.DB, prefs *store.Store) Model {
	query := textinput.New()
	query.Placeholder = "what do you need?"
	query.Focus()

	location := textinput.New()
	location.Placeholder = "location (optional)"

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	var snap session.Snapshot
	if prefs != nil {
		snap = session.Load(prefs)
	}

	return Model{
		client:        client,
		cache:         cache,
		prefs:         prefs,
		searcher:      search.NewSearcher(client, cache),
		submitter:     referral.NewSubmitter(client),
		snap:          snap,
		viewMode:      ViewBrowse,
		tab:           TabSearch,
		queryInput:    query,
		locationInput: location,
		filters:       models.DefaultFilters(),
		spinner:       sp,
		width:         80,
		height:        24,
	}
}

func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case searchDoneMsg:
		m.busy = false
		if msg.err != nil {
			// Prior results are preserved; only the banner changes.
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.results = msg.listings
		m.selectedRow = 0
		return m, nil

	case favoritesLoadedMsg:
		m.favorites = msg.favorites
		return m, nil

	case recentLoadedMsg:
		m.recent = msg.searches
		return m, nil

	case referralsLoadedMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.referrals = msg.referrals
		return m, nil

	case referralActionDoneMsg:
		if msg.err != nil {
			m.busy = false
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.statusMsg = msg.status
		// The mutation succeeded; re-fetch the authoritative list rather
		// than patching local state.
		return m, m.loadReferrals()

	case referralSubmitDoneMsg:
		m.busy = false
		if msg.err != nil {
			// Form values are preserved so the user can retry.
			m.form.submitError = msg.err.Error()
			return m, nil
		}
		m.form = referralFormState{}
		m.statusMsg = msg.confirmation
		m.viewMode = ViewBrowse
		return m, nil
	}

	return m, nil
}

func (m Model) View() string {
	switch m.viewMode {
	case ViewDetail:
		return m.renderDetailView()
	case ViewReferralForm:
		return m.renderReferralForm()
	default:
		return m.renderBrowseView()
	}
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.viewMode {
	case ViewDetail:
		return m.handleDetailKeys(msg)
	case ViewReferralForm:
		return m.handleFormKeys(msg)
	default:
		return m.handleBrowseKeys(msg)
	}
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170")).
			MarginBottom(1)

	tabActiveStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170")).
			Background(lipgloss.Color("235")).
			Padding(0, 2)

	tabInactiveStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240")).
				Padding(0, 2)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			MarginTop(1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))
)
