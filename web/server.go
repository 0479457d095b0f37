// ABOUTME: Web UI server with embedded templates
// ABOUTME: Provides a read-only local dashboard at localhost:8080
package web

import (
	"database/sql"
	"embed"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"time"

	"github.com/serviceradar/radar/api"
	"github.com/serviceradar/radar/db"
	"github.com/serviceradar/radar/session"
	"github.com/serviceradar/radar/store"
	"github.com/serviceradar/radar/viz"
)

//go:embed templates/*
var templatesFS embed.FS

type Server struct {
	cache     *sql.DB
	client    *api.Client
	prefs     *store.Store
	templates *template.Template
}

func NewServer(cache *sql.DB, client *api.Client, prefs *store.Store) (*Server, error) {
	funcMap := template.FuncMap{
		"millis": func(ms int64) string {
			return time.UnixMilli(ms).Format("2006-01-02 15:04")
		},
		"price": func(p *float64) string {
			if p == nil {
				return "-"
			}
			return fmt.Sprintf("%.0f TL", *p)
		},
	}

	tmpl, err := template.New("").Funcs(funcMap).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	return &Server{
		cache:     cache,
		client:    client,
		prefs:     prefs,
		templates: tmpl,
	}, nil
}

func (s *Server) Start(port int) error {
	http.HandleFunc("/", s.handleDashboard)
	http.HandleFunc("/favorites", s.handleFavorites)
	http.HandleFunc("/recent", s.handleRecent)
	http.HandleFunc("/referrals", s.handleReferrals)

	addr := fmt.Sprintf(":%d", port)
	log.Printf("Starting web dashboard at http://localhost%s", addr)
	return http.ListenAndServe(addr, nil)
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	favorites, err := db.ListFavorites(s.cache)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	searches, err := db.GetRecentSearches(s.cache)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	snap := session.Load(s.prefs)

	data := map[string]interface{}{
		"Title":           "Dashboard",
		"ContentTemplate": "dashboard-content",
		"FavoriteCount":   len(favorites),
		"RecentCount":     len(searches),
		"Session":         snap,
	}

	s.renderTemplate(w, "layout.html", data)
}

func (s *Server) handleFavorites(w http.ResponseWriter, r *http.Request) {
	favorites, err := db.ListFavorites(s.cache)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	data := map[string]interface{}{
		"Title":           "Favorites",
		"ContentTemplate": "favorites-content",
		"Favorites":       favorites,
	}

	s.renderTemplate(w, "layout.html", data)
}

func (s *Server) handleRecent(w http.ResponseWriter, r *http.Request) {
	searches, err := db.GetRecentSearches(s.cache)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	data := map[string]interface{}{
		"Title":           "Recent Searches",
		"ContentTemplate": "recent-content",
		"Searches":        searches,
	}

	s.renderTemplate(w, "layout.html", data)
}

func (s *Server) handleReferrals(w http.ResponseWriter, r *http.Request) {
	snap := session.Load(s.prefs)
	if !snap.IsAuthenticated {
		http.Error(w, "Log in with 'radar login' to view referrals", http.StatusUnauthorized)
		return
	}

	referrals, err := s.client.FirmReferrals(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	stats := viz.ComputeReferralStats(referrals)

	data := map[string]interface{}{
		"Title":           "Referrals",
		"ContentTemplate": "referrals-content",
		"Referrals":       referrals,
		"Stats":           stats,
	}

	s.renderTemplate(w, "layout.html", data)
}

func (s *Server) renderTemplate(w http.ResponseWriter, name string, data interface{}) {
	// The data map includes ContentTemplate to select the content block.
	err := s.templates.ExecuteTemplate(w, name, data)
	if err != nil {
		log.Printf("Template error rendering %s: %v", name, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}
