// ABOUTME: Recent search history commands
// ABOUTME: Lists the bounded history and clears it on request
package cli

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/serviceradar/radar/db"
)

// RecentSearchesCommand lists the search history, most recent first.
func RecentSearchesCommand(app *App, args []string) error {
	searches, err := db.GetRecentSearches(app.Cache)
	if err != nil {
		return fmt.Errorf("failed to load search history: %w", err)
	}

	if len(searches) == 0 {
		fmt.Println("No recent searches")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "QUERY\tLOCATION\tWHEN")
	fmt.Fprintln(w, "-----\t--------\t----")

	for _, s := range searches {
		when := time.UnixMilli(s.Timestamp).Format("2006-01-02 15:04")
		fmt.Fprintf(w, "%s\t%s\t%s\n", s.Query, orDash(s.Location), when)
	}
	w.Flush()
	return nil
}

// ClearRecentSearchesCommand wipes the history.
func ClearRecentSearchesCommand(app *App, args []string) error {
	if err := db.ClearRecentSearches(app.Cache); err != nil {
		return fmt.Errorf("failed to clear search history: %w", err)
	}
	fmt.Println("✓ Search history cleared")
	return nil
}
