// ABOUTME: Listing search command with client-side filter flags
// ABOUTME: Server search first, then the local refinement pipeline
package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/serviceradar/radar/models"
	"github.com/serviceradar/radar/search"
)

// SearchCommand searches listings and prints the refined results.
func SearchCommand(app *App, args []string) error {
	fs := flag.NewFlagSet("search", flag.ExitOnError)
	query := fs.String("query", "", "Search term (required)")
	location := fs.String("location", "", "Location to search in")
	priceMin := fs.Float64("price-min", -1, "Minimum price filter")
	priceMax := fs.Float64("price-max", -1, "Maximum price filter")
	filterLoc := fs.String("filter-location", "", "Refine by company location (substring)")
	category := fs.String("category", "", "Refine by category")
	sortBy := fs.String("sort", models.SortRecent, "Sort key: recent, price, or name")
	order := fs.String("order", models.OrderDesc, "Sort order: asc or desc")
	fs.Parse(args)

	searcher := search.NewSearcher(app.API, app.Cache)
	if _, err := searcher.Submit(context.Background(), *query, *location); err != nil {
		return err
	}

	opts := models.FilterOptions{
		Location:  *filterLoc,
		Category:  *category,
		SortBy:    *sortBy,
		SortOrder: *order,
	}
	if *priceMin >= 0 {
		opts.PriceMin = priceMin
	}
	if *priceMax >= 0 {
		opts.PriceMax = priceMax
	}
	listings := searcher.ApplyFilters(opts)

	if len(listings) == 0 {
		fmt.Println("No listings matched your search")
		return nil
	}

	printListings(listings)
	fmt.Printf("\nTotal: %d listing(s)\n", len(listings))
	return nil
}

func printListings(listings []models.Listing) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tCOMPANY\tLOCATION\tPRICE")
	fmt.Fprintln(w, "--\t-----\t-------\t--------\t-----")

	for _, l := range listings {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			l.ID, l.Title, companyName(l), orDash(l.Location()), priceLabel(l))
	}
	w.Flush()
}

func companyName(l models.Listing) string {
	if l.CompanyName != "" {
		return l.CompanyName
	}
	return orDash(l.Company.Name)
}

// priceLabel renders the price range the way the original listing cards did.
func priceLabel(l models.Listing) string {
	if l.PriceRangeMin != nil && l.PriceRangeMax != nil {
		if *l.PriceRangeMin == *l.PriceRangeMax {
			return fmt.Sprintf("%v TL", *l.PriceRangeMin)
		}
		return fmt.Sprintf("%v - %v TL", *l.PriceRangeMin, *l.PriceRangeMax)
	}
	if l.PriceRange != "" {
		return l.PriceRange
	}
	return "-"
}

func orDash(v string) string {
	if v == "" {
		return "-"
	}
	return v
}
