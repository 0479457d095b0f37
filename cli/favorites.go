// ABOUTME: Favorite listing commands
// ABOUTME: Local set of listing snapshots, added by fetching the listing once
package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/serviceradar/radar/db"
)

// ListFavoritesCommand prints the stored favorites.
func ListFavoritesCommand(app *App, args []string) error {
	favorites, err := db.ListFavorites(app.Cache)
	if err != nil {
		return fmt.Errorf("failed to load favorites: %w", err)
	}

	if len(favorites) == 0 {
		fmt.Println("No favorites yet")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tCOMPANY\tADDED")
	fmt.Fprintln(w, "--\t-----\t-------\t-----")

	for _, fav := range favorites {
		added := time.UnixMilli(fav.AddedAt).Format("2006-01-02")
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n",
			fav.ListingID, fav.Listing.Title, companyName(fav.Listing), added)
	}
	w.Flush()

	fmt.Printf("\nTotal: %d favorite(s)\n", len(favorites))
	return nil
}

// AddFavoriteCommand fetches a listing and stores its snapshot.
func AddFavoriteCommand(app *App, args []string) error {
	fs := flag.NewFlagSet("favorite-add", flag.ExitOnError)
	fs.Parse(args)

	if fs.NArg() == 0 {
		return fmt.Errorf("listing id is required")
	}
	id, err := strconv.Atoi(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("invalid listing id %q", fs.Arg(0))
	}

	already, err := db.IsFavorite(app.Cache, id)
	if err != nil {
		return err
	}
	if already {
		fmt.Printf("Listing %d is already a favorite\n", id)
		return nil
	}

	listing, err := app.API.GetService(context.Background(), id)
	if err != nil {
		return err
	}

	if err := db.AddFavorite(app.Cache, *listing); err != nil {
		return fmt.Errorf("failed to save favorite: %w", err)
	}

	fmt.Printf("✓ Favorited: %s\n", listing.Title)
	return nil
}

// RemoveFavoriteCommand drops a favorite by listing id.
func RemoveFavoriteCommand(app *App, args []string) error {
	fs := flag.NewFlagSet("favorite-remove", flag.ExitOnError)
	fs.Parse(args)

	if fs.NArg() == 0 {
		return fmt.Errorf("listing id is required")
	}
	id, err := strconv.Atoi(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("invalid listing id %q", fs.Arg(0))
	}

	if err := db.RemoveFavorite(app.Cache, id); err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}

	fmt.Printf("✓ Removed favorite %d\n", id)
	return nil
}
