// ABOUTME: Firm panel commands: own listings CRUD and company profile
// ABOUTME: Every mutation re-fetches the list it changed
package cli

import (
	"context"
	"flag"
	"fmt"
	"strconv"

	"github.com/serviceradar/radar/api"
)

// FirmServicesCommand lists the firm's own listings.
func FirmServicesCommand(app *App, args []string) error {
	listings, err := app.API.FirmServices(context.Background())
	if err != nil {
		return err
	}

	if len(listings) == 0 {
		fmt.Println("No listings published yet")
		return nil
	}
	printListings(listings)
	return nil
}

// AddFirmServiceCommand publishes a new listing.
func AddFirmServiceCommand(app *App, args []string) error {
	fs := flag.NewFlagSet("service-add", flag.ExitOnError)
	title := fs.String("title", "", "Listing title (required)")
	description := fs.String("description", "", "Listing description")
	priceMin := fs.Float64("price-min", -1, "Minimum price")
	priceMax := fs.Float64("price-max", -1, "Maximum price")
	category := fs.String("category", "", "Category slug")
	fs.Parse(args)

	if *title == "" {
		return fmt.Errorf("--title is required")
	}

	in := api.ServiceIn{
		Title:       *title,
		Description: *description,
		Category:    *category,
	}
	if *priceMin >= 0 {
		in.PriceRangeMin = priceMin
	}
	if *priceMax >= 0 {
		in.PriceRangeMax = priceMax
	}
	if in.PriceRangeMin != nil && in.PriceRangeMax != nil && *in.PriceRangeMin > *in.PriceRangeMax {
		return fmt.Errorf("--price-min cannot exceed --price-max")
	}

	listing, err := app.API.CreateFirmService(context.Background(), in)
	if err != nil {
		return err
	}

	fmt.Printf("✓ Listing created: %s (ID: %d)\n", listing.Title, listing.ID)
	return nil
}

// UpdateFirmServiceCommand overwrites an existing listing.
func UpdateFirmServiceCommand(app *App, args []string) error {
	fs := flag.NewFlagSet("service-update", flag.ExitOnError)
	title := fs.String("title", "", "Listing title (required)")
	description := fs.String("description", "", "Listing description")
	priceMin := fs.Float64("price-min", -1, "Minimum price")
	priceMax := fs.Float64("price-max", -1, "Maximum price")
	category := fs.String("category", "", "Category slug")
	fs.Parse(args)

	if fs.NArg() == 0 {
		return fmt.Errorf("listing id is required (flags must come before the id)")
	}
	id, err := strconv.Atoi(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("invalid listing id %q", fs.Arg(0))
	}
	if *title == "" {
		return fmt.Errorf("--title is required")
	}

	in := api.ServiceIn{
		Title:       *title,
		Description: *description,
		Category:    *category,
	}
	if *priceMin >= 0 {
		in.PriceRangeMin = priceMin
	}
	if *priceMax >= 0 {
		in.PriceRangeMax = priceMax
	}

	listing, err := app.API.UpdateFirmService(context.Background(), id, in)
	if err != nil {
		return err
	}

	fmt.Printf("✓ Listing updated: %s\n", listing.Title)
	return nil
}

// DeleteFirmServiceCommand removes a listing, then reloads the list.
func DeleteFirmServiceCommand(app *App, args []string) error {
	fs := flag.NewFlagSet("service-delete", flag.ExitOnError)
	fs.Parse(args)

	if fs.NArg() == 0 {
		return fmt.Errorf("listing id is required")
	}
	id, err := strconv.Atoi(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("invalid listing id %q", fs.Arg(0))
	}

	ctx := context.Background()
	if err := app.API.DeleteFirmService(ctx, id); err != nil {
		return err
	}

	fmt.Printf("✓ Listing %d deleted\n", id)

	listings, err := app.API.FirmServices(ctx)
	if err != nil {
		return fmt.Errorf("delete succeeded but reloading the list failed: %w", err)
	}
	if len(listings) > 0 {
		printListings(listings)
	}
	return nil
}

// ShowCompanyCommand prints the firm's company profile.
func ShowCompanyCommand(app *App, args []string) error {
	company, err := app.API.FirmCompany(context.Background())
	if err != nil {
		return err
	}

	fmt.Printf("Name:        %s\n", company.Name)
	fmt.Printf("Location:    %s\n", orDash(company.Location))
	fmt.Printf("Description: %s\n", orDash(company.Description))
	return nil
}

// UpdateCompanyCommand updates the firm's company profile.
func UpdateCompanyCommand(app *App, args []string) error {
	fs := flag.NewFlagSet("company-update", flag.ExitOnError)
	name := fs.String("name", "", "Company name (required)")
	location := fs.String("location", "", "Company location")
	description := fs.String("description", "", "Company description")
	fs.Parse(args)

	if *name == "" {
		return fmt.Errorf("--name is required")
	}

	company, err := app.API.UpdateFirmCompany(context.Background(), api.CompanyIn{
		Name:        *name,
		Location:    *location,
		Description: *description,
	})
	if err != nil {
		return err
	}

	fmt.Printf("✓ Company updated: %s\n", company.Name)
	return nil
}
