// ABOUTME: Address book commands for the authenticated user
// ABOUTME: CRUD plus selecting the default address
package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/serviceradar/radar/api"
)

// ListAddressesCommand prints the saved addresses.
func ListAddressesCommand(app *App, args []string) error {
	addresses, err := app.API.ListAddresses(context.Background())
	if err != nil {
		return err
	}

	if len(addresses) == 0 {
		fmt.Println("No saved addresses")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tCITY\tLINE\tDEFAULT")
	fmt.Fprintln(w, "--\t-----\t----\t----\t-------")

	for _, a := range addresses {
		def := ""
		if a.IsDefault {
			def = "✓"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", a.ID, a.Title, a.City, a.Line, def)
	}
	w.Flush()
	return nil
}

// AddAddressCommand saves a new address.
func AddAddressCommand(app *App, args []string) error {
	fs := flag.NewFlagSet("address-add", flag.ExitOnError)
	title := fs.String("title", "", "Label, e.g. Home (required)")
	line := fs.String("line", "", "Street address (required)")
	city := fs.String("city", "", "City (required)")
	district := fs.String("district", "", "District")
	makeDefault := fs.Bool("default", false, "Mark as the default address")
	fs.Parse(args)

	if *title == "" || *line == "" || *city == "" {
		return fmt.Errorf("--title, --line, and --city are required")
	}

	ctx := context.Background()
	address, err := app.API.CreateAddress(ctx, api.AddressIn{
		Title:    *title,
		Line:     *line,
		City:     *city,
		District: *district,
	})
	if err != nil {
		return err
	}

	if *makeDefault {
		if err := app.API.SetDefaultAddress(ctx, address.ID); err != nil {
			return fmt.Errorf("address saved but marking default failed: %w", err)
		}
	}

	fmt.Printf("✓ Address saved: %s (ID: %d)\n", address.Title, address.ID)
	return nil
}

// RemoveAddressCommand deletes an address.
func RemoveAddressCommand(app *App, args []string) error {
	fs := flag.NewFlagSet("address-remove", flag.ExitOnError)
	fs.Parse(args)

	if fs.NArg() == 0 {
		return fmt.Errorf("address id is required")
	}
	id, err := strconv.Atoi(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("invalid address id %q", fs.Arg(0))
	}

	if err := app.API.DeleteAddress(context.Background(), id); err != nil {
		return err
	}

	fmt.Printf("✓ Address %d removed\n", id)
	return nil
}

// SetDefaultAddressCommand marks an address as the default.
func SetDefaultAddressCommand(app *App, args []string) error {
	fs := flag.NewFlagSet("address-default", flag.ExitOnError)
	fs.Parse(args)

	if fs.NArg() == 0 {
		return fmt.Errorf("address id is required")
	}
	id, err := strconv.Atoi(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("invalid address id %q", fs.Arg(0))
	}

	if err := app.API.SetDefaultAddress(context.Background(), id); err != nil {
		return err
	}

	fmt.Printf("✓ Address %d is now the default\n", id)
	return nil
}
