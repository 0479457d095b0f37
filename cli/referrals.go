// ABOUTME: Referral commands: customer creation, firm review, admin overview
// ABOUTME: Mutations re-fetch the authoritative list afterward
package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/serviceradar/radar/models"
	"github.com/serviceradar/radar/referral"
)

// CreateReferralCommand submits a referral for a listing.
func CreateReferralCommand(app *App, args []string) error {
	fs := flag.NewFlagSet("referral-create", flag.ExitOnError)
	name := fs.String("name", "", "Your name (required)")
	email := fs.String("email", "", "Your email (required)")
	description := fs.String("description", "", "What you need (required)")
	price := fs.Float64("price", -1, "Price offer (must fall within the listing's range)")
	fs.Parse(args)

	if fs.NArg() == 0 {
		return fmt.Errorf("service id is required (flags must come before the id)")
	}
	listingID, err := strconv.Atoi(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("invalid service id %q", fs.Arg(0))
	}

	ctx := context.Background()
	listing, err := app.API.GetService(ctx, listingID)
	if err != nil {
		return err
	}

	form := &referral.Form{
		TargetCompanyID: listing.Company.ID,
		ListingID:       listing.ID,
		CustomerName:    *name,
		CustomerEmail:   *email,
		Description:     *description,
	}
	if *price >= 0 {
		form.OfferedPrice = price
	}

	submitter := referral.NewSubmitter(app.API)
	message, err := submitter.Submit(ctx, form, *listing)
	if err != nil {
		return err
	}

	fmt.Printf("✓ %s\n", message)
	return nil
}

// FirmReferralsCommand lists the firm's incoming referrals.
func FirmReferralsCommand(app *App, args []string) error {
	referrals, err := app.API.FirmReferrals(context.Background())
	if err != nil {
		return err
	}
	printReferrals(referrals)
	return nil
}

// ReferralActionCommand accepts or rejects a referral, then re-fetches the
// list so the printed status is authoritative.
func ReferralActionCommand(app *App, action string, args []string) error {
	fs := flag.NewFlagSet("referral-"+action, flag.ExitOnError)
	fs.Parse(args)

	if fs.NArg() == 0 {
		return fmt.Errorf("referral id is required")
	}
	id, err := strconv.Atoi(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("invalid referral id %q", fs.Arg(0))
	}

	ctx := context.Background()
	if err := app.API.ReferralAction(ctx, id, action); err != nil {
		return err
	}

	fmt.Printf("✓ Referral %d %sed\n", id, action)

	referrals, err := app.API.FirmReferrals(ctx)
	if err != nil {
		return fmt.Errorf("action succeeded but reloading the list failed: %w", err)
	}
	printReferrals(referrals)
	return nil
}

// AdminReferralsCommand lists every referral system-wide.
func AdminReferralsCommand(app *App, args []string) error {
	snap := app.Session()
	if !snap.IsSuperAdmin {
		return fmt.Errorf("super admin role required")
	}

	referrals, err := app.API.AdminReferrals(context.Background())
	if err != nil {
		return err
	}
	printReferrals(referrals)
	return nil
}

func printReferrals(referrals []models.Referral) {
	if len(referrals) == 0 {
		fmt.Println("No referrals found")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCUSTOMER\tLISTING\tCOMPANY\tSTATUS")
	fmt.Fprintln(w, "--\t--------\t-------\t-------\t------")

	for _, r := range referrals {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			r.ID, r.CustomerName, r.RequestedListing.Title, r.TargetCompany.Name, r.Status)
	}
	w.Flush()

	fmt.Printf("\nTotal: %d referral(s)\n", len(referrals))
}
