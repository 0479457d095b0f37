// ABOUTME: Visualization commands over referral data
// ABOUTME: DOT graph output to file or stdout, plus a terminal summary
package cli

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/serviceradar/radar/models"
	"github.com/serviceradar/radar/viz"
)

// VizReferralsCommand renders the firm's (or, with --all, the whole system's)
// referrals as a DOT graph.
func VizReferralsCommand(app *App, args []string) error {
	fs := flag.NewFlagSet("viz-referrals", flag.ExitOnError)
	output := fs.String("output", "", "Output file (default: stdout)")
	all := fs.Bool("all", false, "Graph all referrals system-wide (super admin)")
	fs.Parse(args)

	ctx := context.Background()
	var (
		referrals []models.Referral
		err       error
	)
	if *all {
		referrals, err = app.API.AdminReferrals(ctx)
	} else {
		referrals, err = app.API.FirmReferrals(ctx)
	}
	if err != nil {
		return err
	}

	dot, err := viz.GenerateReferralGraph(referrals)
	if err != nil {
		return err
	}

	if *output != "" {
		if err := os.WriteFile(*output, []byte(dot), 0644); err != nil {
			return fmt.Errorf("failed to write graph: %w", err)
		}
		fmt.Printf("✓ Graph written to %s\n", *output)
		return nil
	}

	fmt.Println(dot)
	return nil
}

// VizStatsCommand prints the terminal referral summary.
func VizStatsCommand(app *App, args []string) error {
	fs := flag.NewFlagSet("viz-stats", flag.ExitOnError)
	all := fs.Bool("all", false, "Tally all referrals system-wide (super admin)")
	fs.Parse(args)

	ctx := context.Background()
	var (
		referrals []models.Referral
		err       error
	)
	if *all {
		referrals, err = app.API.AdminReferrals(ctx)
	} else {
		referrals, err = app.API.FirmReferrals(ctx)
	}
	if err != nil {
		return err
	}

	stats := viz.ComputeReferralStats(referrals)
	fmt.Print(stats.Render())
	return nil
}
