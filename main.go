// ABOUTME: Entry point for the radar marketplace client
// ABOUTME: Routes to the TUI, CLI commands, or the MCP server based on arguments
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/serviceradar/radar/cli"
	"github.com/serviceradar/radar/config"
	"github.com/serviceradar/radar/db"
	"github.com/serviceradar/radar/models"
	"github.com/serviceradar/radar/store"
	"github.com/serviceradar/radar/tui"
)

const version = "0.1.0"

func main() {
	// Local overrides for development; missing file is fine.
	_ = godotenv.Load()

	// Global flags
	showVersion := flag.Bool("version", false, "Show version and exit")
	apiBase := flag.String("api-base", "", "API base URL (default from config or RADAR_API_BASE)")

	// Parse global flags but don't fail on unknown (for subcommands)
	_ = flag.CommandLine.Parse(os.Args[1:])

	if *showVersion {
		fmt.Printf("radar version %s\n", version)
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(0)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *apiBase != "" {
		cfg.APIBase = *apiBase
	}

	app, cleanup, err := buildApp(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize: %v", err)
	}
	defer cleanup()

	command := args[0]
	commandArgs := args[1:]

	switch command {
	case "tui":
		if err := tui.Run(app.API, app.Cache, app.Store); err != nil {
			log.Fatalf("Error: %v", err)
		}

	case "mcp":
		if err := cli.MCPCommand(app); err != nil {
			log.Fatalf("MCP server failed: %v", err)
		}

	case "web":
		run(cli.WebCommand, app, commandArgs)

	case "search":
		run(cli.SearchCommand, app, commandArgs)

	case "favorites":
		routeSub(app, command, commandArgs, map[string]commandFunc{
			"list":   cli.ListFavoritesCommand,
			"add":    cli.AddFavoriteCommand,
			"remove": cli.RemoveFavoriteCommand,
		}, "list")

	case "recent":
		routeSub(app, command, commandArgs, map[string]commandFunc{
			"list":  cli.RecentSearchesCommand,
			"clear": cli.ClearRecentSearchesCommand,
		}, "list")

	case "prefs":
		routeSub(app, command, commandArgs, map[string]commandFunc{
			"show": cli.ShowPrefsCommand,
			"set":  cli.SetPrefsCommand,
		}, "show")

	case "login":
		run(cli.LoginCommand, app, commandArgs)
	case "logout":
		run(cli.LogoutCommand, app, commandArgs)
	case "whoami":
		run(cli.WhoamiCommand, app, commandArgs)
	case "register":
		run(cli.RegisterCommand, app, commandArgs)
	case "register-firm":
		run(cli.RegisterFirmCommand, app, commandArgs)

	case "referral":
		routeSub(app, command, commandArgs, map[string]commandFunc{
			"create": cli.CreateReferralCommand,
		}, "")

	case "firm":
		runFirm(app, commandArgs)

	case "admin":
		routeSub(app, command, commandArgs, map[string]commandFunc{
			"referrals": cli.AdminReferralsCommand,
		}, "")

	case "addresses":
		routeSub(app, command, commandArgs, map[string]commandFunc{
			"list":        cli.ListAddressesCommand,
			"add":         cli.AddAddressCommand,
			"remove":      cli.RemoveAddressCommand,
			"set-default": cli.SetDefaultAddressCommand,
		}, "list")

	case "viz":
		routeSub(app, command, commandArgs, map[string]commandFunc{
			"referrals": cli.VizReferralsCommand,
			"stats":     cli.VizStatsCommand,
		}, "")

	default:
		fmt.Printf("Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

type commandFunc func(*cli.App, []string) error

func run(fn commandFunc, app *cli.App, args []string) {
	if err := fn(app, args); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func routeSub(app *cli.App, command string, args []string, subs map[string]commandFunc, fallback string) {
	sub := fallback
	if len(args) > 0 {
		sub = args[0]
		args = args[1:]
	}
	fn, ok := subs[sub]
	if !ok {
		if sub == "" {
			fmt.Printf("Error: %s requires a subcommand\n\n", command)
		} else {
			fmt.Printf("Unknown %s command: %s\n\n", command, sub)
		}
		printUsage()
		os.Exit(1)
	}
	run(fn, app, args)
}

func runFirm(app *cli.App, args []string) {
	if len(args) == 0 {
		fmt.Println("Error: firm requires a subcommand")
		printUsage()
		os.Exit(1)
	}

	sub := args[0]
	subArgs := args[1:]

	switch sub {
	case "services":
		routeSub(app, "firm services", subArgs, map[string]commandFunc{
			"list":   cli.FirmServicesCommand,
			"add":    cli.AddFirmServiceCommand,
			"update": cli.UpdateFirmServiceCommand,
			"remove": cli.DeleteFirmServiceCommand,
		}, "list")
	case "referrals":
		routeSub(app, "firm referrals", subArgs, map[string]commandFunc{
			"list": cli.FirmReferralsCommand,
			"accept": func(a *cli.App, args []string) error {
				return cli.ReferralActionCommand(a, models.ActionAccept, args)
			},
			"reject": func(a *cli.App, args []string) error {
				return cli.ReferralActionCommand(a, models.ActionReject, args)
			},
		}, "list")
	case "employees":
		routeSub(app, "firm employees", subArgs, map[string]commandFunc{
			"list":     cli.ListEmployeesCommand,
			"add":      cli.AddEmployeeCommand,
			"set-role": cli.SetEmployeeRoleCommand,
			"remove":   cli.RemoveEmployeeCommand,
		}, "list")
	case "company":
		routeSub(app, "firm company", subArgs, map[string]commandFunc{
			"show":   cli.ShowCompanyCommand,
			"update": cli.UpdateCompanyCommand,
		}, "show")
	default:
		fmt.Printf("Unknown firm command: %s\n\n", sub)
		printUsage()
		os.Exit(1)
	}
}

func buildApp(cfg *config.Config) (*cli.App, func(), error) {
	prefsPath, err := cfg.PrefsPath()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to resolve preference store path: %w", err)
	}
	prefs, err := store.Open(prefsPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open preference store: %w", err)
	}

	cachePath, err := cfg.CachePath()
	if err != nil {
		prefs.Close()
		return nil, nil, fmt.Errorf("failed to resolve cache path: %w", err)
	}
	cache, err := db.OpenCache(cachePath)
	if err != nil {
		prefs.Close()
		return nil, nil, fmt.Errorf("failed to open cache database: %w", err)
	}

	cleanup := func() {
		cache.Close()
		prefs.Close()
	}
	return cli.NewApp(cfg, prefs, cache), cleanup, nil
}

func printUsage() {
	fmt.Printf(`radar v%s - Services marketplace client

USAGE:
  radar [global flags] <command> [subcommand] [flags]

GLOBAL FLAGS:
  --version              Show version and exit
  --api-base <url>       API base URL (default from config or RADAR_API_BASE)

COMMANDS:
  tui                    Start interactive full-screen interface
  mcp                    Start MCP server for agent integration
  web                    Start local read-only dashboard (--port, default 8080)
  search                 Search service listings
  favorites              Manage saved listings
  recent                 Recent search history
  prefs                  Local preferences
  login / logout         Session management
  whoami                 Show current session
  register               Register a customer account
  register-firm          Register a new firm
  referral               Submit a service request
  firm                   Firm panel commands
  admin                  Admin panel commands
  addresses              Delivery address book
  viz                    Referral visualizations

SEARCH:
  radar search --query "plumber" --location "Kadikoy"
    --price-min <n>          Minimum price filter
    --price-max <n>          Maximum price filter
    --filter-location <text> Filter results by company location
    --category <name>        Filter results by category
    --sort <key>             Sort key: recent, price, name
    --order <dir>            Sort order: asc, desc

FAVORITES:
  radar favorites list
  radar favorites add <service-id>
  radar favorites remove <service-id>

RECENT SEARCHES:
  radar recent list
  radar recent clear

PREFERENCES:
  radar prefs show
  radar prefs set --theme dark --language en --notifications=false

ACCOUNT:
  radar login --username <name>       Log in (prompts for password)
  radar logout                        Clear the local session
  radar whoami                        Show session and roles
  radar register --username <name> --email <addr>
  radar register-firm --company <name> --username <name> --email <addr>

REFERRALS:
  radar referral create [flags] <service-id>   (flags before the id)
    --name <name>            Customer name (required)
    --email <addr>           Customer email (required)
    --description <text>     What you need (required)
    --price <n>              Offered price (optional)

FIRM PANEL:
  radar firm services list
  radar firm services add --title <t> --description <d> [--price-min <n> --price-max <n>]
  radar firm services update [flags] <id>   (flags before the id)
  radar firm services remove <id>
  radar firm referrals list
  radar firm referrals accept <id>
  radar firm referrals reject <id>
  radar firm employees list
  radar firm employees add --username <name> --email <addr> [--manager]
  radar firm employees set-role --manager=<bool> <id>
  radar firm employees remove <id>
  radar firm company show
  radar firm company update --name <name> --description <text>

ADMIN PANEL:
  radar admin referrals            List all referrals (superadmin only)

ADDRESSES:
  radar addresses list
  radar addresses add --title <t> --line <text> --city <city> [--default]
  radar addresses remove <id>
  radar addresses set-default <id>

VIZ:
  radar viz referrals [--all] [--output <file>]
  radar viz stats

EXAMPLES:
  # Interactive interface
  radar tui

  # Search for plumbers in Kadikoy, cheapest first
  radar search --query plumber --location Kadikoy --sort price --order asc

  # Save a listing and request it
  radar favorites add 42
  radar referral create --name "Jane" --email jane@example.com --description "Leaky sink" 42

`, version)
}
