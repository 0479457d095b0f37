// ABOUTME: Authentication commands: login, logout, whoami, registration
// ABOUTME: Passwords are read from the terminal, never from argv
package cli

import (
	"context"
	"flag"
	"fmt"
	"syscall"

	"golang.org/x/term"

	"github.com/serviceradar/radar/api"
	"github.com/serviceradar/radar/session"
)

// LoginCommand obtains a token pair and persists the session.
func LoginCommand(app *App, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	username := fs.String("username", "", "Username")
	email := fs.String("email", "", "Email address")
	fs.Parse(args)

	if *username == "" && *email == "" {
		return fmt.Errorf("--username or --email is required")
	}

	fmt.Print("Password: ")
	passwordBytes, err := term.ReadPassword(syscall.Stdin)
	fmt.Println()
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	result := app.API.Login(context.Background(), api.Credentials{
		Username: *username,
		Email:    *email,
		Password: string(passwordBytes),
	})
	if !result.Success {
		return fmt.Errorf("login failed: %s", result.Error)
	}

	snap := app.Session()
	name := snap.DisplayName
	if name == "" {
		name = *username
	}
	fmt.Printf("✓ Logged in as %s\n", name)
	if snap.IsSuperAdmin {
		fmt.Println("  Role: super admin")
	} else if snap.IsCompanyManager {
		fmt.Println("  Role: company manager")
	}
	return nil
}

// LogoutCommand clears every persisted auth key. Idempotent.
func LogoutCommand(app *App, args []string) error {
	if err := session.Logout(app.Store); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	fmt.Println("✓ Logged out")
	return nil
}

// WhoamiCommand prints the current session snapshot.
func WhoamiCommand(app *App, args []string) error {
	snap := app.Session()
	if !snap.IsAuthenticated {
		fmt.Println("Not logged in")
		return nil
	}

	fmt.Printf("Logged in as: %s\n", orDash(snap.DisplayName))
	fmt.Printf("Super admin:     %t\n", snap.IsSuperAdmin)
	fmt.Printf("Company manager: %t\n", snap.IsCompanyManager)
	return nil
}

// RegisterCommand creates a customer account.
func RegisterCommand(app *App, args []string) error {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	username := fs.String("username", "", "Username (required)")
	email := fs.String("email", "", "Email address (required)")
	fullName := fs.String("name", "", "Full name")
	fs.Parse(args)

	if *username == "" || *email == "" {
		return fmt.Errorf("--username and --email are required")
	}

	fmt.Print("Password: ")
	passwordBytes, err := term.ReadPassword(syscall.Stdin)
	fmt.Println()
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	err = app.API.RegisterCustomer(context.Background(), api.RegisterIn{
		Username: *username,
		Email:    *email,
		FullName: *fullName,
		Password: string(passwordBytes),
	})
	if err != nil {
		return err
	}

	fmt.Printf("✓ Account created: %s\n", *username)
	return nil
}

// RegisterFirmCommand creates a firm plus its first manager account.
func RegisterFirmCommand(app *App, args []string) error {
	fs := flag.NewFlagSet("register-firm", flag.ExitOnError)
	company := fs.String("company", "", "Company name (required)")
	location := fs.String("location", "", "Company location")
	username := fs.String("username", "", "Manager username (required)")
	email := fs.String("email", "", "Manager email (required)")
	fullName := fs.String("name", "", "Manager full name")
	fs.Parse(args)

	if *company == "" || *username == "" || *email == "" {
		return fmt.Errorf("--company, --username, and --email are required")
	}

	fmt.Print("Password: ")
	passwordBytes, err := term.ReadPassword(syscall.Stdin)
	fmt.Println()
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	err = app.API.RegisterFirm(context.Background(), api.FirmRegisterIn{
		CompanyName: *company,
		Location:    *location,
		Username:    *username,
		Email:       *email,
		FullName:    *fullName,
		Password:    string(passwordBytes),
	})
	if err != nil {
		return err
	}

	fmt.Printf("✓ Firm registered: %s\n", *company)
	return nil
}
