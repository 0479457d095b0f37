// ABOUTME: Firm employee management commands
// ABOUTME: Role changes and deletions reload the employee list afterward
package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"syscall"
	"text/tabwriter"

	"golang.org/x/term"

	"github.com/serviceradar/radar/api"
	"github.com/serviceradar/radar/models"
)

// ListEmployeesCommand lists the firm's employees.
func ListEmployeesCommand(app *App, args []string) error {
	employees, err := app.API.FirmEmployees(context.Background())
	if err != nil {
		return err
	}
	printEmployees(employees)
	return nil
}

// AddEmployeeCommand creates a new employee account.
func AddEmployeeCommand(app *App, args []string) error {
	fs := flag.NewFlagSet("employee-add", flag.ExitOnError)
	username := fs.String("username", "", "Username (required)")
	email := fs.String("email", "", "Email address (required)")
	fullName := fs.String("name", "", "Full name")
	manager := fs.Bool("manager", false, "Grant the firm manager role")
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

	employee, err := app.API.CreateFirmEmployee(context.Background(), api.EmployeeCreateIn{
		Username:      *username,
		Email:         *email,
		FullName:      *fullName,
		Password:      string(passwordBytes),
		IsFirmManager: *manager,
	})
	if err != nil {
		return err
	}

	fmt.Printf("✓ Employee created: %s (ID: %d)\n", employee.Username, employee.ID)
	return nil
}

// SetEmployeeRoleCommand toggles an employee's manager flag, then reloads.
func SetEmployeeRoleCommand(app *App, args []string) error {
	fs := flag.NewFlagSet("employee-role", flag.ExitOnError)
	manager := fs.Bool("manager", false, "Grant (true) or revoke the manager role")
	fs.Parse(args)

	if fs.NArg() == 0 {
		return fmt.Errorf("employee id is required (flags must come before the id)")
	}
	id, err := strconv.Atoi(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("invalid employee id %q", fs.Arg(0))
	}

	ctx := context.Background()
	if _, err := app.API.UpdateFirmEmployeeRole(ctx, id, api.EmployeeUpdateIn{IsFirmManager: *manager}); err != nil {
		return err
	}

	fmt.Printf("✓ Employee %d role updated\n", id)

	employees, err := app.API.FirmEmployees(ctx)
	if err != nil {
		return fmt.Errorf("update succeeded but reloading the list failed: %w", err)
	}
	printEmployees(employees)
	return nil
}

// RemoveEmployeeCommand deletes an employee account, then reloads.
func RemoveEmployeeCommand(app *App, args []string) error {
	fs := flag.NewFlagSet("employee-remove", flag.ExitOnError)
	fs.Parse(args)

	if fs.NArg() == 0 {
		return fmt.Errorf("employee id is required")
	}
	id, err := strconv.Atoi(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("invalid employee id %q", fs.Arg(0))
	}

	ctx := context.Background()
	if err := app.API.DeleteFirmEmployee(ctx, id); err != nil {
		return err
	}

	fmt.Printf("✓ Employee %d removed\n", id)

	employees, err := app.API.FirmEmployees(ctx)
	if err != nil {
		return fmt.Errorf("delete succeeded but reloading the list failed: %w", err)
	}
	printEmployees(employees)
	return nil
}

func printEmployees(employees []models.Employee) {
	if len(employees) == 0 {
		fmt.Println("No employees found")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tUSERNAME\tNAME\tEMAIL")
	fmt.Fprintln(w, "--\t--------\t----\t-----")

	for _, e := range employees {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", e.ID, e.Username, orDash(e.FullName), e.Email)
	}
	w.Flush()

	fmt.Printf("\nTotal: %d employee(s)\n", len(employees))
}
