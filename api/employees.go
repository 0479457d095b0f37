// ABOUTME: Firm employee management endpoints
// ABOUTME: CRUD over core/firm/management/users, manager role required
package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/serviceradar/radar/models"
)

// EmployeeCreateIn is the payload for adding a firm employee.
type EmployeeCreateIn struct {
	Username      string `json:"username"`
	Email         string `json:"email"`
	FullName      string `json:"full_name"`
	Password      string `json:"password"`
	IsFirmManager bool   `json:"is_firm_manager"`
}

// EmployeeUpdateIn changes an employee's role.
type EmployeeUpdateIn struct {
	IsFirmManager bool `json:"is_firm_manager"`
}

// FirmEmployees lists the firm's employees.
func (c *Client) FirmEmployees(ctx context.Context) ([]models.Employee, error) {
	var out []models.Employee
	if err := c.call(ctx, "list employees", http.MethodGet, "core/firm/management/users", nil, nil, &out, true); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateFirmEmployee adds a new employee account.
func (c *Client) CreateFirmEmployee(ctx context.Context, in EmployeeCreateIn) (*models.Employee, error) {
	var out models.Employee
	if err := c.call(ctx, "create employee", http.MethodPost, "core/firm/management/users", nil, in, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateFirmEmployeeRole changes an employee's manager flag.
func (c *Client) UpdateFirmEmployeeRole(ctx context.Context, userID int, in EmployeeUpdateIn) (*models.Employee, error) {
	var out models.Employee
	endpoint := fmt.Sprintf("core/firm/management/users/%d", userID)
	if err := c.call(ctx, "update employee", http.MethodPut, endpoint, nil, in, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteFirmEmployee removes an employee account.
func (c *Client) DeleteFirmEmployee(ctx context.Context, userID int) error {
	endpoint := fmt.Sprintf("core/firm/management/users/%d", userID)
	return c.call(ctx, "delete employee", http.MethodDelete, endpoint, nil, nil, nil, true)
}
