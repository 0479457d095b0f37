// ABOUTME: Login and registration flows
// ABOUTME: Login persists the token pair and role flags before returning
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/serviceradar/radar/session"
)

// Credentials for the token endpoint. The backend accepts either username or
// email; password is always required.
type Credentials struct {
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password"`
}

// LoginResult is the structured outcome of a login attempt. Login never
// raises for bad credentials, so callers can render inline form errors.
type LoginResult struct {
	Success bool
	Error   string
}

// Login posts credentials to the token endpoint. On success it persists the
// access/refresh pair and role flags to the session store before returning.
func (c *Client) Login(ctx context.Context, creds Credentials) LoginResult {
	data, err := json.Marshal(creds)
	if err != nil {
		return LoginResult{Error: fmt.Sprintf("failed to encode credentials: %v", err)}
	}

	target := c.authBase + "/auth/token/"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, bytes.NewReader(data))
	if err != nil {
		return LoginResult{Error: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return LoginResult{Error: "could not reach the server: " + err.Error()}
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return LoginResult{Error: err.Error()}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return LoginResult{Error: errorDetail(raw, "login", resp.StatusCode)}
	}

	var out session.LoginOut
	if err := json.Unmarshal(raw, &out); err != nil {
		return LoginResult{Error: "unexpected login response: " + err.Error()}
	}
	if out.Access == "" {
		return LoginResult{Error: "login response carried no access token"}
	}

	if err := session.SaveLogin(c.sess, out); err != nil {
		return LoginResult{Error: "failed to persist session: " + err.Error()}
	}
	return LoginResult{Success: true}
}

// RegisterIn creates a customer account.
type RegisterIn struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Password string `json:"password"`
	IsFirm   bool   `json:"is_firm"`
}

// RegisterCustomer creates a customer account. is_firm is forced false;
// firms register through RegisterFirm.
func (c *Client) RegisterCustomer(ctx context.Context, in RegisterIn) error {
	in.IsFirm = false
	return c.call(ctx, "register", http.MethodPost, "core/users/register", nil, in, nil, false)
}
