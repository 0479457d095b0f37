// ABOUTME: HTTP client for the marketplace REST backend
// ABOUTME: Shared request plumbing: auth header, JSON codec, error normalization
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/serviceradar/radar/config"
	"github.com/serviceradar/radar/session"
)

// ErrUnauthorized is returned when an authenticated call is attempted without
// a token, or when the backend rejects the token with a 401.
var ErrUnauthorized = errors.New("authorization required")

// Client issues requests against the marketplace API. One method per backend
// operation; every method shares the contract implemented by call.
type Client struct {
	base     string
	authBase string
	http     *http.Client
	sess     session.Store
	clientID string

	// onUnauthorized runs before a 401 is surfaced, so the caller can clear
	// persisted session state. Optional.
	onUnauthorized func()
}

// New creates a client bound to a session store for token lookup.
func New(cfg *config.Config, sess session.Store) *Client {
	return &Client{
		base:     strings.TrimRight(cfg.APIBase, "/"),
		authBase: strings.TrimRight(cfg.AuthBase, "/"),
		http:     &http.Client{Timeout: 30 * time.Second},
		sess:     sess,
		clientID: cfg.ClientID,
	}
}

// OnUnauthorized registers the cleanup hook invoked on any 401.
func (c *Client) OnUnauthorized(fn func()) {
	c.onUnauthorized = fn
}

// SetHTTPClient swaps the underlying HTTP client (tests).
func (c *Client) SetHTTPClient(h *http.Client) {
	c.http = h
}

// call performs one request. endpoint is relative to the API base
// (e.g. "core/services/search"). params become the query string on GET.
// out, when non-nil, receives the decoded JSON body; a *string out receives
// a non-JSON success body as raw text. op names the operation in fallback
// error messages.
func (c *Client) call(ctx context.Context, op, method, endpoint string, params url.Values, body, out any, requiresAuth bool) error {
	target := c.base + "/" + strings.TrimLeft(endpoint, "/")
	if method == http.MethodGet && len(params) > 0 {
		target += "?" + params.Encode()
	}

	var reqBody io.Reader
	if body != nil && method != http.MethodGet {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: failed to encode request: %w", op, err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reqBody)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.clientID != "" {
		req.Header.Set("X-Client-ID", c.clientID)
	}

	token := session.AccessToken(c.sess)
	if requiresAuth && token == "" {
		c.unauthorized()
		return fmt.Errorf("%s: %w", op, ErrUnauthorized)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusUnauthorized && requiresAuth {
		c.unauthorized()
		return fmt.Errorf("%s: session expired, please log in again: %w", op, ErrUnauthorized)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s: failed to read response: %w", op, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%s: %s", op, errorDetail(raw, op, resp.StatusCode))
	}

	// 204 or empty body yields a nil result.
	if resp.StatusCode == http.StatusNoContent || len(raw) == 0 || out == nil {
		return nil
	}

	if err := json.Unmarshal(raw, out); err != nil {
		// A non-JSON success body is handed back as text.
		if sp, ok := out.(*string); ok {
			*sp = string(raw)
			return nil
		}
		return fmt.Errorf("%s: failed to decode response: %w", op, err)
	}
	return nil
}

func (c *Client) unauthorized() {
	if c.onUnauthorized != nil {
		c.onUnauthorized()
	}
}

// errorDetail extracts a human-readable message from an error body. The
// backend reports either {"detail": ...}, {"message": ...}, or a field-keyed
// validation map; anything else falls back to the status code.
func errorDetail(raw []byte, op string, status int) string {
	fallback := fmt.Sprintf("%s failed: %d", op, status)
	if len(raw) == 0 {
		return fallback
	}

	var parsed map[string]json.RawMessage
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fallback
	}

	for _, key := range []string{"detail", "message"} {
		if msg, ok := parsed[key]; ok {
			var s string
			if err := json.Unmarshal(msg, &s); err == nil && s != "" {
				return s
			}
		}
	}

	// Field-keyed validation errors: take the first field's first message.
	for field, msg := range parsed {
		var list []string
		if err := json.Unmarshal(msg, &list); err == nil && len(list) > 0 {
			return fmt.Sprintf("%s: %s", field, list[0])
		}
		var s string
		if err := json.Unmarshal(msg, &s); err == nil && s != "" {
			return fmt.Sprintf("%s: %s", field, s)
		}
	}
	return fallback
}
