// ABOUTME: Tests for the shared request plumbing against httptest servers
// ABOUTME: Covers auth headers, error normalization, and the 401 cleanup hook
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/serviceradar/radar/config"
	"github.com/serviceradar/radar/models"
	"github.com/serviceradar/radar/store"
)

// memStore is an in-memory session store for tests.
type memStore struct {
	data map[string]string
}

func newMemStore() *memStore {
	return &memStore{data: map[string]string{}}
}

func (m *memStore) Get(key string) (string, bool) {
	v, ok := m.data[key]
	return v, ok
}

func (m *memStore) Set(key, value string) error {
	m.data[key] = value
	return nil
}

func (m *memStore) Delete(key string) error {
	delete(m.data, key)
	return nil
}

func testClient(serverURL string, sess *memStore) *Client {
	cfg := &config.Config{
		APIBase:  serverURL + "/api",
		AuthBase: serverURL,
		ClientID: "test-client",
	}
	return New(cfg, sess)
}

func TestCallSendsBearerAndClientID(t *testing.T) {
	var gotAuth, gotClientID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotClientID = r.Header.Get("X-Client-ID")
		_ = json.NewEncoder(w).Encode([]models.Listing{})
	}))
	defer server.Close()

	sess := newMemStore()
	sess.data[store.KeyAccessToken] = "token-abc"
	client := testClient(server.URL, sess)

	_, err := client.SearchServices(context.Background(), "plumber", "")
	require.NoError(t, err)
	assert.Equal(t, "Bearer token-abc", gotAuth)
	assert.Equal(t, "test-client", gotClientID)
}

func TestSearchEncodesQueryParameters(t *testing.T) {
	var gotQuery url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		_ = json.NewEncoder(w).Encode([]models.Listing{{ID: 1, Title: "Tamirci"}})
	}))
	defer server.Close()

	client := testClient(server.URL, newMemStore())

	// Non-ASCII input must survive URL encoding end to end
	listings, err := client.SearchServices(context.Background(), "tamir", "İstanbul")
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, "tamir", gotQuery.Get("query"))
	assert.Equal(t, "İstanbul", gotQuery.Get("location"))
}

func TestAuthedCallWithoutTokenFailsLocally(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	client := testClient(server.URL, newMemStore())

	_, err := client.FirmReferrals(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.False(t, called, "request must not be issued without a token")
}

func TestUnauthorizedResponseTriggersCleanupHook(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	sess := newMemStore()
	sess.data[store.KeyAccessToken] = "expired-token"
	client := testClient(server.URL, sess)

	hookCalled := false
	client.OnUnauthorized(func() { hookCalled = true })

	_, err := client.FirmReferrals(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.True(t, hookCalled, "a 401 must invoke the cleanup hook")
}

func TestErrorDetailNormalization(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"detail key", `{"detail": "Not found"}`, "Not found"},
		{"message key", `{"message": "Too many requests"}`, "Too many requests"},
		{"field errors", `{"email": ["This field is required."]}`, "email: This field is required."},
		{"unparsable", `<html>oops</html>`, "fetch service failed: 400"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := testClient(server.URL, newMemStore())
			_, err := client.GetService(context.Background(), 1)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestNoContentResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	sess := newMemStore()
	sess.data[store.KeyAccessToken] = "token"
	client := testClient(server.URL, sess)

	err := client.DeleteFirmService(context.Background(), 9)
	assert.NoError(t, err)
}

func TestLoginPersistsSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/token/", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access":          "access-1",
			"refresh":         "refresh-1",
			"id":              12,
			"full_name":       "Jane Doe",
			"is_superuser":    false,
			"is_firm_manager": true,
		})
	}))
	defer server.Close()

	sess := newMemStore()
	client := testClient(server.URL, sess)

	result := client.Login(context.Background(), Credentials{Username: "jane", Password: "pw"})
	require.True(t, result.Success, "login error: %s", result.Error)

	assert.Equal(t, "access-1", sess.data[store.KeyAccessToken])
	assert.Equal(t, "refresh-1", sess.data[store.KeyRefreshToken])
	assert.Equal(t, "Jane Doe", sess.data[store.KeyFullName])
	assert.Equal(t, "true", sess.data[store.KeyFirmManager])
}

func TestLoginBadCredentialsDoesNotRaise(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail": "No active account found with the given credentials"}`))
	}))
	defer server.Close()

	sess := newMemStore()
	client := testClient(server.URL, sess)

	result := client.Login(context.Background(), Credentials{Username: "jane", Password: "wrong"})
	assert.False(t, result.Success)
	assert.Equal(t, "No active account found with the given credentials", result.Error)
	assert.Empty(t, sess.data, "failed login must not persist anything")
}

func TestLoginWithoutAccessTokenFails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := testClient(server.URL, newMemStore())

	result := client.Login(context.Background(), Credentials{Username: "jane", Password: "pw"})
	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "no access token")
}

func TestReferralActionValidatesAction(t *testing.T) {
	sess := newMemStore()
	sess.data[store.KeyAccessToken] = "token"
	client := testClient("http://127.0.0.1:0", sess)

	err := client.ReferralAction(context.Background(), 1, "escalate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "escalate")
}
