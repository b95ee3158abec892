package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tcallow/gatehouse/account/memory"
	"github.com/tcallow/gatehouse/api"
)

func setupServer(t *testing.T) *httptest.Server {
	t.Helper()
	store := memory.NewStore(memory.WithHashCost(bcrypt.MinCost))
	a := api.New(store)
	r := chi.NewRouter()
	r.Mount("/api/v1", a.Router())
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func newClient(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &http.Client{Jar: jar}
}

func doJSON(t *testing.T, client *http.Client, method, url string, body any) *http.Response {
	t.Helper()
	var reqBody bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&reqBody).Encode(body))
	}
	req, err := http.NewRequestWithContext(context.Background(), method, url, &reqBody)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := client.Do(req)
	require.NoError(t, err)
	return resp
}

func signup(t *testing.T, client *http.Client, baseURL, username, password, firstname, lastname string) *http.Response {
	t.Helper()
	return doJSON(t, client, http.MethodPost, baseURL+"/api/v1/signup", map[string]string{
		"username":  username,
		"password":  password,
		"firstname": firstname,
		"lastname":  lastname,
	})
}

func login(t *testing.T, client *http.Client, baseURL, username, password string) *http.Response {
	t.Helper()
	return doJSON(t, client, http.MethodPost, baseURL+"/api/v1/login", map[string]string{
		"username": username,
		"password": password,
	})
}

// TestAccountLifecycle walks the full signup → duplicate signup → bad login →
// login → profile → logout → profile sequence on one connection.
func TestAccountLifecycle(t *testing.T) {
	srv := setupServer(t)
	client := newClient(t)

	resp := signup(t, client, srv.URL, "alice", "secret1", "Alice", "A")
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// Same username in a different case collides.
	resp = signup(t, client, srv.URL, "Alice", "other", "Alice", "A")
	defer resp.Body.Close()
	require.Equal(t, http.StatusConflict, resp.StatusCode)

	resp = login(t, client, srv.URL, "alice", "wrong")
	defer resp.Body.Close()
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	resp = login(t, client, srv.URL, "alice", "secret1")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, client, http.MethodGet, srv.URL+"/api/v1/check-auth", nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var profile api.ProfileResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&profile))
	assert.Equal(t, "alice", profile.Username)
	assert.Equal(t, "Alice", profile.Firstname)
	assert.Equal(t, "A", profile.Lastname)

	resp = doJSON(t, client, http.MethodGet, srv.URL+"/api/v1/logout", nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Session is gone; the profile route rejects the same connection.
	resp = doJSON(t, client, http.MethodGet, srv.URL+"/api/v1/check-auth", nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestSignupMissingFields(t *testing.T) {
	srv := setupServer(t)
	client := newClient(t)

	// Whitespace-only fields count as missing.
	resp := signup(t, client, srv.URL, "bob", "  ", "Bob", "B")
	defer resp.Body.Close()
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var msg api.MessageResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&msg))
	assert.Equal(t, "Missing your info!", msg.Message)
}

func TestLoginBlankFields(t *testing.T) {
	srv := setupServer(t)
	client := newClient(t)

	resp := login(t, client, srv.URL, "", "pw")
	defer resp.Body.Close()
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

// TestLoginIsCaseSensitive: registration is case-insensitive for uniqueness,
// but login looks up the exact username.
func TestLoginIsCaseSensitive(t *testing.T) {
	srv := setupServer(t)
	client := newClient(t)

	resp := signup(t, client, srv.URL, "carol", "pw123", "Carol", "C")
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = login(t, client, srv.URL, "Carol", "pw123")
	defer resp.Body.Close()
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestGuestOnlyRoutesRejectLoggedIn(t *testing.T) {
	srv := setupServer(t)
	client := newClient(t)

	resp := signup(t, client, srv.URL, "dave", "pw123", "Dave", "D")
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = login(t, client, srv.URL, "dave", "pw123")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = signup(t, client, srv.URL, "erin", "pw123", "Erin", "E")
	defer resp.Body.Close()
	require.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = login(t, client, srv.URL, "dave", "pw123")
	defer resp.Body.Close()
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestAuthRoutesRequireLogin(t *testing.T) {
	srv := setupServer(t)
	client := newClient(t)

	resp := doJSON(t, client, http.MethodGet, srv.URL+"/api/v1/check-auth", nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = doJSON(t, client, http.MethodGet, srv.URL+"/api/v1/logout", nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// TestProfileNeverLeaksPasswordMaterial decodes the raw profile body and
// checks no password-ish key sneaks in.
func TestProfileNeverLeaksPasswordMaterial(t *testing.T) {
	srv := setupServer(t)
	client := newClient(t)

	resp := signup(t, client, srv.URL, "frank", "pw123", "Frank", "F")
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = login(t, client, srv.URL, "frank", "pw123")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, client, http.MethodGet, srv.URL+"/api/v1/check-auth", nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var raw map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&raw))
	assert.NotContains(t, raw, "password")
	assert.NotContains(t, raw, "passwordHash")
	assert.NotContains(t, raw, "password_hash")
}

func TestInvalidJSONBody(t *testing.T) {
	srv := setupServer(t)
	client := newClient(t)

	req, err := http.NewRequestWithContext(context.Background(), http.MethodPost,
		srv.URL+"/api/v1/signup", bytes.NewBufferString("not json"))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
