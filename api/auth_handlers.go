package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tcallow/gatehouse/account"
)

// Signup handles POST /signup.
func (a *API) Signup(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeJSON[SignupRequest](w, r, maxAuthBodySize)
	if !ok {
		return
	}
	if isBlank(req.Username) || isBlank(req.Password) || isBlank(req.Firstname) || isBlank(req.Lastname) {
		// The original service reported missing input as a server error;
		// the status is part of the wire contract and is kept as-is.
		a.audit.logFailure(AuditSignupFailure, r, "missing fields")
		writeError(w, http.StatusInternalServerError, "Missing your info!")
		return
	}

	acc, err := a.accounts.Register(req.Username, req.Password, req.Firstname, req.Lastname)
	if err != nil {
		if errors.Is(err, account.ErrUsernameTaken) {
			a.audit.logFailure(AuditSignupConflict, r, "username taken",
				slog.String("username", req.Username))
			mapStoreError(w, err)
			return
		}
		a.audit.logFailure(AuditSignupFailure, r, "hashing failed")
		writeError(w, http.StatusInternalServerError, "failed to create account")
		return
	}

	a.audit.logEvent(AuditSignup, r, acc.Username)
	writeJSON(w, http.StatusCreated, MessageResponse{Message: "User successfully added!"})
}

// Login handles POST /login.
func (a *API) Login(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeJSON[LoginRequest](w, r, maxAuthBodySize)
	if !ok {
		return
	}
	if isBlank(req.Username) || isBlank(req.Password) {
		a.audit.logFailure(AuditLoginFailure, r, "missing fields")
		writeError(w, http.StatusInternalServerError, "Username or password is empty!")
		return
	}

	acc, err := a.accounts.Authenticate(req.Username, req.Password)
	if err != nil {
		// Unknown username and wrong password are indistinguishable to
		// the caller.
		a.audit.logFailure(AuditLoginFailure, r, "invalid credentials",
			slog.String("username", req.Username))
		mapStoreError(w, err)
		return
	}

	token := uuid.NewString()
	now := time.Now()
	expiresAt := now.Add(a.sessionLifetime)
	a.sessions.Put(token, AuthSession{
		Username:       acc.Username,
		IssuedAt:       now,
		ExpiresAt:      expiresAt,
		LastAccessedAt: now,
	})
	a.writeSessionCookie(w, r, token, expiresAt)

	a.audit.logEvent(AuditLoginSuccess, r, acc.Username)
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Login Successful"})
}

// Profile handles GET /check-auth.
func (a *API) Profile(w http.ResponseWriter, r *http.Request) {
	username := sessionUser(r.Context())

	acc, err := a.accounts.FindByUsername(username)
	if err != nil {
		// The session outlived the account. Not reachable through this
		// API's own operations, but the contract covers it.
		a.audit.logFailure(AuditProfileFailure, r, "account vanished",
			slog.String("username", username))
		mapStoreError(w, err)
		return
	}

	a.audit.logEvent(AuditProfileFetch, r, acc.Username)
	writeJSON(w, http.StatusOK, ProfileResponse{
		Username:  acc.Username,
		Firstname: acc.Firstname,
		Lastname:  acc.Lastname,
	})
}

// Logout handles GET /logout. It clears session state entirely and always
// succeeds for a logged-in caller.
func (a *API) Logout(w http.ResponseWriter, r *http.Request) {
	username := sessionUser(r.Context())
	if cookie, err := r.Cookie(a.cookieName); err == nil && cookie.Value != "" {
		a.sessions.Delete(cookie.Value)
	}
	a.clearSessionCookie(w, r)

	a.audit.logEvent(AuditLogout, r, username)
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Logout successful"})
}

// isBlank reports whether a required field is empty after trimming
// surrounding whitespace. Values are stored untrimmed; only the emptiness
// check trims.
func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
