package api

import (
	"context"
	"net/http"
	"strings"
	"time"
)

type contextKey int

const sessionUserKey contextKey = iota

const (
	defaultCookieName      = "gatehouse_session"
	defaultSessionLifetime = 24 * time.Hour
	defaultIdleTimeout     = 30 * time.Minute
)

// RequireAuth admits only requests carrying a live session cookie and stores
// the session's username on the request context.
func (a *API) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, session, ok := a.sessionFromRequest(r)
		if !ok {
			writeError(w, http.StatusUnauthorized, "Only logged-in users can access this page!")
			return
		}

		session.LastAccessedAt = time.Now()
		a.sessions.Put(token, session)

		ctx := context.WithValue(r.Context(), sessionUserKey, session.Username)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireGuest is the inverse gate: signup and login are only reachable for
// callers that are not already logged in.
func (a *API) RequireGuest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, _, ok := a.sessionFromRequest(r); ok {
			writeError(w, http.StatusForbidden, "already logged in")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// sessionFromRequest resolves the session cookie against the session store.
// A stale cookie pointing at an expired or deleted session reads as "no
// session".
func (a *API) sessionFromRequest(r *http.Request) (string, AuthSession, bool) {
	cookie, err := r.Cookie(a.cookieName)
	if err != nil || cookie.Value == "" {
		return "", AuthSession{}, false
	}
	session, ok := a.sessions.Get(cookie.Value)
	if !ok {
		return "", AuthSession{}, false
	}
	return cookie.Value, session, true
}

// sessionUser returns the username placed on the context by RequireAuth.
func sessionUser(ctx context.Context) string {
	username, _ := ctx.Value(sessionUserKey).(string)
	return username
}

func (a *API) writeSessionCookie(w http.ResponseWriter, r *http.Request, token string, expiresAt time.Time) {
	secure := requestIsSecure(r)
	http.SetCookie(w, &http.Cookie{
		Name:     a.cookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
		Expires:  expiresAt,
	})
}

func (a *API) clearSessionCookie(w http.ResponseWriter, r *http.Request) {
	secure := requestIsSecure(r)
	http.SetCookie(w, &http.Cookie{
		Name:     a.cookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
	})
}

func requestIsSecure(r *http.Request) bool {
	if r.TLS != nil {
		return true
	}
	if strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https") {
		return true
	}
	return strings.Contains(strings.ToLower(r.Header.Get("Forwarded")), "proto=https")
}
