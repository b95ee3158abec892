package api

import "time"

// SessionStore abstracts session CRUD so the cookie gate can be exercised in
// tests without a transport layer, and swapped out without touching handlers.
type SessionStore interface {
	// Get retrieves a session by token. Returns false if the session
	// does not exist, has expired, or has exceeded the idle timeout.
	Get(token string) (AuthSession, bool)
	// Put creates or updates a session for the given token.
	Put(token string, session AuthSession)
	// Delete removes a session by token.
	Delete(token string)
}

// AuthSession holds the server-side state for a logged-in session. It exists
// only between a successful login and the matching logout (or expiry).
type AuthSession struct {
	Username       string    `json:"username"`
	IssuedAt       time.Time `json:"issued_at"`
	ExpiresAt      time.Time `json:"expires_at"`
	LastAccessedAt time.Time `json:"last_accessed_at"`
}
