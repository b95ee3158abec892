package account

// Store is the sole authority over account identity and credential checks.
// Input validation (non-blank fields) is the caller's responsibility; a Store
// receives field values as-is.
type Store interface {
	// Register creates a new account with a freshly hashed password and a
	// generated ID. Returns ErrUsernameTaken, without mutating anything,
	// when the username collides case-insensitively with an existing
	// account. The uniqueness check and the insert are atomic.
	Register(username, password, firstname, lastname string) (Account, error)

	// Authenticate verifies a username/password pair. The username lookup
	// is byte-exact, not case-insensitive. Returns ErrInvalidCredentials
	// for an unknown username or a wrong password.
	Authenticate(username, password string) (Account, error)

	// FindByUsername returns the account with the exact username, or
	// ErrNotFound. Read-only; no hashing involved.
	FindByUsername(username string) (Account, error)
}
