package account

import "errors"

// ErrUsernameTaken is returned by Register when another account already holds
// the username under case-insensitive comparison.
var ErrUsernameTaken = errors.New("username is taken")

// ErrInvalidCredentials is returned by Authenticate for an unknown username
// or a wrong password. The two cases are deliberately not distinguished.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrNotFound is returned by FindByUsername when no account matches.
var ErrNotFound = errors.New("account not found")
