// Package account owns user identity records and credential verification.
package account

import "golang.org/x/text/cases"

// Account is a registered user's identity record. Accounts are created once
// and are never updated or deleted.
type Account struct {
	ID           string
	Username     string
	PasswordHash string
	Firstname    string
	Lastname     string
}

// UniquenessKey returns the case-folded form of a username. Registration
// treats two usernames as colliding when their keys are equal; authentication
// and lookup remain byte-exact.
func UniquenessKey(username string) string {
	return cases.Fold().String(username)
}
