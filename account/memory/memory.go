// Package memory provides a thread-safe in-memory implementation of account.Store.
package memory

import (
	"sync"

	"github.com/google/uuid"

	"github.com/tcallow/gatehouse/account"
)

// Store is a thread-safe in-memory account.Store. Accounts are lost on
// process exit; suitable for single-process use and testing.
type Store struct {
	mu       sync.RWMutex
	byName   map[string]account.Account // exact username -> account
	byKey    map[string]string          // uniqueness key -> exact username
	hashCost int
}

var _ account.Store = (*Store)(nil)

// Option configures a Store.
type Option func(*Store)

// WithHashCost overrides the bcrypt work factor. Tests use bcrypt.MinCost to
// stay fast; production keeps account.DefaultHashCost.
func WithHashCost(cost int) Option {
	return func(s *Store) {
		s.hashCost = cost
	}
}

// NewStore creates an empty in-memory Store.
func NewStore(opts ...Option) *Store {
	s := &Store{
		byName:   make(map[string]account.Account),
		byKey:    make(map[string]string),
		hashCost: account.DefaultHashCost,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Register(username, password, firstname, lastname string) (account.Account, error) {
	key := account.UniquenessKey(username)

	s.mu.RLock()
	_, taken := s.byKey[key]
	s.mu.RUnlock()
	if taken {
		return account.Account{}, account.ErrUsernameTaken
	}

	// Hash outside the lock; bcrypt is deliberately slow and would
	// otherwise serialize every concurrent registration behind it.
	hash, err := account.HashPassword(password, s.hashCost)
	if err != nil {
		return account.Account{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// Re-check under the write lock. The uniqueness check and the insert
	// must be one atomic unit or two in-flight registrations for the same
	// username could both pass the scan.
	if _, taken := s.byKey[key]; taken {
		return account.Account{}, account.ErrUsernameTaken
	}
	acc := account.Account{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: hash,
		Firstname:    firstname,
		Lastname:     lastname,
	}
	s.byName[username] = acc
	s.byKey[key] = username
	return acc, nil
}

func (s *Store) Authenticate(username, password string) (account.Account, error) {
	s.mu.RLock()
	acc, ok := s.byName[username]
	s.mu.RUnlock()
	if !ok {
		// Unknown usernames fail without a bcrypt comparison.
		return account.Account{}, account.ErrInvalidCredentials
	}
	if !account.VerifyPassword(acc.PasswordHash, password) {
		return account.Account{}, account.ErrInvalidCredentials
	}
	return acc, nil
}

func (s *Store) FindByUsername(username string) (account.Account, error) {
	s.mu.RLock()
	acc, ok := s.byName[username]
	s.mu.RUnlock()
	if !ok {
		return account.Account{}, account.ErrNotFound
	}
	return acc, nil
}
