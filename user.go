package finman

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"finman/date"

	"github.com/google/uuid"
)

// User is an account record. Nothing mutates it after registration.
type User struct {
	ID           string    `json:"user_id"`
	Username     string    `json:"username"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"password_hash"`
	Currency     string    `json:"currency"`
	Created      date.Date `json:"created_date"`
}

// DefaultCurrency is used when registration leaves the currency blank.
const DefaultCurrency = "USD"

const minPasswordLen = 4

// hashPassword hashes with SHA-256, matching the hashes already on disk.
func hashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// Register creates a new user keyed by username. The username must be
// unique, name and username non-empty, and the password at least four
// characters. A blank currency defaults to DefaultCurrency.
func (s *Store) Register(username, name, password, currency string) (User, error) {
	username = strings.TrimSpace(username)
	name = strings.TrimSpace(name)
	currency = strings.TrimSpace(currency)

	if name == "" {
		return User{}, fmt.Errorf("%w: name cannot be empty", ErrInvalid)
	}
	if username == "" {
		return User{}, fmt.Errorf("%w: username cannot be empty", ErrInvalid)
	}
	if _, exists := s.users[username]; exists {
		return User{}, fmt.Errorf("%w: username %q already exists", ErrInvalid, username)
	}
	if len(password) < minPasswordLen {
		return User{}, fmt.Errorf("%w: password must be at least %d characters", ErrInvalid, minPasswordLen)
	}
	if currency == "" {
		currency = DefaultCurrency
	}

	u := User{
		ID:           uuid.NewString(),
		Username:     username,
		Name:         name,
		PasswordHash: hashPassword(password),
		Currency:     currency,
		Created:      date.Today(),
	}
	s.users[username] = u
	s.persist()
	return u, nil
}

// Authenticate checks credentials and returns the matching user. The error
// does not reveal whether the username exists.
func (s *Store) Authenticate(username, password string) (User, error) {
	u, ok := s.users[username]
	if !ok || u.PasswordHash != hashPassword(password) {
		return User{}, ErrCredentials
	}
	return u, nil
}

// User returns the user registered under username.
func (s *Store) User(username string) (User, bool) {
	u, ok := s.users[username]
	return u, ok
}
