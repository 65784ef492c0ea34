package finman

import (
	"testing"

	"finman/date"
)

// newTestStore returns an empty store backed by a throwaway directory with
// a single registered user "alice".
func newTestStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore(t.TempDir(), nil)
	if _, err := s.Register("alice", "Alice", "passw0rd", "USD"); err != nil {
		t.Fatalf("registering test user: %v", err)
	}
	return s
}

// addExpense records an expense for alice and fails the test on error.
func addExpense(t *testing.T, s *Store, amount, category string, on date.Date) string {
	t.Helper()
	id, err := s.AddTransaction("alice", Expense, amount, category, on.String(), "", "")
	if err != nil {
		t.Fatalf("adding expense %s %s: %v", amount, category, err)
	}
	return id
}

// addIncome records an income for alice and fails the test on error.
func addIncome(t *testing.T, s *Store, amount, category string, on date.Date) string {
	t.Helper()
	id, err := s.AddTransaction("alice", Income, amount, category, on.String(), "", "")
	if err != nil {
		t.Fatalf("adding income %s %s: %v", amount, category, err)
	}
	return id
}
