package finman

import (
	"fmt"
	"slices"
	"strings"

	"finman/date"

	"github.com/shopspring/decimal"
)

// Defaults applied when a transaction is added with blank optional fields.
const (
	DefaultDescription   = "No description"
	DefaultPaymentMethod = "Cash"
)

// ConfirmDelete is the exact affirmative token a deletion requires.
const ConfirmDelete = "yes"

// AddTransaction validates and records a new transaction for username and
// returns its assigned ID. The category must belong to the list matching
// the type, the amount must be a strictly positive decimal, and the date,
// when supplied, must be a valid YYYY-MM-DD calendar date (blank means
// today). Description and payment method fall back to their defaults.
func (s *Store) AddTransaction(username string, typ TransactionType, amount, category, day, description, method string) (string, error) {
	user, ok := s.users[username]
	if !ok {
		return "", fmt.Errorf("%w: user %q", ErrNotFound, username)
	}
	if !ValidCategory(typ, category) {
		return "", fmt.Errorf("%w: %q is not an %s category", ErrInvalid, category, typ)
	}
	value, err := ParseAmount(amount)
	if err != nil {
		return "", err
	}
	on := date.Today()
	if day != "" {
		if on, err = date.Parse(day); err != nil {
			return "", fmt.Errorf("%w: %v", ErrInvalid, err)
		}
	}
	if description == "" {
		description = DefaultDescription
	}
	if method == "" {
		method = DefaultPaymentMethod
	}

	id := s.nextTransactionID()
	s.transactions[id] = Transaction{
		ID:            id,
		UserID:        user.ID,
		Username:      username,
		Type:          typ,
		Amount:        value,
		Category:      category,
		Date:          on,
		Description:   description,
		PaymentMethod: method,
	}
	s.persist()
	return id, nil
}

// Transactions returns all of username's transactions, newest date first.
// Same-date transactions are ordered by ascending transaction ID.
func (s *Store) Transactions(username string) []Transaction {
	var out []Transaction
	for _, tx := range s.transactions {
		if tx.Username == username {
			out = append(out, tx)
		}
	}
	sortTransactions(out)
	return out
}

func sortTransactions(txs []Transaction) {
	slices.SortFunc(txs, func(a, b Transaction) int {
		if a.Date != b.Date {
			if a.Date.After(b.Date) {
				return -1
			}
			return 1
		}
		return strings.Compare(a.ID, b.ID)
	})
}

// EditTransaction updates the amount and/or description of one of
// username's transactions. A blank field keeps the prior value, and so does
// a new amount that fails validation: a bad amount is silently ignored, it
// does not fail the edit.
func (s *Store) EditTransaction(username, id, amount, description string) error {
	tx, ok := s.transactions[id]
	if !ok {
		return fmt.Errorf("%w: transaction %q", ErrNotFound, id)
	}
	if tx.Username != username {
		return fmt.Errorf("%w: transaction %s belongs to another user", ErrForbidden, id)
	}
	if amount != "" {
		if value, err := ParseAmount(amount); err == nil {
			tx.Amount = value
		}
	}
	if description != "" {
		tx.Description = description
	}
	s.transactions[id] = tx
	s.persist()
	return nil
}

// DeleteTransaction removes one of username's transactions. The deletion
// only proceeds when confirmation is exactly ConfirmDelete; anything else
// returns ErrCancelled with the record untouched.
func (s *Store) DeleteTransaction(username, id, confirmation string) error {
	tx, ok := s.transactions[id]
	if !ok {
		return fmt.Errorf("%w: transaction %q", ErrNotFound, id)
	}
	if tx.Username != username {
		return fmt.Errorf("%w: transaction %s belongs to another user", ErrForbidden, id)
	}
	if confirmation != ConfirmDelete {
		return fmt.Errorf("%w: deletion requires the confirmation %q", ErrCancelled, ConfirmDelete)
	}
	delete(s.transactions, id)
	s.persist()
	return nil
}

// Filter selects transactions in a search.
type Filter func(Transaction) bool

// maxSearchAmount is the sentinel upper bound substituted when the max
// bound of an amount search does not parse.
var maxSearchAmount = decimal.NewFromInt(999999999)

// ByDateRange filters transactions dated within [start, end], bounds
// included. Both bounds must be valid dates or the whole query is rejected.
func ByDateRange(start, end string) (Filter, error) {
	from, err := date.Parse(start)
	if err != nil {
		return nil, fmt.Errorf("%w: start date: %v", ErrInvalid, err)
	}
	to, err := date.Parse(end)
	if err != nil {
		return nil, fmt.Errorf("%w: end date: %v", ErrInvalid, err)
	}
	r := date.NewRange(from, to)
	return func(tx Transaction) bool { return r.Contains(tx.Date) }, nil
}

// ByCategory filters transactions whose category matches, ignoring case.
func ByCategory(category string) Filter {
	return func(tx Transaction) bool { return strings.EqualFold(tx.Category, category) }
}

// ByAmountRange filters transactions with amount in [min, max], bounds
// included. Unlike ByDateRange this is lenient: an unparsable min defaults
// to zero and an unparsable max to a very large sentinel, so a bad bound
// never rejects the query by itself.
func ByAmountRange(min, max string) Filter {
	lo, err := ParseAmount(min)
	if err != nil {
		lo = decimal.Zero
	}
	hi, err := ParseAmount(max)
	if err != nil {
		hi = maxSearchAmount
	}
	return func(tx Transaction) bool {
		return tx.Amount.GreaterThanOrEqual(lo) && tx.Amount.LessThanOrEqual(hi)
	}
}

// SearchTransactions returns username's transactions accepted by the
// filter, in the same order as Transactions.
func (s *Store) SearchTransactions(username string, accept Filter) []Transaction {
	var out []Transaction
	for _, tx := range s.transactions {
		if tx.Username == username && accept(tx) {
			out = append(out, tx)
		}
	}
	sortTransactions(out)
	return out
}
