package finman

import (
	"fmt"

	"finman/date"

	"github.com/shopspring/decimal"
)

// BudgetState classifies spending against a monthly limit.
type BudgetState int

const (
	BudgetGood    BudgetState = iota // spent within 80% of the limit
	BudgetWarning                    // spent within the limit
	BudgetOver                       // limit exceeded
)

func (s BudgetState) String() string {
	switch s {
	case BudgetGood:
		return "good"
	case BudgetWarning:
		return "warning"
	case BudgetOver:
		return "over"
	default:
		return "unknown"
	}
}

// SetBudget sets username's monthly limit for an expense category,
// overwriting any prior limit rather than accumulating.
func (s *Store) SetBudget(username, category, limit string) error {
	if _, ok := s.users[username]; !ok {
		return fmt.Errorf("%w: user %q", ErrNotFound, username)
	}
	if !ValidCategory(Expense, category) {
		return fmt.Errorf("%w: %q is not an expense category", ErrInvalid, category)
	}
	value, err := ParseAmount(limit)
	if err != nil {
		return err
	}
	if s.budgets[username] == nil {
		s.budgets[username] = make(map[string]decimal.Decimal)
	}
	s.budgets[username][category] = value
	s.persist()
	return nil
}

// Budget returns the monthly limit set for (username, category).
func (s *Store) Budget(username, category string) (decimal.Decimal, bool) {
	limit, ok := s.budgets[username][category]
	return limit, ok
}

// BudgetStatus is a category's spending against its limit for one month.
type BudgetStatus struct {
	Category  string
	Limit     decimal.Decimal
	Spent     decimal.Decimal
	Remaining decimal.Decimal
	State     BudgetState
}

// BudgetStatus reports username's spending per budgeted category in on's
// calendar month. Budgets have no expiry: "spent" is recomputed from the
// ledger at every call, against whichever month on falls in. Categories
// without an explicit limit are omitted; the rest come back in the fixed
// expense-category order.
func (s *Store) BudgetStatus(username string, on date.Date) []BudgetStatus {
	limits := s.budgets[username]
	if len(limits) == 0 {
		return nil
	}

	spent := make(map[string]decimal.Decimal)
	for _, tx := range s.transactions {
		if tx.Username == username && tx.Type == Expense && tx.Date.SameMonth(on) {
			spent[tx.Category] = spent[tx.Category].Add(tx.Amount)
		}
	}

	var out []BudgetStatus
	for _, category := range ExpenseCategories {
		limit, ok := limits[category]
		if !ok {
			continue
		}
		used := spent[category]
		out = append(out, BudgetStatus{
			Category:  category,
			Limit:     limit,
			Spent:     used,
			Remaining: limit.Sub(used),
			State:     budgetState(used, limit),
		})
	}
	return out
}

// budgetState applies the thresholds: good up to 80% of the limit
// included, warning up to 100% included, over beyond. A zero limit counts
// as 0% spent instead of dividing by zero.
func budgetState(spent, limit decimal.Decimal) BudgetState {
	if limit.IsZero() {
		return BudgetGood
	}
	// spent/limit <= 0.80, kept exact as spent*100 <= limit*80
	switch {
	case spent.Mul(decimal.NewFromInt(100)).LessThanOrEqual(limit.Mul(decimal.NewFromInt(80))):
		return BudgetGood
	case spent.LessThanOrEqual(limit):
		return BudgetWarning
	default:
		return BudgetOver
	}
}
