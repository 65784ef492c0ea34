package finman

import (
	"fmt"
	"slices"
	"strings"
)

// TransactionType distinguishes money coming in from money going out.
type TransactionType string

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// ParseTransactionType parses a string into a TransactionType.
func ParseTransactionType(s string) (TransactionType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "income":
		return Income, nil
	case "expense":
		return Expense, nil
	default:
		return "", fmt.Errorf("%w: unknown transaction type %q", ErrInvalid, s)
	}
}

// The two category lists are fixed, disjoint enumerations. Stored
// transactions reference them by name, so the names must not change.
var (
	ExpenseCategories = []string{
		"Food", "Rent", "Transportation", "Entertainment", "Utilities",
		"Healthcare", "Shopping", "Education", "Other",
	}
	IncomeCategories = []string{
		"Salary", "Freelance", "Investment", "Gift", "Other",
	}
)

// CategoriesFor returns the category list matching the transaction type.
func CategoriesFor(t TransactionType) []string {
	if t == Income {
		return IncomeCategories
	}
	return ExpenseCategories
}

// ValidCategory reports whether category belongs to the list for the given type.
func ValidCategory(t TransactionType, category string) bool {
	return slices.Contains(CategoriesFor(t), category)
}

// CategoryAt resolves a 1-based index into the category list for the given
// type. It is how a menu or CLI lets the user pick a category by number.
func CategoryAt(t TransactionType, index int) (string, error) {
	cats := CategoriesFor(t)
	if index < 1 || index > len(cats) {
		return "", fmt.Errorf("%w: category index %d out of range [1,%d]", ErrInvalid, index, len(cats))
	}
	return cats[index-1], nil
}
