package finman

import (
	"fmt"
	"slices"
	"strings"

	"finman/date"

	"github.com/shopspring/decimal"
)

// DefaultStartingBalance is the opening balance credited to the dashboard's
// current balance. Inherited as a placeholder from the original books; it
// is a named default so deployments can override it, not a magic literal.
var DefaultStartingBalance = decimal.NewFromInt(10000)

// HealthScore combines savings rate and expense ratio into a 0-100 number.
//
// The rubric is a fixed compatibility contract: savings rate thresholds
// 30/20/10/0 contribute 50/40/30/20 points (negative rates contribute
// nothing), expense ratio thresholds 50/70/90/100 contribute 50/40/30/20
// points (10 beyond), capped at 100. Zero income scores zero outright.
func HealthScore(income, expenses, savings decimal.Decimal) int {
	if income.IsZero() {
		return 0
	}
	hundred := decimal.NewFromInt(100)
	savingsRate := savings.Div(income).Mul(hundred)
	expenseRatio := expenses.Div(income).Mul(hundred)

	score := 0
	switch {
	case savingsRate.GreaterThanOrEqual(decimal.NewFromInt(30)):
		score += 50
	case savingsRate.GreaterThanOrEqual(decimal.NewFromInt(20)):
		score += 40
	case savingsRate.GreaterThanOrEqual(decimal.NewFromInt(10)):
		score += 30
	case !savingsRate.IsNegative():
		score += 20
	}

	switch {
	case expenseRatio.LessThanOrEqual(decimal.NewFromInt(50)):
		score += 50
	case expenseRatio.LessThanOrEqual(decimal.NewFromInt(70)):
		score += 40
	case expenseRatio.LessThanOrEqual(decimal.NewFromInt(90)):
		score += 30
	case expenseRatio.LessThanOrEqual(hundred):
		score += 20
	default:
		score += 10
	}

	if score > 100 {
		score = 100
	}
	return score
}

// CategoryTotal is an expense category's month total and its share of the
// month's total expenses.
type CategoryTotal struct {
	Category string
	Amount   decimal.Decimal
	Share    Percent
}

// Dashboard is the at-a-glance financial overview for one user and month.
type Dashboard struct {
	Date           date.Date
	User           User
	TotalIncome    decimal.Decimal
	TotalExpenses  decimal.Decimal
	NetSavings     decimal.Decimal
	CurrentBalance decimal.Decimal
	TopCategories  []CategoryTotal
	HealthScore    int
}

// NewDashboard aggregates username's transactions dated in on's calendar
// month: income and expense totals, net savings, the current balance
// (net savings plus the starting balance) and the top three expense
// categories with their share of total expenses.
func NewDashboard(s *Store, username string, on date.Date, startingBalance decimal.Decimal) (*Dashboard, error) {
	user, ok := s.users[username]
	if !ok {
		return nil, fmt.Errorf("%w: user %q", ErrNotFound, username)
	}

	income, expenses := decimal.Zero, decimal.Zero
	totals := make(map[string]decimal.Decimal)
	for _, tx := range s.transactions {
		if tx.Username != username || !tx.Date.SameMonth(on) {
			continue
		}
		if tx.Type == Income {
			income = income.Add(tx.Amount)
		} else {
			expenses = expenses.Add(tx.Amount)
			totals[tx.Category] = totals[tx.Category].Add(tx.Amount)
		}
	}
	net := income.Sub(expenses)

	return &Dashboard{
		Date:           on,
		User:           user,
		TotalIncome:    income,
		TotalExpenses:  expenses,
		NetSavings:     net,
		CurrentBalance: net.Add(startingBalance),
		TopCategories:  topCategories(totals, expenses, 3),
		HealthScore:    HealthScore(income, expenses, net),
	}, nil
}

// topCategories ranks categories by total descending, name ascending on
// ties, keeping at most n. Shares are 0 when total expenses are zero.
func topCategories(totals map[string]decimal.Decimal, totalExpenses decimal.Decimal, n int) []CategoryTotal {
	out := make([]CategoryTotal, 0, len(totals))
	for category, amount := range totals {
		share := Percent(0)
		if !totalExpenses.IsZero() {
			share = Percent(amount.Div(totalExpenses).InexactFloat64() * 100)
		}
		out = append(out, CategoryTotal{Category: category, Amount: amount, Share: share})
	}
	slices.SortFunc(out, func(a, b CategoryTotal) int {
		if c := b.Amount.Cmp(a.Amount); c != 0 {
			return c
		}
		return strings.Compare(a.Category, b.Category)
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}
