package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"finman"
	"finman/date"
	"finman/renderer"

	"github.com/google/subcommands"
)

// setBudgetCmd holds the flags for the 'set-budget' subcommand.
type setBudgetCmd struct {
	category string
	limit    string
}

func (*setBudgetCmd) Name() string     { return "set-budget" }
func (*setBudgetCmd) Synopsis() string { return "set a monthly limit for an expense category" }
func (*setBudgetCmd) Usage() string {
	return `pfm set-budget -c <category> -l <limit>

  Sets (or replaces) the monthly budget for an expense category. The
  category is a name or 1-based index from the expense list.

Usage Examples:
$ pfm set-budget -c Food -l 400
$ pfm set-budget -c 2 -l 1200
`
}

func (c *setBudgetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.category, "c", "", "Expense category name or 1-based index")
	f.StringVar(&c.limit, "l", "", "Monthly limit, a positive decimal")
}

func (c *setBudgetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s := openStore()
	u, err := currentUser(s)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	category, err := resolveCategory(finman.Expense, c.category)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	if err := s.SetBudget(u.Username, category, c.limit); err != nil {
		fmt.Fprintf(os.Stderr, "Error setting budget: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Budget for %s set to %s.\n", category, c.limit)
	return subcommands.ExitSuccess
}

// budgetsCmd holds the flags for the 'budgets' subcommand.
type budgetsCmd struct {
	date string
}

func (*budgetsCmd) Name() string     { return "budgets" }
func (*budgetsCmd) Synopsis() string { return "show budget status for a month" }
func (*budgetsCmd) Usage() string {
	return `pfm budgets [-d <date>]

  Shows, for every budgeted category, the limit, the amount spent in the
  month containing the given date (default today), the remaining amount
  and a status flag.

Usage Examples:
$ pfm budgets
$ pfm budgets -d 2024-03-15
`
}

func (c *budgetsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Date (YYYY-MM-DD) selecting the month, defaults to today")
}

func (c *budgetsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s := openStore()
	u, err := currentUser(s)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	on := date.Today()
	if c.date != "" {
		on, err = date.Parse(c.date)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
	}

	status := s.BudgetStatus(u.Username, on)
	if len(status) == 0 {
		fmt.Println("No budgets set.")
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.BudgetMarkdown(status, u.Currency))
	return subcommands.ExitSuccess
}
