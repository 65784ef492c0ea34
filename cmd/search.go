package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"finman"
	"finman/renderer"

	"github.com/google/subcommands"
)

// searchCmd holds the flags for the 'search' subcommand.
type searchCmd struct {
	from     string
	to       string
	category string
	min      string
	max      string
}

func (*searchCmd) Name() string     { return "search" }
func (*searchCmd) Synopsis() string { return "search transactions by date range, category or amount" }
func (*searchCmd) Usage() string {
	return `pfm search [-from <date> -to <date>] | [-c <category>] | [-min <amount> -max <amount>]

  Searches the logged-in user's transactions using exactly one criterion:
  an inclusive date range, a category (case insensitive), or an amount
  range where an unparsable bound falls back to the widest value.

Usage Examples:
$ pfm search -from 2024-03-01 -to 2024-03-31
$ pfm search -c Food
$ pfm search -min 10 -max 100
`
}

func (c *searchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "Start date (YYYY-MM-DD), inclusive")
	f.StringVar(&c.to, "to", "", "End date (YYYY-MM-DD), inclusive")
	f.StringVar(&c.category, "c", "", "Category name")
	f.StringVar(&c.min, "min", "", "Minimum amount, inclusive")
	f.StringVar(&c.max, "max", "", "Maximum amount, inclusive")
}

func (c *searchCmd) filter() (finman.Filter, error) {
	switch {
	case c.from != "" || c.to != "":
		if c.category != "" || c.min != "" || c.max != "" {
			return nil, fmt.Errorf("use only one of date range, category or amount range")
		}
		return finman.ByDateRange(c.from, c.to)
	case c.category != "":
		if c.min != "" || c.max != "" {
			return nil, fmt.Errorf("use only one of date range, category or amount range")
		}
		return finman.ByCategory(c.category), nil
	case c.min != "" || c.max != "":
		return finman.ByAmountRange(c.min, c.max), nil
	}
	return nil, fmt.Errorf("missing search criterion, see 'pfm help search'")
}

func (c *searchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s := openStore()
	u, err := currentUser(s)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	accept, err := c.filter()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	txs := s.SearchTransactions(u.Username, accept)
	if len(txs) == 0 {
		fmt.Println("No matching transactions.")
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.TransactionsMarkdown("Search Results", txs, u.Currency))
	return subcommands.ExitSuccess
}
