package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"finman"

	"github.com/google/subcommands"
)

// addCmd holds the flags for the 'add' subcommand.
type addCmd struct {
	typ         string
	amount      string
	category    string
	date        string
	description string
	method      string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a new income or expense transaction" }
func (*addCmd) Usage() string {
	return `pfm add -t <income|expense> -a <amount> -c <category> [-d <date>] [-desc <text>] [-m <method>]

  Records a transaction for the logged-in user. The category is a name or
  1-based index from the list matching the type (see 'pfm topic categories').
  The date defaults to today, the description to "No description" and the
  payment method to "Cash".

Usage Examples:
$ pfm add -t expense -a 12.50 -c Food -desc "lunch"
$ pfm add -t income -a 3000 -c 1 -d 2024-03-01
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.typ, "t", "expense", "Transaction type: income or expense")
	f.StringVar(&c.amount, "a", "", "Amount, a positive decimal")
	f.StringVar(&c.category, "c", "", "Category name or 1-based index")
	f.StringVar(&c.date, "d", "", "Date (YYYY-MM-DD), defaults to today")
	f.StringVar(&c.description, "desc", "", "Description")
	f.StringVar(&c.method, "m", "", "Payment method (Cash/Credit Card/Debit Card)")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s := openStore()
	u, err := currentUser(s)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	typ, err := finman.ParseTransactionType(c.typ)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	category, err := resolveCategory(typ, c.category)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	id, err := s.AddTransaction(u.Username, typ, c.amount, category, c.date, c.description, c.method)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error adding transaction: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Transaction %s added.\n", id)
	return subcommands.ExitSuccess
}
