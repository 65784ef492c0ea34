package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// editCmd holds the flags for the 'edit' subcommand.
type editCmd struct {
	id          string
	amount      string
	description string
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "edit a transaction's amount or description" }
func (*editCmd) Usage() string {
	return `pfm edit -id <transaction> [-a <amount>] [-desc <text>]

  Updates the given transaction. Omitted fields keep their current value,
  and an amount that does not parse as a positive decimal is ignored.

Usage Examples:
$ pfm edit -id TXN0003 -a 19.99
$ pfm edit -id TXN0003 -desc "dinner with friends"
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Transaction ID (e.g. TXN0001)")
	f.StringVar(&c.amount, "a", "", "New amount")
	f.StringVar(&c.description, "desc", "", "New description")
}

func (c *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s := openStore()
	u, err := currentUser(s)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if err := s.EditTransaction(u.Username, c.id, c.amount, c.description); err != nil {
		fmt.Fprintf(os.Stderr, "Error editing transaction: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Transaction %s updated.\n", c.id)
	return subcommands.ExitSuccess
}
