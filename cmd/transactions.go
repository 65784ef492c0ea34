package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"finman/renderer"

	"github.com/google/subcommands"
)

// transactionsCmd holds the flags for the 'transactions' subcommand.
type transactionsCmd struct{}

func (*transactionsCmd) Name() string     { return "transactions" }
func (*transactionsCmd) Synopsis() string { return "list all transactions, newest first" }
func (*transactionsCmd) Usage() string {
	return `pfm transactions

  Lists every transaction of the logged-in user, most recent date first.

Usage Examples:
$ pfm transactions
`
}

func (c *transactionsCmd) SetFlags(f *flag.FlagSet) {}

func (c *transactionsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s := openStore()
	u, err := currentUser(s)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	txs := s.Transactions(u.Username)
	if len(txs) == 0 {
		fmt.Println("No transactions yet.")
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.TransactionsMarkdown("Transactions", txs, u.Currency))
	return subcommands.ExitSuccess
}
