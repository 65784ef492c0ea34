package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"finman"

	"github.com/google/subcommands"
)

// deleteCmd holds the flags for the 'delete' subcommand.
type deleteCmd struct {
	id  string
	yes bool
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete a transaction" }
func (*deleteCmd) Usage() string {
	return `pfm delete -id <transaction> [-yes]

  Deletes the given transaction. Without -yes, asks for confirmation on
  stdin; only the exact answer "yes" deletes.

Usage Examples:
$ pfm delete -id TXN0003
$ pfm delete -id TXN0003 -yes
`
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Transaction ID (e.g. TXN0001)")
	f.BoolVar(&c.yes, "yes", false, "Skip the confirmation prompt")
}

// normalizeAnswer reduces a prompt reply to a comparable token, so "YES",
// " yes " and CRLF line endings all read as the affirmative answer.
func normalizeAnswer(line string) string {
	return strings.ToLower(strings.TrimSpace(line))
}

func (c *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s := openStore()
	u, err := currentUser(s)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	confirmation := finman.ConfirmDelete
	if !c.yes {
		fmt.Printf("Delete %s? Type 'yes' to confirm: ", c.id)
		line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
		confirmation = normalizeAnswer(line)
	}

	if err := s.DeleteTransaction(u.Username, c.id, confirmation); err != nil {
		fmt.Fprintf(os.Stderr, "Error deleting transaction: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Transaction %s deleted.\n", c.id)
	return subcommands.ExitSuccess
}
