package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"finman/date"

	"github.com/google/subcommands"
)

// exportCmd holds the flags for the 'export' subcommand.
type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export all transactions to a CSV file" }
func (*exportCmd) Usage() string {
	return `pfm export [-o <file>]

  Writes every transaction of the logged-in user to a CSV file. The
  default file name is transactions_<username>_<date>.csv in the current
  directory.

Usage Examples:
$ pfm export
$ pfm export -o march.csv
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Output file, defaults to transactions_<username>_<date>.csv")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s := openStore()
	u, err := currentUser(s)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	name := c.output
	if name == "" {
		name = fmt.Sprintf("transactions_%s_%s.csv", u.Username, date.Today())
	}

	w, err := os.Create(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %s: %v\n", name, err)
		return subcommands.ExitFailure
	}
	defer w.Close()

	if err := s.ExportCSV(w, u.Username); err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting transactions: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Transactions exported to %s.\n", name)
	return subcommands.ExitSuccess
}
