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

// dashboardCmd holds the flags for the 'dashboard' subcommand.
type dashboardCmd struct {
	date string
}

func (*dashboardCmd) Name() string     { return "dashboard" }
func (*dashboardCmd) Synopsis() string { return "show the monthly financial dashboard" }
func (*dashboardCmd) Usage() string {
	return `pfm dashboard [-d <date>]

  Prints the dashboard for the month containing the given date (default
  today): income, expenses, net savings, current balance, top spending
  categories and the financial health score.

Usage Examples:
$ pfm dashboard
$ pfm dashboard -d 2024-03-15
`
}

func (c *dashboardCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Date (YYYY-MM-DD) selecting the month, defaults to today")
}

func (c *dashboardCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	d, err := finman.NewDashboard(s, u.Username, on, startBalance())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building dashboard: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.DashboardMarkdown(d))
	return subcommands.ExitSuccess
}
