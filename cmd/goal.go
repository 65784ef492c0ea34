package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"finman/renderer"

	"github.com/google/subcommands"
)

// addGoalCmd holds the flags for the 'add-goal' subcommand.
type addGoalCmd struct {
	name     string
	target   string
	deadline string
	current  string
}

func (*addGoalCmd) Name() string     { return "add-goal" }
func (*addGoalCmd) Synopsis() string { return "create a savings goal" }
func (*addGoalCmd) Usage() string {
	return `pfm add-goal -n <name> -t <target> -d <deadline> [-c <current>]

  Creates a savings goal with a target amount and a deadline. The current
  amount defaults to 0, and an unparsable value also counts as 0.

Usage Examples:
$ pfm add-goal -n "Emergency Fund" -t 5000 -d 2025-06-30
$ pfm add-goal -n Vacation -t 2000 -d 2025-01-15 -c 350
`
}

func (c *addGoalCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "n", "", "Goal name")
	f.StringVar(&c.target, "t", "", "Target amount, a positive decimal")
	f.StringVar(&c.deadline, "d", "", "Deadline (YYYY-MM-DD)")
	f.StringVar(&c.current, "c", "", "Amount already saved, defaults to 0")
}

func (c *addGoalCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s := openStore()
	u, err := currentUser(s)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	id, err := s.AddSavingsGoal(u.Username, c.name, c.target, c.deadline, c.current)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error adding goal: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Goal %s added.\n", id)
	return subcommands.ExitSuccess
}

// goalsCmd holds the flags for the 'goals' subcommand.
type goalsCmd struct{}

func (*goalsCmd) Name() string     { return "goals" }
func (*goalsCmd) Synopsis() string { return "list savings goals with progress" }
func (*goalsCmd) Usage() string {
	return `pfm goals

  Lists every savings goal with its progress bar, percentage complete and
  amount remaining.

Usage Examples:
$ pfm goals
`
}

func (c *goalsCmd) SetFlags(f *flag.FlagSet) {}

func (c *goalsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s := openStore()
	u, err := currentUser(s)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	goals := s.SavingsGoals(u.Username)
	if len(goals) == 0 {
		fmt.Println("No savings goals yet.")
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.GoalsMarkdown(goals, u.Currency))
	return subcommands.ExitSuccess
}
