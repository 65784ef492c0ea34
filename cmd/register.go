package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// registerCmd holds the flags for the 'register' subcommand.
type registerCmd struct {
	username string
	name     string
	password string
	currency string
}

func (*registerCmd) Name() string     { return "register" }
func (*registerCmd) Synopsis() string { return "create a new user account" }
func (*registerCmd) Usage() string {
	return `pfm register -u <username> -n <name> -p <password> [-c <currency>]

  Registers a new user. The username must be unique and the password at
  least 4 characters. The currency defaults to USD.
`
}

func (c *registerCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.username, "u", "", "Username, the unique account key")
	f.StringVar(&c.name, "n", "", "Display name")
	f.StringVar(&c.password, "p", "", "Password (min 4 characters)")
	f.StringVar(&c.currency, "c", "", "Currency code or symbol (default USD)")
}

func (c *registerCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s := openStore()
	u, err := s.Register(c.username, c.name, c.password, c.currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error registering user: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("User %s registered. Welcome, %s!\n", u.Username, u.Name)
	return subcommands.ExitSuccess
}
