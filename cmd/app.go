// Package cmd implements the CLI application to manage personal finances.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"finman"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/log"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// Register the subcommands.
// A main package calls Register() to declare them, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&registerCmd{}, "session")
	c.Register(&loginCmd{}, "session")
	c.Register(&logoutCmd{}, "session")

	c.Register(&addCmd{}, "transactions")
	c.Register(&transactionsCmd{}, "transactions")
	c.Register(&editCmd{}, "transactions")
	c.Register(&deleteCmd{}, "transactions")
	c.Register(&searchCmd{}, "transactions")
	c.Register(&exportCmd{}, "transactions")

	c.Register(&setBudgetCmd{}, "budgets")
	c.Register(&budgetsCmd{}, "budgets")

	c.Register(&addGoalCmd{}, "goals")
	c.Register(&goalsCmd{}, "goals")

	c.Register(&dashboardCmd{}, "reports")
	c.Register(&topicCmd{}, "reports")
}

// as a CLI application it has a very short lived lifecycle, so flag globals are ok.

var dataDir = flag.String("data", envOr("FINMAN_DATA", "."),
	"Directory holding the data files and the session file")
var startingBalance = flag.String("starting-balance", envOr("FINMAN_STARTING_BALANCE", finman.DefaultStartingBalance.String()),
	"Opening balance credited to the dashboard's current balance")

var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "pfm"})

// openStore opens the store in the data directory. Unreadable files degrade
// to empty collections with a warning rather than aborting.
func openStore() *finman.Store {
	return finman.Open(*dataDir, logger)
}

// sessionFile holds the username of the active session, next to the data files.
const sessionFile = ".session"

// currentUser resolves the active session to a user. It is the auth gate
// every per-user command goes through.
func currentUser(s *finman.Store) (finman.User, error) {
	data, err := os.ReadFile(filepath.Join(*dataDir, sessionFile))
	if err != nil {
		return finman.User{}, errors.New("not logged in, run 'pfm login' first")
	}
	username := strings.TrimSpace(string(data))
	u, ok := s.User(username)
	if !ok {
		return finman.User{}, fmt.Errorf("session user %q no longer exists, run 'pfm login' again", username)
	}
	return u, nil
}

func saveSession(username string) error {
	return os.WriteFile(filepath.Join(*dataDir, sessionFile), []byte(username+"\n"), 0o600)
}

func clearSession() error {
	err := os.Remove(filepath.Join(*dataDir, sessionFile))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// startBalance parses the configured starting balance, falling back to the
// built-in default on bad input.
func startBalance() decimal.Decimal {
	v, err := decimal.NewFromString(*startingBalance)
	if err != nil {
		logger.Warn("invalid starting balance, using default", "value", *startingBalance)
		return finman.DefaultStartingBalance
	}
	return v
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when no renderer can be built.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err == nil {
		if out, rerr := r.Render(md); rerr == nil {
			fmt.Print(out)
			return
		}
	}
	fmt.Print(md)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// resolveCategory accepts a category name (any case) or its 1-based index
// in the list matching the transaction type.
func resolveCategory(t finman.TransactionType, s string) (string, error) {
	if n, err := strconv.Atoi(s); err == nil {
		return finman.CategoryAt(t, n)
	}
	for _, cat := range finman.CategoriesFor(t) {
		if strings.EqualFold(cat, s) {
			return cat, nil
		}
	}
	return "", fmt.Errorf("unknown %s category %q", t, s)
}
