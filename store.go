package finman

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/shopspring/decimal"
)

// File names of the four persisted collections, one JSON document each.
const (
	UsersFile        = "users.json"
	TransactionsFile = "transactions.json"
	BudgetsFile      = "budgets.json"
	GoalsFile        = "savings_goals.json"
)

// Store owns the four record collections and is their only load/save
// boundary. Every other component reads and mutates records exclusively
// through it, never by holding private copies across calls.
type Store struct {
	dir    string
	logger *log.Logger

	users        map[string]User                       // by username
	transactions map[string]Transaction                // by transaction ID
	budgets      map[string]map[string]decimal.Decimal // username -> category -> monthly limit
	goals        map[string]map[string]SavingsGoal     // username -> goal ID -> goal

	// Monotonic ID counters, seeded from the highest persisted suffix at
	// load time and never decremented, so a deleted record's ID is not
	// handed out again.
	nextTransaction int
	nextGoal        int
}

// NewStore creates an empty store bound to dir.
func NewStore(dir string, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Store{
		dir:    dir,
		logger: logger,

		users:        make(map[string]User),
		transactions: make(map[string]Transaction),
		budgets:      make(map[string]map[string]decimal.Decimal),
		goals:        make(map[string]map[string]SavingsGoal),
	}
}

// Open creates a store bound to dir and loads whatever the four files hold.
// A load failure is reported and degrades to an empty collection: the
// program keeps running on partial or empty data rather than aborting.
func Open(dir string, logger *log.Logger) *Store {
	s := NewStore(dir, logger)
	if err := s.Load(); err != nil {
		s.logger.Warn("loading data, continuing with partial state", "err", err)
	}
	return s
}

// Load reads the four collections from the store directory. A missing file
// is an empty collection, not an error. An unreadable or unparsable file
// leaves that collection as it was (typically empty) and is reported in the
// returned error, wrapped in ErrPersistence.
func (s *Store) Load() error {
	var errs []error
	errs = append(errs, loadFile(filepath.Join(s.dir, UsersFile), &s.users))
	errs = append(errs, loadFile(filepath.Join(s.dir, TransactionsFile), &s.transactions))
	errs = append(errs, loadFile(filepath.Join(s.dir, BudgetsFile), &s.budgets))
	errs = append(errs, loadFile(filepath.Join(s.dir, GoalsFile), &s.goals))
	s.seedCounters()
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	return nil
}

// Save writes the four collections back, one file at a time. There is no
// cross-file atomicity: a crash mid-save can leave the files mutually
// inconsistent until the next successful save.
func (s *Store) Save() error {
	var errs []error
	errs = append(errs, saveFile(filepath.Join(s.dir, UsersFile), s.users))
	errs = append(errs, saveFile(filepath.Join(s.dir, TransactionsFile), s.transactions))
	errs = append(errs, saveFile(filepath.Join(s.dir, BudgetsFile), s.budgets))
	errs = append(errs, saveFile(filepath.Join(s.dir, GoalsFile), s.goals))
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	return nil
}

// persist runs the save-after-every-mutation policy. A failed save is
// reported and the in-memory mutation is kept, so memory and disk diverge
// until the next successful save.
func (s *Store) persist() {
	if err := s.Save(); err != nil {
		s.logger.Warn("saving data, disk is now behind memory", "err", err)
	}
}

func loadFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil // a missing collection is just empty
	}
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decoding %s: %w", filepath.Base(path), err)
	}
	return nil
}

func saveFile(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", filepath.Base(path), err)
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

// seedCounters scans the loaded collections for the highest numeric ID
// suffix so that newly assigned IDs never collide with persisted ones.
func (s *Store) seedCounters() {
	for id := range s.transactions {
		if n, ok := idSuffix(id, "TXN"); ok && n > s.nextTransaction {
			s.nextTransaction = n
		}
	}
	for _, goals := range s.goals {
		for id := range goals {
			if n, ok := idSuffix(id, "GOAL"); ok && n > s.nextGoal {
				s.nextGoal = n
			}
		}
	}
}

func idSuffix(id, prefix string) (int, bool) {
	if !strings.HasPrefix(id, prefix) {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimPrefix(id, prefix))
	if err != nil {
		return 0, false
	}
	return n, true
}

func (s *Store) nextTransactionID() string {
	s.nextTransaction++
	return fmt.Sprintf("TXN%04d", s.nextTransaction)
}

func (s *Store) nextGoalID() string {
	s.nextGoal++
	return fmt.Sprintf("GOAL%03d", s.nextGoal)
}
