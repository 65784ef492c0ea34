package finman

import (
	"fmt"
	"slices"
	"strings"

	"finman/date"

	"github.com/shopspring/decimal"
)

// SavingsGoal is a savings target with a deadline. The current amount is
// seeded at creation; there is no path that updates it afterwards.
type SavingsGoal struct {
	ID       string          `json:"goal_id"`
	Name     string          `json:"name"`
	Target   decimal.Decimal `json:"target"`
	Current  decimal.Decimal `json:"current"`
	Deadline date.Date       `json:"deadline"`
	Created  date.Date       `json:"created_date"`
}

// AddSavingsGoal records a new goal for username and returns its ID. Name
// must be non-empty, target a strictly positive decimal and deadline a
// valid date. The seed is lenient: blank or unparsable input starts the
// goal at zero instead of rejecting it.
func (s *Store) AddSavingsGoal(username, name, target, deadline, seed string) (string, error) {
	if _, ok := s.users[username]; !ok {
		return "", fmt.Errorf("%w: user %q", ErrNotFound, username)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: goal name cannot be empty", ErrInvalid)
	}
	targetValue, err := ParseAmount(target)
	if err != nil {
		return "", err
	}
	due, err := date.Parse(deadline)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	current := decimal.Zero
	if value, err := ParseAmount(seed); err == nil {
		current = value
	}

	id := s.nextGoalID()
	if s.goals[username] == nil {
		s.goals[username] = make(map[string]SavingsGoal)
	}
	s.goals[username][id] = SavingsGoal{
		ID:       id,
		Name:     name,
		Target:   targetValue,
		Current:  current,
		Deadline: due,
		Created:  date.Today(),
	}
	s.persist()
	return id, nil
}

// GoalProgress is a savings goal annotated with its progress.
type GoalProgress struct {
	SavingsGoal
	Percentage Percent
	Remaining  decimal.Decimal // negative when over-saved, not clamped
}

// SavingsGoals returns username's goals with progress, ordered by goal ID.
// The percentage guards a zero target as 0% even though creation already
// constrains targets to be positive.
func (s *Store) SavingsGoals(username string) []GoalProgress {
	goals := s.goals[username]
	out := make([]GoalProgress, 0, len(goals))
	for _, g := range goals {
		pct := Percent(0)
		if !g.Target.IsZero() {
			pct = Percent(g.Current.Div(g.Target).InexactFloat64() * 100)
		}
		out = append(out, GoalProgress{
			SavingsGoal: g,
			Percentage:  pct,
			Remaining:   g.Target.Sub(g.Current),
		})
	}
	slices.SortFunc(out, func(a, b GoalProgress) int { return strings.Compare(a.ID, b.ID) })
	return out
}
