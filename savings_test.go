package finman

import (
	"errors"
	"testing"
)

func TestStore_AddSavingsGoal(t *testing.T) {
	s := newTestStore(t)

	testCases := []struct {
		name     string
		goalName string
		target   string
		deadline string
		seed     string
		wantErr  error
	}{
		{name: "valid", goalName: "Vacation", target: "2000", deadline: "2025-06-01", seed: "150"},
		{name: "blank seed starts at zero", goalName: "Car", target: "8000", deadline: "2026-01-01", seed: ""},
		{name: "bad seed starts at zero", goalName: "House", target: "50000", deadline: "2030-01-01", seed: "???"},
		{name: "empty name", goalName: "  ", target: "100", deadline: "2025-06-01", wantErr: ErrInvalid},
		{name: "bad target", goalName: "X", target: "-5", deadline: "2025-06-01", wantErr: ErrInvalid},
		{name: "bad deadline", goalName: "X", target: "100", deadline: "2025-02-30", wantErr: ErrInvalid},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			id, err := s.AddSavingsGoal("alice", tc.goalName, tc.target, tc.deadline, tc.seed)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("error = %v, want %v", err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			g := s.goals["alice"][id]
			if tc.seed == "150" && g.Current.String() != "150" {
				t.Errorf("seed = %s, want 150", g.Current)
			}
			if tc.seed != "150" && !g.Current.IsZero() {
				t.Errorf("lenient seed = %s, want 0", g.Current)
			}
		})
	}

	if _, err := s.AddSavingsGoal("nobody", "X", "100", "2025-06-01", ""); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown user error = %v, want ErrNotFound", err)
	}
}

func TestStore_SavingsGoals_progress(t *testing.T) {
	s := newTestStore(t)
	first, err := s.AddSavingsGoal("alice", "Vacation", "2000", "2025-06-01", "500")
	if err != nil {
		t.Fatal(err)
	}
	second, err := s.AddSavingsGoal("alice", "Laptop", "1000", "2025-01-01", "1200")
	if err != nil {
		t.Fatal(err)
	}

	goals := s.SavingsGoals("alice")
	if len(goals) != 2 {
		t.Fatalf("got %d goals, want 2", len(goals))
	}
	// ordered by goal ID
	if goals[0].ID != first || goals[1].ID != second {
		t.Errorf("order = [%s %s], want [%s %s]", goals[0].ID, goals[1].ID, first, second)
	}

	if !goals[0].Percentage.Equal(25) {
		t.Errorf("Vacation percentage = %s, want 25%%", goals[0].Percentage)
	}
	if goals[0].Remaining.String() != "1500" {
		t.Errorf("Vacation remaining = %s, want 1500", goals[0].Remaining)
	}

	// over-saved: percentage beyond 100, remaining negative, neither clamped
	if !goals[1].Percentage.Equal(120) {
		t.Errorf("Laptop percentage = %s, want 120%%", goals[1].Percentage)
	}
	if goals[1].Remaining.String() != "-200" {
		t.Errorf("Laptop remaining = %s, want -200", goals[1].Remaining)
	}
}

func TestStore_SavingsGoals_empty(t *testing.T) {
	s := newTestStore(t)
	if goals := s.SavingsGoals("alice"); len(goals) != 0 {
		t.Errorf("goals = %+v, want none", goals)
	}
}
