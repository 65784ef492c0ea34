package finman

import (
	"errors"
	"testing"

	"finman/date"
)

func TestStore_AddTransaction(t *testing.T) {
	s := newTestStore(t)

	testCases := []struct {
		name     string
		typ      TransactionType
		amount   string
		category string
		day      string
		wantErr  error
	}{
		{name: "valid expense", typ: Expense, amount: "12.50", category: "Food", day: "2024-03-10"},
		{name: "valid income", typ: Income, amount: "1000", category: "Salary", day: "2024-03-01"},
		{name: "blank date means today", typ: Expense, amount: "5", category: "Food", day: ""},
		{name: "future date accepted", typ: Expense, amount: "5", category: "Food", day: "2099-01-01"},
		{name: "income category on expense", typ: Expense, amount: "5", category: "Salary", wantErr: ErrInvalid},
		{name: "expense category on income", typ: Income, amount: "5", category: "Food", wantErr: ErrInvalid},
		{name: "zero amount", typ: Expense, amount: "0", category: "Food", wantErr: ErrInvalid},
		{name: "negative amount", typ: Expense, amount: "-3", category: "Food", wantErr: ErrInvalid},
		{name: "bad amount", typ: Expense, amount: "x", category: "Food", wantErr: ErrInvalid},
		{name: "bad date", typ: Expense, amount: "5", category: "Food", day: "2023-02-29", wantErr: ErrInvalid},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			id, err := s.AddTransaction("alice", tc.typ, tc.amount, tc.category, tc.day, "", "")
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("error = %v, want %v", err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tx := s.transactions[id]
			if tx.Description != DefaultDescription || tx.PaymentMethod != DefaultPaymentMethod {
				t.Errorf("defaults not applied: %+v", tx)
			}
			if tc.day == "" && tx.Date != date.Today() {
				t.Errorf("blank date = %s, want today", tx.Date)
			}
		})
	}

	if _, err := s.AddTransaction("nobody", Expense, "5", "Food", "", "", ""); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown user error = %v, want ErrNotFound", err)
	}
}

func TestStore_Transactions_ordering(t *testing.T) {
	s := newTestStore(t)
	mid := addExpense(t, s, "10", "Food", date.MustParse("2024-03-10"))
	old := addExpense(t, s, "10", "Rent", date.MustParse("2024-01-05"))
	newest := addExpense(t, s, "10", "Food", date.MustParse("2024-06-01"))
	midTie := addExpense(t, s, "10", "Shopping", date.MustParse("2024-03-10"))

	got := s.Transactions("alice")
	wantOrder := []string{newest, mid, midTie, old} // date desc, ID asc on ties
	if len(got) != len(wantOrder) {
		t.Fatalf("got %d transactions, want %d", len(got), len(wantOrder))
	}
	for i, id := range wantOrder {
		if got[i].ID != id {
			t.Errorf("position %d = %s, want %s", i, got[i].ID, id)
		}
	}
}

func TestStore_Transactions_scopedToUser(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.Register("bob", "Bob", "hunter22", ""); err != nil {
		t.Fatal(err)
	}
	addExpense(t, s, "10", "Food", date.MustParse("2024-03-10"))
	if _, err := s.AddTransaction("bob", Expense, "99", "Rent", "2024-03-10", "", ""); err != nil {
		t.Fatal(err)
	}

	for _, tx := range s.Transactions("alice") {
		if tx.Username != "alice" {
			t.Errorf("alice's list contains %s owned by %s", tx.ID, tx.Username)
		}
	}
	if n := len(s.Transactions("bob")); n != 1 {
		t.Errorf("bob has %d transactions, want 1", n)
	}
}

func TestStore_EditTransaction(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.Register("bob", "Bob", "hunter22", ""); err != nil {
		t.Fatal(err)
	}
	id := addExpense(t, s, "50", "Food", date.MustParse("2024-03-10"))

	if err := s.EditTransaction("alice", "TXN9999", "60", ""); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing ID error = %v, want ErrNotFound", err)
	}
	if err := s.EditTransaction("bob", id, "60", ""); !errors.Is(err, ErrForbidden) {
		t.Errorf("foreign edit error = %v, want ErrForbidden", err)
	}

	// both fields supplied
	if err := s.EditTransaction("alice", id, "60.25", "dinner"); err != nil {
		t.Fatalf("edit: %v", err)
	}
	tx := s.transactions[id]
	if tx.Amount.String() != "60.25" || tx.Description != "dinner" {
		t.Errorf("after edit: %+v", tx)
	}

	// blank fields keep prior values
	if err := s.EditTransaction("alice", id, "", ""); err != nil {
		t.Fatalf("edit: %v", err)
	}
	tx = s.transactions[id]
	if tx.Amount.String() != "60.25" || tx.Description != "dinner" {
		t.Errorf("blank edit changed values: %+v", tx)
	}

	// an invalid new amount is silently ignored, not an error
	if err := s.EditTransaction("alice", id, "-4", "lunch"); err != nil {
		t.Fatalf("edit with bad amount: %v", err)
	}
	tx = s.transactions[id]
	if tx.Amount.String() != "60.25" {
		t.Errorf("bad amount replaced the old one: %s", tx.Amount)
	}
	if tx.Description != "lunch" {
		t.Errorf("description should still update, got %q", tx.Description)
	}
}

func TestStore_DeleteTransaction(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.Register("bob", "Bob", "hunter22", ""); err != nil {
		t.Fatal(err)
	}
	id := addExpense(t, s, "50", "Food", date.MustParse("2024-03-10"))

	if err := s.DeleteTransaction("alice", "TXN9999", ConfirmDelete); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing ID error = %v, want ErrNotFound", err)
	}
	// ownership is checked regardless of confirmation validity
	if err := s.DeleteTransaction("bob", id, ConfirmDelete); !errors.Is(err, ErrForbidden) {
		t.Errorf("foreign delete error = %v, want ErrForbidden", err)
	}

	for _, confirmation := range []string{"", "no", "y", "YES", "yes "} {
		if err := s.DeleteTransaction("alice", id, confirmation); !errors.Is(err, ErrCancelled) {
			t.Errorf("confirmation %q error = %v, want ErrCancelled", confirmation, err)
		}
	}
	if _, ok := s.transactions[id]; !ok {
		t.Fatal("cancelled deletion removed the record")
	}

	if err := s.DeleteTransaction("alice", id, ConfirmDelete); err != nil {
		t.Fatalf("confirmed delete: %v", err)
	}
	if _, ok := s.transactions[id]; ok {
		t.Error("record still present after confirmed delete")
	}
}

func TestStore_SearchTransactions(t *testing.T) {
	s := newTestStore(t)
	early := addExpense(t, s, "10", "Food", date.MustParse("2024-01-10"))
	mid := addExpense(t, s, "50", "Rent", date.MustParse("2024-02-15"))
	late := addIncome(t, s, "100", "Salary", date.MustParse("2024-03-20"))

	t.Run("date range is inclusive", func(t *testing.T) {
		f, err := ByDateRange("2024-01-10", "2024-02-15")
		if err != nil {
			t.Fatalf("ByDateRange: %v", err)
		}
		got := s.SearchTransactions("alice", f)
		if len(got) != 2 || got[0].ID != mid || got[1].ID != early {
			t.Errorf("got %+v, want [%s %s]", ids(got), mid, early)
		}
	})

	t.Run("bad bound rejects the whole date query", func(t *testing.T) {
		if _, err := ByDateRange("2024-01-10", "2024-02-30"); !errors.Is(err, ErrInvalid) {
			t.Errorf("error = %v, want ErrInvalid", err)
		}
		if _, err := ByDateRange("garbage", "2024-02-15"); !errors.Is(err, ErrInvalid) {
			t.Errorf("error = %v, want ErrInvalid", err)
		}
	})

	t.Run("category is case-insensitive", func(t *testing.T) {
		got := s.SearchTransactions("alice", ByCategory("fOOd"))
		if len(got) != 1 || got[0].ID != early {
			t.Errorf("got %v, want [%s]", ids(got), early)
		}
	})

	t.Run("amount range is inclusive", func(t *testing.T) {
		got := s.SearchTransactions("alice", ByAmountRange("10", "50"))
		if len(got) != 2 || got[0].ID != mid || got[1].ID != early {
			t.Errorf("got %v, want [%s %s]", ids(got), mid, early)
		}
	})

	t.Run("unparsable amount bounds default instead of rejecting", func(t *testing.T) {
		got := s.SearchTransactions("alice", ByAmountRange("garbage", "also garbage"))
		if len(got) != 3 {
			t.Errorf("got %v, want all three", ids(got))
		}
		got = s.SearchTransactions("alice", ByAmountRange("60", "garbage"))
		if len(got) != 1 || got[0].ID != late {
			t.Errorf("got %v, want [%s]", ids(got), late)
		}
	})
}

func ids(txs []Transaction) []string {
	out := make([]string, len(txs))
	for i, tx := range txs {
		out[i] = tx.ID
	}
	return out
}
