package renderer

import (
	"bytes"

	"finman"

	md "github.com/nao1215/markdown"
)

// budgetStateLabel decorates the state for display.
func budgetStateLabel(s finman.BudgetState) string {
	switch s {
	case finman.BudgetGood:
		return "✅ good"
	case finman.BudgetWarning:
		return "⚠️ warning"
	case finman.BudgetOver:
		return "❌ over"
	default:
		return s.String()
	}
}

// BudgetMarkdown renders the monthly budget status to a markdown string.
func BudgetMarkdown(status []finman.BudgetStatus, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Budget Status")
	if len(status) == 0 {
		doc.PlainText("No budgets set.")
		return doc.String()
	}

	rows := make([][]string, 0, len(status))
	for _, st := range status {
		rows = append(rows, []string{
			st.Category,
			money(st.Limit, currency),
			money(st.Spent, currency),
			money(st.Remaining, currency),
			budgetStateLabel(st.State),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Category", "Budget", "Spent", "Remaining", "Status"},
		Rows:   rows,
	})

	return doc.String()
}
