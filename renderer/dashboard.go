package renderer

import (
	"bytes"
	"fmt"

	"finman"

	md "github.com/nao1215/markdown"
)

// healthLabel maps a health score to the advice shown under it.
func healthLabel(score int) string {
	switch {
	case score >= 80:
		return "Excellent! Keep up the good work."
	case score >= 60:
		return "Good. Room for improvement."
	case score >= 40:
		return "Fair. Consider reducing expenses."
	default:
		return "Needs attention. Review your budget."
	}
}

// DashboardMarkdown renders the monthly dashboard to a markdown string.
func DashboardMarkdown(d *finman.Dashboard) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Dashboard — %s %d", d.Date.Month(), d.Date.Year()))
	doc.PlainText(fmt.Sprintf("User: %s", d.User.Name))

	cur := d.User.Currency
	doc.Table(md.TableSet{
		Header: []string{"", "Amount"},
		Rows: [][]string{
			{"Total Income", money(d.TotalIncome, cur)},
			{"Total Expenses", money(d.TotalExpenses, cur)},
			{"Net Savings", money(d.NetSavings, cur)},
			{"Current Balance", money(d.CurrentBalance, cur)},
		},
	})

	if len(d.TopCategories) > 0 {
		doc.H2("Top Spending Categories")
		rows := make([][]string, 0, len(d.TopCategories))
		for i, c := range d.TopCategories {
			rows = append(rows, []string{
				fmt.Sprintf("%d", i+1), c.Category, money(c.Amount, cur), c.Share.String(),
			})
		}
		doc.Table(md.TableSet{
			Header: []string{"#", "Category", "Amount", "Share"},
			Rows:   rows,
		})
	}

	doc.H2("Financial Health")
	doc.PlainText(fmt.Sprintf("Score: %d/100 — %s", d.HealthScore, healthLabel(d.HealthScore)))

	return doc.String()
}
