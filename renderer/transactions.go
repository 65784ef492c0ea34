package renderer

import (
	"bytes"
	"fmt"

	"finman"

	md "github.com/nao1215/markdown"
)

// TransactionsMarkdown renders a transaction listing to a markdown string.
// The caller decides the order; usually newest first.
func TransactionsMarkdown(title string, txs []finman.Transaction, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(title)
	if len(txs) == 0 {
		doc.PlainText("No transactions found.")
		return doc.String()
	}
	doc.PlainText(fmt.Sprintf("%d transaction(s)", len(txs)))

	rows := make([][]string, 0, len(txs))
	for _, tx := range txs {
		rows = append(rows, []string{
			tx.ID, tx.Date.String(), string(tx.Type), tx.Category,
			money(tx.Amount, currency), tx.Description, tx.PaymentMethod,
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"ID", "Date", "Type", "Category", "Amount", "Description", "Method"},
		Rows:   rows,
	})

	return doc.String()
}
