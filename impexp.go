package finman

import (
	"encoding/csv"
	"fmt"
	"io"
)

// this file contains the export side of the flat tabular format. It is a
// pure read-only projection of the ledger; there is no import path.

// csvHeader is the fixed column order of the export format.
var csvHeader = []string{
	"transaction_id", "date", "type", "category",
	"amount", "description", "payment_method",
}

// ExportCSV writes username's transactions as CSV to w, one row per
// transaction after a header row, in the same order as Transactions.
func (s *Store) ExportCSV(w io.Writer, username string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, tx := range s.Transactions(username) {
		row := []string{
			tx.ID, tx.Date.String(), string(tx.Type), tx.Category,
			tx.Amount.String(), tx.Description, tx.PaymentMethod,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing transaction %s: %w", tx.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
