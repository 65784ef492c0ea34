package finman

import (
	"finman/date"

	"github.com/shopspring/decimal"
)

// Transaction is a single income or expense record, owned by the user named
// in Username. Decimal and date fields persist as strings in the JSON files.
type Transaction struct {
	ID            string          `json:"transaction_id"`
	UserID        string          `json:"user_id"`
	Username      string          `json:"username"`
	Type          TransactionType `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	Category      string          `json:"category"`
	Date          date.Date       `json:"date"`
	Description   string          `json:"description"`
	PaymentMethod string          `json:"payment_method"`
}
