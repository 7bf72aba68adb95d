package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatementLine is a parsed row from an imported bank statement CSV.
type StatementLine struct {
	Date        time.Time
	Description string
	Amount      decimal.Decimal // negative = expense, positive = income
	Category    string          // empty means uncategorized
}

// Kind derives the transaction kind from the amount's sign.
func (l StatementLine) Kind() Kind {
	if l.Amount.Sign() < 0 {
		return KindExpense
	}
	return KindIncome
}
