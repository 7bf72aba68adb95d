package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Kind classifies a transaction as money in or money out.
type Kind string

const (
	KindIncome  Kind = "income"
	KindExpense Kind = "expense"
)

// Valid reports whether k is one of the two known kinds.
func (k Kind) Valid() bool {
	return k == KindIncome || k == KindExpense
}

// DateFormat is the storage form for transaction timestamps (second precision).
const DateFormat = "2006-01-02 15:04:05"

// Transaction is a single financial event in a ledger. Fields are fixed after
// creation; changing one means delete + re-add through the ledger.
type Transaction struct {
	ID          string
	Amount      decimal.Decimal // always positive; Kind carries the sign
	Category    string
	Kind        Kind
	Description string
	Date        time.Time // second precision
}

// Signed returns the amount with the kind's sign applied (expenses negative).
func (t Transaction) Signed() decimal.Decimal {
	if t.Kind == KindExpense {
		return t.Amount.Neg()
	}
	return t.Amount
}

// InMonth reports whether the transaction's date falls in the given calendar
// month, using the date's own year/month fields (no timezone conversion).
func (t Transaction) InMonth(year int, month time.Month) bool {
	return t.Date.Year() == year && t.Date.Month() == month
}
