package ledger

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fintrack-dev/fintrack/internal/model"
)

// ValidationError describes a rejected transaction input. No mutation happens
// when one is returned.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ValidateAmount checks that amount is strictly positive.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.Sign() <= 0 {
		return ValidationError{Field: "amount", Reason: fmt.Sprintf("must be positive, got %s", amount)}
	}
	return nil
}

// ValidateKind checks that kind is income or expense.
func ValidateKind(kind model.Kind) error {
	if !kind.Valid() {
		return ValidationError{Field: "kind", Reason: fmt.Sprintf("must be %q or %q, got %q", model.KindIncome, model.KindExpense, kind)}
	}
	return nil
}

// ValidateCategory checks that the category name is non-empty.
func ValidateCategory(name string) error {
	if strings.TrimSpace(name) == "" {
		return ValidationError{Field: "category", Reason: "must not be empty"}
	}
	return nil
}

// ParseAmount parses user input into a positive amount. The CLI uses it before
// calling Add; Add revalidates regardless.
func ParseAmount(s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, ValidationError{Field: "amount", Reason: fmt.Sprintf("%q is not a number", s)}
	}
	if err := ValidateAmount(amount); err != nil {
		return decimal.Zero, err
	}
	return amount, nil
}

// dayFormat is the accepted input form for explicit transaction dates.
const dayFormat = "2006-01-02"

// ParseDay parses a YYYY-MM-DD string into the local midnight of that day.
func ParseDay(s string) (time.Time, error) {
	day, err := time.ParseInLocation(dayFormat, strings.TrimSpace(s), time.Local)
	if err != nil {
		return time.Time{}, ValidationError{Field: "date", Reason: fmt.Sprintf("%q is not a YYYY-MM-DD date", s)}
	}
	return day, nil
}
