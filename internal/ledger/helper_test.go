package ledger

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 12, 30, 0, 0, time.Local)
}

func nopLogger() zerolog.Logger {
	return zerolog.Nop()
}
