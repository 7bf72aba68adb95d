// Package report derives read-only aggregates from a transaction sequence.
// Functions here own no state and never mutate their input; the chart and CLI
// layers render their output.
package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/fintrack-dev/fintrack/internal/model"
)

// Spending summarizes activity inside a trailing time window.
type Spending struct {
	Start             time.Time
	End               time.Time
	TotalIncome       decimal.Decimal
	TotalExpenses     decimal.Decimal
	NetBalance        decimal.Decimal
	IncomeByCategory  map[string]decimal.Decimal
	ExpenseByCategory map[string]decimal.Decimal
}

// SpendingReport aggregates the transactions of the last windowDays days,
// using the current time as the end bound. The window is a closed interval;
// categories with no matching transactions do not appear in the maps.
func SpendingReport(txns []model.Transaction, windowDays int) Spending {
	return spendingReportAt(txns, windowDays, time.Now())
}

func spendingReportAt(txns []model.Transaction, windowDays int, now time.Time) Spending {
	rep := Spending{
		Start:             now.AddDate(0, 0, -windowDays),
		End:               now,
		TotalIncome:       decimal.Zero,
		TotalExpenses:     decimal.Zero,
		NetBalance:        decimal.Zero,
		IncomeByCategory:  make(map[string]decimal.Decimal),
		ExpenseByCategory: make(map[string]decimal.Decimal),
	}

	for _, t := range txns {
		if t.Date.Before(rep.Start) || t.Date.After(rep.End) {
			continue
		}
		switch t.Kind {
		case model.KindIncome:
			rep.TotalIncome = rep.TotalIncome.Add(t.Amount)
			rep.IncomeByCategory[t.Category] = rep.IncomeByCategory[t.Category].Add(t.Amount)
		case model.KindExpense:
			rep.TotalExpenses = rep.TotalExpenses.Add(t.Amount)
			rep.ExpenseByCategory[t.Category] = rep.ExpenseByCategory[t.Category].Add(t.Amount)
		}
	}

	rep.NetBalance = rep.TotalIncome.Sub(rep.TotalExpenses)
	return rep
}

// CategoryTotals folds all transactions into a single map keyed by bare
// category name, income counting positive and expenses negative. Names are
// kind-agnostic here, so the shared seed category "Other" nets income against
// expenses; the pie chart consumes this map.
func CategoryTotals(txns []model.Transaction) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal)
	for _, t := range txns {
		totals[t.Category] = totals[t.Category].Add(t.Signed())
	}
	return totals
}

// CategoryTotalsByKind totals one kind's transactions per category, all
// positive.
func CategoryTotalsByKind(txns []model.Transaction, kind model.Kind) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal)
	for _, t := range txns {
		if t.Kind == kind {
			totals[t.Category] = totals[t.Category].Add(t.Amount)
		}
	}
	return totals
}

// MonthBucket is one calendar month of a chart series.
type MonthBucket struct {
	Month    string // "YYYY-MM"
	Income   decimal.Decimal
	Expenses decimal.Decimal
}

// MonthlySeries produces monthCount consecutive calendar-month buckets ending
// at the current month, oldest first. Buckets are chosen by true calendar
// arithmetic, so month labels are never skipped or duplicated around month
// boundaries.
func MonthlySeries(txns []model.Transaction, monthCount int) []MonthBucket {
	return monthlySeriesAt(txns, monthCount, time.Now())
}

func monthlySeriesAt(txns []model.Transaction, monthCount int, now time.Time) []MonthBucket {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	buckets := make([]MonthBucket, 0, monthCount)
	for i := monthCount - 1; i >= 0; i-- {
		m := first.AddDate(0, -i, 0)
		b := MonthBucket{
			Month:    m.Format("2006-01"),
			Income:   decimal.Zero,
			Expenses: decimal.Zero,
		}
		for _, t := range txns {
			if !t.InMonth(m.Year(), m.Month()) {
				continue
			}
			if t.Kind == model.KindIncome {
				b.Income = b.Income.Add(t.Amount)
			} else {
				b.Expenses = b.Expenses.Add(t.Amount)
			}
		}
		buckets = append(buckets, b)
	}
	return buckets
}
