package report

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintrack-dev/fintrack/internal/model"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func txn(amount string, category string, kind model.Kind, date time.Time) model.Transaction {
	return model.Transaction{
		ID:       category + amount + date.String(),
		Amount:   dec(amount),
		Category: category,
		Kind:     kind,
		Date:     date,
	}
}

func TestSpendingReport(t *testing.T) {
	now := time.Date(2025, 8, 31, 12, 0, 0, 0, time.Local)
	txns := []model.Transaction{
		txn("1000", "Salary", model.KindIncome, now.AddDate(0, 0, -5)),
		txn("50", "Food", model.KindExpense, now.AddDate(0, 0, -10)),
		txn("20", "Food", model.KindExpense, now.AddDate(0, 0, -1)),
		txn("30", "Transport", model.KindExpense, now.AddDate(0, 0, -29)),
		// Outside the window in both directions.
		txn("999", "Food", model.KindExpense, now.AddDate(0, 0, -31)),
		txn("500", "Salary", model.KindIncome, now.AddDate(0, 0, 1)),
	}

	rep := spendingReportAt(txns, 30, now)

	assert.True(t, rep.TotalIncome.Equal(dec("1000")), "got %s", rep.TotalIncome)
	assert.True(t, rep.TotalExpenses.Equal(dec("100")), "got %s", rep.TotalExpenses)
	assert.True(t, rep.NetBalance.Equal(dec("900")))

	require.Len(t, rep.ExpenseByCategory, 2)
	assert.True(t, rep.ExpenseByCategory["Food"].Equal(dec("70")))
	assert.True(t, rep.ExpenseByCategory["Transport"].Equal(dec("30")))
	require.Len(t, rep.IncomeByCategory, 1)
	assert.True(t, rep.IncomeByCategory["Salary"].Equal(dec("1000")))
}

func TestSpendingReportWindowIsClosed(t *testing.T) {
	now := time.Date(2025, 8, 31, 12, 0, 0, 0, time.Local)
	txns := []model.Transaction{
		txn("10", "Food", model.KindExpense, now.AddDate(0, 0, -30)), // exactly the start bound
		txn("20", "Food", model.KindExpense, now),                    // exactly the end bound
	}

	rep := spendingReportAt(txns, 30, now)
	assert.True(t, rep.TotalExpenses.Equal(dec("30")), "both bounds inclusive, got %s", rep.TotalExpenses)
}

func TestSpendingReportAllTransactionsTooOld(t *testing.T) {
	now := time.Date(2025, 8, 31, 12, 0, 0, 0, time.Local)
	txns := []model.Transaction{
		txn("100", "Food", model.KindExpense, now.AddDate(0, -6, 0)),
		txn("200", "Salary", model.KindIncome, now.AddDate(-1, 0, 0)),
	}

	rep := spendingReportAt(txns, 30, now)
	assert.True(t, rep.TotalIncome.IsZero())
	assert.True(t, rep.TotalExpenses.IsZero())
	assert.True(t, rep.NetBalance.IsZero())
	assert.Empty(t, rep.IncomeByCategory, "zero-activity categories don't appear as keys")
	assert.Empty(t, rep.ExpenseByCategory)
}

func TestCategoryTotalsSigned(t *testing.T) {
	now := time.Date(2025, 8, 15, 0, 0, 0, 0, time.Local)
	txns := []model.Transaction{
		txn("1000.00", "Salary", model.KindIncome, now),
		txn("50.00", "Food", model.KindExpense, now),
		txn("20.00", "Food", model.KindExpense, now),
	}

	totals := CategoryTotals(txns)
	require.Len(t, totals, 2)
	assert.True(t, totals["Salary"].Equal(dec("1000.00")))
	assert.True(t, totals["Food"].Equal(dec("-70.00")), "expenses negative, got %s", totals["Food"])
}

func TestCategoryTotalsMergesKindsByName(t *testing.T) {
	now := time.Date(2025, 8, 15, 0, 0, 0, 0, time.Local)
	txns := []model.Transaction{
		txn("100", "Other", model.KindIncome, now),
		txn("40", "Other", model.KindExpense, now),
	}

	totals := CategoryTotals(txns)
	require.Len(t, totals, 1, "same literal name is one key regardless of kind")
	assert.True(t, totals["Other"].Equal(dec("60")))
}

func TestCategoryTotalsByKind(t *testing.T) {
	now := time.Date(2025, 8, 15, 0, 0, 0, 0, time.Local)
	txns := []model.Transaction{
		txn("100", "Other", model.KindIncome, now),
		txn("40", "Other", model.KindExpense, now),
		txn("60", "Food", model.KindExpense, now),
	}

	totals := CategoryTotalsByKind(txns, model.KindExpense)
	require.Len(t, totals, 2)
	assert.True(t, totals["Other"].Equal(dec("40")))
	assert.True(t, totals["Food"].Equal(dec("60")))
}

func TestMonthlySeriesLabels(t *testing.T) {
	// Spanning a year boundary must not skip or duplicate labels.
	now := time.Date(2025, 1, 15, 10, 0, 0, 0, time.Local)

	series := monthlySeriesAt(nil, 6, now)
	require.Len(t, series, 6)

	var labels []string
	for _, b := range series {
		labels = append(labels, b.Month)
	}
	assert.Equal(t, []string{"2024-08", "2024-09", "2024-10", "2024-11", "2024-12", "2025-01"}, labels)
}

func TestMonthlySeriesLabelsAtMonthEnd(t *testing.T) {
	// March 30th minus fixed 30-day steps would land in February twice; true
	// calendar arithmetic keeps one bucket per month.
	now := time.Date(2025, 3, 30, 23, 0, 0, 0, time.Local)

	series := monthlySeriesAt(nil, 3, now)
	require.Len(t, series, 3)
	assert.Equal(t, "2025-01", series[0].Month)
	assert.Equal(t, "2025-02", series[1].Month)
	assert.Equal(t, "2025-03", series[2].Month)
}

func TestMonthlySeriesBucketsAmounts(t *testing.T) {
	now := time.Date(2025, 8, 31, 12, 0, 0, 0, time.Local)
	txns := []model.Transaction{
		txn("1000", "Salary", model.KindIncome, time.Date(2025, 8, 1, 9, 0, 0, 0, time.Local)),
		txn("50", "Food", model.KindExpense, time.Date(2025, 8, 20, 9, 0, 0, 0, time.Local)),
		txn("200", "Food", model.KindExpense, time.Date(2025, 7, 4, 9, 0, 0, 0, time.Local)),
		txn("7", "Food", model.KindExpense, time.Date(2024, 8, 4, 9, 0, 0, 0, time.Local)), // same month last year
	}

	series := monthlySeriesAt(txns, 2, now)
	require.Len(t, series, 2)

	july, august := series[0], series[1]
	assert.Equal(t, "2025-07", july.Month)
	assert.True(t, july.Income.IsZero())
	assert.True(t, july.Expenses.Equal(dec("200")))
	assert.Equal(t, "2025-08", august.Month)
	assert.True(t, august.Income.Equal(dec("1000")))
	assert.True(t, august.Expenses.Equal(dec("50")), "year must match, not just the month")
}
