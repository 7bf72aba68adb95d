package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintrack-dev/fintrack/internal/ledger"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	return decimal.RequireFromString(s)
}

// execute runs the CLI with a fresh command tree and returns its output.
func execute(t *testing.T, args ...string) string {
	t.Helper()
	out, err := executeErr(args...)
	require.NoError(t, err, "fintrack %v", args)
	return out
}

func executeErr(args ...string) (string, error) {
	root := NewRootCommand()
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func openData(t *testing.T, dir string) *ledger.Service {
	t.Helper()
	svc := ledger.NewService(filepath.Join(dir, "data.json"), zerolog.Nop())
	require.NoError(t, svc.Load())
	return svc
}

func TestAddBalanceSummaryFlow(t *testing.T) {
	dir := t.TempDir()

	out := execute(t, "--dir", dir, "add", "income", "1000.00", "--category", "Salary", "--date", "2025-08-01")
	assert.Contains(t, out, "Added income $1000.00 in Salary")

	execute(t, "--dir", dir, "add", "expense", "50.00", "--category", "Food", "--date", "2025-08-02")
	execute(t, "--dir", dir, "add", "expense", "20.00", "--category", "Food", "--date", "2025-08-03")

	out = execute(t, "--dir", dir, "balance")
	assert.Contains(t, out, "Balance: $930.00")

	out = execute(t, "--dir", dir, "summary", "--year", "2025", "--month", "8")
	assert.Contains(t, out, "Summary for 2025-08")
	assert.Contains(t, out, "$1000.00")
	assert.Contains(t, out, "$70.00")
	assert.Contains(t, out, "$930.00")
	assert.Contains(t, out, "Transactions: 3")

	// An empty month reports zeros.
	out = execute(t, "--dir", dir, "summary", "--year", "2024", "--month", "1")
	assert.Contains(t, out, "Transactions: 0")

	// Every mutation went to the audit log.
	_, err := os.Stat(filepath.Join(dir, "logs", "audit-log.csv"))
	require.NoError(t, err)
}

func TestAddRejectsBadInput(t *testing.T) {
	dir := t.TempDir()

	_, err := executeErr("--dir", dir, "add", "expense", "-5", "--category", "Food")
	require.Error(t, err)

	_, err = executeErr("--dir", dir, "add", "transfer", "5", "--category", "Food")
	require.Error(t, err)

	_, err = executeErr("--dir", dir, "add", "expense", "5", "--category", "Food", "--date", "08/15/2025")
	require.Error(t, err)

	assert.Empty(t, openData(t, dir).Transactions(), "nothing persisted")
}

func TestListFilters(t *testing.T) {
	dir := t.TempDir()
	execute(t, "--dir", dir, "add", "income", "1000", "--category", "Salary", "--date", "2025-08-01")
	execute(t, "--dir", dir, "add", "expense", "50", "--category", "Food", "--date", "2025-08-02")

	out := execute(t, "--dir", dir, "list")
	assert.Contains(t, out, "Salary")
	assert.Contains(t, out, "Food")

	out = execute(t, "--dir", dir, "list", "--kind", "income")
	assert.Contains(t, out, "Salary")
	assert.NotContains(t, out, "Food")

	out = execute(t, "--dir", dir, "list", "--category", "Food")
	assert.NotContains(t, out, "Salary")
	assert.Contains(t, out, "Food")

	out = execute(t, "--dir", t.TempDir(), "list")
	assert.Contains(t, out, "No transactions found.")
}

func TestDeleteCommand(t *testing.T) {
	dir := t.TempDir()
	execute(t, "--dir", dir, "add", "expense", "50", "--category", "Food", "--date", "2025-08-02")

	txns := openData(t, dir).Transactions()
	require.Len(t, txns, 1)

	out := execute(t, "--dir", dir, "delete", txns[0].ID)
	assert.Contains(t, out, "Deleted transaction "+txns[0].ID)
	assert.Empty(t, openData(t, dir).Transactions())

	// Deleting an unknown ID is a no-op, not a failure.
	out = execute(t, "--dir", dir, "delete", "no-such-id")
	assert.Contains(t, out, "No transaction with ID no-such-id")
}

func TestCategoriesCommand(t *testing.T) {
	dir := t.TempDir()
	execute(t, "--dir", dir, "add", "expense", "900", "--category", "Rent", "--date", "2025-08-01")

	out := execute(t, "--dir", dir, "categories")
	assert.Contains(t, out, "Income categories:")
	assert.Contains(t, out, "1. Salary")
	assert.Contains(t, out, "Expense categories:")
	assert.Contains(t, out, "1. Food")
	assert.Contains(t, out, "8. Rent", "new category numbered after the seed list")
}

func TestReportCommand(t *testing.T) {
	dir := t.TempDir()
	// No --date: these land inside the trailing window.
	execute(t, "--dir", dir, "add", "income", "1000", "--category", "Salary")
	execute(t, "--dir", dir, "add", "expense", "50", "--category", "Food")

	out := execute(t, "--dir", dir, "report")
	assert.Contains(t, out, "(30 days)")
	assert.Contains(t, out, "Total income:   $1000.00")
	assert.Contains(t, out, "Total expenses: $50.00")
	assert.Contains(t, out, "Net balance:    $950.00")
	assert.Contains(t, out, "Expenses by category:")
	assert.Contains(t, out, "Food")

	// Old transactions fall outside the window entirely.
	out = execute(t, "--dir", dir, "report", "--days", "1")
	assert.Contains(t, out, "(1 days)")
}

func TestReportEmptyWindowOmitsCategoryBlocks(t *testing.T) {
	dir := t.TempDir()
	execute(t, "--dir", dir, "add", "expense", "50", "--category", "Food", "--date", "2020-01-01")

	out := execute(t, "--dir", dir, "report")
	assert.Contains(t, out, "Total income:   $0.00")
	assert.Contains(t, out, "Total expenses: $0.00")
	assert.NotContains(t, out, "Expenses by category:")
	assert.NotContains(t, out, "Income by category:")
}

func TestChartCommands(t *testing.T) {
	dir := t.TempDir()
	execute(t, "--dir", dir, "add", "income", "1000", "--category", "Salary")
	execute(t, "--dir", dir, "add", "expense", "250", "--category", "Food")

	out := execute(t, "--dir", dir, "chart", "category")
	assert.Contains(t, out, "Net by category:")
	assert.Contains(t, out, "Salary")
	assert.Contains(t, out, "#")

	out = execute(t, "--dir", dir, "chart", "category", "--kind", "expense")
	assert.Contains(t, out, "Expense by category:")
	assert.Contains(t, out, "Food")
	assert.NotContains(t, out, "Salary")

	out = execute(t, "--dir", dir, "chart", "monthly", "--months", "2")
	assert.Contains(t, out, "Income vs expenses:")
	assert.Contains(t, out, "income")
	assert.Contains(t, out, "expenses")
}

func TestChartCategoryEmpty(t *testing.T) {
	out := execute(t, "--dir", t.TempDir(), "chart", "category")
	assert.Contains(t, out, "No data to chart.")
}

func TestImportCommand(t *testing.T) {
	dir := t.TempDir()
	csv := "date,description,amount,category\n" +
		"2025-08-01,ACME PAYROLL,2500.00,Salary\n" +
		"2025-08-03,GROCERY STORE,-82.10,Food\n" +
		"2025-08-05,COFFEE,-4.50,\n"
	path := filepath.Join(dir, "aug.csv")
	require.NoError(t, os.WriteFile(path, []byte(csv), 0o644))

	out := execute(t, "--dir", dir, "import", path)
	assert.Contains(t, out, "Imported 3 transactions")

	svc := openData(t, dir)
	require.Len(t, svc.Transactions(), 3)
	assert.Contains(t, out, "aug.csv")
	assert.True(t, svc.Balance().Equal(dec(t, "2413.40")), "got %s", svc.Balance())

	// The uncategorized line fell back to "Other".
	require.Len(t, svc.ByCategory("Other"), 1)
}

func TestImportScansImportDir(t *testing.T) {
	dir := t.TempDir()
	importDir := filepath.Join(dir, "import")
	require.NoError(t, os.MkdirAll(importDir, 0o755))
	csv := "date,description,amount\n2025-08-01,LUNCH,-12.00\n"
	require.NoError(t, os.WriteFile(filepath.Join(importDir, "aug.csv"), []byte(csv), 0o644))

	out := execute(t, "--dir", dir, "import")
	assert.Contains(t, out, "Imported 1 transactions from aug.csv")

	// Processed files are moved out of the way, so a rerun imports nothing.
	out = execute(t, "--dir", dir, "import")
	assert.Contains(t, out, "No statement files waiting")
	require.Len(t, openData(t, dir).Transactions(), 1)
}

func TestImportUnknownFormat(t *testing.T) {
	_, err := executeErr("--dir", t.TempDir(), "import", "--format", "nope")
	require.Error(t, err)
}
