package categories

// Seed category lists for a freshly initialized ledger.
var (
	seedIncome  = []string{"Salary", "Freelance", "Investment", "Gift", "Other"}
	seedExpense = []string{"Food", "Transport", "Entertainment", "Bills", "Shopping", "Healthcare", "Other"}
)

// Seed returns a Registry populated with the default category lists.
func Seed() *Registry {
	return NewRegistry(seedIncome, seedExpense)
}
