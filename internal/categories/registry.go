// Package categories tracks the known category names per transaction kind.
package categories

import (
	"slices"

	"github.com/fintrack-dev/fintrack/internal/model"
)

// Registry holds one ordered, append-only list of category names per kind.
// Names are unique within a kind (exact, case-sensitive match) and keep
// insertion order, which the CLI uses for numbering.
type Registry struct {
	byKind map[model.Kind][]string
}

// NewRegistry creates a Registry with the given starting lists.
func NewRegistry(income, expense []string) *Registry {
	return &Registry{
		byKind: map[model.Kind][]string{
			model.KindIncome:  slices.Clone(income),
			model.KindExpense: slices.Clone(expense),
		},
	}
}

// Categories returns the current list for a kind, oldest first.
func (r *Registry) Categories(kind model.Kind) []string {
	return slices.Clone(r.byKind[kind])
}

// Has reports whether name is registered for kind.
func (r *Registry) Has(kind model.Kind, name string) bool {
	return slices.Contains(r.byKind[kind], name)
}

// Ensure appends name to the kind's list if it is not already present, and
// reports whether it appended anything. Unknown categories are registered
// rather than rejected; the ledger relies on this when adding transactions.
func (r *Registry) Ensure(kind model.Kind, name string) bool {
	if r.Has(kind, name) {
		return false
	}
	r.byKind[kind] = append(r.byKind[kind], name)
	return true
}

// Retract removes name from the kind's list. The lists are append-only in
// normal operation; this exists so the ledger can undo a provisional Ensure
// when the durable write that follows it fails.
func (r *Registry) Retract(kind model.Kind, name string) {
	list := r.byKind[kind]
	if i := slices.Index(list, name); i >= 0 {
		r.byKind[kind] = slices.Delete(list, i, i+1)
	}
}
