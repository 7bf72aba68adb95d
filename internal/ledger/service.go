// Package ledger owns the transaction collection and its durable data file.
package ledger

import (
	"errors"
	"fmt"
	"io/fs"
	"slices"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/fintrack-dev/fintrack/internal/categories"
	"github.com/fintrack-dev/fintrack/internal/id"
	"github.com/fintrack-dev/fintrack/internal/model"
)

// Service is the aggregate root for one ledger: it owns the transaction
// sequence (insertion order) and the category registry, and is the only
// component that mutates either. Every mutation is persisted in full before
// it returns; if the write fails, the in-memory change is rolled back so
// memory and disk never diverge.
//
// Service is not safe for concurrent use. Access is serialized by the single
// interactive caller; wrap it in a mutex before embedding in a server.
type Service struct {
	path  string
	log   zerolog.Logger
	txns  []model.Transaction
	index map[string]int // id -> position in txns
	cats  *categories.Registry
}

// NewService creates a ledger backed by the data file at path. The ledger
// starts empty with seed categories; call Load to read existing state.
func NewService(path string, log zerolog.Logger) *Service {
	return &Service{
		path:  path,
		log:   log,
		index: make(map[string]int),
		cats:  categories.Seed(),
	}
}

// Load reads the data file into memory. A missing file is not an error: the
// ledger stays empty with seed categories and the file appears on first save.
func (s *Service) Load() error {
	data, err := ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.txns = nil
		s.cats = categories.Seed()
		s.reindex()
		s.log.Debug().Str("path", s.path).Msg("no data file, starting fresh")
		return nil
	}
	if err != nil {
		return &PersistenceError{Op: "read", Path: s.path, Err: err}
	}

	txns, cats, err := Unmarshal(data)
	if err != nil {
		return &PersistenceError{Op: "decode", Path: s.path, Err: err}
	}

	index := make(map[string]int, len(txns))
	for i, t := range txns {
		if _, dup := index[t.ID]; dup {
			return &PersistenceError{Op: "decode", Path: s.path, Err: fmt.Errorf("duplicate transaction id %q", t.ID)}
		}
		index[t.ID] = i
	}

	s.txns = txns
	s.index = index
	s.cats = cats
	s.log.Debug().Str("path", s.path).Int("transactions", len(txns)).Msg("ledger loaded")
	return nil
}

// Save writes the full ledger state to the data file.
func (s *Service) Save() error {
	data, err := Marshal(s.txns, s.cats)
	if err != nil {
		return err
	}
	return WriteFile(s.path, data)
}

// AddParams holds the caller-supplied fields of a new transaction.
type AddParams struct {
	Amount      decimal.Decimal
	Category    string
	Kind        model.Kind
	Description string
	Date        time.Time // zero value = current time
}

// Add validates the input, registers the category if it is new, appends a
// transaction and persists. The in-memory append (and a fresh category
// registration) is undone if the write fails.
func (s *Service) Add(p AddParams) (model.Transaction, error) {
	if err := ValidateAmount(p.Amount); err != nil {
		return model.Transaction{}, err
	}
	if err := ValidateKind(p.Kind); err != nil {
		return model.Transaction{}, err
	}
	if err := ValidateCategory(p.Category); err != nil {
		return model.Transaction{}, err
	}

	date := p.Date
	if date.IsZero() {
		date = time.Now()
	}
	date = date.Truncate(time.Second)

	txn := model.Transaction{
		ID:          id.New(),
		Amount:      p.Amount,
		Category:    p.Category,
		Kind:        p.Kind,
		Description: p.Description,
		Date:        date,
	}

	registered := s.cats.Ensure(p.Kind, p.Category)
	s.txns = append(s.txns, txn)
	s.index[txn.ID] = len(s.txns) - 1

	if err := s.Save(); err != nil {
		s.txns = s.txns[:len(s.txns)-1]
		delete(s.index, txn.ID)
		if registered {
			s.cats.Retract(p.Kind, p.Category)
		}
		return model.Transaction{}, err
	}

	s.log.Debug().
		Str("id", txn.ID).
		Str("kind", string(txn.Kind)).
		Str("category", txn.Category).
		Str("amount", txn.Amount.String()).
		Msg("transaction added")
	return txn, nil
}

// Delete removes the transaction with the given id and persists. Deleting an
// unknown id is a no-op reporting false, not an error. The removal is undone
// if the write fails.
func (s *Service) Delete(txnID string) (bool, error) {
	i, ok := s.index[txnID]
	if !ok {
		return false, nil
	}

	removed := s.txns[i]
	s.txns = slices.Delete(s.txns, i, i+1)
	s.reindex()

	if err := s.Save(); err != nil {
		s.txns = slices.Insert(s.txns, i, removed)
		s.reindex()
		return false, err
	}

	s.log.Debug().Str("id", txnID).Msg("transaction deleted")
	return true, nil
}

// Get returns the transaction with the given id.
func (s *Service) Get(txnID string) (model.Transaction, bool) {
	i, ok := s.index[txnID]
	if !ok {
		return model.Transaction{}, false
	}
	return s.txns[i], true
}

// Transactions returns all transactions in insertion order.
func (s *Service) Transactions() []model.Transaction {
	return slices.Clone(s.txns)
}

// Balance returns total income minus total expenses over all transactions.
func (s *Service) Balance() decimal.Decimal {
	balance := decimal.Zero
	for _, t := range s.txns {
		balance = balance.Add(t.Signed())
	}
	return balance
}

// ByKind returns all transactions of a kind, in insertion order.
func (s *Service) ByKind(kind model.Kind) []model.Transaction {
	var result []model.Transaction
	for _, t := range s.txns {
		if t.Kind == kind {
			result = append(result, t)
		}
	}
	return result
}

// ByCategory returns all transactions whose category matches name exactly, in
// insertion order. The match is kind-agnostic: an income and an expense
// category with the same literal name (the seed lists share "Other") count as
// one category here, even though the registry keeps per-kind lists.
func (s *Service) ByCategory(name string) []model.Transaction {
	var result []model.Transaction
	for _, t := range s.txns {
		if t.Category == name {
			result = append(result, t)
		}
	}
	return result
}

// Summary aggregates one calendar month of activity.
type Summary struct {
	Income   decimal.Decimal
	Expenses decimal.Decimal
	Balance  decimal.Decimal
	Count    int
}

// MonthlySummary aggregates the transactions whose date falls in the given
// calendar month. A month with no transactions yields all zeros.
func (s *Service) MonthlySummary(year int, month time.Month) Summary {
	sum := Summary{Income: decimal.Zero, Expenses: decimal.Zero}
	for _, t := range s.txns {
		if !t.InMonth(year, month) {
			continue
		}
		sum.Count++
		if t.Kind == model.KindIncome {
			sum.Income = sum.Income.Add(t.Amount)
		} else {
			sum.Expenses = sum.Expenses.Add(t.Amount)
		}
	}
	sum.Balance = sum.Income.Sub(sum.Expenses)
	return sum
}

// Categories returns the registered category names for a kind.
func (s *Service) Categories(kind model.Kind) []string {
	return s.cats.Categories(kind)
}

func (s *Service) reindex() {
	index := make(map[string]int, len(s.txns))
	for i, t := range s.txns {
		index[t.ID] = i
	}
	s.index = index
}
