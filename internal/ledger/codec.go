package ledger

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fintrack-dev/fintrack/internal/categories"
	"github.com/fintrack-dev/fintrack/internal/model"
)

func init() {
	// Amounts are stored as plain JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// The data file is a single JSON document with two top-level fields. The field
// names, the lowercase type values and the date format are a compatibility
// contract with existing stored files and must not change.
type document struct {
	Transactions []record       `json:"transactions"`
	Categories   *categoryLists `json:"categories"`
}

type record struct {
	ID          string          `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Type        string          `json:"type"`
	Description string          `json:"description"`
	Date        string          `json:"date"`
}

type categoryLists struct {
	Income  []string `json:"income"`
	Expense []string `json:"expense"`
}

// PersistenceError wraps a failure to read, write or decode the data file.
// A missing file on read is not a PersistenceError; Load treats it as a fresh
// ledger.
type PersistenceError struct {
	Op   string // "read", "write", "decode"
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// Marshal encodes transactions and categories into the durable document.
func Marshal(txns []model.Transaction, cats *categories.Registry) ([]byte, error) {
	doc := document{
		Transactions: make([]record, 0, len(txns)),
		Categories: &categoryLists{
			Income:  cats.Categories(model.KindIncome),
			Expense: cats.Categories(model.KindExpense),
		},
	}
	for _, t := range txns {
		doc.Transactions = append(doc.Transactions, record{
			ID:          t.ID,
			Amount:      t.Amount,
			Category:    t.Category,
			Type:        string(t.Kind),
			Description: t.Description,
			Date:        t.Date.Format(model.DateFormat),
		})
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding ledger: %w", err)
	}
	return append(data, '\n'), nil
}

// Unmarshal decodes a durable document back into transactions and categories.
// A missing categories field falls back to the seed lists; a missing
// transactions field yields an empty ledger. Anything else malformed (bad
// JSON, unknown type, unparseable date, non-positive amount) is an error
// rather than a silent coercion, so corruption is not masked as empty state.
func Unmarshal(data []byte) ([]model.Transaction, *categories.Registry, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, nil, fmt.Errorf("decoding ledger: %w", err)
	}

	var txns []model.Transaction
	for i, rec := range doc.Transactions {
		txn, err := decodeRecord(rec)
		if err != nil {
			return nil, nil, fmt.Errorf("transaction %d: %w", i, err)
		}
		txns = append(txns, txn)
	}

	cats := categories.Seed()
	if doc.Categories != nil {
		cats = categories.NewRegistry(doc.Categories.Income, doc.Categories.Expense)
	}
	return txns, cats, nil
}

func decodeRecord(rec record) (model.Transaction, error) {
	kind := model.Kind(rec.Type)
	if !kind.Valid() {
		return model.Transaction{}, fmt.Errorf("unknown type %q", rec.Type)
	}
	if rec.ID == "" {
		return model.Transaction{}, fmt.Errorf("missing id")
	}
	if rec.Amount.Sign() <= 0 {
		return model.Transaction{}, fmt.Errorf("non-positive amount %s", rec.Amount)
	}

	date, err := time.ParseInLocation(model.DateFormat, rec.Date, time.Local)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing date %q: %w", rec.Date, err)
	}

	return model.Transaction{
		ID:          rec.ID,
		Amount:      rec.Amount,
		Category:    rec.Category,
		Kind:        kind,
		Description: rec.Description,
		Date:        date,
	}, nil
}

// WriteFile replaces path with data via a temp file + rename, so a crashed
// write never leaves a half-written data file behind.
func WriteFile(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return &PersistenceError{Op: "write", Path: path, Err: err}
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return &PersistenceError{Op: "write", Path: path, Err: err}
	}
	return nil
}

// ReadFile reads the raw data file. The caller distinguishes a missing file
// (fs.ErrNotExist, fresh ledger) from real read failures.
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return data, nil
}
