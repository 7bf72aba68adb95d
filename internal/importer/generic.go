package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fintrack-dev/fintrack/internal/model"
)

// GenericParser parses the plain interchange format most banks can export to:
// a header row, then date,description,amount[,category] with ISO dates and
// signed amounts (negative = money out).
type GenericParser struct{}

const (
	genericDateFormat = "2006-01-02"
	genericColDate    = 0
	genericColDesc    = 1
	genericColAmount  = 2
	genericColCat     = 3
)

// Format returns the parser name.
func (p *GenericParser) Format() string { return "generic" }

// Parse reads a generic CSV and returns StatementLines.
func (p *GenericParser) Parse(r io.Reader) ([]model.StatementLine, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // the category column is optional

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading statement CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var lines []model.StatementLine
	for i, rec := range records[1:] {
		line, err := parseGenericRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		lines = append(lines, line)
	}
	return lines, nil
}

func parseGenericRow(rec []string) (model.StatementLine, error) {
	if len(rec) < 3 || len(rec) > 4 {
		return model.StatementLine{}, fmt.Errorf("expected 3 or 4 fields, got %d", len(rec))
	}

	date, err := time.ParseInLocation(genericDateFormat, rec[genericColDate], time.Local)
	if err != nil {
		return model.StatementLine{}, fmt.Errorf("parsing date %q: %w", rec[genericColDate], err)
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(rec[genericColAmount]))
	if err != nil {
		return model.StatementLine{}, fmt.Errorf("parsing amount %q: %w", rec[genericColAmount], err)
	}
	if amount.IsZero() {
		return model.StatementLine{}, fmt.Errorf("zero amount")
	}

	line := model.StatementLine{
		Date:        date,
		Description: rec[genericColDesc],
		Amount:      amount,
	}
	if len(rec) > genericColCat {
		line.Category = strings.TrimSpace(rec[genericColCat])
	}
	return line, nil
}
