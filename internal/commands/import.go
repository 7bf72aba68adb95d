package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fintrack-dev/fintrack/internal/auditlog"
	"github.com/fintrack-dev/fintrack/internal/importer"
	"github.com/fintrack-dev/fintrack/internal/ledger"
)

// fallbackCategory is used for statement lines with no category column.
const fallbackCategory = "Other"

func newImportCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Import bank statement CSVs into the ledger",
		Long: "Import a statement CSV into the ledger. With no argument, all CSV files\n" +
			"waiting in <dir>/import/ are imported and moved to import/processed/.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cfg, dir, err := openLedger(cmd)
			if err != nil {
				return err
			}

			reg := importer.DefaultRegistry()
			parser := reg.Get(format)
			if parser == nil {
				return fmt.Errorf("unknown format %q (available: %s)",
					format, strings.Join(reg.Formats(), ", "))
			}

			if len(args) == 1 {
				n, err := importFile(svc, parser, args[0])
				if err != nil {
					return err
				}
				details := fmt.Sprintf("%s (%d transactions)", filepath.Base(args[0]), n)
				recordMutation(cmd, cfg, dir, auditlog.ActionImport, details, "")
				fmt.Fprintf(cmd.OutOrStdout(), "Imported %d transactions from %s\n", n, args[0])
				return nil
			}

			files, err := importer.Scan(dir)
			if err != nil {
				return err
			}
			if len(files) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No statement files waiting in import/.")
				return nil
			}

			for _, f := range files {
				n, err := importFile(svc, parser, f.Path)
				if err != nil {
					return fmt.Errorf("%s: %w", f.Name, err)
				}
				if err := importer.MarkProcessed(dir, f.Name); err != nil {
					return err
				}
				details := fmt.Sprintf("%s (%d transactions)", f.Name, n)
				recordMutation(cmd, cfg, dir, auditlog.ActionImport, details, "")
				fmt.Fprintf(cmd.OutOrStdout(), "Imported %d transactions from %s\n", n, f.Name)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "generic", "statement format")

	return cmd
}

func importFile(svc *ledger.Service, parser importer.Parser, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("opening statement: %w", err)
	}
	defer f.Close()

	return importLines(svc, parser, f)
}

func importLines(svc *ledger.Service, parser importer.Parser, r io.Reader) (int, error) {
	lines, err := parser.Parse(r)
	if err != nil {
		return 0, err
	}

	for i, line := range lines {
		category := line.Category
		if category == "" {
			category = fallbackCategory
		}
		_, err := svc.Add(ledger.AddParams{
			Amount:      line.Amount.Abs(),
			Category:    category,
			Kind:        line.Kind(),
			Description: line.Description,
			Date:        line.Date,
		})
		if err != nil {
			return i, fmt.Errorf("line %d: %w", i+1, err)
		}
	}
	return len(lines), nil
}
