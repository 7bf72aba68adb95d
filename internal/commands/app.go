package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/fintrack-dev/fintrack/internal/auditlog"
	"github.com/fintrack-dev/fintrack/internal/config"
	"github.com/fintrack-dev/fintrack/internal/gitops"
	"github.com/fintrack-dev/fintrack/internal/ledger"
)

func ledgerDir(cmd *cobra.Command) (string, error) {
	dir, err := cmd.Flags().GetString("dir")
	if err != nil {
		return "", err
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}
	return abs, nil
}

func newLogger(cmd *cobra.Command) zerolog.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(os.Stderr).With().Timestamp().Logger().Level(level)
}

// loadConfig reads <dir>/fintrack.yaml, falling back to defaults when the
// directory was never initialized.
func loadConfig(dir string) (*config.Config, error) {
	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	if errors.Is(err, fs.ErrNotExist) {
		return config.Default(), nil
	}
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// openLedger loads config and ledger state for the command's directory.
func openLedger(cmd *cobra.Command) (*ledger.Service, *config.Config, string, error) {
	dir, err := ledgerDir(cmd)
	if err != nil {
		return nil, nil, "", err
	}
	cfg, err := loadConfig(dir)
	if err != nil {
		return nil, nil, "", err
	}

	svc := ledger.NewService(filepath.Join(dir, cfg.DataFile), newLogger(cmd))
	if err := svc.Load(); err != nil {
		return nil, nil, "", err
	}
	return svc, cfg, dir, nil
}

// recordMutation auto-commits the data file and appends an audit log entry.
// Failures here are logged, not fatal: the ledger itself already persisted.
func recordMutation(cmd *cobra.Command, cfg *config.Config, dir string, action auditlog.Action, details, txnID string) {
	log := newLogger(cmd)

	hash := ""
	if cfg.Git.AutoCommit && gitops.IsRepo(dir) {
		h, err := gitops.CommitPaths(dir, fmt.Sprintf("%s: %s", action, details),
			cfg.Git.AuthorName, cfg.Git.AuthorEmail, cfg.DataFile)
		if err != nil {
			log.Warn().Err(err).Msg("auto-commit failed")
		} else {
			hash = h
		}
	}

	if cfg.AuditLog.Enabled {
		entry := auditlog.Entry{
			Timestamp:     time.Now(),
			Action:        action,
			Details:       details,
			TransactionID: txnID,
			CommitHash:    hash,
		}
		if err := auditlog.Append(dir, []auditlog.Entry{entry}); err != nil {
			log.Warn().Err(err).Msg("audit log append failed")
		}
	}
}

// formatAmount renders an amount with the configured currency symbol.
func formatAmount(cfg *config.Config, amount decimal.Decimal) string {
	return cfg.Currency + amount.StringFixed(2)
}
