// Package pipeline runs the batch flow: parse export files, resolve
// business names, classify each transaction, and emit labeled rows.
package pipeline

import (
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mcaflow-dev/mcaflow/internal/bizname"
	"github.com/mcaflow-dev/mcaflow/internal/classify"
	"github.com/mcaflow-dev/mcaflow/internal/importer"
	"github.com/mcaflow-dev/mcaflow/internal/model"
)

// Row is one labeled transaction in the processed output.
type Row struct {
	BusinessName     string
	Filename         string
	TransactionID    string
	Date             string
	Name             string
	MerchantName     string
	Amount           decimal.Decimal
	OriginalCategory string
	ExternalCategory string
	Category         model.Category
	AccountID        string
	Authorised       bool // account_id present in the export's account list
	SortCode         string
	AccountNumber    string
	AccountName      string
	IsRevenue        bool
	IsExpense        bool
	IsDebt           bool
	IsDebtRepayment  bool
}

// Options configures a processing run.
type Options struct {
	// Names overrides the discovered business name per file name.
	Names map[string]string
	// Start and End bound an inclusive date filter; both zero means
	// no filtering.
	Start time.Time
	End   time.Time
	// Logger receives per-file progress and skip warnings.
	Logger *slog.Logger
}

// Processor orchestrates parsing, naming, and classification.
type Processor struct {
	parser importer.Parser
	opts   Options
	log    *slog.Logger
}

// New creates a Processor using the given parser.
func New(parser importer.Parser, opts Options) *Processor {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Processor{parser: parser, opts: opts, log: log}
}

// FileResult holds the outcome of processing one export file.
type FileResult struct {
	Filename       string
	BusinessName   string
	AccountOptions []string
	AccountGroups  map[string]bizname.AccountGroup
	Rows           []Row
}

// ProcessFiles processes each path in order. A file that fails to
// parse is logged and skipped; the batch continues.
func (p *Processor) ProcessFiles(paths []string) []Row {
	var rows []Row
	for _, path := range paths {
		result, err := p.ProcessFile(path)
		if err != nil {
			p.log.Error("skipping unreadable export",
				"file", filepath.Base(path), "error", err)
			continue
		}
		rows = append(rows, result.Rows...)
	}
	return rows
}

// ProcessFile parses one export file and labels its transactions.
func (p *Processor) ProcessFile(path string) (*FileResult, error) {
	filename := filepath.Base(path)

	export, err := importer.ParseFile(p.parser, path)
	if err != nil {
		return nil, err
	}

	name, options, groups := bizname.DiscoverAccounts(filename, export.Accounts)
	if override, ok := p.opts.Names[filename]; ok && override != "" {
		name = override
	}

	routing := make(map[string]model.Account, len(export.Accounts))
	for _, acct := range export.Accounts {
		routing[acct.AccountID] = acct
	}

	result := &FileResult{
		Filename:       filename,
		BusinessName:   name,
		AccountOptions: options,
		AccountGroups:  groups,
	}

	for _, tx := range export.Transactions {
		if p.filtered(filename, tx) {
			continue
		}
		result.Rows = append(result.Rows, p.label(name, filename, routing, tx))
	}

	p.log.Info("processed export",
		"file", filename,
		"business", name,
		"accounts", len(export.Accounts),
		"transactions", len(result.Rows))
	return result, nil
}

// filtered reports whether the date filter excludes a transaction.
// Transactions whose date cannot be parsed are skipped only while a
// filter is active, with a warning.
func (p *Processor) filtered(filename string, tx model.Transaction) bool {
	if p.opts.Start.IsZero() && p.opts.End.IsZero() {
		return false
	}
	if tx.Date.IsZero() {
		p.log.Warn("skipping transaction with invalid date",
			"file", filename, "date", tx.RawDate, "transaction", tx.ID)
		return true
	}
	if !p.opts.Start.IsZero() && tx.Date.Before(p.opts.Start) {
		return true
	}
	if !p.opts.End.IsZero() && tx.Date.After(p.opts.End) {
		return true
	}
	return false
}

func (p *Processor) label(business, filename string, routing map[string]model.Account, tx model.Transaction) Row {
	id := tx.ID
	if id == "" {
		id = uuid.NewString()
	}

	category := classify.Classify(tx)
	route, authorised := routing[tx.AccountID]

	return Row{
		BusinessName:     business,
		Filename:         filename,
		TransactionID:    id,
		Date:             tx.RawDate,
		Name:             tx.Name,
		MerchantName:     tx.MerchantName,
		Amount:           tx.Amount,
		OriginalCategory: tx.OriginalCategory,
		ExternalCategory: tx.ExternalCategory,
		Category:         category,
		AccountID:        tx.AccountID,
		Authorised:       authorised,
		SortCode:         route.SortCode,
		AccountNumber:    route.Number,
		AccountName:      route.Name,
		IsRevenue:        category.IsRevenue(),
		IsExpense:        category.IsExpense(),
		IsDebt:           category.IsDebt(),
		IsDebtRepayment:  category.IsDebtRepayment(),
	}
}
