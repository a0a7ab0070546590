// Package history keeps an append-only CSV log of processing runs.
package history

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"
)

// Entry is one row in the processing history log: the income and
// processing amounts calculated for one business over one period.
type Entry struct {
	Timestamp        time.Time
	BusinessName     string
	PeriodStart      string
	PeriodEnd        string
	IncomeAmount     decimal.Decimal
	ProcessingAmount decimal.Decimal
}

// Header is the CSV header for the history file.
const Header = "timestamp,business_name,period_start,period_end,income_amount,processing_amount"

const (
	numFields      = 6
	colTimestamp   = 0
	colBusiness    = 1
	colPeriodStart = 2
	colPeriodEnd   = 3
	colIncome      = 4
	colProcessing  = 5
)

// MarshalEntry converts an Entry to a CSV row.
func MarshalEntry(e Entry) []string {
	row := make([]string, numFields)
	row[colTimestamp] = e.Timestamp.Format(time.RFC3339)
	row[colBusiness] = e.BusinessName
	row[colPeriodStart] = e.PeriodStart
	row[colPeriodEnd] = e.PeriodEnd
	row[colIncome] = e.IncomeAmount.StringFixed(2)
	row[colProcessing] = e.ProcessingAmount.StringFixed(2)
	return row
}

// UnmarshalEntry converts a CSV row to an Entry.
func UnmarshalEntry(record []string) (Entry, error) {
	if len(record) != numFields {
		return Entry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	ts, err := time.Parse(time.RFC3339, record[colTimestamp])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing timestamp %q: %w", record[colTimestamp], err)
	}

	income, err := decimal.NewFromString(record[colIncome])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing income_amount %q: %w", record[colIncome], err)
	}

	processing, err := decimal.NewFromString(record[colProcessing])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing processing_amount %q: %w", record[colProcessing], err)
	}

	return Entry{
		Timestamp:        ts,
		BusinessName:     record[colBusiness],
		PeriodStart:      record[colPeriodStart],
		PeriodEnd:        record[colPeriodEnd],
		IncomeAmount:     income,
		ProcessingAmount: processing,
	}, nil
}

// Append writes entries to the history file, creating the file and
// header if needed.
func Append(path string, entries []Entry) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating history dir: %w", err)
	}

	needsHeader := false
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		needsHeader = true
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening history: %w", err)
	}
	defer f.Close()

	if needsHeader {
		if _, err := fmt.Fprintln(f, Header); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	cw := csv.NewWriter(f)
	defer cw.Flush()
	for i, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing row %d: %w", i, err)
		}
	}
	return cw.Error()
}

// Read loads all entries from the history file. A missing file reads
// as empty.
func Read(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening history: %w", err)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = numFields
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading history CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	var entries []Entry
	for i, rec := range records[1:] {
		e, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
