package stockpile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// The ledgers are persisted as semicolon-delimited CSV files with a header
// row. The store knows three operations only: read a whole ledger, append
// one record, and replace the whole content with one record (used by the
// current-date pseudo-ledger). There are no in-place edits.

const csvDelimiter = ';'

// readRecords reads a ledger file into rows keyed by column name.
// A missing file is an empty ledger, not an error.
func readRecords(path string) ([]map[string]string, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open ledger file %q: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = csvDelimiter
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("could not read ledger file %q: %w", path, err)
	}
	if len(rows) < 2 {
		// header only, or empty file
		return nil, nil
	}

	header := rows[0]
	records := make([]map[string]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(row) {
				rec[col] = row[i]
			}
		}
		records = append(records, rec)
	}
	return records, nil
}

// appendRecord appends one row to a ledger file, creating the file (and its
// directory) with a header row when it does not exist yet.
func appendRecord(path string, header, row []string) error {
	if err := ensureLedgerFile(path, header); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("could not open ledger file %q: %w", path, err)
	}
	defer f.Close()
	return writeRows(f, path, row)
}

// replaceRecord truncates a ledger file down to its header plus one row.
func replaceRecord(path string, header, row []string) error {
	return writeLedgerFile(path, header, [][]string{row})
}

// writeLedgerFile rewrites a whole ledger file: header first, then rows.
func writeLedgerFile(path string, header []string, rows [][]string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("could not create directory for ledger %q: %w", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create ledger file %q: %w", path, err)
	}
	defer f.Close()
	return writeRows(f, path, append([][]string{header}, rows...)...)
}

func ensureLedgerFile(path string, header []string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("could not stat ledger file %q: %w", path, err)
	}
	return writeLedgerFile(path, header, nil)
}

func writeRows(f *os.File, path string, rows ...[]string) error {
	w := csv.NewWriter(f)
	w.Comma = csvDelimiter
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return fmt.Errorf("could not write to ledger file %q: %w", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("could not write to ledger file %q: %w", path, err)
	}
	return nil
}

// LoadBoughtLedger reads and decodes the bought ledger file.
func LoadBoughtLedger(path string) (*BoughtLedger, error) {
	records, err := readRecords(path)
	if err != nil {
		return nil, err
	}
	lots := make([]BoughtLot, 0, len(records))
	for _, rec := range records {
		lot, err := boughtLotFromRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("ledger %q: %w", path, err)
		}
		lots = append(lots, lot)
	}
	return NewBoughtLedger(lots...), nil
}

// LoadSoldLedger reads and decodes the sold ledger file.
func LoadSoldLedger(path string) (*SoldLedger, error) {
	records, err := readRecords(path)
	if err != nil {
		return nil, err
	}
	entries := make([]SoldEntry, 0, len(records))
	for _, rec := range records {
		e, err := soldEntryFromRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("ledger %q: %w", path, err)
		}
		entries = append(entries, e)
	}
	return NewSoldLedger(entries...), nil
}

// SaveBoughtLedger rewrites the bought ledger file in canonical sorted form.
func SaveBoughtLedger(path string, l *BoughtLedger) error {
	l.stableSort()
	rows := make([][]string, 0, l.Len())
	for lot := range l.All() {
		rows = append(rows, lot.record())
	}
	return writeLedgerFile(path, BoughtHeader, rows)
}

// SaveSoldLedger rewrites the sold ledger file in canonical sorted form.
func SaveSoldLedger(path string, l *SoldLedger) error {
	l.stableSort()
	rows := make([][]string, 0, l.Len())
	for e := range l.All() {
		rows = append(rows, e.record())
	}
	return writeLedgerFile(path, SoldHeader, rows)
}
