package stockpile

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/xuri/excelize/v2"
)

// This file handles the interchange formats. A record file is a flat list of
// records with the ledger's column names, carried as CSV, JSON, XML or XLSX;
// the extension decides the codec.

// ErrUnsupportedFormat is returned when a file extension maps to no codec.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// ImportBought reads product records from a file and appends them to the
// bought ledger, returning the assigned lot ids. Ids present in the file are
// ignored: imported lots get fresh sequential ids so they can never collide
// with existing ones. For JSON files a non-empty jsonpath query selects the
// record list inside a nested document. The whole file is parsed and
// validated before the first append, so a malformed or invalid record leaves
// the ledger untouched.
func (inv *Inventory) ImportBought(path, query string) ([]int, error) {
	records, err := readRecordFile(path, query)
	if err != nil {
		return nil, err
	}
	ledger, err := LoadBoughtLedger(inv.cfg.BoughtFile)
	if err != nil {
		return nil, err
	}

	next := ledger.NextID()
	var lots []BoughtLot
	for i, rec := range records {
		rec["id"] = strconv.Itoa(next)
		lot, err := boughtLotFromRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("record %d of %s: %w", i+1, path, err)
		}
		if err := validateLot(inv.cfg.Format(), lot); err != nil {
			return nil, fmt.Errorf("record %d of %s: %w", i+1, path, err)
		}
		lots = append(lots, lot)
		next++
	}

	ids := make([]int, 0, len(lots))
	for _, lot := range lots {
		if err := inv.appendLot(lot); err != nil {
			return nil, err
		}
		ids = append(ids, lot.ID)
	}
	return ids, nil
}

// ExportBought writes the bought ledger to a file in the format its
// extension names.
func (inv *Inventory) ExportBought(path string) error {
	ledger, err := LoadBoughtLedger(inv.cfg.BoughtFile)
	if err != nil {
		return err
	}
	rows := make([][]string, 0, ledger.Len())
	for _, lot := range ledger.Lots() {
		rows = append(rows, lot.record())
	}
	return writeRecordFile(path, BoughtHeader, rows)
}

// ExportSold writes the sold ledger to a file in the format its extension
// names.
func (inv *Inventory) ExportSold(path string) error {
	ledger, err := LoadSoldLedger(inv.cfg.SoldFile)
	if err != nil {
		return err
	}
	rows := make([][]string, 0, ledger.Len())
	for _, e := range ledger.Entries() {
		rows = append(rows, e.record())
	}
	return writeRecordFile(path, SoldHeader, rows)
}

func readRecordFile(path, query string) ([]map[string]string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return readCSVTable(path)
	case ".json":
		return readJSONTable(path, query)
	case ".xml":
		return readXMLTable(path)
	case ".xlsx":
		return readXLSXTable(path)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

func writeRecordFile(path string, header []string, rows [][]string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return writeCSVTable(path, header, rows)
	case ".json":
		return writeJSONTable(path, header, rows)
	case ".xml":
		return writeXMLTable(path, header, rows)
	case ".xlsx":
		return writeXLSXTable(path, header, rows)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

func readCSVTable(path string) ([]map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = csvDelimiter
	r.FieldsPerRecord = -1 // short rows are tolerated, missing cells stay empty
	all, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}
	if len(all) == 0 {
		return nil, nil
	}
	header := all[0]
	records := make([]map[string]string, 0, len(all)-1)
	for _, row := range all[1:] {
		rec := make(map[string]string, len(header))
		for i, name := range header {
			if i < len(row) {
				rec[name] = row[i]
			}
		}
		records = append(records, rec)
	}
	return records, nil
}

func writeCSVTable(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.Comma = csvDelimiter
	if err := w.Write(header); err != nil {
		return fmt.Errorf("cannot write %s: %w", path, err)
	}
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("cannot write %s: %w", path, err)
	}
	return nil
}

func readJSONTable(path, query string) ([]map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("cannot parse %s: %w", path, err)
	}
	if query != "" {
		doc, err = jsonpath.Get(query, doc)
		if err != nil {
			return nil, fmt.Errorf("jsonpath %q on %s: %w", query, path, err)
		}
	}
	list, ok := doc.([]any)
	if !ok {
		return nil, fmt.Errorf("%s does not hold a list of records (use a jsonpath query to select one)", path)
	}
	records := make([]map[string]string, 0, len(list))
	for i, item := range list {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("record %d of %s is not an object", i+1, path)
		}
		rec := make(map[string]string, len(obj))
		for name, v := range obj {
			rec[name] = jsonText(v)
		}
		records = append(records, rec)
	}
	return records, nil
}

func jsonText(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}

func writeJSONTable(path string, header []string, rows [][]string) error {
	records := make([]map[string]string, 0, len(rows))
	for _, row := range rows {
		rec := make(map[string]string, len(header))
		for i, name := range header {
			if i < len(row) {
				rec[name] = row[i]
			}
		}
		records = append(records, rec)
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}

// XML carries the records as <records><record><field>value</field>...</record></records>.
// The element names inside a record are the column names; the root and record
// element names are not checked on import.
func readXMLTable(path string) ([]map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec := xml.NewDecoder(f)
	var records []map[string]string
	var current map[string]string
	var field string
	var text strings.Builder
	depth := 0
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("cannot parse %s: %w", path, err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			depth++
			switch depth {
			case 2:
				current = make(map[string]string)
			case 3:
				field = t.Name.Local
				text.Reset()
			}
		case xml.CharData:
			if depth == 3 {
				text.Write(t)
			}
		case xml.EndElement:
			switch depth {
			case 3:
				current[field] = strings.TrimSpace(text.String())
			case 2:
				records = append(records, current)
			}
			depth--
		}
	}
	return records, nil
}

func writeXMLTable(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := xml.NewEncoder(f)
	enc.Indent("", "  ")
	root := xml.StartElement{Name: xml.Name{Local: "records"}}
	if err := enc.EncodeToken(root); err != nil {
		return err
	}
	for _, row := range rows {
		rec := xml.StartElement{Name: xml.Name{Local: "record"}}
		if err := enc.EncodeToken(rec); err != nil {
			return err
		}
		for i, name := range header {
			value := ""
			if i < len(row) {
				value = row[i]
			}
			el := xml.StartElement{Name: xml.Name{Local: name}}
			if err := enc.EncodeElement(value, el); err != nil {
				return err
			}
		}
		if err := enc.EncodeToken(rec.End()); err != nil {
			return err
		}
	}
	if err := enc.EncodeToken(root.End()); err != nil {
		return err
	}
	if err := enc.Flush(); err != nil {
		return err
	}
	_, err = f.WriteString("\n")
	return err
}

func readXLSXTable(path string) ([]map[string]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	header := rows[0]
	records := make([]map[string]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := make(map[string]string, len(header))
		for i, name := range header {
			if i < len(row) {
				rec[name] = row[i]
			}
		}
		records = append(records, rec)
	}
	return records, nil
}

func writeXLSXTable(path string, header []string, rows [][]string) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return f.SaveAs(path)
}
