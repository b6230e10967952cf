package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/jinzhu/now"
	"github.com/xuri/excelize/v2"
)

// Row is one parsed roster line with canonical keys
type Row struct {
	Line     int               `json:"line"`
	Fields   map[string]string `json:"fields"`
	Warnings []string          `json:"warnings,omitempty"`
}

// Get returns the trimmed value for a canonical column
func (r Row) Get(col string) string {
	return strings.TrimSpace(r.Fields[col])
}

// ParseFile dispatches on file extension. Both formats run through the same
// header normalization and required-column check.
func ParseFile(filename string, data []byte) ([]Row, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return ParseCSV(bytes.NewReader(data))
	case ".xlsx", ".xls":
		return ParseXLSX(data)
	default:
		return nil, fmt.Errorf("unsupported file type %q: expected .csv or .xlsx", filepath.Ext(filename))
	}
}

// ParseCSV reads delimited text into canonical-key rows
func ParseCSV(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // ragged rows are row-level problems, not file-level

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("file is empty or has only headers")
	}

	headers := normalizeHeaders(records[0])
	if err := checkRequiredColumns(headers); err != nil {
		return nil, err
	}

	log.Printf("CSV headers after normalization: %v", headers)

	rows := make([]Row, 0, len(records)-1)
	for i, record := range records[1:] {
		rows = append(rows, buildRow(i+2, headers, record))
	}
	return rows, nil
}

// ParseXLSX reads the first sheet of a spreadsheet into canonical-key rows
func ParseXLSX(data []byte) ([]Row, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open spreadsheet: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	records, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("file is empty or has only headers")
	}

	headers := normalizeHeaders(records[0])
	if err := checkRequiredColumns(headers); err != nil {
		return nil, err
	}

	rows := make([]Row, 0, len(records)-1)
	for i, record := range records[1:] {
		rows = append(rows, buildRow(i+2, headers, record))
	}
	return rows, nil
}

func normalizeHeaders(raw []string) []string {
	headers := make([]string, len(raw))
	for i, h := range raw {
		headers[i] = NormalizeHeader(h)
	}
	return headers
}

// checkRequiredColumns enforces the canonical required set for every file
// format
func checkRequiredColumns(headers []string) error {
	present := make(map[string]bool, len(headers))
	for _, h := range headers {
		present[h] = true
	}

	var missing []string
	for _, col := range RequiredColumns {
		if !present[col] {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}
	return nil
}

func buildRow(line int, headers, record []string) Row {
	row := Row{Line: line, Fields: make(map[string]string, len(headers))}
	for i, h := range headers {
		if i < len(record) {
			row.Fields[h] = strings.TrimSpace(record[i])
		}
	}

	// Reformat issue dates to ISO. An unparseable date is kept as an empty
	// value but the row carries a warning so the uploader can see what was
	// dropped.
	if raw := row.Get(ColIssueDate); raw != "" {
		if iso, ok := toISODate(raw); ok {
			row.Fields[ColIssueDate] = iso
		} else {
			row.Fields[ColIssueDate] = ""
			row.Warnings = append(row.Warnings, fmt.Sprintf("unparseable issue date %q", raw))
		}
	}
	return row
}

// extra layouts on top of what jinzhu/now already understands
var dateLayouts = []string{
	"01/02/2006",
	"02/01/2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2-Jan-2006",
}

func toISODate(s string) (string, bool) {
	if t, err := now.Parse(s); err == nil {
		return t.Format("2006-01-02"), true
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02"), true
		}
	}
	return "", false
}
