// Package importfile turns uploaded price files into update rows.
// It knows nothing about products or pricing; values are passed through as text.
package importfile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

const (
	HeaderProductID       = "Product ID"
	HeaderBasePrice       = "Base Price"
	HeaderProductDiscount = "Product Discount"
	HeaderBonusPattern    = "Bonus Pattern"
)

var (
	// ErrUnsupportedFormat is returned for files that are neither CSV nor XLSX
	ErrUnsupportedFormat = errors.New("unsupported file format")
	// ErrEmptyFile is returned when the file has no header row
	ErrEmptyFile = errors.New("file is empty")
)

// MissingHeadersError lists required columns absent from the header row
type MissingHeadersError struct {
	Missing []string
}

func (e *MissingHeadersError) Error() string {
	return "missing required headers: " + strings.Join(e.Missing, ", ")
}

// Row is one data line. Line is the 1-based position among non-blank
// lines, so the first data row is line 2. Nil fields were blank.
type Row struct {
	Line            int
	ProductID       string
	BasePrice       *string
	ProductDiscount *string
	BonusPattern    *string
}

// Parse dispatches on the file extension
func Parse(fileName string, r io.Reader) ([]Row, error) {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".csv", ".txt":
		return ParseCSV(r)
	case ".xlsx":
		return ParseXLSX(r)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(fileName))
	}
}

// ParseCSV reads comma separated rows with a header line
func ParseCSV(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	return fromRecords(records)
}

// ParseXLSX reads the first sheet of a workbook
func ParseXLSX(r io.Reader) ([]Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptyFile
	}

	records, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheets[0], err)
	}
	return fromRecords(records)
}

func fromRecords(records [][]string) ([]Row, error) {
	records = dropBlank(records)
	if len(records) == 0 {
		return nil, ErrEmptyFile
	}

	index := make(map[string]int)
	for i, h := range records[0] {
		index[normalizeHeader(h)] = i
	}

	var missing []string
	for _, h := range []string{HeaderProductID, HeaderBasePrice} {
		if _, ok := index[normalizeHeader(h)]; !ok {
			missing = append(missing, h)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingHeadersError{Missing: missing}
	}

	cell := func(rec []string, header string) *string {
		i, ok := index[normalizeHeader(header)]
		if !ok || i >= len(rec) {
			return nil
		}
		v := strings.TrimSpace(rec[i])
		if v == "" {
			return nil
		}
		return &v
	}

	rows := make([]Row, 0, len(records)-1)
	for i, rec := range records[1:] {
		row := Row{
			Line:            i + 2,
			BasePrice:       cell(rec, HeaderBasePrice),
			ProductDiscount: cell(rec, HeaderProductDiscount),
			BonusPattern:    cell(rec, HeaderBonusPattern),
		}
		if id := cell(rec, HeaderProductID); id != nil {
			row.ProductID = *id
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func normalizeHeader(h string) string {
	return strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
}

func dropBlank(records [][]string) [][]string {
	out := records[:0]
	for _, rec := range records {
		for _, v := range rec {
			if strings.TrimSpace(v) != "" {
				out = append(out, rec)
				break
			}
		}
	}
	return out
}
