package importer

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ErrEmptyFile is returned when a file has no header row or no data rows.
var ErrEmptyFile = errors.New("file is empty")

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ParseCSV reads a comma-delimited UTF-8 file (optional BOM) into a header
// row plus data rows.
func ParseCSV(r io.Reader) ([]string, [][]string, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, fmt.Errorf("read csv: %w", err)
	}
	raw = bytes.TrimPrefix(raw, utf8BOM)

	reader := csv.NewReader(bytes.NewReader(raw))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	all, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("parse csv: %w", err)
	}

	// drop rows that are entirely blank
	rows := make([][]string, 0, len(all))
	for _, row := range all {
		if !rowIsBlank(row) {
			rows = append(rows, row)
		}
	}
	if len(rows) < 2 {
		return nil, nil, ErrEmptyFile
	}
	return rows[0], rows[1:], nil
}

// ParseXLSX reads the first sheet of a workbook into a header row plus
// data rows.
func ParseXLSX(r io.Reader) ([]string, [][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, ErrEmptyFile
	}
	all, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}

	rows := make([][]string, 0, len(all))
	for _, row := range all {
		if !rowIsBlank(row) {
			rows = append(rows, row)
		}
	}
	if len(rows) < 2 {
		return nil, nil, ErrEmptyFile
	}
	return rows[0], rows[1:], nil
}

func rowIsBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
