package exporter

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/wpcellgap-cmyk/stock/internal/models"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// renderCSV builds a BOM-prefixed, comma-delimited UTF-8 table. The BOM is
// what makes spreadsheet tools pick the right encoding.
func renderCSV(headers []string, rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	buf.Write(utf8BOM)

	w := csv.NewWriter(&buf)
	if err := w.Write(headers); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

// ItemsCSV exports the full item set to a CSV file and logs the export.
func (e *Exporter) ItemsCSV() (*FileResult, error) {
	items, err := e.store.ListItemsForExport()
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrNoData
	}

	rows := make([][]string, 0, len(items))
	for i := range items {
		rows = append(rows, itemRow(&items[i]))
	}
	data, err := renderCSV(itemHeaders, rows)
	if err != nil {
		return nil, err
	}

	name, path := e.filePath("stock_export", "csv")
	if err := e.writeFile(path, data); err != nil {
		return nil, err
	}

	note := fmt.Sprintf("Export %d item ke CSV", len(items))
	if err := e.store.LogActivity(nil, models.ActivityExport, len(items), note, name, ""); err != nil {
		return nil, err
	}
	return &FileResult{
		FileName: name,
		Path:     path,
		Count:    len(items),
		Message:  fmt.Sprintf("%d item diekspor ke CSV", len(items)),
	}, nil
}

// HistoryCSV exports the recent activity history to a CSV file.
func (e *Exporter) HistoryCSV() (*FileResult, error) {
	acts, err := e.store.RecentActivities(e.historyLimit)
	if err != nil {
		return nil, err
	}
	if len(acts) == 0 {
		return nil, ErrNoData
	}

	rows := make([][]string, 0, len(acts))
	for i := range acts {
		rows = append(rows, activityRow(&acts[i]))
	}
	data, err := renderCSV(historyHeaders, rows)
	if err != nil {
		return nil, err
	}

	name, path := e.filePath("stock_history", "csv")
	if err := e.writeFile(path, data); err != nil {
		return nil, err
	}

	note := fmt.Sprintf("Export %d aktivitas ke CSV", len(acts))
	if err := e.store.LogActivity(nil, models.ActivityExport, len(acts), note, name, ""); err != nil {
		return nil, err
	}
	return &FileResult{
		FileName: name,
		Path:     path,
		Count:    len(acts),
		Message:  fmt.Sprintf("%d aktivitas diekspor ke CSV", len(acts)),
	}, nil
}
