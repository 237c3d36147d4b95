package exporter

import (
	"bytes"
	"fmt"

	"github.com/wpcellgap-cmyk/stock/internal/models"

	"github.com/xuri/excelize/v2"
)

// fillSheet writes headers plus rows into sheet and auto-fits the column
// widths to the longest cell, capped at 40 characters.
func fillSheet(f *excelize.File, sheet string, headers []string, rows [][]string) error {
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return fmt.Errorf("set header: %w", err)
		}
	}
	for r, row := range rows {
		for c, val := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return fmt.Errorf("data cell: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, val); err != nil {
				return fmt.Errorf("set cell: %w", err)
			}
		}
	}

	for i, h := range headers {
		maxLen := len([]rune(h))
		for _, row := range rows {
			if i < len(row) {
				if l := len([]rune(row[i])); l > maxLen {
					maxLen = l
				}
			}
		}
		width := float64(maxLen + 2)
		if width > 40 {
			width = 40
		}
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return fmt.Errorf("column name: %w", err)
		}
		if err := f.SetColWidth(sheet, col, col, width); err != nil {
			return fmt.Errorf("set col width: %w", err)
		}
	}
	return nil
}

func workbookBytes(f *excelize.File) ([]byte, error) {
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// ItemsXLSX exports the full item set into a single-sheet workbook.
func (e *Exporter) ItemsXLSX() (*FileResult, error) {
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

	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName(f.GetSheetName(0), SheetStock); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	if err := fillSheet(f, SheetStock, itemHeaders, rows); err != nil {
		return nil, err
	}
	data, err := workbookBytes(f)
	if err != nil {
		return nil, err
	}

	name, path := e.filePath("stock_export", "xlsx")
	if err := e.writeFile(path, data); err != nil {
		return nil, err
	}

	note := fmt.Sprintf("Export %d item ke Excel", len(items))
	if err := e.store.LogActivity(nil, models.ActivityExport, len(items), note, name, ""); err != nil {
		return nil, err
	}
	return &FileResult{
		FileName: name,
		Path:     path,
		Count:    len(items),
		Message:  fmt.Sprintf("%d item diekspor ke Excel", len(items)),
	}, nil
}

// ReportXLSX exports the full report workbook: one sheet with the current
// stock, one with the transaction history.
func (e *Exporter) ReportXLSX() (*FileResult, error) {
	items, err := e.store.ListItemsForExport()
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrNoData
	}
	acts, err := e.store.RecentActivities(e.historyLimit)
	if err != nil {
		return nil, err
	}

	itemRows := make([][]string, 0, len(items))
	for i := range items {
		itemRows = append(itemRows, itemRow(&items[i]))
	}
	actRows := make([][]string, 0, len(acts))
	for i := range acts {
		actRows = append(actRows, activityRow(&acts[i]))
	}

	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName(f.GetSheetName(0), SheetCurrent); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet(SheetHistory); err != nil {
		return nil, fmt.Errorf("new sheet: %w", err)
	}
	if err := fillSheet(f, SheetCurrent, itemHeaders, itemRows); err != nil {
		return nil, err
	}
	if err := fillSheet(f, SheetHistory, historyHeaders, actRows); err != nil {
		return nil, err
	}
	data, err := workbookBytes(f)
	if err != nil {
		return nil, err
	}

	name, path := e.filePath("stock_report", "xlsx")
	if err := e.writeFile(path, data); err != nil {
		return nil, err
	}

	note := fmt.Sprintf("Export laporan lengkap: %d item, %d aktivitas", len(items), len(acts))
	if err := e.store.LogActivity(nil, models.ActivityExport, len(items), note, name, ""); err != nil {
		return nil, err
	}
	return &FileResult{
		FileName: name,
		Path:     path,
		Count:    len(items),
		Message:  fmt.Sprintf("Laporan lengkap diekspor (%d item)", len(items)),
	}, nil
}
