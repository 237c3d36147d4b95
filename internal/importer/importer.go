package importer

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/wpcellgap-cmyk/stock/internal/models"
	"github.com/wpcellgap-cmyk/stock/internal/store"
)

// Summary is the user-facing outcome of one import run.
type Summary struct {
	Result  Result `json:"result"`
	Message string `json:"message"`
}

// Importer runs the whole import pipeline: parse file, map headers,
// reconcile rows, log the import activity.
type Importer struct {
	store      *store.Store
	reconciler *Reconciler
}

func New(st *store.Store, defaultMinStock int) *Importer {
	return &Importer{
		store:      st,
		reconciler: NewReconciler(st, defaultMinStock),
	}
}

// IsSpreadsheet reports whether fileName looks like a workbook rather than
// a CSV.
func IsSpreadsheet(fileName string) bool {
	ext := strings.ToLower(filepath.Ext(fileName))
	return ext == ".xlsx" || ext == ".xls"
}

// ImportFile parses r (CSV or first-sheet workbook, picked from fileName),
// reconciles every row and appends a single import activity with the
// summary. Rows commit independently; an error mid-run leaves earlier rows
// in place and is reported to the caller.
func (im *Importer) ImportFile(r io.Reader, fileName string) (*Summary, error) {
	var (
		headers []string
		rows    [][]string
		err     error
	)
	if IsSpreadsheet(fileName) {
		headers, rows, err = ParseXLSX(r)
	} else {
		headers, rows, err = ParseCSV(r)
	}
	if err != nil {
		return nil, err
	}

	records := ProjectRows(headers, rows)
	res, err := im.reconciler.Run(records)
	if err != nil {
		return nil, err
	}

	parts := summaryParts(res)
	note := fmt.Sprintf("Import dari %s: %s", fileName, strings.Join(parts, ", "))
	if err := im.store.LogActivity(nil, models.ActivityImport, res.Total, note, fileName, ""); err != nil {
		return nil, err
	}

	return &Summary{
		Result:  *res,
		Message: "Berhasil import: " + strings.Join(parts, ", "),
	}, nil
}

func summaryParts(res *Result) []string {
	var parts []string
	if res.Inserted > 0 {
		parts = append(parts, fmt.Sprintf("%d item baru", res.Inserted))
	}
	if res.Updated > 0 {
		parts = append(parts, fmt.Sprintf("%d item diperbarui (stok ditambah)", res.Updated))
	}
	if res.Skipped > 0 {
		parts = append(parts, fmt.Sprintf("%d baris dilewati", res.Skipped))
	}
	if len(parts) == 0 {
		parts = append(parts, "tidak ada perubahan")
	}
	return parts
}
