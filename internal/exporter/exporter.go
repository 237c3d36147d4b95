package exporter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/wpcellgap-cmyk/stock/internal/models"
	"github.com/wpcellgap-cmyk/stock/internal/store"
)

// ErrNoData is returned when there is nothing to export.
var ErrNoData = errors.New("no data to export")

// Sheet names in exported workbooks.
const (
	SheetStock   = "Stock"
	SheetCurrent = "Stok Saat Ini"
	SheetHistory = "Riwayat Transaksi"
)

// itemHeaders is the fixed, human-facing column order for item exports.
var itemHeaders = []string{
	"Nama Barang", "ID Barang", "SKU", "Kategori",
	"Harga Beli", "Harga Jual", "Jumlah (Stok)", "Min Stok", "Keterangan",
}

// historyHeaders is the column order for activity history exports.
var historyHeaders = []string{
	"Tanggal", "Tipe", "Nama Barang", "Perubahan", "Keterangan", "File", "Status",
}

// FileResult describes a file written by an export operation.
type FileResult struct {
	FileName string `json:"file_name"`
	Path     string `json:"path"`
	Count    int    `json:"count"`
	Message  string `json:"message"`
}

// Exporter renders the current inventory and activity history into CSV
// and XLSX files under Dir.
type Exporter struct {
	store        *store.Store
	dir          string
	historyLimit int
}

func New(st *store.Store, dir string, historyLimit int) *Exporter {
	if historyLimit <= 0 {
		historyLimit = 10000
	}
	return &Exporter{store: st, dir: dir, historyLimit: historyLimit}
}

func (e *Exporter) filePath(prefix, ext string) (string, string) {
	name := fmt.Sprintf("%s_%s.%s", prefix, time.Now().Format("2006-01-02"), ext)
	return name, filepath.Join(e.dir, name)
}

func (e *Exporter) writeFile(path string, data []byte) error {
	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write export file: %w", err)
	}
	return nil
}

func itemRow(it *models.Item) []string {
	return []string{
		it.Name,
		it.CustomID,
		it.SKU,
		it.CategoryName,
		it.BuyPrice.String(),
		it.SellPrice.String(),
		fmt.Sprintf("%d", it.Quantity),
		fmt.Sprintf("%d", it.MinStock),
		it.Description,
	}
}

func activityRow(a *models.Activity) []string {
	return []string{
		a.CreatedAt.Format("2006-01-02 15:04:05"),
		a.Type,
		a.ItemName,
		fmt.Sprintf("%d", a.QuantityChange),
		a.Note,
		a.FileName,
		a.Status,
	}
}
