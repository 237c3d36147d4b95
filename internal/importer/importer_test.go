package importer

import (
	"strings"
	"testing"

	"github.com/wpcellgap-cmyk/stock/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportFileCSV(t *testing.T) {
	st := newTestStore(t)
	im := New(st, 5)

	csvData := "\uFEFFNama Barang,Kategori,Harga Jual,Jumlah (Stok)\n" +
		"Layar A,LCD,50000,10\n" +
		",,0,0\n" +
		"layar a,,0,7\n"

	summary, err := im.ImportFile(strings.NewReader(csvData), "stok.csv")
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Result.Inserted)
	assert.Equal(t, 1, summary.Result.Updated)
	assert.Equal(t, 1, summary.Result.Skipped)
	assert.Equal(t, 2, summary.Result.Total)
	assert.Contains(t, summary.Message, "1 item baru")
	assert.Contains(t, summary.Message, "1 item diperbarui (stok ditambah)")
	assert.Contains(t, summary.Message, "1 baris dilewati")

	// one file-level import activity plus the merge stock_in
	acts, err := st.RecentActivities(50)
	require.NoError(t, err)

	var imported *models.Activity
	for i := range acts {
		if acts[i].Type == models.ActivityImport {
			imported = &acts[i]
		}
	}
	require.NotNil(t, imported)
	assert.Equal(t, "stok.csv", imported.FileName)
	assert.Equal(t, 2, imported.QuantityChange)
	assert.Contains(t, imported.Note, "Import dari stok.csv")

	item, err := st.FindItemByName("Layar A", nil, 0)
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, 17, item.Quantity)
}

func TestImportFileEmpty(t *testing.T) {
	st := newTestStore(t)
	im := New(st, 5)

	_, err := im.ImportFile(strings.NewReader("Nama Barang\n"), "kosong.csv")
	assert.ErrorIs(t, err, ErrEmptyFile)

	// nothing written, not even the import activity
	acts, err := st.RecentActivities(10)
	require.NoError(t, err)
	assert.Empty(t, acts)
}

func TestIsSpreadsheet(t *testing.T) {
	assert.True(t, IsSpreadsheet("stok.xlsx"))
	assert.True(t, IsSpreadsheet("STOK.XLS"))
	assert.False(t, IsSpreadsheet("stok.csv"))
	assert.False(t, IsSpreadsheet("stok"))
}
