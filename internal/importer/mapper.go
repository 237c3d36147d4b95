package importer

import "strings"

// Canonical field names every recognized spreadsheet header is normalized
// to during import.
const (
	FieldName        = "name"
	FieldSKU         = "sku"
	FieldCustomID    = "custom_id"
	FieldCategory    = "category"
	FieldBuyPrice    = "buy_price"
	FieldSellPrice   = "sell_price"
	FieldQuantity    = "quantity"
	FieldMinStock    = "min_stock"
	FieldDescription = "description"
)

type fieldAliases struct {
	field   string
	aliases []string
}

// columnAliases accepts the Indonesian and English header spellings seen
// in the wild. Order matters: the first field whose alias list contains a
// normalized header wins, so a header matching two fields resolves to the
// earlier entry.
var columnAliases = []fieldAliases{
	{FieldName, []string{"name", "nama", "item", "produk", "product", "barang", "nama barang", "nama item"}},
	{FieldSKU, []string{"sku", "kode", "code", "barcode"}},
	{FieldCustomID, []string{"custom_id", "id_barang", "id barang", "kode toko", "manual_id"}},
	{FieldCategory, []string{"category", "kategori", "jenis", "tipe", "type"}},
	{FieldBuyPrice, []string{"buy_price", "harga beli", "buy price", "modal", "cost", "biaya"}},
	{FieldSellPrice, []string{"sell_price", "harga jual", "sell price", "harga", "price"}},
	{FieldQuantity, []string{"quantity", "qty", "jumlah", "stok", "stock", "jumlah (stok)"}},
	{FieldMinStock, []string{"min_stock", "min stock", "min stok", "minimum", "min", "reorder"}},
	{FieldDescription, []string{"description", "desc", "keterangan", "deskripsi", "catatan", "note"}},
}

// MapColumns maps raw file headers onto canonical field names. Headers
// matching no alias are left out of the mapping and their column is
// ignored. Matching is case-insensitive on the trimmed header.
func MapColumns(headers []string) map[string]string {
	mapping := make(map[string]string)
	for _, h := range headers {
		normalized := strings.ToLower(strings.TrimSpace(h))
		for _, fa := range columnAliases {
			if containsString(fa.aliases, normalized) {
				mapping[h] = fa.field
				break
			}
		}
	}
	return mapping
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
