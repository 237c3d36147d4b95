package importer

// Record is one spreadsheet row reduced to canonical fields. Values stay
// raw strings here; the reconciler coerces numbers with safe defaults.
type Record struct {
	Name        string
	SKU         string
	CustomID    string
	Category    string
	BuyPrice    string
	SellPrice   string
	Quantity    string
	MinStock    string
	Description string
}

func (r *Record) set(field, value string) {
	switch field {
	case FieldName:
		r.Name = value
	case FieldSKU:
		r.SKU = value
	case FieldCustomID:
		r.CustomID = value
	case FieldCategory:
		r.Category = value
	case FieldBuyPrice:
		r.BuyPrice = value
	case FieldSellPrice:
		r.SellPrice = value
	case FieldQuantity:
		r.Quantity = value
	case FieldMinStock:
		r.MinStock = value
	case FieldDescription:
		r.Description = value
	}
}

// ProjectRows turns raw rows into Records using the header mapping.
// Headers are visited in file order; when two columns map to the same
// canonical field the later column wins. That ambiguity is inherited from
// the alias table and is deliberately not deduplicated.
func ProjectRows(headers []string, rows [][]string) []Record {
	mapping := MapColumns(headers)
	records := make([]Record, 0, len(rows))
	for _, row := range rows {
		var rec Record
		for i, h := range headers {
			field, ok := mapping[h]
			if !ok || i >= len(row) {
				continue
			}
			rec.set(field, row[i])
		}
		records = append(records, rec)
	}
	return records
}
