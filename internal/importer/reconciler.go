package importer

import (
	"fmt"
	"strings"

	"github.com/wpcellgap-cmyk/stock/internal/models"
	"github.com/wpcellgap-cmyk/stock/internal/store"
	"github.com/wpcellgap-cmyk/stock/internal/util"
)

// Result counts what a bulk import did. Total excludes skipped rows.
type Result struct {
	Inserted int `json:"inserted"`
	Updated  int `json:"updated"`
	Skipped  int `json:"skipped"`
	Total    int `json:"total"`
}

// Reconciler decides per imported row whether it creates a new item or
// merges into an existing one.
type Reconciler struct {
	store           *store.Store
	defaultMinStock int
}

func NewReconciler(st *store.Store, defaultMinStock int) *Reconciler {
	if defaultMinStock <= 0 {
		defaultMinStock = 5
	}
	return &Reconciler{store: st, defaultMinStock: defaultMinStock}
}

// Run processes records strictly in input order. Each row does its own
// lookups against current database state, so a duplicate name later in the
// same file merges into the row inserted moments earlier (read your own
// writes). Rows are committed one by one; a failure mid-batch leaves the
// rows already written in place.
func (r *Reconciler) Run(records []Record) (*Result, error) {
	var res Result

	for _, rec := range records {
		name := strings.TrimSpace(rec.Name)
		if name == "" {
			res.Skipped++
			continue
		}

		// resolve category by name; unknown categories stay null rather
		// than being auto-created
		var categoryID *uint
		if cat := strings.TrimSpace(rec.Category); cat != "" {
			found, err := r.store.FindCategoryByName(cat)
			if err != nil {
				return &res, err
			}
			if found != nil {
				categoryID = &found.ID
			}
		}

		qty := util.ParseIntDefault(rec.Quantity, 0)
		buyPrice := util.ParseDecimalDefault(rec.BuyPrice)
		sellPrice := util.ParseDecimalDefault(rec.SellPrice)

		existing, err := r.store.FindItemByName(name, nil, 0)
		if err != nil {
			return &res, err
		}

		if existing != nil {
			if err := r.store.ApplyStockMerge(existing.ID, qty, buyPrice, sellPrice); err != nil {
				return &res, err
			}
			if qty > 0 {
				note := fmt.Sprintf("Import: tambah stok %d (total: %d)", qty, existing.Quantity+qty)
				if err := r.store.LogActivity(&existing.ID, models.ActivityStockIn, qty, note, "", ""); err != nil {
					return &res, err
				}
			}
			res.Updated++
			continue
		}

		item := models.Item{
			Name:        name,
			SKU:         strings.TrimSpace(rec.SKU),
			CustomID:    strings.TrimSpace(rec.CustomID),
			CategoryID:  categoryID,
			BuyPrice:    buyPrice,
			SellPrice:   sellPrice,
			Quantity:    qty,
			MinStock:    util.ParseIntDefault(rec.MinStock, r.defaultMinStock),
			Description: strings.TrimSpace(rec.Description),
		}
		if err := r.store.InsertItem(&item); err != nil {
			return &res, err
		}
		res.Inserted++
	}

	res.Total = res.Inserted + res.Updated
	return &res, nil
}
