package importer

import (
	"testing"

	"github.com/wpcellgap-cmyk/stock/internal/database"
	"github.com/wpcellgap-cmyk/stock/internal/models"
	"github.com/wpcellgap-cmyk/stock/internal/store"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	return store.New(db)
}

func TestReconcilerSkipsBlankNames(t *testing.T) {
	st := newTestStore(t)
	rec := NewReconciler(st, 5)

	res, err := rec.Run([]Record{
		{Name: ""},
		{Name: "   "},
	})
	require.NoError(t, err)

	assert.Equal(t, 0, res.Inserted)
	assert.Equal(t, 0, res.Updated)
	assert.Equal(t, 2, res.Skipped)
	assert.Equal(t, 0, res.Total)

	items, err := st.ListItems("", store.FilterAll, nil)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestReconcilerInsertsNewItem(t *testing.T) {
	st := newTestStore(t)
	rec := NewReconciler(st, 5)

	res, err := rec.Run([]Record{{
		Name:      "  Layar A  ",
		SKU:       "LCD-01",
		Quantity:  "10",
		BuyPrice:  "40000",
		SellPrice: "50000",
	}})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Inserted)
	assert.Equal(t, 1, res.Total)

	item, err := st.FindItemByName("Layar A", nil, 0)
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, "Layar A", item.Name)
	assert.Equal(t, "LCD-01", item.SKU)
	assert.Equal(t, 10, item.Quantity)
	assert.Equal(t, 5, item.MinStock) // default when absent
	assert.True(t, item.BuyPrice.Equal(decimal.NewFromInt(40000)))
	assert.True(t, item.SellPrice.Equal(decimal.NewFromInt(50000)))
}

func TestReconcilerMergeIsAdditive(t *testing.T) {
	st := newTestStore(t)
	require.NoError(t, st.InsertItem(&models.Item{
		Name:      "Layar A",
		Quantity:  5,
		BuyPrice:  decimal.NewFromInt(40000),
		SellPrice: decimal.NewFromInt(50000),
	}))

	rec := NewReconciler(st, 5)
	res, err := rec.Run([]Record{{Name: "LAYAR a", Quantity: "10"}})
	require.NoError(t, err)
	assert.Equal(t, 0, res.Inserted)
	assert.Equal(t, 1, res.Updated)

	item, err := st.FindItemByName("Layar A", nil, 0)
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, 15, item.Quantity)
}

func TestReconcilerPriceOverwriteOnlyWhenPositive(t *testing.T) {
	st := newTestStore(t)
	require.NoError(t, st.InsertItem(&models.Item{
		Name:      "Layar A",
		Quantity:  5,
		BuyPrice:  decimal.NewFromInt(40000),
		SellPrice: decimal.NewFromInt(50000),
	}))

	rec := NewReconciler(st, 5)

	// zero/absent incoming prices leave stored ones unchanged
	_, err := rec.Run([]Record{{Name: "Layar A", Quantity: "1", BuyPrice: "0"}})
	require.NoError(t, err)
	item, err := st.FindItemByName("Layar A", nil, 0)
	require.NoError(t, err)
	assert.True(t, item.BuyPrice.Equal(decimal.NewFromInt(40000)))
	assert.True(t, item.SellPrice.Equal(decimal.NewFromInt(50000)))

	// positive incoming prices replace stored ones
	_, err = rec.Run([]Record{{Name: "Layar A", BuyPrice: "45000", SellPrice: "60000"}})
	require.NoError(t, err)
	item, err = st.FindItemByName("Layar A", nil, 0)
	require.NoError(t, err)
	assert.True(t, item.BuyPrice.Equal(decimal.NewFromInt(45000)))
	assert.True(t, item.SellPrice.Equal(decimal.NewFromInt(60000)))
}

// A duplicate name later in the same file merges into the row inserted
// moments earlier, because every row does a fresh lookup against current
// state.
func TestReconcilerWithinBatchDuplicate(t *testing.T) {
	st := newTestStore(t)
	rec := NewReconciler(st, 5)

	res, err := rec.Run([]Record{
		{Name: "   "},
		{Name: "Layar A", Quantity: "10", SellPrice: "50000"},
		{Name: "layar a", Quantity: "7"},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, res.Inserted)
	assert.Equal(t, 1, res.Updated)
	assert.Equal(t, 1, res.Skipped)
	assert.Equal(t, 2, res.Total)

	item, err := st.FindItemByName("Layar A", nil, 0)
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, 17, item.Quantity)

	items, err := st.ListItems("", store.FilterAll, nil)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestReconcilerResolvesCategoryByName(t *testing.T) {
	st := newTestStore(t)
	cat, err := st.CreateCategory("LCD", "")
	require.NoError(t, err)

	rec := NewReconciler(st, 5)
	_, err = rec.Run([]Record{
		{Name: "Layar A", Category: "lcd"},
		{Name: "Layar B", Category: "Tidak Ada"},
	})
	require.NoError(t, err)

	a, err := st.FindItemByName("Layar A", nil, 0)
	require.NoError(t, err)
	require.NotNil(t, a.CategoryID)
	assert.Equal(t, cat.ID, *a.CategoryID)

	// unknown category is left null, never auto-created
	b, err := st.FindItemByName("Layar B", nil, 0)
	require.NoError(t, err)
	assert.Nil(t, b.CategoryID)
	cats, err := st.ListCategories()
	require.NoError(t, err)
	assert.Len(t, cats, 1)
}

func TestReconcilerLogsStockInOnMerge(t *testing.T) {
	st := newTestStore(t)
	require.NoError(t, st.InsertItem(&models.Item{Name: "Layar A", Quantity: 5}))

	rec := NewReconciler(st, 5)
	_, err := rec.Run([]Record{
		{Name: "Layar A", Quantity: "10"},
		{Name: "Layar A", Quantity: "0"}, // no quantity, no stock_in row
	})
	require.NoError(t, err)

	acts, err := st.RecentActivities(50)
	require.NoError(t, err)
	require.Len(t, acts, 1)
	assert.Equal(t, models.ActivityStockIn, acts[0].Type)
	assert.Equal(t, 10, acts[0].QuantityChange)
	assert.Contains(t, acts[0].Note, "total: 15")
}

func TestReconcilerCoercesBadNumbers(t *testing.T) {
	st := newTestStore(t)
	rec := NewReconciler(st, 5)

	_, err := rec.Run([]Record{{
		Name:     "Layar A",
		Quantity: "banyak",
		BuyPrice: "mahal",
		MinStock: "?",
	}})
	require.NoError(t, err)

	item, err := st.FindItemByName("Layar A", nil, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, item.Quantity)
	assert.True(t, item.BuyPrice.IsZero())
	assert.Equal(t, 5, item.MinStock)
}
