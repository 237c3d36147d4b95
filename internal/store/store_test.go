package store_test

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

func TestSeedDefaultCategories(t *testing.T) {
	st := newTestStore(t)
	require.NoError(t, database.Seed(st.DB()))

	cats, err := st.ListCategories()
	require.NoError(t, err)
	assert.Len(t, cats, 10)

	// seeding only happens while the table is empty
	require.NoError(t, database.Seed(st.DB()))
	cats, err = st.ListCategories()
	require.NoError(t, err)
	assert.Len(t, cats, 10)
}

func TestDeleteCategoryDetachesItems(t *testing.T) {
	st := newTestStore(t)
	cat, err := st.CreateCategory("LCD", "")
	require.NoError(t, err)

	for _, name := range []string{"Layar A", "Layar B", "Layar C"} {
		require.NoError(t, st.InsertItem(&models.Item{Name: name, CategoryID: &cat.ID}))
	}

	require.NoError(t, st.DeleteCategory(cat.ID))

	items, err := st.ListItems("", store.FilterAll, nil)
	require.NoError(t, err)
	require.Len(t, items, 3)
	for _, it := range items {
		assert.Nil(t, it.CategoryID, "item %q should be detached", it.Name)
	}

	cats, err := st.ListCategories()
	require.NoError(t, err)
	assert.Empty(t, cats)
}

func TestFindItemByName(t *testing.T) {
	st := newTestStore(t)
	cat, err := st.CreateCategory("LCD", "")
	require.NoError(t, err)
	require.NoError(t, st.InsertItem(&models.Item{Name: "Layar A", CategoryID: &cat.ID}))

	found, err := st.FindItemByName("LAYAR a", nil, 0)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Layar A", found.Name)

	// scoped to another category: no match
	other, err := st.CreateCategory("Baterai", "")
	require.NoError(t, err)
	found, err = st.FindItemByName("Layar A", &other.ID, 0)
	require.NoError(t, err)
	assert.Nil(t, found)

	// excluding its own id: no match (edit-form duplicate check)
	byID, err := st.FindItemByName("Layar A", nil, 0)
	require.NoError(t, err)
	found, err = st.FindItemByName("Layar A", nil, byID.ID)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestListItemsSearchAndFilters(t *testing.T) {
	st := newTestStore(t)
	cat, err := st.CreateCategory("LCD", "")
	require.NoError(t, err)

	require.NoError(t, st.InsertItem(&models.Item{Name: "Layar A", SKU: "LCD-01", CategoryID: &cat.ID, Quantity: 10, MinStock: 5}))
	require.NoError(t, st.InsertItem(&models.Item{Name: "Baterai B", CustomID: "BT-9", Quantity: 3, MinStock: 5}))
	require.NoError(t, st.InsertItem(&models.Item{Name: "Casing C", Quantity: 0, MinStock: 5}))

	// substring search over name, sku, custom id and category name
	for _, q := range []string{"layar", "lcd-01", "bt-9", "lcd"} {
		items, err := st.ListItems(q, store.FilterAll, nil)
		require.NoError(t, err)
		assert.NotEmpty(t, items, "search %q", q)
	}

	low, err := st.ListItems("", store.FilterLow, nil)
	require.NoError(t, err)
	require.Len(t, low, 1)
	assert.Equal(t, "Baterai B", low[0].Name)

	out, err := st.ListItems("", store.FilterOut, nil)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Casing C", out[0].Name)

	in, err := st.ListItems("", store.FilterIn, nil)
	require.NoError(t, err)
	require.Len(t, in, 1)
	assert.Equal(t, "Layar A", in[0].Name)

	byCat, err := st.ListItems("", store.FilterAll, &cat.ID)
	require.NoError(t, err)
	require.Len(t, byCat, 1)
	assert.Equal(t, "LCD", byCat[0].CategoryName)
}

func TestGetStats(t *testing.T) {
	st := newTestStore(t)
	require.NoError(t, st.InsertItem(&models.Item{Name: "A", Quantity: 10, MinStock: 5, BuyPrice: decimal.NewFromInt(1000)}))
	require.NoError(t, st.InsertItem(&models.Item{Name: "B", Quantity: 2, MinStock: 5, BuyPrice: decimal.NewFromInt(500)}))
	require.NoError(t, st.InsertItem(&models.Item{Name: "C", Quantity: 0, MinStock: 5}))

	stats, err := st.GetStats()
	require.NoError(t, err)

	assert.Equal(t, int64(3), stats.TotalItems)
	assert.Equal(t, int64(1), stats.LowStock)
	assert.Equal(t, int64(1), stats.OutOfStock)
	assert.Equal(t, int64(1), stats.InStock)
	// 10*1000 + 2*500 + 0
	assert.True(t, stats.TotalValue.Equal(decimal.NewFromInt(11000)),
		"total value = %s", stats.TotalValue)
}

func TestUpdateItemLogsQuantityDiff(t *testing.T) {
	st := newTestStore(t)
	item := &models.Item{Name: "Layar A", Quantity: 8, MinStock: 5}
	require.NoError(t, st.CreateItem(item))

	// manual edit down to zero logs stock_out with the prior quantity
	updated := *item
	updated.Quantity = 0
	require.NoError(t, st.UpdateItem(item.ID, &updated))

	acts, err := st.RecentActivities(10)
	require.NoError(t, err)
	require.NotEmpty(t, acts)
	assert.Equal(t, models.ActivityStockOut, acts[0].Type)
	assert.Equal(t, 8, acts[0].QuantityChange)
}

func TestRemoveStockGuardsAgainstNegative(t *testing.T) {
	st := newTestStore(t)
	item := &models.Item{Name: "Layar A", Quantity: 3}
	require.NoError(t, st.InsertItem(item))

	err := st.RemoveStock(item.ID, 5)
	assert.ErrorIs(t, err, store.ErrInsufficientStock)

	got, err := st.GetItem(item.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Quantity)

	require.NoError(t, st.RemoveStock(item.ID, 3))
	got, err = st.GetItem(item.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Quantity)
}

func TestDeleteItemKeepsActivities(t *testing.T) {
	st := newTestStore(t)
	item := &models.Item{Name: "Layar A", Quantity: 5}
	require.NoError(t, st.CreateItem(item))
	require.NoError(t, st.DeleteItem(item.ID))

	// the audit trail survives the row, with a dangling item reference
	acts, err := st.RecentActivities(10)
	require.NoError(t, err)
	require.Len(t, acts, 2)
	assert.Equal(t, models.ActivityDelete, acts[0].Type)
	require.NotNil(t, acts[0].ItemID)
	assert.Equal(t, item.ID, *acts[0].ItemID)
	assert.Equal(t, "", acts[0].ItemName)
}

func TestAddStock(t *testing.T) {
	st := newTestStore(t)
	item := &models.Item{Name: "Layar A", Quantity: 5}
	require.NoError(t, st.InsertItem(item))

	require.NoError(t, st.AddStock(item.ID, 7, ""))
	got, err := st.GetItem(item.ID)
	require.NoError(t, err)
	assert.Equal(t, 12, got.Quantity)

	err = st.AddStock(9999, 1, "")
	assert.True(t, store.IsNotFound(err))
}

func TestSettingsUpsert(t *testing.T) {
	st := newTestStore(t)

	val, err := st.GetSetting("dark_mode")
	require.NoError(t, err)
	assert.Equal(t, "", val)

	require.NoError(t, st.SetSetting("dark_mode", "1"))
	require.NoError(t, st.SetSetting("dark_mode", "0"))

	val, err = st.GetSetting("dark_mode")
	require.NoError(t, err)
	assert.Equal(t, "0", val)
}

func TestCategoryItemCounts(t *testing.T) {
	st := newTestStore(t)
	lcd, err := st.CreateCategory("LCD", "")
	require.NoError(t, err)
	bat, err := st.CreateCategory("Baterai", "")
	require.NoError(t, err)

	require.NoError(t, st.InsertItem(&models.Item{Name: "A", CategoryID: &lcd.ID}))
	require.NoError(t, st.InsertItem(&models.Item{Name: "B", CategoryID: &lcd.ID}))
	require.NoError(t, st.InsertItem(&models.Item{Name: "C", CategoryID: &bat.ID}))
	require.NoError(t, st.InsertItem(&models.Item{Name: "D"}))

	counts, err := st.CategoryItemCounts()
	require.NoError(t, err)
	assert.Equal(t, int64(2), counts[lcd.ID])
	assert.Equal(t, int64(1), counts[bat.ID])
	assert.Len(t, counts, 2)
}
