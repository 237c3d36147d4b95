package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/wpcellgap-cmyk/stock/internal/models"
	"github.com/wpcellgap-cmyk/stock/internal/store"
	"github.com/wpcellgap-cmyk/stock/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// ItemHandler serves item CRUD, the duplicate-merge flow and manual stock
// movements.
type ItemHandler struct {
	Store *store.Store
}

func NewItemHandler(st *store.Store) *ItemHandler {
	return &ItemHandler{Store: st}
}

type itemReq struct {
	Name        string          `json:"name" binding:"required,max=128"`
	SKU         string          `json:"sku" binding:"max=64"`
	CustomID    string          `json:"custom_id" binding:"max=64"`
	CategoryID  *uint           `json:"category_id"`
	BuyPrice    decimal.Decimal `json:"buy_price"`
	SellPrice   decimal.Decimal `json:"sell_price"`
	Quantity    int             `json:"quantity" binding:"gte=0"`
	MinStock    int             `json:"min_stock" binding:"gte=0"`
	Description string          `json:"description" binding:"max=1024"`

	// on create: merge quantity into an existing same-named item in the
	// same category instead of rejecting the duplicate
	MergeDuplicate bool `json:"merge_duplicate"`
}

func (r *itemReq) toModel() *models.Item {
	return &models.Item{
		Name:        strings.TrimSpace(r.Name),
		SKU:         strings.TrimSpace(r.SKU),
		CustomID:    strings.TrimSpace(r.CustomID),
		CategoryID:  r.CategoryID,
		BuyPrice:    r.BuyPrice,
		SellPrice:   r.SellPrice,
		Quantity:    r.Quantity,
		MinStock:    r.MinStock,
		Description: strings.TrimSpace(r.Description),
	}
}

func (h *ItemHandler) bindItemReq(c *gin.Context) (*itemReq, bool) {
	var req itemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Nama item wajib diisi")
		return nil, false
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Nama item wajib diisi")
		return nil, false
	}
	if req.BuyPrice.IsNegative() || req.SellPrice.IsNegative() {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Harga tidak boleh negatif")
		return nil, false
	}
	return &req, true
}

func (h *ItemHandler) List(c *gin.Context) {
	search := c.Query("search")
	filter := c.DefaultQuery("filter", store.FilterAll)

	var categoryID *uint
	if s := c.Query("category_id"); s != "" {
		id, err := strconv.Atoi(s)
		if err != nil || id <= 0 {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "category_id tidak valid")
			return
		}
		u := uint(id)
		categoryID = &u
	}

	items, err := h.Store.ListItems(search, filter, categoryID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Gagal memuat item")
		return
	}
	util.Success(c, util.Response{"items": items, "total": len(items)})
}

func (h *ItemHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "ID tidak valid")
		return
	}
	item, err := h.Store.GetItem(uint(id))
	if err != nil {
		if store.IsNotFound(err) {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "Item tidak ditemukan")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Gagal memuat item")
		}
		return
	}
	util.Success(c, util.Response{"item": item})
}

// Create adds a new item. A name already used inside the same category is
// reported as a conflict with the existing record, unless the caller asked
// to merge, in which case the quantity is added to the existing item.
func (h *ItemHandler) Create(c *gin.Context) {
	req, ok := h.bindItemReq(c)
	if !ok {
		return
	}

	existing, err := h.Store.FindItemByName(req.Name, req.CategoryID, 0)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Gagal memeriksa duplikat")
		return
	}
	if existing != nil {
		if !req.MergeDuplicate {
			c.JSON(http.StatusConflict, gin.H{
				"code":     util.CodeConflict,
				"message":  fmt.Sprintf("Item %q sudah ada di kategori ini", existing.Name),
				"existing": existing,
			})
			return
		}
		note := fmt.Sprintf("Tambah stok %d (item duplikat)", req.Quantity)
		if err := h.Store.AddStock(existing.ID, req.Quantity, note); err != nil {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Gagal menambah stok")
			return
		}
		merged, err := h.Store.GetItem(existing.ID)
		if err != nil {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Gagal memuat item")
			return
		}
		util.Success(c, util.Response{
			"item":    merged,
			"merged":  true,
			"message": "Stok ditambahkan ke item yang sudah ada",
		})
		return
	}

	item := req.toModel()
	if err := h.Store.CreateItem(item); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Gagal menyimpan item")
		return
	}
	util.Success(c, util.Response{"item": item})
}

func (h *ItemHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "ID tidak valid")
		return
	}
	req, ok := h.bindItemReq(c)
	if !ok {
		return
	}

	existing, err := h.Store.FindItemByName(req.Name, req.CategoryID, uint(id))
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Gagal memeriksa duplikat")
		return
	}
	if existing != nil {
		c.JSON(http.StatusConflict, gin.H{
			"code":     util.CodeConflict,
			"message":  fmt.Sprintf("Item %q sudah ada di kategori ini", existing.Name),
			"existing": existing,
		})
		return
	}

	if err := h.Store.UpdateItem(uint(id), req.toModel()); err != nil {
		if store.IsNotFound(err) {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "Item tidak ditemukan")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Gagal menyimpan item")
		}
		return
	}
	item, err := h.Store.GetItem(uint(id))
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Gagal memuat item")
		return
	}
	util.Success(c, util.Response{"item": item})
}

func (h *ItemHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "ID tidak valid")
		return
	}
	if err := h.Store.DeleteItem(uint(id)); err != nil {
		if store.IsNotFound(err) {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "Item tidak ditemukan")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Gagal menghapus item")
		}
		return
	}
	util.Success(c, util.Response{"message": "Item dihapus"})
}

type stockMoveReq struct {
	Quantity int `json:"quantity" binding:"required,gt=0"`
}

// StockIn records incoming goods for one item.
func (h *ItemHandler) StockIn(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "ID tidak valid")
		return
	}
	var req stockMoveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Jumlah harus lebih dari 0")
		return
	}
	if err := h.Store.AddStock(uint(id), req.Quantity, ""); err != nil {
		if store.IsNotFound(err) {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "Item tidak ditemukan")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Gagal menambah stok")
		}
		return
	}
	util.Success(c, util.Response{"message": "Stok berhasil diperbarui"})
}

// StockOut records outgoing goods. It never pushes quantity below zero.
func (h *ItemHandler) StockOut(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "ID tidak valid")
		return
	}
	var req stockMoveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Jumlah harus lebih dari 0")
		return
	}
	if err := h.Store.RemoveStock(uint(id), req.Quantity); err != nil {
		switch {
		case errors.Is(err, store.ErrInsufficientStock):
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Stok tidak cukup: "+err.Error())
		case store.IsNotFound(err):
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "Item tidak ditemukan")
		default:
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Gagal mengurangi stok")
		}
		return
	}
	util.Success(c, util.Response{"message": "Stok berhasil diperbarui"})
}
