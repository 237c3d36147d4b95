package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/wpcellgap-cmyk/stock/internal/store"
	"github.com/wpcellgap-cmyk/stock/internal/util"

	"github.com/gin-gonic/gin"
)

// CategoryHandler serves category CRUD.
type CategoryHandler struct {
	Store *store.Store
}

func NewCategoryHandler(st *store.Store) *CategoryHandler {
	return &CategoryHandler{Store: st}
}

type categoryReq struct {
	Name string `json:"name" binding:"required,max=64"`
	Icon string `json:"icon" binding:"max=64"`
}

func (h *CategoryHandler) List(c *gin.Context) {
	cats, err := h.Store.ListCategories()
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Gagal memuat kategori")
		return
	}
	util.Success(c, util.Response{"categories": cats})
}

func (h *CategoryHandler) ItemCounts(c *gin.Context) {
	counts, err := h.Store.CategoryItemCounts()
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Gagal memuat jumlah item")
		return
	}
	util.Success(c, util.Response{"counts": counts})
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var req categoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Nama kategori wajib diisi")
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Nama kategori wajib diisi")
		return
	}

	cat, err := h.Store.CreateCategory(req.Name, req.Icon)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Gagal menyimpan kategori")
		return
	}
	util.Success(c, util.Response{"category": cat})
}

func (h *CategoryHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "ID tidak valid")
		return
	}

	var req categoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Nama kategori wajib diisi")
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Nama kategori wajib diisi")
		return
	}

	if err := h.Store.UpdateCategory(uint(id), req.Name, req.Icon); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Gagal menyimpan kategori")
		return
	}
	util.Success(c, util.Response{"message": "Kategori diperbarui"})
}

// Delete removes a category. Linked items survive with a null category.
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "ID tidak valid")
		return
	}
	if err := h.Store.DeleteCategory(uint(id)); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Gagal menghapus kategori")
		return
	}
	util.Success(c, util.Response{"message": "Kategori dihapus"})
}
