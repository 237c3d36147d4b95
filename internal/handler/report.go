package handler

import (
	"net/http"
	"strconv"

	"github.com/wpcellgap-cmyk/stock/internal/store"
	"github.com/wpcellgap-cmyk/stock/internal/util"

	"github.com/gin-gonic/gin"
)

// ReportHandler serves the dashboard statistics and low stock alerts.
type ReportHandler struct {
	Store *store.Store
}

func NewReportHandler(st *store.Store) *ReportHandler {
	return &ReportHandler{Store: st}
}

func (h *ReportHandler) Stats(c *gin.Context) {
	stats, err := h.Store.GetStats()
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Gagal memuat statistik")
		return
	}

	// stock health: share of items above their minimum
	healthPercent := 0
	if stats.TotalItems > 0 {
		healthPercent = int(float64(stats.InStock)/float64(stats.TotalItems)*100 + 0.5)
	}

	util.Success(c, util.Response{
		"stats":          stats,
		"health_percent": healthPercent,
	})
}

func (h *ReportHandler) LowStock(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	items, err := h.Store.LowStockItems(limit)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Gagal memuat peringatan stok")
		return
	}
	util.Success(c, util.Response{"items": items})
}
