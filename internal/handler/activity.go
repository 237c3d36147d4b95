package handler

import (
	"net/http"
	"strconv"

	"github.com/wpcellgap-cmyk/stock/internal/store"
	"github.com/wpcellgap-cmyk/stock/internal/util"

	"github.com/gin-gonic/gin"
)

// ActivityHandler serves the read side of the audit log.
type ActivityHandler struct {
	Store    *store.Store
	PageSize int
}

func NewActivityHandler(st *store.Store, pageSize int) *ActivityHandler {
	if pageSize <= 0 {
		pageSize = 20
	}
	return &ActivityHandler{Store: st, PageSize: pageSize}
}

func (h *ActivityHandler) List(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(h.PageSize)))
	if err != nil || limit <= 0 {
		limit = h.PageSize
	}
	if limit > 1000 {
		limit = 1000
	}

	acts, err := h.Store.RecentActivities(limit)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Gagal memuat aktivitas")
		return
	}
	util.Success(c, util.Response{"activities": acts})
}
