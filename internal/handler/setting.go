package handler

import (
	"net/http"

	"github.com/wpcellgap-cmyk/stock/internal/store"
	"github.com/wpcellgap-cmyk/stock/internal/util"

	"github.com/gin-gonic/gin"
)

// Known setting keys. Values are opaque strings; shop_identity and
// shopping_list hold JSON written by the client.
const (
	SettingDarkMode     = "dark_mode"
	SettingShopIdentity = "shop_identity"
	SettingShoppingList = "shopping_list"
)

// SettingHandler serves the key-value UI preferences.
type SettingHandler struct {
	Store *store.Store
}

func NewSettingHandler(st *store.Store) *SettingHandler {
	return &SettingHandler{Store: st}
}

type settingReq struct {
	Value string `json:"value"`
}

func (h *SettingHandler) Get(c *gin.Context) {
	key := c.Param("key")
	value, err := h.Store.GetSetting(key)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Gagal memuat pengaturan")
		return
	}
	util.Success(c, util.Response{"key": key, "value": value})
}

func (h *SettingHandler) Set(c *gin.Context) {
	key := c.Param("key")
	var req settingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Nilai pengaturan tidak valid")
		return
	}
	if err := h.Store.SetSetting(key, req.Value); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Gagal menyimpan pengaturan")
		return
	}
	util.Success(c, util.Response{"key": key, "value": req.Value})
}
