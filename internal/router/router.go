package router

import (
	"github.com/wpcellgap-cmyk/stock/internal/config"
	"github.com/wpcellgap-cmyk/stock/internal/exporter"
	"github.com/wpcellgap-cmyk/stock/internal/handler"
	"github.com/wpcellgap-cmyk/stock/internal/importer"
	"github.com/wpcellgap-cmyk/stock/internal/middleware"
	"github.com/wpcellgap-cmyk/stock/internal/store"

	"github.com/gin-gonic/gin"
)

// SetupRouter wires the gin engine with all API routes.
func SetupRouter(cfg *config.Config, st *store.Store) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(gin.Logger(), middleware.Recover())

	im := importer.New(st, cfg.App.DefaultMinStock)
	ex := exporter.New(st, cfg.Export.Dir, cfg.App.ExportHistoryLimit)

	categoryHandler := handler.NewCategoryHandler(st)
	itemHandler := handler.NewItemHandler(st)
	reportHandler := handler.NewReportHandler(st)
	activityHandler := handler.NewActivityHandler(st, cfg.App.ActivityPageSize)
	settingHandler := handler.NewSettingHandler(st)
	ieHandler := handler.NewImportExportHandler(im, ex, cfg.Import.UploadDir, cfg.Export.Dir)

	api := r.Group("/api")

	api.GET("/categories", categoryHandler.List)
	api.GET("/categories/counts", categoryHandler.ItemCounts)
	api.POST("/categories", categoryHandler.Create)
	api.PUT("/categories/:id", categoryHandler.Update)
	api.DELETE("/categories/:id", categoryHandler.Delete)

	api.GET("/items", itemHandler.List)
	api.GET("/items/low-stock", reportHandler.LowStock)
	api.GET("/items/:id", itemHandler.Get)
	api.POST("/items", itemHandler.Create)
	api.PUT("/items/:id", itemHandler.Update)
	api.DELETE("/items/:id", itemHandler.Delete)
	api.POST("/items/:id/stock-in", itemHandler.StockIn)
	api.POST("/items/:id/stock-out", itemHandler.StockOut)

	api.GET("/stats", reportHandler.Stats)
	api.GET("/activities", activityHandler.List)

	api.POST("/import", ieHandler.Import)
	api.POST("/export/csv", ieHandler.ExportCSV)
	api.POST("/export/history-csv", ieHandler.ExportHistoryCSV)
	api.POST("/export/xlsx", ieHandler.ExportXLSX)
	api.POST("/export/report-xlsx", ieHandler.ExportReportXLSX)
	api.GET("/export/download/:name", ieHandler.Download)

	api.GET("/settings/:key", settingHandler.Get)
	api.PUT("/settings/:key", settingHandler.Set)

	return r
}
