package handler

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"

	"github.com/wpcellgap-cmyk/stock/internal/exporter"
	"github.com/wpcellgap-cmyk/stock/internal/importer"
	"github.com/wpcellgap-cmyk/stock/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ImportExportHandler serves file import and the export endpoints.
type ImportExportHandler struct {
	Importer  *importer.Importer
	Exporter  *exporter.Exporter
	UploadDir string
	ExportDir string
}

func NewImportExportHandler(im *importer.Importer, ex *exporter.Exporter, uploadDir, exportDir string) *ImportExportHandler {
	return &ImportExportHandler{
		Importer:  im,
		Exporter:  ex,
		UploadDir: uploadDir,
		ExportDir: exportDir,
	}
}

// Import receives a CSV or XLSX upload and runs the bulk import pipeline.
// The upload is staged on disk under a unique name first, so a repeated
// file name cannot clobber an import still running.
func (h *ImportExportHandler) Import(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "File tidak ditemukan")
		return
	}

	if err := os.MkdirAll(h.UploadDir, 0o755); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Gagal menyiapkan direktori upload")
		return
	}
	tmpPath := filepath.Join(h.UploadDir, uuid.New().String()+filepath.Ext(file.Filename))
	if err := c.SaveUploadedFile(file, tmpPath); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Gagal menyimpan file upload")
		return
	}
	defer os.Remove(tmpPath)

	f, err := os.Open(tmpPath)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Gagal membaca file upload")
		return
	}
	defer f.Close()

	summary, err := h.Importer.ImportFile(f, filepath.Base(file.Filename))
	if err != nil {
		if errors.Is(err, importer.ErrEmptyFile) {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "File kosong atau format tidak sesuai")
		} else {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Error membaca file: "+err.Error())
		}
		return
	}

	util.Success(c, util.Response{
		"success": true,
		"message": summary.Message,
		"count":   summary.Result.Total,
		"result":  summary.Result,
	})
}

func (h *ImportExportHandler) exportWith(c *gin.Context, run func() (*exporter.FileResult, error)) {
	res, err := run()
	if err != nil {
		if errors.Is(err, exporter.ErrNoData) {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Tidak ada data untuk diekspor")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Export gagal: "+err.Error())
		}
		return
	}
	util.Success(c, util.Response{
		"success":   true,
		"message":   res.Message,
		"file_name": res.FileName,
		"path":      res.Path,
		"count":     res.Count,
	})
}

// ExportCSV writes the current item set to a CSV file.
func (h *ImportExportHandler) ExportCSV(c *gin.Context) {
	h.exportWith(c, h.Exporter.ItemsCSV)
}

// ExportHistoryCSV writes the recent activity history to a CSV file.
func (h *ImportExportHandler) ExportHistoryCSV(c *gin.Context) {
	h.exportWith(c, h.Exporter.HistoryCSV)
}

// ExportXLSX writes the current item set to a one-sheet workbook.
func (h *ImportExportHandler) ExportXLSX(c *gin.Context) {
	h.exportWith(c, h.Exporter.ItemsXLSX)
}

// ExportReportXLSX writes the full stock + history workbook.
func (h *ImportExportHandler) ExportReportXLSX(c *gin.Context) {
	h.exportWith(c, h.Exporter.ReportXLSX)
}

// Download streams a previously exported file as an attachment.
func (h *ImportExportHandler) Download(c *gin.Context) {
	// filepath.Base keeps the lookup inside the export directory
	name := filepath.Base(c.Param("name"))
	path := filepath.Join(h.ExportDir, name)
	if _, err := os.Stat(path); err != nil {
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "File tidak ditemukan")
		return
	}
	c.FileAttachment(path, name)
}
