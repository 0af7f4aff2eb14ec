package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rkhan0192/sapienscare/internal/export"
)

const exportContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Downloader exposes the raw export file.
type Downloader interface {
	Download() ([]byte, error)
}

type ExportHandler struct {
	store Downloader
}

func NewExportHandler(store Downloader) *ExportHandler {
	return &ExportHandler{store: store}
}

func (h *ExportHandler) Register(router *gin.RouterGroup) {
	router.GET("/orders", h.download)
}

func (h *ExportHandler) download(c *gin.Context) {
	data, err := h.store.Download()
	if err != nil {
		if errors.Is(err, export.ErrExportNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="orders.xlsx"`)
	c.Data(http.StatusOK, exportContentType, data)
}
