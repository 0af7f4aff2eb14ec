package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rkhan0192/sapienscare/internal/upload"
)

type UploadHandler struct {
	signer *upload.Signer
}

type signatureResponse struct {
	Timestamp int64  `json:"timestamp"`
	Signature string `json:"signature"`
}

func NewUploadHandler(signer *upload.Signer) *UploadHandler {
	return &UploadHandler{signer: signer}
}

func (h *UploadHandler) Register(router *gin.RouterGroup) {
	router.POST("/signature", h.sign)
}

func (h *UploadHandler) sign(c *gin.Context) {
	timestamp, signature := h.signer.UploadSignature(time.Now())
	c.JSON(http.StatusOK, signatureResponse{Timestamp: timestamp, Signature: signature})
}
