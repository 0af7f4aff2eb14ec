package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rkhan0192/sapienscare/internal/domain"
	"github.com/rkhan0192/sapienscare/internal/export"
	"github.com/rkhan0192/sapienscare/internal/service/order"
)

type OrderHandler struct {
	service order.OrderUseCase
}

type setStatusRequest struct {
	Status string `json:"status"`
}

type orderResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	Address       string  `json:"address"`
	ContactNumber string  `json:"number"`
	Pin           string  `json:"pin"`
	ProductName   string  `json:"productName"`
	Quantity      int     `json:"quantity"`
	TotalPrice    float64 `json:"totalPrice"`
	Status        string  `json:"status"`
	Exported      bool    `json:"exported"`
	CreatedAt     string  `json:"created_at"`
}

func NewOrderHandler(service order.OrderUseCase) *OrderHandler {
	return &OrderHandler{service: service}
}

func (h *OrderHandler) Register(router *gin.RouterGroup) {
	router.POST("/", h.create)
	router.GET("/", h.list)
	router.PATCH("/:id/status", h.setStatus)
	router.DELETE("/:id", h.delete)
}

func (h *OrderHandler) create(c *gin.Context) {
	var req order.CreateOrderInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.service.CreateOrder(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, toOrderResponse(created))
}

func (h *OrderHandler) list(c *gin.Context) {
	orders, err := h.service.ListOrders(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	out := make([]orderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, toOrderResponse(&orders[i]))
	}
	c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) setStatus(c *gin.Context) {
	var req setStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.service.SetStatus(c.Request.Context(), c.Param("id"), domain.OrderStatus(req.Status))
	if err != nil {
		// The status may have changed even when err is set: an export
		// failure reports the confirmed order alongside the error so the
		// caller can tell "nothing happened" from "confirmed, export
		// pending".
		if updated != nil {
			c.JSON(statusCodeFor(err), gin.H{"error": err.Error(), "order": toOrderResponse(updated)})
			return
		}
		c.JSON(statusCodeFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, toOrderResponse(updated))
}

func (h *OrderHandler) delete(c *gin.Context) {
	if err := h.service.DeleteOrder(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(statusCodeFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "order deleted"})
}

func statusCodeFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrOrderNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, export.ErrStorageWriteFailed), errors.Is(err, export.ErrStorageCorrupt):
		return http.StatusBadGateway
	case errors.Is(err, domain.ErrPersistenceFailed):
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

func toOrderResponse(o *domain.Order) orderResponse {
	return orderResponse{
		ID:            o.ID,
		Name:          o.Name,
		Email:         o.Email,
		Address:       o.Address,
		ContactNumber: o.ContactNumber,
		Pin:           o.Pin,
		ProductName:   o.ProductName,
		Quantity:      o.Quantity,
		TotalPrice:    o.TotalPrice,
		Status:        string(o.Status),
		Exported:      o.Exported,
		CreatedAt:     o.CreatedAt.Format(time.RFC3339),
	}
}
