package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rkhan0192/sapienscare/internal/domain"
	"github.com/rkhan0192/sapienscare/internal/export"
	"github.com/rkhan0192/sapienscare/internal/service/order"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockOrderUseCase is a mock implementation of order.OrderUseCase
type MockOrderUseCase struct {
	mock.Mock
}

func (m *MockOrderUseCase) CreateOrder(ctx context.Context, input order.CreateOrderInput) (*domain.Order, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderUseCase) ListOrders(ctx context.Context) ([]domain.Order, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *MockOrderUseCase) SetStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderUseCase) DeleteOrder(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func confirmedOrder() *domain.Order {
	return &domain.Order{
		ID:            "order-1",
		Name:          "Ann",
		Email:         "a@b.com",
		Address:       "1 Rd",
		ContactNumber: "555",
		Pin:           "000",
		ProductName:   "Widget",
		Quantity:      2,
		TotalPrice:    19.98,
		Status:        domain.OrderStatusConfirmed,
		Exported:      true,
	}
}

func newStatusContext(t *testing.T, w *httptest.ResponseRecorder, id, status string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(w)

	body, _ := json.Marshal(setStatusRequest{Status: status})
	c.Request = httptest.NewRequest("PATCH", fmt.Sprintf("/orders/%s/status", id), bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: id}}
	return c
}

func TestOrderHandler_setStatus(t *testing.T) {
	mockService := &MockOrderUseCase{}
	handler := NewOrderHandler(mockService)

	w := httptest.NewRecorder()
	c := newStatusContext(t, w, "order-1", "confirmed")

	mockService.On("SetStatus", c.Request.Context(), "order-1", domain.OrderStatusConfirmed).Return(confirmedOrder(), nil)

	handler.setStatus(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response orderResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "order-1", response.ID)
	assert.Equal(t, string(domain.OrderStatusConfirmed), response.Status)
	assert.True(t, response.Exported)

	mockService.AssertExpectations(t)
}

func TestOrderHandler_setStatus_invalidTransition(t *testing.T) {
	mockService := &MockOrderUseCase{}
	handler := NewOrderHandler(mockService)

	w := httptest.NewRecorder()
	c := newStatusContext(t, w, "order-1", "confirmed")

	mockService.On("SetStatus", c.Request.Context(), "order-1", domain.OrderStatusConfirmed).Return(nil, domain.ErrInvalidTransition)

	handler.setStatus(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	mockService.AssertExpectations(t)
}

func TestOrderHandler_setStatus_notFound(t *testing.T) {
	mockService := &MockOrderUseCase{}
	handler := NewOrderHandler(mockService)

	w := httptest.NewRecorder()
	c := newStatusContext(t, w, "missing", "rejected")

	mockService.On("SetStatus", c.Request.Context(), "missing", domain.OrderStatusRejected).Return(nil, domain.ErrOrderNotFound)

	handler.setStatus(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockService.AssertExpectations(t)
}

func TestOrderHandler_setStatus_exportFailed(t *testing.T) {
	mockService := &MockOrderUseCase{}
	handler := NewOrderHandler(mockService)

	w := httptest.NewRecorder()
	c := newStatusContext(t, w, "order-1", "confirmed")

	confirmed := confirmedOrder()
	confirmed.Exported = false
	writeErr := fmt.Errorf("%w: disk full", export.ErrStorageWriteFailed)

	mockService.On("SetStatus", c.Request.Context(), "order-1", domain.OrderStatusConfirmed).Return(confirmed, writeErr)

	handler.setStatus(c)

	// The status did change; the body carries both the error and the
	// confirmed order so the caller can reconcile later.
	assert.Equal(t, http.StatusBadGateway, w.Code)

	var response struct {
		Error string        `json:"error"`
		Order orderResponse `json:"order"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.NotEmpty(t, response.Error)
	assert.Equal(t, string(domain.OrderStatusConfirmed), response.Order.Status)

	mockService.AssertExpectations(t)
}

func TestOrderHandler_create(t *testing.T) {
	mockService := &MockOrderUseCase{}
	handler := NewOrderHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	input := order.CreateOrderInput{
		Name:          "Ann",
		Email:         "a@b.com",
		Address:       "1 Rd",
		ContactNumber: "555",
		Pin:           "000",
		ProductName:   "Widget",
		Quantity:      2,
		TotalPrice:    19.98,
	}
	body, _ := json.Marshal(input)
	c.Request = httptest.NewRequest("POST", "/orders", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	created := confirmedOrder()
	created.Status = domain.OrderStatusPending
	created.Exported = false

	mockService.On("CreateOrder", c.Request.Context(), input).Return(created, nil)

	handler.create(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response orderResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "order-1", response.ID)
	assert.Equal(t, string(domain.OrderStatusPending), response.Status)

	mockService.AssertExpectations(t)
}

func TestOrderHandler_delete_notFound(t *testing.T) {
	mockService := &MockOrderUseCase{}
	handler := NewOrderHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("DELETE", "/orders/missing", nil)
	c.Params = gin.Params{{Key: "id", Value: "missing"}}

	mockService.On("DeleteOrder", c.Request.Context(), "missing").Return(domain.ErrOrderNotFound)

	handler.delete(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockService.AssertExpectations(t)
}
