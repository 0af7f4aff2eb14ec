package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rkhan0192/sapienscare/internal/domain"
	"github.com/rkhan0192/sapienscare/internal/service/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockCatalogUseCase is a mock implementation of catalog.CatalogUseCase
type MockCatalogUseCase struct {
	mock.Mock
}

func (m *MockCatalogUseCase) List(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockCatalogUseCase) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockCatalogUseCase) Create(ctx context.Context, input catalog.CreateProductInput) (*domain.Product, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func TestProductHandler_list(t *testing.T) {
	mockService := &MockCatalogUseCase{}
	handler := NewProductHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/products", nil)

	products := []domain.Product{
		{ID: "p1", Name: "Widget", PriceCents: 1999},
		{ID: "p2", Name: "Gadget", PriceCents: 2999},
	}
	mockService.On("List", c.Request.Context()).Return(products, nil)

	handler.list(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response []productResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Len(t, response, 2)
	assert.Equal(t, "Widget", response[0].Name)

	mockService.AssertExpectations(t)
}

func TestProductHandler_create(t *testing.T) {
	mockService := &MockCatalogUseCase{}
	handler := NewProductHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	input := catalog.CreateProductInput{Name: "Widget", PriceCents: 1999}
	body, _ := json.Marshal(input)
	c.Request = httptest.NewRequest("POST", "/products", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	created := &domain.Product{ID: "p1", Name: "Widget", PriceCents: 1999}
	mockService.On("Create", c.Request.Context(), input).Return(created, nil)

	handler.create(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response productResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "p1", response.ID)

	mockService.AssertExpectations(t)
}

func TestProductHandler_get_notFound(t *testing.T) {
	mockService := &MockCatalogUseCase{}
	handler := NewProductHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/products/missing", nil)
	c.Params = gin.Params{{Key: "id", Value: "missing"}}

	mockService.On("GetByID", c.Request.Context(), "missing").Return(nil, domain.ErrProductNotFound)

	handler.get(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockService.AssertExpectations(t)
}
