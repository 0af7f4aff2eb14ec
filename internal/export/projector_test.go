package export

import (
	"testing"

	"github.com/rkhan0192/sapienscare/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestProjectOrder(t *testing.T) {
	order := domain.Order{
		ID:            "x",
		Status:        domain.OrderStatusPending,
		Name:          "Ann",
		Email:         "a@b.com",
		Address:       "1 Rd",
		ContactNumber: "555",
		Pin:           "000",
		ProductName:   "Widget",
		Quantity:      2,
		TotalPrice:    19.98,
	}

	rec := ProjectOrder(order)

	assert.Equal(t, Record{
		Name:        "Ann",
		Email:       "a@b.com",
		Address:     "1 Rd",
		Contact:     "555",
		Pin:         "000",
		ProductName: "Widget",
		Quantity:    2,
		TotalPrice:  19.98,
	}, rec)
}

func TestProjectOrder_MissingFieldsBecomeEmptyCells(t *testing.T) {
	rec := ProjectOrder(domain.Order{ID: "x", Quantity: 1})

	assert.Equal(t, "", rec.Name)
	assert.Equal(t, "", rec.Email)
	assert.Equal(t, []string{"", "", "", "", "", "", "1", "0"}, rec.row())
}

func TestColumns_FixedSchema(t *testing.T) {
	assert.Equal(t, []string{"Name", "Email", "Address", "Contact", "Pin", "ProductName", "Quantity", "TotalPrice"}, Columns())
}
