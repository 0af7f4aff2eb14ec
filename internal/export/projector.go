package export

import "github.com/rkhan0192/sapienscare/internal/domain"

// ProjectOrder maps an order onto the export row schema. Pure field
// selection: customer fields are copied as-is (a missing field becomes an
// empty cell rather than blocking the export), id and status are dropped.
func ProjectOrder(order domain.Order) Record {
	return Record{
		Name:        order.Name,
		Email:       order.Email,
		Address:     order.Address,
		Contact:     order.ContactNumber,
		Pin:         order.Pin,
		ProductName: order.ProductName,
		Quantity:    order.Quantity,
		TotalPrice:  order.TotalPrice,
	}
}
