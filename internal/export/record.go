package export

import "strconv"

// Record is one row of the orders export: a flat, denormalized view of a
// confirmed order. It carries no order id and no status; the export file is
// an append-only log for fulfillment and accounting, not a mirror of the
// orders table.
type Record struct {
	Name        string
	Email       string
	Address     string
	Contact     string
	Pin         string
	ProductName string
	Quantity    int
	TotalPrice  float64
}

// Columns is the fixed header of the export sheet, in display order.
func Columns() []string {
	return []string{"Name", "Email", "Address", "Contact", "Pin", "ProductName", "Quantity", "TotalPrice"}
}

// wideColumns get a wider display width than the rest.
var wideColumns = map[string]bool{
	"Name":    true,
	"Email":   true,
	"Address": true,
}

func (r Record) row() []string {
	return []string{
		r.Name,
		r.Email,
		r.Address,
		r.Contact,
		r.Pin,
		r.ProductName,
		strconv.Itoa(r.Quantity),
		strconv.FormatFloat(r.TotalPrice, 'f', -1, 64),
	}
}
