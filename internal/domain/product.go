package domain

import "time"

type Product struct {
	ID          string
	Name        string
	Description string
	PriceCents  int64
	ImageURL    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
