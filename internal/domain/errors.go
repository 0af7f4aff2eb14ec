package domain

import "errors"

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrProductNotFound   = errors.New("product not found")
	ErrInvalidTransition = errors.New("order status is final and cannot change")
	ErrPersistenceFailed = errors.New("order persistence failed")
)
