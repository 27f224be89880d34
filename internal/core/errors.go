package core

import "errors"

var (
	// ErrStockItemNotFound is returned when an operation references a stock
	// item id absent from the store.
	ErrStockItemNotFound = errors.New("stock item not found")

	// ErrCustomerNotFound is returned when an operation references a customer
	// id absent from the store.
	ErrCustomerNotFound = errors.New("customer not found")

	// ErrSaleNotFound is returned when an operation references a sale id
	// absent from the store.
	ErrSaleNotFound = errors.New("sale not found")

	// ErrInsufficientStock is returned when a sale would drive an item's
	// on-hand quantity below zero.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrValidation is returned (wrapped, with detail) when an input is
	// missing required fields or carries out-of-range values.
	ErrValidation = errors.New("validation failed")
)
