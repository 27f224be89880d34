package app

import (
	"github.com/shopspring/decimal"
)

// AddStockItemRequest creates a stock item.
type AddStockItemRequest struct {
	Name         string
	Category     string
	Quantity     int
	CostPrice    decimal.Decimal
	SellingPrice decimal.Decimal
	Supplier     string
}

// UpdateStockItemRequest carries optional overrides; nil fields stay as-is.
type UpdateStockItemRequest struct {
	Name         *string
	Category     *string
	Quantity     *int
	CostPrice    *decimal.Decimal
	SellingPrice *decimal.Decimal
	Supplier     *string
}

type AddCustomerRequest struct {
	Name    string
	Email   string
	Phone   string
	Address string
}

// UpdateCustomerRequest carries optional overrides; nil fields stay as-is.
type UpdateCustomerRequest struct {
	Name    *string
	Email   *string
	Phone   *string
	Address *string
}

// AddSaleRequest records a sale. The unit price and total are computed by the
// core from the item's current selling price; callers cannot supply them.
type AddSaleRequest struct {
	ItemID     string
	CustomerID string
	Quantity   int
	Discount   decimal.Decimal // percentage, 0-100
}

// UpdateSaleRequest carries optional overrides; nil fields stay as-is.
type UpdateSaleRequest struct {
	ItemID     *string
	CustomerID *string
	Quantity   *int
	Discount   *decimal.Decimal
}

// InvoiceLineRequest is one billed position. When ItemID is set the
// description and unit price default to the item's name and current selling
// price.
type InvoiceLineRequest struct {
	ItemID      string
	Description string
	Quantity    int
	UnitPrice   *decimal.Decimal
	DiscountPct decimal.Decimal
}

// InvoiceRequest computes a bill for a customer.
type InvoiceRequest struct {
	Number           string
	CustomerID       string // optional; fills name/address from the customer record
	CustomerName     string
	CustomerAddress  string
	CGSTRate         decimal.Decimal
	SGSTRate         decimal.Decimal
	GrandDiscountPct decimal.Decimal
	Lines            []InvoiceLineRequest
}
