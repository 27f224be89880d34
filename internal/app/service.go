package app

import (
	"context"

	"stockpilot/internal/core"
)

// ApplicationService is the single interface all UI adapters (REPL, CLI) call.
// It decouples presentation from business logic. Implementations must contain
// no fmt.Println, no ANSI codes, and no display logic of any kind.
type ApplicationService interface {
	// ListStock returns all stock items in insertion order.
	ListStock(ctx context.Context) (*StockListResult, error)

	// GetStockItem returns one stock item by id.
	GetStockItem(ctx context.Context, id string) (*StockItemResult, error)

	// AddStockItem creates a stock item and persists the new state.
	AddStockItem(ctx context.Context, req AddStockItemRequest) (*StockItemResult, error)

	// UpdateStockItem merges the request's set fields into the item. A
	// quantity override is a manual correction logged as an adjustment
	// movement, not a sale.
	UpdateStockItem(ctx context.Context, id string, req UpdateStockItemRequest) (*StockItemResult, error)

	// RemoveStockItem deletes the item and every sale referencing it.
	RemoveStockItem(ctx context.Context, id string) error

	// ListCustomers returns all customers in insertion order.
	ListCustomers(ctx context.Context) (*CustomerListResult, error)

	// AddCustomer creates a customer record.
	AddCustomer(ctx context.Context, req AddCustomerRequest) (*CustomerResult, error)

	// UpdateCustomer merges the request's set fields into the customer.
	UpdateCustomer(ctx context.Context, id string, req UpdateCustomerRequest) (*CustomerResult, error)

	// RemoveCustomer deletes the customer; their sales are erased and each
	// sale's quantity returns to its item's stock.
	RemoveCustomer(ctx context.Context, id string) error

	// ListSales returns the sales ledger in insertion order.
	ListSales(ctx context.Context) (*SaleListResult, error)

	// AddSale records a sale, pricing it from the item's current selling
	// price, and decrements stock. Stock sufficiency is enforced here, not
	// in the caller.
	AddSale(ctx context.Context, req AddSaleRequest) (*SaleResult, error)

	// UpdateSale edits a sale and reconciles stock with the change.
	UpdateSale(ctx context.Context, id string, req UpdateSaleRequest) (*SaleResult, error)

	// RemoveSale deletes a sale and restores its quantity to the item.
	RemoveSale(ctx context.Context, id string) error

	// GetSummary returns the dashboard headline numbers.
	GetSummary(ctx context.Context) (*SummaryResult, error)

	// GetMonthlySales returns twelve per-month revenue/unit points for a year.
	GetMonthlySales(ctx context.Context, year int) (*MonthlySalesResult, error)

	// GetCustomerPurchases returns per-customer lifetime spend, highest first.
	GetCustomerPurchases(ctx context.Context) (*CustomerPurchasesResult, error)

	// GetCategoryValues compares cost and retail value of on-hand stock per
	// category.
	GetCategoryValues(ctx context.Context) (*CategoryValuesResult, error)

	// GetRecentSales returns the n newest sales.
	GetRecentSales(ctx context.Context, n int) (*SaleListResult, error)

	// GetStockMovements returns the quantity audit trail for an item; an
	// empty id returns the full trail.
	GetStockMovements(ctx context.Context, itemID string) (*MovementListResult, error)

	// BuildInvoice computes a bill for the given lines. Pure computation;
	// it does not touch the ledger.
	BuildInvoice(ctx context.Context, req InvoiceRequest) (*core.Invoice, error)
}
