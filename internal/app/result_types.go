package app

import "stockpilot/internal/core"

// StockListResult is returned by ListStock.
type StockListResult struct {
	Items []core.StockItem
}

// StockItemResult is returned by single-item operations.
type StockItemResult struct {
	Item *core.StockItem
}

// CustomerListResult is returned by ListCustomers.
type CustomerListResult struct {
	Customers []core.Customer
}

// CustomerResult is returned by single-customer operations.
type CustomerResult struct {
	Customer *core.Customer
}

// SaleListResult is returned by ListSales and GetRecentSales.
type SaleListResult struct {
	Sales []core.Sale
}

// SaleResult is returned by sale mutations.
type SaleResult struct {
	Sale *core.Sale
}

// SummaryResult is returned by GetSummary.
type SummaryResult struct {
	Summary core.Summary
}

// MonthlySalesResult is returned by GetMonthlySales.
type MonthlySalesResult struct {
	Year   int
	Points []core.MonthlyPoint
}

// CustomerPurchasesResult is returned by GetCustomerPurchases.
type CustomerPurchasesResult struct {
	Rows []core.CustomerSpend
}

// CategoryValuesResult is returned by GetCategoryValues.
type CategoryValuesResult struct {
	Rows []core.CategoryValue
}

// MovementListResult is returned by GetStockMovements.
type MovementListResult struct {
	ItemID    string
	Movements []core.StockMovement
}
