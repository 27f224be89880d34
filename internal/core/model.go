package core

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockItem is an inventory product record. Quantity is mutated only through
// sale operations, cascade restores, and the manual correction path in
// UpdateStockItem.
type StockItem struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Quantity     int             `json:"quantity"`
	CostPrice    decimal.Decimal `json:"cost_price"`
	SellingPrice decimal.Decimal `json:"selling_price"`
	Supplier     string          `json:"supplier"`
	AddedDate    time.Time       `json:"added_date"`
}

type Customer struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Phone    string    `json:"phone"`
	Address  string    `json:"address"`
	JoinDate time.Time `json:"join_date"`
	Avatar   string    `json:"avatar"`
}

// Sale is one ledger entry. ItemName, CustomerName and CustomerAvatar are
// denormalized copies taken at creation time; they survive later deletion of
// the referenced records. Price is the item's selling price at the time the
// sale was created or last edited.
type Sale struct {
	ID             string          `json:"id"`
	ItemID         string          `json:"item_id"`
	ItemName       string          `json:"item_name"`
	CustomerID     string          `json:"customer_id"`
	CustomerName   string          `json:"customer_name"`
	CustomerAvatar string          `json:"customer_avatar"`
	Quantity       int             `json:"quantity"`
	Price          decimal.Decimal `json:"price"`
	Discount       decimal.Decimal `json:"discount"` // percentage, 0-100
	Total          decimal.Decimal `json:"total"`
	Date           time.Time       `json:"date"`
}

type MovementKind string

const (
	// MovementSale is the deduction booked when a sale is created.
	MovementSale MovementKind = "sale"
	// MovementSaleUpdate is the net stock delta booked when a sale is edited.
	MovementSaleUpdate MovementKind = "sale_update"
	// MovementSaleReversal is the restoration booked when a sale is removed.
	MovementSaleReversal MovementKind = "sale_reversal"
	// MovementCascadeRestore is the restoration booked when a customer
	// deletion cascades over a sale.
	MovementCascadeRestore MovementKind = "cascade_restore"
	// MovementAdjustment is a manual quantity override via UpdateStockItem.
	// It bypasses sale-derived accounting and is logged so audits can tell
	// corrections apart from sale-driven changes.
	MovementAdjustment MovementKind = "adjustment"
)

// StockMovement is one entry in the quantity audit trail. Delta is signed:
// negative for deductions, positive for restorations.
type StockMovement struct {
	ItemID string       `json:"item_id"`
	Kind   MovementKind `json:"kind"`
	Delta  int          `json:"delta"`
	SaleID string       `json:"sale_id,omitempty"`
	At     time.Time    `json:"at"`
}

// Snapshot is a point-in-time copy of every collection the store owns.
// Readers (reporting, billing, persistence) operate on snapshots and never
// mutate the store through them.
type Snapshot struct {
	StockItems []StockItem     `json:"stock_items"`
	Customers  []Customer      `json:"customers"`
	Sales      []Sale          `json:"sales"`
	Movements  []StockMovement `json:"movements"`
}
