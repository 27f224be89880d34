package core

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Store owns the three ledger collections (stock items, customers, sales) and
// every mutating operation over them. Completing any mutation leaves stock
// quantities consistent with the sales ledger: for every item,
//
//	quantity_now = quantity_baseline - sum(quantity of existing sales for it)
//
// where the baseline moves only through the explicit correction path in
// UpdateStockItem or a cascade documented on the operation.
//
// All operations run under one mutex; a mutation is fully applied or not
// applied at all, and is visible to every reader as soon as it returns.
type Store struct {
	mu        sync.Mutex
	items     []StockItem
	customers []Customer
	sales     []Sale
	movements []StockMovement

	itemSeq     int
	customerSeq int
	saleSeq     int
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// NewStoreFromSnapshot restores a store from a previously saved snapshot.
// Id counters resume past the highest numeric suffix seen in each collection,
// so restored stores never reissue an id.
func NewStoreFromSnapshot(snap *Snapshot) *Store {
	s := &Store{}
	if snap == nil {
		return s
	}
	s.items = append(s.items, snap.StockItems...)
	s.customers = append(s.customers, snap.Customers...)
	s.sales = append(s.sales, snap.Sales...)
	s.movements = append(s.movements, snap.Movements...)
	for _, it := range s.items {
		s.itemSeq = max(s.itemSeq, idSuffix(it.ID))
	}
	for _, c := range s.customers {
		s.customerSeq = max(s.customerSeq, idSuffix(c.ID))
	}
	for _, sl := range s.sales {
		s.saleSeq = max(s.saleSeq, idSuffix(sl.ID))
	}
	return s
}

// idSuffix parses the trailing digits of an id like "STK017". Returns 0 for
// ids with no numeric suffix.
func idSuffix(id string) int {
	i := len(id)
	for i > 0 && id[i-1] >= '0' && id[i-1] <= '9' {
		i--
	}
	n, err := strconv.Atoi(id[i:])
	if err != nil {
		return 0
	}
	return n
}

func formatID(prefix string, n int) string {
	return fmt.Sprintf("%s%03d", prefix, n)
}

// SaleTotal computes price * quantity * (1 - discount/100) with exact decimal
// arithmetic. Discount is a percentage in [0, 100].
func SaleTotal(price decimal.Decimal, quantity int, discount decimal.Decimal) decimal.Decimal {
	gross := price.Mul(decimal.NewFromInt(int64(quantity)))
	if discount.IsZero() {
		return gross
	}
	factor := decimal.NewFromInt(1).Sub(discount.Div(decimal.NewFromInt(100)))
	return gross.Mul(factor)
}

// ── Stock items ───────────────────────────────────────────────────────────────

type StockItemInput struct {
	Name         string
	Category     string
	Quantity     int
	CostPrice    decimal.Decimal
	SellingPrice decimal.Decimal
	Supplier     string
}

// StockItemPatch carries optional field overrides for UpdateStockItem.
// Nil fields are left unchanged.
type StockItemPatch struct {
	Name         *string
	Category     *string
	Quantity     *int
	CostPrice    *decimal.Decimal
	SellingPrice *decimal.Decimal
	Supplier     *string
}

func (in StockItemInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("%w: item name is required", ErrValidation)
	}
	if strings.TrimSpace(in.Category) == "" {
		return fmt.Errorf("%w: item category is required", ErrValidation)
	}
	if in.Quantity < 0 {
		return fmt.Errorf("%w: quantity must not be negative", ErrValidation)
	}
	if in.CostPrice.IsNegative() || in.SellingPrice.IsNegative() {
		return fmt.Errorf("%w: prices must not be negative", ErrValidation)
	}
	return nil
}

// AddStockItem creates a stock item with a fresh id and the current date.
func (s *Store) AddStockItem(in StockItemInput) (*StockItem, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.itemSeq++
	item := StockItem{
		ID:           formatID("STK", s.itemSeq),
		Name:         in.Name,
		Category:     in.Category,
		Quantity:     in.Quantity,
		CostPrice:    in.CostPrice,
		SellingPrice: in.SellingPrice,
		Supplier:     in.Supplier,
		AddedDate:    time.Now().UTC(),
	}
	s.items = append(s.items, item)
	return &item, nil
}

// UpdateStockItem merges the patch into the item matching id. A quantity
// override here is a manual correction: it moves the item's baseline without
// touching the sales ledger, and is logged as a MovementAdjustment so audits
// can tell it apart from sale-driven changes.
func (s *Store) UpdateStockItem(id string, patch StockItemPatch) (*StockItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.itemIndex(id)
	if idx < 0 {
		return nil, fmt.Errorf("stock item %s: %w", id, ErrStockItemNotFound)
	}
	item := &s.items[idx]

	if patch.Quantity != nil && *patch.Quantity < 0 {
		return nil, fmt.Errorf("%w: quantity must not be negative", ErrValidation)
	}

	if patch.Name != nil {
		item.Name = *patch.Name
	}
	if patch.Category != nil {
		item.Category = *patch.Category
	}
	if patch.CostPrice != nil {
		item.CostPrice = *patch.CostPrice
	}
	if patch.SellingPrice != nil {
		item.SellingPrice = *patch.SellingPrice
	}
	if patch.Supplier != nil {
		item.Supplier = *patch.Supplier
	}
	if patch.Quantity != nil && *patch.Quantity != item.Quantity {
		s.logMovement(item.ID, MovementAdjustment, *patch.Quantity-item.Quantity, "")
		item.Quantity = *patch.Quantity
	}

	out := *item
	return &out, nil
}

// RemoveStockItem deletes the item and cascades over the sales ledger: every
// sale referencing the item is deleted with it. No stock is restored — the
// item the quantity would return to no longer exists. Deletion here means
// erasure of the records, not a refund.
func (s *Store) RemoveStockItem(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.itemIndex(id)
	if idx < 0 {
		return fmt.Errorf("stock item %s: %w", id, ErrStockItemNotFound)
	}
	s.items = append(s.items[:idx], s.items[idx+1:]...)

	kept := s.sales[:0]
	for _, sl := range s.sales {
		if sl.ItemID != id {
			kept = append(kept, sl)
		}
	}
	s.sales = kept
	return nil
}

// ── Customers ─────────────────────────────────────────────────────────────────

type CustomerInput struct {
	Name    string
	Email   string
	Phone   string
	Address string
}

// CustomerPatch carries optional field overrides for UpdateCustomer.
type CustomerPatch struct {
	Name    *string
	Email   *string
	Phone   *string
	Address *string
}

// AddCustomer creates a customer with a fresh id, the current join date, and
// a generated avatar reference.
func (s *Store) AddCustomer(in CustomerInput) (*Customer, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: customer name is required", ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.customerSeq++
	c := Customer{
		ID:       formatID("CUS", s.customerSeq),
		Name:     in.Name,
		Email:    in.Email,
		Phone:    in.Phone,
		Address:  in.Address,
		JoinDate: time.Now().UTC(),
		Avatar:   "https://i.pravatar.cc/40?u=" + uuid.NewString(),
	}
	s.customers = append(s.customers, c)
	return &c, nil
}

func (s *Store) UpdateCustomer(id string, patch CustomerPatch) (*Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.customerIndex(id)
	if idx < 0 {
		return nil, fmt.Errorf("customer %s: %w", id, ErrCustomerNotFound)
	}
	c := &s.customers[idx]

	if patch.Name != nil {
		c.Name = *patch.Name
	}
	if patch.Email != nil {
		c.Email = *patch.Email
	}
	if patch.Phone != nil {
		c.Phone = *patch.Phone
	}
	if patch.Address != nil {
		c.Address = *patch.Address
	}

	out := *c
	return &out, nil
}

// RemoveCustomer deletes the customer and cascades over the sales ledger:
// every sale for the customer is deleted, and each deleted sale's quantity is
// restored to its item when the item still exists. The records are erased but
// the goods return to the shelf, so surviving items keep the conservation
// invariant.
func (s *Store) RemoveCustomer(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.customerIndex(id)
	if idx < 0 {
		return fmt.Errorf("customer %s: %w", id, ErrCustomerNotFound)
	}
	s.customers = append(s.customers[:idx], s.customers[idx+1:]...)

	kept := s.sales[:0]
	for _, sl := range s.sales {
		if sl.CustomerID != id {
			kept = append(kept, sl)
			continue
		}
		if i := s.itemIndex(sl.ItemID); i >= 0 {
			s.items[i].Quantity += sl.Quantity
			s.logMovement(sl.ItemID, MovementCascadeRestore, sl.Quantity, sl.ID)
		}
	}
	s.sales = kept
	return nil
}

// ── Sales ─────────────────────────────────────────────────────────────────────

type SaleInput struct {
	ItemID     string
	CustomerID string
	Quantity   int
	Discount   decimal.Decimal // percentage, 0-100
}

// SalePatch carries optional field overrides for UpdateSale.
type SalePatch struct {
	ItemID     *string
	CustomerID *string
	Quantity   *int
	Discount   *decimal.Decimal
}

func validateSaleTerms(quantity int, discount decimal.Decimal) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: sale quantity must be positive", ErrValidation)
	}
	if discount.IsNegative() || discount.GreaterThan(decimal.NewFromInt(100)) {
		return fmt.Errorf("%w: discount must be between 0 and 100", ErrValidation)
	}
	return nil
}

// AddSale appends a sale and decrements the referenced item's stock. The
// unit price is taken from the item's current selling price and the total is
// computed here; callers cannot supply either. Fails with
// ErrInsufficientStock rather than driving stock negative.
func (s *Store) AddSale(in SaleInput) (*Sale, error) {
	if err := validateSaleTerms(in.Quantity, in.Discount); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	itemIdx := s.itemIndex(in.ItemID)
	if itemIdx < 0 {
		return nil, fmt.Errorf("sale of item %s: %w", in.ItemID, ErrStockItemNotFound)
	}
	custIdx := s.customerIndex(in.CustomerID)
	if custIdx < 0 {
		return nil, fmt.Errorf("sale to customer %s: %w", in.CustomerID, ErrCustomerNotFound)
	}

	item := &s.items[itemIdx]
	if item.Quantity < in.Quantity {
		return nil, fmt.Errorf("item %s has %d on hand, need %d: %w",
			item.ID, item.Quantity, in.Quantity, ErrInsufficientStock)
	}
	cust := s.customers[custIdx]

	s.saleSeq++
	price := item.SellingPrice
	sale := Sale{
		ID:             formatID("SALE", s.saleSeq),
		ItemID:         item.ID,
		ItemName:       item.Name,
		CustomerID:     cust.ID,
		CustomerName:   cust.Name,
		CustomerAvatar: cust.Avatar,
		Quantity:       in.Quantity,
		Price:          price,
		Discount:       in.Discount,
		Total:          SaleTotal(price, in.Quantity, in.Discount),
		Date:           time.Now().UTC(),
	}
	s.sales = append(s.sales, sale)

	item.Quantity -= in.Quantity
	s.logMovement(item.ID, MovementSale, -in.Quantity, sale.ID)
	return &sale, nil
}

// UpdateSale merges the patch into the sale matching id, recomputes price and
// total, and reconciles stock:
//
//   - item reference changed: the full original quantity is restored to the
//     old item, then the new quantity is deducted from the new item;
//   - item reference unchanged: the item's quantity moves by
//     (original - new), inverse to the quantity delta.
//
// The price is re-read from the referenced item's current selling price,
// falling back to the sale's stored price when the item cannot be found
// (possible only for snapshots restored with dangling references, since item
// deletion cascades). All checks run before any state changes, so a failed
// update leaves stock untouched.
func (s *Store) UpdateSale(id string, patch SalePatch) (*Sale, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	saleIdx := s.saleIndex(id)
	if saleIdx < 0 {
		return nil, fmt.Errorf("sale %s: %w", id, ErrSaleNotFound)
	}
	original := s.sales[saleIdx]

	merged := original
	if patch.ItemID != nil {
		merged.ItemID = *patch.ItemID
	}
	if patch.CustomerID != nil {
		merged.CustomerID = *patch.CustomerID
	}
	if patch.Quantity != nil {
		merged.Quantity = *patch.Quantity
	}
	if patch.Discount != nil {
		merged.Discount = *patch.Discount
	}
	if err := validateSaleTerms(merged.Quantity, merged.Discount); err != nil {
		return nil, err
	}

	if patch.CustomerID != nil && merged.CustomerID != original.CustomerID {
		ci := s.customerIndex(merged.CustomerID)
		if ci < 0 {
			return nil, fmt.Errorf("sale to customer %s: %w", merged.CustomerID, ErrCustomerNotFound)
		}
		merged.CustomerName = s.customers[ci].Name
		merged.CustomerAvatar = s.customers[ci].Avatar
	}

	itemChanged := merged.ItemID != original.ItemID
	newItemIdx := s.itemIndex(merged.ItemID)
	if itemChanged && newItemIdx < 0 {
		return nil, fmt.Errorf("sale of item %s: %w", merged.ItemID, ErrStockItemNotFound)
	}

	price := original.Price
	if newItemIdx >= 0 {
		price = s.items[newItemIdx].SellingPrice
		merged.ItemName = s.items[newItemIdx].Name
	}

	// Validate stock sufficiency before applying any change.
	if itemChanged {
		if s.items[newItemIdx].Quantity < merged.Quantity {
			return nil, fmt.Errorf("item %s has %d on hand, need %d: %w",
				merged.ItemID, s.items[newItemIdx].Quantity, merged.Quantity, ErrInsufficientStock)
		}
	} else if newItemIdx >= 0 {
		delta := original.Quantity - merged.Quantity
		if s.items[newItemIdx].Quantity+delta < 0 {
			return nil, fmt.Errorf("item %s has %d on hand, need %d more: %w",
				merged.ItemID, s.items[newItemIdx].Quantity, -delta, ErrInsufficientStock)
		}
	}

	// Reconcile stock.
	if itemChanged {
		if oldIdx := s.itemIndex(original.ItemID); oldIdx >= 0 {
			s.items[oldIdx].Quantity += original.Quantity
			s.logMovement(original.ItemID, MovementSaleUpdate, original.Quantity, original.ID)
		}
		s.items[newItemIdx].Quantity -= merged.Quantity
		s.logMovement(merged.ItemID, MovementSaleUpdate, -merged.Quantity, original.ID)
	} else if newItemIdx >= 0 {
		if delta := original.Quantity - merged.Quantity; delta != 0 {
			s.items[newItemIdx].Quantity += delta
			s.logMovement(merged.ItemID, MovementSaleUpdate, delta, original.ID)
		}
	}

	merged.Price = price
	merged.Total = SaleTotal(price, merged.Quantity, merged.Discount)
	s.sales[saleIdx] = merged

	out := merged
	return &out, nil
}

// RemoveSale deletes the sale and restores its quantity to the referenced
// item. The item and quantity are taken from the stored record, never from
// the caller. A second call for the same id returns ErrSaleNotFound and
// leaves stock unchanged.
func (s *Store) RemoveSale(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.saleIndex(id)
	if idx < 0 {
		return fmt.Errorf("sale %s: %w", id, ErrSaleNotFound)
	}
	sale := s.sales[idx]
	s.sales = append(s.sales[:idx], s.sales[idx+1:]...)

	if i := s.itemIndex(sale.ItemID); i >= 0 {
		s.items[i].Quantity += sale.Quantity
		s.logMovement(sale.ItemID, MovementSaleReversal, sale.Quantity, sale.ID)
	}
	return nil
}

// ── Read side ─────────────────────────────────────────────────────────────────

// StockItems returns a copy of the stock collection in insertion order.
func (s *Store) StockItems() []StockItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]StockItem(nil), s.items...)
}

// Customers returns a copy of the customer collection in insertion order.
func (s *Store) Customers() []Customer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Customer(nil), s.customers...)
}

// Sales returns a copy of the sales ledger in insertion order.
func (s *Store) Sales() []Sale {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Sale(nil), s.sales...)
}

// StockItem returns the item matching id.
func (s *Store) StockItem(id string) (*StockItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if idx := s.itemIndex(id); idx >= 0 {
		out := s.items[idx]
		return &out, nil
	}
	return nil, fmt.Errorf("stock item %s: %w", id, ErrStockItemNotFound)
}

// Customer returns the customer matching id.
func (s *Store) Customer(id string) (*Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if idx := s.customerIndex(id); idx >= 0 {
		out := s.customers[idx]
		return &out, nil
	}
	return nil, fmt.Errorf("customer %s: %w", id, ErrCustomerNotFound)
}

// Sale returns the sale matching id.
func (s *Store) Sale(id string) (*Sale, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if idx := s.saleIndex(id); idx >= 0 {
		out := s.sales[idx]
		return &out, nil
	}
	return nil, fmt.Errorf("sale %s: %w", id, ErrSaleNotFound)
}

// Movements returns the audit trail for one item, oldest first. An empty
// itemID returns the full trail.
func (s *Store) Movements(itemID string) []StockMovement {
	s.mu.Lock()
	defer s.mu.Unlock()
	if itemID == "" {
		return append([]StockMovement(nil), s.movements...)
	}
	var out []StockMovement
	for _, m := range s.movements {
		if m.ItemID == itemID {
			out = append(out, m)
		}
	}
	return out
}

// Snapshot returns a deep-enough copy of all collections for persistence and
// reporting.
func (s *Store) Snapshot() *Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return &Snapshot{
		StockItems: append([]StockItem(nil), s.items...),
		Customers:  append([]Customer(nil), s.customers...),
		Sales:      append([]Sale(nil), s.sales...),
		Movements:  append([]StockMovement(nil), s.movements...),
	}
}

// ── internals (callers hold s.mu) ─────────────────────────────────────────────

func (s *Store) itemIndex(id string) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) customerIndex(id string) int {
	for i := range s.customers {
		if s.customers[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) saleIndex(id string) int {
	for i := range s.sales {
		if s.sales[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) logMovement(itemID string, kind MovementKind, delta int, saleID string) {
	s.movements = append(s.movements, StockMovement{
		ItemID: itemID,
		Kind:   kind,
		Delta:  delta,
		SaleID: saleID,
		At:     time.Now().UTC(),
	})
}
