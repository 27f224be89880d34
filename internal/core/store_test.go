package core_test

import (
	"errors"
	"testing"

	"stockpilot/internal/core"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func ptr[T any](v T) *T { return &v }

// newTestStore builds a store with two items and two customers.
func newTestStore(t *testing.T, qtyA, qtyB int) (*core.Store, *core.StockItem, *core.StockItem, *core.Customer) {
	t.Helper()
	s := core.NewStore()

	itemA, err := s.AddStockItem(core.StockItemInput{
		Name: "Wireless Mouse", Category: "Electronics", Quantity: qtyA,
		CostPrice: dec("14.00"), SellingPrice: dec("25.99"), Supplier: "TechGear Inc.",
	})
	if err != nil {
		t.Fatalf("AddStockItem A: %v", err)
	}
	itemB, err := s.AddStockItem(core.StockItemInput{
		Name: "Mechanical Keyboard", Category: "Electronics", Quantity: qtyB,
		CostPrice: dec("70.00"), SellingPrice: dec("120.00"), Supplier: "GamerZChoice",
	})
	if err != nil {
		t.Fatalf("AddStockItem B: %v", err)
	}
	cust, err := s.AddCustomer(core.CustomerInput{Name: "KOUSIK AGASTI", Email: "kousik.a@example.com"})
	if err != nil {
		t.Fatalf("AddCustomer: %v", err)
	}
	return s, itemA, itemB, cust
}

func itemQty(t *testing.T, s *core.Store, id string) int {
	t.Helper()
	it, err := s.StockItem(id)
	if err != nil {
		t.Fatalf("StockItem %s: %v", id, err)
	}
	return it.Quantity
}

func TestSaleTotal(t *testing.T) {
	tests := []struct {
		name     string
		price    string
		quantity int
		discount string
		want     string
	}{
		{"no discount", "100", 2, "0", "200"},
		{"ten percent", "100", 2, "10", "180"},
		{"full discount", "50", 3, "100", "0"},
		{"fractional price", "25.99", 2, "0", "51.98"},
		{"five percent", "45.00", 1, "5", "42.75"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := core.SaleTotal(dec(tt.price), tt.quantity, dec(tt.discount))
			if !got.Equal(dec(tt.want)) {
				t.Errorf("SaleTotal(%s, %d, %s) = %s, want %s",
					tt.price, tt.quantity, tt.discount, got, tt.want)
			}
		})
	}
}

func TestAddSale_DecrementsStockAndComputesTotal(t *testing.T) {
	s, itemA, _, cust := newTestStore(t, 45, 20)

	sale, err := s.AddSale(core.SaleInput{
		ItemID: itemA.ID, CustomerID: cust.ID, Quantity: 2, Discount: decimal.Zero,
	})
	if err != nil {
		t.Fatalf("AddSale: %v", err)
	}

	if got := itemQty(t, s, itemA.ID); got != 43 {
		t.Errorf("stock after sale = %d, want 43", got)
	}
	if !sale.Price.Equal(dec("25.99")) {
		t.Errorf("sale price = %s, want item selling price 25.99", sale.Price)
	}
	if !sale.Total.Equal(dec("51.98")) {
		t.Errorf("sale total = %s, want 51.98", sale.Total)
	}
	if sale.ItemName != "Wireless Mouse" || sale.CustomerName != "KOUSIK AGASTI" {
		t.Errorf("denormalized names = %q/%q", sale.ItemName, sale.CustomerName)
	}
}

func TestAddSale_Errors(t *testing.T) {
	s, itemA, _, cust := newTestStore(t, 5, 20)

	if _, err := s.AddSale(core.SaleInput{ItemID: "STK999", CustomerID: cust.ID, Quantity: 1}); !errors.Is(err, core.ErrStockItemNotFound) {
		t.Errorf("unknown item: got %v, want ErrStockItemNotFound", err)
	}
	if _, err := s.AddSale(core.SaleInput{ItemID: itemA.ID, CustomerID: "CUS999", Quantity: 1}); !errors.Is(err, core.ErrCustomerNotFound) {
		t.Errorf("unknown customer: got %v, want ErrCustomerNotFound", err)
	}
	if _, err := s.AddSale(core.SaleInput{ItemID: itemA.ID, CustomerID: cust.ID, Quantity: 6}); !errors.Is(err, core.ErrInsufficientStock) {
		t.Errorf("oversell: got %v, want ErrInsufficientStock", err)
	}
	if _, err := s.AddSale(core.SaleInput{ItemID: itemA.ID, CustomerID: cust.ID, Quantity: 0}); !errors.Is(err, core.ErrValidation) {
		t.Errorf("zero quantity: got %v, want ErrValidation", err)
	}
	if _, err := s.AddSale(core.SaleInput{ItemID: itemA.ID, CustomerID: cust.ID, Quantity: 1, Discount: dec("101")}); !errors.Is(err, core.ErrValidation) {
		t.Errorf("discount > 100: got %v, want ErrValidation", err)
	}

	// Failed attempts must not move stock.
	if got := itemQty(t, s, itemA.ID); got != 5 {
		t.Errorf("stock after failed sales = %d, want 5", got)
	}
}

func TestUpdateSale_QuantityReconciliation(t *testing.T) {
	// Baseline 12, sale of 2 leaves 10. Raising the sale to 5 must leave 7.
	s, _, _, cust := newTestStore(t, 45, 20)
	item, err := s.AddStockItem(core.StockItemInput{
		Name: "Yoga Mat", Category: "Sports", Quantity: 12,
		CostPrice: dec("18.00"), SellingPrice: dec("30.00"), Supplier: "FitLife",
	})
	if err != nil {
		t.Fatalf("AddStockItem: %v", err)
	}

	sale, err := s.AddSale(core.SaleInput{ItemID: item.ID, CustomerID: cust.ID, Quantity: 2})
	if err != nil {
		t.Fatalf("AddSale: %v", err)
	}
	if got := itemQty(t, s, item.ID); got != 10 {
		t.Fatalf("stock after sale = %d, want 10", got)
	}

	// Bump the selling price before the update: the sale must be re-priced
	// from the item's current selling price.
	if _, err := s.UpdateStockItem(item.ID, core.StockItemPatch{SellingPrice: ptr(dec("35.00"))}); err != nil {
		t.Fatalf("UpdateStockItem: %v", err)
	}

	updated, err := s.UpdateSale(sale.ID, core.SalePatch{Quantity: ptr(5)})
	if err != nil {
		t.Fatalf("UpdateSale: %v", err)
	}
	if got := itemQty(t, s, item.ID); got != 7 {
		t.Errorf("stock after update = %d, want 7", got)
	}
	if !updated.Price.Equal(dec("35.00")) {
		t.Errorf("updated price = %s, want current selling price 35.00", updated.Price)
	}
	if !updated.Total.Equal(dec("175.00")) {
		t.Errorf("updated total = %s, want 175.00", updated.Total)
	}

	// Lowering the quantity restores stock.
	if _, err := s.UpdateSale(sale.ID, core.SalePatch{Quantity: ptr(1)}); err != nil {
		t.Fatalf("UpdateSale down: %v", err)
	}
	if got := itemQty(t, s, item.ID); got != 11 {
		t.Errorf("stock after lowering = %d, want 11", got)
	}
}

func TestUpdateSale_ItemChangeReconciliation(t *testing.T) {
	// Sale of 3 against A (baseline 20, current 17); B at 30. Moving the sale
	// to B must restore A to 20 and reduce B to 27.
	s, itemA, itemB, cust := newTestStore(t, 20, 30)

	sale, err := s.AddSale(core.SaleInput{ItemID: itemA.ID, CustomerID: cust.ID, Quantity: 3})
	if err != nil {
		t.Fatalf("AddSale: %v", err)
	}
	if got := itemQty(t, s, itemA.ID); got != 17 {
		t.Fatalf("stock A after sale = %d, want 17", got)
	}

	updated, err := s.UpdateSale(sale.ID, core.SalePatch{ItemID: ptr(itemB.ID), Quantity: ptr(3)})
	if err != nil {
		t.Fatalf("UpdateSale: %v", err)
	}
	if got := itemQty(t, s, itemA.ID); got != 20 {
		t.Errorf("stock A after move = %d, want 20", got)
	}
	if got := itemQty(t, s, itemB.ID); got != 27 {
		t.Errorf("stock B after move = %d, want 27", got)
	}
	if !updated.Price.Equal(dec("120.00")) {
		t.Errorf("price after move = %s, want B's selling price 120.00", updated.Price)
	}
	if updated.ItemName != "Mechanical Keyboard" {
		t.Errorf("item name after move = %q", updated.ItemName)
	}
}

func TestUpdateSale_InsufficientStockLeavesStateUntouched(t *testing.T) {
	s, itemA, itemB, cust := newTestStore(t, 10, 2)

	sale, err := s.AddSale(core.SaleInput{ItemID: itemA.ID, CustomerID: cust.ID, Quantity: 4})
	if err != nil {
		t.Fatalf("AddSale: %v", err)
	}

	// Raising beyond what's left on A (6 on hand, need 3 more than the 4 held
	// by the sale -> 11 total > baseline 10).
	if _, err := s.UpdateSale(sale.ID, core.SalePatch{Quantity: ptr(11)}); !errors.Is(err, core.ErrInsufficientStock) {
		t.Fatalf("oversized update: got %v, want ErrInsufficientStock", err)
	}
	// Moving to B with more than B holds.
	if _, err := s.UpdateSale(sale.ID, core.SalePatch{ItemID: ptr(itemB.ID)}); !errors.Is(err, core.ErrInsufficientStock) {
		t.Fatalf("oversized move: got %v, want ErrInsufficientStock", err)
	}

	if got := itemQty(t, s, itemA.ID); got != 6 {
		t.Errorf("stock A = %d, want 6 (unchanged)", got)
	}
	if got := itemQty(t, s, itemB.ID); got != 2 {
		t.Errorf("stock B = %d, want 2 (unchanged)", got)
	}
	got, err := s.Sale(sale.ID)
	if err != nil {
		t.Fatalf("Sale: %v", err)
	}
	if got.Quantity != 4 || got.ItemID != itemA.ID {
		t.Errorf("sale mutated by failed update: %+v", got)
	}
}

func TestRemoveSale_RestoresStockOnceOnly(t *testing.T) {
	s, itemA, _, cust := newTestStore(t, 45, 20)

	sale, err := s.AddSale(core.SaleInput{ItemID: itemA.ID, CustomerID: cust.ID, Quantity: 5})
	if err != nil {
		t.Fatalf("AddSale: %v", err)
	}
	if got := itemQty(t, s, itemA.ID); got != 40 {
		t.Fatalf("stock after sale = %d, want 40", got)
	}

	if err := s.RemoveSale(sale.ID); err != nil {
		t.Fatalf("RemoveSale: %v", err)
	}
	if got := itemQty(t, s, itemA.ID); got != 45 {
		t.Errorf("stock after removal = %d, want 45", got)
	}

	if err := s.RemoveSale(sale.ID); !errors.Is(err, core.ErrSaleNotFound) {
		t.Errorf("second removal: got %v, want ErrSaleNotFound", err)
	}
	if got := itemQty(t, s, itemA.ID); got != 45 {
		t.Errorf("stock after second removal = %d, want 45 (unchanged)", got)
	}
}

func TestStockConservation(t *testing.T) {
	// For a fixed set of items, quantity_now must always equal
	// quantity_initial minus the sum of currently existing sales.
	s, itemA, itemB, cust := newTestStore(t, 50, 40)
	initial := map[string]int{itemA.ID: 50, itemB.ID: 40}

	check := func(step string) {
		t.Helper()
		sold := map[string]int{}
		for _, sl := range s.Sales() {
			sold[sl.ItemID] += sl.Quantity
		}
		for _, it := range s.StockItems() {
			if want := initial[it.ID] - sold[it.ID]; it.Quantity != want {
				t.Errorf("%s: item %s quantity = %d, want %d", step, it.ID, it.Quantity, want)
			}
		}
	}

	s1, err := s.AddSale(core.SaleInput{ItemID: itemA.ID, CustomerID: cust.ID, Quantity: 7})
	if err != nil {
		t.Fatal(err)
	}
	check("after first sale")

	s2, err := s.AddSale(core.SaleInput{ItemID: itemB.ID, CustomerID: cust.ID, Quantity: 4, Discount: dec("10")})
	if err != nil {
		t.Fatal(err)
	}
	check("after second sale")

	if _, err := s.UpdateSale(s1.ID, core.SalePatch{Quantity: ptr(12)}); err != nil {
		t.Fatal(err)
	}
	check("after quantity raise")

	if _, err := s.UpdateSale(s1.ID, core.SalePatch{ItemID: ptr(itemB.ID)}); err != nil {
		t.Fatal(err)
	}
	check("after item move")

	if _, err := s.UpdateSale(s2.ID, core.SalePatch{Quantity: ptr(1)}); err != nil {
		t.Fatal(err)
	}
	check("after quantity lower")

	if err := s.RemoveSale(s1.ID); err != nil {
		t.Fatal(err)
	}
	check("after removal")

	if err := s.RemoveSale(s2.ID); err != nil {
		t.Fatal(err)
	}
	check("after second removal")
}

func TestRemoveStockItem_CascadesWithoutRestore(t *testing.T) {
	s, itemA, itemB, cust := newTestStore(t, 20, 30)

	for i := 0; i < 2; i++ {
		if _, err := s.AddSale(core.SaleInput{ItemID: itemA.ID, CustomerID: cust.ID, Quantity: 1}); err != nil {
			t.Fatalf("AddSale: %v", err)
		}
	}
	if _, err := s.AddSale(core.SaleInput{ItemID: itemB.ID, CustomerID: cust.ID, Quantity: 3}); err != nil {
		t.Fatalf("AddSale B: %v", err)
	}

	if err := s.RemoveStockItem(itemA.ID); err != nil {
		t.Fatalf("RemoveStockItem: %v", err)
	}

	if _, err := s.StockItem(itemA.ID); !errors.Is(err, core.ErrStockItemNotFound) {
		t.Errorf("item still present after removal: %v", err)
	}
	for _, sl := range s.Sales() {
		if sl.ItemID == itemA.ID {
			t.Errorf("dangling sale %s still references removed item", sl.ID)
		}
	}
	if got := len(s.Sales()); got != 1 {
		t.Errorf("sales after cascade = %d, want 1", got)
	}
	// The unrelated item is untouched.
	if got := itemQty(t, s, itemB.ID); got != 27 {
		t.Errorf("stock B = %d, want 27", got)
	}

	if err := s.RemoveStockItem(itemA.ID); !errors.Is(err, core.ErrStockItemNotFound) {
		t.Errorf("second removal: got %v, want ErrStockItemNotFound", err)
	}
}

func TestRemoveCustomer_CascadeRestoresStock(t *testing.T) {
	s, itemA, itemB, cust := newTestStore(t, 20, 30)
	other, err := s.AddCustomer(core.CustomerInput{Name: "HARI MAHATO"})
	if err != nil {
		t.Fatalf("AddCustomer: %v", err)
	}

	if _, err := s.AddSale(core.SaleInput{ItemID: itemA.ID, CustomerID: cust.ID, Quantity: 5}); err != nil {
		t.Fatal(err)
	}
	if _, err := s.AddSale(core.SaleInput{ItemID: itemB.ID, CustomerID: cust.ID, Quantity: 2}); err != nil {
		t.Fatal(err)
	}
	kept, err := s.AddSale(core.SaleInput{ItemID: itemB.ID, CustomerID: other.ID, Quantity: 1})
	if err != nil {
		t.Fatal(err)
	}

	if err := s.RemoveCustomer(cust.ID); err != nil {
		t.Fatalf("RemoveCustomer: %v", err)
	}

	// The deleted customer's sales are erased and their goods return to the
	// shelf; the other customer's sale survives.
	if got := itemQty(t, s, itemA.ID); got != 20 {
		t.Errorf("stock A = %d, want 20", got)
	}
	if got := itemQty(t, s, itemB.ID); got != 29 {
		t.Errorf("stock B = %d, want 29", got)
	}
	sales := s.Sales()
	if len(sales) != 1 || sales[0].ID != kept.ID {
		t.Errorf("surviving sales = %+v, want only %s", sales, kept.ID)
	}
}

func TestIDUniqueness(t *testing.T) {
	s := core.NewStore()
	seen := map[string]bool{}
	for i := 0; i < 25; i++ {
		it, err := s.AddStockItem(core.StockItemInput{Name: "Widget", Category: "Misc", Quantity: 1})
		if err != nil {
			t.Fatalf("AddStockItem #%d: %v", i, err)
		}
		if seen[it.ID] {
			t.Fatalf("duplicate id %s", it.ID)
		}
		seen[it.ID] = true
	}

	// Ids are not reissued after a deletion.
	items := s.StockItems()
	if err := s.RemoveStockItem(items[len(items)-1].ID); err != nil {
		t.Fatal(err)
	}
	it, err := s.AddStockItem(core.StockItemInput{Name: "Widget", Category: "Misc", Quantity: 1})
	if err != nil {
		t.Fatal(err)
	}
	if seen[it.ID] {
		t.Errorf("id %s reissued after deletion", it.ID)
	}
}

func TestIDUniqueness_AfterSnapshotRestore(t *testing.T) {
	s := core.NewStore()
	for i := 0; i < 3; i++ {
		if _, err := s.AddStockItem(core.StockItemInput{Name: "Widget", Category: "Misc", Quantity: 1}); err != nil {
			t.Fatal(err)
		}
	}

	restored := core.NewStoreFromSnapshot(s.Snapshot())
	it, err := restored.AddStockItem(core.StockItemInput{Name: "Widget", Category: "Misc", Quantity: 1})
	if err != nil {
		t.Fatal(err)
	}
	if it.ID != "STK004" {
		t.Errorf("first id after restore = %s, want STK004", it.ID)
	}
}

func TestUpdateStockItem_ManualAdjustmentIsLogged(t *testing.T) {
	s, itemA, _, cust := newTestStore(t, 10, 10)

	sale, err := s.AddSale(core.SaleInput{ItemID: itemA.ID, CustomerID: cust.ID, Quantity: 3})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.UpdateStockItem(itemA.ID, core.StockItemPatch{Quantity: ptr(50)}); err != nil {
		t.Fatalf("UpdateStockItem: %v", err)
	}
	if got := itemQty(t, s, itemA.ID); got != 50 {
		t.Errorf("stock after override = %d, want 50", got)
	}

	moves := s.Movements(itemA.ID)
	if len(moves) != 2 {
		t.Fatalf("movements = %d, want 2 (sale + adjustment)", len(moves))
	}
	if moves[0].Kind != core.MovementSale || moves[0].Delta != -3 || moves[0].SaleID != sale.ID {
		t.Errorf("sale movement = %+v", moves[0])
	}
	if moves[1].Kind != core.MovementAdjustment || moves[1].Delta != 43 {
		t.Errorf("adjustment movement = %+v", moves[1])
	}
}

func TestUpdateCustomer_NotFound(t *testing.T) {
	s := core.NewStore()
	if _, err := s.UpdateCustomer("CUS001", core.CustomerPatch{Name: ptr("X")}); !errors.Is(err, core.ErrCustomerNotFound) {
		t.Errorf("got %v, want ErrCustomerNotFound", err)
	}
	if err := s.RemoveCustomer("CUS001"); !errors.Is(err, core.ErrCustomerNotFound) {
		t.Errorf("got %v, want ErrCustomerNotFound", err)
	}
}

func TestAddStockItem_Validation(t *testing.T) {
	s := core.NewStore()
	tests := []struct {
		name  string
		input core.StockItemInput
	}{
		{"missing name", core.StockItemInput{Category: "Misc", Quantity: 1}},
		{"missing category", core.StockItemInput{Name: "Widget", Quantity: 1}},
		{"negative quantity", core.StockItemInput{Name: "Widget", Category: "Misc", Quantity: -1}},
		{"negative price", core.StockItemInput{Name: "Widget", Category: "Misc", Quantity: 1, SellingPrice: dec("-1")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := s.AddStockItem(tt.input); !errors.Is(err, core.ErrValidation) {
				t.Errorf("got %v, want ErrValidation", err)
			}
		})
	}
}
