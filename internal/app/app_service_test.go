package app_test

import (
	"context"
	"path/filepath"
	"testing"

	"stockpilot/internal/app"
	"stockpilot/internal/core"
	"stockpilot/internal/db"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func newSeededService(t *testing.T) (app.ApplicationService, *db.FileStore) {
	t.Helper()
	fs := db.NewFileStore(filepath.Join(t.TempDir(), "stockpilot.json"))
	store := core.NewStoreFromSnapshot(core.SeedSnapshot())
	return app.NewAppService(store, fs), fs
}

func TestAppService_AddSalePersistsSnapshot(t *testing.T) {
	svc, fs := newSeededService(t)
	ctx := context.Background()

	result, err := svc.AddSale(ctx, app.AddSaleRequest{
		ItemID:     "STK001",
		CustomerID: "CUS002",
		Quantity:   3,
		Discount:   dec("10"),
	})
	require.NoError(t, err)
	require.NotNil(t, result.Sale)
	// 25.99 * 3 * 0.9
	assert.True(t, result.Sale.Total.Equal(dec("70.173")), "total = %s", result.Sale.Total)

	// The mutation reached disk.
	saved, err := fs.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Len(t, saved.Sales, 6)
	assert.Equal(t, 42, saved.StockItems[0].Quantity)
}

func TestAppService_LifecycleAcrossRestart(t *testing.T) {
	svc, fs := newSeededService(t)
	ctx := context.Background()

	item, err := svc.AddStockItem(ctx, app.AddStockItemRequest{
		Name: "USB Hub", Category: "Electronics", Quantity: 12,
		CostPrice: dec("6.00"), SellingPrice: dec("11.50"), Supplier: "TechGear Inc.",
	})
	require.NoError(t, err)

	_, err = svc.AddSale(ctx, app.AddSaleRequest{
		ItemID: item.Item.ID, CustomerID: "CUS001", Quantity: 2,
	})
	require.NoError(t, err)

	// Simulate a restart from the saved snapshot.
	snap, err := fs.Load(ctx)
	require.NoError(t, err)
	svc2 := app.NewAppService(core.NewStoreFromSnapshot(snap), fs)

	got, err := svc2.GetStockItem(ctx, item.Item.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, got.Item.Quantity)

	// New ids continue past the restored sequences.
	next, err := svc2.AddStockItem(ctx, app.AddStockItemRequest{
		Name: "HDMI Cable", Category: "Electronics", Quantity: 5,
	})
	require.NoError(t, err)
	assert.Equal(t, "STK009", next.Item.ID)
}

func TestAppService_SummaryAndRecent(t *testing.T) {
	svc, _ := newSeededService(t)
	ctx := context.Background()

	sum, err := svc.GetSummary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, sum.Summary.SaleCount)
	assert.Equal(t, 5, sum.Summary.CustomerCount)
	// Seed totals: 51.98 + 18.50 + 108.00 + 30.00 + 42.75.
	assert.True(t, sum.Summary.TotalRevenue.Equal(dec("251.23")), "revenue = %s", sum.Summary.TotalRevenue)
	// STK004 (8) and STK007 (2) sit under the low-stock threshold.
	assert.Len(t, sum.Summary.LowStock, 2)

	recent, err := svc.GetRecentSales(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent.Sales, 2)
	assert.Equal(t, "SALE002", recent.Sales[0].ID)
	assert.Equal(t, "SALE001", recent.Sales[1].ID)
}

func TestAppService_BuildInvoiceFromStoreReferences(t *testing.T) {
	svc, _ := newSeededService(t)
	ctx := context.Background()

	inv, err := svc.BuildInvoice(ctx, app.InvoiceRequest{
		Number:     "INV-100",
		CustomerID: "CUS003",
		CGSTRate:   dec("9"),
		SGSTRate:   dec("9"),
		Lines: []app.InvoiceLineRequest{
			{ItemID: "STK006", Quantity: 4},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "GOURANGA PRADHAN", inv.CustomerName)
	require.Len(t, inv.Lines, 1)
	assert.Equal(t, "LED Desk Lamp", inv.Lines[0].Description)
	// 15.75 * 4 = 63; 9% + 9% tax = 74.34.
	assert.True(t, inv.GrandTotal.Equal(dec("74.34")), "grand total = %s", inv.GrandTotal)

	_, err = svc.BuildInvoice(ctx, app.InvoiceRequest{
		Number:     "INV-101",
		CustomerID: "CUS999",
		Lines:      []app.InvoiceLineRequest{{ItemID: "STK006", Quantity: 1}},
	})
	assert.ErrorIs(t, err, core.ErrCustomerNotFound)
}

func TestAppService_RemoveSaleRestoresAndPersists(t *testing.T) {
	svc, fs := newSeededService(t)
	ctx := context.Background()

	require.NoError(t, svc.RemoveSale(ctx, "SALE001"))

	saved, err := fs.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, saved.Sales, 4)
	assert.Equal(t, 47, saved.StockItems[0].Quantity)

	err = svc.RemoveSale(ctx, "SALE001")
	assert.ErrorIs(t, err, core.ErrSaleNotFound)
}
