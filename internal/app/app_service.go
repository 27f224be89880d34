package app

import (
	"context"
	"fmt"
	"log"

	"stockpilot/internal/core"
	"stockpilot/internal/db"
)

type appService struct {
	store *core.Store
	snap  db.Snapshotter
}

// NewAppService constructs an appService that satisfies ApplicationService.
// Every successful mutation is followed by a snapshot save; a failed save is
// logged and otherwise ignored, since persistence is fire-and-forget for the
// core (the in-memory state stays authoritative for the session).
func NewAppService(store *core.Store, snap db.Snapshotter) ApplicationService {
	return &appService{store: store, snap: snap}
}

func (s *appService) persist(ctx context.Context) {
	if err := s.snap.Save(ctx, s.store.Snapshot()); err != nil {
		log.Printf("snapshot save failed: %v", err)
	}
}

// ── Stock ─────────────────────────────────────────────────────────────────────

func (s *appService) ListStock(ctx context.Context) (*StockListResult, error) {
	return &StockListResult{Items: s.store.StockItems()}, nil
}

func (s *appService) GetStockItem(ctx context.Context, id string) (*StockItemResult, error) {
	item, err := s.store.StockItem(id)
	if err != nil {
		return nil, err
	}
	return &StockItemResult{Item: item}, nil
}

func (s *appService) AddStockItem(ctx context.Context, req AddStockItemRequest) (*StockItemResult, error) {
	item, err := s.store.AddStockItem(core.StockItemInput{
		Name:         req.Name,
		Category:     req.Category,
		Quantity:     req.Quantity,
		CostPrice:    req.CostPrice,
		SellingPrice: req.SellingPrice,
		Supplier:     req.Supplier,
	})
	if err != nil {
		return nil, err
	}
	s.persist(ctx)
	return &StockItemResult{Item: item}, nil
}

func (s *appService) UpdateStockItem(ctx context.Context, id string, req UpdateStockItemRequest) (*StockItemResult, error) {
	item, err := s.store.UpdateStockItem(id, core.StockItemPatch{
		Name:         req.Name,
		Category:     req.Category,
		Quantity:     req.Quantity,
		CostPrice:    req.CostPrice,
		SellingPrice: req.SellingPrice,
		Supplier:     req.Supplier,
	})
	if err != nil {
		return nil, err
	}
	s.persist(ctx)
	return &StockItemResult{Item: item}, nil
}

func (s *appService) RemoveStockItem(ctx context.Context, id string) error {
	if err := s.store.RemoveStockItem(id); err != nil {
		return err
	}
	s.persist(ctx)
	return nil
}

// ── Customers ─────────────────────────────────────────────────────────────────

func (s *appService) ListCustomers(ctx context.Context) (*CustomerListResult, error) {
	return &CustomerListResult{Customers: s.store.Customers()}, nil
}

func (s *appService) AddCustomer(ctx context.Context, req AddCustomerRequest) (*CustomerResult, error) {
	c, err := s.store.AddCustomer(core.CustomerInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		return nil, err
	}
	s.persist(ctx)
	return &CustomerResult{Customer: c}, nil
}

func (s *appService) UpdateCustomer(ctx context.Context, id string, req UpdateCustomerRequest) (*CustomerResult, error) {
	c, err := s.store.UpdateCustomer(id, core.CustomerPatch{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		return nil, err
	}
	s.persist(ctx)
	return &CustomerResult{Customer: c}, nil
}

func (s *appService) RemoveCustomer(ctx context.Context, id string) error {
	if err := s.store.RemoveCustomer(id); err != nil {
		return err
	}
	s.persist(ctx)
	return nil
}

// ── Sales ─────────────────────────────────────────────────────────────────────

func (s *appService) ListSales(ctx context.Context) (*SaleListResult, error) {
	return &SaleListResult{Sales: s.store.Sales()}, nil
}

func (s *appService) AddSale(ctx context.Context, req AddSaleRequest) (*SaleResult, error) {
	sale, err := s.store.AddSale(core.SaleInput{
		ItemID:     req.ItemID,
		CustomerID: req.CustomerID,
		Quantity:   req.Quantity,
		Discount:   req.Discount,
	})
	if err != nil {
		return nil, err
	}
	s.persist(ctx)
	return &SaleResult{Sale: sale}, nil
}

func (s *appService) UpdateSale(ctx context.Context, id string, req UpdateSaleRequest) (*SaleResult, error) {
	sale, err := s.store.UpdateSale(id, core.SalePatch{
		ItemID:     req.ItemID,
		CustomerID: req.CustomerID,
		Quantity:   req.Quantity,
		Discount:   req.Discount,
	})
	if err != nil {
		return nil, err
	}
	s.persist(ctx)
	return &SaleResult{Sale: sale}, nil
}

func (s *appService) RemoveSale(ctx context.Context, id string) error {
	if err := s.store.RemoveSale(id); err != nil {
		return err
	}
	s.persist(ctx)
	return nil
}

// ── Reporting ─────────────────────────────────────────────────────────────────

func (s *appService) GetSummary(ctx context.Context) (*SummaryResult, error) {
	return &SummaryResult{Summary: core.SalesSummary(s.store.Snapshot())}, nil
}

func (s *appService) GetMonthlySales(ctx context.Context, year int) (*MonthlySalesResult, error) {
	return &MonthlySalesResult{
		Year:   year,
		Points: core.MonthlySales(s.store.Snapshot(), year),
	}, nil
}

func (s *appService) GetCustomerPurchases(ctx context.Context) (*CustomerPurchasesResult, error) {
	return &CustomerPurchasesResult{Rows: core.CustomerPurchases(s.store.Snapshot())}, nil
}

func (s *appService) GetCategoryValues(ctx context.Context) (*CategoryValuesResult, error) {
	return &CategoryValuesResult{Rows: core.CostVsSellingByCategory(s.store.Snapshot())}, nil
}

func (s *appService) GetRecentSales(ctx context.Context, n int) (*SaleListResult, error) {
	return &SaleListResult{Sales: core.RecentSales(s.store.Snapshot(), n)}, nil
}

func (s *appService) GetStockMovements(ctx context.Context, itemID string) (*MovementListResult, error) {
	if itemID != "" {
		if _, err := s.store.StockItem(itemID); err != nil {
			return nil, err
		}
	}
	return &MovementListResult{ItemID: itemID, Movements: s.store.Movements(itemID)}, nil
}

// ── Billing ───────────────────────────────────────────────────────────────────

// BuildInvoice resolves item and customer references against the current
// collections, then delegates the arithmetic to core.BuildInvoice.
func (s *appService) BuildInvoice(ctx context.Context, req InvoiceRequest) (*core.Invoice, error) {
	name, address := req.CustomerName, req.CustomerAddress
	if req.CustomerID != "" {
		c, err := s.store.Customer(req.CustomerID)
		if err != nil {
			return nil, err
		}
		name, address = c.Name, c.Address
	}

	lines := make([]core.InvoiceLineInput, 0, len(req.Lines))
	for _, l := range req.Lines {
		in := core.InvoiceLineInput{
			ItemID:      l.ItemID,
			Description: l.Description,
			Quantity:    l.Quantity,
			DiscountPct: l.DiscountPct,
		}
		if l.UnitPrice != nil {
			in.UnitPrice = *l.UnitPrice
		}
		if l.ItemID != "" && (l.Description == "" || l.UnitPrice == nil) {
			item, err := s.store.StockItem(l.ItemID)
			if err != nil {
				return nil, fmt.Errorf("invoice line: %w", err)
			}
			if in.Description == "" {
				in.Description = item.Name
			}
			if l.UnitPrice == nil {
				in.UnitPrice = item.SellingPrice
			}
		}
		lines = append(lines, in)
	}

	return core.BuildInvoice(core.InvoiceRequest{
		Number:           req.Number,
		CustomerName:     name,
		CustomerAddress:  address,
		CGSTRate:         req.CGSTRate,
		SGSTRate:         req.SGSTRate,
		GrandDiscountPct: req.GrandDiscountPct,
		Lines:            lines,
	})
}
