package core

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Reporting runs over snapshots, never over the live store, so a report is
// internally consistent even while mutations continue.

// LowStockThreshold marks items that need restocking.
const LowStockThreshold = 10

// Summary is the dashboard headline view.
type Summary struct {
	TotalRevenue  decimal.Decimal
	SaleCount     int
	UnitsSold     int
	CustomerCount int
	DistinctItems int
	UnitsInStock  int
	LowStock      []StockItem
}

// SalesSummary aggregates the snapshot into the dashboard headline numbers.
func SalesSummary(snap *Snapshot) Summary {
	s := Summary{
		SaleCount:     len(snap.Sales),
		CustomerCount: len(snap.Customers),
		DistinctItems: len(snap.StockItems),
	}
	for _, sl := range snap.Sales {
		s.TotalRevenue = s.TotalRevenue.Add(sl.Total)
		s.UnitsSold += sl.Quantity
	}
	for _, it := range snap.StockItems {
		s.UnitsInStock += it.Quantity
		if it.Quantity < LowStockThreshold {
			s.LowStock = append(s.LowStock, it)
		}
	}
	return s
}

// MonthlyPoint is one month of the sales chart: revenue and units sold.
type MonthlyPoint struct {
	Month   int // 1-12
	Revenue decimal.Decimal
	Units   int
}

// MonthlySales returns twelve points for the given year, January first.
// Months without sales carry zero values.
func MonthlySales(snap *Snapshot, year int) []MonthlyPoint {
	points := make([]MonthlyPoint, 12)
	for i := range points {
		points[i].Month = i + 1
	}
	for _, sl := range snap.Sales {
		if sl.Date.Year() != year {
			continue
		}
		p := &points[int(sl.Date.Month())-1]
		p.Revenue = p.Revenue.Add(sl.Total)
		p.Units += sl.Quantity
	}
	return points
}

// CustomerSpend is one row of the customer purchases report.
type CustomerSpend struct {
	CustomerID   string
	CustomerName string
	Purchases    int
	Total        decimal.Decimal
}

// CustomerPurchases returns per-customer lifetime spend, highest first.
// Customers retain rows for sales that denormalized their name even after the
// customer record was deleted.
func CustomerPurchases(snap *Snapshot) []CustomerSpend {
	byID := map[string]*CustomerSpend{}
	var order []string
	for _, sl := range snap.Sales {
		row, ok := byID[sl.CustomerID]
		if !ok {
			row = &CustomerSpend{CustomerID: sl.CustomerID, CustomerName: sl.CustomerName}
			byID[sl.CustomerID] = row
			order = append(order, sl.CustomerID)
		}
		row.Purchases++
		row.Total = row.Total.Add(sl.Total)
	}

	out := make([]CustomerSpend, 0, len(order))
	for _, id := range order {
		out = append(out, *byID[id])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Total.GreaterThan(out[j].Total)
	})
	return out
}

// CategoryValue compares the cost and retail value of on-hand stock for one
// category.
type CategoryValue struct {
	Category     string
	CostValue    decimal.Decimal // sum of costPrice * quantity
	SellingValue decimal.Decimal // sum of sellingPrice * quantity
}

// CostVsSellingByCategory aggregates on-hand stock value per category,
// sorted by category name.
func CostVsSellingByCategory(snap *Snapshot) []CategoryValue {
	byCat := map[string]*CategoryValue{}
	for _, it := range snap.StockItems {
		row, ok := byCat[it.Category]
		if !ok {
			row = &CategoryValue{Category: it.Category}
			byCat[it.Category] = row
		}
		qty := decimal.NewFromInt(int64(it.Quantity))
		row.CostValue = row.CostValue.Add(it.CostPrice.Mul(qty))
		row.SellingValue = row.SellingValue.Add(it.SellingPrice.Mul(qty))
	}

	out := make([]CategoryValue, 0, len(byCat))
	for _, row := range byCat {
		out = append(out, *row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	return out
}

// RecentSales returns the n newest sales, newest first.
func RecentSales(snap *Snapshot, n int) []Sale {
	sales := append([]Sale(nil), snap.Sales...)
	sort.SliceStable(sales, func(i, j int) bool {
		return sales[i].Date.After(sales[j].Date)
	})
	if n >= 0 && len(sales) > n {
		sales = sales[:n]
	}
	return sales
}
