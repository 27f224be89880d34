package repl

import (
	"fmt"
	"strings"

	"stockpilot/internal/app"
	"stockpilot/internal/core"
)

func printStock(result *app.StockListResult) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 92))
	fmt.Printf("  %-88s\n", "STOCK")
	fmt.Println(strings.Repeat("=", 92))
	if len(result.Items) == 0 {
		fmt.Println("  No stock items.")
		fmt.Println(strings.Repeat("=", 92))
		return
	}
	fmt.Printf("  %-8s %-26s %-12s %5s %10s %10s  %s\n",
		"ID", "NAME", "CATEGORY", "QTY", "COST", "PRICE", "SUPPLIER")
	fmt.Println(strings.Repeat("-", 92))
	for _, it := range result.Items {
		marker := " "
		if it.Quantity < core.LowStockThreshold {
			marker = "!"
		}
		fmt.Printf("%s %-8s %-26s %-12s %5d %10s %10s  %s\n",
			marker, it.ID, it.Name, it.Category, it.Quantity,
			it.CostPrice.StringFixed(2), it.SellingPrice.StringFixed(2), it.Supplier)
	}
	fmt.Println(strings.Repeat("=", 92))
	fmt.Println("  ! = below low-stock threshold")
}

func printCustomers(result *app.CustomerListResult) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 88))
	fmt.Printf("  %-84s\n", "CUSTOMERS")
	fmt.Println(strings.Repeat("=", 88))
	if len(result.Customers) == 0 {
		fmt.Println("  No customers.")
		fmt.Println(strings.Repeat("=", 88))
		return
	}
	fmt.Printf("  %-8s %-22s %-26s %-14s %s\n", "ID", "NAME", "EMAIL", "PHONE", "JOINED")
	fmt.Println(strings.Repeat("-", 88))
	for _, c := range result.Customers {
		fmt.Printf("  %-8s %-22s %-26s %-14s %s\n",
			c.ID, c.Name, c.Email, c.Phone, c.JoinDate.Format("2006-01-02"))
	}
	fmt.Println(strings.Repeat("=", 88))
}

func printSales(title string, sales []core.Sale) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 96))
	fmt.Printf("  %-92s\n", title)
	fmt.Println(strings.Repeat("=", 96))
	if len(sales) == 0 {
		fmt.Println("  No sales recorded.")
		fmt.Println(strings.Repeat("=", 96))
		return
	}
	fmt.Printf("  %-9s %-22s %-18s %4s %9s %6s %10s  %s\n",
		"ID", "ITEM", "CUSTOMER", "QTY", "PRICE", "DISC%", "TOTAL", "DATE")
	fmt.Println(strings.Repeat("-", 96))
	for _, sl := range sales {
		fmt.Printf("  %-9s %-22s %-18s %4d %9s %5s%% %10s  %s\n",
			sl.ID, sl.ItemName, sl.CustomerName, sl.Quantity,
			sl.Price.StringFixed(2), sl.Discount.StringFixed(1),
			sl.Total.StringFixed(2), sl.Date.Format("2006-01-02 15:04"))
	}
	fmt.Println(strings.Repeat("=", 96))
}

func printSummary(result *app.SummaryResult) {
	s := result.Summary
	fmt.Println()
	fmt.Println(strings.Repeat("=", 62))
	fmt.Printf("  %-58s\n", "DASHBOARD")
	fmt.Println(strings.Repeat("=", 62))
	fmt.Printf("  %-30s %27s\n", "Total revenue", s.TotalRevenue.StringFixed(2))
	fmt.Printf("  %-30s %27d\n", "Sales recorded", s.SaleCount)
	fmt.Printf("  %-30s %27d\n", "Units sold", s.UnitsSold)
	fmt.Printf("  %-30s %27d\n", "Customers", s.CustomerCount)
	fmt.Printf("  %-30s %27d\n", "Distinct items", s.DistinctItems)
	fmt.Printf("  %-30s %27d\n", "Units in stock", s.UnitsInStock)
	fmt.Println(strings.Repeat("=", 62))
	if len(s.LowStock) > 0 {
		fmt.Println("  LOW STOCK:")
		for _, it := range s.LowStock {
			fmt.Printf("    %-8s %-26s %3d left\n", it.ID, it.Name, it.Quantity)
		}
		fmt.Println(strings.Repeat("=", 62))
	}
}

func printMonthly(result *app.MonthlySalesResult) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 52))
	fmt.Printf("  MONTHLY SALES — %d\n", result.Year)
	fmt.Println(strings.Repeat("=", 52))
	fmt.Printf("  %-10s %14s %10s\n", "MONTH", "REVENUE", "UNITS")
	fmt.Println(strings.Repeat("-", 52))
	for _, p := range result.Points {
		fmt.Printf("  %-10d %14s %10d\n", p.Month, p.Revenue.StringFixed(2), p.Units)
	}
	fmt.Println(strings.Repeat("=", 52))
}

func printTopCustomers(result *app.CustomerPurchasesResult) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 62))
	fmt.Printf("  %-58s\n", "CUSTOMER PURCHASES")
	fmt.Println(strings.Repeat("=", 62))
	if len(result.Rows) == 0 {
		fmt.Println("  No sales recorded.")
		fmt.Println(strings.Repeat("=", 62))
		return
	}
	fmt.Printf("  %-8s %-24s %8s %14s\n", "ID", "NAME", "SALES", "TOTAL")
	fmt.Println(strings.Repeat("-", 62))
	for _, r := range result.Rows {
		fmt.Printf("  %-8s %-24s %8d %14s\n",
			r.CustomerID, r.CustomerName, r.Purchases, r.Total.StringFixed(2))
	}
	fmt.Println(strings.Repeat("=", 62))
}

func printCategories(result *app.CategoryValuesResult) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 62))
	fmt.Printf("  %-58s\n", "STOCK VALUE BY CATEGORY (cost vs retail)")
	fmt.Println(strings.Repeat("=", 62))
	fmt.Printf("  %-20s %18s %18s\n", "CATEGORY", "COST VALUE", "RETAIL VALUE")
	fmt.Println(strings.Repeat("-", 62))
	for _, r := range result.Rows {
		fmt.Printf("  %-20s %18s %18s\n",
			r.Category, r.CostValue.StringFixed(2), r.SellingValue.StringFixed(2))
	}
	fmt.Println(strings.Repeat("=", 62))
}

func printMovements(result *app.MovementListResult) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 72))
	if result.ItemID != "" {
		fmt.Printf("  STOCK MOVEMENTS — %s\n", result.ItemID)
	} else {
		fmt.Printf("  %-68s\n", "STOCK MOVEMENTS")
	}
	fmt.Println(strings.Repeat("=", 72))
	if len(result.Movements) == 0 {
		fmt.Println("  No movements recorded.")
		fmt.Println(strings.Repeat("=", 72))
		return
	}
	fmt.Printf("  %-8s %-16s %6s %-9s %s\n", "ITEM", "KIND", "DELTA", "SALE", "AT")
	fmt.Println(strings.Repeat("-", 72))
	for _, m := range result.Movements {
		fmt.Printf("  %-8s %-16s %+6d %-9s %s\n",
			m.ItemID, m.Kind, m.Delta, m.SaleID, m.At.Format("2006-01-02 15:04"))
	}
	fmt.Println(strings.Repeat("=", 72))
}

func printHelp() {
	fmt.Println(`
Commands:
  /summary                     dashboard headline numbers
  /stock                       list stock items
  /customers                   list customers
  /sales                       list the sales ledger
  /recent [n]                  newest sales (default 5)
  /monthly [year]              per-month revenue and units
  /top-customers               customers by lifetime spend
  /categories                  stock value by category
  /movements <item-id>         quantity audit trail for an item
  /add-item                    add a stock item (wizard)
  /add-customer                add a customer (wizard)
  /sell                        record a sale (wizard)
  /edit-sale <sale-id>         edit a sale (wizard)
  /rm-sale <sale-id>           remove a sale, restoring stock
  /rm-item <item-id>           remove an item and its sales
  /rm-customer <customer-id>   remove a customer and their sales
  /invoice                     build and print an invoice (wizard)
  /help                        this list
  /exit                        quit`)
}
