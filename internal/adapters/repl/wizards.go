package repl

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"

	"stockpilot/internal/app"

	"github.com/shopspring/decimal"
)

func prompt(reader *bufio.Reader, label string) string {
	fmt.Printf("  %s: ", label)
	raw, _ := reader.ReadString('\n')
	return strings.TrimSpace(raw)
}

func promptInt(reader *bufio.Reader, label string, fallback int) (int, bool) {
	raw := prompt(reader, label)
	if raw == "" {
		return fallback, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		fmt.Printf("  Invalid number: %s\n", raw)
		return 0, false
	}
	return n, true
}

func promptDecimal(reader *bufio.Reader, label string, fallback decimal.Decimal) (decimal.Decimal, bool) {
	raw := prompt(reader, label)
	if raw == "" {
		return fallback, true
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		fmt.Printf("  Invalid amount: %s\n", raw)
		return decimal.Zero, false
	}
	return d, true
}

// handleAddItem runs the interactive stock item creation session.
func handleAddItem(ctx context.Context, reader *bufio.Reader, svc app.ApplicationService) {
	fmt.Println("New stock item (blank input keeps the shown default).")

	name := prompt(reader, "Name")
	category := prompt(reader, "Category")
	qty, ok := promptInt(reader, "Quantity [0]", 0)
	if !ok {
		return
	}
	cost, ok := promptDecimal(reader, "Cost price [0.00]", decimal.Zero)
	if !ok {
		return
	}
	selling, ok := promptDecimal(reader, "Selling price [0.00]", decimal.Zero)
	if !ok {
		return
	}
	supplier := prompt(reader, "Supplier")

	result, err := svc.AddStockItem(ctx, app.AddStockItemRequest{
		Name:         name,
		Category:     category,
		Quantity:     qty,
		CostPrice:    cost,
		SellingPrice: selling,
		Supplier:     supplier,
	})
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Printf("Added %s: %s (%d on hand)\n", result.Item.ID, result.Item.Name, result.Item.Quantity)
}

// handleAddCustomer runs the interactive customer creation session.
func handleAddCustomer(ctx context.Context, reader *bufio.Reader, svc app.ApplicationService) {
	fmt.Println("New customer.")

	result, err := svc.AddCustomer(ctx, app.AddCustomerRequest{
		Name:    prompt(reader, "Name"),
		Email:   prompt(reader, "Email"),
		Phone:   prompt(reader, "Phone"),
		Address: prompt(reader, "Address"),
	})
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Printf("Added %s: %s\n", result.Customer.ID, result.Customer.Name)
}

// handleSell runs the interactive sale recording session. Price and total
// come from the ledger; only item, customer, quantity, and discount are asked.
func handleSell(ctx context.Context, reader *bufio.Reader, svc app.ApplicationService) {
	fmt.Println("Record a sale.")

	itemID := strings.ToUpper(prompt(reader, "Item id (e.g. STK001)"))
	customerID := strings.ToUpper(prompt(reader, "Customer id (e.g. CUS001)"))
	qty, ok := promptInt(reader, "Quantity [1]", 1)
	if !ok {
		return
	}
	discount, ok := promptDecimal(reader, "Discount % [0]", decimal.Zero)
	if !ok {
		return
	}

	result, err := svc.AddSale(ctx, app.AddSaleRequest{
		ItemID:     itemID,
		CustomerID: customerID,
		Quantity:   qty,
		Discount:   discount,
	})
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	sale := result.Sale
	fmt.Printf("Recorded %s: %d × %s @ %s = %s\n",
		sale.ID, sale.Quantity, sale.ItemName, sale.Price.StringFixed(2), sale.Total.StringFixed(2))
}

// handleEditSale runs the interactive sale edit session. Blank answers leave
// a field unchanged; stock is reconciled by the core.
func handleEditSale(ctx context.Context, reader *bufio.Reader, svc app.ApplicationService, saleID string) {
	fmt.Printf("Editing %s (blank input keeps the current value).\n", saleID)

	req := app.UpdateSaleRequest{}
	if raw := strings.ToUpper(prompt(reader, "New item id")); raw != "" {
		req.ItemID = &raw
	}
	if raw := strings.ToUpper(prompt(reader, "New customer id")); raw != "" {
		req.CustomerID = &raw
	}
	if raw := prompt(reader, "New quantity"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			fmt.Printf("  Invalid number: %s\n", raw)
			return
		}
		req.Quantity = &n
	}
	if raw := prompt(reader, "New discount %"); raw != "" {
		d, err := decimal.NewFromString(raw)
		if err != nil {
			fmt.Printf("  Invalid amount: %s\n", raw)
			return
		}
		req.Discount = &d
	}

	result, err := svc.UpdateSale(ctx, saleID, req)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	sale := result.Sale
	fmt.Printf("Updated %s: %d × %s @ %s = %s\n",
		sale.ID, sale.Quantity, sale.ItemName, sale.Price.StringFixed(2), sale.Total.StringFixed(2))
}

// handleInvoice runs the interactive invoice builder and prints the result.
func handleInvoice(ctx context.Context, reader *bufio.Reader, svc app.ApplicationService) {
	fmt.Println("Build an invoice. Add lines, then type 'done' ('cancel' to abort).")
	fmt.Println("Format per line: <item-id> <quantity> [discount%]")

	var lines []app.InvoiceLineRequest
	lineNum := 1
	for {
		fmt.Printf("  Line %d: ", lineNum)
		raw, _ := reader.ReadString('\n')
		raw = strings.TrimSpace(raw)
		if strings.EqualFold(raw, "cancel") {
			fmt.Println("Invoice cancelled.")
			return
		}
		if strings.EqualFold(raw, "done") {
			break
		}
		if raw == "" {
			continue
		}

		parts := strings.Fields(raw)
		if len(parts) < 2 {
			fmt.Println("  Invalid format. Use: <item-id> <quantity> [discount%]")
			continue
		}
		qty, err := strconv.Atoi(parts[1])
		if err != nil || qty <= 0 {
			fmt.Println("  Invalid quantity.")
			continue
		}
		discount := decimal.Zero
		if len(parts) >= 3 {
			discount, err = decimal.NewFromString(parts[2])
			if err != nil {
				fmt.Println("  Invalid discount.")
				continue
			}
		}

		lines = append(lines, app.InvoiceLineRequest{
			ItemID:      strings.ToUpper(parts[0]),
			Quantity:    qty,
			DiscountPct: discount,
		})
		lineNum++
	}
	if len(lines) == 0 {
		fmt.Println("No lines entered. Invoice not built.")
		return
	}

	customerID := strings.ToUpper(prompt(reader, "Customer id"))
	number := prompt(reader, "Invoice number [INV-001]")
	if number == "" {
		number = "INV-001"
	}
	cgst, ok := promptDecimal(reader, "CGST % [9]", decimal.NewFromInt(9))
	if !ok {
		return
	}
	sgst, ok := promptDecimal(reader, "SGST % [9]", decimal.NewFromInt(9))
	if !ok {
		return
	}
	grandDiscount, ok := promptDecimal(reader, "Grand-total discount % [0]", decimal.Zero)
	if !ok {
		return
	}

	inv, err := svc.BuildInvoice(ctx, app.InvoiceRequest{
		Number:           number,
		CustomerID:       customerID,
		CGSTRate:         cgst,
		SGSTRate:         sgst,
		GrandDiscountPct: grandDiscount,
		Lines:            lines,
	})
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Print(inv.Render())
}
