package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"stockpilot/internal/app"
)

// Run executes a one-shot CLI command and exits.
// args is os.Args[1:] — the first element is the subcommand name.
func Run(ctx context.Context, svc app.ApplicationService, args []string) {
	switch args[0] {
	case "summary", "sum":
		result, err := svc.GetSummary(ctx)
		if err != nil {
			log.Fatalf("Failed to get summary: %v", err)
		}
		emit(result.Summary)

	case "stock", "items":
		result, err := svc.ListStock(ctx)
		if err != nil {
			log.Fatalf("Failed to list stock: %v", err)
		}
		emit(result.Items)

	case "customers":
		result, err := svc.ListCustomers(ctx)
		if err != nil {
			log.Fatalf("Failed to list customers: %v", err)
		}
		emit(result.Customers)

	case "sales":
		result, err := svc.ListSales(ctx)
		if err != nil {
			log.Fatalf("Failed to list sales: %v", err)
		}
		emit(result.Sales)

	case "monthly":
		year := time.Now().Year()
		if len(args) > 1 {
			parsed, err := strconv.Atoi(args[1])
			if err != nil {
				log.Fatalf("Invalid year: %s", args[1])
			}
			year = parsed
		}
		result, err := svc.GetMonthlySales(ctx, year)
		if err != nil {
			log.Fatalf("Failed to get monthly sales: %v", err)
		}
		emit(result)

	case "movements":
		itemID := ""
		if len(args) > 1 {
			itemID = args[1]
		}
		result, err := svc.GetStockMovements(ctx, itemID)
		if err != nil {
			log.Fatalf("Failed to get movements: %v", err)
		}
		emit(result.Movements)

	default:
		log.Fatalf("Unknown command: %s\nAvailable: summary, stock, customers, sales, monthly, movements", args[0])
	}
}

// emit writes v as indented JSON to stdout, for piping into other tools.
func emit(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "encode output: %v\n", err)
		os.Exit(1)
	}
}
