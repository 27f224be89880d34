package repl

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"stockpilot/internal/app"
)

// Run starts the interactive REPL loop. It reads slash commands from reader
// and dispatches them against the application service.
func Run(ctx context.Context, svc app.ApplicationService, reader *bufio.Reader) {
	fmt.Println("StockPilot")
	fmt.Println("Inventory, customers, and sales in one ledger. Type /help for commands.")
	fmt.Println(strings.Repeat("-", 70))

	errExit := fmt.Errorf("exit")

	dispatch := func(input string) error {
		tokens := strings.Fields(strings.TrimPrefix(input, "/"))
		if len(tokens) == 0 {
			return nil
		}
		cmd := strings.ToLower(tokens[0])
		args := tokens[1:]

		switch cmd {
		case "summary", "dash":
			result, err := svc.GetSummary(ctx)
			if err != nil {
				return err
			}
			printSummary(result)

		case "stock", "items":
			result, err := svc.ListStock(ctx)
			if err != nil {
				return err
			}
			printStock(result)

		case "customers":
			result, err := svc.ListCustomers(ctx)
			if err != nil {
				return err
			}
			printCustomers(result)

		case "sales":
			result, err := svc.ListSales(ctx)
			if err != nil {
				return err
			}
			printSales("SALES LEDGER", result.Sales)

		case "recent":
			n := 5
			if len(args) > 0 {
				parsed, err := strconv.Atoi(args[0])
				if err != nil || parsed <= 0 {
					fmt.Printf("Invalid count: %s\n", args[0])
					return nil
				}
				n = parsed
			}
			result, err := svc.GetRecentSales(ctx, n)
			if err != nil {
				return err
			}
			printSales(fmt.Sprintf("RECENT SALES (last %d)", n), result.Sales)

		case "monthly":
			year := time.Now().Year()
			if len(args) > 0 {
				parsed, err := strconv.Atoi(args[0])
				if err != nil {
					fmt.Printf("Invalid year: %s\n", args[0])
					return nil
				}
				year = parsed
			}
			result, err := svc.GetMonthlySales(ctx, year)
			if err != nil {
				return err
			}
			printMonthly(result)

		case "top-customers", "top":
			result, err := svc.GetCustomerPurchases(ctx)
			if err != nil {
				return err
			}
			printTopCustomers(result)

		case "categories", "cat":
			result, err := svc.GetCategoryValues(ctx)
			if err != nil {
				return err
			}
			printCategories(result)

		case "movements", "moves":
			if len(args) < 1 {
				fmt.Println("Usage: /movements <item-id>")
				return nil
			}
			result, err := svc.GetStockMovements(ctx, strings.ToUpper(args[0]))
			if err != nil {
				return err
			}
			printMovements(result)

		case "add-item":
			handleAddItem(ctx, reader, svc)

		case "add-customer":
			handleAddCustomer(ctx, reader, svc)

		case "sell":
			handleSell(ctx, reader, svc)

		case "edit-sale":
			if len(args) < 1 {
				fmt.Println("Usage: /edit-sale <sale-id>")
				return nil
			}
			handleEditSale(ctx, reader, svc, strings.ToUpper(args[0]))

		case "rm-sale":
			if len(args) < 1 {
				fmt.Println("Usage: /rm-sale <sale-id>")
				return nil
			}
			if err := svc.RemoveSale(ctx, strings.ToUpper(args[0])); err != nil {
				return err
			}
			fmt.Println("Sale removed; stock restored.")

		case "rm-item":
			if len(args) < 1 {
				fmt.Println("Usage: /rm-item <item-id>")
				return nil
			}
			if err := svc.RemoveStockItem(ctx, strings.ToUpper(args[0])); err != nil {
				return err
			}
			fmt.Println("Item removed along with its sales.")

		case "rm-customer":
			if len(args) < 1 {
				fmt.Println("Usage: /rm-customer <customer-id>")
				return nil
			}
			if err := svc.RemoveCustomer(ctx, strings.ToUpper(args[0])); err != nil {
				return err
			}
			fmt.Println("Customer removed; their sales erased and stock restored.")

		case "invoice":
			handleInvoice(ctx, reader, svc)

		case "help", "h":
			printHelp()

		case "exit", "quit", "e", "q":
			return errExit

		default:
			fmt.Printf("Unknown command: /%s  (type /help for all commands)\n", cmd)
		}
		return nil
	}

	for {
		fmt.Print("\n> ")
		input, err := reader.ReadString('\n')
		if err != nil {
			break
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		if !strings.HasPrefix(input, "/") {
			fmt.Println("Commands start with a slash. Type /help.")
			continue
		}
		if err := dispatch(input); err != nil {
			if err == errExit {
				fmt.Println("Goodbye!")
				break
			}
			fmt.Printf("Error: %v\n", err)
		}
	}
}
