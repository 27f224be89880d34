package core

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ── Invoice types ─────────────────────────────────────────────────────────────

// InvoiceLineInput is one billed position before computation.
type InvoiceLineInput struct {
	ItemID      string
	Description string
	Quantity    int
	UnitPrice   decimal.Decimal
	DiscountPct decimal.Decimal // line-level percentage discount, 0-100
}

// InvoiceLine is a computed invoice position. TaxableValue is the discounted
// subtotal the GST components are charged on.
type InvoiceLine struct {
	ItemID         string
	Description    string
	Quantity       int
	UnitPrice      decimal.Decimal
	DiscountPct    decimal.Decimal
	DiscountAmount decimal.Decimal
	TaxableValue   decimal.Decimal
	CGST           decimal.Decimal
	SGST           decimal.Decimal
	LineTotal      decimal.Decimal
}

// Invoice is a fully computed bill. Subtotal is the sum of line taxable
// values; the grand-total discount applies to that subtotal after tax.
type Invoice struct {
	Number           string
	Date             time.Time
	CustomerName     string
	CustomerAddress  string
	Lines            []InvoiceLine
	Subtotal         decimal.Decimal
	TotalCGST        decimal.Decimal
	TotalSGST        decimal.Decimal
	GrandDiscountPct decimal.Decimal
	GrandDiscount    decimal.Decimal
	GrandTotal       decimal.Decimal
}

// InvoiceRequest describes a bill to compute.
type InvoiceRequest struct {
	Number           string
	Date             time.Time
	CustomerName     string
	CustomerAddress  string
	CGSTRate         decimal.Decimal // percentage
	SGSTRate         decimal.Decimal // percentage
	GrandDiscountPct decimal.Decimal // percentage applied to the subtotal
	Lines            []InvoiceLineInput
}

var hundred = decimal.NewFromInt(100)

func pctOf(base, rate decimal.Decimal) decimal.Decimal {
	return base.Mul(rate).Div(hundred)
}

// BuildInvoice computes an invoice from the request. Pure function of its
// input; it never reads or writes store state.
//
// Per line: subtotal = unitPrice * qty; discount = subtotal * pct/100;
// taxableValue = subtotal - discount; CGST/SGST = taxableValue * rate/100;
// lineTotal = taxableValue + CGST + SGST. Invoice grand total =
// subtotal-of-taxable-values + total CGST + total SGST - grand discount,
// where the grand discount is taken on the subtotal.
func BuildInvoice(req InvoiceRequest) (*Invoice, error) {
	if len(req.Lines) == 0 {
		return nil, fmt.Errorf("%w: invoice needs at least one line", ErrValidation)
	}
	for _, r := range []struct {
		name string
		pct  decimal.Decimal
	}{
		{"cgst rate", req.CGSTRate},
		{"sgst rate", req.SGSTRate},
		{"grand discount", req.GrandDiscountPct},
	} {
		if r.pct.IsNegative() || r.pct.GreaterThan(hundred) {
			return nil, fmt.Errorf("%w: %s must be between 0 and 100", ErrValidation, r.name)
		}
	}

	inv := &Invoice{
		Number:           req.Number,
		Date:             req.Date,
		CustomerName:     req.CustomerName,
		CustomerAddress:  req.CustomerAddress,
		GrandDiscountPct: req.GrandDiscountPct,
	}
	if inv.Date.IsZero() {
		inv.Date = time.Now().UTC()
	}

	for i, in := range req.Lines {
		if in.Quantity <= 0 {
			return nil, fmt.Errorf("%w: line %d quantity must be positive", ErrValidation, i+1)
		}
		if in.UnitPrice.IsNegative() {
			return nil, fmt.Errorf("%w: line %d unit price must not be negative", ErrValidation, i+1)
		}
		if in.DiscountPct.IsNegative() || in.DiscountPct.GreaterThan(hundred) {
			return nil, fmt.Errorf("%w: line %d discount must be between 0 and 100", ErrValidation, i+1)
		}

		subtotal := in.UnitPrice.Mul(decimal.NewFromInt(int64(in.Quantity)))
		discount := pctOf(subtotal, in.DiscountPct)
		taxable := subtotal.Sub(discount)
		cgst := pctOf(taxable, req.CGSTRate)
		sgst := pctOf(taxable, req.SGSTRate)

		inv.Lines = append(inv.Lines, InvoiceLine{
			ItemID:         in.ItemID,
			Description:    in.Description,
			Quantity:       in.Quantity,
			UnitPrice:      in.UnitPrice,
			DiscountPct:    in.DiscountPct,
			DiscountAmount: discount,
			TaxableValue:   taxable,
			CGST:           cgst,
			SGST:           sgst,
			LineTotal:      taxable.Add(cgst).Add(sgst),
		})

		inv.Subtotal = inv.Subtotal.Add(taxable)
		inv.TotalCGST = inv.TotalCGST.Add(cgst)
		inv.TotalSGST = inv.TotalSGST.Add(sgst)
	}

	inv.GrandDiscount = pctOf(inv.Subtotal, req.GrandDiscountPct)
	inv.GrandTotal = inv.Subtotal.Add(inv.TotalCGST).Add(inv.TotalSGST).Sub(inv.GrandDiscount)
	return inv, nil
}

// Render returns the invoice as plain text, suitable for terminal display or
// piping to a file.
func (inv *Invoice) Render() string {
	var b strings.Builder
	line := strings.Repeat("=", 78)
	thin := strings.Repeat("-", 78)

	fmt.Fprintln(&b, line)
	fmt.Fprintf(&b, "  INVOICE %s\n", inv.Number)
	fmt.Fprintf(&b, "  Date     : %s\n", inv.Date.Format("2006-01-02"))
	fmt.Fprintf(&b, "  Customer : %s\n", inv.CustomerName)
	if inv.CustomerAddress != "" {
		fmt.Fprintf(&b, "  Address  : %s\n", inv.CustomerAddress)
	}
	fmt.Fprintln(&b, line)
	fmt.Fprintf(&b, "  %-26s %4s %10s %6s %10s %8s %8s\n",
		"DESCRIPTION", "QTY", "PRICE", "DISC%", "TAXABLE", "CGST", "SGST")
	fmt.Fprintln(&b, thin)
	for _, l := range inv.Lines {
		fmt.Fprintf(&b, "  %-26s %4d %10s %5s%% %10s %8s %8s\n",
			l.Description, l.Quantity, l.UnitPrice.StringFixed(2),
			l.DiscountPct.StringFixed(1), l.TaxableValue.StringFixed(2),
			l.CGST.StringFixed(2), l.SGST.StringFixed(2))
	}
	fmt.Fprintln(&b, thin)
	fmt.Fprintf(&b, "  %62s %13s\n", "Subtotal:", inv.Subtotal.StringFixed(2))
	fmt.Fprintf(&b, "  %62s %13s\n", "Total CGST:", inv.TotalCGST.StringFixed(2))
	fmt.Fprintf(&b, "  %62s %13s\n", "Total SGST:", inv.TotalSGST.StringFixed(2))
	if !inv.GrandDiscount.IsZero() {
		fmt.Fprintf(&b, "  %62s %13s\n",
			fmt.Sprintf("Discount (%s%%):", inv.GrandDiscountPct.StringFixed(1)),
			inv.GrandDiscount.Neg().StringFixed(2))
	}
	fmt.Fprintf(&b, "  %62s %13s\n", "GRAND TOTAL:", inv.GrandTotal.StringFixed(2))
	fmt.Fprintln(&b, line)
	return b.String()
}
