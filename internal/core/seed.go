package core

import (
	"time"

	"github.com/shopspring/decimal"
)

func seedDec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func seedDate(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func seedTS(s string) time.Time {
	t, _ := time.Parse(time.RFC3339, s)
	return t
}

// SeedSnapshot returns the demo dataset used when no persisted state exists.
// Sale totals follow total = price * qty * (1 - discount/100).
func SeedSnapshot() *Snapshot {
	return &Snapshot{
		StockItems: []StockItem{
			{ID: "STK001", Name: "Wireless Mouse", Category: "Electronics", Quantity: 45, CostPrice: seedDec("14.00"), SellingPrice: seedDec("25.99"), Supplier: "TechGear Inc.", AddedDate: seedDate("2023-10-01")},
			{ID: "STK002", Name: "Mechanical Keyboard", Category: "Electronics", Quantity: 20, CostPrice: seedDec("68.00"), SellingPrice: seedDec("120.00"), Supplier: "GamerZChoice", AddedDate: seedDate("2023-10-05")},
			{ID: "STK003", Name: "Organic Coffee Beans", Category: "Groceries", Quantity: 150, CostPrice: seedDec("11.20"), SellingPrice: seedDec("18.50"), Supplier: "PureBean Co.", AddedDate: seedDate("2023-10-02")},
			{ID: "STK004", Name: "Yoga Mat", Category: "Sports", Quantity: 8, CostPrice: seedDec("17.50"), SellingPrice: seedDec("30.00"), Supplier: "FitLife", AddedDate: seedDate("2023-09-28")},
			{ID: "STK005", Name: "The Art of Programming", Category: "Books", Quantity: 30, CostPrice: seedDec("26.00"), SellingPrice: seedDec("45.00"), Supplier: "Knowledge Pubs", AddedDate: seedDate("2023-10-10")},
			{ID: "STK006", Name: "LED Desk Lamp", Category: "Home Goods", Quantity: 60, CostPrice: seedDec("8.40"), SellingPrice: seedDec("15.75"), Supplier: "BrightHome", AddedDate: seedDate("2023-10-11")},
			{ID: "STK007", Name: "Bluetooth Speaker", Category: "Electronics", Quantity: 2, CostPrice: seedDec("48.00"), SellingPrice: seedDec("79.99"), Supplier: "SoundWave", AddedDate: seedDate("2023-10-12")},
		},
		Customers: []Customer{
			{ID: "CUS001", Name: "KOUSIK AGASTI", Email: "kousik.a@example.com", Phone: "123-456-7890", Address: "123 Maple St, Springfield", JoinDate: seedDate("2023-01-15"), Avatar: "https://i.pravatar.cc/40?u=a042581f4e29026024d"},
			{ID: "CUS002", Name: "SAGNIK AGASTI", Email: "sagnik.a@example.com", Phone: "234-567-8901", Address: "456 Oak Ave, Metropolis", JoinDate: seedDate("2023-02-20"), Avatar: "https://i.pravatar.cc/40?u=a042581f4e29026704d"},
			{ID: "CUS003", Name: "GOURANGA PRADHAN", Email: "gouranga.p@example.com", Phone: "345-678-9012", Address: "789 Pine Ln, Gotham", JoinDate: seedDate("2023-03-10"), Avatar: "https://i.pravatar.cc/40?u=a04258114e29026702d"},
			{ID: "CUS004", Name: "KINGSHUK AGASTI", Email: "kingshuk.a@example.com", Phone: "456-789-0123", Address: "101 Amazon Cir, Themyscira", JoinDate: seedDate("2023-04-05"), Avatar: "https://i.pravatar.cc/40?u=a042581f4e29026708c"},
			{ID: "CUS005", Name: "HARI MAHATO", Email: "hari.m@example.com", Phone: "567-890-1234", Address: "221B Baker St, London", JoinDate: seedDate("2023-05-12"), Avatar: "https://i.pravatar.cc/40?u=a092581f4e29026712d"},
		},
		Sales: []Sale{
			{ID: "SALE001", ItemID: "STK001", ItemName: "Wireless Mouse", CustomerID: "CUS001", CustomerName: "KOUSIK AGASTI", CustomerAvatar: "https://i.pravatar.cc/40?u=a042581f4e29026024d", Quantity: 2, Price: seedDec("25.99"), Discount: seedDec("0"), Total: seedDec("51.98"), Date: seedTS("2023-10-15T10:30:00Z")},
			{ID: "SALE002", ItemID: "STK003", ItemName: "Organic Coffee Beans", CustomerID: "CUS002", CustomerName: "SAGNIK AGASTI", CustomerAvatar: "https://i.pravatar.cc/40?u=a042581f4e29026704d", Quantity: 1, Price: seedDec("18.50"), Discount: seedDec("0"), Total: seedDec("18.50"), Date: seedTS("2023-10-15T11:00:00Z")},
			{ID: "SALE003", ItemID: "STK002", ItemName: "Mechanical Keyboard", CustomerID: "CUS003", CustomerName: "GOURANGA PRADHAN", CustomerAvatar: "https://i.pravatar.cc/40?u=a04258114e29026702d", Quantity: 1, Price: seedDec("120.00"), Discount: seedDec("10"), Total: seedDec("108.00"), Date: seedTS("2023-10-14T14:20:00Z")},
			{ID: "SALE004", ItemID: "STK004", ItemName: "Yoga Mat", CustomerID: "CUS001", CustomerName: "KOUSIK AGASTI", CustomerAvatar: "https://i.pravatar.cc/40?u=a042581f4e29026024d", Quantity: 1, Price: seedDec("30.00"), Discount: seedDec("0"), Total: seedDec("30.00"), Date: seedTS("2023-10-14T16:45:00Z")},
			{ID: "SALE005", ItemID: "STK005", ItemName: "The Art of Programming", CustomerID: "CUS004", CustomerName: "KINGSHUK AGASTI", CustomerAvatar: "https://i.pravatar.cc/40?u=a042581f4e29026708c", Quantity: 1, Price: seedDec("45.00"), Discount: seedDec("5"), Total: seedDec("42.75"), Date: seedTS("2023-10-13T09:05:00Z")},
		},
	}
}
