package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"stockpilot/internal/core"
)

// PGStore persists snapshots in PostgreSQL. Save rewrites the collections in
// one transaction, so Load never observes a half-written snapshot.
type PGStore struct {
	pool *pgxpool.Pool
}

func NewPGStore(pool *pgxpool.Pool) *PGStore {
	return &PGStore{pool: pool}
}

func (p *PGStore) Load(ctx context.Context) (*core.Snapshot, error) {
	snap := &core.Snapshot{}

	rows, err := p.pool.Query(ctx, `
		SELECT id, name, category, quantity, cost_price, selling_price, supplier, added_date
		FROM stock_items
		ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query stock items: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var it core.StockItem
		if err := rows.Scan(&it.ID, &it.Name, &it.Category, &it.Quantity,
			&it.CostPrice, &it.SellingPrice, &it.Supplier, &it.AddedDate); err != nil {
			return nil, fmt.Errorf("scan stock item: %w", err)
		}
		snap.StockItems = append(snap.StockItems, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read stock items: %w", err)
	}

	rows, err = p.pool.Query(ctx, `
		SELECT id, name, email, phone, address, join_date, avatar
		FROM customers
		ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query customers: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var c core.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Address,
			&c.JoinDate, &c.Avatar); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		snap.Customers = append(snap.Customers, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read customers: %w", err)
	}

	rows, err = p.pool.Query(ctx, `
		SELECT id, item_id, item_name, customer_id, customer_name, customer_avatar,
		       quantity, price, discount, total, sale_date
		FROM sales
		ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query sales: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var sl core.Sale
		if err := rows.Scan(&sl.ID, &sl.ItemID, &sl.ItemName, &sl.CustomerID,
			&sl.CustomerName, &sl.CustomerAvatar, &sl.Quantity,
			&sl.Price, &sl.Discount, &sl.Total, &sl.Date); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		snap.Sales = append(snap.Sales, sl)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read sales: %w", err)
	}

	rows, err = p.pool.Query(ctx, `
		SELECT item_id, kind, delta, sale_id, at
		FROM stock_movements
		ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("query stock movements: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var m core.StockMovement
		if err := rows.Scan(&m.ItemID, &m.Kind, &m.Delta, &m.SaleID, &m.At); err != nil {
			return nil, fmt.Errorf("scan stock movement: %w", err)
		}
		snap.Movements = append(snap.Movements, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read stock movements: %w", err)
	}

	if len(snap.StockItems) == 0 && len(snap.Customers) == 0 && len(snap.Sales) == 0 {
		return nil, nil
	}
	return snap, nil
}

func (p *PGStore) Save(ctx context.Context, snap *core.Snapshot) error {
	tx, err := p.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin snapshot tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx,
		"TRUNCATE TABLE stock_items, customers, sales, stock_movements"); err != nil {
		return fmt.Errorf("clear snapshot tables: %w", err)
	}

	for _, it := range snap.StockItems {
		if _, err := tx.Exec(ctx, `
			INSERT INTO stock_items (id, name, category, quantity, cost_price, selling_price, supplier, added_date)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			it.ID, it.Name, it.Category, it.Quantity,
			it.CostPrice, it.SellingPrice, it.Supplier, it.AddedDate,
		); err != nil {
			return fmt.Errorf("insert stock item %s: %w", it.ID, err)
		}
	}

	for _, c := range snap.Customers {
		if _, err := tx.Exec(ctx, `
			INSERT INTO customers (id, name, email, phone, address, join_date, avatar)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			c.ID, c.Name, c.Email, c.Phone, c.Address, c.JoinDate, c.Avatar,
		); err != nil {
			return fmt.Errorf("insert customer %s: %w", c.ID, err)
		}
	}

	for _, sl := range snap.Sales {
		if _, err := tx.Exec(ctx, `
			INSERT INTO sales (id, item_id, item_name, customer_id, customer_name, customer_avatar,
			                   quantity, price, discount, total, sale_date)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
			sl.ID, sl.ItemID, sl.ItemName, sl.CustomerID, sl.CustomerName, sl.CustomerAvatar,
			sl.Quantity, sl.Price, sl.Discount, sl.Total, sl.Date,
		); err != nil {
			return fmt.Errorf("insert sale %s: %w", sl.ID, err)
		}
	}

	for _, m := range snap.Movements {
		if _, err := tx.Exec(ctx, `
			INSERT INTO stock_movements (item_id, kind, delta, sale_id, at)
			VALUES ($1, $2, $3, $4, $5)`,
			m.ItemID, m.Kind, m.Delta, m.SaleID, m.At,
		); err != nil {
			return fmt.Errorf("insert stock movement: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit snapshot: %w", err)
	}
	return nil
}
