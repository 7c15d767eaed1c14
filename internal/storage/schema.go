package storage

import (
	"context"
	"database/sql"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS orders (
		id TEXT PRIMARY KEY,
		order_number TEXT NOT NULL UNIQUE,
		user_id TEXT NOT NULL DEFAULT 'guest',
		restaurant_id TEXT NOT NULL DEFAULT '',
		restaurant_name TEXT NOT NULL DEFAULT '',
		customer_name TEXT NOT NULL DEFAULT '',
		customer_email TEXT NOT NULL DEFAULT '',
		customer_phone TEXT NOT NULL DEFAULT '',
		delivery_address TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT 'pending',
		total NUMERIC(14,2) NOT NULL DEFAULT 0 CHECK (total >= 0),
		payment_method TEXT NOT NULL DEFAULT '',
		order_type TEXT NOT NULL DEFAULT '',
		items JSONB NOT NULL DEFAULT '[]'::jsonb,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_status_created ON orders (status, created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_restaurant ON orders (restaurant_id)`,
	// restaurant_id '' is the unscoped bucket; NULL would break the unique key.
	`CREATE TABLE IF NOT EXISTS sales_records (
		date DATE NOT NULL,
		restaurant_id TEXT NOT NULL DEFAULT '',
		total_revenue NUMERIC(14,2) NOT NULL DEFAULT 0,
		total_orders INTEGER NOT NULL DEFAULT 0,
		total_items INTEGER NOT NULL DEFAULT 0,
		cancelled_orders INTEGER NOT NULL DEFAULT 0,
		average_order_value NUMERIC GENERATED ALWAYS AS (
			CASE WHEN total_orders > 0 THEN total_revenue / total_orders ELSE 0 END
		) STORED,
		payment_cash NUMERIC(14,2) NOT NULL DEFAULT 0,
		payment_card NUMERIC(14,2) NOT NULL DEFAULT 0,
		payment_upi NUMERIC(14,2) NOT NULL DEFAULT 0,
		payment_online NUMERIC(14,2) NOT NULL DEFAULT 0,
		type_delivery INTEGER NOT NULL DEFAULT 0,
		type_pickup INTEGER NOT NULL DEFAULT 0,
		type_dine_in INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		PRIMARY KEY (date, restaurant_id)
	)`,
	`CREATE TABLE IF NOT EXISTS sales_applied_orders (
		order_id TEXT NOT NULL,
		outcome TEXT NOT NULL,
		applied_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		PRIMARY KEY (order_id, outcome)
	)`,
}

func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
