package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"platepilot/internal/domain"
)

// average_order_value is left to Go so reads carry the exact quotient
// rather than the scale Postgres picks for numeric division.
const salesColumns = `date, restaurant_id, total_revenue, total_orders, total_items, cancelled_orders,
	payment_cash, payment_card, payment_upi, payment_online,
	type_delivery, type_pickup, type_dine_in`

// The conflict branch adds the incoming deltas to the stored row, so
// concurrent applies to one bucket commute.
const upsertSalesRecord = `
	INSERT INTO sales_records (date, restaurant_id, total_revenue, total_orders, total_items,
		cancelled_orders, payment_cash, payment_card, payment_upi, payment_online,
		type_delivery, type_pickup, type_dine_in)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	ON CONFLICT (date, restaurant_id) DO UPDATE SET
		total_revenue = sales_records.total_revenue + EXCLUDED.total_revenue,
		total_orders = sales_records.total_orders + EXCLUDED.total_orders,
		total_items = sales_records.total_items + EXCLUDED.total_items,
		cancelled_orders = sales_records.cancelled_orders + EXCLUDED.cancelled_orders,
		payment_cash = sales_records.payment_cash + EXCLUDED.payment_cash,
		payment_card = sales_records.payment_card + EXCLUDED.payment_card,
		payment_upi = sales_records.payment_upi + EXCLUDED.payment_upi,
		payment_online = sales_records.payment_online + EXCLUDED.payment_online,
		type_delivery = sales_records.type_delivery + EXCLUDED.type_delivery,
		type_pickup = sales_records.type_pickup + EXCLUDED.type_pickup,
		type_dine_in = sales_records.type_dine_in + EXCLUDED.type_dine_in,
		updated_at = now()`

type PostgresSalesLedger struct {
	DB       *sql.DB
	Location *time.Location
}

func NewPostgresSalesLedger(db *sql.DB, loc *time.Location) *PostgresSalesLedger {
	if loc == nil {
		loc = time.UTC
	}
	return &PostgresSalesLedger{DB: db, Location: loc}
}

// Apply records the order outcome marker and increments the bucket in one
// transaction. It reports false when the outcome was already applied.
func (l *PostgresSalesLedger) Apply(ctx context.Context, d domain.SalesDelta) (bool, error) {
	tx, err := l.DB.BeginTx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	if d.OrderID != "" {
		res, err := tx.ExecContext(ctx,
			`INSERT INTO sales_applied_orders (order_id, outcome) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			d.OrderID, string(d.Outcome))
		if err != nil {
			return false, fmt.Errorf("mark order %s %s: %w", d.OrderID, d.Outcome, err)
		}
		if n, err := res.RowsAffected(); err != nil {
			return false, err
		} else if n == 0 {
			return false, nil
		}
	}

	if _, err := tx.ExecContext(ctx, upsertSalesRecord,
		l.dateKey(d.Date), d.RestaurantID, d.Revenue, d.Orders, d.Items, d.Cancelled,
		d.Payments.Cash, d.Payments.Card, d.Payments.UPI, d.Payments.Online,
		d.Types.Delivery, d.Types.Pickup, d.Types.DineIn,
	); err != nil {
		return false, fmt.Errorf("upsert sales record: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, err
	}
	return true, nil
}

func (l *PostgresSalesLedger) dateKey(t time.Time) string {
	return t.In(l.Location).Format(domain.DateLayout)
}

func (l *PostgresSalesLedger) scanRecord(row rowScanner) (domain.SalesRecord, error) {
	var (
		rec  domain.SalesRecord
		date time.Time
	)
	err := row.Scan(&date, &rec.RestaurantID, &rec.TotalRevenue, &rec.TotalOrders, &rec.TotalItems,
		&rec.CancelledOrders, &rec.PaymentMethods.Cash, &rec.PaymentMethods.Card,
		&rec.PaymentMethods.UPI, &rec.PaymentMethods.Online, &rec.OrderTypes.Delivery,
		&rec.OrderTypes.Pickup, &rec.OrderTypes.DineIn)
	if err != nil {
		return rec, err
	}
	// DATE comes back as UTC midnight; re-anchor it in the ledger's zone.
	rec.Date = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, l.Location)
	rec.AverageOrderValue = domain.AverageOrderValue(rec.TotalRevenue, rec.TotalOrders)
	return rec, nil
}

// Find returns the record for the exact key, or nil when absent.
func (l *PostgresSalesLedger) Find(ctx context.Context, date time.Time, restaurantID string) (*domain.SalesRecord, error) {
	row := l.DB.QueryRowContext(ctx,
		`SELECT `+salesColumns+` FROM sales_records WHERE date = $1 AND restaurant_id = $2`,
		l.dateKey(date), restaurantID)
	rec, err := l.scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// FindRange returns records with from <= date <= to sorted by date. An empty
// restaurantID matches every bucket; zero bounds are open.
func (l *PostgresSalesLedger) FindRange(ctx context.Context, from, to time.Time, restaurantID string) ([]domain.SalesRecord, error) {
	query := `SELECT ` + salesColumns + ` FROM sales_records WHERE TRUE`
	var args []any
	if !from.IsZero() {
		args = append(args, l.dateKey(from))
		query += fmt.Sprintf(" AND date >= $%d", len(args))
	}
	if !to.IsZero() {
		args = append(args, l.dateKey(to))
		query += fmt.Sprintf(" AND date <= $%d", len(args))
	}
	if restaurantID != "" {
		args = append(args, restaurantID)
		query += fmt.Sprintf(" AND restaurant_id = $%d", len(args))
	}
	query += ` ORDER BY date ASC, restaurant_id ASC`

	rows, err := l.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []domain.SalesRecord{}
	for rows.Next() {
		rec, err := l.scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// DeleteAll clears the ledger and its applied-order markers.
func (l *PostgresSalesLedger) DeleteAll(ctx context.Context) error {
	tx, err := l.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM sales_applied_orders`); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM sales_records`); err != nil {
		return err
	}
	return tx.Commit()
}
