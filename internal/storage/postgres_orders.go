package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"platepilot/internal/domain"

	"github.com/lib/pq"
)

const orderColumns = `id, order_number, user_id, restaurant_id, restaurant_name, customer_name,
	customer_email, customer_phone, delivery_address, status, total, payment_method, order_type,
	items, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

type PostgresOrderRepository struct {
	DB *sql.DB
}

func NewPostgresOrderRepository(db *sql.DB) *PostgresOrderRepository {
	return &PostgresOrderRepository{DB: db}
}

func scanOrder(row rowScanner) (domain.Order, error) {
	var (
		o      domain.Order
		status string
		items  []byte
	)
	if err := row.Scan(&o.ID, &o.OrderNumber, &o.UserID, &o.RestaurantID, &o.RestaurantName,
		&o.CustomerName, &o.CustomerEmail, &o.CustomerPhone, &o.DeliveryAddress, &status,
		&o.Total, &o.PaymentMethod, &o.OrderType, &items, &o.CreatedAt, &o.UpdatedAt); err != nil {
		return o, err
	}
	o.Status = domain.OrderStatus(status)
	o.Items = []domain.OrderItem{}
	if len(items) > 0 {
		if err := json.Unmarshal(items, &o.Items); err != nil {
			return o, fmt.Errorf("decode items of order %s: %w", o.ID, err)
		}
	}
	return o, nil
}

func (r *PostgresOrderRepository) Create(ctx context.Context, o *domain.Order) error {
	items, err := json.Marshal(o.Items)
	if err != nil {
		return err
	}

	err = r.DB.QueryRowContext(ctx, `
		INSERT INTO orders (id, order_number, user_id, restaurant_id, restaurant_name, customer_name,
			customer_email, customer_phone, delivery_address, status, total, payment_method, order_type, items)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING created_at, updated_at`,
		o.ID, o.OrderNumber, o.UserID, o.RestaurantID, o.RestaurantName, o.CustomerName,
		o.CustomerEmail, o.CustomerPhone, o.DeliveryAddress, string(o.Status), o.Total,
		o.PaymentMethod, o.OrderType, items,
	).Scan(&o.CreatedAt, &o.UpdatedAt)

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return domain.ErrDuplicateOrderNumber
	}
	return err
}

// Get looks an order up by id or by order number.
func (r *PostgresOrderRepository) Get(ctx context.Context, idOrNumber string) (*domain.Order, error) {
	row := r.DB.QueryRowContext(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id = $1 OR order_number = $1 LIMIT 1`, idOrNumber)
	o, err := scanOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func buildOrderWhere(f domain.OrderFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if len(f.Statuses) > 0 {
		conds = append(conds, "status = ANY("+arg(pq.Array(statusStrings(f.Statuses)))+")")
	}
	if len(f.ExcludeStatuses) > 0 {
		conds = append(conds, "NOT (status = ANY("+arg(pq.Array(statusStrings(f.ExcludeStatuses)))+"))")
	}
	if f.RestaurantID != "" {
		conds = append(conds, "restaurant_id = "+arg(f.RestaurantID))
	}
	if f.UserID != "" {
		conds = append(conds, "user_id = "+arg(f.UserID))
	}
	if f.OrderNumber != "" {
		conds = append(conds, "order_number = "+arg(f.OrderNumber))
	}
	if !f.CreatedFrom.IsZero() {
		conds = append(conds, "created_at >= "+arg(f.CreatedFrom))
	}
	if !f.CreatedBefore.IsZero() {
		conds = append(conds, "created_at < "+arg(f.CreatedBefore))
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func statusStrings(statuses []domain.OrderStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}

func (r *PostgresOrderRepository) List(ctx context.Context, f domain.OrderFilter) ([]domain.Order, error) {
	where, args := buildOrderWhere(f)
	query := `SELECT ` + orderColumns + ` FROM orders` + where
	if f.OldestFirst {
		query += ` ORDER BY created_at ASC, order_number ASC`
	} else {
		query += ` ORDER BY created_at DESC, order_number DESC`
	}
	if f.Limit > 0 {
		args = append(args, f.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (r *PostgresOrderRepository) Count(ctx context.Context, f domain.OrderFilter) (int, error) {
	where, args := buildOrderWhere(f)
	var n int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM orders`+where, args...).Scan(&n)
	return n, err
}

// Update applies a partial update and returns the updated order together
// with the status it had before.
func (r *PostgresOrderRepository) Update(ctx context.Context, idOrNumber string, upd domain.OrderUpdate) (*domain.Order, domain.OrderStatus, error) {
	status, err := upd.Normalize()
	if err != nil {
		return nil, "", err
	}
	var statusArg *string
	if status != nil {
		s := string(*status)
		statusArg = &s
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, "", err
	}
	defer tx.Rollback()

	var id, previous string
	err = tx.QueryRowContext(ctx,
		`SELECT id, status FROM orders WHERE id = $1 OR order_number = $1 LIMIT 1 FOR UPDATE`, idOrNumber).
		Scan(&id, &previous)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, "", domain.ErrOrderNotFound
	}
	if err != nil {
		return nil, "", err
	}

	row := tx.QueryRowContext(ctx, `
		UPDATE orders SET
			status = COALESCE($2::text, status),
			payment_method = COALESCE($3::text, payment_method),
			order_type = COALESCE($4::text, order_type),
			delivery_address = COALESCE($5::text, delivery_address),
			updated_at = now()
		WHERE id = $1
		RETURNING `+orderColumns,
		id, statusArg, upd.PaymentMethod, upd.OrderType, upd.DeliveryAddress)
	o, err := scanOrder(row)
	if err != nil {
		return nil, "", err
	}

	if err := tx.Commit(); err != nil {
		return nil, "", err
	}
	return &o, domain.OrderStatus(previous), nil
}

func (r *PostgresOrderRepository) Delete(ctx context.Context, idOrNumber string) (int64, error) {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM orders WHERE id = $1 OR order_number = $1`, idOrNumber)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresOrderRepository) DeleteAll(ctx context.Context) (int64, error) {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM orders`)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresOrderRepository) TopSellingItems(ctx context.Context, limit int) ([]domain.TopItem, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT COALESCE(item->>'itemId', ''), COALESCE(item->>'name', ''),
			SUM((item->>'quantity')::int) AS quantity,
			SUM((item->>'price')::numeric * (item->>'quantity')::int) AS revenue
		FROM orders, jsonb_array_elements(items) AS item
		WHERE status = $1
		GROUP BY 1, 2
		ORDER BY quantity DESC, 2 ASC
		LIMIT $2`, string(domain.StatusDelivered), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.TopItem{}
	for rows.Next() {
		var it domain.TopItem
		if err := rows.Scan(&it.ItemID, &it.Name, &it.Quantity, &it.Revenue); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
