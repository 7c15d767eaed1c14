package storage

import (
	"context"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	"platepilot/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var salesColumnNames = []string{"date", "restaurant_id", "total_revenue", "total_orders", "total_items",
	"cancelled_orders", "payment_cash", "payment_card", "payment_upi", "payment_online",
	"type_delivery", "type_pickup", "type_dine_in"}

func setupLedger(t *testing.T) (*PostgresSalesLedger, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewPostgresSalesLedger(db, time.UTC), mock
}

func deliveryDelta() domain.SalesDelta {
	o := domain.Order{
		ID:            "order-a",
		RestaurantID:  "R1",
		Total:         decimal.NewFromInt(500),
		PaymentMethod: "upi",
		Items:         []domain.OrderItem{{Quantity: 2}},
	}
	return domain.DeliveryDelta(o, time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC))
}

func anyArgs(n int) []driver.Value {
	args := make([]driver.Value, n)
	for i := range args {
		args[i] = sqlmock.AnyArg()
	}
	return args
}

func TestPostgresSalesLedger_Apply(t *testing.T) {
	markerSQL := regexp.QuoteMeta(`INSERT INTO sales_applied_orders (order_id, outcome) VALUES ($1, $2) ON CONFLICT DO NOTHING`)
	upsertSQL := regexp.QuoteMeta(`INSERT INTO sales_records`)
	upsertArgs := append([]driver.Value{"2024-03-14", "R1"}, anyArgs(11)...)

	tests := []struct {
		name            string
		delta           func() domain.SalesDelta
		prepareMocks    func(mock sqlmock.Sqlmock)
		expectedApplied bool
		expectedError   bool
	}{
		{
			name:  "first_application",
			delta: deliveryDelta,
			prepareMocks: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(markerSQL).WithArgs("order-a", "delivered").WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec(upsertSQL).WithArgs(upsertArgs...).WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
			expectedApplied: true,
		},
		{
			name:  "duplicate_outcome",
			delta: deliveryDelta,
			prepareMocks: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(markerSQL).WithArgs("order-a", "delivered").WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectRollback()
			},
		},
		{
			name: "no_order_id_skips_marker",
			delta: func() domain.SalesDelta {
				d := deliveryDelta()
				d.OrderID = ""
				return d
			},
			prepareMocks: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(upsertSQL).WithArgs(upsertArgs...).WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
			expectedApplied: true,
		},
		{
			name:  "upsert_fails",
			delta: deliveryDelta,
			prepareMocks: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(markerSQL).WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec(upsertSQL).WillReturnError(errors.New("deadlock detected"))
				mock.ExpectRollback()
			},
			expectedError: true,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			ledger, mock := setupLedger(t)
			testCase.prepareMocks(mock)

			applied, err := ledger.Apply(context.Background(), testCase.delta())

			if testCase.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, testCase.expectedApplied, applied)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPostgresSalesLedger_Find(t *testing.T) {
	ctx := context.Background()
	day := time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC)
	findSQL := regexp.QuoteMeta(`FROM sales_records WHERE date = $1 AND restaurant_id = $2`)

	t.Run("absent", func(t *testing.T) {
		ledger, mock := setupLedger(t)
		mock.ExpectQuery(findSQL).WithArgs("2024-03-14", "R1").WillReturnRows(sqlmock.NewRows(salesColumnNames))

		rec, err := ledger.Find(ctx, day, "R1")

		require.NoError(t, err)
		assert.Nil(t, rec)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("present", func(t *testing.T) {
		ledger, mock := setupLedger(t)
		rows := sqlmock.NewRows(salesColumnNames).
			AddRow(day, "R1", "800.00", 2, 3, 0, "300.00", "0", "500.00", "0", 1, 1, 0)
		mock.ExpectQuery(findSQL).WithArgs("2024-03-14", "R1").WillReturnRows(rows)

		rec, err := ledger.Find(ctx, day, "R1")

		require.NoError(t, err)
		require.NotNil(t, rec)
		assert.True(t, rec.Date.Equal(day))
		assert.Equal(t, "R1", rec.RestaurantID)
		assert.True(t, decimal.NewFromInt(800).Equal(rec.TotalRevenue))
		assert.True(t, decimal.NewFromInt(400).Equal(rec.AverageOrderValue))
		assert.True(t, decimal.NewFromInt(500).Equal(rec.PaymentMethods.UPI))
		assert.Equal(t, domain.OrderTypeBreakdown{Delivery: 1, Pickup: 1}, rec.OrderTypes)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgresSalesLedger_FindKeepsExactAverage(t *testing.T) {
	day := time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC)
	ledger, mock := setupLedger(t)
	rows := sqlmock.NewRows(salesColumnNames).
		AddRow(day, "", "100.00", 3, 3, 0, "100.00", "0", "0", "0", 3, 0, 0)
	mock.ExpectQuery(regexp.QuoteMeta(`FROM sales_records WHERE date = $1`)).
		WithArgs("2024-03-14", "").
		WillReturnRows(rows)

	rec, err := ledger.Find(context.Background(), day, "")

	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.True(t, decimal.NewFromInt(100).Div(decimal.NewFromInt(3)).Equal(rec.AverageOrderValue))
	assert.False(t, decimal.RequireFromString("33.33").Equal(rec.AverageOrderValue))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresSalesLedger_FindRangeReanchorsDates(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	kolkata := time.FixedZone("IST", 5*3600+1800)
	ledger := NewPostgresSalesLedger(db, kolkata)

	from := time.Date(2024, 3, 1, 0, 0, 0, 0, kolkata)
	to := time.Date(2024, 3, 31, 0, 0, 0, 0, kolkata)
	rows := sqlmock.NewRows(salesColumnNames).
		AddRow(time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), "", "10", 1, 1, 0, "10", "0", "0", "0", 1, 0, 0).
		AddRow(time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), "", "20", 1, 1, 1, "0", "20", "0", "0", 0, 1, 0)
	mock.ExpectQuery(regexp.QuoteMeta(`WHERE TRUE AND date >= $1 AND date <= $2 ORDER BY date ASC, restaurant_id ASC`)).
		WithArgs("2024-03-01", "2024-03-31").
		WillReturnRows(rows)

	records, err := ledger.FindRange(context.Background(), from, to, "")

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, time.Date(2024, 3, 2, 0, 0, 0, 0, kolkata), records[0].Date)
	assert.Equal(t, 1, records[1].CancelledOrders)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresSalesLedger_FindRangeOpenBounds(t *testing.T) {
	ledger, mock := setupLedger(t)
	mock.ExpectQuery(regexp.QuoteMeta(`WHERE TRUE AND restaurant_id = $1 ORDER BY`)).
		WithArgs("R7").
		WillReturnRows(sqlmock.NewRows(salesColumnNames))

	records, err := ledger.FindRange(context.Background(), time.Time{}, time.Time{}, "R7")

	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresSalesLedger_DeleteAll(t *testing.T) {
	ledger, mock := setupLedger(t)
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM sales_applied_orders`)).WillReturnResult(sqlmock.NewResult(0, 4))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM sales_records`)).WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	require.NoError(t, ledger.DeleteAll(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
