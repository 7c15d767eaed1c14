package tests

import (
	"context"
	"testing"
	"time"

	"platepilot/internal/domain"
	"platepilot/internal/storage"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var dayD = time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), "want %s, got %s", want, got.String())
}

func nullLogger() logrus.FieldLogger {
	logger, _ := test.NewNullLogger()
	return logger
}

// orderA and orderB are delivered on dayD at restaurant R1.
func orderA() domain.Order {
	return domain.Order{
		ID:            "order-a",
		OrderNumber:   "ORD000001",
		RestaurantID:  "R1",
		Status:        domain.StatusDelivered,
		Total:         dec("500"),
		PaymentMethod: "upi",
		OrderType:     "delivery",
		Items:         []domain.OrderItem{{ItemID: "i1", Name: "Biryani", Price: dec("250"), Quantity: 2}},
		CreatedAt:     dayD.Add(10 * time.Hour),
	}
}

func orderB() domain.Order {
	return domain.Order{
		ID:            "order-b",
		OrderNumber:   "ORD000002",
		RestaurantID:  "R1",
		Status:        domain.StatusDelivered,
		Total:         dec("300"),
		PaymentMethod: "cash",
		OrderType:     "pickup",
		Items:         []domain.OrderItem{{ItemID: "i2", Name: "Paneer Tikka", Price: dec("300"), Quantity: 1}},
		CreatedAt:     dayD.Add(13 * time.Hour),
	}
}

func seedOrders(t *testing.T, repo *storage.MemoryOrderRepository, orders ...domain.Order) {
	t.Helper()
	for _, o := range orders {
		o := o
		require.NoError(t, repo.Create(context.Background(), &o))
	}
}

// assertScenarioAB checks the R1 record after orders A and B are applied.
func assertScenarioAB(t *testing.T, rec *domain.SalesRecord) {
	t.Helper()
	require.NotNil(t, rec)
	assertDecimal(t, "800", rec.TotalRevenue)
	assert.Equal(t, 2, rec.TotalOrders)
	assert.Equal(t, 3, rec.TotalItems)
	assertDecimal(t, "400", rec.AverageOrderValue)
	assertDecimal(t, "500", rec.PaymentMethods.UPI)
	assertDecimal(t, "300", rec.PaymentMethods.Cash)
	assertDecimal(t, "0", rec.PaymentMethods.Card)
	assertDecimal(t, "0", rec.PaymentMethods.Online)
	assert.Equal(t, domain.OrderTypeBreakdown{Delivery: 1, Pickup: 1}, rec.OrderTypes)
}
