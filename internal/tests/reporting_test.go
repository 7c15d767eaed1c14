package tests

import (
	"context"
	"errors"
	"testing"
	"time"

	"platepilot/internal/domain"
	"platepilot/internal/mocks"
	"platepilot/internal/service"
	"platepilot/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// nowD is mid-afternoon on dayD.
var nowD = dayD.Add(15 * time.Hour)

type reportFixture struct {
	orders   *storage.MemoryOrderRepository
	ledger   *storage.MemorySalesLedger
	tracker  *service.SalesTracker
	reporter *service.Reporter
}

func newReportFixture(t *testing.T, orders ...domain.Order) reportFixture {
	t.Helper()
	repo := storage.NewMemoryOrderRepository()
	seedOrders(t, repo, orders...)
	ledger := storage.NewMemorySalesLedger(time.UTC)
	clock := func() time.Time { return nowD }
	return reportFixture{
		orders:   repo,
		ledger:   ledger,
		tracker:  service.NewSalesTracker(ledger, time.UTC, nullLogger()).WithClock(clock),
		reporter: service.NewReporter(ledger, repo, time.UTC).WithClock(clock),
	}
}

func pendingOrder(id string, createdAt time.Time) domain.Order {
	o := orderA()
	o.ID, o.OrderNumber, o.Status, o.CreatedAt = id, "N-"+id, domain.StatusPending, createdAt
	return o
}

func TestReporter_TodayWithoutRecordCountsPending(t *testing.T) {
	fx := newReportFixture(t,
		pendingOrder("p1", dayD.Add(9*time.Hour)),
		pendingOrder("p2", dayD.Add(11*time.Hour)),
		pendingOrder("old", dayD.Add(-2*time.Hour)),
		pendingOrder("midnight", dayD),
		pendingOrder("tomorrow", dayD.AddDate(0, 0, 1)),
	)

	today, err := fx.reporter.Today(context.Background(), "")

	require.NoError(t, err)
	assert.Equal(t, 3, today.TotalOrders)
	assertDecimal(t, "0", today.TotalRevenue)
	assert.Equal(t, 0, today.DeliveredOrders)
	assert.Equal(t, 3, today.PendingOrders)
	assert.Equal(t, 0, today.CancelledOrders)
	assert.True(t, today.Date.Equal(dayD))
}

func TestReporter_TodayMergesRecordAndPending(t *testing.T) {
	ctx := context.Background()
	cancelled := orderB()
	cancelled.ID, cancelled.OrderNumber, cancelled.Status, cancelled.RestaurantID = "order-c", "ORD000009", domain.StatusCancelled, "R2"
	fx := newReportFixture(t, pendingOrder("p1", dayD.Add(time.Hour)))

	fx.tracker.RecordDelivery(ctx, orderA())
	fx.tracker.RecordDelivery(ctx, orderB())
	fx.tracker.RecordCancellation(ctx, cancelled)

	all, err := fx.reporter.Today(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 4, all.TotalOrders)
	assertDecimal(t, "800", all.TotalRevenue)
	assert.Equal(t, 2, all.DeliveredOrders)
	assert.Equal(t, 1, all.PendingOrders)
	assert.Equal(t, 1, all.CancelledOrders)

	r2, err := fx.reporter.Today(ctx, "R2")
	require.NoError(t, err)
	assert.Equal(t, 1, r2.TotalOrders)
	assert.Equal(t, 0, r2.PendingOrders)
	assertDecimal(t, "0", r2.TotalRevenue)
}

func TestReporter_Range(t *testing.T) {
	ctx := context.Background()
	fx := newReportFixture(t)
	nextDay := orderB()
	nextDay.ID = "order-next"
	nextDay.CreatedAt = dayD.AddDate(0, 0, 1).Add(time.Hour)
	fx.tracker.RecordDelivery(ctx, orderA())
	fx.tracker.RecordDelivery(ctx, nextDay)

	report, err := fx.reporter.Range(ctx, dayD, dayD.AddDate(0, 0, 1), "")
	require.NoError(t, err)
	assert.Len(t, report.Records, 2)
	assertDecimal(t, "800", report.Summary.TotalRevenue)
	assert.Equal(t, 2, report.Summary.TotalOrders)
	assert.Equal(t, 3, report.Summary.TotalItems)
	assert.Equal(t, 2, report.Summary.DaysWithSales)

	single, err := fx.reporter.Range(ctx, dayD, dayD, "R1")
	require.NoError(t, err)
	assert.Len(t, single.Records, 1)

	empty, err := fx.reporter.Range(ctx, dayD, dayD, "R404")
	require.NoError(t, err)
	assert.Empty(t, empty.Records)
	assertDecimal(t, "0", empty.Summary.TotalRevenue)

	_, err = fx.reporter.Range(ctx, dayD, dayD.AddDate(0, 0, -1), "")
	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)
}

func TestReporter_Month(t *testing.T) {
	ctx := context.Background()
	fx := newReportFixture(t)
	lastMonth := orderB()
	lastMonth.ID = "order-feb"
	lastMonth.CreatedAt = time.Date(2024, 2, 29, 20, 0, 0, 0, time.UTC)
	fx.tracker.RecordDelivery(ctx, orderA())
	fx.tracker.RecordDelivery(ctx, orderB())
	fx.tracker.RecordDelivery(ctx, lastMonth)

	march, err := fx.reporter.Month(ctx, 2024, time.March, "")
	require.NoError(t, err)
	assertDecimal(t, "800", march.TotalRevenue)
	assert.Equal(t, 2, march.TotalOrders)
	assertDecimal(t, "400", march.AverageOrderValue)
	assertDecimal(t, "500", march.PaymentMethods.UPI)
	assert.Len(t, march.DailyRecords, 1)

	feb, err := fx.reporter.Month(ctx, 2024, time.February, "R1")
	require.NoError(t, err)
	assertDecimal(t, "300", feb.TotalRevenue)
	assert.Len(t, feb.DailyRecords, 1)

	this, err := fx.reporter.ThisMonth(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 3, this.Month)
	assertDecimal(t, "800", this.TotalRevenue)

	_, err = fx.reporter.Month(ctx, 2024, 13, "")
	assert.ErrorIs(t, err, domain.ErrInvalidMonth)
}

func TestReporter_Stats(t *testing.T) {
	ctx := context.Background()
	fx := newReportFixture(t)
	lastMonth := orderB()
	lastMonth.ID = "order-feb"
	lastMonth.CreatedAt = time.Date(2024, 2, 10, 12, 0, 0, 0, time.UTC)
	earlier := orderB()
	earlier.ID = "order-earlier"
	earlier.CreatedAt = time.Date(2024, 3, 2, 12, 0, 0, 0, time.UTC)
	fx.tracker.RecordDelivery(ctx, orderA())
	fx.tracker.RecordDelivery(ctx, lastMonth)
	fx.tracker.RecordDelivery(ctx, earlier)

	stats, err := fx.reporter.Stats(ctx, "")

	require.NoError(t, err)
	assertDecimal(t, "1100", stats.AllTime.TotalRevenue)
	assert.Equal(t, 3, stats.AllTime.TotalOrders)
	assert.True(t, dec("1100").Div(dec("3")).Equal(stats.AllTime.AverageOrderValue))
	assertDecimal(t, "800", stats.ThisMonth.TotalRevenue)
	assert.Equal(t, 2, stats.ThisMonth.TotalOrders)
	assertDecimal(t, "500", stats.Today.TotalRevenue)
	assert.Equal(t, 1, stats.Today.TotalOrders)
}

func TestReporter_DailySales(t *testing.T) {
	ctx := context.Background()
	fx := newReportFixture(t)
	old := orderB()
	old.ID = "order-old"
	old.CreatedAt = dayD.AddDate(0, 0, -45)
	recent := orderB()
	recent.ID = "order-recent"
	recent.CreatedAt = dayD.AddDate(0, 0, -5)
	fx.tracker.RecordDelivery(ctx, orderA())
	fx.tracker.RecordDelivery(ctx, old)
	fx.tracker.RecordDelivery(ctx, recent)

	rows, err := fx.reporter.DailySales(ctx, time.Time{}, time.Time{}, "")

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "2024-03-14", rows[0].Date)
	assert.Equal(t, "2024-03-09", rows[1].Date)

	rows, err = fx.reporter.DailySales(ctx, dayD.AddDate(0, 0, -60), dayD, "")
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}

func TestReporter_Dashboard(t *testing.T) {
	ctx := context.Background()
	cancelled := orderB()
	cancelled.ID, cancelled.OrderNumber, cancelled.Status = "order-c", "ORD000010", domain.StatusCancelled
	cancelled.CreatedAt = dayD.Add(12 * time.Hour)
	fx := newReportFixture(t, orderA(), orderB(), cancelled, pendingOrder("p1", dayD.Add(time.Hour)))
	fx.tracker.RecordDelivery(ctx, orderA())
	fx.tracker.RecordDelivery(ctx, orderB())
	fx.tracker.RecordCancellation(ctx, cancelled)

	stats, err := fx.reporter.Dashboard(ctx)

	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalOrders)
	assert.Equal(t, 1, stats.PendingOrders)
	assert.Equal(t, 2, stats.CompletedOrders)
	assertDecimal(t, "800", stats.TotalRevenue)
	assertDecimal(t, "400", stats.AverageOrderValue)
	require.Len(t, stats.TopSellingItems, 2)
	assert.Equal(t, "Biryani", stats.TopSellingItems[0].Name)
	assert.Equal(t, 2, stats.TopSellingItems[0].Quantity)
	assert.Len(t, stats.RecentOrders, 4)
	assert.Equal(t, "order-b", stats.RecentOrders[0].ID)
}

func TestReporter_PropagatesLedgerErrors(t *testing.T) {
	ctx := context.Background()
	ledger := mocks.NewSalesLedger(t)
	orders := mocks.NewOrderRepository(t)
	reporter := service.NewReporter(ledger, orders, time.UTC).WithClock(func() time.Time { return nowD })
	boom := errors.New("timeout")

	ledger.On("Find", ctx, dayD, "R1").Return(nil, boom).Once()
	_, err := reporter.Today(ctx, "R1")
	assert.ErrorIs(t, err, boom)

	ledger.On("FindRange", ctx, mock.Anything, mock.Anything, "").Return(nil, boom).Once()
	_, err = reporter.Stats(ctx, "")
	assert.ErrorIs(t, err, boom)
}
