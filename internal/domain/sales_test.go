package domain_test

import (
	"testing"
	"time"

	"platepilot/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), "want %s, got %s", want, got.String())
}

func TestNormalizePaymentMethod(t *testing.T) {
	tests := []struct {
		raw      string
		expected domain.PaymentMethod
	}{
		{"", domain.PaymentCash},
		{"cash", domain.PaymentCash},
		{"CARD", domain.PaymentCard},
		{" upi ", domain.PaymentUPI},
		{"online", domain.PaymentOnline},
		{"wallet", domain.PaymentOnline},
		{"netbanking", domain.PaymentOnline},
	}

	for _, testCase := range tests {
		t.Run(testCase.raw, func(t *testing.T) {
			assert.Equal(t, testCase.expected, domain.NormalizePaymentMethod(testCase.raw))
		})
	}
}

func TestNormalizeOrderType(t *testing.T) {
	tests := []struct {
		raw      string
		expected domain.OrderType
	}{
		{"", domain.OrderTypeDelivery},
		{"delivery", domain.OrderTypeDelivery},
		{"pickup", domain.OrderTypePickup},
		{"dine-in", domain.OrderTypeDineIn},
		{"table", domain.OrderTypeDineIn},
	}

	for _, testCase := range tests {
		t.Run(testCase.raw, func(t *testing.T) {
			assert.Equal(t, testCase.expected, domain.NormalizeOrderType(testCase.raw))
		})
	}
}

func TestSalesRecord_ApplyKeepsPartitionsAndAverage(t *testing.T) {
	day := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	orders := []domain.Order{
		{ID: "a", Status: domain.StatusDelivered, Total: dec("500"), PaymentMethod: "upi", OrderType: "delivery", Items: []domain.OrderItem{{Quantity: 2}}},
		{ID: "b", Status: domain.StatusDelivered, Total: dec("300"), PaymentMethod: "cash", OrderType: "pickup", Items: []domain.OrderItem{{Quantity: 1}}},
		{ID: "c", Status: domain.StatusDelivered, Total: dec("125.50"), PaymentMethod: "paypal", OrderType: "table", Items: []domain.OrderItem{{Quantity: 1}, {Quantity: 3}}},
		{ID: "d", Status: domain.StatusDelivered, Total: dec("74.50")},
	}

	rec := domain.EmptySalesRecord(day, "R1")
	for _, o := range orders {
		rec.Apply(domain.DeliveryDelta(o, day))

		assert.True(t, rec.PaymentMethods.Total().Equal(rec.TotalRevenue))
		assert.Equal(t, rec.TotalOrders, rec.OrderTypes.Total())
		assert.True(t, domain.AverageOrderValue(rec.TotalRevenue, rec.TotalOrders).Equal(rec.AverageOrderValue))
	}

	assertDecimal(t, "1000", rec.TotalRevenue)
	assert.Equal(t, 4, rec.TotalOrders)
	assert.Equal(t, 7, rec.TotalItems)
	assertDecimal(t, "250", rec.AverageOrderValue)
	assertDecimal(t, "374.50", rec.PaymentMethods.Cash)
	assertDecimal(t, "500", rec.PaymentMethods.UPI)
	assertDecimal(t, "125.50", rec.PaymentMethods.Online)
	assert.Equal(t, domain.OrderTypeBreakdown{Delivery: 2, Pickup: 1, DineIn: 1}, rec.OrderTypes)
}

func TestSalesRecord_CancellationOnlyCountsCancelled(t *testing.T) {
	day := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	rec := domain.EmptySalesRecord(day, "")
	rec.Apply(domain.DeliveryDelta(domain.Order{ID: "a", Total: dec("200"), Items: []domain.OrderItem{{Quantity: 1}}}, day))

	rec.Apply(domain.CancellationDelta(domain.Order{ID: "b", Total: dec("999"), Items: []domain.OrderItem{{Quantity: 5}}}, day))

	assertDecimal(t, "200", rec.TotalRevenue)
	assert.Equal(t, 1, rec.TotalOrders)
	assert.Equal(t, 1, rec.TotalItems)
	assert.Equal(t, 1, rec.CancelledOrders)
	assertDecimal(t, "200", rec.AverageOrderValue)
	assertDecimal(t, "200", rec.PaymentMethods.Total())
}

func TestAverageOrderValue(t *testing.T) {
	assertDecimal(t, "0", domain.AverageOrderValue(dec("0"), 0))
	assertDecimal(t, "0", domain.AverageOrderValue(dec("150"), 0))
	assertDecimal(t, "400", domain.AverageOrderValue(dec("800"), 2))

	third := domain.AverageOrderValue(dec("100"), 3)
	assert.True(t, dec("100").Div(dec("3")).Equal(third))
	assert.False(t, dec("33.33").Equal(third))
	assertDecimal(t, "100", third.Mul(dec("3")).Round(2))
}

func TestSalesRecord_AverageFollowsRevenueWithoutRounding(t *testing.T) {
	day := time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC)
	rec := domain.EmptySalesRecord(day, "")
	for i, total := range []string{"40", "30", "30"} {
		o := domain.Order{
			ID:            "o" + string(rune('1'+i)),
			Status:        domain.StatusDelivered,
			Total:         dec(total),
			PaymentMethod: "cash",
			Items:         []domain.OrderItem{{Quantity: 1}},
		}
		rec.Apply(domain.DeliveryDelta(o, day))
	}

	assertDecimal(t, "100", rec.TotalRevenue)
	assert.Equal(t, 3, rec.TotalOrders)
	assert.True(t, rec.TotalRevenue.Div(decimal.NewFromInt(3)).Equal(rec.AverageOrderValue))
	assert.NotEqual(t, "33.33", rec.AverageOrderValue.String())
}

func TestBucketDate(t *testing.T) {
	kolkata := time.FixedZone("IST", 5*3600+1800)
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	late := domain.Order{CreatedAt: time.Date(2024, 5, 31, 20, 0, 0, 0, time.UTC)}
	assert.Equal(t, time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC), domain.BucketDate(late, now, time.UTC))
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, kolkata), domain.BucketDate(late, now, kolkata))

	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), domain.BucketDate(domain.Order{}, now, time.UTC))
}

func TestSumRecords_RecomputesAverageFromTotals(t *testing.T) {
	day1 := domain.EmptySalesRecord(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), "")
	day1.Apply(domain.SalesDelta{Revenue: dec("100"), Orders: 1, Items: 1})
	day2 := domain.EmptySalesRecord(time.Date(2024, 2, 2, 0, 0, 0, 0, time.UTC), "")
	day2.Apply(domain.SalesDelta{Revenue: dec("200"), Orders: 4, Items: 4, Cancelled: 2})

	sum := domain.SumRecords(day1.Date, "", []domain.SalesRecord{day1, day2})

	assertDecimal(t, "300", sum.TotalRevenue)
	assert.Equal(t, 5, sum.TotalOrders)
	assert.Equal(t, 2, sum.CancelledOrders)
	assertDecimal(t, "60", sum.AverageOrderValue)
}

func TestMergeToday(t *testing.T) {
	day := time.Date(2024, 7, 10, 0, 0, 0, 0, time.UTC)

	t.Run("no record with pending orders", func(t *testing.T) {
		got := domain.MergeToday(domain.EmptySalesRecord(day, ""), 2)

		assert.Equal(t, 2, got.TotalOrders)
		assertDecimal(t, "0", got.TotalRevenue)
		assert.Equal(t, 0, got.DeliveredOrders)
		assert.Equal(t, 2, got.PendingOrders)
		assert.Equal(t, 0, got.CancelledOrders)
	})

	t.Run("record plus pending", func(t *testing.T) {
		rec := domain.EmptySalesRecord(day, "R1")
		rec.Apply(domain.SalesDelta{Revenue: dec("800"), Orders: 2, Items: 3})
		rec.Apply(domain.SalesDelta{Cancelled: 1})

		got := domain.MergeToday(rec, 4)

		assert.Equal(t, 7, got.TotalOrders)
		assertDecimal(t, "800", got.TotalRevenue)
		assert.Equal(t, 2, got.DeliveredOrders)
		assert.Equal(t, 4, got.PendingOrders)
		assert.Equal(t, 1, got.CancelledOrders)
		assert.Equal(t, "R1", got.RestaurantID)
	})
}

func TestBuildRangeReport_CountsDistinctDays(t *testing.T) {
	d1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	d2 := d1.AddDate(0, 0, 1)

	mk := func(date time.Time, rid string, revenue string, orders, items int) domain.SalesRecord {
		rec := domain.EmptySalesRecord(date, rid)
		rec.Apply(domain.SalesDelta{Revenue: dec(revenue), Orders: orders, Items: items})
		return rec
	}
	records := []domain.SalesRecord{
		mk(d1, "R1", "100", 1, 2),
		mk(d1, "R2", "50", 1, 1),
		mk(d2, "R1", "25", 1, 1),
	}

	report := domain.BuildRangeReport(d1, d2, records)

	assertDecimal(t, "175", report.Summary.TotalRevenue)
	assert.Equal(t, 3, report.Summary.TotalOrders)
	assert.Equal(t, 4, report.Summary.TotalItems)
	assert.Equal(t, 2, report.Summary.DaysWithSales)
	assert.Len(t, report.Records, 3)

	empty := domain.BuildRangeReport(d1, d2, nil)
	assert.NotNil(t, empty.Records)
	assert.Equal(t, 0, empty.Summary.DaysWithSales)
}

func TestBuildMonthSummary(t *testing.T) {
	d1 := time.Date(2024, 2, 3, 0, 0, 0, 0, time.UTC)
	rec := domain.EmptySalesRecord(d1, "")
	rec.Apply(domain.DeliveryDelta(domain.Order{ID: "a", Total: dec("90"), PaymentMethod: "card", Items: []domain.OrderItem{{Quantity: 3}}}, d1))

	summary := domain.BuildMonthSummary(2024, time.February, "", []domain.SalesRecord{rec}, time.UTC)

	assert.Equal(t, 2024, summary.Year)
	assert.Equal(t, 2, summary.Month)
	assertDecimal(t, "90", summary.TotalRevenue)
	assertDecimal(t, "90", summary.PaymentMethods.Card)
	assert.Equal(t, 3, summary.TotalItems)
	assert.Len(t, summary.DailyRecords, 1)
}

func TestDailySalesRows_NewestFirst(t *testing.T) {
	d1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	r1 := domain.EmptySalesRecord(d1, "")
	r1.Apply(domain.SalesDelta{Revenue: dec("10"), Orders: 1, Cancelled: 2})
	r2 := domain.EmptySalesRecord(d1.AddDate(0, 0, 1), "")

	rows := domain.DailySalesRows([]domain.SalesRecord{r1, r2})

	assert.Len(t, rows, 2)
	assert.Equal(t, "2024-01-02", rows[0].Date)
	assert.Equal(t, "2024-01-01", rows[1].Date)
	assert.Equal(t, 3, rows[1].TotalOrders)
	assert.Equal(t, 1, rows[1].DeliveredOrders)
	assert.Equal(t, 2, rows[1].CancelledOrders)
	assert.Equal(t, 0, rows[1].PendingOrders)
}
