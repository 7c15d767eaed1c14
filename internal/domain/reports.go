package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type RangeSummary struct {
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
	TotalOrders   int             `json:"totalOrders"`
	TotalItems    int             `json:"totalItems"`
	DaysWithSales int             `json:"daysWithSales"`
}

type RangeReport struct {
	StartDate time.Time     `json:"startDate"`
	EndDate   time.Time     `json:"endDate"`
	Records   []SalesRecord `json:"records"`
	Summary   RangeSummary  `json:"summary"`
}

// BuildRangeReport totals records that are already sorted by date.
// DaysWithSales counts distinct dates, so several restaurants on one day
// count once.
func BuildRangeReport(start, end time.Time, records []SalesRecord) RangeReport {
	if records == nil {
		records = []SalesRecord{}
	}
	summary := RangeSummary{TotalRevenue: decimal.Zero}
	days := make(map[string]struct{})
	for _, rec := range records {
		summary.TotalRevenue = summary.TotalRevenue.Add(rec.TotalRevenue)
		summary.TotalOrders += rec.TotalOrders
		summary.TotalItems += rec.TotalItems
		days[rec.Date.Format(DateLayout)] = struct{}{}
	}
	summary.DaysWithSales = len(days)

	return RangeReport{
		StartDate: start,
		EndDate:   end,
		Records:   records,
		Summary:   summary,
	}
}

const DateLayout = "2006-01-02"

// TodaySummary is the persisted rollup for today merged with in-flight
// orders. TotalOrders counts delivered, cancelled and pending orders.
type TodaySummary struct {
	Date              time.Time          `json:"date"`
	RestaurantID      string             `json:"restaurantId,omitempty"`
	TotalOrders       int                `json:"totalOrders"`
	TotalRevenue      decimal.Decimal    `json:"totalRevenue"`
	DeliveredOrders   int                `json:"deliveredOrders"`
	PendingOrders     int                `json:"pendingOrders"`
	CancelledOrders   int                `json:"cancelledOrders"`
	TotalItems        int                `json:"totalItems"`
	AverageOrderValue decimal.Decimal    `json:"averageOrderValue"`
	PaymentMethods    PaymentBreakdown   `json:"paymentMethods"`
	OrderTypes        OrderTypeBreakdown `json:"orderTypes"`
}

func MergeToday(rec SalesRecord, pending int) TodaySummary {
	if pending < 0 {
		pending = 0
	}
	return TodaySummary{
		Date:              rec.Date,
		RestaurantID:      rec.RestaurantID,
		TotalOrders:       rec.TotalOrders + rec.CancelledOrders + pending,
		TotalRevenue:      rec.TotalRevenue,
		DeliveredOrders:   rec.TotalOrders,
		PendingOrders:     pending,
		CancelledOrders:   rec.CancelledOrders,
		TotalItems:        rec.TotalItems,
		AverageOrderValue: rec.AverageOrderValue,
		PaymentMethods:    rec.PaymentMethods,
		OrderTypes:        rec.OrderTypes,
	}
}

type MonthSummary struct {
	Year              int                `json:"year"`
	Month             int                `json:"month"`
	RestaurantID      string             `json:"restaurantId,omitempty"`
	TotalRevenue      decimal.Decimal    `json:"totalRevenue"`
	TotalOrders       int                `json:"totalOrders"`
	TotalItems        int                `json:"totalItems"`
	CancelledOrders   int                `json:"cancelledOrders"`
	AverageOrderValue decimal.Decimal    `json:"averageOrderValue"`
	PaymentMethods    PaymentBreakdown   `json:"paymentMethods"`
	OrderTypes        OrderTypeBreakdown `json:"orderTypes"`
	DailyRecords      []SalesRecord      `json:"dailyRecords"`
}

func BuildMonthSummary(year int, month time.Month, restaurantID string, records []SalesRecord, loc *time.Location) MonthSummary {
	if records == nil {
		records = []SalesRecord{}
	}
	sum := SumRecords(StartOfMonth(year, month, loc), restaurantID, records)
	return MonthSummary{
		Year:              year,
		Month:             int(month),
		RestaurantID:      restaurantID,
		TotalRevenue:      sum.TotalRevenue,
		TotalOrders:       sum.TotalOrders,
		TotalItems:        sum.TotalItems,
		CancelledOrders:   sum.CancelledOrders,
		AverageOrderValue: sum.AverageOrderValue,
		PaymentMethods:    sum.PaymentMethods,
		OrderTypes:        sum.OrderTypes,
		DailyRecords:      records,
	}
}

type PeriodStats struct {
	TotalRevenue      decimal.Decimal `json:"totalRevenue"`
	TotalOrders       int             `json:"totalOrders"`
	TotalItems        int             `json:"totalItems"`
	CancelledOrders   int             `json:"cancelledOrders"`
	AverageOrderValue decimal.Decimal `json:"averageOrderValue"`
}

func PeriodStatsOf(rec SalesRecord) PeriodStats {
	return PeriodStats{
		TotalRevenue:      rec.TotalRevenue,
		TotalOrders:       rec.TotalOrders,
		TotalItems:        rec.TotalItems,
		CancelledOrders:   rec.CancelledOrders,
		AverageOrderValue: rec.AverageOrderValue,
	}
}

type SalesStats struct {
	AllTime   PeriodStats `json:"allTime"`
	ThisMonth PeriodStats `json:"thisMonth"`
	Today     PeriodStats `json:"today"`
}

// DailySalesRow is one ledger record as listed in the daily sales report.
type DailySalesRow struct {
	Date              string          `json:"date"`
	RestaurantID      string          `json:"restaurantId,omitempty"`
	TotalOrders       int             `json:"totalOrders"`
	TotalRevenue      decimal.Decimal `json:"totalRevenue"`
	DeliveredOrders   int             `json:"deliveredOrders"`
	CancelledOrders   int             `json:"cancelledOrders"`
	PendingOrders     int             `json:"pendingOrders"`
	AverageOrderValue decimal.Decimal `json:"averageOrderValue"`
}

// DailySalesRows lists records newest first. Pending orders are never part
// of a persisted record, so PendingOrders is always zero here.
func DailySalesRows(records []SalesRecord) []DailySalesRow {
	rows := make([]DailySalesRow, 0, len(records))
	for i := len(records) - 1; i >= 0; i-- {
		rec := records[i]
		rows = append(rows, DailySalesRow{
			Date:              rec.Date.Format(DateLayout),
			RestaurantID:      rec.RestaurantID,
			TotalOrders:       rec.TotalOrders + rec.CancelledOrders,
			TotalRevenue:      rec.TotalRevenue,
			DeliveredOrders:   rec.TotalOrders,
			CancelledOrders:   rec.CancelledOrders,
			AverageOrderValue: rec.AverageOrderValue,
		})
	}
	return rows
}

type DashboardStats struct {
	TotalOrders       int             `json:"totalOrders"`
	PendingOrders     int             `json:"pendingOrders"`
	CompletedOrders   int             `json:"completedOrders"`
	TotalRevenue      decimal.Decimal `json:"totalRevenue"`
	AverageOrderValue decimal.Decimal `json:"averageOrderValue"`
	TopSellingItems   []TopItem       `json:"topSellingItems"`
	RecentOrders      []Order         `json:"recentOrders"`
	SalesStatistics   SalesStats      `json:"salesStatistics"`
}

type RebuildReport struct {
	DeliveredReplayed int   `json:"deliveredReplayed"`
	CancelledReplayed int   `json:"cancelledReplayed"`
	DurationMS        int64 `json:"durationMs"`
}
