package service

import (
	"context"
	"fmt"
	"time"

	"platepilot/internal/domain"
)

const (
	dailySalesDefaultDays = 30
	dashboardTopItems     = 5
	dashboardRecentOrders = 5
)

// Reporter answers sales queries from the ledger, merging live order
// counts where a view needs in-flight data.
type Reporter struct {
	ledger SalesLedger
	orders OrderRepository
	loc    *time.Location
	now    func() time.Time
}

func NewReporter(ledger SalesLedger, orders OrderRepository, loc *time.Location) *Reporter {
	if loc == nil {
		loc = time.UTC
	}
	return &Reporter{
		ledger: ledger,
		orders: orders,
		loc:    loc,
		now:    time.Now,
	}
}

func (r *Reporter) WithClock(now func() time.Time) *Reporter {
	r.now = now
	return r
}

func (r *Reporter) Location() *time.Location {
	return r.loc
}

func (r *Reporter) today() time.Time {
	return domain.StartOfDay(r.now(), r.loc)
}

func (r *Reporter) Range(ctx context.Context, start, end time.Time, restaurantID string) (domain.RangeReport, error) {
	from := domain.StartOfDay(start, r.loc)
	to := domain.StartOfDay(end, r.loc)
	if to.Before(from) {
		return domain.RangeReport{}, domain.ErrInvalidDateRange
	}

	records, err := r.ledger.FindRange(ctx, from, to, restaurantID)
	if err != nil {
		return domain.RangeReport{}, fmt.Errorf("load sales range: %w", err)
	}
	return domain.BuildRangeReport(from, to, records), nil
}

// day returns the record for one bucket. Without a restaurant it sums every
// bucket of that day.
func (r *Reporter) day(ctx context.Context, day time.Time, restaurantID string) (domain.SalesRecord, error) {
	if restaurantID != "" {
		rec, err := r.ledger.Find(ctx, day, restaurantID)
		if err != nil {
			return domain.SalesRecord{}, err
		}
		if rec == nil {
			return domain.EmptySalesRecord(day, restaurantID), nil
		}
		return *rec, nil
	}

	records, err := r.ledger.FindRange(ctx, day, day, "")
	if err != nil {
		return domain.SalesRecord{}, err
	}
	return domain.SumRecords(day, "", records), nil
}

func (r *Reporter) Today(ctx context.Context, restaurantID string) (domain.TodaySummary, error) {
	day := r.today()
	rec, err := r.day(ctx, day, restaurantID)
	if err != nil {
		return domain.TodaySummary{}, fmt.Errorf("load today's sales: %w", err)
	}

	pending, err := r.orders.Count(ctx, domain.OrderFilter{
		Statuses:      []domain.OrderStatus{domain.StatusPending},
		RestaurantID:  restaurantID,
		CreatedFrom:   day,
		CreatedBefore: domain.NextDay(day, r.loc),
	})
	if err != nil {
		return domain.TodaySummary{}, fmt.Errorf("count pending orders: %w", err)
	}

	return domain.MergeToday(rec, pending), nil
}

func (r *Reporter) Month(ctx context.Context, year int, month time.Month, restaurantID string) (domain.MonthSummary, error) {
	if year < 1 || month < time.January || month > time.December {
		return domain.MonthSummary{}, domain.ErrInvalidMonth
	}
	records, err := r.ledger.FindRange(ctx,
		domain.StartOfMonth(year, month, r.loc), domain.EndOfMonth(year, month, r.loc), restaurantID)
	if err != nil {
		return domain.MonthSummary{}, fmt.Errorf("load monthly sales: %w", err)
	}
	return domain.BuildMonthSummary(year, month, restaurantID, records, r.loc), nil
}

func (r *Reporter) ThisMonth(ctx context.Context, restaurantID string) (domain.MonthSummary, error) {
	now := r.now().In(r.loc)
	return r.Month(ctx, now.Year(), now.Month(), restaurantID)
}

func (r *Reporter) Stats(ctx context.Context, restaurantID string) (domain.SalesStats, error) {
	day := r.today()

	all, err := r.ledger.FindRange(ctx, time.Time{}, time.Time{}, restaurantID)
	if err != nil {
		return domain.SalesStats{}, fmt.Errorf("load all-time sales: %w", err)
	}
	month, err := r.ledger.FindRange(ctx,
		domain.StartOfMonth(day.Year(), day.Month(), r.loc), domain.EndOfMonth(day.Year(), day.Month(), r.loc), restaurantID)
	if err != nil {
		return domain.SalesStats{}, fmt.Errorf("load monthly sales: %w", err)
	}
	today, err := r.ledger.FindRange(ctx, day, day, restaurantID)
	if err != nil {
		return domain.SalesStats{}, fmt.Errorf("load today's sales: %w", err)
	}

	return domain.SalesStats{
		AllTime:   domain.PeriodStatsOf(domain.SumRecords(time.Time{}, restaurantID, all)),
		ThisMonth: domain.PeriodStatsOf(domain.SumRecords(day, restaurantID, month)),
		Today:     domain.PeriodStatsOf(domain.SumRecords(day, restaurantID, today)),
	}, nil
}

// DailySales lists ledger rows newest first. Missing bounds default to the
// last 30 days ending today.
func (r *Reporter) DailySales(ctx context.Context, start, end time.Time, restaurantID string) ([]domain.DailySalesRow, error) {
	if end.IsZero() {
		end = r.today()
	}
	if start.IsZero() {
		start = domain.StartOfDay(end, r.loc).AddDate(0, 0, -dailySalesDefaultDays)
	}
	report, err := r.Range(ctx, start, end, restaurantID)
	if err != nil {
		return nil, err
	}
	return domain.DailySalesRows(report.Records), nil
}

func (r *Reporter) Dashboard(ctx context.Context) (domain.DashboardStats, error) {
	var (
		out domain.DashboardStats
		err error
	)

	out.TotalOrders, err = r.orders.Count(ctx, domain.OrderFilter{
		ExcludeStatuses: []domain.OrderStatus{domain.StatusCancelled, domain.StatusRejected},
	})
	if err != nil {
		return out, fmt.Errorf("count orders: %w", err)
	}
	out.PendingOrders, err = r.orders.Count(ctx, domain.OrderFilter{
		Statuses: []domain.OrderStatus{domain.StatusPending},
	})
	if err != nil {
		return out, fmt.Errorf("count pending orders: %w", err)
	}

	out.SalesStatistics, err = r.Stats(ctx, "")
	if err != nil {
		return out, err
	}
	out.CompletedOrders = out.SalesStatistics.AllTime.TotalOrders
	out.TotalRevenue = out.SalesStatistics.AllTime.TotalRevenue
	out.AverageOrderValue = out.SalesStatistics.AllTime.AverageOrderValue

	out.TopSellingItems, err = r.orders.TopSellingItems(ctx, dashboardTopItems)
	if err != nil {
		return out, fmt.Errorf("top selling items: %w", err)
	}
	out.RecentOrders, err = r.orders.List(ctx, domain.OrderFilter{Limit: dashboardRecentOrders})
	if err != nil {
		return out, fmt.Errorf("recent orders: %w", err)
	}

	return out, nil
}
