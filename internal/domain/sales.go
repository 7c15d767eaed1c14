package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentBreakdown struct {
	Cash   decimal.Decimal `json:"cash"`
	Card   decimal.Decimal `json:"card"`
	UPI    decimal.Decimal `json:"upi"`
	Online decimal.Decimal `json:"online"`
}

func (p *PaymentBreakdown) Add(method PaymentMethod, amount decimal.Decimal) {
	switch method {
	case PaymentCard:
		p.Card = p.Card.Add(amount)
	case PaymentUPI:
		p.UPI = p.UPI.Add(amount)
	case PaymentOnline:
		p.Online = p.Online.Add(amount)
	default:
		p.Cash = p.Cash.Add(amount)
	}
}

func (p *PaymentBreakdown) Merge(other PaymentBreakdown) {
	p.Cash = p.Cash.Add(other.Cash)
	p.Card = p.Card.Add(other.Card)
	p.UPI = p.UPI.Add(other.UPI)
	p.Online = p.Online.Add(other.Online)
}

func (p PaymentBreakdown) Total() decimal.Decimal {
	return p.Cash.Add(p.Card).Add(p.UPI).Add(p.Online)
}

type OrderTypeBreakdown struct {
	Delivery int `json:"delivery"`
	Pickup   int `json:"pickup"`
	DineIn   int `json:"dineIn"`
}

func (t *OrderTypeBreakdown) Add(orderType OrderType, n int) {
	switch orderType {
	case OrderTypePickup:
		t.Pickup += n
	case OrderTypeDineIn:
		t.DineIn += n
	default:
		t.Delivery += n
	}
}

func (t *OrderTypeBreakdown) Merge(other OrderTypeBreakdown) {
	t.Delivery += other.Delivery
	t.Pickup += other.Pickup
	t.DineIn += other.DineIn
}

func (t OrderTypeBreakdown) Total() int {
	return t.Delivery + t.Pickup + t.DineIn
}

// SalesRecord is the rollup for one (day, restaurant) bucket. An empty
// RestaurantID is the unscoped bucket.
type SalesRecord struct {
	Date              time.Time          `json:"date"`
	RestaurantID      string             `json:"restaurantId,omitempty"`
	TotalRevenue      decimal.Decimal    `json:"totalRevenue"`
	TotalOrders       int                `json:"totalOrders"`
	TotalItems        int                `json:"totalItems"`
	CancelledOrders   int                `json:"cancelledOrders"`
	AverageOrderValue decimal.Decimal    `json:"averageOrderValue"`
	PaymentMethods    PaymentBreakdown   `json:"paymentMethods"`
	OrderTypes        OrderTypeBreakdown `json:"orderTypes"`
}

// EmptySalesRecord is the zero-valued record returned for a bucket with no data.
func EmptySalesRecord(date time.Time, restaurantID string) SalesRecord {
	return SalesRecord{
		Date:              date,
		RestaurantID:      restaurantID,
		TotalRevenue:      decimal.Zero,
		AverageOrderValue: decimal.Zero,
		PaymentMethods: PaymentBreakdown{
			Cash:   decimal.Zero,
			Card:   decimal.Zero,
			UPI:    decimal.Zero,
			Online: decimal.Zero,
		},
	}
}

// AverageOrderValue is revenue over orders, zero without orders. It is not
// rounded; callers that display it round on their own.
func AverageOrderValue(revenue decimal.Decimal, orders int) decimal.Decimal {
	if orders <= 0 {
		return decimal.Zero
	}
	return revenue.Div(decimal.NewFromInt(int64(orders)))
}

// Apply adds a delta to the record and recomputes the derived average.
func (r *SalesRecord) Apply(d SalesDelta) {
	r.TotalRevenue = r.TotalRevenue.Add(d.Revenue)
	r.TotalOrders += d.Orders
	r.TotalItems += d.Items
	r.CancelledOrders += d.Cancelled
	r.PaymentMethods.Merge(d.Payments)
	r.OrderTypes.Merge(d.Types)
	r.AverageOrderValue = AverageOrderValue(r.TotalRevenue, r.TotalOrders)
}

// Merge folds another record's accumulators into r. The average is
// recomputed from the summed totals, never averaged.
func (r *SalesRecord) Merge(other SalesRecord) {
	r.TotalRevenue = r.TotalRevenue.Add(other.TotalRevenue)
	r.TotalOrders += other.TotalOrders
	r.TotalItems += other.TotalItems
	r.CancelledOrders += other.CancelledOrders
	r.PaymentMethods.Merge(other.PaymentMethods)
	r.OrderTypes.Merge(other.OrderTypes)
	r.AverageOrderValue = AverageOrderValue(r.TotalRevenue, r.TotalOrders)
}

// SumRecords collapses records into one keyed by date and restaurantID.
func SumRecords(date time.Time, restaurantID string, records []SalesRecord) SalesRecord {
	sum := EmptySalesRecord(date, restaurantID)
	for _, rec := range records {
		sum.Merge(rec)
	}
	return sum
}

type Outcome string

const (
	OutcomeDelivered Outcome = "delivered"
	OutcomeCancelled Outcome = "cancelled"
)

// SalesDelta is the increment one order outcome contributes to its bucket.
// OrderID with Outcome identifies the event for the idempotency guard.
type SalesDelta struct {
	Date         time.Time
	RestaurantID string
	OrderID      string
	Outcome      Outcome
	Revenue      decimal.Decimal
	Orders       int
	Items        int
	Cancelled    int
	Payments     PaymentBreakdown
	Types        OrderTypeBreakdown
}

func DeliveryDelta(o Order, bucket time.Time) SalesDelta {
	d := SalesDelta{
		Date:         bucket,
		RestaurantID: o.RestaurantID,
		OrderID:      o.ID,
		Outcome:      OutcomeDelivered,
		Revenue:      o.Total,
		Orders:       1,
		Items:        o.ItemCount(),
		Payments:     EmptySalesRecord(bucket, "").PaymentMethods,
	}
	d.Payments.Add(NormalizePaymentMethod(o.PaymentMethod), o.Total)
	d.Types.Add(NormalizeOrderType(o.OrderType), 1)
	return d
}

func CancellationDelta(o Order, bucket time.Time) SalesDelta {
	return SalesDelta{
		Date:         bucket,
		RestaurantID: o.RestaurantID,
		OrderID:      o.ID,
		Outcome:      OutcomeCancelled,
		Revenue:      decimal.Zero,
		Cancelled:    1,
		Payments:     EmptySalesRecord(bucket, "").PaymentMethods,
	}
}

func StartOfDay(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// NextDay is the start of the day after t, the exclusive end of t's day.
func NextDay(t time.Time, loc *time.Location) time.Time {
	return StartOfDay(t, loc).AddDate(0, 0, 1)
}

// BucketDate is the day an order is attributed to: its creation day, or
// the current day when the creation time is unknown.
func BucketDate(o Order, now time.Time, loc *time.Location) time.Time {
	if o.CreatedAt.IsZero() {
		return StartOfDay(now, loc)
	}
	return StartOfDay(o.CreatedAt, loc)
}

func StartOfMonth(year int, month time.Month, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(year, month, 1, 0, 0, 0, 0, loc)
}

func EndOfMonth(year int, month time.Month, loc *time.Location) time.Time {
	return StartOfMonth(year, month, loc).AddDate(0, 1, -1)
}
