package service

import (
	"context"
	"time"

	"platepilot/config"
	"platepilot/internal/domain"
	"platepilot/internal/metrics"

	"github.com/sirupsen/logrus"
)

// SalesTracker folds order outcomes into the sales ledger as they happen.
type SalesTracker struct {
	ledger SalesLedger
	loc    *time.Location
	log    logrus.FieldLogger
	now    func() time.Time
}

func NewSalesTracker(ledger SalesLedger, loc *time.Location, logger logrus.FieldLogger) *SalesTracker {
	if loc == nil {
		loc = time.UTC
	}
	return &SalesTracker{
		ledger: ledger,
		loc:    loc,
		log:    logger,
		now:    time.Now,
	}
}

// WithClock replaces the time source used for orders without a creation time.
func (t *SalesTracker) WithClock(now func() time.Time) *SalesTracker {
	t.now = now
	return t
}

// ApplyDelivery adds a delivered order to its bucket. Orders in any other
// status are ignored. The bool is false when nothing was applied.
func (t *SalesTracker) ApplyDelivery(ctx context.Context, o domain.Order) (bool, error) {
	if o.Status != domain.StatusDelivered {
		return false, nil
	}
	delta := domain.DeliveryDelta(o, domain.BucketDate(o, t.now(), t.loc))
	return t.apply(ctx, delta)
}

// ApplyCancellation counts a cancelled order in its bucket without touching
// revenue, order or item totals.
func (t *SalesTracker) ApplyCancellation(ctx context.Context, o domain.Order) (bool, error) {
	delta := domain.CancellationDelta(o, domain.BucketDate(o, t.now(), t.loc))
	return t.apply(ctx, delta)
}

func (t *SalesTracker) apply(ctx context.Context, delta domain.SalesDelta) (bool, error) {
	applied, err := t.ledger.Apply(ctx, delta)
	switch {
	case err != nil:
		metrics.SalesEvents.WithLabelValues(string(delta.Outcome), metrics.ResultFailed).Inc()
	case applied:
		metrics.SalesEvents.WithLabelValues(string(delta.Outcome), metrics.ResultApplied).Inc()
	default:
		metrics.SalesEvents.WithLabelValues(string(delta.Outcome), metrics.ResultDuplicate).Inc()
		t.log.WithFields(logrus.Fields{
			"orderId": delta.OrderID,
			"outcome": delta.Outcome,
		}).Debug("order outcome already in sales ledger")
	}
	return applied, err
}

// RecordDelivery never fails the caller: ledger errors are logged and
// dropped, and a rebuild restores consistency.
func (t *SalesTracker) RecordDelivery(ctx context.Context, o domain.Order) {
	if _, err := t.ApplyDelivery(ctx, o); err != nil {
		config.LogError(t.log, "sales", "RecordDelivery", "update sales ledger", o.ID, err)
	}
}

func (t *SalesTracker) RecordCancellation(ctx context.Context, o domain.Order) {
	if _, err := t.ApplyCancellation(ctx, o); err != nil {
		config.LogError(t.log, "sales", "RecordCancellation", "update sales ledger", o.ID, err)
	}
}

// HandleStatusChange dispatches an order whose status was just written.
func (t *SalesTracker) HandleStatusChange(ctx context.Context, o domain.Order) {
	switch o.Status {
	case domain.StatusDelivered:
		t.RecordDelivery(ctx, o)
	case domain.StatusCancelled:
		t.RecordCancellation(ctx, o)
	}
}
