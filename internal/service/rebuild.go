package service

import (
	"context"
	"fmt"
	"time"

	"platepilot/internal/domain"
	"platepilot/internal/metrics"

	"github.com/sirupsen/logrus"
)

// Rebuilder recomputes the whole sales ledger from the order store.
type Rebuilder struct {
	orders  OrderRepository
	ledger  SalesLedger
	tracker *SalesTracker
	lock    RebuildLocker
	log     logrus.FieldLogger
}

func NewRebuilder(orders OrderRepository, ledger SalesLedger, tracker *SalesTracker, lock RebuildLocker, logger logrus.FieldLogger) *Rebuilder {
	return &Rebuilder{
		orders:  orders,
		ledger:  ledger,
		tracker: tracker,
		lock:    lock,
		log:     logger,
	}
}

// Rebuild clears the ledger, then replays delivered orders and cancelled
// orders oldest first. Any error after the clear aborts and leaves a
// partial ledger; running Rebuild again recovers it.
func (r *Rebuilder) Rebuild(ctx context.Context) (report domain.RebuildReport, err error) {
	if r.lock != nil {
		release, err := r.lock.Acquire(ctx)
		if err != nil {
			return report, err
		}
		defer release()
	}

	start := time.Now()
	defer func() {
		result := metrics.ResultApplied
		if err != nil {
			result = metrics.ResultFailed
		}
		metrics.Rebuilds.WithLabelValues(result).Inc()
		metrics.RebuildDuration.Observe(time.Since(start).Seconds())
	}()

	r.log.Info("rebuilding sales ledger")

	if err = r.ledger.DeleteAll(ctx); err != nil {
		return report, fmt.Errorf("clear sales ledger: %w", err)
	}

	delivered, err := r.orders.List(ctx, domain.OrderFilter{
		Statuses:    []domain.OrderStatus{domain.StatusDelivered},
		OldestFirst: true,
	})
	if err != nil {
		return report, fmt.Errorf("load delivered orders: %w", err)
	}
	for _, o := range delivered {
		if _, err = r.tracker.ApplyDelivery(ctx, o); err != nil {
			return report, fmt.Errorf("replay delivered order %s: %w", o.OrderNumber, err)
		}
		report.DeliveredReplayed++
	}

	cancelled, err := r.orders.List(ctx, domain.OrderFilter{
		Statuses:    []domain.OrderStatus{domain.StatusCancelled},
		OldestFirst: true,
	})
	if err != nil {
		return report, fmt.Errorf("load cancelled orders: %w", err)
	}
	for _, o := range cancelled {
		if _, err = r.tracker.ApplyCancellation(ctx, o); err != nil {
			return report, fmt.Errorf("replay cancelled order %s: %w", o.OrderNumber, err)
		}
		report.CancelledReplayed++
	}

	report.DurationMS = time.Since(start).Milliseconds()
	r.log.WithFields(logrus.Fields{
		"delivered": report.DeliveredReplayed,
		"cancelled": report.CancelledReplayed,
		"ms":        report.DurationMS,
	}).Info("sales ledger rebuilt")

	return report, nil
}
