package service

import (
	"context"
	"errors"
	"fmt"

	"platepilot/config"
	"platepilot/internal/domain"
	"platepilot/internal/metrics"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const guestUserID = "guest"

type OrderService struct {
	repo      OrderRepository
	tracker   SalesTrackerInterface
	publisher OrderEventPublisher
	qr        QRGenerator
	log       logrus.FieldLogger
}

// NewOrderService wires the order workflow. A nil tracker leaves ledger
// updates to the event consumer; a nil publisher disables order events.
func NewOrderService(repo OrderRepository, tracker SalesTrackerInterface, publisher OrderEventPublisher, qr QRGenerator, logger logrus.FieldLogger) *OrderService {
	return &OrderService{
		repo:      repo,
		tracker:   tracker,
		publisher: publisher,
		qr:        qr,
		log:       logger,
	}
}

func (s *OrderService) Create(ctx context.Context, o *domain.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	if o.UserID == "" {
		o.UserID = guestUserID
	}
	if o.OrderNumber == "" {
		n, err := s.repo.Count(ctx, domain.OrderFilter{})
		if err != nil {
			return fmt.Errorf("count orders: %w", err)
		}
		o.OrderNumber = domain.FormatOrderNumber(n + 1)
	}

	if err := s.repo.Create(ctx, o); err != nil {
		return err
	}

	s.track(ctx, *o)
	s.publish(ctx, domain.NewOrderEvent(domain.ActionCreate, o))
	return nil
}

func (s *OrderService) List(ctx context.Context, f domain.OrderFilter) ([]domain.Order, error) {
	return s.repo.List(ctx, f)
}

func (s *OrderService) Get(ctx context.Context, idOrNumber string) (*domain.Order, error) {
	return s.repo.Get(ctx, idOrNumber)
}

// Update writes the change first and only then feeds the sales ledger, so a
// ledger failure never rolls back the order.
func (s *OrderService) Update(ctx context.Context, idOrNumber string, upd domain.OrderUpdate) (*domain.Order, error) {
	if _, err := upd.Normalize(); err != nil {
		return nil, err
	}

	order, previous, err := s.repo.Update(ctx, idOrNumber, upd)
	if err != nil {
		return nil, err
	}

	s.track(ctx, *order)

	evt := domain.NewOrderEvent(domain.ActionUpdate, order)
	evt.PreviousStatus = previous
	s.publish(ctx, evt)

	return order, nil
}

func (s *OrderService) Delete(ctx context.Context, idOrNumber string) error {
	order, err := s.repo.Get(ctx, idOrNumber)
	if err != nil {
		return err
	}
	n, err := s.repo.Delete(ctx, order.ID)
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrOrderNotFound
	}

	evt := domain.NewOrderEvent(domain.ActionDelete, nil)
	evt.OrderID = order.ID
	s.publish(ctx, evt)
	return nil
}

// DeleteAll removes every order. The sales ledger is kept.
func (s *OrderService) DeleteAll(ctx context.Context) (int64, error) {
	n, err := s.repo.DeleteAll(ctx)
	if err != nil {
		return 0, err
	}

	evt := domain.NewOrderEvent(domain.ActionClearAll, nil)
	evt.DeletedCount = n
	s.publish(ctx, evt)
	return n, nil
}

func (s *OrderService) Invoice(ctx context.Context, idOrNumber string) (domain.Invoice, error) {
	order, err := s.repo.Get(ctx, idOrNumber)
	if err != nil {
		return domain.Invoice{}, err
	}
	return domain.BuildInvoice(*order), nil
}

func (s *OrderService) QRCode(ctx context.Context, idOrNumber string) ([]byte, error) {
	if s.qr == nil {
		return nil, errors.New("qr generator not configured")
	}
	order, err := s.repo.Get(ctx, idOrNumber)
	if err != nil {
		return nil, err
	}
	return s.qr.Generate(order.OrderNumber)
}

func (s *OrderService) track(ctx context.Context, o domain.Order) {
	if s.tracker == nil {
		return
	}
	s.tracker.HandleStatusChange(ctx, o)
}

func (s *OrderService) publish(ctx context.Context, evt domain.OrderEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishOrderEvent(ctx, evt); err != nil {
		metrics.OrderEventsPublished.WithLabelValues(string(evt.Action), metrics.ResultFailed).Inc()
		config.LogError(s.log, "orders", "publish", "write order event", evt.OrderID, err)
		return
	}
	metrics.OrderEventsPublished.WithLabelValues(string(evt.Action), metrics.ResultApplied).Inc()
}
