package service

import (
	"context"
	"encoding/json"
	"errors"

	"platepilot/internal/domain"

	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

type ConsumerInterface interface {
	Start(ctx context.Context)
	ProcessEvent(ctx context.Context, evt domain.OrderEvent)
}

var _ ConsumerInterface = (*Consumer)(nil)

// Consumer feeds order events from the broker into the sales tracker.
type Consumer struct {
	Reader  *kafka.Reader
	Tracker SalesTrackerInterface
	Log     logrus.FieldLogger
}

func NewConsumer(reader *kafka.Reader, tracker SalesTrackerInterface, logger logrus.FieldLogger) *Consumer {
	return &Consumer{
		Reader:  reader,
		Tracker: tracker,
		Log:     logger,
	}
}

func (c *Consumer) Start(ctx context.Context) {
	c.Log.Info("starting sales consumer")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				c.Log.Info("sales consumer stopped")
				return
			}
			c.Log.WithError(err).Error("error reading message")
			continue
		}

		var evt domain.OrderEvent
		if err := json.Unmarshal(message.Value, &evt); err != nil {
			c.Log.WithError(err).WithField("offset", message.Offset).Error("error unmarshaling order event")
			continue
		}

		c.ProcessEvent(ctx, evt)
	}
}

// ProcessEvent applies created or updated orders that reached a final
// status. Redelivered events are absorbed by the ledger's idempotency guard.
func (c *Consumer) ProcessEvent(ctx context.Context, evt domain.OrderEvent) {
	if evt.Type != domain.OrdersUpdateEvent || evt.Order == nil {
		return
	}
	if evt.Action != domain.ActionCreate && evt.Action != domain.ActionUpdate {
		return
	}

	c.Log.WithFields(logrus.Fields{
		"orderId": evt.Order.ID,
		"status":  evt.Order.Status,
		"action":  evt.Action,
	}).Debug("processing order event")

	c.Tracker.HandleStatusChange(ctx, *evt.Order)
}
