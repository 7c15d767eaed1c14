package domain

import "time"

const OrdersUpdateEvent = "orders:update"

type OrderAction string

const (
	ActionCreate   OrderAction = "create"
	ActionUpdate   OrderAction = "update"
	ActionDelete   OrderAction = "delete"
	ActionClearAll OrderAction = "clear-all"
)

// OrderEvent is published to the orders topic after every order mutation.
type OrderEvent struct {
	Type           string      `json:"type"`
	Action         OrderAction `json:"action"`
	OrderID        string      `json:"orderId,omitempty"`
	Order          *Order      `json:"order,omitempty"`
	PreviousStatus OrderStatus `json:"previousStatus,omitempty"`
	DeletedCount   int64       `json:"deletedCount,omitempty"`
	Timestamp      time.Time   `json:"timestamp"`
}

func NewOrderEvent(action OrderAction, order *Order) OrderEvent {
	evt := OrderEvent{
		Type:      OrdersUpdateEvent,
		Action:    action,
		Order:     order,
		Timestamp: time.Now().UTC(),
	}
	if order != nil {
		evt.OrderID = order.ID
	}
	return evt
}
