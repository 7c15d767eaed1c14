package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusConfirmed OrderStatus = "confirmed"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
	StatusRejected  OrderStatus = "rejected"
)

var orderStatuses = map[OrderStatus]struct{}{
	StatusPending:   {},
	StatusConfirmed: {},
	StatusPreparing: {},
	StatusReady:     {},
	StatusDelivered: {},
	StatusCancelled: {},
	StatusRejected:  {},
}

func (s OrderStatus) Valid() bool {
	_, ok := orderStatuses[s]
	return ok
}

func ParseStatus(raw string) (OrderStatus, error) {
	s := OrderStatus(strings.ToLower(strings.TrimSpace(raw)))
	if !s.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, raw)
	}
	return s, nil
}

type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "cash"
	PaymentCard   PaymentMethod = "card"
	PaymentUPI    PaymentMethod = "upi"
	PaymentOnline PaymentMethod = "online"
)

// NormalizePaymentMethod maps the free-form method recorded on an order to
// a ledger bucket. Missing means cash, anything unrecognised is online.
func NormalizePaymentMethod(raw string) PaymentMethod {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "cash":
		return PaymentCash
	case "card":
		return PaymentCard
	case "upi":
		return PaymentUPI
	default:
		return PaymentOnline
	}
}

type OrderType string

const (
	OrderTypeDelivery OrderType = "delivery"
	OrderTypePickup   OrderType = "pickup"
	OrderTypeDineIn   OrderType = "dineIn"
)

// NormalizeOrderType maps the order's fulfilment type to a ledger bucket.
// Missing means delivery, anything unrecognised is dine-in.
func NormalizeOrderType(raw string) OrderType {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "delivery":
		return OrderTypeDelivery
	case "pickup":
		return OrderTypePickup
	default:
		return OrderTypeDineIn
	}
}

type OrderItem struct {
	ItemID   string          `json:"itemId"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

type Order struct {
	ID              string          `json:"id"`
	OrderNumber     string          `json:"orderNumber"`
	UserID          string          `json:"userId"`
	RestaurantID    string          `json:"restaurantId,omitempty"`
	RestaurantName  string          `json:"restaurantName,omitempty"`
	CustomerName    string          `json:"customerName,omitempty"`
	CustomerEmail   string          `json:"customerEmail,omitempty"`
	CustomerPhone   string          `json:"customerPhone,omitempty"`
	DeliveryAddress string          `json:"deliveryAddress,omitempty"`
	Status          OrderStatus     `json:"status"`
	Total           decimal.Decimal `json:"total"`
	PaymentMethod   string          `json:"paymentMethod,omitempty"`
	OrderType       string          `json:"orderType,omitempty"`
	Items           []OrderItem     `json:"items"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

func (o Order) ItemCount() int {
	n := 0
	for _, item := range o.Items {
		n += item.Quantity
	}
	return n
}

func (o Order) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, item := range o.Items {
		sum = sum.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return sum
}

// Validate checks a new order and fills defaults for status and total.
func (o *Order) Validate() error {
	if len(o.Items) == 0 {
		return fmt.Errorf("%w: at least one item is required", ErrInvalidOrder)
	}
	for i, item := range o.Items {
		if item.Quantity < 1 {
			return fmt.Errorf("%w: item %d quantity must be at least 1", ErrInvalidOrder, i)
		}
		if item.Price.IsNegative() {
			return fmt.Errorf("%w: item %d price must not be negative", ErrInvalidOrder, i)
		}
	}
	if o.Total.IsNegative() {
		return fmt.Errorf("%w: total must not be negative", ErrInvalidOrder)
	}
	if o.Total.IsZero() {
		o.Total = o.Subtotal()
	}

	if o.Status == "" {
		o.Status = StatusPending
	}
	status, err := ParseStatus(string(o.Status))
	if err != nil {
		return err
	}
	o.Status = status

	return nil
}

type OrderFilter struct {
	Statuses        []OrderStatus
	ExcludeStatuses []OrderStatus
	RestaurantID    string
	UserID          string
	OrderNumber     string
	CreatedFrom     time.Time
	// CreatedBefore is exclusive.
	CreatedBefore time.Time
	// OldestFirst orders by creation time ascending; default is newest first.
	OldestFirst bool
	Limit       int
}

type OrderUpdate struct {
	Status          *string `json:"status,omitempty"`
	PaymentMethod   *string `json:"paymentMethod,omitempty"`
	OrderType       *string `json:"orderType,omitempty"`
	DeliveryAddress *string `json:"deliveryAddress,omitempty"`
}

// Normalize validates the update and returns the parsed status, if any.
func (u OrderUpdate) Normalize() (*OrderStatus, error) {
	if u.Status == nil {
		return nil, nil
	}
	status, err := ParseStatus(*u.Status)
	if err != nil {
		return nil, err
	}
	return &status, nil
}

// Apply copies the set fields onto o.
func (u OrderUpdate) Apply(o *Order) error {
	status, err := u.Normalize()
	if err != nil {
		return err
	}
	if status != nil {
		o.Status = *status
	}
	if u.PaymentMethod != nil {
		o.PaymentMethod = *u.PaymentMethod
	}
	if u.OrderType != nil {
		o.OrderType = *u.OrderType
	}
	if u.DeliveryAddress != nil {
		o.DeliveryAddress = *u.DeliveryAddress
	}
	return nil
}

func FormatOrderNumber(seq int) string {
	return fmt.Sprintf("ORD%06d", seq)
}

type TopItem struct {
	ItemID   string          `json:"itemId"`
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Revenue  decimal.Decimal `json:"revenue"`
}

var (
	InvoiceDeliveryFee = decimal.NewFromInt(40)
	InvoicePlatformFee = decimal.NewFromInt(5)
	InvoiceTaxRate     = decimal.RequireFromString("0.05")
)

type InvoiceLine struct {
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Amount   decimal.Decimal `json:"amount"`
}

type Invoice struct {
	OrderID         string          `json:"orderId"`
	OrderNumber     string          `json:"orderNumber"`
	RestaurantName  string          `json:"restaurantName,omitempty"`
	CustomerName    string          `json:"customerName,omitempty"`
	DeliveryAddress string          `json:"deliveryAddress,omitempty"`
	Status          OrderStatus     `json:"status"`
	PaymentMethod   PaymentMethod   `json:"paymentMethod"`
	Lines           []InvoiceLine   `json:"items"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	DeliveryFee     decimal.Decimal `json:"deliveryFee"`
	PlatformFee     decimal.Decimal `json:"platformFee"`
	Taxes           decimal.Decimal `json:"taxes"`
	Total           decimal.Decimal `json:"total"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// BuildInvoice computes the customer-facing price breakdown. Taxes are 5% of
// subtotal plus delivery fee, rounded to a whole unit.
func BuildInvoice(o Order) Invoice {
	lines := make([]InvoiceLine, 0, len(o.Items))
	for _, item := range o.Items {
		lines = append(lines, InvoiceLine{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.Price,
			Amount:   item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))),
		})
	}

	subtotal := o.Subtotal()
	taxes := subtotal.Add(InvoiceDeliveryFee).Mul(InvoiceTaxRate).Round(0)

	return Invoice{
		OrderID:         o.ID,
		OrderNumber:     o.OrderNumber,
		RestaurantName:  o.RestaurantName,
		CustomerName:    o.CustomerName,
		DeliveryAddress: o.DeliveryAddress,
		Status:          o.Status,
		PaymentMethod:   NormalizePaymentMethod(o.PaymentMethod),
		Lines:           lines,
		Subtotal:        subtotal,
		DeliveryFee:     InvoiceDeliveryFee,
		PlatformFee:     InvoicePlatformFee,
		Taxes:           taxes,
		Total:           subtotal.Add(InvoiceDeliveryFee).Add(InvoicePlatformFee).Add(taxes),
		CreatedAt:       o.CreatedAt,
	}
}
