package service

import (
	"context"
	"time"

	"platepilot/internal/auth"
	"platepilot/internal/domain"
	"platepilot/internal/storage"
)

type OrderRepository interface {
	Create(ctx context.Context, o *domain.Order) error
	Get(ctx context.Context, idOrNumber string) (*domain.Order, error)
	List(ctx context.Context, f domain.OrderFilter) ([]domain.Order, error)
	Count(ctx context.Context, f domain.OrderFilter) (int, error)
	Update(ctx context.Context, idOrNumber string, upd domain.OrderUpdate) (*domain.Order, domain.OrderStatus, error)
	Delete(ctx context.Context, idOrNumber string) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)
	TopSellingItems(ctx context.Context, limit int) ([]domain.TopItem, error)
}

type SalesLedger interface {
	Apply(ctx context.Context, d domain.SalesDelta) (bool, error)
	Find(ctx context.Context, date time.Time, restaurantID string) (*domain.SalesRecord, error)
	FindRange(ctx context.Context, from, to time.Time, restaurantID string) ([]domain.SalesRecord, error)
	DeleteAll(ctx context.Context) error
}

type RebuildLocker interface {
	Acquire(ctx context.Context) (release func(), err error)
}

type OTPStore interface {
	Save(ctx context.Context, phone, code string) error
	Consume(ctx context.Context, phone, code string) (bool, error)
}

type OrderEventPublisher interface {
	PublishOrderEvent(ctx context.Context, evt domain.OrderEvent) error
}

type TokenIssuer interface {
	Issue(p auth.Principal) (string, time.Time, error)
}

type SalesTrackerInterface interface {
	RecordDelivery(ctx context.Context, o domain.Order)
	RecordCancellation(ctx context.Context, o domain.Order)
	HandleStatusChange(ctx context.Context, o domain.Order)
}

type RebuilderInterface interface {
	Rebuild(ctx context.Context) (domain.RebuildReport, error)
}

type ReporterInterface interface {
	Location() *time.Location
	Range(ctx context.Context, start, end time.Time, restaurantID string) (domain.RangeReport, error)
	Today(ctx context.Context, restaurantID string) (domain.TodaySummary, error)
	Month(ctx context.Context, year int, month time.Month, restaurantID string) (domain.MonthSummary, error)
	ThisMonth(ctx context.Context, restaurantID string) (domain.MonthSummary, error)
	Stats(ctx context.Context, restaurantID string) (domain.SalesStats, error)
	DailySales(ctx context.Context, start, end time.Time, restaurantID string) ([]domain.DailySalesRow, error)
	Dashboard(ctx context.Context) (domain.DashboardStats, error)
}

type OrderServiceInterface interface {
	Create(ctx context.Context, o *domain.Order) error
	List(ctx context.Context, f domain.OrderFilter) ([]domain.Order, error)
	Get(ctx context.Context, idOrNumber string) (*domain.Order, error)
	Update(ctx context.Context, idOrNumber string, upd domain.OrderUpdate) (*domain.Order, error)
	Delete(ctx context.Context, idOrNumber string) error
	DeleteAll(ctx context.Context) (int64, error)
	Invoice(ctx context.Context, idOrNumber string) (domain.Invoice, error)
	QRCode(ctx context.Context, idOrNumber string) ([]byte, error)
}

type AuthServiceInterface interface {
	RequestCode(ctx context.Context, phone string) error
	VerifyCode(ctx context.Context, phone, code string) (TokenResponse, error)
}

var (
	_ OrderRepository     = (*storage.PostgresOrderRepository)(nil)
	_ OrderRepository     = (*storage.MemoryOrderRepository)(nil)
	_ SalesLedger         = (*storage.PostgresSalesLedger)(nil)
	_ SalesLedger         = (*storage.MemorySalesLedger)(nil)
	_ RebuildLocker       = (*storage.RedisRebuildLock)(nil)
	_ RebuildLocker       = (*storage.MemoryRebuildLock)(nil)
	_ OTPStore            = (*storage.RedisOTPStore)(nil)
	_ OTPStore            = (*storage.MemoryOTPStore)(nil)
	_ OrderEventPublisher = (*storage.KafkaPublisher)(nil)
	_ TokenIssuer         = (*auth.Manager)(nil)

	_ SalesTrackerInterface = (*SalesTracker)(nil)
	_ RebuilderInterface    = (*Rebuilder)(nil)
	_ ReporterInterface     = (*Reporter)(nil)
	_ OrderServiceInterface = (*OrderService)(nil)
	_ AuthServiceInterface  = (*AuthService)(nil)
)
