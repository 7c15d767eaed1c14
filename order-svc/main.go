package main

import (
	"context"

	"platepilot/config"
	httpapi "platepilot/internal/api/http"
	"platepilot/internal/auth"
	"platepilot/internal/service"
	"platepilot/internal/storage"
)

func main() {
	cfg := config.Load("8081")
	logger := config.NewLogger(cfg.LogLevel)
	log := logger.WithField("service", "order-svc")

	var (
		orders    service.OrderRepository
		ledger    service.SalesLedger
		codes     service.OTPStore
		publisher service.OrderEventPublisher
	)

	switch cfg.StoreDriver {
	case config.DriverMemory:
		log.Warn("using in-memory stores, data is lost on restart")
		orders = storage.NewMemoryOrderRepository()
		ledger = storage.NewMemorySalesLedger(cfg.Sales.Location)
		codes = storage.NewMemoryOTPStore(cfg.Auth.OTPTTL)
		if cfg.Sales.TrackingMode == config.TrackingAsync {
			log.Warn("async sales tracking needs the broker, falling back to sync")
			cfg.Sales.TrackingMode = config.TrackingSync
		}
	default:
		db := config.MustInitPostgres(cfg.DB)
		defer db.Close()
		if err := storage.EnsureSchema(context.Background(), db); err != nil {
			log.WithError(err).Fatal("failed to ensure schema")
		}
		orders = storage.NewPostgresOrderRepository(db)
		ledger = storage.NewPostgresSalesLedger(db, cfg.Sales.Location)

		rdb := config.MustInitRedis(cfg.Redis)
		defer rdb.Close()
		codes = storage.NewRedisOTPStore(rdb, cfg.Auth.OTPTTL)

		writer := config.NewKafkaWriter(cfg.Kafka)
		defer writer.Close()
		publisher = storage.NewKafkaPublisher(writer)
	}

	var tracker service.SalesTrackerInterface
	if cfg.Sales.TrackingMode == config.TrackingSync {
		tracker = service.NewSalesTracker(ledger, cfg.Sales.Location, log.WithField("component", "tracker"))
	}
	log.WithField("trackingMode", cfg.Sales.TrackingMode).Info("sales tracking configured")

	tokens := auth.NewManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	qr := service.DefaultQRGenerator{BaseURL: cfg.HTTP.PublicBaseURL}

	orderSvc := service.NewOrderService(orders, tracker, publisher, qr, log)
	authSvc := service.NewAuthService(codes, tokens, log)

	router, err := httpapi.NewRouter("order-svc", cfg.HTTP.RateLimit,
		httpapi.NewOrderHandler(orderSvc, httpapi.NewAuthenticator(tokens), log),
		httpapi.NewAuthHandler(authSvc, log),
	)
	if err != nil {
		log.WithError(err).Fatal("failed to build router")
	}

	httpapi.StartServer(":"+cfg.Port, router, log)
}
