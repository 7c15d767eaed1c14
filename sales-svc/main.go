package main

import (
	"context"
	"time"

	"platepilot/config"
	httpapi "platepilot/internal/api/http"
	"platepilot/internal/auth"
	"platepilot/internal/service"
	"platepilot/internal/storage"
)

const rebuildLockTTL = 30 * time.Minute

func main() {
	cfg := config.Load("8083")
	logger := config.NewLogger(cfg.LogLevel)
	log := logger.WithField("service", "sales-svc")

	var (
		orders service.OrderRepository
		ledger service.SalesLedger
		lock   service.RebuildLocker
	)

	switch cfg.StoreDriver {
	case config.DriverMemory:
		log.Warn("using in-memory stores, reports will not see orders from order-svc")
		orders = storage.NewMemoryOrderRepository()
		ledger = storage.NewMemorySalesLedger(cfg.Sales.Location)
		lock = &storage.MemoryRebuildLock{}
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
		lock = storage.NewRedisRebuildLock(rdb, rebuildLockTTL)
	}

	tracker := service.NewSalesTracker(ledger, cfg.Sales.Location, log.WithField("component", "tracker"))
	rebuilder := service.NewRebuilder(orders, ledger, tracker, lock, log.WithField("component", "rebuild"))
	reporter := service.NewReporter(ledger, orders, cfg.Sales.Location)

	tokens := auth.NewManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	router, err := httpapi.NewRouter("sales-svc", cfg.HTTP.RateLimit,
		httpapi.NewSalesHandler(reporter, rebuilder, httpapi.NewAuthenticator(tokens), log),
	)
	if err != nil {
		log.WithError(err).Fatal("failed to build router")
	}

	httpapi.StartServer(":"+cfg.Port, router, log)
}
