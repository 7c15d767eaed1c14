package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"platepilot/config"
	httpapi "platepilot/internal/api/http"
	"platepilot/internal/service"
	"platepilot/internal/storage"
)

func main() {
	cfg := config.Load("8084")
	logger := config.NewLogger(cfg.LogLevel)
	log := logger.WithField("service", "agg-svc")

	if cfg.Sales.TrackingMode != config.TrackingAsync {
		log.Warn("SALES_TRACKING_MODE is not async; order-svc also updates the ledger, duplicates are absorbed by the ledger")
	}

	db := config.MustInitPostgres(cfg.DB)
	defer db.Close()
	if err := storage.EnsureSchema(context.Background(), db); err != nil {
		log.WithError(err).Fatal("failed to ensure schema")
	}

	ledger := storage.NewPostgresSalesLedger(db, cfg.Sales.Location)
	tracker := service.NewSalesTracker(ledger, cfg.Sales.Location, log.WithField("component", "tracker"))

	reader := config.NewKafkaReader(cfg.Kafka)
	defer reader.Close()

	router, err := httpapi.NewRouter("agg-svc", "")
	if err != nil {
		log.WithError(err).Fatal("failed to build router")
	}
	go func() {
		if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
			log.WithError(err).Error("metrics server stopped")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	service.NewConsumer(reader, tracker, log).Start(ctx)
}
