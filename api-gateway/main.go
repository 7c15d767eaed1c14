package main

import (
	"net/http"
	"time"

	"platepilot/api-gateway/internal/gateway"
	"platepilot/config"

	"github.com/rs/cors"
)

func main() {
	cfg := config.Load("8080")
	logger := config.NewLogger(cfg.LogLevel)
	log := logger.WithField("service", "api-gateway")

	gw := gateway.NewGateway(gateway.Config{
		OrderSvcURL: cfg.Gateway.OrderSvcURL,
		SalesSvcURL: cfg.Gateway.SalesSvcURL,
	}, &http.Client{Timeout: 5 * time.Minute}, log)

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:8080", "http://127.0.0.1:8080", "*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})
	handler := c.Handler(gw.SetupRoutes())

	log.Infof("API Gateway starting on port %s", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, handler))
}
