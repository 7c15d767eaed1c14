package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"platepilot/internal/metrics"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
)

type RouteRegistrar interface {
	RegisterRoutes(r *mux.Router)
}

func NewRouter(serviceName, rateLimit string, registrars ...RouteRegistrar) (http.Handler, error) {
	r := mux.NewRouter()
	r.HandleFunc("/health", healthCheck(serviceName)).Methods("GET")
	r.Handle("/metrics", metrics.Handler()).Methods("GET")
	for _, reg := range registrars {
		reg.RegisterRoutes(r)
	}
	r.Use(metrics.Middleware)

	limit, err := RateLimit(rateLimit)
	if err != nil {
		return nil, err
	}

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	})
	return c.Handler(limit(r)), nil
}

func healthCheck(serviceName string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"status":    "healthy",
			"service":   serviceName,
			"timestamp": time.Now().Format(time.RFC3339),
		})
	}
}

func StartServer(addr string, handler http.Handler, log logrus.FieldLogger) {
	log.Infof("listening on %s", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}
