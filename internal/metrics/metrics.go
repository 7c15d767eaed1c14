package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	ResultApplied   = "applied"
	ResultDuplicate = "duplicate"
	ResultFailed    = "failed"
)

var (
	SalesEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "platepilot",
		Subsystem: "sales",
		Name:      "ledger_events_total",
		Help:      "Order outcomes applied to the sales ledger, by outcome and result.",
	}, []string{"outcome", "result"})

	Rebuilds = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "platepilot",
		Subsystem: "sales",
		Name:      "rebuilds_total",
		Help:      "Sales ledger rebuilds by result.",
	}, []string{"result"})

	RebuildDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "platepilot",
		Subsystem: "sales",
		Name:      "rebuild_duration_seconds",
		Help:      "Wall time of a full sales ledger rebuild.",
		Buckets:   prometheus.ExponentialBuckets(0.05, 2, 12),
	})

	OrderEventsPublished = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "platepilot",
		Subsystem: "orders",
		Name:      "events_published_total",
		Help:      "Order events written to the broker, by action and result.",
	}, []string{"action", "result"})

	httpRequests = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "platepilot",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency by route and status code.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route", "code"})
)

func Handler() http.Handler {
	return promhttp.Handler()
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Middleware records request latency labelled with the mux route template.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		route := "unmatched"
		if current := mux.CurrentRoute(r); current != nil {
			if tpl, err := current.GetPathTemplate(); err == nil {
				route = tpl
			}
		}
		httpRequests.WithLabelValues(r.Method, route, strconv.Itoa(rec.status)).
			Observe(time.Since(start).Seconds())
	})
}
