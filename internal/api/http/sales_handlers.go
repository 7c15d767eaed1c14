package httpapi

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"platepilot/internal/domain"
	"platepilot/internal/service"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// SalesHandler serves the admin sales, report and dashboard endpoints.
type SalesHandler struct {
	Reports   service.ReporterInterface
	Rebuilder service.RebuilderInterface
	Auth      *Authenticator
	Log       logrus.FieldLogger
}

func NewSalesHandler(reports service.ReporterInterface, rebuilder service.RebuilderInterface, authn *Authenticator, logger logrus.FieldLogger) *SalesHandler {
	return &SalesHandler{
		Reports:   reports,
		Rebuilder: rebuilder,
		Auth:      authn,
		Log:       logger,
	}
}

func (h *SalesHandler) RegisterRoutes(r *mux.Router) {
	api := r.PathPrefix("/api").Subrouter()
	api.Use(h.Auth.RequireAdmin)

	api.HandleFunc("/sales/daily", h.getDailySales).Methods("GET")
	api.HandleFunc("/sales/monthly", h.getMonthlySales).Methods("GET")
	api.HandleFunc("/sales/today", h.getSalesToday).Methods("GET")
	api.HandleFunc("/sales/this-month", h.getThisMonth).Methods("GET")
	api.HandleFunc("/sales/stats", h.getStats).Methods("GET")
	api.HandleFunc("/sales/rebuild", h.rebuild).Methods("POST")

	api.HandleFunc("/reports/daily-sales", h.getDailySalesReport).Methods("GET")
	api.HandleFunc("/reports/today", h.getToday).Methods("GET")

	api.HandleFunc("/admin/dashboard/stats", h.getDashboard).Methods("GET")
}

func (h *SalesHandler) parseDate(raw string) (time.Time, error) {
	loc := h.Reports.Location()
	if t, err := time.ParseInLocation(domain.DateLayout, raw, loc); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.In(loc), nil
	}
	return time.Time{}, domain.ErrInvalidDate
}

func (h *SalesHandler) getDailySales(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	rawStart, rawEnd := q.Get("startDate"), q.Get("endDate")
	if rawStart == "" || rawEnd == "" {
		writeError(w, h.Log, r, domain.ErrMissingDateRange)
		return
	}
	start, err := h.parseDate(rawStart)
	if err != nil {
		writeError(w, h.Log, r, err)
		return
	}
	end, err := h.parseDate(rawEnd)
	if err != nil {
		writeError(w, h.Log, r, err)
		return
	}

	report, err := h.Reports.Range(r.Context(), start, end, q.Get("restaurantId"))
	if err != nil {
		writeError(w, h.Log, r, err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{Success: true, Data: report.Records, Summary: report.Summary})
}

func (h *SalesHandler) getMonthlySales(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	year, yerr := strconv.Atoi(q.Get("year"))
	month, merr := strconv.Atoi(q.Get("month"))
	if yerr != nil || merr != nil || month < 1 || month > 12 {
		writeError(w, h.Log, r, domain.ErrInvalidMonth)
		return
	}

	summary, err := h.Reports.Month(r.Context(), year, time.Month(month), q.Get("restaurantId"))
	if err != nil {
		writeError(w, h.Log, r, err)
		return
	}
	writeData(w, summary)
}

func (h *SalesHandler) getToday(w http.ResponseWriter, r *http.Request) {
	summary, err := h.Reports.Today(r.Context(), r.URL.Query().Get("restaurantId"))
	if err != nil {
		writeError(w, h.Log, r, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (h *SalesHandler) getSalesToday(w http.ResponseWriter, r *http.Request) {
	summary, err := h.Reports.Today(r.Context(), r.URL.Query().Get("restaurantId"))
	if err != nil {
		writeError(w, h.Log, r, err)
		return
	}
	writeData(w, summary)
}

func (h *SalesHandler) getThisMonth(w http.ResponseWriter, r *http.Request) {
	summary, err := h.Reports.ThisMonth(r.Context(), r.URL.Query().Get("restaurantId"))
	if err != nil {
		writeError(w, h.Log, r, err)
		return
	}
	writeData(w, summary)
}

func (h *SalesHandler) getStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Reports.Stats(r.Context(), r.URL.Query().Get("restaurantId"))
	if err != nil {
		writeError(w, h.Log, r, err)
		return
	}
	writeData(w, stats)
}

// rebuild runs to completion even if the client goes away.
func (h *SalesHandler) rebuild(w http.ResponseWriter, r *http.Request) {
	report, err := h.Rebuilder.Rebuild(context.WithoutCancel(r.Context()))
	if err != nil {
		writeError(w, h.Log, r, err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{
		Success: true,
		Message: "Sales records rebuilt successfully",
		Report:  report,
	})
}

func (h *SalesHandler) getDailySalesReport(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var start, end time.Time
	var err error
	if raw := q.Get("startDate"); raw != "" {
		if start, err = h.parseDate(raw); err != nil {
			writeError(w, h.Log, r, err)
			return
		}
	}
	if raw := q.Get("endDate"); raw != "" {
		if end, err = h.parseDate(raw); err != nil {
			writeError(w, h.Log, r, err)
			return
		}
	}

	rows, err := h.Reports.DailySales(r.Context(), start, end, q.Get("restaurantId"))
	if err != nil {
		writeError(w, h.Log, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

func (h *SalesHandler) getDashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Reports.Dashboard(r.Context())
	if err != nil {
		writeError(w, h.Log, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
