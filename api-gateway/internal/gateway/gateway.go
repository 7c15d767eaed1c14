package gateway

import (
	"encoding/json"
	"io"
	"net"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Config struct {
	OrderSvcURL string
	SalesSvcURL string
}

type Gateway struct {
	config Config
	client HTTPClient
	log    logrus.FieldLogger
}

func NewGateway(config Config, client HTTPClient, logger logrus.FieldLogger) *Gateway {
	return &Gateway{
		config: config,
		client: client,
		log:    logger,
	}
}

func (g *Gateway) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]string{
		"status":  "healthy",
		"service": "api-gateway",
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (g *Gateway) ProxyRequest(w http.ResponseWriter, r *http.Request, targetURL string) {
	g.log.WithFields(logrus.Fields{
		"method": r.Method,
		"path":   r.URL.Path,
		"target": targetURL,
	}).Debug("proxy")

	url := targetURL + r.URL.Path
	if r.URL.RawQuery != "" {
		url += "?" + r.URL.RawQuery
	}

	req, err := http.NewRequestWithContext(r.Context(), r.Method, url, r.Body)
	if err != nil {
		g.log.WithError(err).Error("failed to create upstream request")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	for k, v := range r.Header {
		req.Header[k] = v
	}
	setForwardedFor(req, r)

	resp, err := g.client.Do(req)
	if err != nil {
		g.log.WithError(err).WithField("target", targetURL).Error("upstream unavailable")
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	defer resp.Body.Close()

	for k, v := range resp.Header {
		w.Header()[k] = v
	}
	w.WriteHeader(resp.StatusCode)

	if _, err := io.Copy(w, resp.Body); err != nil {
		g.log.WithError(err).Error("failed to copy upstream response")
	}
}

// setForwardedFor replaces any client-supplied forward headers with the
// address the gateway saw, so upstream rate limits key on the real client.
func setForwardedFor(out, in *http.Request) {
	host, _, err := net.SplitHostPort(in.RemoteAddr)
	if err != nil {
		host = in.RemoteAddr
	}
	if host == "" {
		return
	}
	out.Header.Set("X-Forwarded-For", host)
	out.Header.Set("X-Real-IP", host)
}

func hasPathPrefix(path, prefix string) bool {
	return path == prefix || strings.HasPrefix(path, prefix+"/")
}

func (g *Gateway) RouteHandler(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path

	// Legacy receipt links: /api/check/{orderNumber}.
	if strings.HasPrefix(path, "/api/check/") {
		r.URL.Path = "/api/orders/" + strings.TrimPrefix(path, "/api/check/")
		g.ProxyRequest(w, r, g.config.OrderSvcURL)
		return
	}

	switch {
	case hasPathPrefix(path, "/api/orders"), hasPathPrefix(path, "/api/auth"):
		g.ProxyRequest(w, r, g.config.OrderSvcURL)
	case hasPathPrefix(path, "/api/sales"), hasPathPrefix(path, "/api/reports"), hasPathPrefix(path, "/api/admin"):
		g.ProxyRequest(w, r, g.config.SalesSvcURL)
	default:
		g.log.WithField("path", path).Warn("unmatched API route")
		http.Error(w, "API route not found", http.StatusNotFound)
	}
}

func (g *Gateway) SetupRoutes() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/health", g.HealthCheck).Methods("GET")
	r.PathPrefix("/api/").HandlerFunc(g.RouteHandler)
	return r
}
