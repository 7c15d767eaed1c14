package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"platepilot/internal/auth"
	"platepilot/internal/domain"
	"platepilot/internal/service"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type OrderHandler struct {
	Orders service.OrderServiceInterface
	Auth   *Authenticator
	Log    logrus.FieldLogger
}

func NewOrderHandler(orders service.OrderServiceInterface, authn *Authenticator, logger logrus.FieldLogger) *OrderHandler {
	return &OrderHandler{Orders: orders, Auth: authn, Log: logger}
}

func (h *OrderHandler) RegisterRoutes(r *mux.Router) {
	admin := h.Auth.RequireAdmin
	optional := h.Auth.OptionalAuth

	r.Handle("/api/orders", optional(http.HandlerFunc(h.createOrder))).Methods("POST")
	r.Handle("/api/orders", optional(http.HandlerFunc(h.getOrders))).Methods("GET")
	r.Handle("/api/orders", admin(http.HandlerFunc(h.deleteAllOrders))).Methods("DELETE")
	r.HandleFunc("/api/orders/{id}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/orders/{id}/invoice", h.getInvoice).Methods("GET")
	r.HandleFunc("/api/orders/{id}/qrcode", h.getOrderQRCode).Methods("GET")
	r.Handle("/api/orders/{id}", admin(http.HandlerFunc(h.updateOrder))).Methods("PUT")
	r.Handle("/api/orders/{id}", admin(http.HandlerFunc(h.deleteOrder))).Methods("DELETE")
}

func (h *OrderHandler) createOrder(w http.ResponseWriter, r *http.Request) {
	var order domain.Order
	if err := json.NewDecoder(r.Body).Decode(&order); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	// Server-assigned fields.
	order.ID = ""
	order.CreatedAt = time.Time{}
	if p, ok := auth.FromContext(r.Context()); ok {
		order.UserID = p.Subject()
	}

	if err := h.Orders.Create(r.Context(), &order); err != nil {
		writeError(w, h.Log, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

// getOrders restricts customers to their own orders; admins and anonymous
// callers may filter freely.
func (h *OrderHandler) getOrders(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.OrderFilter{
		RestaurantID: q.Get("restaurantId"),
		UserID:       q.Get("userId"),
		OrderNumber:  q.Get("orderNumber"),
	}
	if raw := q.Get("status"); raw != "" {
		status, err := domain.ParseStatus(raw)
		if err != nil {
			writeError(w, h.Log, r, err)
			return
		}
		filter.Statuses = []domain.OrderStatus{status}
	}
	if p, ok := auth.FromContext(r.Context()); ok && !auth.IsAdmin(p) {
		filter.UserID = p.Subject()
	}

	orders, err := h.Orders.List(r.Context(), filter)
	if err != nil {
		writeError(w, h.Log, r, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *OrderHandler) getOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.Orders.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, h.Log, r, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *OrderHandler) getInvoice(w http.ResponseWriter, r *http.Request) {
	invoice, err := h.Orders.Invoice(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, h.Log, r, err)
		return
	}
	writeJSON(w, http.StatusOK, invoice)
}

func (h *OrderHandler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	png, err := h.Orders.QRCode(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, h.Log, r, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

func (h *OrderHandler) updateOrder(w http.ResponseWriter, r *http.Request) {
	var upd domain.OrderUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	order, err := h.Orders.Update(r.Context(), mux.Vars(r)["id"], upd)
	if err != nil {
		writeError(w, h.Log, r, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *OrderHandler) deleteOrder(w http.ResponseWriter, r *http.Request) {
	if err := h.Orders.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, h.Log, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Order deleted successfully"})
}

func (h *OrderHandler) deleteAllOrders(w http.ResponseWriter, r *http.Request) {
	n, err := h.Orders.DeleteAll(r.Context())
	if err != nil {
		writeError(w, h.Log, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message":      "All orders deleted successfully",
		"deletedCount": n,
	})
}
