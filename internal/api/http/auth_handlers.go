package httpapi

import (
	"encoding/json"
	"net/http"

	"platepilot/internal/service"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type AuthHandler struct {
	Auth service.AuthServiceInterface
	Log  logrus.FieldLogger
}

func NewAuthHandler(svc service.AuthServiceInterface, logger logrus.FieldLogger) *AuthHandler {
	return &AuthHandler{Auth: svc, Log: logger}
}

func (h *AuthHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/api/auth/otp/request", h.requestCode).Methods("POST")
	r.HandleFunc("/api/auth/otp/verify", h.verifyCode).Methods("POST")
}

type otpRequest struct {
	Phone string `json:"phone"`
	Code  string `json:"code"`
}

func (h *AuthHandler) requestCode(w http.ResponseWriter, r *http.Request) {
	var req otpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.Auth.RequestCode(r.Context(), req.Phone); err != nil {
		writeError(w, h.Log, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Verification code sent"})
}

func (h *AuthHandler) verifyCode(w http.ResponseWriter, r *http.Request) {
	var req otpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	token, err := h.Auth.VerifyCode(r.Context(), req.Phone, req.Code)
	if err != nil {
		writeError(w, h.Log, r, err)
		return
	}
	writeJSON(w, http.StatusOK, token)
}
