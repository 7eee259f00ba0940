package payment_success_patch

import (
	"encoding/json"
	"errors"
	"net/http"

	"service/internal/dto"
	"service/internal/gateway/checkout"
	"service/internal/service/parcel"
	"service/internal/service/payment"
	"service/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("session_id")

	outcome, err := h.service.Reconcile(r.Context(), sessionID)
	if err != nil {
		switch {
		case errors.Is(err, payment.ErrInvalidSessionID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, checkout.ErrSessionNotFound),
			errors.Is(err, parcel.ErrParcelNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, checkout.ErrProvider):
			w.WriteHeader(http.StatusBadGateway)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.PaymentOutcome{
		Success:       outcome.Success,
		TrackingID:    outcome.TrackingID,
		TransactionID: outcome.TransactionID,
	}
	switch {
	case outcome.AlreadyExists:
		response.Message = "payment already processed"
	case !outcome.Success:
		response.Message = "payment is not completed"
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
