package checkout_session_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"service/internal/dto"
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
	var sessionDTO dto.CheckoutSessionRequest
	err := json.NewDecoder(r.Body).Decode(&sessionDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	url, err := h.service.CreateCheckoutSession(r.Context(), sessionDTO.ParcelID)
	if err != nil {
		switch {
		case errors.Is(err, payment.ErrInvalidParcelID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, parcel.ErrParcelNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.CheckoutSessionResponse{
		URL: url,
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
