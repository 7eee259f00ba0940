package payments_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"service/internal/dto"
	"service/internal/pkg/middlewares/auth"
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
	authenticatedEmail, ok := auth.EmailFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	requestedEmail := r.URL.Query().Get("email")

	paymentsList, err := h.service.ListPayments(r.Context(), authenticatedEmail, requestedEmail)
	if err != nil {
		switch {
		case errors.Is(err, payment.ErrInvalidEmail):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, payment.ErrEmailMismatch):
			response := dto.Error{
				Message: "forbidden access",
			}

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusForbidden)
			encodeErr := json.NewEncoder(w).Encode(response)
			if encodeErr != nil {
				h.log.With(
					logger.NewField("error", encodeErr),
				).Error("encode JSON response")
			}
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := make([]dto.Payment, 0, len(paymentsList))
	for _, paymentEntity := range paymentsList {
		response = append(response, dto.Payment{
			ID:            paymentEntity.ID,
			ParcelID:      paymentEntity.ParcelID,
			CustomerEmail: paymentEntity.CustomerEmail,
			Amount:        paymentEntity.Amount,
			Currency:      paymentEntity.Currency,
			TransactionID: paymentEntity.TransactionID,
			TrackingID:    paymentEntity.TrackingID,
			PaymentStatus: string(paymentEntity.PaymentStatus),
			PaidAt:        paymentEntity.PaidAt,
		})
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
