package parcels_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"service/internal/dto"
	"service/internal/entities"
	"service/internal/service/parcel"
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
	query := r.URL.Query()

	var filter entities.ParcelFilter
	if email := query.Get("senderEmail"); email != "" {
		filter.SenderEmail = &email
	}
	if status := query.Get("deliveryStatus"); status != "" {
		statusType := entities.DeliveryStatusType(status)
		filter.DeliveryStatus = &statusType
	}

	parcelsList, err := h.service.GetParcels(r.Context(), filter)
	if err != nil {
		switch {
		case errors.Is(err, parcel.ErrInvalidStatus):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := make([]dto.Parcel, 0, len(parcelsList))
	for _, parcelEntity := range parcelsList {
		response = append(response, dto.Parcel{
			ID:             parcelEntity.ID,
			SenderEmail:    parcelEntity.SenderEmail,
			Name:           parcelEntity.Name,
			Cost:           parcelEntity.Cost,
			PaymentStatus:  string(parcelEntity.PaymentStatus),
			DeliveryStatus: string(parcelEntity.DeliveryStatus),
			TrackingID:     parcelEntity.TrackingID,
			RiderID:        parcelEntity.RiderID,
			RiderName:      parcelEntity.RiderName,
			RiderEmail:     parcelEntity.RiderEmail,
			CreatedAt:      parcelEntity.CreatedAt,
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
