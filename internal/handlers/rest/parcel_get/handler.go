package parcel_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

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
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	parcelEntity, err := h.service.GetParcel(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, parcel.ErrInvalidParcelID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, parcel.ErrParcelNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := toDTO(*parcelEntity)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func toDTO(parcelEntity entities.Parcel) dto.Parcel {
	return dto.Parcel{
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
	}
}
