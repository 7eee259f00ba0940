package riders_get

import (
	"encoding/json"
	"net/http"

	"service/internal/dto"
	"service/internal/entities"
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

	var filter entities.RiderFilter
	if status := query.Get("status"); status != "" {
		filter.ApplicationStatus = &status
	}
	if district := query.Get("district"); district != "" {
		filter.District = &district
	}
	if workStatus := query.Get("workStatus"); workStatus != "" {
		filter.WorkStatus = &workStatus
	}

	ridersList, err := h.service.GetRiders(r.Context(), filter)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := make([]dto.Rider, 0, len(ridersList))
	for _, riderEntity := range ridersList {
		response = append(response, dto.Rider{
			ID:                riderEntity.ID,
			Name:              riderEntity.Name,
			Email:             riderEntity.Email,
			District:          riderEntity.District,
			ApplicationStatus: string(riderEntity.ApplicationStatus),
			WorkStatus:        string(riderEntity.WorkStatus),
			CreatedAt:         riderEntity.CreatedAt,
			UpdatedAt:         riderEntity.UpdatedAt,
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
