package rider_patch

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"service/internal/dto"
	"service/internal/entities"
	"service/internal/pkg/middlewares/auth"
	"service/internal/service/rider"
	"service/pkg/logger"
)

type Handler struct {
	log        handlerLogger
	authorizer Authorizer
	service    Service
}

func New(log handlerLogger, authorizer Authorizer, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:        handlerLog,
		authorizer: authorizer,
		service:    service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	authenticatedEmail, ok := auth.EmailFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	err := h.authorizer.RequireOperation(r.Context(), authenticatedEmail, entities.OpManageRiders)
	if err != nil {
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
		return
	}

	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var statusUpdateDTO dto.RiderStatusUpdateRequest
	err = json.NewDecoder(r.Body).Decode(&statusUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	riderEntity, err := h.service.UpdateApplicationStatus(r.Context(), id, entities.RiderApplicationStatusType(statusUpdateDTO.Status))
	if err != nil {
		switch {
		case errors.Is(err, rider.ErrInvalidRiderID),
			errors.Is(err, rider.ErrInvalidStatus):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, rider.ErrRiderNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.Rider{
		ID:                riderEntity.ID,
		Name:              riderEntity.Name,
		Email:             riderEntity.Email,
		District:          riderEntity.District,
		ApplicationStatus: string(riderEntity.ApplicationStatus),
		WorkStatus:        string(riderEntity.WorkStatus),
		CreatedAt:         riderEntity.CreatedAt,
		UpdatedAt:         riderEntity.UpdatedAt,
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
