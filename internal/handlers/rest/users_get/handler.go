package users_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"service/internal/dto"
	"service/internal/service/user"
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
	query := r.URL.Query().Get("search")

	usersList, err := h.service.SearchUsers(r.Context(), query)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrMissingRequiredFields):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := make([]dto.User, 0, len(usersList))
	for _, userEntity := range usersList {
		response = append(response, dto.User{
			ID:          userEntity.ID,
			Email:       userEntity.Email,
			DisplayName: userEntity.DisplayName,
			Role:        string(userEntity.Role),
			CreatedAt:   userEntity.CreatedAt,
			LastLoginAt: userEntity.LastLoginAt,
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
