package user_role_patch

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"service/internal/dto"
	"service/internal/entities"
	"service/internal/pkg/middlewares/auth"
	"service/internal/service/user"
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

	err := h.authorizer.RequireOperation(r.Context(), authenticatedEmail, entities.OpManageRoles)
	if err != nil {
		h.writeForbidden(w)
		return
	}

	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var roleUpdateDTO dto.RoleUpdateRequest
	err = json.NewDecoder(r.Body).Decode(&roleUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	userEntity, err := h.service.SetRole(r.Context(), id, entities.RoleType(roleUpdateDTO.Role))
	if err != nil {
		switch {
		case errors.Is(err, user.ErrInvalidUserID),
			errors.Is(err, user.ErrInvalidRole):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, user.ErrUserNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.User{
		ID:          userEntity.ID,
		Email:       userEntity.Email,
		DisplayName: userEntity.DisplayName,
		Role:        string(userEntity.Role),
		CreatedAt:   userEntity.CreatedAt,
		LastLoginAt: userEntity.LastLoginAt,
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

func (h *Handler) writeForbidden(w http.ResponseWriter) {
	response := dto.Error{
		Message: "forbidden access",
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusForbidden)
	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
