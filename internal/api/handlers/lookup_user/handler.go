package lookup_user

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/parqr/parqr-backend/internal/api/handlers"
	"github.com/parqr/parqr-backend/internal/service/users"
)

const (
	msgInvalidCode  = "некорректный код пользователя"
	msgUserNotFound = "пользователь не найден"
)

type Handler struct {
	service UserService
	logger  Logger
}

func NewHandler(service UserService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v01/public/{code}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	code := vars["code"]

	profile, err := h.service.Lookup(r.Context(), code)
	if err != nil {
		switch {
		case errors.Is(err, users.ErrInvalidInput):
			h.logger.Warn("GET /public/{code} - Invalid code: %v", err)
			handlers.RespondBadRequest(w, msgInvalidCode)

		case errors.Is(err, users.ErrUserNotFound):
			h.logger.Warn("GET /public/{code} - User not found: code=%s", code)
			handlers.RespondNotFound(w, msgUserNotFound)

		default:
			h.logger.Error("GET /public/{code} - Failed to lookup user: code=%s, error=%v", code, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /public/{code} - Public profile retrieved: code=%s", code)
	handlers.RespondJSON(w, http.StatusOK, profile)
}
