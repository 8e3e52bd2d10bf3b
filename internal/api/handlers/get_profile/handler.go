package get_profile

import (
	"errors"
	"net/http"

	"github.com/parqr/parqr-backend/internal/api/handlers"
	"github.com/parqr/parqr-backend/internal/api/middleware"
	"github.com/parqr/parqr-backend/internal/service/users"
)

const (
	msgMissingUserID = "отсутствует ID пользователя"
	msgUserNotFound  = "пользователь не найден"
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

// Handle GET /api/v01/users/profile
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /users/profile - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	profile, err := h.service.GetProfile(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, users.ErrUserNotFound):
			h.logger.Warn("GET /users/profile - User not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgUserNotFound)

		default:
			h.logger.Error("GET /users/profile - Failed to get profile: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /users/profile - Profile retrieved successfully: user_id=%d", userID)
	handlers.RespondJSON(w, http.StatusOK, profile)
}
