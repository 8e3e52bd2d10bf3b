package get_active_sessions

import (
	"net/http"

	"github.com/parqr/parqr-backend/internal/api/handlers"
	"github.com/parqr/parqr-backend/internal/api/middleware"
)

const (
	msgMissingUserID = "отсутствует ID пользователя"
)

type Handler struct {
	service ParkingService
	logger  Logger
}

func NewHandler(service ParkingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v01/parking/active
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /parking/active - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.service.Active(r.Context(), userID)
	if err != nil {
		h.logger.Error("GET /parking/active - Failed to list active sessions: user_id=%d, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /parking/active - Active sessions listed: user_id=%d, total=%d", userID, result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
