package end_parking

import (
	"errors"
	"net/http"

	"github.com/parqr/parqr-backend/internal/api/handlers"
	"github.com/parqr/parqr-backend/internal/api/middleware"
	"github.com/parqr/parqr-backend/internal/service/parking"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgMissingUserID       = "отсутствует ID пользователя"
	msgInvalidSessionID    = "некорректный ID сессии"
	msgSessionNotFound     = "парковочная сессия не найдена"
	msgSessionAlreadyEnded = "парковочная сессия уже завершена"
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

// Handle POST /api/v01/parking/end
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /parking/end - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req EndParkingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /parking/end - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.SessionID <= 0 {
		h.logger.Warn("POST /parking/end - Invalid session ID: session_id=%d", req.SessionID)
		handlers.RespondBadRequest(w, msgInvalidSessionID)
		return
	}

	session, err := h.service.End(r.Context(), req.SessionID, userID)
	if err != nil {
		switch {
		case errors.Is(err, parking.ErrSessionNotFound):
			h.logger.Warn("POST /parking/end - Session not found: session_id=%d, user_id=%d", req.SessionID, userID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, parking.ErrSessionAlreadyEnded):
			h.logger.Warn("POST /parking/end - Session already ended: session_id=%d, user_id=%d", req.SessionID, userID)
			handlers.RespondConflict(w, msgSessionAlreadyEnded)

		default:
			h.logger.Error("POST /parking/end - Failed to end session: session_id=%d, error=%v", req.SessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /parking/end - Session ended successfully: session_id=%d, user_id=%d", session.ID, userID)
	handlers.RespondJSON(w, http.StatusOK, session)
}
