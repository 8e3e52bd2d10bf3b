package start_parking

import (
	"errors"
	"net/http"

	"github.com/parqr/parqr-backend/internal/api/handlers"
	"github.com/parqr/parqr-backend/internal/api/middleware"
	startParking "github.com/parqr/parqr-backend/internal/usecase/start_parking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidInput       = "некорректные данные сессии"
	msgCarNotFound        = "автомобиль не найден"
)

type Handler struct {
	useCase StartParkingUseCase
	logger  Logger
}

func NewHandler(useCase StartParkingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v01/parking/start
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /parking/start - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req StartParkingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /parking/start - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, startParking.ErrInvalidInput):
			h.logger.Warn("POST /parking/start - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, startParking.ErrCarNotFound):
			h.logger.Warn("POST /parking/start - Car not found: car_id=%d, user_id=%d", req.CarID, userID)
			handlers.RespondNotFound(w, msgCarNotFound)

		default:
			h.logger.Error("POST /parking/start - Failed to start session: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /parking/start - Session started successfully: session_id=%d, user_id=%d, car_id=%d",
		result.ID, userID, req.CarID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
