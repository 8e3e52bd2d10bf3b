package register_car

import (
	"errors"
	"net/http"

	"github.com/parqr/parqr-backend/internal/api/handlers"
	"github.com/parqr/parqr-backend/internal/api/middleware"
	"github.com/parqr/parqr-backend/internal/service/cars"
)

const (
	msgInvalidRequestBody    = "некорректное тело запроса"
	msgMissingUserID         = "отсутствует ID пользователя"
	msgInvalidLicensePlate   = "некорректный формат госномера"
	msgDuplicateLicensePlate = "госномер уже зарегистрирован"
	msgInvalidInput          = "некорректные данные автомобиля"
)

type Handler struct {
	service CarService
	logger  Logger
}

func NewHandler(service CarService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v01/cars
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /cars - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req RegisterCarRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /cars - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	car, err := h.service.Register(r.Context(), req.ToServiceRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, cars.ErrInvalidLicensePlate):
			h.logger.Warn("POST /cars - Invalid license plate: user_id=%d", userID)
			handlers.RespondBadRequest(w, msgInvalidLicensePlate)

		case errors.Is(err, cars.ErrInvalidInput):
			h.logger.Warn("POST /cars - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, cars.ErrDuplicateLicensePlate):
			h.logger.Warn("POST /cars - Duplicate license plate: user_id=%d", userID)
			handlers.RespondConflict(w, msgDuplicateLicensePlate)

		default:
			h.logger.Error("POST /cars - Failed to register car: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /cars - Car registered successfully: car_id=%d, user_id=%d", car.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, car)
}
