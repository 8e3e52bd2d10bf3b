package delete_car

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/parqr/parqr-backend/internal/api/handlers"
	"github.com/parqr/parqr-backend/internal/api/middleware"
	"github.com/parqr/parqr-backend/internal/service/cars"
)

const (
	msgInvalidCarID  = "некорректный ID автомобиля"
	msgMissingUserID = "отсутствует ID пользователя"
	msgCarNotFound   = "автомобиль не найден"
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

// Handle DELETE /api/v01/cars/{carId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	carIDStr := vars["carId"]

	carID, err := strconv.ParseInt(carIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /cars/{id} - Invalid car ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCarID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /cars/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if err := h.service.Delete(r.Context(), carID, userID); err != nil {
		switch {
		case errors.Is(err, cars.ErrCarNotFound):
			h.logger.Warn("DELETE /cars/{id} - Car not found: car_id=%d, user_id=%d", carID, userID)
			handlers.RespondNotFound(w, msgCarNotFound)

		default:
			h.logger.Error("DELETE /cars/{id} - Failed to delete car: car_id=%d, error=%v", carID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /cars/{id} - Car deleted successfully: car_id=%d, user_id=%d", carID, userID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
