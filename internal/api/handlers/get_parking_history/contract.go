package get_parking_history

import (
	"context"

	"github.com/parqr/parqr-backend/internal/service/parking/models"
)

type ParkingService interface {
	History(ctx context.Context, userID int64) (*models.SessionListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
