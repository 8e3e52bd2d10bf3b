package get_active_sessions

import (
	"context"

	"github.com/parqr/parqr-backend/internal/service/parking/models"
)

type ParkingService interface {
	Active(ctx context.Context, userID int64) (*models.SessionListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
