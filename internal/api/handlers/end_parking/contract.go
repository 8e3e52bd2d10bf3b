package end_parking

import (
	"context"

	"github.com/parqr/parqr-backend/internal/service/parking/models"
)

type ParkingService interface {
	End(ctx context.Context, sessionID, userID int64) (*models.SessionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
