package list_cars

import (
	"context"

	"github.com/parqr/parqr-backend/internal/service/cars/models"
)

type CarService interface {
	List(ctx context.Context, ownerID int64) (*models.CarListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
