package register_car

import (
	"context"

	"github.com/parqr/parqr-backend/internal/service/cars/models"
)

type CarService interface {
	Register(ctx context.Context, req *models.RegisterCarRequest) (*models.CarResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
