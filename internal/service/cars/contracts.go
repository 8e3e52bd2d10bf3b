package cars

import (
	"context"

	"github.com/parqr/parqr-backend/internal/domain"
)

// CarRepository интерфейс репозитория автомобилей
type CarRepository interface {
	Create(ctx context.Context, car *domain.Car) (*domain.Car, error)
	GetByID(ctx context.Context, id int64) (*domain.Car, error)
	ListByOwnerID(ctx context.Context, ownerID int64) ([]*domain.Car, error)
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
