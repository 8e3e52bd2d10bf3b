package parking

import (
	"context"
	"time"

	"github.com/parqr/parqr-backend/internal/domain"
)

// SessionRepository интерфейс репозитория парковочных сессий
type SessionRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.ParkingSession, error)
	ListByUserID(ctx context.Context, userID int64, activeOnly bool) ([]*domain.ParkingSession, error)
	Close(ctx context.Context, id int64, endTime time.Time) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
