package start_parking

import (
	"context"
	"time"

	"github.com/parqr/parqr-backend/internal/domain"
)

// CarRepository интерфейс репозитория автомобилей
type CarRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Car, error)
}

// SessionRepository интерфейс репозитория парковочных сессий
type SessionRepository interface {
	Create(ctx context.Context, s *domain.ParkingSession) (*domain.ParkingSession, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время в UTC
func (p *RealTimeProvider) Now() time.Time {
	return time.Now().UTC()
}
