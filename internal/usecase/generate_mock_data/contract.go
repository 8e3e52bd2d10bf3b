package generate_mock_data

import (
	"context"
	"time"

	"github.com/parqr/parqr-backend/internal/domain"
)

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	ExistsByPhoneNumber(ctx context.Context, phone string) (bool, error)
	ExistsByUserCode(ctx context.Context, userCode string) (bool, error)
	ExistsByQRCodeID(ctx context.Context, qrCodeID string) (bool, error)
	Count(ctx context.Context) (int64, error)
}

// CarRepository интерфейс репозитория автомобилей
type CarRepository interface {
	Create(ctx context.Context, car *domain.Car) (*domain.Car, error)
	ExistsByLicensePlate(ctx context.Context, plate string) (bool, error)
	Count(ctx context.Context) (int64, error)
}

// SessionRepository интерфейс репозитория парковочных сессий
type SessionRepository interface {
	Create(ctx context.Context, s *domain.ParkingSession) (*domain.ParkingSession, error)
	Count(ctx context.Context) (int64, error)
	CountActive(ctx context.Context) (int64, error)
}

// TransactionManager интерфейс для управления транзакциями.
// Вся генерация выполняется внутри одной транзакции: любая ошибка
// персистентности откатывает весь батч целиком.
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Confirmer интерфейс интерактивного подтверждения.
// Вызывается перед записью, если хотя бы одна таблица непуста.
type Confirmer interface {
	Confirm(prompt string) (bool, error)
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
