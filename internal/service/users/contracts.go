package users

import (
	"context"

	"github.com/parqr/parqr-backend/internal/domain"
)

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByUserCode(ctx context.Context, userCode string) (*domain.User, error)
	GetByQRCodeID(ctx context.Context, qrCodeID string) (*domain.User, error)
	UpdateProfile(ctx context.Context, id int64, displayName, bio, deepLink *string) error
}

// CarRepository интерфейс репозитория автомобилей
type CarRepository interface {
	ListByOwnerID(ctx context.Context, ownerID int64) ([]*domain.Car, error)
}

// SessionRepository интерфейс репозитория парковочных сессий
type SessionRepository interface {
	ListByUserID(ctx context.Context, userID int64, activeOnly bool) ([]*domain.ParkingSession, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
