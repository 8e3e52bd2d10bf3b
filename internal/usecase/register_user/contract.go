package register_user

import (
	"context"

	"github.com/parqr/parqr-backend/internal/domain"
)

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	ExistsByPhoneNumber(ctx context.Context, phone string) (bool, error)
	ExistsByUserCode(ctx context.Context, userCode string) (bool, error)
	ExistsByQRCodeID(ctx context.Context, qrCodeID string) (bool, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
