package get_profile

import (
	"context"

	"github.com/parqr/parqr-backend/internal/service/users/models"
)

type UserService interface {
	GetProfile(ctx context.Context, userID int64) (*models.ProfileResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
