package lookup_user

import (
	"context"

	"github.com/parqr/parqr-backend/internal/service/users/models"
)

type UserService interface {
	Lookup(ctx context.Context, code string) (*models.PublicProfileResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
