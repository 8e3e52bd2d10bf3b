package start_parking

import (
	"context"

	startParking "github.com/parqr/parqr-backend/internal/usecase/start_parking"
)

type StartParkingUseCase interface {
	Execute(ctx context.Context, req *startParking.Request) (*startParking.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
