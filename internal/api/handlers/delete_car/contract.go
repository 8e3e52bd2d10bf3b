package delete_car

import "context"

type CarService interface {
	Delete(ctx context.Context, carID, userID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
