package car

import "errors"

var (
	// ErrCarNotFound возвращается, когда автомобиль не найден
	ErrCarNotFound = errors.New("car.repository: car not found")

	// ErrDuplicateLicensePlate возвращается при нарушении уникальности госномера
	ErrDuplicateLicensePlate = errors.New("car.repository: license plate already registered")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("car.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("car.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("car.repository: failed to scan row")
)
