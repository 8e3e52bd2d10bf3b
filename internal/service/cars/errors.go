package cars

import "errors"

var (
	// ErrCarNotFound возвращается, когда автомобиль не найден или принадлежит
	// другому пользователю
	ErrCarNotFound = errors.New("cars.service: car not found")

	// ErrInvalidLicensePlate возвращается при некорректном формате госномера
	ErrInvalidLicensePlate = errors.New("cars.service: invalid license plate format")

	// ErrDuplicateLicensePlate возвращается, когда госномер уже зарегистрирован
	ErrDuplicateLicensePlate = errors.New("cars.service: license plate already registered")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("cars.service: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("cars.service: internal error")
)
