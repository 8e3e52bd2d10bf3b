package start_parking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("start_parking: invalid input data")

	// ErrCarNotFound возвращается, когда автомобиль не найден или не принадлежит
	// пользователю. Чужие автомобили не отличаются от несуществующих, чтобы не
	// раскрывать факт их существования.
	ErrCarNotFound = errors.New("start_parking: car not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("start_parking: internal error")
)
