package generate_mock_data

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных параметрах генерации
	ErrInvalidInput = errors.New("generate_mock_data: invalid input data")

	// ErrAborted возвращается, когда пользователь отказался писать поверх непустой базы
	ErrAborted = errors.New("generate_mock_data: aborted by user")

	// ErrNoCarsForSessions возвращается, когда сессии запрошены, но ни у одного пользователя нет автомобиля
	ErrNoCarsForSessions = errors.New("generate_mock_data: no user owns a car, cannot create sessions")

	// ErrIdentifierSpaceExhausted возвращается, когда не удалось сгенерировать
	// уникальный идентификатор за разумное число попыток
	ErrIdentifierSpaceExhausted = errors.New("generate_mock_data: identifier space exhausted")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("generate_mock_data: internal error")
)
