package parking

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена или принадлежит
	// другому пользователю
	ErrSessionNotFound = errors.New("parking.service: parking session not found")

	// ErrSessionAlreadyEnded возвращается при попытке завершить закрытую сессию
	ErrSessionAlreadyEnded = errors.New("parking.service: parking session already ended")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("parking.service: internal error")
)
