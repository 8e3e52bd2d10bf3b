package session

import "errors"

var (
	// ErrSessionNotFound возвращается, когда парковочная сессия не найдена
	ErrSessionNotFound = errors.New("session.repository: parking session not found")

	// ErrSessionAlreadyEnded возвращается при попытке закрыть уже закрытую сессию
	ErrSessionAlreadyEnded = errors.New("session.repository: parking session already ended")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("session.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("session.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("session.repository: failed to scan row")
)
