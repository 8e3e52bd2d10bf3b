package user

import "errors"

var (
	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("user.repository: user not found")

	// ErrDuplicatePhoneNumber возвращается при нарушении уникальности номера телефона
	ErrDuplicatePhoneNumber = errors.New("user.repository: phone number already registered")

	// ErrDuplicateUserCode возвращается при нарушении уникальности кода пользователя
	ErrDuplicateUserCode = errors.New("user.repository: user code already taken")

	// ErrDuplicateQRCodeID возвращается при нарушении уникальности QR-идентификатора
	ErrDuplicateQRCodeID = errors.New("user.repository: qr code id already taken")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("user.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("user.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("user.repository: failed to scan row")
)
