package register_user

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("register_user: invalid input data")

	// ErrCountryNotServiced возвращается для страны вне списка обслуживаемых
	ErrCountryNotServiced = errors.New("register_user: country not serviced")

	// ErrInvalidPhoneNumber возвращается при некорректном формате номера телефона
	ErrInvalidPhoneNumber = errors.New("register_user: invalid phone number format")

	// ErrPhoneAlreadyRegistered возвращается, когда номер телефона уже занят
	ErrPhoneAlreadyRegistered = errors.New("register_user: phone number already registered")

	// ErrIdentifierSpaceExhausted возвращается, когда не удалось подобрать
	// свободный код пользователя или QR-идентификатор
	ErrIdentifierSpaceExhausted = errors.New("register_user: identifier space exhausted")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("register_user: internal error")
)
