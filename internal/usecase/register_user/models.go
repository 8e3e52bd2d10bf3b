package register_user

import "time"

// Request модель запроса на регистрацию пользователя
type Request struct {
	PhoneNumber      string  // локальный формат, для KR: 010XXXXXXXX
	SignupCountryISO string  // ISO-код страны регистрации, например "KR"
	DisplayName      *string // опциональное публичное имя
}

// Response модель ответа с созданным пользователем
type Response struct {
	ID               int64
	PhoneNumber      string // международный формат после нормализации
	UserCode         string
	QRCodeID         string
	SignupCountryISO string
	DisplayName      *string
	CreatedAt        time.Time
}
