package register_user

import (
	"time"

	registerUser "github.com/parqr/parqr-backend/internal/usecase/register_user"
)

// RegisterUserRequest HTTP request model
type RegisterUserRequest struct {
	PhoneNumber      string  `json:"phoneNumber"`      // локальный формат, для KR: 010XXXXXXXX
	SignupCountryISO string  `json:"signupCountryIso"` // например "KR"
	DisplayName      *string `json:"displayName,omitempty"`
}

// UserResponse HTTP response model
type UserResponse struct {
	ID               int64   `json:"id"`
	PhoneNumber      string  `json:"phoneNumber"`
	UserCode         string  `json:"userCode"`
	QRCodeID         string  `json:"qrCodeId"`
	SignupCountryISO string  `json:"signupCountryIso"`
	DisplayName      *string `json:"displayName,omitempty"`
	CreatedAt        string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *RegisterUserRequest) ToUseCaseRequest() *registerUser.Request {
	return &registerUser.Request{
		PhoneNumber:      r.PhoneNumber,
		SignupCountryISO: r.SignupCountryISO,
		DisplayName:      r.DisplayName,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *registerUser.Response) *UserResponse {
	return &UserResponse{
		ID:               resp.ID,
		PhoneNumber:      resp.PhoneNumber,
		UserCode:         resp.UserCode,
		QRCodeID:         resp.QRCodeID,
		SignupCountryISO: resp.SignupCountryISO,
		DisplayName:      resp.DisplayName,
		CreatedAt:        resp.CreatedAt.Format(time.RFC3339),
	}
}
