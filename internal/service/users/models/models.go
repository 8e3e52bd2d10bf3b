package models

import (
	"time"

	"github.com/parqr/parqr-backend/internal/domain"
)

// ProfileResponse полный профиль для владельца аккаунта
type ProfileResponse struct {
	ID               int64     `json:"id"`
	PhoneNumber      string    `json:"phoneNumber"`
	UserCode         string    `json:"userCode"`
	QRCodeID         string    `json:"qrCodeId"`
	SignupCountryISO string    `json:"signupCountryIso"`
	DisplayName      *string   `json:"displayName,omitempty"`
	Bio              *string   `json:"bio,omitempty"`
	DeepLink         *string   `json:"deepLink,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
}

// PublicCar автомобиль в публичном профиле
type PublicCar struct {
	LicensePlate string `json:"licensePlate"`
	Brand        string `json:"brand"`
	Model        string `json:"model"`
}

// PublicProfileResponse публичный профиль по QR-коду или коду пользователя.
// Номер телефона отдается маскированным, приватные поля не отдаются вовсе.
type PublicProfileResponse struct {
	UserCode          string       `json:"userCode"`
	DisplayName       string       `json:"displayName"`
	Bio               *string      `json:"bio,omitempty"`
	DeepLink          *string      `json:"deepLink,omitempty"`
	MaskedPhoneNumber string       `json:"maskedPhoneNumber"`
	Cars              []*PublicCar `json:"cars"`
	IsParked          bool         `json:"isParked"`
}

// UpdateProfileRequest запрос на обновление публичных полей профиля
type UpdateProfileRequest struct {
	UserID      int64   `json:"-"`
	DisplayName *string `json:"displayName,omitempty"`
	Bio         *string `json:"bio,omitempty"`
	DeepLink    *string `json:"deepLink,omitempty"`
}

// FromDomainUser конвертирует доменного пользователя в полный профиль
func FromDomainUser(u *domain.User) *ProfileResponse {
	return &ProfileResponse{
		ID:               u.ID,
		PhoneNumber:      u.PhoneNumber,
		UserCode:         u.UserCode,
		QRCodeID:         u.QRCodeID,
		SignupCountryISO: u.SignupCountryISO,
		DisplayName:      u.ProfileDisplayName,
		Bio:              u.ProfileBio,
		DeepLink:         u.ProfileDeepLink,
		CreatedAt:        u.CreatedAt,
	}
}

// ToPublicProfile собирает публичный профиль из доменных сущностей
func ToPublicProfile(u *domain.User, cars []*domain.Car, isParked bool) *PublicProfileResponse {
	publicCars := make([]*PublicCar, 0, len(cars))
	for _, c := range cars {
		publicCars = append(publicCars, &PublicCar{
			LicensePlate: c.LicensePlate,
			Brand:        c.Brand,
			Model:        c.Model,
		})
	}
	return &PublicProfileResponse{
		UserCode:          u.UserCode,
		DisplayName:       u.DisplayNameOrCode(),
		Bio:               u.ProfileBio,
		DeepLink:          u.ProfileDeepLink,
		MaskedPhoneNumber: u.MaskedPhoneNumber(),
		Cars:              publicCars,
		IsParked:          isParked,
	}
}
