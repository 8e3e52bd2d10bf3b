package models

import (
	"time"

	"github.com/parqr/parqr-backend/internal/domain"
)

// RegisterCarRequest запрос на регистрацию автомобиля
type RegisterCarRequest struct {
	OwnerID      int64  `json:"ownerId"`
	LicensePlate string `json:"licensePlate"`
	Brand        string `json:"brand"`
	Model        string `json:"model"`
}

// CarResponse модель автомобиля для внешних слоев
type CarResponse struct {
	ID           int64     `json:"id"`
	OwnerID      int64     `json:"ownerId"`
	LicensePlate string    `json:"licensePlate"`
	Brand        string    `json:"brand"`
	Model        string    `json:"model"`
	CreatedAt    time.Time `json:"createdAt"`
}

// CarListResponse список автомобилей
type CarListResponse struct {
	Cars  []*CarResponse `json:"cars"`
	Total int            `json:"total"`
}

// FromDomainCar конвертирует доменный автомобиль в response-модель
func FromDomainCar(c *domain.Car) *CarResponse {
	return &CarResponse{
		ID:           c.ID,
		OwnerID:      c.OwnerID,
		LicensePlate: c.LicensePlate,
		Brand:        c.Brand,
		Model:        c.Model,
		CreatedAt:    c.CreatedAt,
	}
}

// FromDomainCarList конвертирует список доменных автомобилей
func FromDomainCarList(cars []*domain.Car) *CarListResponse {
	out := make([]*CarResponse, 0, len(cars))
	for _, c := range cars {
		out = append(out, FromDomainCar(c))
	}
	return &CarListResponse{Cars: out, Total: len(out)}
}
