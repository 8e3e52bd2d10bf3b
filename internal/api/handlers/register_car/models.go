package register_car

import "github.com/parqr/parqr-backend/internal/service/cars/models"

// RegisterCarRequest HTTP request model. Владелец берется из контекста
// аутентификации, а не из тела запроса.
type RegisterCarRequest struct {
	LicensePlate string `json:"licensePlate"`
	Brand        string `json:"brand"`
	Model        string `json:"model"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *RegisterCarRequest) ToServiceRequest(ownerID int64) *models.RegisterCarRequest {
	return &models.RegisterCarRequest{
		OwnerID:      ownerID,
		LicensePlate: r.LicensePlate,
		Brand:        r.Brand,
		Model:        r.Model,
	}
}
