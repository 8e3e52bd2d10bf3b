package start_parking

import (
	"time"

	startParking "github.com/parqr/parqr-backend/internal/usecase/start_parking"
)

// StartParkingRequest HTTP request model
type StartParkingRequest struct {
	CarID         int64    `json:"carId"`
	NoteLocation  *string  `json:"noteLocation,omitempty"`
	PublicMessage *string  `json:"publicMessage,omitempty"`
	Latitude      *float64 `json:"latitude,omitempty"`
	Longitude     *float64 `json:"longitude,omitempty"`
}

// SessionResponse HTTP response model
type SessionResponse struct {
	ID            int64    `json:"id"`
	UserID        int64    `json:"userId"`
	CarID         int64    `json:"carId"`
	StartTime     string   `json:"startTime"`
	NoteLocation  *string  `json:"noteLocation,omitempty"`
	PublicMessage *string  `json:"publicMessage,omitempty"`
	Latitude      *float64 `json:"latitude,omitempty"`
	Longitude     *float64 `json:"longitude,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *StartParkingRequest) ToUseCaseRequest(userID int64) *startParking.Request {
	return &startParking.Request{
		UserID:        userID,
		CarID:         r.CarID,
		NoteLocation:  r.NoteLocation,
		PublicMessage: r.PublicMessage,
		Latitude:      r.Latitude,
		Longitude:     r.Longitude,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *startParking.Response) *SessionResponse {
	return &SessionResponse{
		ID:            resp.ID,
		UserID:        resp.UserID,
		CarID:         resp.CarID,
		StartTime:     resp.StartTime.Format(time.RFC3339),
		NoteLocation:  resp.NoteLocation,
		PublicMessage: resp.PublicMessage,
		Latitude:      resp.Latitude,
		Longitude:     resp.Longitude,
	}
}
