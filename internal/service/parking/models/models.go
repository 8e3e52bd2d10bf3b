package models

import (
	"time"

	"github.com/parqr/parqr-backend/internal/domain"
)

// SessionResponse модель парковочной сессии для внешних слоев
type SessionResponse struct {
	ID            int64      `json:"id"`
	UserID        int64      `json:"userId"`
	CarID         int64      `json:"carId"`
	StartTime     time.Time  `json:"startTime"`
	EndTime       *time.Time `json:"endTime,omitempty"`
	NoteLocation  *string    `json:"noteLocation,omitempty"`
	PublicMessage *string    `json:"publicMessage,omitempty"`
	Latitude      *float64   `json:"latitude,omitempty"`
	Longitude     *float64   `json:"longitude,omitempty"`
	IsActive      bool       `json:"isActive"`
}

// SessionListResponse список сессий
type SessionListResponse struct {
	Sessions []*SessionResponse `json:"sessions"`
	Total    int                `json:"total"`
}

// FromDomainSession конвертирует доменную сессию в response-модель
func FromDomainSession(s *domain.ParkingSession) *SessionResponse {
	return &SessionResponse{
		ID:            s.ID,
		UserID:        s.UserID,
		CarID:         s.CarID,
		StartTime:     s.StartTime,
		EndTime:       s.EndTime,
		NoteLocation:  s.NoteLocation,
		PublicMessage: s.PublicMessage,
		Latitude:      s.Latitude,
		Longitude:     s.Longitude,
		IsActive:      s.IsActive(),
	}
}

// FromDomainSessionList конвертирует список доменных сессий
func FromDomainSessionList(sessions []*domain.ParkingSession) *SessionListResponse {
	out := make([]*SessionResponse, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, FromDomainSession(s))
	}
	return &SessionListResponse{Sessions: out, Total: len(out)}
}
