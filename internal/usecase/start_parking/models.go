package start_parking

import "time"

// Request модель запроса на начало парковочной сессии
type Request struct {
	UserID        int64
	CarID         int64
	NoteLocation  *string
	PublicMessage *string
	Latitude      *float64
	Longitude     *float64
}

// Response модель ответа с созданной сессией
type Response struct {
	ID            int64
	UserID        int64
	CarID         int64
	StartTime     time.Time
	NoteLocation  *string
	PublicMessage *string
	Latitude      *float64
	Longitude     *float64
}
