package domain

import "time"

// ParkingSession represents one parking event. A session is opened with a
// start time only and closed by setting the end time; a session with no end
// time is active. The referenced car must belong to the referenced user.
type ParkingSession struct {
	ID     int64
	UserID int64
	CarID  int64

	StartTime time.Time
	EndTime   *time.Time // nil = session still active

	NoteLocation  *string // free-text label, e.g. "Level B3"
	PublicMessage *string

	Latitude  *float64
	Longitude *float64
}

// IsActive returns true if the session has not been closed yet.
func (s *ParkingSession) IsActive() bool {
	return s.EndTime == nil
}

// Duration returns the session length and true for completed sessions,
// zero and false for active ones.
func (s *ParkingSession) Duration() (time.Duration, bool) {
	if s.EndTime == nil {
		return 0, false
	}
	return s.EndTime.Sub(s.StartTime), true
}

// Validate checks the internal consistency of the session: the end time,
// when present, must be strictly after the start time.
func (s *ParkingSession) Validate() error {
	if s.StartTime.IsZero() {
		return ErrInvalidSessionTime
	}
	if s.EndTime != nil && !s.EndTime.After(s.StartTime) {
		return ErrInvalidSessionTime
	}
	return nil
}
