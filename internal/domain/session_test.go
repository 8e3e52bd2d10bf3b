package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/parqr/parqr-backend/pkg/ptr"
)

func TestParkingSessionIsActive(t *testing.T) {
	start := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)

	active := &ParkingSession{StartTime: start}
	assert.True(t, active.IsActive())

	closed := &ParkingSession{StartTime: start, EndTime: ptr.Ptr(start.Add(2 * time.Hour))}
	assert.False(t, closed.IsActive())
}

func TestParkingSessionDuration(t *testing.T) {
	start := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)

	active := &ParkingSession{StartTime: start}
	d, ok := active.Duration()
	assert.False(t, ok)
	assert.Zero(t, d)

	closed := &ParkingSession{StartTime: start, EndTime: ptr.Ptr(start.Add(90 * time.Minute))}
	d, ok = closed.Duration()
	assert.True(t, ok)
	assert.Equal(t, 90*time.Minute, d)
}

func TestParkingSessionValidate(t *testing.T) {
	start := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		session *ParkingSession
		wantErr bool
	}{
		{"active session", &ParkingSession{StartTime: start}, false},
		{"end after start", &ParkingSession{StartTime: start, EndTime: ptr.Ptr(start.Add(time.Hour))}, false},
		{"end equals start", &ParkingSession{StartTime: start, EndTime: ptr.Ptr(start)}, true},
		{"end before start", &ParkingSession{StartTime: start, EndTime: ptr.Ptr(start.Add(-time.Hour))}, true},
		{"zero start time", &ParkingSession{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.session.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidSessionTime)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUserMaskedPhoneNumber(t *testing.T) {
	u := &User{PhoneNumber: "+821012345678"}
	assert.Equal(t, "+8210****78", u.MaskedPhoneNumber())

	short := &User{PhoneNumber: "123"}
	assert.Equal(t, "***", short.MaskedPhoneNumber())
}

func TestUserDisplayNameOrCode(t *testing.T) {
	withName := &User{UserCode: "ABCD1234", ProfileDisplayName: ptr.Ptr("Jay")}
	assert.Equal(t, "Jay", withName.DisplayNameOrCode())

	emptyName := &User{UserCode: "ABCD1234", ProfileDisplayName: ptr.Ptr("")}
	assert.Equal(t, "ABCD1234", emptyName.DisplayNameOrCode())

	noName := &User{UserCode: "ABCD1234"}
	assert.Equal(t, "ABCD1234", noName.DisplayNameOrCode())
}
