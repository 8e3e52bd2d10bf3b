package start_parking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parqr/parqr-backend/internal/domain"
	carRepo "github.com/parqr/parqr-backend/internal/infra/storage/car"
	"github.com/parqr/parqr-backend/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeCarRepo struct {
	cars map[int64]*domain.Car
}

func (r *fakeCarRepo) GetByID(_ context.Context, id int64) (*domain.Car, error) {
	car, ok := r.cars[id]
	if !ok {
		return nil, carRepo.ErrCarNotFound
	}
	return car, nil
}

type fakeSessionRepo struct {
	sessions []*domain.ParkingSession
	nextID   int64
}

func (r *fakeSessionRepo) Create(_ context.Context, s *domain.ParkingSession) (*domain.ParkingSession, error) {
	r.nextID++
	created := *s
	created.ID = r.nextID
	r.sessions = append(r.sessions, &created)
	return &created, nil
}

type passthroughTxManager struct{}

func (passthroughTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

func newTestUseCase(cars map[int64]*domain.Car) (*UseCase, *fakeSessionRepo, time.Time) {
	sessionRepo := &fakeSessionRepo{}
	uc := NewUseCase(&fakeCarRepo{cars: cars}, sessionRepo, passthroughTxManager{}, nopLogger{})

	now := time.Date(2026, 8, 23, 10, 30, 0, 0, time.UTC)
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc, sessionRepo, now
}

func TestExecute_StartsSessionForOwnCar(t *testing.T) {
	uc, sessionRepo, now := newTestUseCase(map[int64]*domain.Car{
		7: {ID: 7, OwnerID: 42, LicensePlate: "123가4567"},
	})

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:       42,
		CarID:        7,
		NoteLocation: ptr.Ptr("Level B3"),
		Latitude:     ptr.Ptr(37.55),
		Longitude:    ptr.Ptr(127.0),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.UserID)
	assert.Equal(t, int64(7), resp.CarID)
	assert.Equal(t, now, resp.StartTime)
	require.NotNil(t, resp.NoteLocation)
	assert.Equal(t, "Level B3", *resp.NoteLocation)

	require.Len(t, sessionRepo.sessions, 1)
	assert.True(t, sessionRepo.sessions[0].IsActive())
}

func TestExecute_UnknownCarRejected(t *testing.T) {
	uc, sessionRepo, _ := newTestUseCase(map[int64]*domain.Car{})

	_, err := uc.Execute(context.Background(), &Request{UserID: 42, CarID: 7})
	require.ErrorIs(t, err, ErrCarNotFound)
	assert.Empty(t, sessionRepo.sessions)
}

func TestExecute_ForeignCarLooksLikeMissing(t *testing.T) {
	uc, sessionRepo, _ := newTestUseCase(map[int64]*domain.Car{
		7: {ID: 7, OwnerID: 99, LicensePlate: "123가4567"},
	})

	_, err := uc.Execute(context.Background(), &Request{UserID: 42, CarID: 7})
	require.ErrorIs(t, err, ErrCarNotFound)
	assert.Empty(t, sessionRepo.sessions)
}

func TestExecute_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		req  *Request
	}{
		{"zero user", &Request{UserID: 0, CarID: 7}},
		{"zero car", &Request{UserID: 42, CarID: 0}},
		{"latitude out of range", &Request{UserID: 42, CarID: 7, Latitude: ptr.Ptr(91.0)}},
		{"longitude out of range", &Request{UserID: 42, CarID: 7, Longitude: ptr.Ptr(-181.0)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, sessionRepo, _ := newTestUseCase(map[int64]*domain.Car{
				7: {ID: 7, OwnerID: 42},
			})

			_, err := uc.Execute(context.Background(), tt.req)
			require.ErrorIs(t, err, ErrInvalidInput)
			assert.Empty(t, sessionRepo.sessions)
		})
	}
}
