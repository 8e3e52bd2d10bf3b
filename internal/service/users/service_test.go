package users

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parqr/parqr-backend/internal/domain"
	userRepo "github.com/parqr/parqr-backend/internal/infra/storage/user"
	"github.com/parqr/parqr-backend/internal/service/users/models"
	"github.com/parqr/parqr-backend/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUserRepo struct {
	users map[int64]*domain.User
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

func (r *fakeUserRepo) GetByUserCode(_ context.Context, userCode string) (*domain.User, error) {
	for _, u := range r.users {
		if u.UserCode == userCode {
			copied := *u
			return &copied, nil
		}
	}
	return nil, userRepo.ErrUserNotFound
}

func (r *fakeUserRepo) GetByQRCodeID(_ context.Context, qrCodeID string) (*domain.User, error) {
	for _, u := range r.users {
		if u.QRCodeID == qrCodeID {
			copied := *u
			return &copied, nil
		}
	}
	return nil, userRepo.ErrUserNotFound
}

func (r *fakeUserRepo) UpdateProfile(_ context.Context, id int64, displayName, bio, deepLink *string) error {
	u, ok := r.users[id]
	if !ok {
		return userRepo.ErrUserNotFound
	}
	u.ProfileDisplayName = displayName
	u.ProfileBio = bio
	u.ProfileDeepLink = deepLink
	return nil
}

type fakeCarRepo struct {
	cars []*domain.Car
}

func (r *fakeCarRepo) ListByOwnerID(_ context.Context, ownerID int64) ([]*domain.Car, error) {
	var out []*domain.Car
	for _, c := range r.cars {
		if c.OwnerID == ownerID {
			out = append(out, c)
		}
	}
	return out, nil
}

type fakeSessionRepo struct {
	sessions []*domain.ParkingSession
}

func (r *fakeSessionRepo) ListByUserID(_ context.Context, userID int64, activeOnly bool) ([]*domain.ParkingSession, error) {
	var out []*domain.ParkingSession
	for _, s := range r.sessions {
		if s.UserID != userID {
			continue
		}
		if activeOnly && !s.IsActive() {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func testUser() *domain.User {
	return &domain.User{
		ID:               42,
		SignupCountryISO: "KR",
		PhoneNumber:      "+821012345678",
		UserCode:         "ABCD1234",
		QRCodeID:         "QR_DEADBEEF",
		ProfileBio:       ptr.Ptr("hello"),
		CreatedAt:        time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
	}
}

func newTestService(user *domain.User, cars []*domain.Car, sessions []*domain.ParkingSession) *Service {
	users := map[int64]*domain.User{}
	if user != nil {
		users[user.ID] = user
	}
	return NewService(
		&fakeUserRepo{users: users},
		&fakeCarRepo{cars: cars},
		&fakeSessionRepo{sessions: sessions},
		nopLogger{},
	)
}

func TestGetProfile(t *testing.T) {
	svc := newTestService(testUser(), nil, nil)

	profile, err := svc.GetProfile(context.Background(), 42)
	require.NoError(t, err)

	assert.Equal(t, int64(42), profile.ID)
	assert.Equal(t, "+821012345678", profile.PhoneNumber)
	assert.Equal(t, "ABCD1234", profile.UserCode)
	assert.Equal(t, "QR_DEADBEEF", profile.QRCodeID)
}

func TestGetProfile_UnknownUser(t *testing.T) {
	svc := newTestService(nil, nil, nil)

	_, err := svc.GetProfile(context.Background(), 42)
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestLookup_ByQRCodeID(t *testing.T) {
	cars := []*domain.Car{
		{ID: 7, OwnerID: 42, LicensePlate: "123가4567", Brand: "Hyundai", Model: "Sonata"},
	}
	sessions := []*domain.ParkingSession{
		{ID: 1, UserID: 42, CarID: 7, StartTime: time.Now().UTC()},
	}
	svc := newTestService(testUser(), cars, sessions)

	profile, err := svc.Lookup(context.Background(), "QR_DEADBEEF")
	require.NoError(t, err)

	assert.Equal(t, "ABCD1234", profile.UserCode)
	// Имя не задано — наружу уходит код пользователя
	assert.Equal(t, "ABCD1234", profile.DisplayName)
	assert.Equal(t, "+8210****78", profile.MaskedPhoneNumber)
	assert.True(t, profile.IsParked)
	require.Len(t, profile.Cars, 1)
	assert.Equal(t, "123가4567", profile.Cars[0].LicensePlate)
}

func TestLookup_ByUserCode(t *testing.T) {
	svc := newTestService(testUser(), nil, nil)

	profile, err := svc.Lookup(context.Background(), "ABCD1234")
	require.NoError(t, err)

	assert.Equal(t, "ABCD1234", profile.UserCode)
	assert.False(t, profile.IsParked)
	assert.Empty(t, profile.Cars)
}

func TestLookup_NotParkedWhenAllSessionsEnded(t *testing.T) {
	start := time.Date(2026, 8, 23, 10, 0, 0, 0, time.UTC)
	sessions := []*domain.ParkingSession{
		{ID: 1, UserID: 42, CarID: 7, StartTime: start, EndTime: ptr.Ptr(start.Add(time.Hour))},
	}
	svc := newTestService(testUser(), nil, sessions)

	profile, err := svc.Lookup(context.Background(), "ABCD1234")
	require.NoError(t, err)
	assert.False(t, profile.IsParked)
}

func TestLookup_UnknownCode(t *testing.T) {
	svc := newTestService(testUser(), nil, nil)

	_, err := svc.Lookup(context.Background(), "ZZZZ9999")
	require.ErrorIs(t, err, ErrUserNotFound)

	_, err = svc.Lookup(context.Background(), "QR_00000000")
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestLookup_EmptyCode(t *testing.T) {
	svc := newTestService(testUser(), nil, nil)

	_, err := svc.Lookup(context.Background(), "  ")
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateProfile(t *testing.T) {
	svc := newTestService(testUser(), nil, nil)

	profile, err := svc.UpdateProfile(context.Background(), &models.UpdateProfileRequest{
		UserID:      42,
		DisplayName: ptr.Ptr("Jay"),
		Bio:         ptr.Ptr("new bio"),
	})
	require.NoError(t, err)

	require.NotNil(t, profile.DisplayName)
	assert.Equal(t, "Jay", *profile.DisplayName)
	require.NotNil(t, profile.Bio)
	assert.Equal(t, "new bio", *profile.Bio)
	assert.Nil(t, profile.DeepLink)
}

func TestUpdateProfile_UnknownUser(t *testing.T) {
	svc := newTestService(nil, nil, nil)

	_, err := svc.UpdateProfile(context.Background(), &models.UpdateProfileRequest{UserID: 42})
	require.ErrorIs(t, err, ErrUserNotFound)
}
