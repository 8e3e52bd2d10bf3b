package generate_mock_data

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parqr/parqr-backend/internal/domain"
)

var plateRe = regexp.MustCompile(`^\d{3}[가-힣]\d{4}$`)

// --- Fakes ---

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUserRepo struct {
	users  []*domain.User
	nextID int64
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.nextID++
	created := *user
	created.ID = r.nextID
	created.CreatedAt = time.Now().UTC()
	r.users = append(r.users, &created)
	return &created, nil
}

func (r *fakeUserRepo) ExistsByPhoneNumber(_ context.Context, phone string) (bool, error) {
	for _, u := range r.users {
		if u.PhoneNumber == phone {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) ExistsByUserCode(_ context.Context, userCode string) (bool, error) {
	for _, u := range r.users {
		if u.UserCode == userCode {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) ExistsByQRCodeID(_ context.Context, qrCodeID string) (bool, error) {
	for _, u := range r.users {
		if u.QRCodeID == qrCodeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

type fakeCarRepo struct {
	cars   []*domain.Car
	nextID int64
}

func (r *fakeCarRepo) Create(_ context.Context, car *domain.Car) (*domain.Car, error) {
	r.nextID++
	created := *car
	created.ID = r.nextID
	created.CreatedAt = time.Now().UTC()
	r.cars = append(r.cars, &created)
	return &created, nil
}

func (r *fakeCarRepo) ExistsByLicensePlate(_ context.Context, plate string) (bool, error) {
	for _, c := range r.cars {
		if c.LicensePlate == plate {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeCarRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.cars)), nil
}

type fakeSessionRepo struct {
	sessions []*domain.ParkingSession
	nextID   int64

	// failAfter > 0 — вернуть ошибку на failAfter-й вставке
	failAfter int
}

var errStorageDown = errors.New("storage down")

func (r *fakeSessionRepo) Create(_ context.Context, s *domain.ParkingSession) (*domain.ParkingSession, error) {
	if r.failAfter > 0 && len(r.sessions)+1 >= r.failAfter {
		return nil, errStorageDown
	}
	r.nextID++
	created := *s
	created.ID = r.nextID
	r.sessions = append(r.sessions, &created)
	return &created, nil
}

func (r *fakeSessionRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.sessions)), nil
}

func (r *fakeSessionRepo) CountActive(_ context.Context) (int64, error) {
	var n int64
	for _, s := range r.sessions {
		if s.IsActive() {
			n++
		}
	}
	return n, nil
}

// fakeTxManager повторяет контракт транзакции на in-memory репозиториях:
// при ошибке fn все три стора откатываются к снимку на момент начала.
type fakeTxManager struct {
	userRepo    *fakeUserRepo
	carRepo     *fakeCarRepo
	sessionRepo *fakeSessionRepo
}

func (m *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	usersSnap := append([]*domain.User(nil), m.userRepo.users...)
	carsSnap := append([]*domain.Car(nil), m.carRepo.cars...)
	sessionsSnap := append([]*domain.ParkingSession(nil), m.sessionRepo.sessions...)

	if err := fn(ctx); err != nil {
		m.userRepo.users = usersSnap
		m.carRepo.cars = carsSnap
		m.sessionRepo.sessions = sessionsSnap
		return err
	}
	return nil
}

type fakeConfirmer struct {
	answer bool
	err    error
	calls  int
	prompt string
}

func (c *fakeConfirmer) Confirm(prompt string) (bool, error) {
	c.calls++
	c.prompt = prompt
	return c.answer, c.err
}

type testEnv struct {
	userRepo    *fakeUserRepo
	carRepo     *fakeCarRepo
	sessionRepo *fakeSessionRepo
	confirmer   *fakeConfirmer
	useCase     *UseCase
}

func newTestEnv() *testEnv {
	env := &testEnv{
		userRepo:    &fakeUserRepo{},
		carRepo:     &fakeCarRepo{},
		sessionRepo: &fakeSessionRepo{},
		confirmer:   &fakeConfirmer{},
	}
	txManager := &fakeTxManager{
		userRepo:    env.userRepo,
		carRepo:     env.carRepo,
		sessionRepo: env.sessionRepo,
	}
	env.useCase = NewUseCase(env.userRepo, env.carRepo, env.sessionRepo, txManager, env.confirmer, nopLogger{})
	return env
}

// --- Tests ---

func TestExecute_CreatesRequestedVolumes(t *testing.T) {
	env := newTestEnv()

	summary, err := env.useCase.Execute(context.Background(), &Request{
		Users:          15,
		MinCarsPerUser: 1,
		MaxCarsPerUser: 3,
		Sessions:       75,
	})
	require.NoError(t, err)

	assert.Equal(t, 15, summary.UsersCreated)
	assert.GreaterOrEqual(t, summary.CarsCreated, 15)
	assert.LessOrEqual(t, summary.CarsCreated, 45)
	assert.Equal(t, 75, summary.SessionsCreated)
	assert.Equal(t, summary.SessionsCreated, summary.ActiveCreated+summary.CompletedCreated)

	assert.Equal(t, int64(15), summary.TotalUsers)
	assert.Equal(t, int64(summary.CarsCreated), summary.TotalCars)
	assert.Equal(t, int64(75), summary.TotalSessions)
	assert.Equal(t, int64(summary.ActiveCreated), summary.TotalActive)

	// Подтверждение не запрашивается для пустой базы
	assert.Zero(t, env.confirmer.calls)
}

func TestExecute_GeneratedUsersAreUniqueAndWellFormed(t *testing.T) {
	env := newTestEnv()

	_, err := env.useCase.Execute(context.Background(), &Request{
		Users:          50,
		MinCarsPerUser: 0,
		MaxCarsPerUser: 0,
		Sessions:       0,
	})
	require.NoError(t, err)
	require.Len(t, env.userRepo.users, 50)

	phones := make(map[string]struct{})
	codes := make(map[string]struct{})
	qrs := make(map[string]struct{})

	for _, u := range env.userRepo.users {
		assert.Regexp(t, `^\+8210\d{8}$`, u.PhoneNumber)
		assert.Regexp(t, `^[A-Z0-9]{8}$`, u.UserCode)
		assert.Regexp(t, `^QR_[0-9A-F]{8}$`, u.QRCodeID)
		assert.Equal(t, "KR", u.SignupCountryISO)

		phones[u.PhoneNumber] = struct{}{}
		codes[u.UserCode] = struct{}{}
		qrs[u.QRCodeID] = struct{}{}
	}

	assert.Len(t, phones, 50)
	assert.Len(t, codes, 50)
	assert.Len(t, qrs, 50)
}

func TestExecute_GeneratedCarsHaveValidUniquePlates(t *testing.T) {
	env := newTestEnv()

	_, err := env.useCase.Execute(context.Background(), &Request{
		Users:          20,
		MinCarsPerUser: 2,
		MaxCarsPerUser: 2,
		Sessions:       0,
	})
	require.NoError(t, err)
	require.Len(t, env.carRepo.cars, 40)

	userIDs := make(map[int64]struct{})
	for _, u := range env.userRepo.users {
		userIDs[u.ID] = struct{}{}
	}

	plates := make(map[string]struct{})
	for _, c := range env.carRepo.cars {
		assert.Regexp(t, plateRe, c.LicensePlate)
		assert.True(t, domain.IsValidLicensePlate(c.LicensePlate))
		assert.Contains(t, userIDs, c.OwnerID)
		assert.Contains(t, carCatalog[c.Brand], c.Model)
		plates[c.LicensePlate] = struct{}{}
	}
	assert.Len(t, plates, 40)
}

func TestExecute_SessionsRespectOwnershipAndDurations(t *testing.T) {
	env := newTestEnv()

	before := time.Now().UTC()
	_, err := env.useCase.Execute(context.Background(), &Request{
		Users:          10,
		MinCarsPerUser: 1,
		MaxCarsPerUser: 2,
		Sessions:       60,
	})
	require.NoError(t, err)
	require.Len(t, env.sessionRepo.sessions, 60)

	carOwners := make(map[int64]int64)
	for _, c := range env.carRepo.cars {
		carOwners[c.ID] = c.OwnerID
	}

	for _, s := range env.sessionRepo.sessions {
		// Машина сессии принадлежит её пользователю
		assert.Equal(t, s.UserID, carOwners[s.CarID])

		// Старт в пределах последних 30 суток
		assert.False(t, s.StartTime.After(time.Now().UTC()))
		assert.True(t, s.StartTime.After(before.AddDate(0, 0, -31)))

		if s.EndTime != nil {
			d := s.EndTime.Sub(s.StartTime)
			assert.GreaterOrEqual(t, d, time.Hour)
			assert.LessOrEqual(t, d, 8*time.Hour)
		}

		require.NotNil(t, s.Latitude)
		require.NotNil(t, s.Longitude)
		assert.GreaterOrEqual(t, *s.Latitude, seoulLatMin)
		assert.LessOrEqual(t, *s.Latitude, seoulLatMax)
		assert.GreaterOrEqual(t, *s.Longitude, seoulLngMin)
		assert.LessOrEqual(t, *s.Longitude, seoulLngMax)
	}
}

func TestExecute_CompletedShareIsAboutSeventyPercent(t *testing.T) {
	env := newTestEnv()

	summary, err := env.useCase.Execute(context.Background(), &Request{
		Users:          20,
		MinCarsPerUser: 1,
		MaxCarsPerUser: 1,
		Sessions:       1000,
	})
	require.NoError(t, err)

	share := float64(summary.CompletedCreated) / float64(summary.SessionsCreated)
	assert.InDelta(t, completedProbability, share, 0.1)
}

func TestExecute_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		req  *Request
	}{
		{"zero users", &Request{Users: 0, MinCarsPerUser: 1, MaxCarsPerUser: 3, Sessions: 10}},
		{"negative min cars", &Request{Users: 5, MinCarsPerUser: -1, MaxCarsPerUser: 3, Sessions: 10}},
		{"max less than min", &Request{Users: 5, MinCarsPerUser: 3, MaxCarsPerUser: 1, Sessions: 10}},
		{"negative sessions", &Request{Users: 5, MinCarsPerUser: 1, MaxCarsPerUser: 3, Sessions: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv()

			_, err := env.useCase.Execute(context.Background(), tt.req)
			require.ErrorIs(t, err, ErrInvalidInput)
			assert.Empty(t, env.userRepo.users)
		})
	}
}

func TestExecute_DeclinedConfirmationAborts(t *testing.T) {
	env := newTestEnv()
	_, err := env.userRepo.Create(context.Background(), &domain.User{
		PhoneNumber: "+821012345678",
		UserCode:    "AAAA1111",
		QRCodeID:    "QR_DEADBEEF",
	})
	require.NoError(t, err)
	env.confirmer.answer = false

	_, err = env.useCase.Execute(context.Background(), &Request{
		Users:          5,
		MinCarsPerUser: 1,
		MaxCarsPerUser: 1,
		Sessions:       5,
	})
	require.ErrorIs(t, err, ErrAborted)

	assert.Equal(t, 1, env.confirmer.calls)
	assert.Contains(t, env.confirmer.prompt, "1 users")

	// Ни одной записи сверх исходной
	assert.Len(t, env.userRepo.users, 1)
	assert.Empty(t, env.carRepo.cars)
	assert.Empty(t, env.sessionRepo.sessions)
}

func TestExecute_ConfirmedGenerationProceeds(t *testing.T) {
	env := newTestEnv()
	_, err := env.userRepo.Create(context.Background(), &domain.User{
		PhoneNumber: "+821012345678",
		UserCode:    "AAAA1111",
		QRCodeID:    "QR_DEADBEEF",
	})
	require.NoError(t, err)
	env.confirmer.answer = true

	summary, err := env.useCase.Execute(context.Background(), &Request{
		Users:          5,
		MinCarsPerUser: 1,
		MaxCarsPerUser: 1,
		Sessions:       5,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, env.confirmer.calls)
	assert.Equal(t, 5, summary.UsersCreated)
	assert.Equal(t, int64(6), summary.TotalUsers)
}

func TestExecute_AssumeYesSkipsConfirmation(t *testing.T) {
	env := newTestEnv()
	_, err := env.userRepo.Create(context.Background(), &domain.User{
		PhoneNumber: "+821012345678",
		UserCode:    "AAAA1111",
		QRCodeID:    "QR_DEADBEEF",
	})
	require.NoError(t, err)

	_, err = env.useCase.Execute(context.Background(), &Request{
		Users:          3,
		MinCarsPerUser: 1,
		MaxCarsPerUser: 1,
		Sessions:       0,
		AssumeYes:      true,
	})
	require.NoError(t, err)
	assert.Zero(t, env.confirmer.calls)
}

func TestExecute_NoCarsForSessions(t *testing.T) {
	env := newTestEnv()

	_, err := env.useCase.Execute(context.Background(), &Request{
		Users:          5,
		MinCarsPerUser: 0,
		MaxCarsPerUser: 0,
		Sessions:       10,
	})
	require.ErrorIs(t, err, ErrNoCarsForSessions)

	// Батч откатился целиком, включая уже созданных пользователей
	assert.Empty(t, env.userRepo.users)
	assert.Empty(t, env.carRepo.cars)
	assert.Empty(t, env.sessionRepo.sessions)
}

func TestExecute_StorageFailureRollsBackWholeBatch(t *testing.T) {
	env := newTestEnv()
	env.sessionRepo.failAfter = 10

	_, err := env.useCase.Execute(context.Background(), &Request{
		Users:          5,
		MinCarsPerUser: 1,
		MaxCarsPerUser: 1,
		Sessions:       30,
	})
	require.ErrorIs(t, err, ErrInternal)

	assert.Empty(t, env.userRepo.users)
	assert.Empty(t, env.carRepo.cars)
	assert.Empty(t, env.sessionRepo.sessions)
}

func TestExecute_ZeroSessionsIsValid(t *testing.T) {
	env := newTestEnv()

	summary, err := env.useCase.Execute(context.Background(), &Request{
		Users:          3,
		MinCarsPerUser: 0,
		MaxCarsPerUser: 0,
		Sessions:       0,
	})
	require.NoError(t, err)

	assert.Equal(t, 3, summary.UsersCreated)
	assert.Zero(t, summary.CarsCreated)
	assert.Zero(t, summary.SessionsCreated)
}
