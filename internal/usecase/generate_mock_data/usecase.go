package generate_mock_data

import (
	"context"
	"fmt"
	mathrand "math/rand"
	"time"

	"github.com/parqr/parqr-backend/internal/domain"
)

// UseCase use case генерации mock-данных: пользователи → автомобили → сессии.
// Все записи выполняются в одной транзакции; частичных коммитов не бывает.
type UseCase struct {
	userRepo     UserRepository
	carRepo      CarRepository
	sessionRepo  SessionRepository
	txManager    TransactionManager
	confirmer    Confirmer
	timeProvider TimeProvider
	rng          *mathrand.Rand
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	userRepo UserRepository,
	carRepo CarRepository,
	sessionRepo SessionRepository,
	txManager TransactionManager,
	confirmer Confirmer,
	logger Logger,
) *UseCase {
	return &UseCase{
		userRepo:     userRepo,
		carRepo:      carRepo,
		sessionRepo:  sessionRepo,
		txManager:    txManager,
		confirmer:    confirmer,
		timeProvider: &RealTimeProvider{},
		rng:          mathrand.New(mathrand.NewSource(time.Now().UnixNano())),
		logger:       logger,
	}
}

// Execute выполняет полный прогон генератора.
//
// Перед записью проверяет, пуста ли база: против непустой базы требуется
// подтверждение (или AssumeYes). Отказ — чистый выход без единой записи.
// Вся генерация идет в одной транзакции: ошибка персистентности на любом
// шаге откатывает весь батч, и база остается ровно в исходном состоянии.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Summary, error) {
	uc.logger.Info("GenerateMockData: users=%d, cars=[%d..%d] per user, sessions=%d",
		req.Users, req.MinCarsPerUser, req.MaxCarsPerUser, req.Sessions)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GenerateMockData: validation failed: %v", err)
		return nil, err
	}

	// Смотрим текущее состояние базы до любых записей
	existingUsers, existingCars, existingSessions, err := uc.countAll(ctx)
	if err != nil {
		uc.logger.Error("GenerateMockData: failed to count existing rows: %v", err)
		return nil, fmt.Errorf("%w: count existing rows: %v", ErrInternal, err)
	}

	if existingUsers+existingCars+existingSessions > 0 && !req.AssumeYes {
		prompt := fmt.Sprintf(
			"Database is not empty (%d users, %d cars, %d sessions). Add mock data on top?",
			existingUsers, existingCars, existingSessions,
		)
		ok, err := uc.confirmer.Confirm(prompt)
		if err != nil {
			uc.logger.Error("GenerateMockData: confirmation failed: %v", err)
			return nil, fmt.Errorf("%w: confirmation: %v", ErrInternal, err)
		}
		if !ok {
			uc.logger.Warn("GenerateMockData: declined by user, nothing written")
			return nil, ErrAborted
		}
	}

	summary := &Summary{}

	// Одна транзакция на весь батч: commit-or-rollback
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		users, err := uc.createUsers(txCtx, req.Users)
		if err != nil {
			return err
		}
		summary.UsersCreated = len(users)

		cars, err := uc.createCars(txCtx, users, req.MinCarsPerUser, req.MaxCarsPerUser)
		if err != nil {
			return err
		}
		summary.CarsCreated = len(cars)

		active, completed, err := uc.createSessions(txCtx, users, cars, req.Sessions)
		if err != nil {
			return err
		}
		summary.ActiveCreated = active
		summary.CompletedCreated = completed
		summary.SessionsCreated = active + completed
		return nil
	})
	if err != nil {
		uc.logger.Error("GenerateMockData: batch rolled back: %v", err)
		return nil, err
	}

	// Итоговые счетчики уже после коммита
	summary.TotalUsers, summary.TotalCars, summary.TotalSessions, err = uc.countAll(ctx)
	if err != nil {
		uc.logger.Error("GenerateMockData: failed to count totals: %v", err)
		return nil, fmt.Errorf("%w: count totals: %v", ErrInternal, err)
	}
	summary.TotalActive, err = uc.sessionRepo.CountActive(ctx)
	if err != nil {
		uc.logger.Error("GenerateMockData: failed to count active sessions: %v", err)
		return nil, fmt.Errorf("%w: count active sessions: %v", ErrInternal, err)
	}

	uc.logger.Info("GenerateMockData: created %d users, %d cars, %d sessions (%d active, %d completed)",
		summary.UsersCreated, summary.CarsCreated, summary.SessionsCreated,
		summary.ActiveCreated, summary.CompletedCreated)
	return summary, nil
}

func validateRequest(req *Request) error {
	if req.Users <= 0 {
		return fmt.Errorf("%w: users must be positive", ErrInvalidInput)
	}
	if req.MinCarsPerUser < 0 {
		return fmt.Errorf("%w: minCarsPerUser must not be negative", ErrInvalidInput)
	}
	if req.MaxCarsPerUser < req.MinCarsPerUser {
		return fmt.Errorf("%w: maxCarsPerUser must not be less than minCarsPerUser", ErrInvalidInput)
	}
	if req.Sessions < 0 {
		return fmt.Errorf("%w: sessions must not be negative", ErrInvalidInput)
	}
	return nil
}

func (uc *UseCase) countAll(ctx context.Context) (users, cars, sessions int64, err error) {
	if users, err = uc.userRepo.Count(ctx); err != nil {
		return 0, 0, 0, err
	}
	if cars, err = uc.carRepo.Count(ctx); err != nil {
		return 0, 0, 0, err
	}
	if sessions, err = uc.sessionRepo.Count(ctx); err != nil {
		return 0, 0, 0, err
	}
	return users, cars, sessions, nil
}

// createUsers создает count пользователей с уникальными телефонами, кодами
// и QR-идентификаторами. Коллизии проверяются и по базе, и по уже
// сгенерированным в этом прогоне значениям; конфликтное поле генерируется
// заново в пределах бюджета попыток.
func (uc *UseCase) createUsers(ctx context.Context, count int) ([]*domain.User, error) {
	users := make([]*domain.User, 0, count)
	usedPhones := make(map[string]struct{}, count)
	usedCodes := make(map[string]struct{}, count)
	usedQRs := make(map[string]struct{}, count)

	for i := 0; i < count; i++ {
		phone, err := uc.uniqueValue(ctx, usedPhones, func() (string, error) {
			return generatePhoneNumber(uc.rng), nil
		}, uc.userRepo.ExistsByPhoneNumber)
		if err != nil {
			return nil, err
		}

		userCode, err := uc.uniqueValue(ctx, usedCodes, domain.NewUserCode, uc.userRepo.ExistsByUserCode)
		if err != nil {
			return nil, err
		}

		qrCodeID, err := uc.uniqueValue(ctx, usedQRs, func() (string, error) {
			return domain.NewQRCodeID(userCode, phone), nil
		}, uc.userRepo.ExistsByQRCodeID)
		if err != nil {
			return nil, err
		}

		user, err := uc.userRepo.Create(ctx, &domain.User{
			SignupCountryISO: "KR",
			PhoneNumber:      phone,
			UserCode:         userCode,
			QRCodeID:         qrCodeID,
		})
		if err != nil {
			return nil, fmt.Errorf("%w: create user: %v", ErrInternal, err)
		}
		users = append(users, user)
	}

	uc.logger.Info("GenerateMockData: created %d users", len(users))
	return users, nil
}

// createCars создает для каждого пользователя случайное число автомобилей
// в диапазоне [min, max] с уникальными госномерами.
func (uc *UseCase) createCars(ctx context.Context, users []*domain.User, min, max int) ([]*domain.Car, error) {
	cars := make([]*domain.Car, 0, len(users)*max)
	usedPlates := make(map[string]struct{})

	for _, user := range users {
		numCars := min
		if max > min {
			numCars = min + uc.rng.Intn(max-min+1)
		}

		for i := 0; i < numCars; i++ {
			plate, err := uc.uniqueValue(ctx, usedPlates, func() (string, error) {
				return generateLicensePlate(uc.rng), nil
			}, uc.carRepo.ExistsByLicensePlate)
			if err != nil {
				return nil, err
			}

			brand, model := randomCarModel(uc.rng)
			car, err := uc.carRepo.Create(ctx, &domain.Car{
				OwnerID:      user.ID,
				LicensePlate: plate,
				Brand:        brand,
				Model:        model,
			})
			if err != nil {
				return nil, fmt.Errorf("%w: create car: %v", ErrInternal, err)
			}
			cars = append(cars, car)
		}
	}

	uc.logger.Info("GenerateMockData: created %d cars", len(cars))
	return cars, nil
}

// createSessions создает ровно count сессий. Пользователь выбирается случайно
// среди владеющих хотя бы одним автомобилем, автомобиль — случайно среди его
// собственных, так что инвариант "машина сессии принадлежит её пользователю"
// выполняется по построению.
func (uc *UseCase) createSessions(ctx context.Context, users []*domain.User, cars []*domain.Car, count int) (active, completed int, err error) {
	if count == 0 {
		return 0, 0, nil
	}

	carsByOwner := make(map[int64][]*domain.Car, len(users))
	for _, car := range cars {
		carsByOwner[car.OwnerID] = append(carsByOwner[car.OwnerID], car)
	}

	owners := make([]*domain.User, 0, len(users))
	for _, user := range users {
		if len(carsByOwner[user.ID]) > 0 {
			owners = append(owners, user)
		}
	}
	if len(owners) == 0 {
		return 0, 0, ErrNoCarsForSessions
	}

	now := uc.timeProvider.Now()

	for i := 0; i < count; i++ {
		user := owners[uc.rng.Intn(len(owners))]
		userCars := carsByOwner[user.ID]
		car := userCars[uc.rng.Intn(len(userCars))]

		// Старт равномерно в скользящем 30-дневном окне
		windowMinutes := sessionWindowDays * 24 * 60
		startTime := now.Add(-time.Duration(uc.rng.Intn(windowMinutes)) * time.Minute)

		s := &domain.ParkingSession{
			UserID:    user.ID,
			CarID:     car.ID,
			StartTime: startTime,
		}

		if uc.rng.Float64() < completedProbability {
			durationMinutes := minSessionMinutes + uc.rng.Intn(maxSessionMinutes-minSessionMinutes+1)
			endTime := startTime.Add(time.Duration(durationMinutes) * time.Minute)
			s.EndTime = &endTime
			completed++
		} else {
			active++
		}

		if uc.rng.Float64() < noteProbability {
			note := parkingNotes[uc.rng.Intn(len(parkingNotes))]
			s.NoteLocation = &note
		}

		lat, lng := randomCoordinates(uc.rng)
		s.Latitude = &lat
		s.Longitude = &lng

		if _, err := uc.sessionRepo.Create(ctx, s); err != nil {
			return 0, 0, fmt.Errorf("%w: create session: %v", ErrInternal, err)
		}
	}

	uc.logger.Info("GenerateMockData: created %d sessions (%d active, %d completed)",
		active+completed, active, completed)
	return active, completed, nil
}

// uniqueValue генерирует значение, которого нет ни среди seen, ни в базе.
// Удачное значение добавляется в seen. Бюджет попыток ограничен: его
// исчерпание означает фактическое исчерпание пространства идентификаторов.
func (uc *UseCase) uniqueValue(
	ctx context.Context,
	seen map[string]struct{},
	generate func() (string, error),
	existsInStore func(ctx context.Context, value string) (bool, error),
) (string, error) {
	for attempt := 0; attempt < maxGenerateAttempts; attempt++ {
		value, err := generate()
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrInternal, err)
		}

		if _, taken := seen[value]; taken {
			continue
		}

		exists, err := existsInStore(ctx, value)
		if err != nil {
			return "", fmt.Errorf("%w: uniqueness check: %v", ErrInternal, err)
		}
		if exists {
			continue
		}

		seen[value] = struct{}{}
		return value, nil
	}
	return "", ErrIdentifierSpaceExhausted
}
