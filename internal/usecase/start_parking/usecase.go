package start_parking

import (
	"context"
	"errors"
	"fmt"

	"github.com/parqr/parqr-backend/internal/domain"
	carRepo "github.com/parqr/parqr-backend/internal/infra/storage/car"
)

// UseCase use case начала парковочной сессии
type UseCase struct {
	carRepo      CarRepository
	sessionRepo  SessionRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	carRepo CarRepository,
	sessionRepo SessionRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		carRepo:      carRepo,
		sessionRepo:  sessionRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case: проверяет владение автомобилем и создает
// сессию со временем старта "сейчас" (UTC). Инвариант "машина сессии
// принадлежит её пользователю" гарантируется здесь.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("StartParking: user=%d, car=%d", req.UserID, req.CarID)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("StartParking: validation failed: %v", err)
		return nil, err
	}

	car, err := uc.carRepo.GetByID(ctx, req.CarID)
	if err != nil {
		if errors.Is(err, carRepo.ErrCarNotFound) {
			uc.logger.Warn("StartParking: car id=%d not found", req.CarID)
			return nil, ErrCarNotFound
		}
		uc.logger.Error("StartParking: failed to get car id=%d: %v", req.CarID, err)
		return nil, fmt.Errorf("%w: failed to get car: %v", ErrInternal, err)
	}

	if !car.IsOwnedBy(req.UserID) {
		uc.logger.Warn("StartParking: car id=%d does not belong to user id=%d", req.CarID, req.UserID)
		return nil, ErrCarNotFound
	}

	var created *domain.ParkingSession
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		s, err := uc.sessionRepo.Create(txCtx, &domain.ParkingSession{
			UserID:        req.UserID,
			CarID:         req.CarID,
			StartTime:     uc.timeProvider.Now(),
			NoteLocation:  req.NoteLocation,
			PublicMessage: req.PublicMessage,
			Latitude:      req.Latitude,
			Longitude:     req.Longitude,
		})
		if err != nil {
			return fmt.Errorf("%w: create session: %v", ErrInternal, err)
		}
		created = s
		return nil
	})
	if err != nil {
		uc.logger.Error("StartParking: failed to create session: %v", err)
		return nil, err
	}

	uc.logger.Info("StartParking: started session id=%d for user=%d", created.ID, created.UserID)
	return &Response{
		ID:            created.ID,
		UserID:        created.UserID,
		CarID:         created.CarID,
		StartTime:     created.StartTime,
		NoteLocation:  created.NoteLocation,
		PublicMessage: created.PublicMessage,
		Latitude:      created.Latitude,
		Longitude:     created.Longitude,
	}, nil
}

func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}
	if req.CarID <= 0 {
		return fmt.Errorf("%w: carID must be positive", ErrInvalidInput)
	}
	if req.Latitude != nil && (*req.Latitude < -90 || *req.Latitude > 90) {
		return fmt.Errorf("%w: latitude out of range", ErrInvalidInput)
	}
	if req.Longitude != nil && (*req.Longitude < -180 || *req.Longitude > 180) {
		return fmt.Errorf("%w: longitude out of range", ErrInvalidInput)
	}
	return nil
}
