package cars

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/parqr/parqr-backend/internal/domain"
	carRepo "github.com/parqr/parqr-backend/internal/infra/storage/car"
	"github.com/parqr/parqr-backend/internal/service/cars/models"
)

// Service сервис для работы с автомобилями
type Service struct {
	carRepo CarRepository
	logger  Logger
}

// NewService создает новый экземпляр сервиса автомобилей
func NewService(carRepo CarRepository, logger Logger) *Service {
	return &Service{
		carRepo: carRepo,
		logger:  logger,
	}
}

// Register регистрирует автомобиль за пользователем.
// Формат госномера проверяется до записи, глобальная уникальность —
// unique-констрейнтом.
func (s *Service) Register(ctx context.Context, req *models.RegisterCarRequest) (*models.CarResponse, error) {
	s.logger.Info("RegisterCar: owner=%d", req.OwnerID)

	if err := validateRegisterRequest(req); err != nil {
		s.logger.Warn("RegisterCar: validation failed: %v", err)
		return nil, err
	}

	car, err := s.carRepo.Create(ctx, &domain.Car{
		OwnerID:      req.OwnerID,
		LicensePlate: req.LicensePlate,
		Brand:        strings.TrimSpace(req.Brand),
		Model:        strings.TrimSpace(req.Model),
	})
	if err != nil {
		if errors.Is(err, carRepo.ErrDuplicateLicensePlate) {
			s.logger.Warn("RegisterCar: license plate already registered")
			return nil, ErrDuplicateLicensePlate
		}
		s.logger.Error("RegisterCar: repository error: %v", err)
		return nil, fmt.Errorf("%w: Register - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("RegisterCar: registered car id=%d for owner=%d", car.ID, car.OwnerID)
	return models.FromDomainCar(car), nil
}

// List возвращает автомобили пользователя
func (s *Service) List(ctx context.Context, ownerID int64) (*models.CarListResponse, error) {
	s.logger.Info("ListCars: owner=%d", ownerID)

	cars, err := s.carRepo.ListByOwnerID(ctx, ownerID)
	if err != nil {
		s.logger.Error("ListCars: repository error for owner=%d: %v", ownerID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListCars: found %d cars for owner=%d", len(cars), ownerID)
	return models.FromDomainCarList(cars), nil
}

// Delete удаляет автомобиль пользователя.
// Чужой автомобиль неотличим от несуществующего.
func (s *Service) Delete(ctx context.Context, carID, userID int64) error {
	s.logger.Info("DeleteCar: car=%d, user=%d", carID, userID)

	car, err := s.carRepo.GetByID(ctx, carID)
	if err != nil {
		if errors.Is(err, carRepo.ErrCarNotFound) {
			s.logger.Warn("DeleteCar: car id=%d not found", carID)
			return ErrCarNotFound
		}
		s.logger.Error("DeleteCar: repository error for car id=%d: %v", carID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	if !car.IsOwnedBy(userID) {
		s.logger.Warn("DeleteCar: car id=%d does not belong to user id=%d", carID, userID)
		return ErrCarNotFound
	}

	if err := s.carRepo.Delete(ctx, carID); err != nil {
		if errors.Is(err, carRepo.ErrCarNotFound) {
			return ErrCarNotFound
		}
		s.logger.Error("DeleteCar: failed to delete car id=%d: %v", carID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteCar: deleted car id=%d", carID)
	return nil
}

func validateRegisterRequest(req *models.RegisterCarRequest) error {
	if req.OwnerID <= 0 {
		return fmt.Errorf("%w: ownerID must be positive", ErrInvalidInput)
	}
	if !domain.IsValidLicensePlate(req.LicensePlate) {
		return ErrInvalidLicensePlate
	}
	return nil
}
