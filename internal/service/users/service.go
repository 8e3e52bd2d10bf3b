package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/parqr/parqr-backend/internal/domain"
	userRepo "github.com/parqr/parqr-backend/internal/infra/storage/user"
	"github.com/parqr/parqr-backend/internal/service/users/models"
)

// Service сервис для работы с профилями пользователей
type Service struct {
	userRepo    UserRepository
	carRepo     CarRepository
	sessionRepo SessionRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса пользователей
func NewService(
	userRepo UserRepository,
	carRepo CarRepository,
	sessionRepo SessionRepository,
	logger Logger,
) *Service {
	return &Service{
		userRepo:    userRepo,
		carRepo:     carRepo,
		sessionRepo: sessionRepo,
		logger:      logger,
	}
}

// GetProfile возвращает полный профиль владельца аккаунта
func (s *Service) GetProfile(ctx context.Context, userID int64) (*models.ProfileResponse, error) {
	s.logger.Info("GetProfile: user=%d", userID)

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("GetProfile: user id=%d not found", userID)
			return nil, ErrUserNotFound
		}
		s.logger.Error("GetProfile: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: GetProfile - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainUser(user), nil
}

// UpdateProfile обновляет публичные поля профиля
func (s *Service) UpdateProfile(ctx context.Context, req *models.UpdateProfileRequest) (*models.ProfileResponse, error) {
	s.logger.Info("UpdateProfile: user=%d", req.UserID)

	if req.UserID <= 0 {
		return nil, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if err := s.userRepo.UpdateProfile(ctx, req.UserID, req.DisplayName, req.Bio, req.DeepLink); err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("UpdateProfile: user id=%d not found", req.UserID)
			return nil, ErrUserNotFound
		}
		s.logger.Error("UpdateProfile: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: UpdateProfile - repository error: %v", ErrInternal, err)
	}

	return s.GetProfile(ctx, req.UserID)
}

// Lookup возвращает публичный профиль по QR-идентификатору (QR_XXXXXXXX)
// или по коду пользователя. Это эндпоинт сканирования: приватные поля
// профиля наружу не отдаются.
func (s *Service) Lookup(ctx context.Context, code string) (*models.PublicProfileResponse, error) {
	code = strings.TrimSpace(code)
	s.logger.Info("LookupProfile: code=%s", code)

	if code == "" {
		return nil, fmt.Errorf("%w: lookup code is required", ErrInvalidInput)
	}

	var (
		user *domain.User
		err  error
	)
	if strings.HasPrefix(code, domain.QRCodePrefix) {
		user, err = s.userRepo.GetByQRCodeID(ctx, code)
	} else {
		user, err = s.userRepo.GetByUserCode(ctx, code)
	}
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("LookupProfile: no user for code=%s", code)
			return nil, ErrUserNotFound
		}
		s.logger.Error("LookupProfile: repository error for code=%s: %v", code, err)
		return nil, fmt.Errorf("%w: Lookup - repository error: %v", ErrInternal, err)
	}

	cars, err := s.carRepo.ListByOwnerID(ctx, user.ID)
	if err != nil {
		s.logger.Error("LookupProfile: failed to list cars for user=%d: %v", user.ID, err)
		return nil, fmt.Errorf("%w: Lookup - list cars: %v", ErrInternal, err)
	}

	activeSessions, err := s.sessionRepo.ListByUserID(ctx, user.ID, true)
	if err != nil {
		s.logger.Error("LookupProfile: failed to list active sessions for user=%d: %v", user.ID, err)
		return nil, fmt.Errorf("%w: Lookup - list active sessions: %v", ErrInternal, err)
	}

	return models.ToPublicProfile(user, cars, len(activeSessions) > 0), nil
}
