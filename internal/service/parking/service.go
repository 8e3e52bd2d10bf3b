package parking

import (
	"context"
	"errors"
	"fmt"
	"time"

	sessionRepo "github.com/parqr/parqr-backend/internal/infra/storage/session"
	"github.com/parqr/parqr-backend/internal/service/parking/models"
)

// Service сервис для работы с парковочными сессиями
type Service struct {
	sessionRepo SessionRepository
	logger      Logger
	now         func() time.Time
}

// NewService создает новый экземпляр сервиса парковки
func NewService(sessionRepo SessionRepository, logger Logger) *Service {
	return &Service{
		sessionRepo: sessionRepo,
		logger:      logger,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// End завершает активную сессию пользователя, выставляя end_time = сейчас.
// Чужая сессия неотличима от несуществующей.
func (s *Service) End(ctx context.Context, sessionID, userID int64) (*models.SessionResponse, error) {
	s.logger.Info("EndParking: session=%d, user=%d", sessionID, userID)

	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			s.logger.Warn("EndParking: session id=%d not found", sessionID)
			return nil, ErrSessionNotFound
		}
		s.logger.Error("EndParking: repository error for session id=%d: %v", sessionID, err)
		return nil, fmt.Errorf("%w: End - repository error: %v", ErrInternal, err)
	}

	if session.UserID != userID {
		s.logger.Warn("EndParking: session id=%d does not belong to user id=%d", sessionID, userID)
		return nil, ErrSessionNotFound
	}

	if !session.IsActive() {
		s.logger.Warn("EndParking: session id=%d already ended", sessionID)
		return nil, ErrSessionAlreadyEnded
	}

	endTime := s.now()
	if err := s.sessionRepo.Close(ctx, sessionID, endTime); err != nil {
		if errors.Is(err, sessionRepo.ErrSessionAlreadyEnded) {
			return nil, ErrSessionAlreadyEnded
		}
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		s.logger.Error("EndParking: failed to close session id=%d: %v", sessionID, err)
		return nil, fmt.Errorf("%w: End - close session: %v", ErrInternal, err)
	}

	session.EndTime = &endTime
	duration, _ := session.Duration()
	s.logger.Info("EndParking: session id=%d ended, duration=%s", sessionID, duration)
	return models.FromDomainSession(session), nil
}

// Active возвращает активные сессии пользователя
func (s *Service) Active(ctx context.Context, userID int64) (*models.SessionListResponse, error) {
	s.logger.Info("ActiveSessions: user=%d", userID)

	sessions, err := s.sessionRepo.ListByUserID(ctx, userID, true)
	if err != nil {
		s.logger.Error("ActiveSessions: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: Active - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ActiveSessions: found %d active sessions for user=%d", len(sessions), userID)
	return models.FromDomainSessionList(sessions), nil
}

// History возвращает всю историю сессий пользователя, сначала новые
func (s *Service) History(ctx context.Context, userID int64) (*models.SessionListResponse, error) {
	s.logger.Info("ParkingHistory: user=%d", userID)

	sessions, err := s.sessionRepo.ListByUserID(ctx, userID, false)
	if err != nil {
		s.logger.Error("ParkingHistory: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: History - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ParkingHistory: found %d sessions for user=%d", len(sessions), userID)
	return models.FromDomainSessionList(sessions), nil
}
