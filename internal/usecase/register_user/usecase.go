package register_user

import (
	"context"
	"fmt"
	"strings"

	"github.com/parqr/parqr-backend/internal/domain"
)

// maxGenerateAttempts бюджет попыток подбора свободного кода/QR-идентификатора
const maxGenerateAttempts = 100

// UseCase use case регистрации пользователя по номеру телефона
type UseCase struct {
	userRepo  UserRepository
	txManager TransactionManager
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(userRepo UserRepository, txManager TransactionManager, logger Logger) *UseCase {
	return &UseCase{
		userRepo:  userRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// Execute выполняет регистрацию: валидация страны и телефона, нормализация
// номера, генерация кода пользователя и QR-идентификатора с повторами при
// коллизиях, запись в транзакции.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RegisterUser: registration attempt, country=%s", req.SignupCountryISO)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RegisterUser: validation failed: %v", err)
		return nil, err
	}

	phone, err := normalizePhone(req.PhoneNumber, req.SignupCountryISO)
	if err != nil {
		uc.logger.Warn("RegisterUser: phone normalization failed: %v", err)
		return nil, err
	}

	exists, err := uc.userRepo.ExistsByPhoneNumber(ctx, phone)
	if err != nil {
		uc.logger.Error("RegisterUser: phone uniqueness check failed: %v", err)
		return nil, fmt.Errorf("%w: phone uniqueness check: %v", ErrInternal, err)
	}
	if exists {
		uc.logger.Warn("RegisterUser: phone already registered")
		return nil, ErrPhoneAlreadyRegistered
	}

	userCode, err := uc.uniqueUserCode(ctx)
	if err != nil {
		return nil, err
	}

	qrCodeID, err := uc.uniqueQRCodeID(ctx, userCode, phone)
	if err != nil {
		return nil, err
	}

	var created *domain.User
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		user, err := uc.userRepo.Create(txCtx, &domain.User{
			SignupCountryISO:   strings.ToUpper(req.SignupCountryISO),
			PhoneNumber:        phone,
			UserCode:           userCode,
			QRCodeID:           qrCodeID,
			ProfileDisplayName: req.DisplayName,
		})
		if err != nil {
			return fmt.Errorf("%w: create user: %v", ErrInternal, err)
		}
		created = user
		return nil
	})
	if err != nil {
		uc.logger.Error("RegisterUser: failed to create user: %v", err)
		return nil, err
	}

	uc.logger.Info("RegisterUser: registered user id=%d, code=%s", created.ID, created.UserCode)
	return &Response{
		ID:               created.ID,
		PhoneNumber:      created.PhoneNumber,
		UserCode:         created.UserCode,
		QRCodeID:         created.QRCodeID,
		SignupCountryISO: created.SignupCountryISO,
		DisplayName:      created.ProfileDisplayName,
		CreatedAt:        created.CreatedAt,
	}, nil
}

func (uc *UseCase) uniqueUserCode(ctx context.Context) (string, error) {
	for attempt := 0; attempt < maxGenerateAttempts; attempt++ {
		code, err := domain.NewUserCode()
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrInternal, err)
		}
		exists, err := uc.userRepo.ExistsByUserCode(ctx, code)
		if err != nil {
			return "", fmt.Errorf("%w: user code uniqueness check: %v", ErrInternal, err)
		}
		if !exists {
			return code, nil
		}
	}
	return "", ErrIdentifierSpaceExhausted
}

func (uc *UseCase) uniqueQRCodeID(ctx context.Context, userCode, phone string) (string, error) {
	for attempt := 0; attempt < maxGenerateAttempts; attempt++ {
		qrCodeID := domain.NewQRCodeID(userCode, phone)
		exists, err := uc.userRepo.ExistsByQRCodeID(ctx, qrCodeID)
		if err != nil {
			return "", fmt.Errorf("%w: qr code id uniqueness check: %v", ErrInternal, err)
		}
		if !exists {
			return qrCodeID, nil
		}
	}
	return "", ErrIdentifierSpaceExhausted
}
