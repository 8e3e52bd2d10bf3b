package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/parqr/parqr-backend/internal/domain"
	"github.com/parqr/parqr-backend/pkg/dbmetrics"
	"github.com/parqr/parqr-backend/pkg/psqlbuilder"
)

// Имена unique-констрейнтов таблицы users (см. docs/DATABASE_SETUP.md)
const (
	constraintPhoneNumber = "users_phone_number_key"
	constraintUserCode    = "users_user_code_key"
	constraintQRCodeID    = "users_qr_code_id_key"
)

var userColumns = []string{
	"id",
	"signup_country_iso",
	"phone_number",
	"user_code",
	"qr_code_id",
	"profile_display_name",
	"profile_bio",
	"profile_deep_link",
	"created_at",
}

// Repository репозиторий для работы с пользователями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория пользователей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает нового пользователя.
// Если в контексте передана активная транзакция (через context.Value), использует её.
// Нарушения уникальности маппятся на доменные ошибки репозитория
// (ErrDuplicatePhoneNumber / ErrDuplicateUserCode / ErrDuplicateQRCodeID).
func (r *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("users").
		Columns(
			"signup_country_iso",
			"phone_number",
			"user_code",
			"qr_code_id",
			"profile_display_name",
			"profile_bio",
			"profile_deep_link",
		).
		Values(
			user.SignupCountryISO,
			user.PhoneNumber,
			user.UserCode,
			user.QRCodeID,
			user.ProfileDisplayName,
			user.ProfileBio,
			user.ProfileDeepLink,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&user.ID, &createdAt)
	if err != nil {
		if dupErr := mapUniqueViolation(err); dupErr != nil {
			return nil, dupErr
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	user.CreatedAt = createdAt.Time
	return user, nil
}

// GetByID получает пользователя по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.getByField(ctx, "GetByID", squirrel.Eq{"id": id})
}

// GetByPhoneNumber получает пользователя по номеру телефона (международный формат)
func (r *Repository) GetByPhoneNumber(ctx context.Context, phone string) (*domain.User, error) {
	return r.getByField(ctx, "GetByPhoneNumber", squirrel.Eq{"phone_number": phone})
}

// GetByUserCode получает пользователя по публичному коду
func (r *Repository) GetByUserCode(ctx context.Context, userCode string) (*domain.User, error) {
	return r.getByField(ctx, "GetByUserCode", squirrel.Eq{"user_code": userCode})
}

// GetByQRCodeID получает пользователя по QR-идентификатору
func (r *Repository) GetByQRCodeID(ctx context.Context, qrCodeID string) (*domain.User, error) {
	return r.getByField(ctx, "GetByQRCodeID", squirrel.Eq{"qr_code_id": qrCodeID})
}

// ExistsByPhoneNumber проверяет, занят ли номер телефона
func (r *Repository) ExistsByPhoneNumber(ctx context.Context, phone string) (bool, error) {
	return r.existsByField(ctx, "ExistsByPhoneNumber", squirrel.Eq{"phone_number": phone})
}

// ExistsByUserCode проверяет, занят ли код пользователя
func (r *Repository) ExistsByUserCode(ctx context.Context, userCode string) (bool, error) {
	return r.existsByField(ctx, "ExistsByUserCode", squirrel.Eq{"user_code": userCode})
}

// ExistsByQRCodeID проверяет, занят ли QR-идентификатор
func (r *Repository) ExistsByQRCodeID(ctx context.Context, qrCodeID string) (bool, error) {
	return r.existsByField(ctx, "ExistsByQRCodeID", squirrel.Eq{"qr_code_id": qrCodeID})
}

// Count возвращает общее количество пользователей
func (r *Repository) Count(ctx context.Context) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").From("users").ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: Count - build select query: %v", ErrBuildQuery, err)
	}

	var count int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: Count - scan count: %v", ErrScanRow, err)
	}
	return count, nil
}

// UpdateProfile обновляет публичные поля профиля пользователя
func (r *Repository) UpdateProfile(ctx context.Context, id int64, displayName, bio, deepLink *string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("users").
		Set("profile_display_name", displayName).
		Set("profile_bio", bio).
		Set("profile_deep_link", deepLink).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateProfile - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateProfile - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateProfile - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *Repository) getByField(ctx context.Context, op string, where squirrel.Eq) (*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(userColumns...).
		From("users").
		Where(where).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	var user domain.User
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&user.ID,
		&user.SignupCountryISO,
		&user.PhoneNumber,
		&user.UserCode,
		&user.QRCodeID,
		&user.ProfileDisplayName,
		&user.ProfileBio,
		&user.ProfileDeepLink,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan user: %v", ErrScanRow, op, err)
	}

	user.CreatedAt = createdAt.Time
	return &user, nil
}

func (r *Repository) existsByField(ctx context.Context, op string, where squirrel.Eq) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("users").
		Where(where).
		Limit(1).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
	}
	return true, nil
}

// mapUniqueViolation маппит нарушение unique-констрейнта PostgreSQL (23505)
// на соответствующую ошибку репозитория. Возвращает nil для остальных ошибок.
func mapUniqueViolation(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || pqErr.Code != "23505" {
		return nil
	}
	switch pqErr.Constraint {
	case constraintPhoneNumber:
		return ErrDuplicatePhoneNumber
	case constraintUserCode:
		return ErrDuplicateUserCode
	case constraintQRCodeID:
		return ErrDuplicateQRCodeID
	default:
		return nil
	}
}
