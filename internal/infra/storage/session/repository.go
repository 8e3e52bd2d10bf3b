package session

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/parqr/parqr-backend/internal/domain"
	"github.com/parqr/parqr-backend/pkg/dbmetrics"
	"github.com/parqr/parqr-backend/pkg/psqlbuilder"
)

var sessionColumns = []string{
	"id",
	"user_id",
	"car_id",
	"start_time",
	"end_time",
	"note_location",
	"public_message",
	"latitude",
	"longitude",
}

// Repository репозиторий для работы с парковочными сессиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория парковочных сессий
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую парковочную сессию.
// Если в контексте передана активная транзакция (через context.Value), использует её.
// Инвариант "автомобиль принадлежит пользователю сессии" обеспечивается
// вызывающим кодом (usecase), а не репозиторием.
func (r *Repository) Create(ctx context.Context, s *domain.ParkingSession) (*domain.ParkingSession, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("parking_sessions").
		Columns(
			"user_id",
			"car_id",
			"start_time",
			"end_time",
			"note_location",
			"public_message",
			"latitude",
			"longitude",
		).
		Values(
			s.UserID,
			s.CarID,
			s.StartTime,
			s.EndTime,
			s.NoteLocation,
			s.PublicMessage,
			s.Latitude,
			s.Longitude,
		).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&s.ID); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	return s, nil
}

// GetByID получает сессию по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.ParkingSession, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(sessionColumns...).
		From("parking_sessions").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	s, err := scanSession(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan session: %v", ErrScanRow, err)
	}
	return s, nil
}

// ListByUserID получает сессии пользователя, сначала новые.
// activeOnly ограничивает выборку незакрытыми сессиями (end_time IS NULL).
func (r *Repository) ListByUserID(ctx context.Context, userID int64, activeOnly bool) ([]*domain.ParkingSession, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(sessionColumns...).
		From("parking_sessions").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("start_time DESC")

	if activeOnly {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"end_time": nil})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByUserID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	sessions := make([]*domain.ParkingSession, 0)
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByUserID - scan row: %v", ErrScanRow, err)
		}
		sessions = append(sessions, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByUserID - rows error: %v", ErrScanRow, err)
	}
	return sessions, nil
}

// Close закрывает сессию, устанавливая end_time.
// Уже закрытая сессия не перезаписывается (ErrSessionAlreadyEnded).
func (r *Repository) Close(ctx context.Context, id int64, endTime time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("parking_sessions").
		Set("end_time", endTime).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"end_time": nil}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Close - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Close - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Close - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		// Различаем "нет сессии" и "сессия уже закрыта"
		if _, err := r.GetByID(ctx, id); err != nil {
			return ErrSessionNotFound
		}
		return ErrSessionAlreadyEnded
	}
	return nil
}

// Count возвращает общее количество сессий
func (r *Repository) Count(ctx context.Context) (int64, error) {
	return r.count(ctx, "Count", false)
}

// CountActive возвращает количество активных сессий (end_time IS NULL)
func (r *Repository) CountActive(ctx context.Context) (int64, error) {
	return r.count(ctx, "CountActive", true)
}

func (r *Repository) count(ctx context.Context, op string, activeOnly bool) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("COUNT(*)").From("parking_sessions")
	if activeOnly {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"end_time": nil})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	var count int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: %s - scan count: %v", ErrScanRow, op, err)
	}
	return count, nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSession(row rowScanner) (*domain.ParkingSession, error) {
	var s domain.ParkingSession
	var endTime sql.NullTime

	err := row.Scan(
		&s.ID,
		&s.UserID,
		&s.CarID,
		&s.StartTime,
		&endTime,
		&s.NoteLocation,
		&s.PublicMessage,
		&s.Latitude,
		&s.Longitude,
	)
	if err != nil {
		return nil, err
	}

	if endTime.Valid {
		s.EndTime = &endTime.Time
	}
	return &s, nil
}
