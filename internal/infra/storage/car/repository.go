package car

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

// Имя unique-констрейнта таблицы cars (см. docs/DATABASE_SETUP.md)
const constraintLicensePlate = "cars_license_plate_key"

var carColumns = []string{
	"id",
	"owner_id",
	"license_plate",
	"car_brand",
	"car_model",
	"created_at",
}

// Repository репозиторий для работы с автомобилями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория автомобилей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый автомобиль.
// Если в контексте передана активная транзакция (через context.Value), использует её.
// Нарушение уникальности госномера маппится на ErrDuplicateLicensePlate.
func (r *Repository) Create(ctx context.Context, car *domain.Car) (*domain.Car, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("cars").
		Columns(
			"owner_id",
			"license_plate",
			"car_brand",
			"car_model",
		).
		Values(
			car.OwnerID,
			car.LicensePlate,
			car.Brand,
			car.Model,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&car.ID, &createdAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" && pqErr.Constraint == constraintLicensePlate {
			return nil, ErrDuplicateLicensePlate
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	car.CreatedAt = createdAt.Time
	return car, nil
}

// GetByID получает автомобиль по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Car, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(carColumns...).
		From("cars").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var car domain.Car
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&car.ID,
		&car.OwnerID,
		&car.LicensePlate,
		&car.Brand,
		&car.Model,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrCarNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan car: %v", ErrScanRow, err)
	}

	car.CreatedAt = createdAt.Time
	return &car, nil
}

// ListByOwnerID получает список автомобилей пользователя
func (r *Repository) ListByOwnerID(ctx context.Context, ownerID int64) ([]*domain.Car, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(carColumns...).
		From("cars").
		Where(squirrel.Eq{"owner_id": ownerID}).
		OrderBy("created_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByOwnerID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByOwnerID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	cars := make([]*domain.Car, 0)
	for rows.Next() {
		var car domain.Car
		var createdAt sql.NullTime

		if err := rows.Scan(
			&car.ID,
			&car.OwnerID,
			&car.LicensePlate,
			&car.Brand,
			&car.Model,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("%w: ListByOwnerID - scan row: %v", ErrScanRow, err)
		}

		car.CreatedAt = createdAt.Time
		cars = append(cars, &car)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByOwnerID - rows error: %v", ErrScanRow, err)
	}
	return cars, nil
}

// ExistsByLicensePlate проверяет, зарегистрирован ли госномер
func (r *Repository) ExistsByLicensePlate(ctx context.Context, plate string) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("cars").
		Where(squirrel.Eq{"license_plate": plate}).
		Limit(1).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: ExistsByLicensePlate - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: ExistsByLicensePlate - scan row: %v", ErrScanRow, err)
	}
	return true, nil
}

// Count возвращает общее количество автомобилей
func (r *Repository) Count(ctx context.Context) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").From("cars").ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: Count - build select query: %v", ErrBuildQuery, err)
	}

	var count int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: Count - scan count: %v", ErrScanRow, err)
	}
	return count, nil
}

// Delete удаляет автомобиль (физическое удаление)
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("cars").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrCarNotFound
	}
	return nil
}
