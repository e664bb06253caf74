package availability

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/MDT-ScheduleService/internal/domain"
	"github.com/m04kA/MDT-ScheduleService/pkg/dbmetrics"
	"github.com/m04kA/MDT-ScheduleService/pkg/psqlbuilder"
)

var windowColumns = []string{
	"id",
	"mediator_id",
	"start_at",
	"end_at",
	"note",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с окнами доступности медиаторов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория окон доступности
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое окно доступности
// Проверка пересечений с существующими окнами выполняется на уровне usecase
// внутри сериализуемой транзакции; репозиторий только пишет запись
func (r *Repository) Create(ctx context.Context, window *domain.AvailabilityWindow) (*domain.AvailabilityWindow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("availability_windows").
		Columns(
			"mediator_id",
			"start_at",
			"end_at",
			"note",
		).
		Values(
			window.MediatorID,
			window.StartAt,
			window.EndAt,
			window.Note,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&window.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	window.CreatedAt = createdAt.Time
	window.UpdatedAt = updatedAt.Time

	return window, nil
}

// GetByMediatorID получает окна доступности медиатора
// Опциональный диапазон [from, to] фильтрует окна, целиком попадающие в него
// (start_at >= from AND end_at <= to); сортировка по start_at ASC
func (r *Repository) GetByMediatorID(ctx context.Context, mediatorID int64, from, to *time.Time) ([]*domain.AvailabilityWindow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(windowColumns...).
		From("availability_windows").
		Where(squirrel.Eq{"mediator_id": mediatorID}).
		OrderBy("start_at ASC")

	if from != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"start_at": *from})
	}
	if to != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"end_at": *to})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByMediatorID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByMediatorID - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanWindows(rows)
}

// GetOverlapping получает окна медиатора, пересекающиеся с [start, end)
// Полуоткрытая проверка: start_at < end AND end_at > start
// Внутри транзакции выборка блокируется FOR UPDATE - это закрывает гонку
// двух параллельных добавлений окон одного медиатора
func (r *Repository) GetOverlapping(ctx context.Context, mediatorID int64, start, end time.Time) ([]*domain.AvailabilityWindow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(windowColumns...).
		From("availability_windows").
		Where(squirrel.Eq{"mediator_id": mediatorID}).
		Where(squirrel.Lt{"start_at": end}).
		Where(squirrel.Gt{"end_at": start}).
		OrderBy("start_at ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetOverlapping - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanWindows(rows)
}

// FindContaining находит окно медиатора, целиком содержащее [start, end)
// Условие вложенности: start_at <= start AND end_at >= end
// Окна просматриваются в порядке start_at ASC - при нескольких подходящих
// окнах детерминированно выбирается самое раннее
func (r *Repository) FindContaining(ctx context.Context, mediatorID int64, start, end time.Time) (*domain.AvailabilityWindow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(windowColumns...).
		From("availability_windows").
		Where(squirrel.Eq{"mediator_id": mediatorID}).
		Where(squirrel.LtOrEq{"start_at": start}).
		Where(squirrel.GtOrEq{"end_at": end}).
		OrderBy("start_at ASC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: FindContaining - build select query: %v", ErrBuildQuery, err)
	}

	var window domain.AvailabilityWindow
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&window.ID,
		&window.MediatorID,
		&window.StartAt,
		&window.EndAt,
		&window.Note,
		&createdAt,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrWindowNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: FindContaining - scan window: %w", ErrScanRow, err)
	}

	window.CreatedAt = createdAt.Time
	window.UpdatedAt = updatedAt.Time

	return &window, nil
}

// Delete удаляет окно доступности
// Удаление ограничено владельцем: окно чужого медиатора не будет найдено
// Каскадного удаления связанных встреч нет - бронирования остаются в истории
func (r *Repository) Delete(ctx context.Context, mediatorID, windowID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("availability_windows").
		Where(squirrel.Eq{"id": windowID}).
		Where(squirrel.Eq{"mediator_id": mediatorID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrWindowNotFound
	}

	return nil
}

// scanWindows сканирует результаты запроса в слайс окон доступности
func (r *Repository) scanWindows(rows *sql.Rows) ([]*domain.AvailabilityWindow, error) {
	windows := make([]*domain.AvailabilityWindow, 0)

	for rows.Next() {
		var window domain.AvailabilityWindow
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&window.ID,
			&window.MediatorID,
			&window.StartAt,
			&window.EndAt,
			&window.Note,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanWindows - scan row: %w", ErrScanRow, err)
		}

		window.CreatedAt = createdAt.Time
		window.UpdatedAt = updatedAt.Time

		windows = append(windows, &window)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanWindows - rows error: %w", ErrScanRow, err)
	}

	return windows, nil
}
