package appointment

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

var appointmentColumns = []string{
	"id",
	"case_id",
	"mediator_id",
	"client_id",
	"start_at",
	"end_at",
	"status",
	"created_by",
	"note",
	"case_title",
	"mediator_name",
	"client_name",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы со встречами
// Встречи никогда не удаляются физически - история бронирований хранится
// целиком, освобождение интервала происходит через статус Cancelled
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория встреч
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую встречу
// Вызывается только из usecase создания встречи внутри сериализуемой
// транзакции - вместе с проверками вложенности и конфликтов
func (r *Repository) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"case_id",
			"mediator_id",
			"client_id",
			"start_at",
			"end_at",
			"status",
			"created_by",
			"note",
			"case_title",
			"mediator_name",
			"client_name",
		).
		Values(
			appt.CaseID,
			appt.MediatorID,
			appt.ClientID,
			appt.StartAt,
			appt.EndAt,
			appt.Status,
			appt.CreatedBy,
			appt.Note,
			appt.CaseTitle,
			appt.MediatorName,
			appt.ClientName,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&appt.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return appt, nil
}

// GetByID получает встречу по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	appt, err := r.scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %w", ErrScanRow, err)
	}

	return appt, nil
}

// GetByMediatorID получает встречи медиатора, отсортированные по началу
func (r *Repository) GetByMediatorID(ctx context.Context, mediatorID int64) ([]*domain.Appointment, error) {
	return r.getByParty(ctx, "mediator_id", mediatorID)
}

// GetByClientID получает встречи клиента, отсортированные по началу
func (r *Repository) GetByClientID(ctx context.Context, clientID int64) ([]*domain.Appointment, error) {
	return r.getByParty(ctx, "client_id", clientID)
}

// GetActiveOverlappingByMediator получает активные встречи медиатора,
// пересекающиеся с [start, end)
// Активные - все, кроме отмененных: отмена освобождает интервал
// Внутри транзакции выборка блокируется FOR UPDATE
func (r *Repository) GetActiveOverlappingByMediator(ctx context.Context, mediatorID int64, start, end time.Time) ([]*domain.Appointment, error) {
	return r.getActiveOverlapping(ctx, "mediator_id", mediatorID, start, end)
}

// GetActiveOverlappingByClient получает активные встречи клиента,
// пересекающиеся с [start, end)
// Та же гонка существует и по оси клиента: клиент может быть забронирован
// параллельно у двух разных медиаторов
func (r *Repository) GetActiveOverlappingByClient(ctx context.Context, clientID int64, start, end time.Time) ([]*domain.Appointment, error) {
	return r.getActiveOverlapping(ctx, "client_id", clientID, start, end)
}

// Cancel переводит встречу в статус Cancelled с фиксацией времени отмены
func (r *Repository) Cancel(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("status", domain.StatusCancelled).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "Cancel")
}

// UpdateStatus обновляет статус встречи
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "UpdateStatus")
}

func (r *Repository) getByParty(ctx context.Context, column string, partyID int64) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{column: partyID}).
		OrderBy("start_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getByParty - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getByParty - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

func (r *Repository) getActiveOverlapping(ctx context.Context, column string, partyID int64, start, end time.Time) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{column: partyID}).
		Where(squirrel.NotEq{"status": domain.StatusCancelled}).
		Where(squirrel.Lt{"start_at": end}).
		Where(squirrel.Gt{"end_at": start}).
		OrderBy("start_at ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: getActiveOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getActiveOverlapping - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

func (r *Repository) execExpectingRow(ctx context.Context, executor DBExecutor, query string, args []interface{}, op string) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %w", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %w", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanAppointment(row rowScanner) (*domain.Appointment, error) {
	var appt domain.Appointment
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&appt.ID,
		&appt.CaseID,
		&appt.MediatorID,
		&appt.ClientID,
		&appt.StartAt,
		&appt.EndAt,
		&appt.Status,
		&appt.CreatedBy,
		&appt.Note,
		&appt.CaseTitle,
		&appt.MediatorName,
		&appt.ClientName,
		&appt.CancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	// Статус приходит из VARCHAR колонки - неизвестное значение означает
	// поврежденную запись, а не ошибку драйвера
	if !domain.IsValidStatus(appt.Status) {
		return nil, fmt.Errorf("%w: unknown appointment status %q", ErrScanRow, appt.Status)
	}

	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return &appt, nil
}

// scanAppointments сканирует результаты запроса в слайс встреч
func (r *Repository) scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		appt, err := r.scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan row: %w", ErrScanRow, err)
		}
		appointments = append(appointments, appt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %w", ErrScanRow, err)
	}

	return appointments, nil
}
