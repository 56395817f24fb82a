package cancellationlog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/Clinic-SchedulingService/internal/domain"
	"github.com/m04kA/Clinic-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/Clinic-SchedulingService/pkg/psqlbuilder"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий для работы с журналом отмен.
// На приём существует не более одной записи: повторная отмена перезаписывает
// метаданные (upsert по appointment_id).
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория журнала отмен
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Upsert создает или перезаписывает запись об отмене приёма.
// Вызывается только внутри транзакции смены статуса.
func (r *Repository) Upsert(ctx context.Context, log *domain.CancellationLog) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("cancellation_logs").
		Columns(
			"appointment_id",
			"requested_by",
			"cancelled_by_id",
			"cancelled_at",
		).
		Values(
			log.AppointmentID,
			log.RequestedBy,
			log.CancelledByID,
			log.CancelledAt,
		).
		Suffix("ON CONFLICT (appointment_id) DO UPDATE SET requested_by = EXCLUDED.requested_by, cancelled_by_id = EXCLUDED.cancelled_by_id, cancelled_at = EXCLUDED.cancelled_at").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetByAppointmentID получает запись об отмене по ID приёма
func (r *Repository) GetByAppointmentID(ctx context.Context, appointmentID int64) (*domain.CancellationLog, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"appointment_id",
		"requested_by",
		"cancelled_by_id",
		"cancelled_at",
	).
		From("cancellation_logs").
		Where(squirrel.Eq{"appointment_id": appointmentID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByAppointmentID - build select query: %v", ErrBuildQuery, err)
	}

	var log domain.CancellationLog
	var cancelledByID sql.NullInt64

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&log.AppointmentID,
		&log.RequestedBy,
		&cancelledByID,
		&log.CancelledAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrLogNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByAppointmentID - scan log: %v", ErrScanRow, err)
	}

	if cancelledByID.Valid {
		log.CancelledByID = &cancelledByID.Int64
	}

	return &log, nil
}
