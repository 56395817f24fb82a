package change_status

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/Clinic-SchedulingService/internal/domain"
	appointmentRepo "github.com/m04kA/Clinic-SchedulingService/internal/infra/storage/appointment"
)

// UseCase use case для смены статуса приёма
type UseCase struct {
	appointmentRepo  AppointmentRepository
	cancellationRepo CancellationLogRepository
	txManager        TransactionManager
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	cancellationRepo CancellationLogRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo:  appointmentRepo,
		cancellationRepo: cancellationRepo,
		txManager:        txManager,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case смены статуса
// Чтение текущего статуса, валидация перехода и запись нового статуса
// (вместе с журналом отмены) выполняются в одной транзакции: конкурентная
// отмена и отметка о прибытии не могут затереть друг друга
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ChangeStatus: appointment=%d, target=%s", req.AppointmentID, req.Status)

	// 1. Валидация входных данных
	target, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("ChangeStatus: validation failed: %v", err)
		return nil, err
	}

	var result *Response

	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 2. Загружаем приём с блокировкой (FOR UPDATE внутри транзакции)
		appointment, err := uc.appointmentRepo.GetByID(txCtx, req.AppointmentID)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				uc.logger.Warn("ChangeStatus: appointment id=%d not found", req.AppointmentID)
				return ErrAppointmentNotFound
			}
			uc.logger.Error("ChangeStatus: failed to get appointment id=%d: %v", req.AppointmentID, err)
			return fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
		}

		current := appointment.Status

		// 3. cancelled терминален
		if current == domain.StatusCancelled && target != domain.StatusCancelled {
			uc.logger.Warn("ChangeStatus: appointment id=%d is cancelled, cannot transition to %s",
				req.AppointmentID, target)
			return ErrCancelledTerminal
		}

		// 4. Совпадение с текущим статусом - идемпотентный no-op:
		// без записи в БД и без записи в журнале отмен
		if target == current {
			uc.logger.Info("ChangeStatus: appointment id=%d already in status %s, no-op",
				req.AppointmentID, current)
			result = &Response{
				AppointmentID:        req.AppointmentID,
				Status:               string(current),
				Changed:              false,
				RequiresClinicalNote: false,
			}
			return nil
		}

		// 5. Отмена: обязателен инициатор, статус и журнал пишутся атомарно
		if target == domain.StatusCancelled {
			actor, err := validateCancellation(req)
			if err != nil {
				uc.logger.Warn("ChangeStatus: cancellation validation failed: %v", err)
				return err
			}

			if err := uc.appointmentRepo.UpdateStatus(txCtx, req.AppointmentID, domain.StatusCancelled); err != nil {
				return uc.wrapUpdateError(req.AppointmentID, err)
			}

			log := &domain.CancellationLog{
				AppointmentID: req.AppointmentID,
				RequestedBy:   actor,
				CancelledByID: req.CancelledByID,
				CancelledAt:   uc.timeProvider.Now().UTC(),
			}
			if err := uc.cancellationRepo.Upsert(txCtx, log); err != nil {
				uc.logger.Error("ChangeStatus: failed to upsert cancellation log for appointment id=%d: %v",
					req.AppointmentID, err)
				return fmt.Errorf("%w: failed to upsert cancellation log: %v", ErrInternal, err)
			}

			result = &Response{
				AppointmentID:        req.AppointmentID,
				Status:               string(domain.StatusCancelled),
				Changed:              true,
				RequiresClinicalNote: false,
			}
			return nil
		}

		// 6. Обычный переход: проверяем по таблице допустимых переходов
		if !canTransition(current, target) {
			uc.logger.Warn("ChangeStatus: transition %s -> %s is not allowed for appointment id=%d",
				current, target, req.AppointmentID)
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current, target)
		}

		if err := uc.appointmentRepo.UpdateStatus(txCtx, req.AppointmentID, target); err != nil {
			return uc.wrapUpdateError(req.AppointmentID, err)
		}

		result = &Response{
			AppointmentID: req.AppointmentID,
			Status:        string(target),
			Changed:       true,
			// Переход в completed_seen обязывает открыть запись в медкарте
			RequiresClinicalNote: target == domain.StatusCompletedSeen,
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	if result.Changed {
		uc.logger.Info("ChangeStatus: appointment id=%d moved to status %s", req.AppointmentID, result.Status)
	}

	return result, nil
}

func (uc *UseCase) wrapUpdateError(appointmentID int64, err error) error {
	if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
		uc.logger.Warn("ChangeStatus: appointment id=%d not found during update", appointmentID)
		return ErrAppointmentNotFound
	}
	uc.logger.Error("ChangeStatus: failed to update status for appointment id=%d: %v", appointmentID, err)
	return fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
}
