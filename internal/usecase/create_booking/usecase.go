package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/Clinic-SchedulingService/internal/domain"
	appointmentRepo "github.com/m04kA/Clinic-SchedulingService/internal/infra/storage/appointment"
	patientClient "github.com/m04kA/Clinic-SchedulingService/internal/integrations/patientservice"
	professionalClient "github.com/m04kA/Clinic-SchedulingService/internal/integrations/professionalservice"
)

// UseCase use case для создания приёма
type UseCase struct {
	appointmentRepo    AppointmentRepository
	patientClient      PatientServiceClient
	professionalClient ProfessionalServiceClient
	clinicalClient     ClinicalRecordsClient
	txManager          TransactionManager
	timeProvider       TimeProvider
	logger             Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	patientClient PatientServiceClient,
	professionalClient ProfessionalServiceClient,
	clinicalClient ClinicalRecordsClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo:    appointmentRepo,
		patientClient:      patientClient,
		professionalClient: professionalClient,
		clinicalClient:     clinicalClient,
		txManager:          txManager,
		timeProvider:       &RealTimeProvider{},
		logger:             logger,
	}
}

// Execute выполняет use case создания приёма
// Использует сериализуемую транзакцию для предотвращения гонки данных:
// две конкурентные брони на пересекающийся интервал не могут обе пройти
// проверку занятости и обе записаться
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: patient=%d, professional=%d, start=%s",
		req.PatientID, req.ProfessionalID, req.StartTime.Format(time.RFC3339))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	duration := resolveDuration(req)

	// 2. Проверяем существование пациента
	// Порядок проверок важен: отсутствие пациента сообщается раньше конфликта расписания
	patient, err := uc.patientClient.GetPatient(ctx, req.PatientID)
	if err != nil {
		if errors.Is(err, patientClient.ErrPatientNotFound) {
			uc.logger.Warn("CreateBooking: patient id=%d not found", req.PatientID)
			return nil, ErrPatientNotFound
		}
		uc.logger.Error("CreateBooking: failed to get patient id=%d: %v", req.PatientID, err)
		return nil, fmt.Errorf("%w: failed to get patient: %v", ErrInternal, err)
	}

	// 3. Проверяем существование профессионала
	if _, err := uc.professionalClient.GetProfessional(ctx, req.ProfessionalID); err != nil {
		if errors.Is(err, professionalClient.ErrProfessionalNotFound) {
			uc.logger.Warn("CreateBooking: professional id=%d not found", req.ProfessionalID)
			return nil, ErrProfessionalNotFound
		}
		uc.logger.Error("CreateBooking: failed to get professional id=%d: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: failed to get professional: %v", ErrInternal, err)
	}

	now := uc.timeProvider.Now()

	// Переменная для хранения результата
	var result *domain.Appointment

	// 4. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Получаем занимающие время приёмы профессионала вокруг запрошенного
		// интервала с блокировкой (FOR UPDATE). Существующий приём может начаться
		// раньше запрошенного и всё ещё пересекаться с ним, поэтому диапазон
		// расширен влево на максимальную длительность приёма
		rangeStart := req.StartTime.Add(-time.Duration(domain.MaxDurationMinutes) * time.Minute)
		rangeEnd := req.StartTime.Add(time.Duration(duration) * time.Minute)

		occupied, err := uc.appointmentRepo.GetByProfessionalInRange(txCtx, req.ProfessionalID, rangeStart, rangeEnd, false)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to load occupancy: %v", err)
			return fmt.Errorf("%w: failed to load occupancy: %v", ErrInternal, err)
		}

		// 4.2. Проверяем отсутствие пересечений
		if domain.OverlapsAny(req.StartTime, duration, occupied) {
			uc.logger.Warn("CreateBooking: schedule conflict for professional=%d at %s",
				req.ProfessionalID, req.StartTime.Format(time.RFC3339))
			return ErrScheduleConflict
		}

		// 4.3. Создаем приём со строкой аудита в описании
		appointment := &domain.Appointment{
			PatientID:       req.PatientID,
			ProfessionalID:  req.ProfessionalID,
			StartTime:       req.StartTime.UTC(),
			DurationMinutes: duration,
			Status:          resolveStatus(req),
			Reason:          req.Reason,
			Detail:          composeDetail(req.Detail, req.PatientID, now),
		}

		created, err := uc.appointmentRepo.Create(txCtx, appointment)
		if err != nil {
			// Уникальный индекс (professional_id, start_time) - вторая линия защиты
			// от гонки: нарушение трактуем как конфликт расписания
			if errors.Is(err, appointmentRepo.ErrTimeSlotTaken) {
				uc.logger.Warn("CreateBooking: unique constraint hit for professional=%d at %s",
					req.ProfessionalID, req.StartTime.Format(time.RFC3339))
				return ErrScheduleConflict
			}
			uc.logger.Error("CreateBooking: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		// 4.4. Добавляем запись в медицинскую карту в той же транзакции:
		// при ошибке интеграции бронь откатывается целиком
		note := composeClinicalNote(created, patient.FirstName+" "+patient.LastName)
		if err := uc.clinicalClient.AppendEntry(txCtx, created.PatientID, created.ProfessionalID, note); err != nil {
			uc.logger.Error("CreateBooking: failed to append clinical record entry: %v", err)
			return fmt.Errorf("%w: failed to append clinical record entry: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created appointment id=%d", result.ID)

	// Конвертируем в response
	return &Response{
		ID:              result.ID,
		PatientID:       result.PatientID,
		ProfessionalID:  result.ProfessionalID,
		StartTime:       result.StartTime,
		DurationMinutes: result.DurationMinutes,
		Status:          string(result.Status),
		Reason:          result.Reason,
		Detail:          result.Detail,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}

// composeDetail дополняет описание строкой аудита о времени создания брони
func composeDetail(detail string, patientID int64, now time.Time) string {
	return fmt.Sprintf("%s\n[booked at %s, patient %d]", detail, now.UTC().Format(time.RFC3339), patientID)
}

// composeClinicalNote формирует текст записи в медицинской карте о созданном приёме
func composeClinicalNote(appointment *domain.Appointment, patientName string) string {
	return fmt.Sprintf("Appointment #%d booked for %s at %s (%d min): %s",
		appointment.ID, patientName, appointment.StartTime.Format(time.RFC3339),
		appointment.DurationMinutes, appointment.Reason)
}
