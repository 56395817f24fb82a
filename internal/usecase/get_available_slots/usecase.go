package get_available_slots

import (
	"context"
	"fmt"

	"github.com/m04kA/Clinic-SchedulingService/internal/domain"
)

// UseCase use case получения свободных слотов профессионала на день
type UseCase struct {
	appointmentRepo AppointmentRepository
	schedule        domain.Schedule
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	schedule domain.Schedule,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		schedule:        schedule,
		logger:          logger,
	}
}

// Execute выполняет use case получения свободных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: professional=%d, date=%s, offset=%d, duration=%d",
		req.ProfessionalID, req.Date.Format(domain.DateFormat), req.TimezoneOffsetMinutes, req.DurationMinutes)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Границы локального дня клиента как абсолютные моменты
	window := domain.NewDayWindowFromDate(req.Date, req.TimezoneOffsetMinutes)

	// 3. Снимок занятости: неотменённые приёмы профессионала за день
	occupied, err := uc.appointmentRepo.GetByProfessionalInRange(ctx, req.ProfessionalID, window.Start, window.End, false)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to load occupancy for professional=%d: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: failed to load occupancy: %v", ErrInternal, err)
	}

	// 4. Генерация и фильтрация кандидатов
	free := generateFreeSlots(window, uc.schedule, req.DurationMinutes, occupied)
	taken := takenSlots(window, occupied)

	uc.logger.Info("GetAvailableSlots: professional=%d, date=%s: %d free, %d taken",
		req.ProfessionalID, req.Date.Format(domain.DateFormat), len(free), len(taken))

	return &Response{
		Date:                  req.Date,
		ProfessionalID:        req.ProfessionalID,
		TimezoneOffsetMinutes: req.TimezoneOffsetMinutes,
		DurationMinutes:       req.DurationMinutes,
		FreeSlots:             free,
		TakenSlots:            taken,
	}, nil
}
