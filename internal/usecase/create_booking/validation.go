package create_booking

import (
	"fmt"
	"strings"

	"github.com/m04kA/Clinic-SchedulingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.PatientID <= 0 {
		return fmt.Errorf("%w: patientID must be positive", ErrInvalidInput)
	}

	if req.ProfessionalID <= 0 {
		return fmt.Errorf("%w: professionalID must be positive", ErrInvalidInput)
	}

	// Проверяем, что момент начала указан
	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	// Длительность: 0 означает длительность по умолчанию
	if req.DurationMinutes != 0 && !domain.IsAllowedDuration(req.DurationMinutes) {
		return fmt.Errorf("%w: durationMinutes must be one of %v", ErrInvalidInput, domain.AllowedDurations)
	}

	if strings.TrimSpace(req.Reason) == "" {
		return fmt.Errorf("%w: reason is required", ErrInvalidInput)
	}
	if len(req.Reason) > domain.MaxReasonLength {
		return fmt.Errorf("%w: reason exceeds %d characters", ErrInvalidInput, domain.MaxReasonLength)
	}

	if strings.TrimSpace(req.Detail) == "" {
		return fmt.Errorf("%w: detail is required", ErrInvalidInput)
	}
	if len(req.Detail) > domain.MaxDetailLength {
		return fmt.Errorf("%w: detail exceeds %d characters", ErrInvalidInput, domain.MaxDetailLength)
	}

	// Начальный статус, если указан, должен быть известным значением
	if req.Status != nil {
		if _, ok := domain.ParseStatus(*req.Status); !ok {
			return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *req.Status)
		}
	}

	return nil
}

// resolveDuration возвращает длительность запроса с учётом значения по умолчанию
func resolveDuration(req *Request) int {
	if req.DurationMinutes == 0 {
		return domain.DefaultDurationMinutes
	}
	return req.DurationMinutes
}

// resolveStatus возвращает начальный статус приёма с учётом значения по умолчанию
func resolveStatus(req *Request) domain.AppointmentStatus {
	if req.Status == nil {
		return domain.StatusScheduled
	}
	status, _ := domain.ParseStatus(*req.Status)
	return status
}
