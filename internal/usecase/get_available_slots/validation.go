package get_available_slots

import (
	"fmt"

	"github.com/m04kA/Clinic-SchedulingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ProfessionalID <= 0 {
		return fmt.Errorf("%w: professionalID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if !domain.IsAllowedDuration(req.DurationMinutes) {
		return fmt.Errorf("%w: durationMinutes must be one of %v", ErrInvalidInput, domain.AllowedDurations)
	}

	return nil
}
