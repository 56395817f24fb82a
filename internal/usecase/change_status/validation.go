package change_status

import (
	"fmt"
	"strings"

	"github.com/m04kA/Clinic-SchedulingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) (domain.AppointmentStatus, error) {
	if req.AppointmentID <= 0 {
		return "", fmt.Errorf("%w: appointmentID must be positive", ErrInvalidInput)
	}

	target, ok := domain.ParseStatus(req.Status)
	if !ok {
		return "", fmt.Errorf("%w: unknown status %q", ErrInvalidInput, req.Status)
	}

	return target, nil
}

// validateCancellation валидирует поля, обязательные при переходе в cancelled
func validateCancellation(req *Request) (domain.CancellationActor, error) {
	if req.RequestedBy == nil {
		return "", fmt.Errorf("%w: requestedBy is required for cancellation", ErrInvalidInput)
	}

	actor, err := parseActor(*req.RequestedBy)
	if err != nil {
		return "", err
	}

	if req.CancelledByID != nil && *req.CancelledByID <= 0 {
		return "", fmt.Errorf("%w: cancelledById must be positive", ErrInvalidInput)
	}

	return actor, nil
}

// parseActor разбирает инициатора отмены (без учёта регистра)
func parseActor(s string) (domain.CancellationActor, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(domain.CancelledByPatient):
		return domain.CancelledByPatient, nil
	case string(domain.CancelledByProfessional):
		return domain.CancelledByProfessional, nil
	default:
		return "", fmt.Errorf("%w: requestedBy must be %q or %q",
			ErrInvalidInput, domain.CancelledByPatient, domain.CancelledByProfessional)
	}
}
