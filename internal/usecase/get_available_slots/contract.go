package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/Clinic-SchedulingService/internal/domain"
)

// AppointmentRepository интерфейс репозитория приёмов
type AppointmentRepository interface {
	// GetByProfessionalInRange получает приёмы профессионала, начинающиеся в указанном интервале
	GetByProfessionalInRange(ctx context.Context, professionalID int64, rangeStart, rangeEnd time.Time, includeCancelled bool) ([]*domain.Appointment, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
