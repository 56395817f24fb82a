package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/Clinic-SchedulingService/internal/domain"
	"github.com/m04kA/Clinic-SchedulingService/internal/integrations/patientservice"
	"github.com/m04kA/Clinic-SchedulingService/internal/integrations/professionalservice"
)

// AppointmentRepository интерфейс репозитория приёмов
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error)
	GetByProfessionalInRange(ctx context.Context, professionalID int64, rangeStart, rangeEnd time.Time, includeCancelled bool) ([]*domain.Appointment, error)
}

// PatientServiceClient интерфейс клиента для PatientService
type PatientServiceClient interface {
	GetPatient(ctx context.Context, patientID int64) (*patientservice.Patient, error)
}

// ProfessionalServiceClient интерфейс клиента для ProfessionalService
type ProfessionalServiceClient interface {
	GetProfessional(ctx context.Context, professionalID int64) (*professionalservice.Professional, error)
}

// ClinicalRecordsClient интерфейс клиента для ClinicalRecords
type ClinicalRecordsClient interface {
	AppendEntry(ctx context.Context, patientID, professionalID int64, note string) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
