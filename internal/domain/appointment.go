package domain

import "time"

// AppointmentStatus represents the lifecycle status of an appointment
type AppointmentStatus string

const (
	StatusScheduled     AppointmentStatus = "scheduled"
	StatusCheckedIn     AppointmentStatus = "checked_in"
	StatusCompletedSeen AppointmentStatus = "completed_seen"
	StatusNoShow        AppointmentStatus = "no_show"
	StatusCancelled     AppointmentStatus = "cancelled"
)

// Appointment represents a booked visit of a patient with a professional
type Appointment struct {
	ID              int64
	PatientID       int64
	ProfessionalID  int64
	StartTime       time.Time // абсолютный момент, хранится и сравнивается в UTC
	DurationMinutes int
	Status          AppointmentStatus
	Reason          string
	Detail          string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOccupying returns true if the appointment blocks its time interval.
// Отменённый приём освобождает слот, все остальные статусы занимают его.
func (a *Appointment) IsOccupying() bool {
	return a.Status != StatusCancelled
}

// IsCancelled returns true if the appointment has been cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCancelled
}

// EndTime returns the exclusive end instant of the appointment interval
func (a *Appointment) EndTime() time.Time {
	return a.StartTime.Add(time.Duration(a.DurationMinutes) * time.Minute)
}

// CancellationActor identifies who requested a cancellation
type CancellationActor string

const (
	CancelledByPatient      CancellationActor = "patient"
	CancelledByProfessional CancellationActor = "professional"
)

// CancellationLog is the audit record of a cancellation.
// На один приём существует не более одной записи (upsert по appointment_id).
type CancellationLog struct {
	AppointmentID int64
	RequestedBy   CancellationActor
	CancelledByID *int64
	CancelledAt   time.Time
}

// ProfessionalAppointmentsFilter фильтр для выборки приёмов профессионала
type ProfessionalAppointmentsFilter struct {
	ProfessionalID  int64              // Обязательный параметр
	RangeStart      *time.Time         // Начало периода (опционально)
	RangeEnd        *time.Time         // Конец периода (опционально)
	Status          *AppointmentStatus // Фильтр по статусу (опционально)
	IncludeInactive bool               // Включать ли отменённые приёмы
}
