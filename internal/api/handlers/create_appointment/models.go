package create_appointment

import (
	"time"

	createBooking "github.com/m04kA/Clinic-SchedulingService/internal/usecase/create_booking"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	PatientID       int64   `json:"patientId"`
	ProfessionalID  int64   `json:"professionalId"`
	StartTime       string  `json:"startTime"` // ISO 8601, например "2024-06-10T10:00:00Z"
	DurationMinutes int     `json:"durationMinutes,omitempty"`
	Reason          string  `json:"reason"`
	Detail          string  `json:"detail"`
	Status          *string `json:"status,omitempty"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID              int64     `json:"id"`
	PatientID       int64     `json:"patientId"`
	ProfessionalID  int64     `json:"professionalId"`
	StartTime       string    `json:"startTime"` // ISO 8601, UTC
	DurationMinutes int       `json:"durationMinutes"`
	Status          string    `json:"status"`
	Reason          string    `json:"reason"`
	Detail          string    `json:"detail"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP request в запрос use case
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	startTime, err := time.Parse(time.RFC3339, r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		PatientID:       r.PatientID,
		ProfessionalID:  r.ProfessionalID,
		StartTime:       startTime,
		DurationMinutes: r.DurationMinutes,
		Reason:          r.Reason,
		Detail:          r.Detail,
		Status:          r.Status,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:              resp.ID,
		PatientID:       resp.PatientID,
		ProfessionalID:  resp.ProfessionalID,
		StartTime:       resp.StartTime.UTC().Format(time.RFC3339),
		DurationMinutes: resp.DurationMinutes,
		Status:          resp.Status,
		Reason:          resp.Reason,
		Detail:          resp.Detail,
		CreatedAt:       resp.CreatedAt,
		UpdatedAt:       resp.UpdatedAt,
	}
}
