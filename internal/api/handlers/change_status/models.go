package change_status

import (
	changeStatus "github.com/m04kA/Clinic-SchedulingService/internal/usecase/change_status"
)

// ChangeStatusRequest HTTP request model
type ChangeStatusRequest struct {
	Status        string  `json:"status"`
	RequestedBy   *string `json:"requestedBy,omitempty"`   // Обязателен при status = cancelled
	CancelledByID *int64  `json:"cancelledById,omitempty"` // Опционален при status = cancelled
}

// AppointmentStatusInfo краткие сведения о приёме после смены статуса
type AppointmentStatusInfo struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}

// ChangeStatusResponse HTTP response model
type ChangeStatusResponse struct {
	Message              string                `json:"message"`
	Appointment          AppointmentStatusInfo `json:"appointment"`
	RequiresClinicalNote bool                  `json:"requiresClinicalNote"`
}

// ToUseCaseRequest конвертирует HTTP request в запрос use case
func (r *ChangeStatusRequest) ToUseCaseRequest(appointmentID int64) *changeStatus.Request {
	return &changeStatus.Request{
		AppointmentID: appointmentID,
		Status:        r.Status,
		RequestedBy:   r.RequestedBy,
		CancelledByID: r.CancelledByID,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *changeStatus.Response, message string) *ChangeStatusResponse {
	return &ChangeStatusResponse{
		Message: message,
		Appointment: AppointmentStatusInfo{
			ID:     resp.AppointmentID,
			Status: resp.Status,
		},
		RequiresClinicalNote: resp.RequiresClinicalNote,
	}
}
