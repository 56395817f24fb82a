package create_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/Clinic-SchedulingService/internal/api/handlers"
	createBooking "github.com/m04kA/Clinic-SchedulingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidStartTime     = "некорректный формат startTime, ожидается ISO 8601"
	msgPatientNotFound      = "пациент не найден"
	msgProfessionalNotFound = "профессионал не найден"
	msgScheduleConflict     = "выбранное время пересекается с существующим приёмом"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Декодируем body
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем в запрос use case (с парсингом времени начала)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /appointments - Invalid startTime format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStartTime)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Validation failed: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, createBooking.ErrPatientNotFound):
			h.logger.Warn("POST /appointments - Patient not found: patient_id=%d", req.PatientID)
			handlers.RespondNotFound(w, msgPatientNotFound)

		case errors.Is(err, createBooking.ErrProfessionalNotFound):
			h.logger.Warn("POST /appointments - Professional not found: professional_id=%d", req.ProfessionalID)
			handlers.RespondNotFound(w, msgProfessionalNotFound)

		case errors.Is(err, createBooking.ErrScheduleConflict):
			h.logger.Warn("POST /appointments - Schedule conflict: professional_id=%d, start_time=%s",
				req.ProfessionalID, req.StartTime)
			handlers.RespondConflict(w, msgScheduleConflict)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: patient_id=%d, professional_id=%d, error=%v",
				req.PatientID, req.ProfessionalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created successfully: appointment_id=%d, patient_id=%d, professional_id=%d",
		result.ID, result.PatientID, result.ProfessionalID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
