package change_status

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/Clinic-SchedulingService/internal/api/handlers"
	changeStatus "github.com/m04kA/Clinic-SchedulingService/internal/usecase/change_status"
)

const (
	msgInvalidAppointmentID = "некорректный ID приёма"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgNotFound             = "приём не найден"
	msgCancelledTerminal    = "отменённый приём нельзя перевести в другой статус"
	msgInvalidTransition    = "недопустимый переход между статусами"
	msgStatusChanged        = "статус приёма обновлён"
	msgStatusUnchanged      = "приём уже находится в запрошенном статусе"
)

type Handler struct {
	useCase ChangeStatusUseCase
	logger  Logger
}

func NewHandler(useCase ChangeStatusUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/appointments/{appointmentId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем appointmentId из URL
	vars := mux.Vars(r)
	appointmentIDStr := vars["appointmentId"]

	appointmentID, err := strconv.ParseInt(appointmentIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /appointments/{id}/status - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	// Декодируем body
	var req ChangeStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /appointments/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(appointmentID))
	if err != nil {
		switch {
		case errors.Is(err, changeStatus.ErrInvalidInput):
			h.logger.Warn("PATCH /appointments/{id}/status - Validation failed: appointment_id=%d, error=%v",
				appointmentID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, changeStatus.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /appointments/{id}/status - Appointment not found: appointment_id=%d", appointmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, changeStatus.ErrCancelledTerminal):
			h.logger.Warn("PATCH /appointments/{id}/status - Appointment is cancelled: appointment_id=%d", appointmentID)
			handlers.RespondConflict(w, msgCancelledTerminal)

		case errors.Is(err, changeStatus.ErrInvalidTransition):
			h.logger.Warn("PATCH /appointments/{id}/status - Invalid transition: appointment_id=%d, target=%s",
				appointmentID, req.Status)
			handlers.RespondConflict(w, msgInvalidTransition)

		default:
			h.logger.Error("PATCH /appointments/{id}/status - Failed to change status: appointment_id=%d, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	message := msgStatusChanged
	if !result.Changed {
		message = msgStatusUnchanged
	}

	h.logger.Info("PATCH /appointments/{id}/status - Status changed successfully: appointment_id=%d, status=%s, changed=%t",
		appointmentID, result.Status, result.Changed)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result, message))
}
