package get_professional_appointments

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/Clinic-SchedulingService/internal/api/handlers"
	"github.com/m04kA/Clinic-SchedulingService/internal/domain"
	"github.com/m04kA/Clinic-SchedulingService/internal/service/appointments"
	"github.com/m04kA/Clinic-SchedulingService/internal/service/appointments/models"
)

const (
	msgInvalidProfessionalID = "некорректный ID профессионала"
	msgInvalidFromDate       = "некорректный формат параметра from, ожидается YYYY-MM-DD"
	msgInvalidToDate         = "некорректный формат параметра to, ожидается YYYY-MM-DD"
	msgInvalidFilter         = "некорректные параметры фильтрации"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/professionals/{professionalId}/appointments
// Query params: from, to (YYYY-MM-DD, опционально), status (опционально),
// includeInactive (true/false, опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем professionalId из URL
	vars := mux.Vars(r)
	professionalIDStr := vars["professionalId"]

	professionalID, err := strconv.ParseInt(professionalIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /professionals/{id}/appointments - Invalid professional ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProfessionalID)
		return
	}

	// Формируем запрос к сервису из query параметров
	req := &models.GetProfessionalAppointmentsRequest{
		ProfessionalID: professionalID,
	}

	query := r.URL.Query()

	if fromStr := query.Get("from"); fromStr != "" {
		from, err := time.Parse(domain.DateFormat, fromStr)
		if err != nil {
			h.logger.Warn("GET /professionals/{id}/appointments - Invalid from date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFromDate)
			return
		}
		req.From = &from
	}

	if toStr := query.Get("to"); toStr != "" {
		to, err := time.Parse(domain.DateFormat, toStr)
		if err != nil {
			h.logger.Warn("GET /professionals/{id}/appointments - Invalid to date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidToDate)
			return
		}
		// Конец периода - включительно до конца дня
		to = to.Add(24*time.Hour - time.Millisecond)
		req.To = &to
	}

	if statusStr := query.Get("status"); statusStr != "" {
		req.Status = &statusStr
	}

	if includeStr := query.Get("includeInactive"); includeStr != "" {
		req.IncludeInactive = includeStr == "true"
	}

	// Получаем приёмы профессионала
	result, err := h.service.GetProfessionalAppointments(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /professionals/{id}/appointments - Validation failed: professional_id=%d, error=%v",
				professionalID, err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /professionals/{id}/appointments - Failed to get appointments: professional_id=%d, error=%v",
				professionalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /professionals/{id}/appointments - Appointments retrieved successfully: professional_id=%d, count=%d",
		professionalID, len(result.Appointments))
	handlers.RespondJSON(w, http.StatusOK, result)
}
