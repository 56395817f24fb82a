package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/Clinic-SchedulingService/internal/api/handlers"
	"github.com/m04kA/Clinic-SchedulingService/internal/domain"
	getAvailableSlots "github.com/m04kA/Clinic-SchedulingService/internal/usecase/get_available_slots"
)

const (
	msgInvalidProfessionalID = "некорректный ID профессионала"
	msgMissingDate           = "дата обязательна"
	msgInvalidDate           = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidOffset         = "некорректное смещение часового пояса"
	msgInvalidDuration       = "некорректная длительность приёма"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/professionals/{professionalId}/available-slots
// Query params: date (required, YYYY-MM-DD), timezoneOffset (опционально, минуты),
// duration (опционально, минуты)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем professionalId из URL
	professionalIDStr := vars["professionalId"]
	professionalID, err := strconv.ParseInt(professionalIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /professionals/{id}/available-slots - Invalid professional ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProfessionalID)
		return
	}

	// Извлекаем date из query параметров
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /professionals/{id}/available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	// Извлекаем timezoneOffset из query параметров (по умолчанию 0 = UTC)
	timezoneOffset := 0
	if offsetStr := r.URL.Query().Get("timezoneOffset"); offsetStr != "" {
		timezoneOffset, err = strconv.Atoi(offsetStr)
		if err != nil {
			h.logger.Warn("GET /professionals/{id}/available-slots - Invalid timezone offset: %v", err)
			handlers.RespondBadRequest(w, msgInvalidOffset)
			return
		}
	}

	// Извлекаем duration из query параметров (по умолчанию длительность клиники)
	duration := domain.DefaultDurationMinutes
	if durationStr := r.URL.Query().Get("duration"); durationStr != "" {
		duration, err = strconv.Atoi(durationStr)
		if err != nil {
			h.logger.Warn("GET /professionals/{id}/available-slots - Invalid duration: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDuration)
			return
		}
	}

	// Формируем запрос к use case (с парсингом даты)
	useCaseReq, err := ToUseCaseRequest(professionalID, dateStr, timezoneOffset, duration)
	if err != nil {
		h.logger.Warn("GET /professionals/{id}/available-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /professionals/{id}/available-slots - Validation failed: professional_id=%d, error=%v",
				professionalID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /professionals/{id}/available-slots - Failed to get slots: professional_id=%d, error=%v",
				professionalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("GET /professionals/{id}/available-slots - Slots retrieved successfully: professional_id=%d, free=%d, taken=%d",
		professionalID, len(result.FreeSlots), len(result.TakenSlots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
