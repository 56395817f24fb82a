package get_available_slots

import (
	"time"

	"github.com/m04kA/Clinic-SchedulingService/internal/domain"
	getAvailableSlots "github.com/m04kA/Clinic-SchedulingService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date                  string   `json:"date"`
	ProfessionalID        int64    `json:"professionalId"`
	TimezoneOffsetMinutes int      `json:"timezoneOffsetMinutes"`
	DurationMinutes       int      `json:"durationMinutes"`
	FreeSlots             []string `json:"freeSlots"`
	TakenSlots            []string `json:"takenSlots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	free := make([]string, len(resp.FreeSlots))
	for i, slot := range resp.FreeSlots {
		free[i] = slot.String()
	}

	taken := make([]string, len(resp.TakenSlots))
	for i, slot := range resp.TakenSlots {
		taken[i] = slot.String()
	}

	return &AvailableSlotsResponse{
		Date:                  resp.Date.Format(domain.DateFormat),
		ProfessionalID:        resp.ProfessionalID,
		TimezoneOffsetMinutes: resp.TimezoneOffsetMinutes,
		DurationMinutes:       resp.DurationMinutes,
		FreeSlots:             free,
		TakenSlots:            taken,
	}
}

// ToUseCaseRequest создает запрос use case из параметров запроса
func ToUseCaseRequest(professionalID int64, dateStr string, timezoneOffset, duration int) (*getAvailableSlots.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		ProfessionalID:        professionalID,
		Date:                  date,
		TimezoneOffsetMinutes: timezoneOffset,
		DurationMinutes:       duration,
	}, nil
}
