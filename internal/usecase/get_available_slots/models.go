package get_available_slots

import (
	"time"

	"github.com/m04kA/Clinic-SchedulingService/pkg/types"
)

// Request модель запроса на получение свободных слотов
type Request struct {
	ProfessionalID        int64     // ID профессионала
	Date                  time.Time // Дата, на которую запрашиваются слоты (без времени)
	TimezoneOffsetMinutes int       // Смещение клиента относительно UTC в минутах (0 = UTC)
	DurationMinutes       int       // Запрошенная длительность приёма
}

// Response модель ответа со свободными и занятыми слотами
type Response struct {
	Date                  time.Time          // Дата запроса
	ProfessionalID        int64              // ID профессионала
	TimezoneOffsetMinutes int                // Смещение клиента
	DurationMinutes       int                // Длительность, для которой считались слоты
	FreeSlots             []types.TimeString // Свободные слоты, по возрастанию
	TakenSlots            []types.TimeString // Метки начала занятых приёмов (для отображения)
}
