package get_available_slots

import (
	"github.com/m04kA/Clinic-SchedulingService/internal/domain"
	"github.com/m04kA/Clinic-SchedulingService/pkg/types"
)

// generateFreeSlots перебирает кандидатов по рабочему окну дня с фиксированным
// шагом и оставляет те, чей интервал не пересекается ни с одним занимающим
// время приёмом. Результат отсортирован по возрастанию и детерминирован
// для одного и того же снимка занятости.
//
// Кандидат [m, m+duration) принимается, только если его конец не выходит
// за конец окна: последний кандидат начинается в DayEndMinutes - duration.
func generateFreeSlots(
	window domain.DayWindow,
	schedule domain.Schedule,
	durationMinutes int,
	occupied []*domain.Appointment,
) []types.TimeString {
	free := make([]types.TimeString, 0)

	for m := schedule.DayStartMinutes; m+durationMinutes <= schedule.DayEndMinutes; m += schedule.StepMinutes {
		start := window.InstantAt(m)
		if domain.OverlapsAny(start, durationMinutes, occupied) {
			continue
		}
		free = append(free, window.LocalLabel(start))
	}

	return free
}

// takenSlots возвращает локальные метки начала занимающих время приёмов
// (для отображения занятых позиций в расписании)
func takenSlots(window domain.DayWindow, occupied []*domain.Appointment) []types.TimeString {
	taken := make([]types.TimeString, 0)

	for _, appt := range occupied {
		if !appt.IsOccupying() {
			continue
		}
		taken = append(taken, window.LocalLabel(appt.StartTime))
	}

	return taken
}
