package domain

import "time"

// Overlaps проверяет пересечение двух полуоткрытых интервалов
// [aStart, aStart+aMinutes) и [bStart, bStart+bMinutes).
//
// Граничные случаи пересечением НЕ считаются: приём, заканчивающийся ровно
// в момент начала другого, не конфликтует с ним.
//
// Это единственный предикат пересечения в сервисе - его используют и генерация
// слотов, и проверка конфликтов при бронировании.
func Overlaps(aStart time.Time, aMinutes int, bStart time.Time, bMinutes int) bool {
	aEnd := aStart.Add(time.Duration(aMinutes) * time.Minute)
	bEnd := bStart.Add(time.Duration(bMinutes) * time.Minute)
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// OverlapsAny проверяет пересечение интервала с любым из занимающих время приёмов
func OverlapsAny(start time.Time, minutes int, appointments []*Appointment) bool {
	for _, appt := range appointments {
		if !appt.IsOccupying() {
			continue
		}
		if Overlaps(start, minutes, appt.StartTime, appt.DurationMinutes) {
			return true
		}
	}
	return false
}
