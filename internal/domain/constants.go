package domain

// Scheduling defaults
const (
	DefaultDurationMinutes = 30

	// Рабочее окно дня и шаг генерации слотов (локальное время клиники/клиента)
	DefaultDayStartMinutes = 9 * 60  // 09:00
	DefaultDayEndMinutes   = 17 * 60 // 17:00
	DefaultSlotStepMinutes = 15
)

// AllowedDurations допустимые длительности приёма в минутах
var AllowedDurations = []int{15, 30, 45, 60}

// MaxDurationMinutes максимальная допустимая длительность приёма.
// Используется при расчёте окна выборки занятости: приём, начавшийся раньше
// чем за MaxDurationMinutes до слота, пересекаться с ним уже не может.
const MaxDurationMinutes = 60

// IsAllowedDuration проверяет, что длительность входит в допустимый набор
func IsAllowedDuration(minutes int) bool {
	for _, d := range AllowedDurations {
		if d == minutes {
			return true
		}
	}
	return false
}

// Validation constants
const (
	MaxReasonLength = 200
	MaxDetailLength = 2000
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ValidStatuses все допустимые статусы приёма
var ValidStatuses = []AppointmentStatus{
	StatusScheduled,
	StatusCheckedIn,
	StatusCompletedSeen,
	StatusNoShow,
	StatusCancelled,
}

// ParseStatus конвертирует строку в AppointmentStatus, закрываясь на неизвестных значениях
func ParseStatus(s string) (AppointmentStatus, bool) {
	status := AppointmentStatus(s)
	for _, valid := range ValidStatuses {
		if status == valid {
			return status, true
		}
	}
	return "", false
}
