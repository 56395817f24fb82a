package domain

// Schedule фиксированное дневное расписание генерации слотов.
// Окно и шаг общие для всех профессионалов; индивидуальные календари
// рабочих часов сервис не ведёт.
type Schedule struct {
	DayStartMinutes        int // начало окна, минуты с начала локальных суток
	DayEndMinutes          int // конец окна (эксклюзивно для конца слота)
	StepMinutes            int
	DefaultDurationMinutes int
}

// DefaultSchedule возвращает расписание клиники по умолчанию: 09:00-17:00, шаг 15 минут
func DefaultSchedule() Schedule {
	return Schedule{
		DayStartMinutes:        DefaultDayStartMinutes,
		DayEndMinutes:          DefaultDayEndMinutes,
		StepMinutes:            DefaultSlotStepMinutes,
		DefaultDurationMinutes: DefaultDurationMinutes,
	}
}
