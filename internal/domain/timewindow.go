package domain

import (
	"time"

	"github.com/m04kA/Clinic-SchedulingService/pkg/types"
)

// Приёмы хранятся как абсолютные моменты (UTC), но границы дня и метки слотов
// ("09:00") имеют смысл только в локальном календаре клиента. Смещение клиента
// задаётся в минутах: локальное время = UTC - offset (семантика getTimezoneOffset).
// Вся арифметика с этим смещением собрана здесь и нигде не дублируется.

// DayWindow абсолютные границы локального календарного дня
type DayWindow struct {
	Start         time.Time // локальная полночь как абсолютный момент
	End           time.Time // локальные 23:59:59.999 как абсолютный момент
	OffsetMinutes int
}

// NewDayWindow строит границы локального дня для даты (год, месяц, день)
// и смещения клиента в минутах относительно UTC
func NewDayWindow(year int, month time.Month, day int, offsetMinutes int) DayWindow {
	offset := time.Duration(offsetMinutes) * time.Minute
	utcMidnight := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return DayWindow{
		Start:         utcMidnight.Add(offset),
		End:           utcMidnight.Add(24*time.Hour - time.Millisecond).Add(offset),
		OffsetMinutes: offsetMinutes,
	}
}

// NewDayWindowFromDate строит границы локального дня из time.Time (берёт только дату)
func NewDayWindowFromDate(date time.Time, offsetMinutes int) DayWindow {
	y, m, d := date.Date()
	return NewDayWindow(y, m, d, offsetMinutes)
}

// InstantAt возвращает абсолютный момент для локальной минуты дня
// (например, 540 -> локальные 09:00 этого дня)
func (w DayWindow) InstantAt(minuteOfDay int) time.Time {
	return w.Start.Add(time.Duration(minuteOfDay) * time.Minute)
}

// LocalLabel возвращает локальную метку "HH:MM" для абсолютного момента
func (w DayWindow) LocalLabel(t time.Time) types.TimeString {
	return types.NewTimeString(t.UTC().Add(-time.Duration(w.OffsetMinutes) * time.Minute))
}

// LocalMinuteOfDay возвращает локальную минуту дня для абсолютного момента
func (w DayWindow) LocalMinuteOfDay(t time.Time) int {
	local := t.UTC().Add(-time.Duration(w.OffsetMinutes) * time.Minute)
	return local.Hour()*60 + local.Minute()
}

// Contains проверяет, что момент попадает в границы дня (включительно)
func (w DayWindow) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}
