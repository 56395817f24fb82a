package change_status

import (
	"github.com/m04kA/Clinic-SchedulingService/internal/domain"
)

// allowedTransitions описывает граф допустимых переходов между статусами.
// cancelled терминален: исходящих переходов нет. Переходы, не перечисленные
// здесь, запрещены (неизвестная пара статусов трактуется как запрет)
var allowedTransitions = map[domain.AppointmentStatus][]domain.AppointmentStatus{
	domain.StatusScheduled: {
		domain.StatusCheckedIn,
		domain.StatusCompletedSeen,
		domain.StatusNoShow,
		domain.StatusCancelled,
	},
	domain.StatusCheckedIn: {
		domain.StatusScheduled,
		domain.StatusCompletedSeen,
		domain.StatusNoShow,
		domain.StatusCancelled,
	},
	domain.StatusCompletedSeen: {
		domain.StatusCancelled,
	},
	domain.StatusNoShow: {
		domain.StatusCancelled,
	},
}

// canTransition сообщает, допустим ли переход from -> to
func canTransition(from, to domain.AppointmentStatus) bool {
	for _, allowed := range allowedTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
