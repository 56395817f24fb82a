package change_status

// Request модель запроса на смену статуса приёма
type Request struct {
	AppointmentID int64   // ID приёма
	Status        string  // Целевой статус
	RequestedBy   *string // Инициатор отмены: patient или professional (только для cancelled)
	CancelledByID *int64  // ID инициатора отмены (опционально)
}

// Response модель ответа на смену статуса
type Response struct {
	AppointmentID        int64  // ID приёма
	Status               string // Текущий статус после операции
	Changed              bool   // false, если целевой статус совпал с текущим (no-op)
	RequiresClinicalNote bool   // true, если приём переведён в completed_seen и требуется запись в медкарте
}
