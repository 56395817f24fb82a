package create_booking

import (
	"time"
)

// Request модель запроса на создание приёма
type Request struct {
	PatientID       int64     // ID пациента
	ProfessionalID  int64     // ID профессионала
	StartTime       time.Time // Момент начала приёма (UTC)
	DurationMinutes int       // Длительность в минутах (0 = длительность по умолчанию)
	Reason          string    // Причина обращения
	Detail          string    // Подробное описание
	Status          *string   // Начальный статус (опционально, по умолчанию scheduled)
}

// Response модель ответа с созданным приёмом
type Response struct {
	ID              int64     // ID созданного приёма
	PatientID       int64     // ID пациента
	ProfessionalID  int64     // ID профессионала
	StartTime       time.Time // Момент начала (UTC)
	DurationMinutes int       // Длительность в минутах
	Status          string    // Статус приёма
	Reason          string    // Причина обращения
	Detail          string    // Описание (со строкой аудита)
	CreatedAt       time.Time // Время создания
	UpdatedAt       time.Time // Время обновления
}
