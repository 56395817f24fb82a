package cancellationlog

import "errors"

var (
	// ErrLogNotFound возвращается, когда запись об отмене не найдена
	ErrLogNotFound = errors.New("cancellationlog.repository: cancellation log not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("cancellationlog.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("cancellationlog.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("cancellationlog.repository: failed to scan row")
)
