package errors

import "errors"

// Общие ошибки приложения
var (
	// ErrNotFound используется, когда запись или ресурс не найдены.
	ErrNotFound = errors.New("record not found")

	// ErrUnauthorized используется при неудачной аутентификации.
	// Неизвестный email и неверный пароль намеренно неразличимы.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrValidation используется для ошибок валидации входных данных.
	ErrValidation = errors.New("validation failed")

	// ErrUnavailable используется, когда внешний сервис (БД, генерация текста)
	// недоступен или вернул ошибку. Клиенту уходит только общее сообщение.
	ErrUnavailable = errors.New("upstream service unavailable")

	// ErrConflict используется для конфликтов состояния, например нарушения
	// уникальности строки при гонке двух вставок.
	ErrConflict = errors.New("resource state conflict")
)
