package repository

import (
	"time"
)

// CacheRepository определяет методы для работы с кешем
type CacheRepository interface {
	Delete(key string) error
	SetJSON(key string, value interface{}, expiration time.Duration) error
	// GetJSON возвращает apperrors.ErrNotFound при отсутствии ключа
	GetJSON(key string, dest interface{}) error
}
