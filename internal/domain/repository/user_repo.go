package repository

import (
	"github.com/yourusername/game-relay-api/internal/domain/entity"
)

// UserRepository определяет методы для чтения пользователей.
// Регистрация и изменение пользователей — вне зоны ответственности сервиса.
type UserRepository interface {
	// GetByEmail ищет пользователя по email через хранимую функцию login_usuario.
	// Возвращает apperrors.ErrNotFound, если пользователь не найден.
	GetByEmail(email string) (*entity.User, error)
}
