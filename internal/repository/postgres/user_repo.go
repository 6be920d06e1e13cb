package postgres

import (
	"gorm.io/gorm"

	"github.com/yourusername/game-relay-api/internal/domain/entity"
	apperrors "github.com/yourusername/game-relay-api/internal/pkg/errors"
)

// UserRepo реализует repository.UserRepository
type UserRepo struct {
	db *gorm.DB
}

// NewUserRepo создает новый репозиторий пользователей
func NewUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{db: db}
}

// GetByEmail возвращает пользователя по email через хранимую функцию login_usuario.
// Поиск намеренно оставлен в хранимой функции, как в исходной схеме БД.
func (r *UserRepo) GetByEmail(email string) (*entity.User, error) {
	var user entity.User
	result := r.db.Raw(
		"SELECT id_usuario, nombre_usuario, correo, genero, contrasena_hash FROM login_usuario(?)",
		email,
	).Scan(&user)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &user, nil
}
