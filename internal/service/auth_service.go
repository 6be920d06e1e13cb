package service

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/yourusername/game-relay-api/internal/domain/entity"
	"github.com/yourusername/game-relay-api/internal/domain/repository"
	apperrors "github.com/yourusername/game-relay-api/internal/pkg/errors"
)

// AuthService предоставляет проверку учётных данных пользователя
type AuthService struct {
	userRepo repository.UserRepository
}

// NewAuthService создает новый сервис аутентификации
func NewAuthService(userRepo repository.UserRepository) (*AuthService, error) {
	if userRepo == nil {
		return nil, fmt.Errorf("UserRepository is required for AuthService")
	}
	return &AuthService{userRepo: userRepo}, nil
}

// Login проверяет пару email/пароль и возвращает пользователя.
//
// Неизвестный email и неверный пароль возвращаются одной и той же ошибкой
// ErrUnauthorized: клиент не должен узнать, какой из двух случаев произошёл.
// Причина различается только в серверном логе. При неизвестном email сравнение
// хеша не выполняется вовсе.
func (s *AuthService) Login(email, password string) (*entity.User, error) {
	email = strings.TrimSpace(email)

	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			log.Printf("[AuthService] Логин отклонён: email не найден")
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to look up user by email: %w", err)
	}

	if !user.CheckPassword(password) {
		log.Printf("[AuthService] Логин отклонён: неверный пароль для пользователя ID=%d", user.ID)
		return nil, apperrors.ErrUnauthorized
	}

	return user, nil
}
