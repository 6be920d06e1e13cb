package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/game-relay-api/internal/handler/dto"
	apperrors "github.com/yourusername/game-relay-api/internal/pkg/errors"
	"github.com/yourusername/game-relay-api/internal/service"
)

// Сообщения клиенту — дословно из исходного API, менять нельзя:
// игровой клиент сравнивает строки.
const (
	msgLoginFieldsRequired = "Correo y contraseña son requeridos."
	msgLoginFailed         = "Correo o contraseña incorrectos."
	msgLoginOK             = "Login exitoso."
	msgInternalError       = "Error interno del servidor."
)

// AuthHandler обрабатывает запросы аутентификации
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler создает новый обработчик аутентификации
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login обрабатывает POST /login.
// 400 — нет email или пароля; 401 — неизвестный email ИЛИ неверный пароль
// (одно сообщение на оба случая); 500 — ошибка хранилища.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": msgLoginFieldsRequired})
		return
	}
	if req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": msgLoginFieldsRequired})
		return
	}

	user, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": msgLoginFailed})
			return
		}
		log.Printf("[AuthHandler] Ошибка логина: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": msgInternalError})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": msgLoginOK,
		"user": dto.LoginUserDTO{
			ID:       user.ID,
			Username: user.Username,
			Gender:   user.Gender,
		},
	})
}
