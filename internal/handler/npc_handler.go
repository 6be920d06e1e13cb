package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/game-relay-api/internal/handler/dto"
	"github.com/yourusername/game-relay-api/internal/service"
)

const (
	msgChatEmptyMessage = "El mensaje del jugador no puede estar vacío."
	msgChatUnavailable  = "El PNJ no puede responder ahora."
)

// NPCHandler обрабатывает диалог игрока с PNJ
type NPCHandler struct {
	dialogueService *service.DialogueService
}

// NewNPCHandler создает новый обработчик диалогов
func NewNPCHandler(dialogueService *service.DialogueService) *NPCHandler {
	return &NPCHandler{dialogueService: dialogueService}
}

// Chat обрабатывает POST /chat-with-npc.
// Пустая реплика — 400 до какого-либо обращения к сервису генерации.
// Любая ошибка генерации — 500 с одним и тем же сообщением.
func (h *NPCHandler) Chat(c *gin.Context) {
	var req dto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": msgChatEmptyMessage})
		return
	}
	if req.PlayerMessage == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": msgChatEmptyMessage})
		return
	}

	text, err := h.dialogueService.Chat(c.Request.Context(), req.PlayerMessage, req.NPCPersonality)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": msgChatUnavailable})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "npcResponse": text})
}
