package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/game-relay-api/internal/domain/entity"
	"github.com/yourusername/game-relay-api/internal/handler/dto"
	"github.com/yourusername/game-relay-api/internal/service"
)

const (
	msgScoreFieldsRequired = "Se requiere userId y finalScore."
	msgScoreCreated        = "Puntuación guardada por primera vez."
	msgScoreUpdated        = "Puntuación actualizada correctamente."
	msgStatsUserRequired   = "Se requiere userId."
	msgStatsSaved          = "Estadísticas finales guardadas correctamente."
)

// ProgressHandler обрабатывает сохранение счёта и статистики
type ProgressHandler struct {
	progressService *service.ProgressService
}

// NewProgressHandler создает новый обработчик игрового прогресса
func NewProgressHandler(progressService *service.ProgressService) *ProgressHandler {
	return &ProgressHandler{progressService: progressService}
}

// UpdateScore обрабатывает POST /update-score.
// userId и finalScore обязательны; ноль — валидное значение, поэтому
// в DTO указатели, и проверяется именно отсутствие поля.
func (h *ProgressHandler) UpdateScore(c *gin.Context) {
	var req dto.UpdateScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": msgScoreFieldsRequired})
		return
	}
	if req.UserID == nil || req.FinalScore == nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": msgScoreFieldsRequired})
		return
	}

	created, err := h.progressService.SaveScore(*req.UserID, *req.FinalScore)
	if err != nil {
		log.Printf("[ProgressHandler] Ошибка сохранения счёта для пользователя ID=%d: %v", *req.UserID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": msgInternalError})
		return
	}

	message := msgScoreUpdated
	if created {
		message = msgScoreCreated
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": message})
}

// UpdateStats обрабатывает POST /update-stats.
// Обязателен только userId; пропущенные счётчики сохраняются нулями.
func (h *ProgressHandler) UpdateStats(c *gin.Context) {
	var req dto.UpdateStatsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": msgStatsUserRequired})
		return
	}
	if req.UserID == nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": msgStatsUserRequired})
		return
	}

	record := &entity.StatsRecord{
		UserID:             *req.UserID,
		MissionsCompleted:  req.MissionsCompleted,
		ItemsObtained:      req.ItemsObtained,
		EnemiesNeutralized: req.EnemiesNeutralized,
		TotalPlayTime:      req.TotalPlayTime,
	}

	if _, err := h.progressService.SaveStats(record); err != nil {
		log.Printf("[ProgressHandler] Ошибка сохранения статистики для пользователя ID=%d: %v", *req.UserID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": msgInternalError})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": msgStatsSaved})
}
