package handler

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/yourusername/game-relay-api/internal/service"
)

// LeaderboardHandler обрабатывает чтение и экспорт лидерборда
type LeaderboardHandler struct {
	leaderboardService *service.LeaderboardService
}

// NewLeaderboardHandler создает новый обработчик лидерборда
func NewLeaderboardHandler(leaderboardService *service.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{leaderboardService: leaderboardService}
}

// GetLeaderboard обрабатывает GET /leaderboard с пагинацией через query
func (h *LeaderboardHandler) GetLeaderboard(c *gin.Context) {
	pageStr := c.DefaultQuery("page", "1")
	pageSizeStr := c.DefaultQuery("page_size", "10")

	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		page = 1
	}

	pageSize, err := strconv.Atoi(pageSizeStr)
	if err != nil || pageSize < 1 {
		pageSize = 10
	} else if pageSize > 100 {
		pageSize = 100
	}

	leaderboard, err := h.leaderboardService.GetPage(page, pageSize)
	if err != nil {
		log.Printf("[LeaderboardHandler] Ошибка получения лидерборда: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": msgInternalError})
		return
	}

	c.JSON(http.StatusOK, leaderboard)
}

// ExportLeaderboard обрабатывает GET /leaderboard/export и отдаёт XLSX.
// StreamWriter пишет строки потоково, без удержания всего файла в памяти.
func (h *LeaderboardHandler) ExportLeaderboard(c *gin.Context) {
	entries, err := h.leaderboardService.GetAll()
	if err != nil {
		log.Printf("[LeaderboardHandler] Ошибка получения лидерборда для экспорта: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": msgInternalError})
		return
	}

	filename := fmt.Sprintf("leaderboard_%s", time.Now().Format("2006-01-02"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.xlsx\"", filename))

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Leaderboard"
	f.SetSheetName("Sheet1", sheetName)

	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		log.Printf("[LeaderboardHandler] Ошибка создания StreamWriter: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": msgInternalError})
		return
	}

	headers := []interface{}{"Puesto", "ID Usuario", "Puntuación Total"}
	if err := sw.SetRow("A1", headers); err != nil {
		log.Printf("[LeaderboardHandler] Ошибка записи заголовков: %v", err)
	}

	for i, e := range entries {
		rowNum := i + 2 // Данные со второй строки, первая — заголовки
		cell := fmt.Sprintf("A%d", rowNum)
		row := []interface{}{i + 1, e.UserID, e.TotalScore}
		if err := sw.SetRow(cell, row); err != nil {
			log.Printf("[LeaderboardHandler] Ошибка записи строки %d: %v", rowNum, err)
		}
	}

	if err := sw.Flush(); err != nil {
		log.Printf("[LeaderboardHandler] Ошибка при Flush: %v", err)
	}

	if err := f.Write(c.Writer); err != nil {
		log.Printf("[LeaderboardHandler] Ошибка записи Excel в response: %v", err)
	}
}
