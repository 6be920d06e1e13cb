package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/game-relay-api/internal/domain/entity"
	"github.com/yourusername/game-relay-api/internal/service"
)

func newLeaderboardHandler(lbRepo *MockLeaderboardRepository) *LeaderboardHandler {
	return NewLeaderboardHandler(service.NewLeaderboardService(lbRepo, nil))
}

func TestGetLeaderboard_ReturnsRankedPage(t *testing.T) {
	lbRepo := new(MockLeaderboardRepository)
	lbRepo.On("ListAll").Return([]entity.LeaderboardEntry{
		{UserID: 1, TotalScore: 900},
		{UserID: 2, TotalScore: 700},
		{UserID: 3, TotalScore: 500},
	}, nil)

	handler := newLeaderboardHandler(lbRepo)

	c, w := newTestGinContext("GET", "/leaderboard?page=1&page_size=2", nil)
	handler.GetLeaderboard(c)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := parseJSONResponse(t, w)
	assert.Equal(t, float64(3), resp["total"])

	entries, ok := resp["entries"].([]interface{})
	require.True(t, ok)
	require.Len(t, entries, 2)

	first := entries[0].(map[string]interface{})
	assert.Equal(t, float64(1), first["rank"])
	assert.Equal(t, float64(900), first["puntuacion_total"])
}

func TestGetLeaderboard_InvalidPaginationFallsBack(t *testing.T) {
	lbRepo := new(MockLeaderboardRepository)
	lbRepo.On("ListAll").Return([]entity.LeaderboardEntry{}, nil)

	handler := newLeaderboardHandler(lbRepo)

	c, w := newTestGinContext("GET", "/leaderboard?page=abc&page_size=-5", nil)
	handler.GetLeaderboard(c)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := parseJSONResponse(t, w)
	assert.Equal(t, float64(1), resp["page"])
	assert.Equal(t, float64(10), resp["per_page"])
}

func TestExportLeaderboard_ReturnsXLSX(t *testing.T) {
	lbRepo := new(MockLeaderboardRepository)
	lbRepo.On("ListAll").Return([]entity.LeaderboardEntry{
		{UserID: 1, TotalScore: 900},
		{UserID: 2, TotalScore: 700},
	}, nil)

	handler := newLeaderboardHandler(lbRepo)

	c, w := newTestGinContext("GET", "/leaderboard/export", nil)
	handler.ExportLeaderboard(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".xlsx")
	// XLSX — это zip: проверяем сигнатуру PK
	body := w.Body.Bytes()
	require.True(t, len(body) > 2)
	assert.Equal(t, byte('P'), body[0])
	assert.Equal(t, byte('K'), body[1])
}
