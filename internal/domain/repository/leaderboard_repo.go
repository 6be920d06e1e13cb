package repository

import (
	"github.com/yourusername/game-relay-api/internal/domain/entity"
)

// LeaderboardRepository определяет методы для работы с таблицей leaderboard
type LeaderboardRepository interface {
	// UpsertScore сохраняет итоговый счёт пользователя двухшаговой схемой
	// UPDATE → INSERT. Возвращает created=true, если строка была создана
	// впервые. Последовательность НЕ атомарна: см. комментарий в реализации.
	UpsertScore(userID uint, totalScore int64) (created bool, err error)

	// ListAll возвращает весь лидерборд по убыванию счёта.
	// Пагинация и экспорт выполняются поверх полного списка.
	ListAll() ([]entity.LeaderboardEntry, error)
}
