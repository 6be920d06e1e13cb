package postgres

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/yourusername/game-relay-api/internal/domain/entity"
	apperrors "github.com/yourusername/game-relay-api/internal/pkg/errors"
)

// LeaderboardRepo реализует repository.LeaderboardRepository
type LeaderboardRepo struct {
	db *gorm.DB
}

// NewLeaderboardRepo создает новый репозиторий лидерборда
func NewLeaderboardRepo(db *gorm.DB) *LeaderboardRepo {
	return &LeaderboardRepo{db: db}
}

// UpsertScore выполняет двухшаговый upsert: сначала UPDATE по id_usuario,
// при нуле затронутых строк — INSERT с теми же значениями.
//
// Последовательность НЕ обёрнута в транзакцию и воспроизводит поведение
// исходной системы: два конкурентных запроса для нового пользователя могут
// оба пройти по ветке INSERT. Первичный ключ по id_usuario превращает такую
// гонку в unique violation, которая возвращается как ErrConflict.
func (r *LeaderboardRepo) UpsertScore(userID uint, totalScore int64) (bool, error) {
	result := r.db.Model(&entity.LeaderboardEntry{}).
		Where("id_usuario = ?", userID).
		Update("puntuacion_total", totalScore)
	if result.Error != nil {
		return false, result.Error
	}
	if result.RowsAffected > 0 {
		return false, nil
	}

	entry := &entity.LeaderboardEntry{UserID: userID, TotalScore: totalScore}
	if err := r.db.Create(entry).Error; err != nil {
		if isUniqueViolation(err) {
			return false, fmt.Errorf("%w: leaderboard row for user %d already exists", apperrors.ErrConflict, userID)
		}
		return false, err
	}
	return true, nil
}

// ListAll возвращает весь лидерборд по убыванию счёта
func (r *LeaderboardRepo) ListAll() ([]entity.LeaderboardEntry, error) {
	var entries []entity.LeaderboardEntry
	err := r.db.Order("puntuacion_total DESC, id_usuario ASC").Find(&entries).Error
	return entries, err
}
