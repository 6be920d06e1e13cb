package postgres

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/yourusername/game-relay-api/internal/domain/entity"
	apperrors "github.com/yourusername/game-relay-api/internal/pkg/errors"
)

// StatsRepo реализует repository.StatsRepository
type StatsRepo struct {
	db *gorm.DB
}

// NewStatsRepo создает новый репозиторий статистики
func NewStatsRepo(db *gorm.DB) *StatsRepo {
	return &StatsRepo{db: db}
}

// Upsert сохраняет статистику схемой "SELECT существует? → UPDATE : INSERT".
// Как и в LeaderboardRepo.UpsertScore, шаги не атомарны; гонка двух вставок
// упирается в первичный ключ и возвращается как ErrConflict.
func (r *StatsRepo) Upsert(record *entity.StatsRecord) (bool, error) {
	var count int64
	err := r.db.Model(&entity.StatsRecord{}).
		Where("id_usuario = ?", record.UserID).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	if count > 0 {
		err := r.db.Model(&entity.StatsRecord{}).
			Where("id_usuario = ?", record.UserID).
			Updates(map[string]interface{}{
				"misiones_completadas":   record.MissionsCompleted,
				"objetos_obtenidos":      record.ItemsObtained,
				"enemigos_neutralizados": record.EnemiesNeutralized,
				"tiempo_total_juego":     record.TotalPlayTime,
			}).Error
		return false, err
	}

	if err := r.db.Create(record).Error; err != nil {
		if isUniqueViolation(err) {
			return false, fmt.Errorf("%w: stats row for user %d already exists", apperrors.ErrConflict, record.UserID)
		}
		return false, err
	}
	return true, nil
}
