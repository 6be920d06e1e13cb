package service

import (
	"fmt"
	"log"

	"github.com/yourusername/game-relay-api/internal/domain/entity"
	"github.com/yourusername/game-relay-api/internal/domain/repository"
)

// ProgressService сохраняет счёт и игровую статистику пользователя
type ProgressService struct {
	leaderboardRepo repository.LeaderboardRepository
	statsRepo       repository.StatsRepository
	cacheRepo       repository.CacheRepository
}

// NewProgressService создает новый сервис игрового прогресса.
// cacheRepo может быть nil: тогда инвалидация кеша лидерборда пропускается.
func NewProgressService(
	leaderboardRepo repository.LeaderboardRepository,
	statsRepo repository.StatsRepository,
	cacheRepo repository.CacheRepository,
) (*ProgressService, error) {
	if leaderboardRepo == nil {
		return nil, fmt.Errorf("LeaderboardRepository is required for ProgressService")
	}
	if statsRepo == nil {
		return nil, fmt.Errorf("StatsRepository is required for ProgressService")
	}
	return &ProgressService{
		leaderboardRepo: leaderboardRepo,
		statsRepo:       statsRepo,
		cacheRepo:       cacheRepo,
	}, nil
}

// SaveScore сохраняет итоговый счёт. created=true при первой записи пользователя.
func (s *ProgressService) SaveScore(userID uint, finalScore int64) (created bool, err error) {
	created, err = s.leaderboardRepo.UpsertScore(userID, finalScore)
	if err != nil {
		return false, err
	}

	// Лидерборд изменился — сбрасываем кеш. Ошибка кеша не отменяет запись.
	if s.cacheRepo != nil {
		if cacheErr := s.cacheRepo.Delete(LeaderboardCacheKey); cacheErr != nil {
			log.Printf("[ProgressService] Не удалось сбросить кеш лидерборда: %v", cacheErr)
		}
	}

	return created, nil
}

// SaveStats сохраняет игровую статистику. created=true при первой записи.
func (s *ProgressService) SaveStats(record *entity.StatsRecord) (created bool, err error) {
	return s.statsRepo.Upsert(record)
}
