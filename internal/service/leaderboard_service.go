package service

import (
	"errors"
	"log"
	"time"

	"github.com/yourusername/game-relay-api/internal/domain/entity"
	"github.com/yourusername/game-relay-api/internal/domain/repository"
	"github.com/yourusername/game-relay-api/internal/handler/dto"
	apperrors "github.com/yourusername/game-relay-api/internal/pkg/errors"
)

// LeaderboardCacheKey — ключ полного лидерборда в Redis.
// Один ключ на весь список, чтобы инвалидация при записи счёта была одной командой.
const LeaderboardCacheKey = "leaderboard:all"

// leaderboardCacheTTL ограничивает устаревание кеша при промахах инвалидации
const leaderboardCacheTTL = 30 * time.Second

// LeaderboardService отдаёт лидерборд постранично и целиком для экспорта
type LeaderboardService struct {
	leaderboardRepo repository.LeaderboardRepository
	cacheRepo       repository.CacheRepository
}

// NewLeaderboardService создает новый сервис лидерборда.
// cacheRepo может быть nil: тогда каждый запрос идёт в БД.
func NewLeaderboardService(
	leaderboardRepo repository.LeaderboardRepository,
	cacheRepo repository.CacheRepository,
) *LeaderboardService {
	return &LeaderboardService{
		leaderboardRepo: leaderboardRepo,
		cacheRepo:       cacheRepo,
	}
}

// GetPage возвращает пагинированный лидерборд.
// Полный список кешируется в Redis; страница вырезается из него в памяти.
func (s *LeaderboardService) GetPage(page, pageSize int) (*dto.PaginatedLeaderboardResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	} else if pageSize > 100 {
		pageSize = 100
	}

	entries, err := s.loadAll()
	if err != nil {
		return nil, err
	}

	offset := (page - 1) * pageSize
	end := offset + pageSize
	if offset > len(entries) {
		offset = len(entries)
	}
	if end > len(entries) {
		end = len(entries)
	}

	pageEntries := entries[offset:end]
	entryDTOs := make([]*dto.LeaderboardEntryDTO, len(pageEntries))
	for i, e := range pageEntries {
		entryDTOs[i] = &dto.LeaderboardEntryDTO{
			Rank:       offset + i + 1,
			UserID:     e.UserID,
			TotalScore: e.TotalScore,
		}
	}

	return &dto.PaginatedLeaderboardResponse{
		Entries: entryDTOs,
		Total:   int64(len(entries)),
		Page:    page,
		PerPage: pageSize,
	}, nil
}

// GetAll возвращает весь лидерборд (используется экспортом в XLSX)
func (s *LeaderboardService) GetAll() ([]entity.LeaderboardEntry, error) {
	return s.loadAll()
}

// loadAll читает полный лидерборд из кеша или БД
func (s *LeaderboardService) loadAll() ([]entity.LeaderboardEntry, error) {
	if s.cacheRepo != nil {
		var cached []entity.LeaderboardEntry
		err := s.cacheRepo.GetJSON(LeaderboardCacheKey, &cached)
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			// Ошибка Redis не должна валить чтение: идём в БД
			log.Printf("[LeaderboardService] Ошибка чтения кеша лидерборда: %v", err)
		}
	}

	entries, err := s.leaderboardRepo.ListAll()
	if err != nil {
		return nil, err
	}

	if s.cacheRepo != nil {
		if err := s.cacheRepo.SetJSON(LeaderboardCacheKey, entries, leaderboardCacheTTL); err != nil {
			log.Printf("[LeaderboardService] Ошибка записи кеша лидерборда: %v", err)
		}
	}

	return entries, nil
}
