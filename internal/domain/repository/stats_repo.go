package repository

import (
	"github.com/yourusername/game-relay-api/internal/domain/entity"
)

// StatsRepository определяет методы для работы с таблицей estadisticas
type StatsRepository interface {
	// Upsert сохраняет статистику пользователя схемой "существует? → UPDATE :
	// INSERT". Возвращает created=true при первой записи. Как и счёт,
	// последовательность не атомарна.
	Upsert(record *entity.StatsRecord) (created bool, err error)
}
