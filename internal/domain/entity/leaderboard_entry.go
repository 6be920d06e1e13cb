package entity

// LeaderboardEntry представляет итоговый счёт пользователя.
// Не более одной строки на пользователя: ключ — id_usuario.
type LeaderboardEntry struct {
	UserID     uint  `gorm:"column:id_usuario;primaryKey" json:"id_usuario"`
	TotalScore int64 `gorm:"column:puntuacion_total;not null;default:0" json:"puntuacion_total"`
}

// TableName определяет имя таблицы для GORM
func (LeaderboardEntry) TableName() string {
	return "leaderboard"
}
