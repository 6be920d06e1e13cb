package entity

// StatsRecord представляет игровую статистику пользователя.
// Не более одной строки на пользователя: ключ — id_usuario.
// Поля перезаписываются целиком при каждом сохранении, накопления нет.
type StatsRecord struct {
	UserID             uint  `gorm:"column:id_usuario;primaryKey" json:"id_usuario"`
	MissionsCompleted  int   `gorm:"column:misiones_completadas;not null;default:0" json:"misiones_completadas"`
	ItemsObtained      int   `gorm:"column:objetos_obtenidos;not null;default:0" json:"objetos_obtenidos"`
	EnemiesNeutralized int   `gorm:"column:enemigos_neutralizados;not null;default:0" json:"enemigos_neutralizados"`
	TotalPlayTime      int64 `gorm:"column:tiempo_total_juego;not null;default:0" json:"tiempo_total_juego"`
}

// TableName определяет имя таблицы для GORM
func (StatsRecord) TableName() string {
	return "estadisticas"
}
