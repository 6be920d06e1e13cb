package dto

// LoginRequest — тело POST /login.
// Обязательность полей проверяется вручную в обработчике, чтобы клиент
// получил то же сообщение об ошибке, что и раньше.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginUserDTO — публичное представление пользователя в ответе логина.
// Хеш пароля и email сюда не попадают.
type LoginUserDTO struct {
	ID       uint   `json:"id_usuario"`
	Username string `json:"nombre_usuario"`
	Gender   string `json:"genero"`
}

// ChatRequest — тело POST /chat-with-npc
type ChatRequest struct {
	PlayerMessage  string `json:"playerMessage"`
	NPCPersonality string `json:"npcPersonality"`
}

// UpdateScoreRequest — тело POST /update-score.
// Указатели отличают отсутствующее поле от нулевого значения: счёт 0 валиден.
type UpdateScoreRequest struct {
	UserID     *uint  `json:"userId"`
	FinalScore *int64 `json:"finalScore"`
}

// UpdateStatsRequest — тело POST /update-stats.
// Обязателен только userId; пропущенные счётчики записываются нулями.
type UpdateStatsRequest struct {
	UserID             *uint `json:"userId"`
	MissionsCompleted  int   `json:"misiones_completadas"`
	ItemsObtained      int   `json:"objetos_obtenidos"`
	EnemiesNeutralized int   `json:"enemigos_neutralizados"`
	TotalPlayTime      int64 `json:"tiempo_total_juego"`
}

// LeaderboardEntryDTO представляет одну строку лидерборда
type LeaderboardEntryDTO struct {
	Rank       int   `json:"rank"`
	UserID     uint  `json:"id_usuario"`
	TotalScore int64 `json:"puntuacion_total"`
}

// PaginatedLeaderboardResponse представляет пагинированный ответ для лидерборда
type PaginatedLeaderboardResponse struct {
	Entries []*LeaderboardEntryDTO `json:"entries"`
	Total   int64                  `json:"total"`
	Page    int                    `json:"page"`
	PerPage int                    `json:"per_page"`
}
