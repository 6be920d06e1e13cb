package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/yourusername/game-relay-api/internal/config"
	"github.com/yourusername/game-relay-api/internal/domain/repository"
	"github.com/yourusername/game-relay-api/internal/handler"
	"github.com/yourusername/game-relay-api/internal/middleware"
	pgRepo "github.com/yourusername/game-relay-api/internal/repository/postgres"
	redisRepo "github.com/yourusername/game-relay-api/internal/repository/redis"
	"github.com/yourusername/game-relay-api/internal/service"
	"github.com/yourusername/game-relay-api/pkg/ai"
	"github.com/yourusername/game-relay-api/pkg/database"
)

func main() {
	// Загружаем конфигурацию
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}
	log.Printf("Загрузка конфигурации из %s", configPath)

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		os.Exit(1)
	}

	// Инициализируем подключение к PostgreSQL
	db, err := database.NewPostgresDB(cfg.Database.PostgresConnectionString())
	if err != nil {
		log.Printf("Failed to connect to database: %v", err)
		os.Exit(1)
	}

	// Применяем миграции
	if err := database.MigrateDB(db); err != nil {
		log.Printf("Failed to migrate database: %v", err)
		os.Exit(1)
	}

	// Redis опционален: без него нет кеша лидерборда и rate limiting,
	// но основные endpoints продолжают работать.
	redisClient, err := database.NewRedisClient(cfg.Redis)
	if err != nil {
		log.Printf("Redis unavailable, continuing without cache and rate limiting: %v", err)
		redisClient = nil
	} else {
		log.Println("Successfully connected to Redis")
	}

	// Инициализируем репозитории
	userRepo := pgRepo.NewUserRepo(db)
	leaderboardRepo := pgRepo.NewLeaderboardRepo(db)
	statsRepo := pgRepo.NewStatsRepo(db)

	var cacheRepo *redisRepo.CacheRepo
	if redisClient != nil {
		cacheRepo, err = redisRepo.NewCacheRepo(redisClient)
		if err != nil {
			log.Printf("Failed to initialize CacheRepo: %v", err)
			os.Exit(1)
		}
	}

	// Клиент генерации текста
	geminiClient, err := ai.NewGeminiClient(
		cfg.Gemini.APIKey,
		cfg.Gemini.Model,
		time.Duration(cfg.Gemini.TimeoutSec)*time.Second,
	)
	if err != nil {
		log.Printf("Failed to initialize Gemini client: %v", err)
		os.Exit(1)
	}

	// Инициализируем сервисы
	authService, err := service.NewAuthService(userRepo)
	if err != nil {
		log.Printf("Failed to initialize AuthService: %v", err)
		os.Exit(1)
	}

	dialogueService, err := service.NewDialogueService(geminiClient)
	if err != nil {
		log.Printf("Failed to initialize DialogueService: %v", err)
		os.Exit(1)
	}

	// CacheRepo передаётся как интерфейс; typed-nil в интерфейс не заворачиваем
	var cache repository.CacheRepository
	if cacheRepo != nil {
		cache = cacheRepo
	}

	progressService, err := service.NewProgressService(leaderboardRepo, statsRepo, cache)
	if err != nil {
		log.Printf("Failed to initialize ProgressService: %v", err)
		os.Exit(1)
	}
	leaderboardService := service.NewLeaderboardService(leaderboardRepo, cache)

	// Инициализируем обработчики
	authHandler := handler.NewAuthHandler(authService)
	npcHandler := handler.NewNPCHandler(dialogueService)
	progressHandler := handler.NewProgressHandler(progressService)
	leaderboardHandler := handler.NewLeaderboardHandler(leaderboardService)
	healthHandler := handler.NewHealthHandler(db)

	// Инициализируем роутер Gin
	router := gin.Default()

	isProduction := gin.Mode() == gin.ReleaseMode
	if isProduction {
		if err := router.SetTrustedProxies(nil); err != nil {
			log.Printf("Warning: failed to set trusted proxies: %v", err)
		}
	} else {
		if err := router.SetTrustedProxies([]string{"127.0.0.1", "::1"}); err != nil {
			log.Printf("Warning: failed to set trusted proxies: %v", err)
		}
	}

	// Настройка CORS
	allowOrigins := cfg.CORS.AllowOrigins
	corsConfig := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(allowOrigins) == 0 {
		// Исходный сервис отвечал любому origin'у — игровой клиент ходит
		// с file:// и произвольных хостов
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = allowOrigins
	}
	router.Use(cors.New(corsConfig))

	router.Use(middleware.RequestID())

	// Настраиваем маршруты
	login := router.Group("/")
	if redisClient != nil {
		rateLimiter := middleware.NewRateLimiter(redisClient)
		login.Use(rateLimiter.Limit(middleware.LoginRateLimitConfig()))
	}
	login.POST("/login", authHandler.Login)

	router.POST("/chat-with-npc", npcHandler.Chat)
	router.POST("/update-score", progressHandler.UpdateScore)
	router.POST("/update-stats", progressHandler.UpdateStats)
	router.GET("/leaderboard", leaderboardHandler.GetLeaderboard)
	router.GET("/leaderboard/export", leaderboardHandler.ExportLeaderboard)
	router.GET("/health", healthHandler.Check)

	// Настраиваем HTTP сервер с тайм-аутами для защиты от slow client attacks
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Запускаем сервер в горутине
	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown по SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
		os.Exit(1)
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Printf("Error closing Redis client: %v", err)
		}
	}

	log.Println("Server exited properly")
}
