package config

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/viper"
)

// Config хранит все настройки приложения
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Gemini   GeminiConfig
	CORS     CORSConfig
}

// ServerConfig содержит настройки HTTP сервера
type ServerConfig struct {
	Port         string
	ReadTimeout  int
	WriteTimeout int
}

// DatabaseConfig содержит настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string

	// SSLMode заменяет пару флагов encrypt/trustServerCertificate исходной
	// конфигурации: "disable", "require" или "verify-full".
	SSLMode string
}

// RedisConfig содержит настройки подключения к Redis.
// Redis используется для кеша лидерборда и rate limiting на /login.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// GeminiConfig содержит настройки внешнего сервиса генерации текста
type GeminiConfig struct {
	// APIKey — ключ API Generative Language (обязателен).
	APIKey string `mapstructure:"api_key"`

	// Model — имя модели. По умолчанию "gemini-1.5-flash-latest".
	Model string `mapstructure:"model"`

	// TimeoutSec — таймаут HTTP клиента в секундах. По умолчанию 30.
	TimeoutSec int `mapstructure:"timeout_sec"`
}

// CORSConfig содержит список разрешённых origin'ов
type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
}

// PostgresConnectionString формирует строку подключения к PostgreSQL
func (d *DatabaseConfig) PostgresConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// Load загружает конфигурацию из файла и переменных окружения
func Load(configPath string) (*Config, error) {
	vip := viper.New() // Используем новый экземпляр Viper, чтобы избежать глобального состояния

	// Значения по умолчанию
	vip.SetDefault("server.port", "3000")
	vip.SetDefault("server.readtimeout", 15)
	vip.SetDefault("server.writetimeout", 15)
	vip.SetDefault("database.sslmode", "disable")
	vip.SetDefault("gemini.model", "gemini-1.5-flash-latest")
	vip.SetDefault("gemini.timeout_sec", 30)

	// Привязываем переменные окружения ЯВНО
	// Привязка для секции Database
	vip.BindEnv("database.host", "DB_HOST")
	vip.BindEnv("database.port", "DB_PORT")
	vip.BindEnv("database.user", "DB_USER")
	vip.BindEnv("database.password", "DB_PASSWORD")
	vip.BindEnv("database.dbname", "DB_NAME")
	vip.BindEnv("database.sslmode", "DB_SSLMODE")

	// Привязка для секции Redis
	vip.BindEnv("redis.addr", "REDIS_ADDR")
	vip.BindEnv("redis.password", "REDIS_PASSWORD")
	vip.BindEnv("redis.db", "REDIS_DB")

	// Привязка для секции Gemini
	vip.BindEnv("gemini.api_key", "GEMINI_API_KEY")
	vip.BindEnv("gemini.model", "GEMINI_MODEL")
	vip.BindEnv("gemini.timeout_sec", "GEMINI_TIMEOUT_SEC")

	// Привязка для Server
	vip.BindEnv("server.port", "PORT")

	// Привязка для CORS
	vip.BindEnv("cors.allow_origins", "CORS_ALLOW_ORIGINS")

	// Путь к файлу конфигурации (не страшно, если файла нет: есть BindEnv)
	if configPath != "" {
		vip.SetConfigFile(configPath)
		if err := vip.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); ok {
				log.Printf("Файл конфигурации '%s' не найден, используются переменные окружения/умолчания.", configPath)
			} else {
				log.Printf("Предупреждение: не удалось прочитать файл конфигурации '%s': %v", configPath, err)
			}
		}
	}

	// Анмаршалим конфигурацию (Viper объединит значения из файла и привязанных env vars)
	var cfg Config
	if err := vip.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Логирование конфигурации (только в debug режиме, пароли и ключи не выводим)
	if os.Getenv("GIN_MODE") != "release" {
		log.Printf("--- Загруженные значения конфигурации ---")
		log.Printf("Database Host: %s", cfg.Database.Host)
		log.Printf("Database Port: %s", cfg.Database.Port)
		log.Printf("Database Name: %s", cfg.Database.DBName)
		log.Printf("Database SSLMode: %s", cfg.Database.SSLMode)
		log.Printf("Redis Addr: %s", cfg.Redis.Addr)
		log.Printf("Gemini Model: %s", cfg.Gemini.Model)
		log.Printf("Gemini API Key Set: %t", cfg.Gemini.APIKey != "")
		log.Printf("Server Port: %s", cfg.Server.Port)
		log.Printf("-----------------------------------------")
	}

	// Проверка обязательных параметров
	if cfg.Database.Host == "" || cfg.Database.DBName == "" || cfg.Database.User == "" {
		return nil, fmt.Errorf("database configuration (host, dbname, user) is incomplete in config (check DB_HOST, DB_NAME, DB_USER env vars)")
	}
	if cfg.Gemini.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required in config (check GEMINI_API_KEY env var)")
	}
	ginMode := os.Getenv("GIN_MODE")
	if ginMode == "release" && cfg.Database.Password == "" {
		return nil, fmt.Errorf("database password is required in production mode (check DB_PASSWORD env var)")
	}

	return &cfg, nil
}
