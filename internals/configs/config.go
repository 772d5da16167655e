package configs

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port    string
	AppEnv  string
	Timeout time.Duration

	DBDriver       string // postgres | sqlite
	DatabaseURL    string
	DBUser         string
	DBPassword     string
	DBHost         string
	DBPort         string
	DBName         string
	DBSSLMode      string
	SQLitePath     string
	DBMaxOpenConns int
	DBMaxIdleConns int
	DBAutoMigrate  bool

	LogLevel  string
	LogFormat string // text | json

	CORSOrigins     string
	RateLimitMax    int
	RateLimitWindow time.Duration
	RedisURL        string
}

// =======================
// ENV LOADER
// =======================
func LoadEnv() *Config {
	if os.Getenv("APP_ENV") != "production" {
		if err := godotenv.Load(); err != nil {
			slog.Info("no .env file found, using system environment")
		} else {
			slog.Info(".env file loaded")
		}
	}

	return &Config{
		Port:    GetEnv("PORT", "3001"),
		AppEnv:  GetEnv("APP_ENV", "development"),
		Timeout: GetDuration("REQUEST_TIMEOUT", 5*time.Second),

		DBDriver:       strings.ToLower(GetEnv("DB_DRIVER", "postgres")),
		DatabaseURL:    GetEnv("DATABASE_URL"),
		DBUser:         GetEnv("DB_USER"),
		DBPassword:     GetEnv("DB_PASSWORD"),
		DBHost:         GetEnv("DB_HOST", "localhost"),
		DBPort:         GetEnv("DB_PORT", "5432"),
		DBName:         GetEnv("DB_NAME", "academia"),
		DBSSLMode:      GetEnv("DB_SSLMODE", "disable"),
		SQLitePath:     GetEnv("SQLITE_PATH", "./data/academia.db"),
		DBMaxOpenConns: GetInt("DB_MAX_OPEN_CONNS", 20),
		DBMaxIdleConns: GetInt("DB_MAX_IDLE_CONNS", 10),
		DBAutoMigrate:  GetBool("DB_AUTO_MIGRATE", true),

		LogLevel:  GetEnv("LOG_LEVEL", "info"),
		LogFormat: GetEnv("LOG_FORMAT", "text"),

		CORSOrigins:     GetEnv("CORS_ORIGINS", "*"),
		RateLimitMax:    GetInt("RATE_LIMIT_MAX", 100),
		RateLimitWindow: GetDuration("RATE_LIMIT_WINDOW", time.Minute),
		RedisURL:        GetEnv("REDIS_URL"),
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if (!exists || value == "") && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func GetInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("invalid integer env, using default", "key", key, "value", v, "default", def)
		return def
	}
	return n
}

func GetBool(key string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid boolean env, using default", "key", key, "value", v, "default", def)
		return def
	}
	return b
}

// GetDuration accepts Go durations ("30s") or plain seconds ("30").
func GetDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil {
		return time.Duration(n) * time.Second
	}
	slog.Warn("invalid duration env, using default", "key", key, "value", v, "default", def)
	return def
}
