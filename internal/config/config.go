package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort string

	// Database. Driver is "sqlite" (default, local file) or "mysql".
	DBDriver   string
	SQLitePath string
	MySQLDSN   string

	RedisAddr string
	RedisDB   int
	RedisPass string

	JWTSecret string

	// Spreadsheet mirror. An empty SpreadsheetID disables the mirror.
	SheetsCredentialsFile string
	SpreadsheetID         string

	SwaggerHost string
}

// Load builds Config from environment with sensible defaults.
// A .env file in the working directory is read first, if present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort:            getEnv("SERVER_PORT", "8080"),
		DBDriver:              getEnv("DB_DRIVER", "sqlite"),
		SQLitePath:            getEnv("SQLITE_PATH", "jobtrack.db"),
		MySQLDSN:              getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/jobtrack?charset=utf8mb4&parseTime=True&loc=Local"),
		RedisAddr:             getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:               getEnvInt("REDIS_DB", 0),
		RedisPass:             os.Getenv("REDIS_PASSWORD"),
		JWTSecret:             getEnv("JWT_SECRET", "change-me"),
		SheetsCredentialsFile: getEnv("SHEETS_CREDENTIALS_FILE", "service_account.json"),
		SpreadsheetID:         os.Getenv("SPREADSHEET_ID"),
		SwaggerHost:           os.Getenv("SWAGGER_HOST"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}
