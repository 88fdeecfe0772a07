package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTP     HTTPConfig
	Auth     AuthConfig
	Postgres PostgresConfig
}

type HTTPConfig struct {
	Addr            string
	AllowedOrigins  []string
	ShutdownTimeout string
}

type AuthConfig struct {
	JWTSecret  string
	TokenTTL   string
	BcryptCost string
}

type PostgresConfig struct {
	DatabaseURL    string
	Host           string
	Port           string
	User           string
	Password       string
	Database       string
	SSLMode        string
	MaxConns       string
	MaxConnIdle    string
	ConnectTimeout string
}

func Load() Config {
	// .env is optional; deployed environments set variables directly.
	_ = godotenv.Load()

	return Config{
		HTTP: HTTPConfig{
			Addr:            getenv("LISTEN_ADDR", ":8080"),
			AllowedOrigins:  splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
			ShutdownTimeout: getenv("SHUTDOWN_TIMEOUT", "10s"),
		},
		Auth: AuthConfig{
			JWTSecret:  os.Getenv("JWT_SECRET"),
			TokenTTL:   getenv("JWT_TOKEN_TTL", "168h"),
			BcryptCost: os.Getenv("BCRYPT_COST"),
		},
		Postgres: PostgresConfig{
			DatabaseURL:    os.Getenv("DATABASE_URL"),
			Host:           getenv("PGHOST", "localhost"),
			Port:           getenv("PGPORT", "5432"),
			User:           os.Getenv("PGUSER"),
			Password:       os.Getenv("PGPASSWORD"),
			Database:       os.Getenv("PGDATABASE"),
			SSLMode:        getenv("PGSSLMODE", "disable"),
			MaxConns:       getenv("PGPOOL_MAX_CONNS", "10"),
			MaxConnIdle:    getenv("PGPOOL_MAX_CONN_IDLE", "5m"),
			ConnectTimeout: getenv("PG_CONNECT_TIMEOUT", "5s"),
		},
	}
}

func getenv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func splitList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
