package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	AppName    string
	LogLevel   string
	HistoryDSN string
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func Load() Config {
	// .env es opcional; si no existe se usan los valores del entorno.
	_ = godotenv.Load()

	return Config{
		AppName:    getenv("TECHSTORE_APP_NAME", "techstore"),
		LogLevel:   getenv("TECHSTORE_LOG_LEVEL", "info"),
		HistoryDSN: getenv("TECHSTORE_HISTORY_DSN", ":memory:"),
	}
}
