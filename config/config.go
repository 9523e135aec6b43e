package config

import (
	"log/slog"
	"os"
)

// MaxUploadSize — максимальный размер файла сигнала (16MB)
const MaxUploadSize = 16 * 1024 * 1024

type Config struct {
	Port       string
	AuthSecret string
	Upload     UploadConfig
	Database   DatabaseConfig
	ML         MLConfig
}

type UploadConfig struct {
	Dir string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type MLConfig struct {
	ServiceURL string
	Timeout    int
}

func Load() *Config {
	return &Config{
		Port:       getEnv("PORT", "8053"),
		AuthSecret: os.Getenv("AUTH_SECRET"),
		Upload: UploadConfig{
			Dir: getEnv("UPLOAD_DIR", "uploads"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			DBName:   getEnv("DB_NAME", "signal_db"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		ML: MLConfig{
			ServiceURL: getEnv("ML_SERVICE_URL", "http://localhost:8000"),
			Timeout:    30,
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// InitLogger настраивает глобальный slog в JSON формате
func InitLogger() {
	var handler slog.Handler

	if os.Getenv("ENV") == "production" {
		// Продакшен: JSON формат
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	} else {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level:       slog.LevelInfo,
			ReplaceAttr: replaceTimeAttr,
			AddSource:   true,
		})
	}

	slog.SetDefault(slog.New(handler))
}

func replaceTimeAttr(groups []string, a slog.Attr) slog.Attr {
	if a.Key == slog.TimeKey {
		return slog.String("time", a.Value.Time().Local().Format("2006-01-02 15:04:05"))
	}
	return a
}
