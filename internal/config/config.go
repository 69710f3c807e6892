package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/officerhub/report-management-api/internal/constants"
)

type Config struct {
	Port          string
	GinMode       string
	ReportsDir    string
	RetentionDays int
	DatabaseURL   string
	BackupCron    string
	SweepCron     string
}

func Load() *Config {
	// Missing .env is fine; the environment may be set directly.
	_ = godotenv.Load()

	return &Config{
		Port:          getEnv("PORT", "8080"),
		GinMode:       getEnv("GIN_MODE", "debug"),
		ReportsDir:    getEnv("REPORTS_DIR", "officer_reports"),
		RetentionDays: getEnvInt("RETENTION_DAYS", constants.DefaultRetentionDays),
		DatabaseURL:   getEnv("DATABASE_URL", ""),
		BackupCron:    getEnv("BACKUP_CRON", "0 2 * * *"),
		SweepCron:     getEnv("SWEEP_CRON", "30 1 * * *"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return defaultValue
	}
	return n
}
