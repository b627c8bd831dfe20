package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	DBPath    string
	StaticDir string
	OutputDir string

	HTTPPort int

	CatalogYear         int
	FuzzyMergeThreshold int

	ScrapeTimeoutMs    int
	ScrapeRateLimitRPS int
	ScrapeUserAgent    string

	WatchIntervalSec int
	WatchAutoExport  bool
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cwd, err := os.Getwd()
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		DBPath:    getEnv("DB_PATH", filepath.Join(cwd, "data", "bourbon.db")),
		StaticDir: getEnv("STATIC_DIR", filepath.Join(cwd, "static")),
		OutputDir: getEnv("OUTPUT_DIR", filepath.Join(cwd, "out")),

		HTTPPort: getEnvInt("PORT", 3000),

		CatalogYear:         getEnvInt("CATALOG_YEAR", 2026),
		FuzzyMergeThreshold: getEnvInt("FUZZY_MERGE_THRESHOLD", 85),

		ScrapeTimeoutMs:    getEnvInt("SCRAPE_TIMEOUT_MS", 15000),
		ScrapeRateLimitRPS: getEnvInt("SCRAPE_RATE_LIMIT_RPS", 2),
		ScrapeUserAgent: getEnv("SCRAPE_USER_AGENT",
			"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"),

		WatchIntervalSec: getEnvInt("WATCH_INTERVAL_SEC", 6*60*60),
		WatchAutoExport:  getEnvBool("WATCH_AUTO_EXPORT", false),
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvBool(key string, fallback bool) bool {
	value := strings.ToLower(strings.TrimSpace(getEnv(key, "")))
	if value == "" {
		return fallback
	}
	if value == "1" || value == "true" || value == "yes" || value == "on" {
		return true
	}
	if value == "0" || value == "false" || value == "no" || value == "off" {
		return false
	}
	return fallback
}
