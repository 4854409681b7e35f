package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config ค่าตั้งค่าทั้งหมดของระบบ อ่านจาก .env และ environment variables
type Config struct {
	AppPort         string
	MongoURI        string
	MongoDatabase   string
	RedisURI        string
	AllowedOrigins  string
	LogLevel        string
	StaticDir       string
	RequestTimeout  time.Duration
	VillageCacheTTL time.Duration
	ReconcileCron   string
}

// Load reads .env (if present) and the process environment.
// A missing .env is not an error; a missing MONGO_URI is.
func Load() (*Config, bool, error) {
	envLoaded := godotenv.Load() == nil

	cfg := &Config{
		AppPort:        getEnv("APP_URI", "8080"),
		MongoURI:       os.Getenv("MONGO_URI"),
		MongoDatabase:  getEnv("MONGO_DB", "KissanPartner"),
		RedisURI:       os.Getenv("REDIS_URI"),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "*"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		StaticDir:      os.Getenv("STATIC_DIR"),
		ReconcileCron:  getEnv("RECONCILE_CRON", "@daily"),
	}

	var err error
	if cfg.RequestTimeout, err = getDuration("REQUEST_TIMEOUT", 5*time.Second); err != nil {
		return nil, envLoaded, err
	}
	if cfg.VillageCacheTTL, err = getDuration("VILLAGE_CACHE_TTL", 10*time.Minute); err != nil {
		return nil, envLoaded, err
	}

	if cfg.MongoURI == "" {
		return nil, envLoaded, fmt.Errorf("MONGO_URI environment variable not set")
	}
	return cfg, envLoaded, nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("parse %s %q: %w", key, raw, err)
	}
	return d, nil
}
