package config

import (
	"os"
	"strconv"
	"time"
)

// Server captures process-level configuration. Dependencies are constructed in
// main from these values; nothing below the entrypoint reads the environment.
type Server struct {
	Addr        string
	PostgresDSN string
	Redis       Redis
	SMTP        SMTP
}

// Redis holds connection settings for the listing cache. An empty URL disables
// the cache entirely.
type Redis struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	ListTTL      time.Duration
}

// SMTP holds mail delivery settings. An empty Host selects the log-only
// notifier for development.
type SMTP struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	return Server{
		Addr:        envOr("PAPERFLOW_ADDR", ":5000"),
		PostgresDSN: os.Getenv("PAPERFLOW_POSTGRES_DSN"),
		Redis: Redis{
			URL:          os.Getenv("PAPERFLOW_REDIS_URL"),
			PoolSize:     envInt("PAPERFLOW_REDIS_POOL_SIZE", 10),
			MinIdleConns: envInt("PAPERFLOW_REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  envDuration("PAPERFLOW_REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  envDuration("PAPERFLOW_REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: envDuration("PAPERFLOW_REDIS_WRITE_TIMEOUT", 3*time.Second),
			ListTTL:      envDuration("PAPERFLOW_CACHE_TTL", 30*time.Second),
		},
		SMTP: SMTP{
			Host:     os.Getenv("PAPERFLOW_SMTP_HOST"),
			Port:     envInt("PAPERFLOW_SMTP_PORT", 587),
			Username: os.Getenv("PAPERFLOW_SMTP_USER"),
			Password: os.Getenv("PAPERFLOW_SMTP_PASSWORD"),
			From:     envOr("PAPERFLOW_SMTP_FROM", os.Getenv("PAPERFLOW_SMTP_USER")),
		},
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
