// Package config loads service configuration from the environment.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type EventsCfg struct {
	Enabled bool
	Brokers string
	Topic   string
}

type Config struct {
	Addr         string
	LogLevel     string
	LogConsole   bool
	RedisAddr    string
	StoreTTL     time.Duration
	StoreLRUSize int
	Events       EventsCfg
}

func FromEnv() Config {
	return Config{
		Addr:         getenv("ADDR", ":8080"),
		LogLevel:     getenv("LOG_LEVEL", "info"),
		LogConsole:   getbool("LOG_CONSOLE", false),
		RedisAddr:    getenv("REDIS_ADDR", "localhost:6379"),
		StoreTTL:     getduration("STORE_TTL", 0), // 0 means no expiry
		StoreLRUSize: getint("STORE_LRU_SIZE", 1024),
		Events: EventsCfg{
			Enabled: getbool("EVENTS_ENABLED", false),
			Brokers: getenv("KAFKA_BROKERS", "localhost:9092"),
			Topic:   getenv("KAFKA_TOPIC", "geojson-documents"),
		},
	}
}

func getenv(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func getint(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n
		}
	}
	return def
}

func getbool(k string, def bool) bool {
	if v := os.Getenv(k); v != "" {
		return strings.EqualFold(strings.TrimSpace(v), "true")
	}
	return def
}

func getduration(k string, def time.Duration) time.Duration {
	if v := os.Getenv(k); v != "" {
		if d, err := time.ParseDuration(strings.TrimSpace(v)); err == nil {
			return d
		}
	}
	return def
}
