package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds the service configuration, read from the environment
type Config struct {
	MongoURI     string
	MongoDB      string
	RedisAddr    string
	HTTPPort     string
	StatusTTL    time.Duration
	AnalyticsTTL time.Duration
}

// Load reads the configuration from environment variables
func Load() *Config {
	return &Config{
		MongoURI:     getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:      getEnv("MONGO_DB", "adaptiveui"),
		RedisAddr:    getEnv("REDIS_ADDR", "localhost:6379"),
		HTTPPort:     getEnv("HTTP_PORT", "8080"),
		StatusTTL:    getDuration("STATUS_TTL_SECONDS", 15*time.Minute),
		AnalyticsTTL: getDuration("ANALYTICS_TTL_SECONDS", time.Minute),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getDuration(key string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	secs, err := strconv.Atoi(val)
	if err != nil || secs <= 0 {
		return defaultVal
	}
	return time.Duration(secs) * time.Second
}
