package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server     ServerConfig
	Inpaint    InpaintConfig
	Fetch      FetchConfig
	Redis      RedisConfig
	Processing ProcessingConfig
}

type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

type InpaintConfig struct {
	URL     string
	Device  string
	Timeout time.Duration
}

type FetchConfig struct {
	Timeout     time.Duration
	MaxFileSize int64
}

type RedisConfig struct {
	Addr          string
	Password      string
	DB            int
	CacheDuration time.Duration
}

type ProcessingConfig struct {
	MaxConcurrency int
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			ReadTimeout:     getDuration("READ_TIMEOUT", 30*time.Second),
			WriteTimeout:    getDuration("WRITE_TIMEOUT", 60*time.Second),
			ShutdownTimeout: getDuration("SHUTDOWN_TIMEOUT", 30*time.Second),
		},
		Inpaint: InpaintConfig{
			URL:     getEnv("LAMA_URL", "http://localhost:5003"),
			Device:  getEnv("LAMA_DEVICE", "cpu"),
			Timeout: getDuration("LAMA_TIMEOUT", 60*time.Second),
		},
		Fetch: FetchConfig{
			Timeout:     getDuration("FETCH_TIMEOUT", 10*time.Second),
			MaxFileSize: getEnvAsInt64("MAX_FILE_SIZE", 10*1024*1024), // 10MB
		},
		Redis: RedisConfig{
			Addr:          getEnv("REDIS_ADDR", ""),
			Password:      getEnv("REDIS_PASSWORD", ""),
			DB:            getEnvAsInt("REDIS_DB", 0),
			CacheDuration: getDuration("CACHE_DURATION", 24*time.Hour),
		},
		Processing: ProcessingConfig{
			MaxConcurrency: getEnvAsInt("MAX_CONCURRENCY", 4),
		},
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultVal
}

func getEnvAsInt64(key string, defaultVal int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
		}
	}
	return defaultVal
}

func getDuration(key string, defaultVal time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultVal
}
