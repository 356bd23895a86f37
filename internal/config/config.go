package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Env     string
	Server  ServerConfig
	Redis   RedisConfig
	NATS    NATSConfig
	Storage StorageConfig
	Cache   CacheConfig
	Worker  WorkerConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	AllowedOrigins  []string
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// NATSConfig holds NATS configuration
type NATSConfig struct {
	URL string
}

// StorageConfig holds the fixed keys used in the durable key-value slot
type StorageConfig struct {
	CartKey string
	UserKey string
}

// CacheConfig holds caching TTL configuration
type CacheConfig struct {
	SearchResultsTTL time.Duration
}

// WorkerConfig holds order status worker configuration
type WorkerConfig struct {
	StatusAdvanceInterval time.Duration
}

// Load reads configuration from environment variables and returns a Config struct
func Load() (*Config, error) {
	viper.AutomaticEnv()

	// Set defaults
	viper.SetDefault("ENV", "development")
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("SERVER_READ_TIMEOUT", "10s")
	viper.SetDefault("SERVER_WRITE_TIMEOUT", "10s")
	viper.SetDefault("SERVER_SHUTDOWN_TIMEOUT", "30s")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:8080")

	viper.SetDefault("REDIS_HOST", "localhost")
	viper.SetDefault("REDIS_PORT", "6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)

	viper.SetDefault("NATS_URL", "nats://localhost:4222")

	viper.SetDefault("STORAGE_CART_KEY", "storefront:cart")
	viper.SetDefault("STORAGE_USER_KEY", "storefront:user")

	viper.SetDefault("CACHE_TTL_SEARCH_RESULTS", "120s")

	viper.SetDefault("WORKER_STATUS_ADVANCE_INTERVAL", "30s")

	readTimeout, err := time.ParseDuration(viper.GetString("SERVER_READ_TIMEOUT"))
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_READ_TIMEOUT: %w", err)
	}

	writeTimeout, err := time.ParseDuration(viper.GetString("SERVER_WRITE_TIMEOUT"))
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_WRITE_TIMEOUT: %w", err)
	}

	shutdownTimeout, err := time.ParseDuration(viper.GetString("SERVER_SHUTDOWN_TIMEOUT"))
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_SHUTDOWN_TIMEOUT: %w", err)
	}

	searchResultsTTL, err := time.ParseDuration(viper.GetString("CACHE_TTL_SEARCH_RESULTS"))
	if err != nil {
		return nil, fmt.Errorf("invalid CACHE_TTL_SEARCH_RESULTS: %w", err)
	}

	statusAdvanceInterval, err := time.ParseDuration(viper.GetString("WORKER_STATUS_ADVANCE_INTERVAL"))
	if err != nil {
		return nil, fmt.Errorf("invalid WORKER_STATUS_ADVANCE_INTERVAL: %w", err)
	}

	allowedOriginsStr := viper.GetString("CORS_ALLOWED_ORIGINS")
	allowedOrigins := strings.Split(allowedOriginsStr, ",")
	for i := range allowedOrigins {
		allowedOrigins[i] = strings.TrimSpace(allowedOrigins[i])
	}

	config := &Config{
		Env: viper.GetString("ENV"),
		Server: ServerConfig{
			Port:            viper.GetString("SERVER_PORT"),
			ReadTimeout:     readTimeout,
			WriteTimeout:    writeTimeout,
			ShutdownTimeout: shutdownTimeout,
			AllowedOrigins:  allowedOrigins,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		NATS: NATSConfig{
			URL: viper.GetString("NATS_URL"),
		},
		Storage: StorageConfig{
			CartKey: viper.GetString("STORAGE_CART_KEY"),
			UserKey: viper.GetString("STORAGE_USER_KEY"),
		},
		Cache: CacheConfig{
			SearchResultsTTL: searchResultsTTL,
		},
		Worker: WorkerConfig{
			StatusAdvanceInterval: statusAdvanceInterval,
		},
	}

	return config, nil
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.Redis.Host, c.Redis.Port)
}
