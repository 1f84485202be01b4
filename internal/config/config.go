package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	BackendMemory = "memory"
	BackendRedis  = "redis"

	IDStrategyCounter = "counter"
	IDStrategyUUID    = "uuid"
)

// Config holds application configuration
type Config struct {
	Log   LogConfig
	Store StoreConfig
	Redis RedisConfig
}

type LogConfig struct {
	Level string
}

type StoreConfig struct {
	Backend    string
	IDStrategy string
}

type RedisConfig struct {
	Host      string
	Port      string
	Password  string
	DB        int
	KeyPrefix string
	Timeout   time.Duration
}

// Addr returns host:port for the redis client.
func (r RedisConfig) Addr() string {
	return r.Host + ":" + r.Port
}

// LoadConfig loads configuration from environment variables and an optional .env file
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DOCSTORE_BACKEND", BackendMemory)
	v.SetDefault("DOCSTORE_ID_STRATEGY", IDStrategyCounter)
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_KEY_PREFIX", "docstore:")
	v.SetDefault("REDIS_TIMEOUT", 5)

	cfg := &Config{
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		Store: StoreConfig{
			Backend:    strings.ToLower(v.GetString("DOCSTORE_BACKEND")),
			IDStrategy: strings.ToLower(v.GetString("DOCSTORE_ID_STRATEGY")),
		},
		Redis: RedisConfig{
			Host:      v.GetString("REDIS_HOST"),
			Port:      v.GetString("REDIS_PORT"),
			Password:  v.GetString("REDIS_PASSWORD"),
			DB:        v.GetInt("REDIS_DB"),
			KeyPrefix: v.GetString("REDIS_KEY_PREFIX"),
			Timeout:   time.Duration(v.GetInt("REDIS_TIMEOUT")) * time.Second,
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks enum values and backend requirements.
func (c *Config) Validate() error {
	switch c.Store.Backend {
	case BackendMemory:
	case BackendRedis:
		if c.Redis.Host == "" {
			return fmt.Errorf("REDIS_HOST is required for backend %q", BackendRedis)
		}
	default:
		return fmt.Errorf("unknown DOCSTORE_BACKEND %q", c.Store.Backend)
	}
	switch c.Store.IDStrategy {
	case IDStrategyCounter, IDStrategyUUID:
	default:
		return fmt.Errorf("unknown DOCSTORE_ID_STRATEGY %q", c.Store.IDStrategy)
	}
	if c.Redis.Timeout <= 0 {
		return fmt.Errorf("REDIS_TIMEOUT must be positive")
	}
	return nil
}
