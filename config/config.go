package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

const DefaultSourceURL = "https://srijandubey.github.io/campus-api-mock/SRM-C1-25.json"

const (
	StoreDriverMemory = "memory"
	StoreDriverRedis  = "redis"
)

type Config struct {
	App    AppConfig
	Source SourceConfig
	Store  StoreConfig
	Redis  RedisConfig
}

type AppConfig struct {
	Port       string
	Env        string
	LogLevel   string
	CORSOrigin string
}

type SourceConfig struct {
	URL     string
	Timeout time.Duration
}

type StoreConfig struct {
	Driver string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	Key      string
}

// LoadConfig reads path (usually ".env") when it exists and lets
// environment variables override it.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORS_ALLOWED_ORIGIN", "*")
	v.SetDefault("SOURCE_URL", DefaultSourceURL)
	v.SetDefault("SOURCE_TIMEOUT", "0s")
	v.SetDefault("STORE_DRIVER", StoreDriverMemory)
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_KEY", "doctors:snapshot")

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	sourceTimeout, err := time.ParseDuration(v.GetString("SOURCE_TIMEOUT"))
	if err != nil {
		sourceTimeout = 0
	}

	config := &Config{
		App: AppConfig{
			Port:       v.GetString("APP_PORT"),
			Env:        v.GetString("APP_ENV"),
			LogLevel:   v.GetString("LOG_LEVEL"),
			CORSOrigin: v.GetString("CORS_ALLOWED_ORIGIN"),
		},
		Source: SourceConfig{
			URL:     v.GetString("SOURCE_URL"),
			Timeout: sourceTimeout,
		},
		Store: StoreConfig{
			Driver: v.GetString("STORE_DRIVER"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
			Key:      v.GetString("REDIS_KEY"),
		},
	}

	return config, nil
}
