package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort  string        `mapstructure:"SERVER_PORT" validate:"required,numeric"`
	DBDriver    string        `mapstructure:"DB_DRIVER" validate:"oneof=mysql postgres"`
	DatabaseDSN string        `mapstructure:"DATABASE_DSN" validate:"required"`
	RedisAddr   string        `mapstructure:"REDIS_ADDR"`
	RedisDB     int           `mapstructure:"REDIS_DB" validate:"gte=0"`
	RedisPass   string        `mapstructure:"REDIS_PASSWORD"`
	JWTSecret   string        `mapstructure:"JWT_SECRET" validate:"required"`
	TokenTTL    time.Duration `mapstructure:"TOKEN_TTL" validate:"gt=0"`
	LogLevel    string        `mapstructure:"LOG_LEVEL" validate:"oneof=debug info warn error"`
	SwaggerHost string        `mapstructure:"SWAGGER_HOST"`
	ResetDB     bool          `mapstructure:"RESET_DB"`
	SeedSource  string        `mapstructure:"SEED_SOURCE"`
}

var defaults = map[string]interface{}{
	"SERVER_PORT":    "8080",
	"DB_DRIVER":      "mysql",
	"DATABASE_DSN":   "user:password@tcp(localhost:3306)/app?charset=utf8mb4&parseTime=True&loc=Local",
	"REDIS_ADDR":     "localhost:6379",
	"REDIS_DB":       0,
	"REDIS_PASSWORD": "",
	"JWT_SECRET":     "",
	"TOKEN_TTL":      7 * 24 * time.Hour,
	"LOG_LEVEL":      "info",
	"SWAGGER_HOST":   "",
	"RESET_DB":       false,
	"SEED_SOURCE":    "products.json",
}

// Load builds Config from a .env file (when present) and the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}
