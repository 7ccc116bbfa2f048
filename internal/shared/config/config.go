package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	App   AppConfig      `koanf:"app"`
	Port  string         `koanf:"port"`
	DB    DatabaseConfig `koanf:"db"`
	Redis RedisConfig    `koanf:"redis"`
	JWT   JWTConfig      `koanf:"jwt"`
	CORS  CORSConfig     `koanf:"cors"`
	Leave LeaveConfig    `koanf:"leave"`
}

type AppConfig struct {
	Env string `koanf:"env"`
}

type DatabaseConfig struct {
	Host       string `koanf:"host"`
	User       string `koanf:"user"`
	Password   string `koanf:"password"`
	Name       string `koanf:"name"`
	Port       string `koanf:"port"`
	SSLMode    string `koanf:"sslmode"`
	MaxRetries int    `koanf:"max_retries"`
}

// Addr empty disables the idempotency store.
type RedisConfig struct {
	Addr       string `koanf:"addr"`
	MaxRetries int    `koanf:"max_retries"`
}

type JWTConfig struct {
	Secret string        `koanf:"secret"`
	TTL    time.Duration `koanf:"ttl"`
}

type CORSConfig struct {
	Origins []string `koanf:"origins"`
}

type LeaveConfig struct {
	Balance int `koanf:"balance"`
}

func (c Config) IsDevelopment() bool {
	return c.App.Env == EnvDevelopment
}

func Default() Config {
	return Config{
		App:  AppConfig{Env: EnvProduction},
		Port: "5000",
		DB: DatabaseConfig{
			Host:       "localhost",
			User:       "postgres",
			Name:       "attendance",
			Port:       "5432",
			SSLMode:    "disable",
			MaxRetries: 5,
		},
		Redis: RedisConfig{MaxRetries: 3},
		JWT:   JWTConfig{TTL: 24 * time.Hour},
		CORS:  CORSConfig{Origins: []string{"http://localhost:3000"}},
		Leave: LeaveConfig{Balance: 20},
	}
}

var envKeys = map[string]string{
	"APP_ENV":           "app.env",
	"PORT":              "port",
	"DB_HOST":           "db.host",
	"DB_USER":           "db.user",
	"DB_PASSWORD":       "db.password",
	"DB_NAME":           "db.name",
	"DB_PORT":           "db.port",
	"DB_SSLMODE":        "db.sslmode",
	"DB_MAX_RETRIES":    "db.max_retries",
	"REDIS_ADDR":        "redis.addr",
	"REDIS_MAX_RETRIES": "redis.max_retries",
	"JWT_SECRET":        "jwt.secret",
	"JWT_TTL":           "jwt.ttl",
	"CORS_ORIGIN":       "cors.origins",
	"CORS_ORIGINS":      "cors.origins",
	"LEAVE_BALANCE":     "leave.balance",
}

// Load layers environment variables over Default. Callers load .env first.
func Load() (Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return Config{}, fmt.Errorf("failed to load defaults: %w", err)
	}

	if err := k.Load(env.Provider(".", env.Opt{
		TransformFunc: func(key, value string) (string, any) {
			path, ok := envKeys[key]
			if !ok || strings.TrimSpace(value) == "" {
				return "", nil
			}
			if path == "cors.origins" {
				return path, splitList(value)
			}
			return path, value
		},
	}), nil); err != nil {
		return Config{}, fmt.Errorf("failed to load environment variables: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		if c.App.Env != EnvDevelopment {
			return errors.New("JWT_SECRET must be set outside development")
		}
		c.JWT.Secret = "dev-secret-change-me"
	}
	if c.JWT.TTL <= 0 {
		return fmt.Errorf("JWT_TTL must be positive, got %s", c.JWT.TTL)
	}
	if c.Leave.Balance < 0 {
		return fmt.Errorf("LEAVE_BALANCE must not be negative, got %d", c.Leave.Balance)
	}
	return nil
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
