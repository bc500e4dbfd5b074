package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type HTTP struct {
	Host string
	Port int
}

type JWT struct {
	Secret string
	Issuer string
	ExpMin int
}

type RateLimit struct {
	Requests int
	Window   time.Duration
}

type Config struct {
	DatabaseURL string
	HTTP        HTTP
	JWT         JWT
	BcryptCost  int
	RateLimit   RateLimit
}

// Load builds the process configuration from an optional yaml file and the
// environment; environment variables win. DATABASE_URL has no default and its
// absence is a startup error.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("port", 5000)
	v.SetDefault("jwt.issuer", "techwritehub")
	v.SetDefault("jwt.exp_min", 60)
	v.SetDefault("bcrypt_cost", 12)
	v.SetDefault("rate_limit.requests", 100)
	v.SetDefault("rate_limit.window", 15*time.Minute)

	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	dsn := v.GetString("database_url")
	if dsn == "" {
		return nil, errors.New("DATABASE_URL is not set")
	}

	cfg := &Config{
		DatabaseURL: dsn,
		HTTP:        HTTP{Host: v.GetString("host"), Port: v.GetInt("port")},
		JWT:         JWT{Secret: v.GetString("jwt_secret"), Issuer: v.GetString("jwt.issuer"), ExpMin: v.GetInt("jwt.exp_min")},
		BcryptCost:  v.GetInt("bcrypt_cost"),
		RateLimit:   RateLimit{Requests: v.GetInt("rate_limit.requests"), Window: v.GetDuration("rate_limit.window")},
	}
	if cfg.JWT.Secret == "" {
		cfg.JWT.Secret = v.GetString("jwt.secret")
	}
	if cfg.JWT.Secret == "" {
		cfg.JWT.Secret = "dev-secret"
	}
	if cfg.JWT.ExpMin <= 0 {
		cfg.JWT.ExpMin = 60
	}
	if cfg.BcryptCost <= 0 {
		cfg.BcryptCost = 12
	}
	return cfg, nil
}
