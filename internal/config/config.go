package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"poke_explorer/internal/models"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Store drivers.
const (
	DriverSQLite = "sqlite"
	DriverMongo  = "mongo"
)

var ErrMissingSecret = errors.New("jwt.secret is required (set JWT_SECRET)")

// Config is the server configuration assembled from configs/config.yml,
// the process environment and an optional .env file.
type Config struct {
	Port string `mapstructure:"port"`

	Log struct {
		Level  string `mapstructure:"level"`
		Format string `mapstructure:"format"`
	} `mapstructure:"log"`

	JWT struct {
		Secret string        `mapstructure:"secret"`
		TTL    time.Duration `mapstructure:"ttl"`
	} `mapstructure:"jwt"`

	Store struct {
		Driver string `mapstructure:"driver"`
		SQLite struct {
			Path string `mapstructure:"path"`
		} `mapstructure:"sqlite"`
		Mongo struct {
			URI      string `mapstructure:"uri"`
			Database string `mapstructure:"database"`
		} `mapstructure:"mongo"`
	} `mapstructure:"store"`

	PokeAPI struct {
		BaseURL string        `mapstructure:"base_url"`
		Timeout time.Duration `mapstructure:"timeout"`
	} `mapstructure:"pokeapi"`

	Cache struct {
		Redis struct {
			Enabled  bool          `mapstructure:"enabled"`
			Addr     string        `mapstructure:"addr"`
			Password string        `mapstructure:"password"`
			DB       int           `mapstructure:"db"`
			TTL      time.Duration `mapstructure:"ttl"`
		} `mapstructure:"redis"`
	} `mapstructure:"cache"`

	CORS struct {
		AllowedOrigins []string `mapstructure:"allowed_origins"`
	} `mapstructure:"cors"`

	History struct {
		Limit int `mapstructure:"limit"`
	} `mapstructure:"history"`
}

// setDefaults registers fallbacks so the server starts with only JWT_SECRET set.
func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "5000")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.ttl", 30*24*time.Hour)
	v.SetDefault("store.driver", DriverSQLite)
	v.SetDefault("store.sqlite.path", "poke.db")
	v.SetDefault("store.mongo.uri", "mongodb://localhost:27017")
	v.SetDefault("store.mongo.database", "poke_explorer")
	v.SetDefault("pokeapi.base_url", "https://pokeapi.co/api/v2")
	v.SetDefault("pokeapi.timeout", 10*time.Second)
	v.SetDefault("cache.redis.enabled", false)
	v.SetDefault("cache.redis.addr", "localhost:6379")
	v.SetDefault("cache.redis.password", "")
	v.SetDefault("cache.redis.db", 0)
	v.SetDefault("cache.redis.ttl", time.Hour)
	v.SetDefault("cors.allowed_origins", []string{"*"})
	v.SetDefault("history.limit", models.MaxHistoryEntries)
}

// Load reads config.yml from the given directories (first match wins), then
// overlays environment variables: "jwt.secret" is read from JWT_SECRET,
// "store.mongo.uri" from STORE_MONGO_URI and so on. A missing config file is
// not an error. A .env file in the working directory is loaded first.
func Load(paths ...string) (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if len(paths) > 0 {
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.JWT.Secret) == "" {
		return ErrMissingSecret
	}
	switch c.Store.Driver {
	case DriverSQLite, DriverMongo:
	default:
		return fmt.Errorf("unknown store.driver %q (want %q or %q)", c.Store.Driver, DriverSQLite, DriverMongo)
	}
	if c.JWT.TTL <= 0 {
		return fmt.Errorf("jwt.ttl must be positive, got %s", c.JWT.TTL)
	}
	if c.History.Limit <= 0 || c.History.Limit > models.MaxHistoryEntries {
		c.History.Limit = models.MaxHistoryEntries
	}
	return nil
}
