package config

import (
	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/mkarimi/customer-ledger/pkg/logger"
	"github.com/pkg/errors"
)

var config *Config

// Config holds every configuration value the application reads. Only this
// struct may be consulted; no direct env access elsewhere.
type Config struct {
	AppEnv   string `env:"APP_ENV" default:"dev"`
	AppName  string `env:"APP_NAME" default:"customer_ledger"`
	AppDebug bool   `env:"APP_DEBUG" default:"1"`

	HTTPListenAddr string `env:"HTTP_LISTEN_ADDR" default:":8000"`

	DBDriver string `env:"DB_DRIVER" default:"sqlite"`
	DBPath   string `env:"DB_PATH" default:"customers.db"`

	PostgresHost     string `env:"POSTGRES_HOST"`
	PostgresPort     string `env:"POSTGRES_PORT"`
	PostgresUser     string `env:"POSTGRES_USER"`
	PostgresPassword string `env:"POSTGRES_PASSWORD"`
	PostgresDatabase string `env:"POSTGRES_DBNAME"`

	RedisAddr               string `env:"REDIS_ADDR"`
	RedisUsername           string `env:"REDIS_USER"`
	RedisPassword           string `env:"REDIS_PASS"`
	RedisDatabase           int    `env:"REDIS_DATABASE"`
	RedisUniversalKeyPrefix string `env:"REDIS_UNIVERSAL_KEY_PREFIX"`

	AdminPassword     string `env:"LEDGER_PASS" default:"changeme"`
	SessionTTLMinutes int    `env:"SESSION_TTL_MINUTES" default:"720"`

	PromNamespace string `env:"PROM_NAMESPACE"`
}

func Load(path string) error {
	logger.Info("loading configs..", "path", path)
	c := &Config{}
	var err error
	if path != "" {
		logger.Info("trying to publish env from file", "path", path)
		err = godotenv.Load(path)
		if err != nil {
			return errors.New("failed to load configuration file " + path + " error: " + err.Error())
		}
	}

	_, err = env.UnmarshalFromEnviron(c)
	if err != nil {
		return errors.New("failed to map env variables to Configuration object " + " error: " + err.Error())
	}

	config = c
	return nil
}

func Get() *Config {
	if config == nil {
		logger.Panic("Config is not initialized")
	}
	return config
}
