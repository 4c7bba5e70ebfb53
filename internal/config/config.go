package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Database struct {
		Driver string `mapstructure:"driver"` // "postgres" or "sqlite"
		DSN    string `mapstructure:"dsn"`
	} `mapstructure:"database"`

	Server struct {
		Addr string `mapstructure:"addr"`
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`

	Pagination struct {
		DefaultLimit int `mapstructure:"default_limit"`
		MaxLimit     int `mapstructure:"max_limit"`
	} `mapstructure:"pagination"`

	Redis struct {
		Address  string `mapstructure:"address"`
		Password string `mapstructure:"password"`
		DB       int    `mapstructure:"db"`
	} `mapstructure:"redis"`

	Worker struct {
		Concurrency int            `mapstructure:"concurrency"`
		Queues      map[string]int `mapstructure:"queues"`
		MetricsAddr string         `mapstructure:"metrics_addr"` // empty disables the scrape endpoint
	} `mapstructure:"worker"`

	Ingest struct {
		DefaultCategory string `mapstructure:"default_category"`
	} `mapstructure:"ingest"`
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	viper.SetDefault("database.driver", "sqlite")
	viper.SetDefault("database.dsn", "posts.db")
	viper.SetDefault("server.addr", "localhost")
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("pagination.default_limit", 10)
	viper.SetDefault("pagination.max_limit", 100)
	viper.SetDefault("redis.address", "localhost:6379")
	viper.SetDefault("worker.concurrency", 4)
	viper.SetDefault("ingest.default_category", "general")

	viper.AutomaticEnv()
	viper.BindEnv("database.dsn", "VERBA_DATABASE_DSN")
	viper.BindEnv("database.driver", "VERBA_DATABASE_DRIVER")

	if err := viper.ReadInConfig(); err != nil {
		// Missing config file is fine; defaults and env vars apply.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}
	return &config, nil
}
