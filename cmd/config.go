package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/lightlink-network/dai-tracker/explorer"
	"github.com/lightlink-network/dai-tracker/graphql"
)

// Config is read from the environment (optionally seeded from .env)
type Config struct {
	GraphQLEndpoint string        `validate:"required,url"`
	ExplorerURL     string        `validate:"required,url"`
	Port            string        `validate:"required,numeric"`
	First           int           `validate:"min=1,max=1000"`
	FetchTimeout    time.Duration `validate:"min=0"`
}

func loadConfig(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		GraphQLEndpoint: getenv("GRAPHQL_ENDPOINT"),
		ExplorerURL:     getenv("EXPLORER_URL"),
		Port:            getenv("API_PORT"),
		First:           graphql.DefaultFirst,
	}

	if cfg.GraphQLEndpoint == "" {
		return nil, fmt.Errorf("GRAPHQL_ENDPOINT environment variable not defined")
	}
	if cfg.ExplorerURL == "" {
		cfg.ExplorerURL = explorer.DefaultBaseURL
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	if v := getenv("TRANSFERS_FIRST"); v != "" {
		first, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("failed to parse TRANSFERS_FIRST: %w", err)
		}
		cfg.First = first
	}

	if v := getenv("FETCH_TIMEOUT"); v != "" {
		timeout, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("failed to parse FETCH_TIMEOUT: %w", err)
		}
		cfg.FetchTimeout = timeout
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func loadConfigFromEnv() (*Config, error) {
	return loadConfig(os.Getenv)
}
