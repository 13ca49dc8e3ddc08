/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package config loads backend configuration for the datastore handles:
// a YAML file for the stable settings, a .env file (when present) and
// process environment for credentials and overrides.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/suparena/entityresolve/errors"
)

// Backend names accepted in configuration.
const (
	BackendDynamoDB = "dynamodb"
	BackendSQLite   = "sqlite"
)

// DynamoDB holds the settings for the DynamoDB backend. Credentials are
// never read from YAML; they come from the environment (optionally via a
// .env file).
type DynamoDB struct {
	Region string `yaml:"region"`
	Table  string `yaml:"table"`

	AccessKey string `yaml:"-"`
	SecretKey string `yaml:"-"`
}

// SQLite holds the settings for the embedded backend.
type SQLite struct {
	Path string `yaml:"path"`
}

// Config is the root configuration document.
type Config struct {
	Backend  string   `yaml:"backend"`
	DynamoDB DynamoDB `yaml:"dynamodb"`
	SQLite   SQLite   `yaml:"sqlite"`
}

// Default returns the configuration used when no file is supplied: the
// embedded backend with a local catalog file.
func Default() *Config {
	return &Config{
		Backend: BackendSQLite,
		SQLite:  SQLite{Path: "catalog.db"},
	}
}

// Load reads configuration from the YAML file at path (skipped when path
// is empty), then applies environment overrides. A .env file in the
// working directory is honored when present.
func Load(path string) (*Config, error) {
	// Missing .env is the common case, not an error.
	_ = godotenv.Load()

	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config %q: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %q: %w", path, err)
		}
	}

	applyEnv(cfg)

	if cfg.Backend != BackendDynamoDB && cfg.Backend != BackendSQLite {
		return nil, errors.NewValidationError("backend", fmt.Sprintf("unknown backend %q", cfg.Backend))
	}
	if cfg.Backend == BackendDynamoDB && cfg.DynamoDB.Table == "" {
		return nil, errors.NewValidationError("dynamodb.table", "table name is required")
	}

	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("ENTITYRESOLVE_BACKEND"); v != "" {
		cfg.Backend = v
	}
	if v := os.Getenv("ENTITYRESOLVE_TABLE"); v != "" {
		cfg.DynamoDB.Table = v
	}
	if v := os.Getenv("ENTITYRESOLVE_SQLITE_PATH"); v != "" {
		cfg.SQLite.Path = v
	}
	if v := os.Getenv("AWS_REGION"); v != "" {
		cfg.DynamoDB.Region = v
	}
	cfg.DynamoDB.AccessKey = os.Getenv("AWS_ACCESS_KEY_ID")
	cfg.DynamoDB.SecretKey = os.Getenv("AWS_SECRET_ACCESS_KEY")
}
