// Package config loads service configuration from an optional YAML file,
// .env files and COVID_* environment variables, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	SourceHTTP     = "http"
	SourcePostgres = "postgres"

	DefaultDatasetURL = "https://raw.githubusercontent.com/owid/covid-19-data/master/public/data/owid-covid-data.csv"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Dataset   DatasetConfig   `yaml:"dataset"`
	Postgres  PostgresConfig  `yaml:"postgres"`
	Log       LogConfig       `yaml:"log"`
	Dashboard DashboardConfig `yaml:"dashboard"`
}

type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type DatasetConfig struct {
	Source        string        `yaml:"source"` // "http" | "postgres"
	URL           string        `yaml:"url"`
	TTL           time.Duration `yaml:"ttl"`
	Timeout       time.Duration `yaml:"timeout"`
	FetchAttempts int           `yaml:"fetch_attempts"`
}

type PostgresConfig struct {
	DSN   string `yaml:"dsn"`
	Table string `yaml:"table"`
}

type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

type DashboardConfig struct {
	DefaultLocations []string `yaml:"default_locations"`
}

// Load reads path (a missing file is not an error), then .env files, then env overrides.
func Load(path string) (*Config, error) {
	if err := loadEnvFiles(); err != nil {
		return nil, err
	}

	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		case os.IsNotExist(err):
			// env-only configuration
		default:
			return nil, fmt.Errorf("read config file %s: %w", path, err)
		}
	}

	cfg.SetDefaults()
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func loadEnvFiles() error {
	if envFile := os.Getenv("ENV_FILE"); envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("load env file %s: %w", envFile, err)
		}
		return nil
	}
	// godotenv never overrides variables that are already set, so .env.local wins over .env.
	for _, f := range []string{".env.local", ".env"} {
		if err := godotenv.Load(f); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

func (c *Config) SetDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 5 * time.Second
	}
	if c.Dataset.Source == "" {
		c.Dataset.Source = SourceHTTP
	}
	if c.Dataset.URL == "" {
		c.Dataset.URL = DefaultDatasetURL
	}
	if c.Dataset.TTL == 0 {
		c.Dataset.TTL = time.Hour
	}
	if c.Dataset.Timeout == 0 {
		c.Dataset.Timeout = 2 * time.Minute
	}
	if c.Dataset.FetchAttempts == 0 {
		c.Dataset.FetchAttempts = 3
	}
	if c.Postgres.Table == "" {
		c.Postgres.Table = "owid_covid_data"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if len(c.Dashboard.DefaultLocations) == 0 {
		c.Dashboard.DefaultLocations = []string{"World", "India", "United States", "Brazil"}
	}
}

func (c *Config) applyEnv() error {
	setString(&c.Server.Addr, "COVID_SERVER_ADDR")
	setString(&c.Dataset.Source, "COVID_DATASET_SOURCE")
	setString(&c.Dataset.URL, "COVID_DATASET_URL")
	setString(&c.Postgres.DSN, "POSTGRES_DSN")
	setString(&c.Postgres.DSN, "COVID_POSTGRES_DSN")
	setString(&c.Postgres.Table, "COVID_POSTGRES_TABLE")
	setString(&c.Log.Level, "COVID_LOG_LEVEL")

	if v := os.Getenv("COVID_DEFAULT_LOCATIONS"); v != "" {
		c.Dashboard.DefaultLocations = SplitList(v)
	}

	for key, dst := range map[string]*time.Duration{
		"COVID_DATASET_TTL":             &c.Dataset.TTL,
		"COVID_DATASET_TIMEOUT":         &c.Dataset.Timeout,
		"COVID_SERVER_SHUTDOWN_TIMEOUT": &c.Server.ShutdownTimeout,
	} {
		v := os.Getenv(key)
		if v == "" {
			continue
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, key, err)
		}
		*dst = d
	}

	if v := os.Getenv("COVID_DATASET_FETCH_ATTEMPTS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: COVID_DATASET_FETCH_ATTEMPTS: %v", ErrInvalidConfig, err)
		}
		c.Dataset.FetchAttempts = n
	}

	if v := os.Getenv("COVID_LOG_DEVELOPMENT"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: COVID_LOG_DEVELOPMENT: %v", ErrInvalidConfig, err)
		}
		c.Log.Development = b
	}
	return nil
}

func (c *Config) Validate() error {
	switch c.Dataset.Source {
	case SourceHTTP:
		if c.Dataset.URL == "" {
			return fmt.Errorf("%w: dataset.url is required", ErrInvalidConfig)
		}
	case SourcePostgres:
		if c.Postgres.DSN == "" {
			return fmt.Errorf("%w: postgres.dsn is required for postgres source", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown dataset.source %q", ErrInvalidConfig, c.Dataset.Source)
	}
	if c.Dataset.TTL <= 0 {
		return fmt.Errorf("%w: dataset.ttl must be positive", ErrInvalidConfig)
	}
	if c.Dataset.FetchAttempts < 1 {
		return fmt.Errorf("%w: dataset.fetch_attempts must be >= 1", ErrInvalidConfig)
	}
	return nil
}

// SourceKey identifies the configured dataset source; it is the cache key.
func (c *Config) SourceKey() string {
	if c.Dataset.Source == SourcePostgres {
		return SourcePostgres + ":" + c.Postgres.Table
	}
	return c.Dataset.URL
}

// SplitList splits a comma separated list, trimming blanks.
func SplitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
