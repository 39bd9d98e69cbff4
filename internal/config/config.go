package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/fuelview/fuelview/internal/dataset"
	"github.com/fuelview/fuelview/internal/selector"
)

// FileName is the default config file name.
const FileName = "fuelview.yaml"

// Config represents the top-level fuelview.yaml configuration.
type Config struct {
	Data   DataConfig   `yaml:"data"`
	Query  QueryConfig  `yaml:"query"`
	Server ServerConfig `yaml:"server"`
	Log    LogConfig    `yaml:"log"`
}

// DataConfig locates the fuel transaction spreadsheet.
type DataConfig struct {
	Path    string          `yaml:"path"`
	Sheet   string          `yaml:"sheet,omitempty"` // xlsx only; first sheet when empty
	Columns dataset.Columns `yaml:"columns"`
}

// QueryConfig controls vehicle matching and ceilings.
type QueryConfig struct {
	CaseInsensitive bool     `yaml:"case_insensitive"`
	MaxConsumed     *float64 `yaml:"max_consumed,omitempty"`
	MaxKmpl         *float64 `yaml:"max_kmpl,omitempty"`
}

// ServerConfig controls the web dashboard.
type ServerConfig struct {
	Addr           string   `yaml:"addr"`
	AllowedOrigins []string `yaml:"allowed_origins,omitempty"`
}

// LogConfig controls structured logging.
type LogConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file,omitempty"` // rotated log file; stdout only when empty
	MaxSizeMB  int    `yaml:"max_size_mb,omitempty"`
	MaxBackups int    `yaml:"max_backups,omitempty"`
}

// Load reads a fuelview.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Data: DataConfig{
			Path:    "task1.xlsx",
			Columns: dataset.DefaultColumns(),
		},
		Query: QueryConfig{
			CaseInsensitive: true,
		},
		Server: ServerConfig{
			Addr:           ":8080",
			AllowedOrigins: []string{"http://localhost:8080"},
		},
		Log: LogConfig{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
	}
}

// Resolve loads path if it exists, otherwise starts from Default. Variables
// from envFile (if present) and then the process environment override it.
func Resolve(path, envFile string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		cfg = Default()
	} else if err != nil {
		return nil, err
	}

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loading %s: %w", envFile, err)
		}
	}
	if err := ApplyEnv(cfg, os.LookupEnv); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides cfg with FUELVIEW_* variables returned by lookup.
func ApplyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok {
			*dst = v
		}
	}
	str("FUELVIEW_DATA", &cfg.Data.Path)
	str("FUELVIEW_SHEET", &cfg.Data.Sheet)
	str("FUELVIEW_ADDR", &cfg.Server.Addr)
	str("FUELVIEW_LOG_LEVEL", &cfg.Log.Level)
	str("FUELVIEW_LOG_FILE", &cfg.Log.File)

	if v, ok := lookup("FUELVIEW_CASE_INSENSITIVE"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("parsing FUELVIEW_CASE_INSENSITIVE %q: %w", v, err)
		}
		cfg.Query.CaseInsensitive = b
	}
	for key, dst := range map[string]**float64{
		"FUELVIEW_MAX_CONSUMED": &cfg.Query.MaxConsumed,
		"FUELVIEW_MAX_KMPL":     &cfg.Query.MaxKmpl,
	} {
		v, ok := lookup(key)
		if !ok {
			continue
		}
		if v == "" {
			*dst = nil
			continue
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("parsing %s %q: %w", key, v, err)
		}
		*dst = &f
	}
	return nil
}

// DatasetOptions returns the load options described by the config.
func (c *Config) DatasetOptions() dataset.Options {
	return dataset.Options{Columns: c.Data.Columns, Sheet: c.Data.Sheet}
}

// SelectorOptions returns the query options described by the config.
func (c *Config) SelectorOptions() selector.Options {
	opts := selector.Options{CaseInsensitive: c.Query.CaseInsensitive}
	if c.Query.MaxConsumed != nil {
		opts.MaxConsumed = decimal.NewNullDecimal(decimal.NewFromFloat(*c.Query.MaxConsumed))
	}
	if c.Query.MaxKmpl != nil {
		opts.MaxKmpl = decimal.NewNullDecimal(decimal.NewFromFloat(*c.Query.MaxKmpl))
	}
	return opts
}
