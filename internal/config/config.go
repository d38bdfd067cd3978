// Package config loads partscope settings from an optional YAML file with
// environment overrides.
package config

import (
	"fmt"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/partscope/partscope/internal/logging"
	"github.com/partscope/partscope/partscope"
	"github.com/partscope/partscope/partscope/storage"
)

type Config struct {
	Catalog CatalogConfig  `yaml:"catalog"`
	Log     logging.Config `yaml:"log"`
	Plot    PlotConfig     `yaml:"plot"`
}

// CatalogConfig selects and locates the catalog source.
type CatalogConfig struct {
	Backend        string `yaml:"backend" env:"PARTSCOPE_BACKEND" env-default:"json"`
	Path           string `yaml:"path" env:"PARTSCOPE_CATALOG_PATH" env-default:"devices.json"`
	SQLiteDriver   string `yaml:"sqlite_driver" env:"PARTSCOPE_SQLITE_DRIVER" env-default:"sqlite"`
	Table          string `yaml:"table" env:"PARTSCOPE_TABLE" env-default:"devices"`
	PostgresDSN    string `yaml:"-" env:"PARTSCOPE_POSTGRES_DSN"`
	PostgresSchema string `yaml:"postgres_schema" env:"PARTSCOPE_POSTGRES_SCHEMA" env-default:"partscope"`
	S3Bucket       string `yaml:"s3_bucket" env:"PARTSCOPE_S3_BUCKET"`
	S3Key          string `yaml:"s3_key" env:"PARTSCOPE_S3_KEY" env-default:"devices.json"`
	S3Region       string `yaml:"s3_region" env:"PARTSCOPE_S3_REGION" env-default:"us-east-1"`
	S3Endpoint     string `yaml:"s3_endpoint" env:"PARTSCOPE_S3_ENDPOINT"`
	S3PathStyle    bool   `yaml:"s3_path_style" env:"PARTSCOPE_S3_PATH_STYLE"`
}

// PlotConfig holds the initial plot settings for new sessions.
type PlotConfig struct {
	XField   string `yaml:"x_field" env:"PARTSCOPE_PLOT_X" env-default:"vds"`
	YField   string `yaml:"y_field" env:"PARTSCOPE_PLOT_Y" env-default:"rdsontyp10vgs25ta"`
	Scale    string `yaml:"scale" env:"PARTSCOPE_PLOT_SCALE" env-default:"log"`
	ZoomMode string `yaml:"zoom_mode" env:"PARTSCOPE_PLOT_ZOOM" env-default:"xy"`
}

// Load reads path (if non-empty) and applies environment overrides and defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	var err error
	if path == "" {
		err = cleanenv.ReadEnv(cfg)
	} else {
		err = cleanenv.ReadConfig(path, cfg)
	}
	if err != nil {
		return nil, partscope.Wrap(partscope.ErrConfig, "load config", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if _, err := c.Catalog.BackendKind(); err != nil {
		return err
	}
	if err := storage.ValidateTable(c.Catalog.Table); err != nil {
		return err
	}
	switch c.Catalog.SQLiteDriver {
	case "sqlite", "sqlite3":
	default:
		return partscope.ConfigError("catalog.sqlite_driver", fmt.Sprintf("must be sqlite or sqlite3, got %q", c.Catalog.SQLiteDriver))
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return partscope.ConfigError("log.format", fmt.Sprintf("must be json or console, got %q", c.Log.Format))
	}
	_, err := c.Plot.PlotConfig()
	return err
}

// BackendKind parses the configured backend name.
func (c CatalogConfig) BackendKind() (storage.Backend, error) {
	b := storage.Backend(strings.ToLower(strings.TrimSpace(c.Backend)))
	for _, known := range storage.Backends() {
		if b == known {
			return b, nil
		}
	}
	return "", partscope.ConfigError("catalog.backend", fmt.Sprintf("unknown backend %q", c.Backend))
}

// PlotConfig converts the settings into the session's plot configuration.
func (p PlotConfig) PlotConfig() (partscope.PlotConfig, error) {
	scale, err := partscope.ParseScale(p.Scale)
	if err != nil {
		return partscope.PlotConfig{}, err
	}
	zoom, err := partscope.ParseZoomMode(p.ZoomMode)
	if err != nil {
		return partscope.PlotConfig{}, err
	}
	out := partscope.PlotConfig{XField: p.XField, YField: p.YField, Scale: scale, ZoomMode: zoom}
	return out, out.Validate()
}
