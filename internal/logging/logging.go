// Package logging builds the process zap logger.
package logging

import (
	"go.uber.org/zap"
)

// Config holds logging configuration
type Config struct {
	Level       string `yaml:"level" env:"PARTSCOPE_LOG_LEVEL" env-default:"warn"`
	Format      string `yaml:"format" env:"PARTSCOPE_LOG_FORMAT" env-default:"console"` // "json" or "console"
	Development bool   `yaml:"development" env:"PARTSCOPE_LOG_DEVELOPMENT"`
}

// New builds a logger writing to stderr. An unparseable level falls back to info.
func New(cfg Config) (*zap.Logger, error) {
	var zapConfig zap.Config
	if cfg.Development {
		zapConfig = zap.NewDevelopmentConfig()
	} else {
		zapConfig = zap.NewProductionConfig()
	}

	level, err := zap.ParseAtomicLevel(cfg.Level)
	if err != nil {
		level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	zapConfig.Level = level

	if cfg.Format == "json" {
		zapConfig.Encoding = "json"
	} else {
		zapConfig.Encoding = "console"
	}
	zapConfig.OutputPaths = []string{"stderr"}
	zapConfig.ErrorOutputPaths = []string{"stderr"}

	return zapConfig.Build()
}
