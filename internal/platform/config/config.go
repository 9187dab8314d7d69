package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// AppConfig holds runtime settings, loaded from APOTEK_* environment
// variables. Flag values from the CLI entry point override these.
type AppConfig struct {
	ExportDir string `envconfig:"EXPORT_DIR" default:"."`
	ChartDir  string `envconfig:"CHART_DIR" default:"."`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
}

func Load() (AppConfig, error) {
	var cfg AppConfig
	if err := envconfig.Process("apotek", &cfg); err != nil {
		return AppConfig{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
