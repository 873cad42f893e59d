// Package config loads application configuration and sets up logging.
package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	EarthEngine EarthEngineConfig `yaml:"earthengine" mapstructure:"earthengine"`
	Log         LogConfig         `yaml:"log" mapstructure:"log"`
}

// EarthEngineConfig holds Earth Engine service-account and API settings.
type EarthEngineConfig struct {
	ServiceAccount  string  `yaml:"service_account" mapstructure:"service_account"`
	CredentialsPath string  `yaml:"credentials_path" mapstructure:"credentials_path"`
	Project         string  `yaml:"project" mapstructure:"project"`
	BaseURL         string  `yaml:"base_url" mapstructure:"base_url"`
	TokenURL        string  `yaml:"token_url" mapstructure:"token_url"`
	TimeoutSecs     int     `yaml:"timeout_secs" mapstructure:"timeout_secs"`
	RateLimitPerSec float64 `yaml:"rate_limit_per_sec" mapstructure:"rate_limit_per_sec"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("GEETILES")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("earthengine.service_account", "882446104421-compute@developer.gserviceaccount.com")
	v.SetDefault("earthengine.credentials_path", "gee_creds.json")
	v.SetDefault("earthengine.project", "msads-mba-autumn-2025-team-1")
	v.SetDefault("earthengine.base_url", "https://earthengine.googleapis.com/v1")
	v.SetDefault("earthengine.timeout_secs", 30)
	v.SetDefault("earthengine.rate_limit_per_sec", 5.0)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger. All output goes to stderr
// so stdout stays reserved for the result JSON.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}
	zapCfg.OutputPaths = []string{"stderr"}
	zapCfg.ErrorOutputPaths = []string{"stderr"}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
