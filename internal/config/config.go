// Package config loads and validates stacgen runtime configuration from
// config files, environment variables, and flags via viper.
package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/trendsearth/stacgen/pkg/errors"
)

var validate = validator.New()

// Defaults for the generated catalog identity, matching the Trends.Earth
// publishing conventions.
const (
	DefaultDataDir     = "./data"
	DefaultOutputDir   = "./catalog"
	DefaultCatalogID   = "trends-earth-catalog"
	DefaultTitle       = "Trends.Earth STAC Catalog"
	DefaultDescription = "A STAC catalog for organizing Trends.Earth JSON outputs."
	DefaultServerHost  = "0.0.0.0"
	DefaultServerPort  = 7000
)

// Config carries all runtime settings for a stacgen run.
type Config struct {
	// DataDir is the root of the per-country input directories.
	DataDir string `mapstructure:"data_dir" validate:"required"`

	// OutputDir is where the generated catalog tree is written.
	OutputDir string `mapstructure:"output_dir" validate:"required"`

	// DatasetsFile optionally points to a YAML file overriding the
	// built-in dataset kind table and per-country bounding boxes.
	DatasetsFile string `mapstructure:"datasets_file"`

	Catalog CatalogConfig `mapstructure:"catalog"`
	Server  ServerConfig  `mapstructure:"server"`
}

// CatalogConfig is the identity of the generated root catalog.
type CatalogConfig struct {
	ID          string `mapstructure:"id" validate:"required"`
	Title       string `mapstructure:"title"`
	Description string `mapstructure:"description" validate:"required"`
}

// ServerConfig configures the preview server.
type ServerConfig struct {
	Host string `mapstructure:"host" validate:"required"`
	Port int    `mapstructure:"port" validate:"min=1,max=65535"`
}

// SetDefaults registers all configuration defaults with viper.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("data_dir", DefaultDataDir)
	v.SetDefault("output_dir", DefaultOutputDir)
	v.SetDefault("datasets_file", "")
	v.SetDefault("catalog.id", DefaultCatalogID)
	v.SetDefault("catalog.title", DefaultTitle)
	v.SetDefault("catalog.description", DefaultDescription)
	v.SetDefault("server.host", DefaultServerHost)
	v.SetDefault("server.port", DefaultServerPort)
}

// Load unmarshals and validates the configuration from viper.
func Load(v *viper.Viper) (*Config, error) {
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.NewConfigError("config", "failed to unmarshal configuration", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration for structural problems.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return errors.NewConfigError("config", "invalid configuration", err)
	}
	return nil
}

// CheckDataDir verifies the input directory exists. A missing data
// directory aborts the run.
func (c *Config) CheckDataDir() error {
	info, err := os.Stat(c.DataDir)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.NewConfigError("config", "data directory does not exist: "+c.DataDir, err)
		}
		return errors.WrapIO("stat", c.DataDir, err)
	}
	if !info.IsDir() {
		return errors.NewConfigError("config", "data path is not a directory: "+c.DataDir, nil)
	}
	return nil
}
