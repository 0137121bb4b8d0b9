// Package config provides application configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"log"

	"github.com/spf13/viper"
)

// Blob backend selection values.
const (
	BlobBackendLocal  = "local"
	BlobBackendRemote = "remote"
)

// Config holds application configuration values loaded from file or environment variables.
type Config struct {
	Port          string `mapstructure:"PORT"`
	Env           string `mapstructure:"APP_ENV"`
	AdminUsername string `mapstructure:"ADMIN_USERNAME"`
	AdminPassword string `mapstructure:"ADMIN_PASSWORD"`

	BlobBackend        string `mapstructure:"BLOB_BACKEND"`
	UploadDir          string `mapstructure:"UPLOAD_DIR"`
	BlobBaseURL        string `mapstructure:"BLOB_BASE_URL"`
	BlobToken          string `mapstructure:"BLOB_TOKEN"`
	BlobTimeoutSeconds int    `mapstructure:"BLOB_TIMEOUT_SECONDS"`

	ViewsDir     string `mapstructure:"VIEWS_DIR"`
	PublicDir    string `mapstructure:"PUBLIC_DIR"`
	SeedDemoData bool   `mapstructure:"SEED_DEMO_DATA"`
}

// LoadConfig loads application configuration from file and environment variables.
func LoadConfig() (*Config, error) {
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AutomaticEnv()

	// The config file is optional; environment variables and defaults cover
	// the development setup.
	_ = viper.ReadInConfig()

	viper.SetDefault("PORT", "3000")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("ADMIN_USERNAME", "admin")
	viper.SetDefault("ADMIN_PASSWORD", "12345")
	viper.SetDefault("BLOB_BACKEND", BlobBackendLocal)
	viper.SetDefault("UPLOAD_DIR", "./uploads")
	viper.SetDefault("BLOB_BASE_URL", "")
	viper.SetDefault("BLOB_TOKEN", "")
	viper.SetDefault("BLOB_TIMEOUT_SECONDS", 10)
	viper.SetDefault("VIEWS_DIR", "./views")
	viper.SetDefault("PUBLIC_DIR", "./public")
	viper.SetDefault("SEED_DEMO_DATA", true)

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Validate ensures that required configuration values are present and meet security standards.
func (c *Config) Validate() error {
	if c.Port == "" {
		return errors.New("PORT is required")
	}
	if c.AdminUsername == "" || c.AdminPassword == "" {
		return errors.New("ADMIN_USERNAME and ADMIN_PASSWORD are required")
	}

	switch c.BlobBackend {
	case BlobBackendLocal:
		if c.UploadDir == "" {
			return errors.New("UPLOAD_DIR is required for the local blob backend")
		}
	case BlobBackendRemote:
		if c.BlobBaseURL == "" {
			return errors.New("BLOB_BASE_URL is required for the remote blob backend")
		}
		if c.BlobToken == "" {
			return errors.New("BLOB_TOKEN is required for the remote blob backend")
		}
	default:
		return fmt.Errorf("BLOB_BACKEND must be %q or %q", BlobBackendLocal, BlobBackendRemote)
	}

	if c.BlobTimeoutSeconds <= 0 {
		return errors.New("BLOB_TIMEOUT_SECONDS must be positive")
	}

	isProduction := c.Env == "production" || c.Env == "prod"
	if isProduction {
		if c.AdminPassword == "12345" {
			return errors.New("ADMIN_PASSWORD must be changed from the default value in production")
		}
		if len(c.AdminPassword) < 12 {
			return errors.New("ADMIN_PASSWORD must be at least 12 characters in production")
		}
	} else {
		if c.AdminPassword == "12345" {
			log.Println("WARNING: ADMIN_PASSWORD is the default value. Change it before deploying.")
		}
	}

	return nil
}
