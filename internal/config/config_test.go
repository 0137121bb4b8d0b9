package config

import (
	"os"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Port:               "3000",
		Env:                "development",
		AdminUsername:      "admin",
		AdminPassword:      "12345",
		BlobBackend:        BlobBackendLocal,
		UploadDir:          "./uploads",
		BlobTimeoutSeconds: 10,
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		expectError bool
	}{
		{"development defaults", func(*Config) {}, false},
		{"missing port", func(c *Config) { c.Port = "" }, true},
		{"missing admin username", func(c *Config) { c.AdminUsername = "" }, true},
		{"unknown blob backend", func(c *Config) { c.BlobBackend = "s3" }, true},
		{"local backend without upload dir", func(c *Config) { c.UploadDir = "" }, true},
		{"remote backend without base url", func(c *Config) {
			c.BlobBackend = BlobBackendRemote
			c.BlobToken = "tok"
		}, true},
		{"remote backend without token", func(c *Config) {
			c.BlobBackend = BlobBackendRemote
			c.BlobBaseURL = "https://blob.example.com"
		}, true},
		{"remote backend complete", func(c *Config) {
			c.BlobBackend = BlobBackendRemote
			c.BlobBaseURL = "https://blob.example.com"
			c.BlobToken = "tok"
		}, false},
		{"non-positive blob timeout", func(c *Config) { c.BlobTimeoutSeconds = 0 }, true},
		{"production with default password", func(c *Config) { c.Env = "production" }, true},
		{"prod alias with default password", func(c *Config) { c.Env = "prod" }, true},
		{"production with short password", func(c *Config) {
			c.Env = "production"
			c.AdminPassword = "short"
		}, true},
		{"production with strong password", func(c *Config) {
			c.Env = "production"
			c.AdminPassword = "a-much-longer-secret"
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validConfig()
			tt.mutate(c)
			err := c.Validate()
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	defer viper.Reset()

	c, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "3000", c.Port)
	assert.Equal(t, "admin", c.AdminUsername)
	assert.Equal(t, BlobBackendLocal, c.BlobBackend)
	assert.Equal(t, 10, c.BlobTimeoutSeconds)
	assert.True(t, c.SeedDemoData)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	defer viper.Reset()
	defer os.Unsetenv("PORT")

	os.Setenv("PORT", "8080")

	c, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "8080", c.Port)
}
