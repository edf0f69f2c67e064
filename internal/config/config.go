// Package config provides application configuration loading from the environment.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envFile = ".env"

// Config holds all application configuration.
type Config struct {
	API     APIConfig     `mapstructure:"api"`
	Logging LoggingConfig `mapstructure:"logging"`
	Mock    MockConfig    `mapstructure:"mock"`
}

// APIConfig describes where the client sends requests.
type APIConfig struct {
	// BaseURL is prefixed to every request path. Empty means paths are used as-is.
	BaseURL string `mapstructure:"base_url"`
}

// LoggingConfig contains logger preferences.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// MockConfig contains settings for the local mock API server.
type MockConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// Load reads configuration from the environment, after merging an optional .env file.
// Variables already present in the environment win over the file.
func Load() (*Config, error) {
	if envMap, err := godotenv.Read(envFile); err == nil {
		for k, v := range envMap {
			if _, exists := os.LookupEnv(k); !exists {
				_ = os.Setenv(k, v)
			}
		}
	}

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)
	bindEnvs(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.base_url", "http://localhost:8080")
	v.SetDefault("logging.level", "info")
	v.SetDefault("mock.host", "127.0.0.1")
	v.SetDefault("mock.port", 8080)
}

func bindEnvs(v *viper.Viper) {
	keys := []string{
		"api.base_url",
		"logging.level",
		"mock.host",
		"mock.port",
	}

	for _, k := range keys {
		_ = v.BindEnv(k)
	}
}

// Validate ensures the loaded values are usable.
func (c Config) Validate() error {
	if c.API.BaseURL != "" {
		u, err := url.Parse(c.API.BaseURL)
		if err != nil {
			return fmt.Errorf("api.base_url: %w", err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return errors.New("api.base_url must use http or https")
		}
	}
	if c.Mock.Port <= 0 || c.Mock.Port > 65535 {
		return errors.New("mock.port must be between 1 and 65535")
	}
	return nil
}

// MockAddr returns host:port for the mock API listener.
func (c Config) MockAddr() string {
	return fmt.Sprintf("%s:%d", c.Mock.Host, c.Mock.Port)
}
