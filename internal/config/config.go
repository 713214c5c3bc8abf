// Copyright (c) 2026 Keymaster Team
// CurrencyField - locale-aware currency entry for terminal forms
// This source code is licensed under the MIT license found in the LICENSE file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const appName = "currencyfield"

// Config is the application configuration.
type Config struct {
	Language       string    `mapstructure:"language" yaml:"language"`
	Locale         string    `mapstructure:"locale" yaml:"locale,omitempty"`
	Currency       string    `mapstructure:"currency" yaml:"currency,omitempty"`
	FractionDigits int       `mapstructure:"fraction_digits" yaml:"fraction_digits"`
	Log            LogConfig `mapstructure:"log" yaml:"log"`
}

type LogConfig struct {
	File  string `mapstructure:"file" yaml:"file,omitempty"`
	Level string `mapstructure:"level" yaml:"level"`
}

// Defaults returns the default key/value pairs for LoadConfig.
func Defaults() map[string]any {
	return map[string]any{
		"language":        "en",
		"locale":          "",
		"currency":        "",
		"fraction_digits": 2,
		"log.file":        "",
		"log.level":       "info",
	}
}

// NumberLocale returns the locale used for number formatting, falling back
// to the UI language.
func (c Config) NumberLocale() string {
	if c.Locale != "" {
		return c.Locale
	}
	return c.Language
}

// GetConfigPath returns the full path for the configuration file.
func GetConfigPath(system bool) (string, error) {
	var configDir string
	var err error

	if system {
		// System-wide configuration paths
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "CurrencyField")
		default: // Linux, macOS, etc.
			configDir = "/etc/" + appName
		}
	} else {
		// User-specific configuration paths
		configDir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(configDir, appName)
	}

	return filepath.Join(configDir, appName+".yaml"), nil
}

// LoadConfig merges defaults, the first config file found, CURRENCYFIELD_*
// environment variables and the flags of cmd into T. A missing config file is
// reported as viper.ConfigFileNotFoundError together with the decoded defaults.
func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, additionalConfigFilePath *string) (T, error) {
	var c T
	v := viper.New()

	// 1. Set defaults
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	// 2. Set up file search paths
	v.SetConfigName(appName)
	v.SetConfigType("yaml")

	// 3. Explicit --config path has the highest precedence for files.
	if additionalConfigFilePath != nil {
		v.SetConfigFile(*additionalConfigFilePath)
	}

	// 4. Add standard config locations
	if userConfigPath, err := GetConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	if systemConfigPath, err := GetConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(systemConfigPath))
	}
	v.AddConfigPath(".")

	// 5. Read in the primary config file.
	var notFound error
	if err := v.ReadInConfig(); err != nil {
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return c, fmt.Errorf("could not read config: %w", err)
		}
		notFound = err
	}

	// 6. Read from environment variables
	v.SetEnvPrefix(appName)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// 7. cli flags
	if cmd != nil {
		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return c, err
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("could not decode config: %w", err)
	}

	return c, notFound
}

// WriteConfigFile writes c as YAML to the user or system config path and
// returns the path written.
func WriteConfigFile[T any](c *T, system bool) (string, error) {
	path, err := GetConfigPath(system)
	if err != nil {
		return "", err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return "", err
	}

	// Create directory if it doesn't exist
	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return "", fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}

	return path, nil
}
