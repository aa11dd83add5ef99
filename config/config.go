// Copyright (c) 2026 Showreel Team
// Showreel - terminal carousel presenter
// This source code is licensed under the MIT license found in the LICENSE file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config is the top-level Showreel configuration.
type Config struct {
	Database struct {
		Type string `mapstructure:"type" yaml:"type"`
		Dsn  string `mapstructure:"dsn" yaml:"dsn"`
	} `mapstructure:"database" yaml:"database"`
	DecksDir string `mapstructure:"decks_dir" yaml:"decks_dir"`
	Language string `mapstructure:"language" yaml:"language"`
	Remote   struct {
		Spec         string `mapstructure:"spec" yaml:"spec"`
		IdentityFile string `mapstructure:"identity_file" yaml:"identity_file"`
		KnownHosts   string `mapstructure:"known_hosts" yaml:"known_hosts"`
	} `mapstructure:"remote" yaml:"remote"`
	Player struct {
		ReducedMotion bool `mapstructure:"reduced_motion" yaml:"reduced_motion"`
		Resume        bool `mapstructure:"resume" yaml:"resume"`
	} `mapstructure:"player" yaml:"player"`
}

// Defaults returns the default configuration values keyed by viper path.
func Defaults() map[string]any {
	return map[string]any{
		"database.type": "sqlite",
		"database.dsn":  "./showreel.db",
		"decks_dir":     "./decks",
		"language":      "en",
		"player.resume": true,
	}
}

// GetConfigPath returns the full path for the configuration file, either the
// system-wide location or the per-user one.
func GetConfigPath(system bool) (string, error) {
	var configDir string
	var err error

	if system {
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "Showreel")
		default: // Linux, macOS, etc.
			configDir = "/etc/showreel"
		}
	} else {
		configDir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(configDir, "showreel")
	}

	return filepath.Join(configDir, "showreel.yaml"), nil
}

// LoadConfig assembles configuration from defaults, the config file, SHOWREEL_*
// environment variables, and the command's flags, in increasing precedence.
// An explicit config file path (from a --config flag) overrides the search
// locations entirely.
func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, explicitConfigFile *string) (T, error) {
	var c T
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName("showreel")
	v.SetConfigType("yaml")

	if explicitConfigFile != nil {
		v.SetConfigFile(*explicitConfigFile)
	}

	if userConfigPath, err := GetConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	if systemConfigPath, err := GetConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(systemConfigPath))
	}
	v.AddConfigPath(".") // Look for showreel.yaml in current dir

	if err := v.ReadInConfig(); err != nil {
		// A missing file is fine; anything else is fatal.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return c, err
		}
	}

	v.AutomaticEnv()
	v.AllowEmptyEnv(true)
	v.SetEnvPrefix("showreel")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return c, err
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}

	return c, nil
}

// WriteConfigFile persists the configuration as YAML to the standard path.
func WriteConfigFile[T any](c *T, system bool) error {
	path, err := GetConfigPath(system)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}

	// 0600 because the DSN may carry credentials.
	return os.WriteFile(path, data, 0600)
}
