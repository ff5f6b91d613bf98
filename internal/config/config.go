// SPDX-License-Identifier: MPL-2.0

// Package config handles preprocessor configuration using Viper.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
	"github.com/spf13/viper"

	"gsjsprep/internal/issue"
)

const (
	// AppName is the application name, used for the config directory.
	AppName = "gsjsprep"
	// ConfigFileName is the config file name without extension.
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "toml"
)

// LoadOptions controls config resolution.
type LoadOptions struct {
	// ConfigFilePath, when set, is used exclusively; a missing file is an
	// error. When empty the default location is tried and a missing file
	// falls back to defaults.
	ConfigFilePath string

	// Fs overrides the filesystem Viper reads from (tests use a mem fs).
	Fs afero.Fs
}

// ConfigDir returns the gsjsprep configuration directory using
// platform-specific conventions: %APPDATA% on Windows, Application Support
// on macOS, $XDG_CONFIG_HOME (default ~/.config) elsewhere.
//
//nolint:revive // ConfigDir reads better than Dir at call sites
func ConfigDir() (string, error) {
	if configDirOverride != "" {
		return configDirOverride, nil
	}

	var configDir string
	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, "Library", "Application Support")
	default:
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			configDir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(configDir, AppName), nil
}

// DefaultConfigFilePath returns the path the config file is expected at.
func DefaultConfigFilePath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFileName+"."+ConfigFileExt), nil
}

// Load resolves, reads, and validates the configuration.
func Load(opts LoadOptions) (*Config, error) {
	v := viper.New()
	if opts.Fs != nil {
		v.SetFs(opts.Fs)
	}

	defaults := DefaultConfig()
	v.SetDefault("source_root", defaults.SourceRoot)
	v.SetDefault("dest_root", defaults.DestRoot)
	v.SetDefault("extension", defaults.Extension)
	v.SetDefault("exclude_dirs", defaults.ExcludeDirs)
	v.SetDefault("global_export", defaults.GlobalExport)
	v.SetDefault("module_export", defaults.ModuleExport)
	v.SetDefault("global_api", defaults.GlobalAPI)

	if opts.ConfigFilePath != "" {
		v.SetConfigFile(opts.ConfigFilePath)
		v.SetConfigType(ConfigFileExt)
		if err := v.ReadInConfig(); err != nil {
			return nil, issue.NewContext().
				WithOperation("load configuration").
				WithResource(opts.ConfigFilePath).
				WithSuggestion("Verify the file exists and contains valid TOML").
				WithSuggestion("Run 'gsjsprep config init' to create a starting point").
				Wrap(err).
				BuildError()
		}
	} else {
		cfgDir, err := ConfigDir()
		if err != nil {
			return nil, err
		}
		v.SetConfigName(ConfigFileName)
		v.SetConfigType(ConfigFileExt)
		v.AddConfigPath(cfgDir)
		if err := v.ReadInConfig(); err != nil {
			// Missing default config is fine; anything else is not.
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !os.IsNotExist(err) {
				return nil, issue.NewContext().
					WithOperation("load configuration").
					WithResource(cfgDir).
					WithSuggestion("Check the config file contains valid TOML").
					Wrap(err).
					BuildError()
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, issue.NewContext().
			WithOperation("parse configuration").
			WithSuggestion("Check field names and types against 'gsjsprep config show'").
			Wrap(err).
			BuildError()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// WriteDefault marshals the default configuration to TOML at path,
// creating parent directories as needed. An existing file is never
// overwritten.
func WriteDefault(fs afero.Fs, path string) error {
	if _, err := fs.Stat(path); err == nil {
		return issue.NewContext().
			WithOperation("initialize configuration").
			WithResource(path).
			WithSuggestion("Edit the existing file, or remove it and rerun 'gsjsprep config init'").
			Wrap(os.ErrExist).
			BuildError()
	}
	data, err := toml.Marshal(DefaultConfig())
	if err != nil {
		return fmt.Errorf("failed to render default configuration: %w", err)
	}
	if err := fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := afero.WriteFile(fs, path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
