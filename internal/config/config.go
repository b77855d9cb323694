// Package config loads sgit settings from ~/.sgit.yaml and SGIT_* environment
// variables.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Config holds the user-tunable settings. Every field has a default; the
// config file is optional.
type Config struct {
	DefaultRemote string `mapstructure:"default_remote"`
	LogLimit      int    `mapstructure:"log_limit"`
	LogShortLimit int    `mapstructure:"log_short_limit"`
	NoColor       bool   `mapstructure:"no_color"`
	Verbose       bool   `mapstructure:"verbose"`
}

const (
	DefaultRemote     = "origin"
	DefaultLogLimit   = 40
	DefaultShortLimit = 20
	DefaultConfigName = ".sgit"
)

// InitConfig reads configuration from cfgFile, or from $HOME/.sgit.yaml when
// cfgFile is empty. A missing config file is not an error.
func InitConfig(cfgFile string) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("cannot locate home directory: %w", err)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(DefaultConfigName)
		viper.SetConfigType("yaml")
	}

	viper.SetDefault("default_remote", DefaultRemote)
	viper.SetDefault("log_limit", DefaultLogLimit)
	viper.SetDefault("log_short_limit", DefaultShortLimit)
	viper.SetDefault("no_color", false)
	viper.SetDefault("verbose", false)

	viper.SetEnvPrefix("SGIT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}
	return nil
}

// GetConfig returns the effective configuration.
func GetConfig() (*Config, error) {
	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}
	if cfg.DefaultRemote == "" {
		cfg.DefaultRemote = DefaultRemote
	}
	if cfg.LogLimit <= 0 {
		cfg.LogLimit = DefaultLogLimit
	}
	if cfg.LogShortLimit <= 0 {
		cfg.LogShortLimit = DefaultShortLimit
	}
	return cfg, nil
}
