// Package config loads zilctl settings from a .zilctl config file and
// ZILCTL_* environment variables.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	// Server is the appliance base URL.
	Server string
	// Timeout bounds one API round-trip.
	Timeout time.Duration
	// PollInterval is the status poll cadence for watch mode.
	PollInterval time.Duration
	// ClipboardPath is the local store for the day copy buffer and the
	// schedule cache.
	ClipboardPath string
}

func Load() (*Config, error) {
	viper.SetDefault("server", "http://localhost:7777")
	viper.SetDefault("timeout", "10s")
	viper.SetDefault("poll_interval", "2s")
	viper.SetDefault("clipboard", "~/.zilctl.db")
	viper.SetConfigName(".zilctl") // .yaml is implicit
	viper.SetEnvPrefix("ZILCTL")
	viper.AutomaticEnv()

	if override := os.Getenv("ZILCTL_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}
	viper.AddConfigPath("./")
	viper.AddConfigPath("$HOME")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("config: read config file: %w", err)
		}
	}

	return &Config{
		Server:        viper.GetString("server"),
		Timeout:       viper.GetDuration("timeout"),
		PollInterval:  viper.GetDuration("poll_interval"),
		ClipboardPath: viper.GetString("clipboard"),
	}, nil
}
