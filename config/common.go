package config

import (
	"fmt"
)

const (
	defaultLogFormat = "auto"
	defaultLogLevel  = "info"
)

// CommonConfig defines the client's basic configuration
type CommonConfig struct {
	// One of json, auto, console, logfmt.
	LogFormat string `mapstructure:"log-format" yaml:"log-format"`
	// One of debug, info, warn, error, fatal, panic.
	LogLevel string `mapstructure:"log-level" yaml:"log-level"`
}

func (cfg *CommonConfig) Validate() error {
	if _, err := newEncoder(cfg.LogFormat); err != nil {
		return err
	}
	if _, err := parseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("log-level: %w", err)
	}
	return nil
}

func DefaultCommonConfig() CommonConfig {
	return CommonConfig{
		LogFormat: defaultLogFormat,
		LogLevel:  defaultLogLevel,
	}
}
