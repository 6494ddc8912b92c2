package config

import (
	"fmt"
	"net"
	"strconv"
)

const (
	defaultMetricsServerPort = 2112
	defaultMetricsHost       = "127.0.0.1"
)

// MetricsConfig defines the prometheus endpoint of the client
type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`
	// IP of the prometheus server
	Host string `mapstructure:"host" yaml:"host"`
	// Port of the prometheus server
	ServerPort int `mapstructure:"server-port" yaml:"server-port"`
}

func (cfg *MetricsConfig) Validate() error {
	if cfg.ServerPort < 0 || cfg.ServerPort > 65535 {
		return fmt.Errorf("invalid port: %d", cfg.ServerPort)
	}

	ip := net.ParseIP(cfg.Host)
	if ip == nil {
		return fmt.Errorf("invalid host: %v", cfg.Host)
	}

	return nil
}

func (cfg *MetricsConfig) Address() string {
	return net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.ServerPort))
}

func DefaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Enabled:    false,
		ServerPort: defaultMetricsServerPort,
		Host:       defaultMetricsHost,
	}
}
