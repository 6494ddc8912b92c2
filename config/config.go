package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gopkg.in/yaml.v2"
)

const (
	defaultConfigFilename = "dydxquery.yml"
	defaultAppDirName     = ".dydxquery"
)

var (
	defaultAppDataDir = appDataDir()
	defaultConfigFile = filepath.Join(defaultAppDataDir, defaultConfigFilename)
)

func appDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return defaultAppDirName
	}
	return filepath.Join(home, defaultAppDirName)
}

// Config defines the client's top level configuration
type Config struct {
	Common  CommonConfig  `mapstructure:"common" yaml:"common"`
	Node    NodeConfig    `mapstructure:"node" yaml:"node"`
	Metrics MetricsConfig `mapstructure:"metrics" yaml:"metrics"`
}

// Validate checks every section and reports all failures at once.
func (cfg *Config) Validate() error {
	var result *multierror.Error

	if err := cfg.Common.Validate(); err != nil {
		result = multierror.Append(result, fmt.Errorf("invalid config in common: %w", err))
	}

	if err := cfg.Node.Validate(); err != nil {
		result = multierror.Append(result, fmt.Errorf("invalid config in node: %w", err))
	}

	if err := cfg.Metrics.Validate(); err != nil {
		result = multierror.Append(result, fmt.Errorf("invalid config in metrics: %w", err))
	}

	return result.ErrorOrNil()
}

func (cfg *Config) CreateLogger() (*zap.Logger, error) {
	return NewRootLogger(cfg.Common.LogFormat, cfg.Common.LogLevel)
}

func DefaultConfigFile() string {
	return defaultConfigFile
}

// DefaultConfig returns the client's default configuration.
func DefaultConfig() *Config {
	return &Config{
		Common:  DefaultCommonConfig(),
		Node:    DefaultNodeConfig(),
		Metrics: DefaultMetricsConfig(),
	}
}

// New returns a fully parsed Config object from a given file directory.
// Keys missing from the file keep their default values.
func New(configFile string) (Config, error) {
	if _, err := os.Stat(configFile); err == nil { // the given file exists, parse it
		v := viper.New()
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, err
		}
		cfg := *DefaultConfig()
		// addresses come from the file or from the network preset
		cfg.Node.RPCAddr, cfg.Node.GRPCAddr, cfg.Node.GRPCInsecure = "", "", false
		if err := v.Unmarshal(&cfg); err != nil {
			return Config{}, err
		}
		if err := cfg.Node.ApplyNetwork(); err != nil {
			return Config{}, err
		}
		if err := cfg.Validate(); err != nil {
			return Config{}, err
		}
		return cfg, nil
	} else if errors.Is(err, os.ErrNotExist) { // the given config file does not exist, return error
		return Config{}, fmt.Errorf("no config file found at %s", configFile)
	} else { // other errors
		return Config{}, err
	}
}

// WriteSample writes the default configuration to path.
func WriteSample(path string) error {
	cfg := DefaultConfig()
	d, err := yaml.Marshal(&cfg)
	if err != nil {
		return err
	}
	// write to file
	return os.WriteFile(path, d, 0644)
}
