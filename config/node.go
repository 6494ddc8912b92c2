package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/xiaolou86/dydx-v4-clients/netparams"
)

const (
	TransportComet = "comet"
	TransportGRPC  = "grpc"

	defaultNetwork   = "testnet"
	defaultTransport = TransportGRPC
	defaultTimeout   = 20 * time.Second
)

// NodeConfig selects the dYdX node the client queries.
type NodeConfig struct {
	// Network preset filling the addresses left empty. The empty
	// string uses no preset.
	Network string `mapstructure:"network" yaml:"network"`
	// Transport is comet (CometBFT RPC) or grpc.
	Transport    string        `mapstructure:"transport" yaml:"transport"`
	RPCAddr      string        `mapstructure:"rpc-addr" yaml:"rpc-addr"`
	GRPCAddr     string        `mapstructure:"grpc-addr" yaml:"grpc-addr"`
	GRPCInsecure bool          `mapstructure:"grpc-insecure" yaml:"grpc-insecure"`
	Timeout      time.Duration `mapstructure:"timeout" yaml:"timeout"`
}

// ApplyNetwork fills empty addresses from the network preset.
func (cfg *NodeConfig) ApplyNetwork() error {
	if cfg.Network == "" {
		return nil
	}
	params, err := netparams.GetNetwork(cfg.Network)
	if err != nil {
		return err
	}
	if cfg.RPCAddr == "" {
		cfg.RPCAddr = params.RPCAddr
	}
	if cfg.GRPCAddr == "" {
		cfg.GRPCAddr = params.GRPCAddr
		cfg.GRPCInsecure = params.GRPCInsecure
	}
	return nil
}

func (cfg *NodeConfig) Validate() error {
	if cfg.Network != "" {
		if _, err := netparams.GetNetwork(cfg.Network); err != nil {
			return err
		}
	}

	switch cfg.Transport {
	case TransportComet:
		if cfg.RPCAddr == "" {
			return errors.New("rpc-addr is required by the comet transport")
		}
	case TransportGRPC:
		if cfg.GRPCAddr == "" {
			return errors.New("grpc-addr is required by the grpc transport")
		}
	default:
		return fmt.Errorf("unsupported transport %q", cfg.Transport)
	}

	if cfg.Timeout < 0 {
		return errors.New("timeout can't be negative")
	}
	return nil
}

func DefaultNodeConfig() NodeConfig {
	cfg := NodeConfig{
		Network:   defaultNetwork,
		Transport: defaultTransport,
		Timeout:   defaultTimeout,
	}
	// the default network is always known
	_ = cfg.ApplyNetwork()
	return cfg
}
