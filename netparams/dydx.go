package netparams

import "github.com/pkg/errors"

// NetworkParams are the public endpoints of a dYdX v4 network.
type NetworkParams struct {
	Name    string
	ChainID string
	// RPCAddr is the CometBFT RPC endpoint.
	RPCAddr string
	// GRPCAddr is the cosmos gRPC endpoint, host:port.
	GRPCAddr string
	// GRPCInsecure is set when GRPCAddr speaks plaintext.
	GRPCInsecure bool
}

var MainNetParams = NetworkParams{
	Name:     "mainnet",
	ChainID:  "dydx-mainnet-1",
	RPCAddr:  "https://dydx-ops-rpc.kingnodes.com:443",
	GRPCAddr: "dydx-ops-grpc.kingnodes.com:443",
}

var TestNetParams = NetworkParams{
	Name:     "testnet",
	ChainID:  "dydx-testnet-4",
	RPCAddr:  "https://test-dydx-rpc.kingnodes.com:443",
	GRPCAddr: "test-dydx-grpc.kingnodes.com:443",
}

var StagingParams = NetworkParams{
	Name:         "staging",
	ChainID:      "dydxprotocol-testnet",
	RPCAddr:      "http://validator.v4staging.dydx.exchange:26657",
	GRPCAddr:     "validator.v4staging.dydx.exchange:9090",
	GRPCInsecure: true,
}

var LocalParams = NetworkParams{
	Name:         "local",
	ChainID:      "localdydxprotocol",
	RPCAddr:      "http://localhost:26657",
	GRPCAddr:     "localhost:9090",
	GRPCInsecure: true,
}

func GetNetwork(net string) (*NetworkParams, error) {
	switch net {
	case MainNetParams.Name:
		return &MainNetParams, nil
	case TestNetParams.Name:
		return &TestNetParams, nil
	case StagingParams.Name:
		return &StagingParams, nil
	case LocalParams.Name:
		return &LocalParams, nil
	default:
		return nil, errors.Errorf("unknown network %q", net)
	}
}
