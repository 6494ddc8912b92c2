package transport

//go:generate mockgen -source=expected_clients.go -package transport -destination mock_clients.go

import (
	"context"

	cmtbytes "github.com/cometbft/cometbft/libs/bytes"
	rpcclient "github.com/cometbft/cometbft/rpc/client"
	coretypes "github.com/cometbft/cometbft/rpc/core/types"
)

// RPCClient is the part of a CometBFT RPC client the comet transport uses.
// *rpchttp.HTTP satisfies it.
type RPCClient interface {
	ABCIQueryWithOptions(
		ctx context.Context,
		path string,
		data cmtbytes.HexBytes,
		opts rpcclient.ABCIQueryOptions,
	) (*coretypes.ResultABCIQuery, error)
	Block(ctx context.Context, height *int64) (*coretypes.ResultBlock, error)
}
