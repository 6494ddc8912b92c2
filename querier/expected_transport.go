package querier

//go:generate mockgen -source=expected_transport.go -package querier -destination mocks.go

import (
	"context"

	cmttypes "github.com/cometbft/cometbft/types"
)

// QueryTransport forwards an encoded request to the node and returns the
// encoded response. The response is trusted as is: no proof is requested or
// verified.
type QueryTransport interface {
	QueryUnverified(ctx context.Context, path string, request []byte) ([]byte, error)
}

// BlockSource returns the latest committed block.
type BlockSource interface {
	LatestBlock(ctx context.Context) (*cmttypes.Block, error)
}

type Transport interface {
	QueryTransport
	BlockSource
}
