package querier

import (
	"context"

	cmttypes "github.com/cometbft/cometbft/types"
)

// LatestBlock returns the chain tip in a single round trip.
func (q *Querier) LatestBlock(ctx context.Context) (*cmttypes.Block, error) {
	block, err := q.transport.LatestBlock(ctx)
	if err != nil {
		return nil, err
	}
	if block == nil {
		return nil, ErrUnexpectedResponse.Wrap("block source returned no block")
	}
	return block, nil
}

// LatestBlockHeight returns the header height of LatestBlock.
func (q *Querier) LatestBlockHeight(ctx context.Context) (int64, error) {
	block, err := q.LatestBlock(ctx)
	if err != nil {
		return 0, err
	}
	return block.Header.Height, nil
}
