package querier

import (
	"context"

	"github.com/cosmos/cosmos-sdk/types/query"

	"github.com/xiaolou86/dydx-v4-clients/protocol/clob"
)

// GetClobPair returns the order book with the given id. Unknown ids are
// rejected by the node.
func (q *Querier) GetClobPair(ctx context.Context, id uint32) (*clob.ClobPair, error) {
	req := &clob.QueryGetClobPairRequest{Id: id}
	resp := &clob.QueryClobPairResponse{}
	if err := q.send(ctx, PathClobPair, req, resp); err != nil {
		return nil, err
	}
	return &resp.ClobPair, nil
}

func (q *Querier) GetAllClobPairs(ctx context.Context, pagination *query.PageRequest) (*clob.QueryClobPairAllResponse, error) {
	req := &clob.QueryAllClobPairRequest{Pagination: pageRequestOrDefault(pagination)}
	resp := &clob.QueryClobPairAllResponse{}
	if err := q.send(ctx, PathClobPairAll, req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (q *Querier) GetEquityTierLimitConfiguration(ctx context.Context) (*clob.EquityTierLimitConfiguration, error) {
	req := &clob.QueryEquityTierLimitConfigurationRequest{}
	resp := &clob.QueryEquityTierLimitConfigurationResponse{}
	if err := q.send(ctx, PathEquityTierLimitConfiguration, req, resp); err != nil {
		return nil, err
	}
	return &resp.EquityTierLimitConfig, nil
}

func (q *Querier) GetBlockRateLimitConfiguration(ctx context.Context) (*clob.BlockRateLimitConfiguration, error) {
	req := &clob.QueryBlockRateLimitConfigurationRequest{}
	resp := &clob.QueryBlockRateLimitConfigurationResponse{}
	if err := q.send(ctx, PathBlockRateLimitConfiguration, req, resp); err != nil {
		return nil, err
	}
	return &resp.BlockRateLimitConfig, nil
}
