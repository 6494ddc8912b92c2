package querier

import (
	"context"

	"github.com/xiaolou86/dydx-v4-clients/protocol/feetiers"
	"github.com/xiaolou86/dydx-v4-clients/protocol/rewards"
	"github.com/xiaolou86/dydx-v4-clients/protocol/stats"
)

func (q *Querier) GetRewardsParams(ctx context.Context) (*rewards.Params, error) {
	req := &rewards.QueryParamsRequest{}
	resp := &rewards.QueryParamsResponse{}
	if err := q.send(ctx, PathRewardsParams, req, resp); err != nil {
		return nil, err
	}
	return &resp.Params, nil
}

// GetFeeTiers returns the perpetual fee schedule.
func (q *Querier) GetFeeTiers(ctx context.Context) (*feetiers.PerpetualFeeParams, error) {
	req := &feetiers.QueryPerpetualFeeParamsRequest{}
	resp := &feetiers.QueryPerpetualFeeParamsResponse{}
	if err := q.send(ctx, PathPerpetualFeeParams, req, resp); err != nil {
		return nil, err
	}
	return &resp.Params, nil
}

func (q *Querier) GetUserFeeTier(ctx context.Context, address string) (*feetiers.QueryUserFeeTierResponse, error) {
	req := &feetiers.QueryUserFeeTierRequest{User: address}
	resp := &feetiers.QueryUserFeeTierResponse{}
	if err := q.send(ctx, PathUserFeeTier, req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// GetUserStats returns the trailing volume of address, or nil if the node
// holds none.
func (q *Querier) GetUserStats(ctx context.Context, address string) (*stats.UserStats, error) {
	req := &stats.QueryUserStatsRequest{User: address}
	resp := &stats.QueryUserStatsResponse{}
	if err := q.send(ctx, PathUserStats, req, resp); err != nil {
		return nil, err
	}
	return resp.Stats, nil
}
