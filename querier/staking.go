package querier

import (
	"context"

	"github.com/cosmos/cosmos-sdk/types/query"
	stakingtypes "github.com/cosmos/cosmos-sdk/x/staking/types"
)

func (q *Querier) GetDelegatorDelegations(
	ctx context.Context,
	delegator string,
	pagination *query.PageRequest,
) (*stakingtypes.QueryDelegatorDelegationsResponse, error) {
	req := &stakingtypes.QueryDelegatorDelegationsRequest{
		DelegatorAddr: delegator,
		Pagination:    pageRequestOrDefault(pagination),
	}
	resp := &stakingtypes.QueryDelegatorDelegationsResponse{}
	if err := q.send(ctx, PathDelegatorDelegations, req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (q *Querier) GetDelegatorUnbondingDelegations(
	ctx context.Context,
	delegator string,
	pagination *query.PageRequest,
) (*stakingtypes.QueryDelegatorUnbondingDelegationsResponse, error) {
	req := &stakingtypes.QueryDelegatorUnbondingDelegationsRequest{
		DelegatorAddr: delegator,
		Pagination:    pageRequestOrDefault(pagination),
	}
	resp := &stakingtypes.QueryDelegatorUnbondingDelegationsResponse{}
	if err := q.send(ctx, PathDelegatorUnbondingDelegations, req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// GetAllValidators returns the validators whose bond status is status, e.g.
// "BOND_STATUS_BONDED". The empty status is sent as is and matches all.
func (q *Querier) GetAllValidators(
	ctx context.Context,
	status string,
	pagination *query.PageRequest,
) (*stakingtypes.QueryValidatorsResponse, error) {
	req := &stakingtypes.QueryValidatorsRequest{
		Status:     status,
		Pagination: pageRequestOrDefault(pagination),
	}
	resp := &stakingtypes.QueryValidatorsResponse{}
	if err := q.send(ctx, PathValidators, req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}
