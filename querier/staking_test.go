package querier_test

import (
	"context"
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/types/query"
	stakingtypes "github.com/cosmos/cosmos-sdk/x/staking/types"
	"github.com/stretchr/testify/require"

	"github.com/xiaolou86/dydx-v4-clients/querier"
)

const (
	testDelegator = "dydx1delegator"
	testValidator = "dydxvaloper1validator"
)

func TestGetDelegatorDelegations(t *testing.T) {
	resp := &stakingtypes.QueryDelegatorDelegationsResponse{
		DelegationResponses: stakingtypes.DelegationResponses{{
			Delegation: stakingtypes.Delegation{
				DelegatorAddress: testDelegator,
				ValidatorAddress: testValidator,
				Shares:           sdkmath.LegacyNewDec(10),
			},
		}},
		Pagination: &query.PageResponse{Total: 1},
	}

	q, transport := newTestQuerier(t)
	expectQuery(t, transport, querier.PathDelegatorDelegations,
		&stakingtypes.QueryDelegatorDelegationsRequest{DelegatorAddr: testDelegator, Pagination: querier.DefaultPageRequest()},
		resp,
	)

	got, err := q.GetDelegatorDelegations(context.Background(), testDelegator, nil)
	require.NoError(t, err)
	require.Len(t, got.DelegationResponses, 1)
	require.Equal(t, testValidator, got.DelegationResponses[0].Delegation.ValidatorAddress)
	require.True(t, got.DelegationResponses[0].Delegation.Shares.Equal(sdkmath.LegacyNewDec(10)))
	require.Equal(t, uint64(1), got.Pagination.Total)
}

func TestGetDelegatorUnbondingDelegations(t *testing.T) {
	page := &query.PageRequest{Limit: 10}
	resp := &stakingtypes.QueryDelegatorUnbondingDelegationsResponse{
		UnbondingResponses: []stakingtypes.UnbondingDelegation{{
			DelegatorAddress: testDelegator,
			ValidatorAddress: testValidator,
		}},
	}

	q, transport := newTestQuerier(t)
	expectQuery(t, transport, querier.PathDelegatorUnbondingDelegations,
		&stakingtypes.QueryDelegatorUnbondingDelegationsRequest{DelegatorAddr: testDelegator, Pagination: page},
		resp,
	)

	got, err := q.GetDelegatorUnbondingDelegations(context.Background(), testDelegator, page)
	require.NoError(t, err)
	require.Len(t, got.UnbondingResponses, 1)
	require.Equal(t, testDelegator, got.UnbondingResponses[0].DelegatorAddress)
	require.Nil(t, got.Pagination)
}

func TestGetAllValidators(t *testing.T) {
	status := stakingtypes.Bonded.String()
	resp := &stakingtypes.QueryValidatorsResponse{
		Validators: []stakingtypes.Validator{{
			OperatorAddress: testValidator,
			Status:          stakingtypes.Bonded,
			Tokens:          sdkmath.NewInt(1_000_000),
			DelegatorShares: sdkmath.LegacyNewDec(1_000_000),
		}},
		Pagination: &query.PageResponse{Total: 1},
	}

	q, transport := newTestQuerier(t)
	expectQuery(t, transport, querier.PathValidators,
		&stakingtypes.QueryValidatorsRequest{Status: status, Pagination: querier.DefaultPageRequest()},
		resp,
	)

	got, err := q.GetAllValidators(context.Background(), status, nil)
	require.NoError(t, err)
	require.Len(t, got.Validators, 1)
	require.Equal(t, testValidator, got.Validators[0].OperatorAddress)
	require.Equal(t, stakingtypes.Bonded, got.Validators[0].Status)
	require.True(t, got.Validators[0].Tokens.Equal(sdkmath.NewInt(1_000_000)))
}
