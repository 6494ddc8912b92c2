package querier_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/cosmos/cosmos-sdk/types/query"
	"github.com/stretchr/testify/require"

	"github.com/xiaolou86/dydx-v4-clients/protocol/bridge"
	"github.com/xiaolou86/dydx-v4-clients/protocol/clob"
	"github.com/xiaolou86/dydx-v4-clients/protocol/dtypes"
	"github.com/xiaolou86/dydx-v4-clients/protocol/feetiers"
	"github.com/xiaolou86/dydx-v4-clients/protocol/perpetuals"
	"github.com/xiaolou86/dydx-v4-clients/protocol/prices"
	"github.com/xiaolou86/dydx-v4-clients/protocol/rewards"
	"github.com/xiaolou86/dydx-v4-clients/protocol/stats"
	"github.com/xiaolou86/dydx-v4-clients/protocol/subaccounts"
	"github.com/xiaolou86/dydx-v4-clients/querier"
	"github.com/xiaolou86/dydx-v4-clients/testutil/datagen"
)

func FuzzGetSubaccount(f *testing.F) {
	datagen.AddRandomSeedsToFuzzer(f, 10)
	f.Fuzz(func(t *testing.T, seed int64) {
		r := rand.New(rand.NewSource(seed))
		owner := datagen.GenRandomAddress(r)
		number := uint32(r.Intn(128))
		sa := datagen.GenRandomSubaccount(r, owner, number)

		q, transport := newTestQuerier(t)
		expectQuery(t, transport, querier.PathSubaccount,
			&subaccounts.QueryGetSubaccountRequest{Owner: owner, Number: number},
			&subaccounts.QuerySubaccountResponse{Subaccount: *sa},
		)

		got, err := q.GetSubaccount(context.Background(), owner, number)
		require.NoError(t, err)
		require.Equal(t, mustMarshal(t, sa), mustMarshal(t, got))
		require.Equal(t, owner, got.Id.Owner)
		require.Equal(t, number, got.Id.Number)
		require.Zero(t, sa.GetUsdcPosition().Cmp(got.GetUsdcPosition()))
	})
}

func TestGetSubaccountNeverCreated(t *testing.T) {
	const owner = "dydx1neverfunded"
	q, transport := newTestQuerier(t)
	expectQuery(t, transport, querier.PathSubaccount,
		&subaccounts.QueryGetSubaccountRequest{Owner: owner, Number: 3},
		&subaccounts.QuerySubaccountResponse{Subaccount: subaccounts.Subaccount{
			Id: &subaccounts.SubaccountId{Owner: owner, Number: 3},
		}},
	)

	got, err := q.GetSubaccount(context.Background(), owner, 3)
	require.NoError(t, err)
	require.Empty(t, got.AssetPositions)
	require.Empty(t, got.PerpetualPositions)
	require.Zero(t, got.GetUsdcPosition().Cmp(dtypes.NewInt(0)))
}

func TestGetSubaccounts(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	resp := &subaccounts.QuerySubaccountAllResponse{
		Pagination: &query.PageResponse{Total: 2},
	}
	for i := uint32(0); i < 2; i++ {
		resp.Subaccount = append(resp.Subaccount, *datagen.GenRandomSubaccount(r, datagen.GenRandomAddress(r), i))
	}

	q, transport := newTestQuerier(t)
	expectQuery(t, transport, querier.PathSubaccountAll,
		&subaccounts.QueryAllSubaccountRequest{Pagination: querier.DefaultPageRequest()},
		resp,
	)

	got, err := q.GetSubaccounts(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, got.Subaccount, 2)
	require.Equal(t, uint64(2), got.Pagination.Total)
	require.Equal(t, mustMarshal(t, resp), mustMarshal(t, got))
}

func FuzzGetClobPair(f *testing.F) {
	datagen.AddRandomSeedsToFuzzer(f, 10)
	f.Fuzz(func(t *testing.T, seed int64) {
		r := rand.New(rand.NewSource(seed))
		id := r.Uint32()
		cp := datagen.GenRandomClobPair(r, id)

		q, transport := newTestQuerier(t)
		expectQuery(t, transport, querier.PathClobPair,
			&clob.QueryGetClobPairRequest{Id: id},
			&clob.QueryClobPairResponse{ClobPair: *cp},
		)

		got, err := q.GetClobPair(context.Background(), id)
		require.NoError(t, err)
		require.Equal(t, cp, got)
	})
}

func TestGetAllClobPairs(t *testing.T) {
	r := rand.New(rand.NewSource(8))
	resp := &clob.QueryClobPairAllResponse{
		ClobPair:   []clob.ClobPair{*datagen.GenRandomClobPair(r, 0), *datagen.GenRandomClobPair(r, 1)},
		Pagination: &query.PageResponse{Total: 2},
	}
	page := &query.PageRequest{Limit: 2, CountTotal: true}

	q, transport := newTestQuerier(t)
	expectQuery(t, transport, querier.PathClobPairAll, &clob.QueryAllClobPairRequest{Pagination: page}, resp)

	got, err := q.GetAllClobPairs(context.Background(), page)
	require.NoError(t, err)
	require.Equal(t, resp, got)
}

func FuzzClobConfigurations(f *testing.F) {
	datagen.AddRandomSeedsToFuzzer(f, 10)
	f.Fuzz(func(t *testing.T, seed int64) {
		r := rand.New(rand.NewSource(seed))
		etl := datagen.GenRandomEquityTierLimitConfiguration(r)
		brl := datagen.GenRandomBlockRateLimitConfiguration(r)

		q, transport := newTestQuerier(t)
		expectQuery(t, transport, querier.PathEquityTierLimitConfiguration,
			&clob.QueryEquityTierLimitConfigurationRequest{},
			&clob.QueryEquityTierLimitConfigurationResponse{EquityTierLimitConfig: *etl},
		)
		expectQuery(t, transport, querier.PathBlockRateLimitConfiguration,
			&clob.QueryBlockRateLimitConfigurationRequest{},
			&clob.QueryBlockRateLimitConfigurationResponse{BlockRateLimitConfig: *brl},
		)

		gotEtl, err := q.GetEquityTierLimitConfiguration(context.Background())
		require.NoError(t, err)
		require.Equal(t, mustMarshal(t, etl), mustMarshal(t, gotEtl))
		require.Len(t, gotEtl.ShortTermOrderEquityTiers, len(etl.ShortTermOrderEquityTiers))

		gotBrl, err := q.GetBlockRateLimitConfiguration(context.Background())
		require.NoError(t, err)
		require.Equal(t, brl, gotBrl)
	})
}

func FuzzGetPrice(f *testing.F) {
	datagen.AddRandomSeedsToFuzzer(f, 10)
	f.Fuzz(func(t *testing.T, seed int64) {
		r := rand.New(rand.NewSource(seed))
		id := uint32(r.Intn(64))
		mp := datagen.GenRandomMarketPrice(r, id)

		q, transport := newTestQuerier(t)
		expectQuery(t, transport, querier.PathMarketPrice,
			&prices.QueryMarketPriceRequest{Id: id},
			&prices.QueryMarketPriceResponse{MarketPrice: *mp},
		)

		got, err := q.GetPrice(context.Background(), id)
		require.NoError(t, err)
		require.Equal(t, mp, got)
	})
}

func TestGetAllPrices(t *testing.T) {
	r := rand.New(rand.NewSource(13))
	resp := &prices.QueryAllMarketPricesResponse{
		MarketPrices: []prices.MarketPrice{*datagen.GenRandomMarketPrice(r, 0), *datagen.GenRandomMarketPrice(r, 1)},
		Pagination:   &query.PageResponse{Total: 2},
	}

	q, transport := newTestQuerier(t)
	expectQuery(t, transport, querier.PathAllMarketPrices,
		&prices.QueryAllMarketPricesRequest{Pagination: querier.DefaultPageRequest()},
		resp,
	)

	got, err := q.GetAllPrices(context.Background(), nil)
	require.NoError(t, err)
	require.Equal(t, resp, got)
}

func FuzzGetPerpetual(f *testing.F) {
	datagen.AddRandomSeedsToFuzzer(f, 10)
	f.Fuzz(func(t *testing.T, seed int64) {
		r := rand.New(rand.NewSource(seed))
		id := uint32(r.Intn(64))
		perp := datagen.GenRandomPerpetual(r, id)

		q, transport := newTestQuerier(t)
		expectQuery(t, transport, querier.PathPerpetual,
			&perpetuals.QueryPerpetualRequest{Id: id},
			&perpetuals.QueryPerpetualResponse{Perpetual: *perp},
		)

		got, err := q.GetPerpetual(context.Background(), id)
		require.NoError(t, err)
		require.Equal(t, perp.Params, got.Params)
		require.Zero(t, perp.FundingIndex.Cmp(got.FundingIndex))
		require.Zero(t, perp.OpenInterest.Cmp(got.OpenInterest))
	})
}

func TestGetAllPerpetuals(t *testing.T) {
	r := rand.New(rand.NewSource(21))
	resp := &perpetuals.QueryAllPerpetualsResponse{
		Perpetual:  []perpetuals.Perpetual{*datagen.GenRandomPerpetual(r, 0)},
		Pagination: &query.PageResponse{Total: 1},
	}

	q, transport := newTestQuerier(t)
	expectQuery(t, transport, querier.PathAllPerpetuals,
		&perpetuals.QueryAllPerpetualsRequest{Pagination: querier.DefaultPageRequest()},
		resp,
	)

	got, err := q.GetAllPerpetuals(context.Background(), nil)
	require.NoError(t, err)
	require.Equal(t, mustMarshal(t, resp), mustMarshal(t, got))
}

func TestGetRewardsParams(t *testing.T) {
	params := datagen.GenRandomRewardsParams(rand.New(rand.NewSource(34)))
	q, transport := newTestQuerier(t)
	expectQuery(t, transport, querier.PathRewardsParams,
		&rewards.QueryParamsRequest{},
		&rewards.QueryParamsResponse{Params: *params},
	)

	got, err := q.GetRewardsParams(context.Background())
	require.NoError(t, err)
	require.Equal(t, params, got)
}

func TestGetFeeTiers(t *testing.T) {
	r := rand.New(rand.NewSource(55))
	params := feetiers.PerpetualFeeParams{
		Tiers: []*feetiers.PerpetualFeeTier{datagen.GenRandomFeeTier(r), datagen.GenRandomFeeTier(r)},
	}
	q, transport := newTestQuerier(t)
	expectQuery(t, transport, querier.PathPerpetualFeeParams,
		&feetiers.QueryPerpetualFeeParamsRequest{},
		&feetiers.QueryPerpetualFeeParamsResponse{Params: params},
	)

	got, err := q.GetFeeTiers(context.Background())
	require.NoError(t, err)
	require.Equal(t, &params, got)
}

func TestGetUserFeeTier(t *testing.T) {
	r := rand.New(rand.NewSource(89))
	addr := datagen.GenRandomAddress(r)
	resp := &feetiers.QueryUserFeeTierResponse{Index: 2, Tier: datagen.GenRandomFeeTier(r)}

	q, transport := newTestQuerier(t)
	expectQuery(t, transport, querier.PathUserFeeTier, &feetiers.QueryUserFeeTierRequest{User: addr}, resp)

	got, err := q.GetUserFeeTier(context.Background(), addr)
	require.NoError(t, err)
	require.Equal(t, resp, got)
}

func TestGetUserStats(t *testing.T) {
	r := rand.New(rand.NewSource(144))
	addr := datagen.GenRandomAddress(r)

	t.Run("present", func(t *testing.T) {
		us := datagen.GenRandomUserStats(r)
		q, transport := newTestQuerier(t)
		expectQuery(t, transport, querier.PathUserStats,
			&stats.QueryUserStatsRequest{User: addr},
			&stats.QueryUserStatsResponse{Stats: us},
		)

		got, err := q.GetUserStats(context.Background(), addr)
		require.NoError(t, err)
		require.Equal(t, us, got)
	})

	t.Run("absent", func(t *testing.T) {
		q, transport := newTestQuerier(t)
		expectQuery(t, transport, querier.PathUserStats,
			&stats.QueryUserStatsRequest{User: addr},
			&stats.QueryUserStatsResponse{},
		)

		got, err := q.GetUserStats(context.Background(), addr)
		require.NoError(t, err)
		require.Nil(t, got)
	})
}

func FuzzGetDelayedCompleteBridgeMessages(f *testing.F) {
	datagen.AddRandomSeedsToFuzzer(f, 10)
	f.Fuzz(func(t *testing.T, seed int64) {
		r := rand.New(rand.NewSource(seed))
		addr := datagen.GenRandomAddress(r)
		resp := &bridge.QueryDelayedCompleteBridgeMessagesResponse{}
		for i := 0; i < r.Intn(4); i++ {
			resp.Messages = append(resp.Messages, datagen.GenRandomDelayedCompleteBridgeMessage(r, addr))
		}

		q, transport := newTestQuerier(t)
		expectQuery(t, transport, querier.PathDelayedCompleteBridgeMessages,
			&bridge.QueryDelayedCompleteBridgeMessagesRequest{Address: addr},
			resp,
		)

		got, err := q.GetDelayedCompleteBridgeMessages(context.Background(), addr)
		require.NoError(t, err)
		require.Len(t, got, len(resp.Messages))
		for i := range got {
			require.Equal(t, addr, got[i].Message.Event.Address)
			require.Equal(t, resp.Messages[i].Message.Event.Coin.String(), got[i].Message.Event.Coin.String())
			require.Equal(t, resp.Messages[i].BlockHeight, got[i].BlockHeight)
		}
	})
}
