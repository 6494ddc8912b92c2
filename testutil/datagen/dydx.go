package datagen

import (
	"math/rand"

	"github.com/xiaolou86/dydx-v4-clients/protocol/bridge"
	"github.com/xiaolou86/dydx-v4-clients/protocol/clob"
	"github.com/xiaolou86/dydx-v4-clients/protocol/feetiers"
	"github.com/xiaolou86/dydx-v4-clients/protocol/perpetuals"
	"github.com/xiaolou86/dydx-v4-clients/protocol/prices"
	"github.com/xiaolou86/dydx-v4-clients/protocol/rewards"
	"github.com/xiaolou86/dydx-v4-clients/protocol/stats"
	"github.com/xiaolou86/dydx-v4-clients/protocol/subaccounts"
)

func GenRandomSubaccount(r *rand.Rand, owner string, number uint32) *subaccounts.Subaccount {
	sa := &subaccounts.Subaccount{
		Id:            &subaccounts.SubaccountId{Owner: owner, Number: number},
		MarginEnabled: r.Intn(2) == 0,
	}
	for i := 0; i < r.Intn(3)+1; i++ {
		sa.AssetPositions = append(sa.AssetPositions, &subaccounts.AssetPosition{
			AssetId:  uint32(i),
			Quantums: GenRandomSerializableInt(r),
			Index:    r.Uint64(),
		})
	}
	for i := 0; i < r.Intn(3); i++ {
		sa.PerpetualPositions = append(sa.PerpetualPositions, &subaccounts.PerpetualPosition{
			PerpetualId:  uint32(i),
			Quantums:     GenRandomSerializableInt(r),
			FundingIndex: GenRandomSerializableInt(r),
		})
	}
	return sa
}

func GenRandomClobPair(r *rand.Rand, id uint32) *clob.ClobPair {
	cp := &clob.ClobPair{
		Id:                        id,
		StepBaseQuantums:          r.Uint64(),
		SubticksPerTick:           r.Uint32(),
		QuantumConversionExponent: int32(r.Intn(20) - 10),
		Status:                    clob.ClobPair_Status(r.Intn(7)),
	}
	if r.Intn(2) == 0 {
		cp.PerpetualClobMetadata = &clob.PerpetualClobMetadata{PerpetualId: r.Uint32()}
	} else {
		cp.SpotClobMetadata = &clob.SpotClobMetadata{BaseAssetId: r.Uint32(), QuoteAssetId: r.Uint32()}
	}
	return cp
}

func GenRandomEquityTierLimitConfiguration(r *rand.Rand) *clob.EquityTierLimitConfiguration {
	cfg := &clob.EquityTierLimitConfiguration{}
	for i := 0; i < r.Intn(4)+1; i++ {
		cfg.ShortTermOrderEquityTiers = append(cfg.ShortTermOrderEquityTiers, clob.EquityTierLimit{
			UsdTncRequired: GenRandomSerializableInt(r),
			Limit:          r.Uint32(),
		})
		cfg.StatefulOrderEquityTiers = append(cfg.StatefulOrderEquityTiers, clob.EquityTierLimit{
			UsdTncRequired: GenRandomSerializableInt(r),
			Limit:          r.Uint32(),
		})
	}
	return cfg
}

func GenRandomBlockRateLimitConfiguration(r *rand.Rand) *clob.BlockRateLimitConfiguration {
	limit := func() clob.MaxPerNBlocksRateLimit {
		return clob.MaxPerNBlocksRateLimit{NumBlocks: r.Uint32(), Limit: r.Uint32()}
	}
	return &clob.BlockRateLimitConfiguration{
		MaxShortTermOrdersPerNBlocks:             []clob.MaxPerNBlocksRateLimit{limit(), limit()},
		MaxStatefulOrdersPerNBlocks:              []clob.MaxPerNBlocksRateLimit{limit()},
		MaxShortTermOrderCancellationsPerNBlocks: []clob.MaxPerNBlocksRateLimit{limit()},
	}
}

func GenRandomMarketPrice(r *rand.Rand, id uint32) *prices.MarketPrice {
	return &prices.MarketPrice{
		Id:       id,
		Exponent: int32(r.Intn(20) - 15),
		Price:    r.Uint64(),
	}
}

func GenRandomPerpetual(r *rand.Rand, id uint32) *perpetuals.Perpetual {
	return &perpetuals.Perpetual{
		Params: perpetuals.PerpetualParams{
			Id:                id,
			Ticker:            GenRandomHexStr(r, 3) + "-USD",
			MarketId:          r.Uint32(),
			AtomicResolution:  int32(r.Intn(20) - 15),
			DefaultFundingPpm: int32(r.Intn(2000) - 1000),
			LiquidityTier:     uint32(r.Intn(4)),
		},
		FundingIndex: GenRandomSerializableInt(r),
		OpenInterest: GenRandomSerializableInt(r),
	}
}

func GenRandomFeeTier(r *rand.Rand) *feetiers.PerpetualFeeTier {
	return &feetiers.PerpetualFeeTier{
		Name:                           GenRandomHexStr(r, 4),
		AbsoluteVolumeRequirement:      r.Uint64(),
		TotalVolumeShareRequirementPpm: r.Uint32(),
		MakerVolumeShareRequirementPpm: r.Uint32(),
		MakerFeePpm:                    int32(r.Intn(1000) - 500),
		TakerFeePpm:                    int32(r.Intn(1000)),
	}
}

func GenRandomUserStats(r *rand.Rand) *stats.UserStats {
	return &stats.UserStats{TakerNotional: r.Uint64(), MakerNotional: r.Uint64()}
}

func GenRandomRewardsParams(r *rand.Rand) *rewards.Params {
	return &rewards.Params{
		TreasuryAccount:  "rewards_treasury",
		Denom:            "adv4tnt",
		DenomExponent:    -18,
		MarketId:         r.Uint32(),
		FeeMultiplierPpm: r.Uint32(),
	}
}

func GenRandomDelayedCompleteBridgeMessage(r *rand.Rand, address string) bridge.DelayedCompleteBridgeMessage {
	return bridge.DelayedCompleteBridgeMessage{
		Message: bridge.MsgCompleteBridge{
			Authority: GenRandomAddress(r),
			Event: bridge.BridgeEvent{
				Id:             r.Uint32(),
				Coin:           GenRandomCoin(r),
				Address:        address,
				EthBlockHeight: r.Uint64(),
			},
		},
		BlockHeight: r.Uint32(),
	}
}
