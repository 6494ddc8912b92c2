package querier

// Query paths served by the node. Each path is bound to exactly one
// request/response message pair.
const (
	PathAllBalances = "/cosmos.bank.v1beta1.Query/AllBalances"
	PathBalance     = "/cosmos.bank.v1beta1.Query/Balance"
	PathAccount     = "/cosmos.auth.v1beta1.Query/Account"

	PathSubaccount    = "/dydxprotocol.subaccounts.Query/Subaccount"
	PathSubaccountAll = "/dydxprotocol.subaccounts.Query/SubaccountAll"

	PathClobPair                     = "/dydxprotocol.clob.Query/ClobPair"
	PathClobPairAll                  = "/dydxprotocol.clob.Query/ClobPairAll"
	PathEquityTierLimitConfiguration = "/dydxprotocol.clob.Query/EquityTierLimitConfiguration"
	PathBlockRateLimitConfiguration  = "/dydxprotocol.clob.Query/BlockRateLimitConfiguration"

	PathMarketPrice     = "/dydxprotocol.prices.Query/MarketPrice"
	PathAllMarketPrices = "/dydxprotocol.prices.Query/AllMarketPrices"

	PathPerpetual     = "/dydxprotocol.perpetuals.Query/Perpetual"
	PathAllPerpetuals = "/dydxprotocol.perpetuals.Query/AllPerpetuals"

	PathRewardsParams      = "/dydxprotocol.rewards.Query/Params"
	PathPerpetualFeeParams = "/dydxprotocol.feetiers.Query/PerpetualFeeParams"
	PathUserFeeTier        = "/dydxprotocol.feetiers.Query/UserFeeTier"
	PathUserStats          = "/dydxprotocol.stats.Query/UserStats"

	PathDelayedCompleteBridgeMessages = "/dydxprotocol.bridge.Query/DelayedCompleteBridgeMessages"

	PathDelegatorDelegations          = "/cosmos.staking.v1beta1.Query/DelegatorDelegations"
	PathDelegatorUnbondingDelegations = "/cosmos.staking.v1beta1.Query/DelegatorUnbondingDelegations"
	PathValidators                    = "/cosmos.staking.v1beta1.Query/Validators"
)
