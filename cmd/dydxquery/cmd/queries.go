package cmd

import (
	"context"

	"github.com/cosmos/cosmos-sdk/types/query"
	"github.com/spf13/cobra"

	"github.com/xiaolou86/dydx-v4-clients/querier"
)

func GetBankCmds(cfgFile *string) []*cobra.Command {
	balances := newQueryCmd(cfgFile, "balances [address]", "Balances of every denom held by an address", cobra.ExactArgs(1),
		func(ctx context.Context, q *querier.Querier, args []string) (any, error) {
			return q.GetAccountBalances(ctx, args[0])
		})

	balance := newQueryCmd(cfgFile, "balance [address] [denom]", "Balance of one denom held by an address", cobra.ExactArgs(2),
		func(ctx context.Context, q *querier.Querier, args []string) (any, error) {
			coin, found, err := q.GetAccountBalance(ctx, args[0], args[1])
			if err != nil {
				return nil, err
			}
			return map[string]any{"balance": coin, "found": found}, nil
		})

	return []*cobra.Command{balances, balance}
}

func GetAccountCmd(cfgFile *string) *cobra.Command {
	return newQueryCmd(cfgFile, "account [address]", "Account record of an address", cobra.ExactArgs(1),
		func(ctx context.Context, q *querier.Querier, args []string) (any, error) {
			return q.GetAccount(ctx, args[0])
		})
}

func GetSubaccountCmds(cfgFile *string) []*cobra.Command {
	subaccount := newQueryCmd(cfgFile, "subaccount [owner] [number]", "One subaccount of an owner; number defaults to 0", cobra.RangeArgs(1, 2),
		func(ctx context.Context, q *querier.Querier, args []string) (any, error) {
			var number uint32
			if len(args) == 2 {
				var err error
				if number, err = parseUint32("subaccount number", args[1]); err != nil {
					return nil, err
				}
			}
			return q.GetSubaccount(ctx, args[0], number)
		})

	var page func() (*query.PageRequest, error)
	subaccounts := newQueryCmd(cfgFile, "subaccounts", "Every subaccount", cobra.NoArgs,
		func(ctx context.Context, q *querier.Querier, _ []string) (any, error) {
			p, err := page()
			if err != nil {
				return nil, err
			}
			return q.GetSubaccounts(ctx, p)
		})
	page = paginationFlags(subaccounts)

	return []*cobra.Command{subaccount, subaccounts}
}

func GetClobCmds(cfgFile *string) []*cobra.Command {
	clobPair := newQueryCmd(cfgFile, "clob-pair [id]", "One order book", cobra.ExactArgs(1),
		func(ctx context.Context, q *querier.Querier, args []string) (any, error) {
			id, err := parseUint32("clob pair id", args[0])
			if err != nil {
				return nil, err
			}
			return q.GetClobPair(ctx, id)
		})

	var page func() (*query.PageRequest, error)
	clobPairs := newQueryCmd(cfgFile, "clob-pairs", "Every order book", cobra.NoArgs,
		func(ctx context.Context, q *querier.Querier, _ []string) (any, error) {
			p, err := page()
			if err != nil {
				return nil, err
			}
			return q.GetAllClobPairs(ctx, p)
		})
	page = paginationFlags(clobPairs)

	equityTiers := newQueryCmd(cfgFile, "equity-tiers", "Open order limits by net collateral", cobra.NoArgs,
		func(ctx context.Context, q *querier.Querier, _ []string) (any, error) {
			return q.GetEquityTierLimitConfiguration(ctx)
		})

	rateLimits := newQueryCmd(cfgFile, "rate-limits", "Order placement rate limits", cobra.NoArgs,
		func(ctx context.Context, q *querier.Querier, _ []string) (any, error) {
			return q.GetBlockRateLimitConfiguration(ctx)
		})

	return []*cobra.Command{clobPair, clobPairs, equityTiers, rateLimits}
}

func GetMarketCmds(cfgFile *string) []*cobra.Command {
	price := newQueryCmd(cfgFile, "price [market-id]", "Oracle price of one market", cobra.ExactArgs(1),
		func(ctx context.Context, q *querier.Querier, args []string) (any, error) {
			id, err := parseUint32("market id", args[0])
			if err != nil {
				return nil, err
			}
			return q.GetPrice(ctx, id)
		})

	var pricesPage func() (*query.PageRequest, error)
	prices := newQueryCmd(cfgFile, "prices", "Oracle prices of every market", cobra.NoArgs,
		func(ctx context.Context, q *querier.Querier, _ []string) (any, error) {
			p, err := pricesPage()
			if err != nil {
				return nil, err
			}
			return q.GetAllPrices(ctx, p)
		})
	pricesPage = paginationFlags(prices)

	perpetual := newQueryCmd(cfgFile, "perpetual [id]", "One perpetual", cobra.ExactArgs(1),
		func(ctx context.Context, q *querier.Querier, args []string) (any, error) {
			id, err := parseUint32("perpetual id", args[0])
			if err != nil {
				return nil, err
			}
			return q.GetPerpetual(ctx, id)
		})

	var perpetualsPage func() (*query.PageRequest, error)
	perpetuals := newQueryCmd(cfgFile, "perpetuals", "Every perpetual", cobra.NoArgs,
		func(ctx context.Context, q *querier.Querier, _ []string) (any, error) {
			p, err := perpetualsPage()
			if err != nil {
				return nil, err
			}
			return q.GetAllPerpetuals(ctx, p)
		})
	perpetualsPage = paginationFlags(perpetuals)

	return []*cobra.Command{price, prices, perpetual, perpetuals}
}

func GetParamsCmds(cfgFile *string) []*cobra.Command {
	rewardsParams := newQueryCmd(cfgFile, "rewards-params", "Trading rewards parameters", cobra.NoArgs,
		func(ctx context.Context, q *querier.Querier, _ []string) (any, error) {
			return q.GetRewardsParams(ctx)
		})

	feeTiers := newQueryCmd(cfgFile, "fee-tiers", "Perpetual fee schedule", cobra.NoArgs,
		func(ctx context.Context, q *querier.Querier, _ []string) (any, error) {
			return q.GetFeeTiers(ctx)
		})

	userFeeTier := newQueryCmd(cfgFile, "user-fee-tier [address]", "Fee tier of an address", cobra.ExactArgs(1),
		func(ctx context.Context, q *querier.Querier, args []string) (any, error) {
			return q.GetUserFeeTier(ctx, args[0])
		})

	userStats := newQueryCmd(cfgFile, "user-stats [address]", "Trailing trading volume of an address", cobra.ExactArgs(1),
		func(ctx context.Context, q *querier.Querier, args []string) (any, error) {
			return q.GetUserStats(ctx, args[0])
		})

	return []*cobra.Command{rewardsParams, feeTiers, userFeeTier, userStats}
}

func GetStakingCmds(cfgFile *string) []*cobra.Command {
	var delegationsPage func() (*query.PageRequest, error)
	delegations := newQueryCmd(cfgFile, "delegations [delegator]", "Delegations of a delegator", cobra.ExactArgs(1),
		func(ctx context.Context, q *querier.Querier, args []string) (any, error) {
			p, err := delegationsPage()
			if err != nil {
				return nil, err
			}
			return q.GetDelegatorDelegations(ctx, args[0], p)
		})
	delegationsPage = paginationFlags(delegations)

	var unbondingPage func() (*query.PageRequest, error)
	unbonding := newQueryCmd(cfgFile, "unbonding-delegations [delegator]", "Unbonding delegations of a delegator", cobra.ExactArgs(1),
		func(ctx context.Context, q *querier.Querier, args []string) (any, error) {
			p, err := unbondingPage()
			if err != nil {
				return nil, err
			}
			return q.GetDelegatorUnbondingDelegations(ctx, args[0], p)
		})
	unbondingPage = paginationFlags(unbonding)

	var validatorsPage func() (*query.PageRequest, error)
	validators := newQueryCmd(cfgFile, "validators [status]", "Validators, optionally filtered by bond status, e.g. BOND_STATUS_BONDED", cobra.MaximumNArgs(1),
		func(ctx context.Context, q *querier.Querier, args []string) (any, error) {
			p, err := validatorsPage()
			if err != nil {
				return nil, err
			}
			var status string
			if len(args) == 1 {
				status = args[0]
			}
			return q.GetAllValidators(ctx, status, p)
		})
	validatorsPage = paginationFlags(validators)

	return []*cobra.Command{delegations, unbonding, validators}
}

func GetBridgeCmd(cfgFile *string) *cobra.Command {
	return newQueryCmd(cfgFile, "bridge-messages [address]", "Delayed bridge completions, optionally for one address", cobra.MaximumNArgs(1),
		func(ctx context.Context, q *querier.Querier, args []string) (any, error) {
			var address string
			if len(args) == 1 {
				address = args[0]
			}
			return q.GetDelayedCompleteBridgeMessages(ctx, address)
		})
}

func GetBlockCmds(cfgFile *string) []*cobra.Command {
	block := newQueryCmd(cfgFile, "block", "Latest block", cobra.NoArgs,
		func(ctx context.Context, q *querier.Querier, _ []string) (any, error) {
			return q.LatestBlock(ctx)
		})

	height := newQueryCmd(cfgFile, "height", "Height of the latest block", cobra.NoArgs,
		func(ctx context.Context, q *querier.Querier, _ []string) (any, error) {
			return q.LatestBlockHeight(ctx)
		})

	return []*cobra.Command{block, height}
}
