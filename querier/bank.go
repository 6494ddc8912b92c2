package querier

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
)

// GetAccountBalances returns every balance held by address. An account
// without funds yields an empty list.
func (q *Querier) GetAccountBalances(ctx context.Context, address string) (sdk.Coins, error) {
	req := &banktypes.QueryAllBalancesRequest{Address: address}
	resp := &banktypes.QueryAllBalancesResponse{}
	if err := q.send(ctx, PathAllBalances, req, resp); err != nil {
		return nil, err
	}
	return resp.Balances, nil
}

// GetAccountBalance returns the balance of denom held by address. found is
// false when the response carries no balance entry.
func (q *Querier) GetAccountBalance(ctx context.Context, address, denom string) (coin sdk.Coin, found bool, err error) {
	req := &banktypes.QueryBalanceRequest{Address: address, Denom: denom}
	resp := &banktypes.QueryBalanceResponse{}
	if err := q.send(ctx, PathBalance, req, resp); err != nil {
		return sdk.Coin{}, false, err
	}
	if resp.Balance == nil {
		return sdk.Coin{}, false, nil
	}
	return *resp.Balance, true, nil
}
