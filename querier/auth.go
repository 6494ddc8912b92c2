package querier

import (
	"context"

	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
)

// GetAccount returns the account record of address. The node reports an
// unknown address with a transport error; a response without an account
// envelope is a protocol violation and yields ErrUnexpectedResponse.
func (q *Querier) GetAccount(ctx context.Context, address string) (*Account, error) {
	req := &authtypes.QueryAccountRequest{Address: address}
	resp := &authtypes.QueryAccountResponse{}
	if err := q.send(ctx, PathAccount, req, resp); err != nil {
		return nil, err
	}
	if resp.Account == nil {
		return nil, ErrUnexpectedResponse.Wrapf("account %s: response carries no account", address)
	}
	return q.accounts.Decode(resp.Account)
}
