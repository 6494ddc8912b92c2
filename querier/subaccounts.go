package querier

import (
	"context"

	"github.com/cosmos/cosmos-sdk/types/query"

	"github.com/xiaolou86/dydx-v4-clients/protocol/subaccounts"
)

// GetSubaccount returns subaccount number of owner. A subaccount that was
// never created comes back from the node with zero positions, not an error.
func (q *Querier) GetSubaccount(ctx context.Context, owner string, number uint32) (*subaccounts.Subaccount, error) {
	req := &subaccounts.QueryGetSubaccountRequest{Owner: owner, Number: number}
	resp := &subaccounts.QuerySubaccountResponse{}
	if err := q.send(ctx, PathSubaccount, req, resp); err != nil {
		return nil, err
	}
	return &resp.Subaccount, nil
}

func (q *Querier) GetSubaccounts(ctx context.Context, pagination *query.PageRequest) (*subaccounts.QuerySubaccountAllResponse, error) {
	req := &subaccounts.QueryAllSubaccountRequest{Pagination: pageRequestOrDefault(pagination)}
	resp := &subaccounts.QuerySubaccountAllResponse{}
	if err := q.send(ctx, PathSubaccountAll, req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}
