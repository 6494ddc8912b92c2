package querier

import (
	"context"

	"github.com/cosmos/cosmos-sdk/types/query"

	"github.com/xiaolou86/dydx-v4-clients/protocol/perpetuals"
)

// GetPerpetual returns the perpetual with the given id. Unknown ids are
// rejected by the node.
func (q *Querier) GetPerpetual(ctx context.Context, id uint32) (*perpetuals.Perpetual, error) {
	req := &perpetuals.QueryPerpetualRequest{Id: id}
	resp := &perpetuals.QueryPerpetualResponse{}
	if err := q.send(ctx, PathPerpetual, req, resp); err != nil {
		return nil, err
	}
	return &resp.Perpetual, nil
}

func (q *Querier) GetAllPerpetuals(ctx context.Context, pagination *query.PageRequest) (*perpetuals.QueryAllPerpetualsResponse, error) {
	req := &perpetuals.QueryAllPerpetualsRequest{Pagination: pageRequestOrDefault(pagination)}
	resp := &perpetuals.QueryAllPerpetualsResponse{}
	if err := q.send(ctx, PathAllPerpetuals, req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}
