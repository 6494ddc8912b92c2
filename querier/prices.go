package querier

import (
	"context"

	"github.com/cosmos/cosmos-sdk/types/query"

	"github.com/xiaolou86/dydx-v4-clients/protocol/prices"
)

// GetPrice returns the oracle price of market marketID. Unknown markets are
// rejected by the node.
func (q *Querier) GetPrice(ctx context.Context, marketID uint32) (*prices.MarketPrice, error) {
	req := &prices.QueryMarketPriceRequest{Id: marketID}
	resp := &prices.QueryMarketPriceResponse{}
	if err := q.send(ctx, PathMarketPrice, req, resp); err != nil {
		return nil, err
	}
	return &resp.MarketPrice, nil
}

func (q *Querier) GetAllPrices(ctx context.Context, pagination *query.PageRequest) (*prices.QueryAllMarketPricesResponse, error) {
	req := &prices.QueryAllMarketPricesRequest{Pagination: pageRequestOrDefault(pagination)}
	resp := &prices.QueryAllMarketPricesResponse{}
	if err := q.send(ctx, PathAllMarketPrices, req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}
