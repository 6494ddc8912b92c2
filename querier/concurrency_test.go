package querier_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"
	"golang.org/x/sync/errgroup"

	"github.com/xiaolou86/dydx-v4-clients/protocol/prices"
	"github.com/xiaolou86/dydx-v4-clients/querier"
)

// The transport echoes each requested market id back as the price, so a
// response routed to the wrong caller is detected.
func TestConcurrentQueries(t *testing.T) {
	const callers = 32

	q, transport := newTestQuerier(t)
	calls := atomic.NewInt32(0)
	transport.EXPECT().
		QueryUnverified(gomock.Any(), querier.PathMarketPrice, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, bz []byte) ([]byte, error) {
			calls.Inc()
			var req prices.QueryMarketPriceRequest
			if err := req.Unmarshal(bz); err != nil {
				return nil, err
			}
			return (&prices.QueryMarketPriceResponse{
				MarketPrice: prices.MarketPrice{Id: req.Id, Exponent: -5, Price: uint64(req.Id) * 1000},
			}).Marshal()
		}).
		Times(callers)

	g, ctx := errgroup.WithContext(context.Background())
	for i := uint32(0); i < callers; i++ {
		id := i
		g.Go(func() error {
			mp, err := q.GetPrice(ctx, id)
			if err != nil {
				return err
			}
			if mp.Id != id || mp.Price != uint64(id)*1000 {
				return errors.Errorf("market %d: got %s", id, mp)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
	require.Equal(t, int32(callers), calls.Load())
}
