package transport

import (
	"context"
	"time"

	cmttypes "github.com/cometbft/cometbft/types"

	"github.com/xiaolou86/dydx-v4-clients/metrics"
	"github.com/xiaolou86/dydx-v4-clients/querier"
)

// LatestBlockLabel is the path label under which block tip calls are metered
// and logged.
const LatestBlockLabel = "latest_block"

type MeteredTransport struct {
	next    querier.Transport
	metrics *metrics.QuerierMetrics
}

func NewMeteredTransport(next querier.Transport, m *metrics.QuerierMetrics) *MeteredTransport {
	return &MeteredTransport{next: next, metrics: m}
}

func (t *MeteredTransport) QueryUnverified(ctx context.Context, path string, request []byte) ([]byte, error) {
	start := time.Now()
	out, err := t.next.QueryUnverified(ctx, path, request)
	t.metrics.ObserveQuery(path, start, err)
	return out, err
}

func (t *MeteredTransport) LatestBlock(ctx context.Context) (*cmttypes.Block, error) {
	start := time.Now()
	block, err := t.next.LatestBlock(ctx)
	t.metrics.ObserveQuery(LatestBlockLabel, start, err)
	return block, err
}
