package metrics_test

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/xiaolou86/dydx-v4-clients/metrics"
)

func TestObserveQuery(t *testing.T) {
	m := metrics.NewQuerierMetrics()
	const path = "/dydxprotocol.prices.Query/MarketPrice"

	m.ObserveQuery(path, time.Now(), nil)
	m.ObserveQuery(path, time.Now(), errors.New("unavailable"))

	require.Equal(t, float64(2), testutil.ToFloat64(m.QueriesCounterVec.WithLabelValues(path)))
	require.Equal(t, float64(1), testutil.ToFloat64(m.FailedQueriesCounter.WithLabelValues(path)))
	require.Equal(t, 1, testutil.CollectAndCount(m.QueryDurationHistoVec))

	families, err := m.Registry.Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	require.Contains(t, names, "dydxquery_queries_total")
	require.Contains(t, names, "dydxquery_query_failures_total")
	require.Contains(t, names, "dydxquery_query_duration_seconds")
}
