package metrics

import (
	"time"

	grpc_prometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type QuerierMetrics struct {
	Registry              *prometheus.Registry
	QueriesCounterVec     *prometheus.CounterVec
	FailedQueriesCounter  *prometheus.CounterVec
	QueryDurationHistoVec *prometheus.HistogramVec
	// GRPCClientMetrics instruments the gRPC transport, if one is used.
	GRPCClientMetrics *grpc_prometheus.ClientMetrics
}

func NewQuerierMetrics() *QuerierMetrics {
	registry := prometheus.NewRegistry()
	registerer := promauto.With(registry)

	grpcMetrics := grpc_prometheus.NewClientMetrics()
	grpcMetrics.EnableClientHandlingTimeHistogram()
	registry.MustRegister(grpcMetrics)

	return &QuerierMetrics{
		Registry: registry,
		QueriesCounterVec: registerer.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dydxquery_queries_total",
				Help: "The total number of queries sent to the dYdX node",
			},
			[]string{
				// the query path, or "latest_block" for the block tip
				"path",
			},
		),
		FailedQueriesCounter: registerer.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dydxquery_query_failures_total",
				Help: "The total number of queries the dYdX node did not answer successfully",
			},
			[]string{"path"},
		),
		QueryDurationHistoVec: registerer.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "dydxquery_query_duration_seconds",
				Help:    "Round trip time of queries to the dYdX node",
				Buckets: prometheus.ExponentialBuckets(0.005, 2, 12),
			},
			[]string{"path"},
		),
		GRPCClientMetrics: grpcMetrics,
	}
}

// ObserveQuery records one finished query on path.
func (m *QuerierMetrics) ObserveQuery(path string, start time.Time, err error) {
	m.QueriesCounterVec.WithLabelValues(path).Inc()
	m.QueryDurationHistoVec.WithLabelValues(path).Observe(time.Since(start).Seconds())
	if err != nil {
		m.FailedQueriesCounter.WithLabelValues(path).Inc()
	}
}
