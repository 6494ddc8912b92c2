package transport

import (
	"context"
	"time"

	cmttypes "github.com/cometbft/cometbft/types"
	"go.uber.org/zap"

	"github.com/xiaolou86/dydx-v4-clients/querier"
)

type LoggingTransport struct {
	next   querier.Transport
	logger *zap.SugaredLogger
}

func NewLoggingTransport(next querier.Transport, parentLogger *zap.Logger) *LoggingTransport {
	return &LoggingTransport{
		next:   next,
		logger: parentLogger.With(zap.String("module", "transport")).Sugar(),
	}
}

func (t *LoggingTransport) QueryUnverified(ctx context.Context, path string, request []byte) ([]byte, error) {
	start := time.Now()
	out, err := t.next.QueryUnverified(ctx, path, request)
	if err != nil {
		t.logger.Warnw("query failed", "path", path, "elapsed", time.Since(start), "error", err)
		return nil, err
	}
	t.logger.Debugw("query", "path", path, "request_bytes", len(request), "response_bytes", len(out), "elapsed", time.Since(start))
	return out, nil
}

func (t *LoggingTransport) LatestBlock(ctx context.Context) (*cmttypes.Block, error) {
	start := time.Now()
	block, err := t.next.LatestBlock(ctx)
	if err != nil {
		t.logger.Warnw("latest block failed", "elapsed", time.Since(start), "error", err)
		return nil, err
	}
	if block != nil {
		t.logger.Debugw("latest block", "height", block.Height, "elapsed", time.Since(start))
	}
	return block, nil
}
