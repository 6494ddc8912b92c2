package transport

import (
	"context"
	"crypto/tls"

	cmttypes "github.com/cometbft/cometbft/types"
	"github.com/cosmos/cosmos-sdk/client/grpc/cmtservice"
	grpc_middleware "github.com/grpc-ecosystem/go-grpc-middleware"
	grpc_zap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	grpc_prometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
)

// GRPCTransport sends queries to the cosmos gRPC endpoint of a node. Query
// paths double as gRPC method names.
type GRPCTransport struct {
	conn   grpc.ClientConnInterface
	blocks cmtservice.ServiceClient
	closer func() error
}

func NewGRPCTransport(conn grpc.ClientConnInterface) *GRPCTransport {
	return &GRPCTransport{
		conn:   conn,
		blocks: cmtservice.NewServiceClient(conn),
		closer: func() error { return nil },
	}
}

type grpcDialConfig struct {
	insecure bool
	logger   *zap.Logger
	metrics  *grpc_prometheus.ClientMetrics
	extra    []grpc.DialOption
}

type GRPCOption func(*grpcDialConfig)

// WithInsecure disables TLS.
func WithInsecure() GRPCOption {
	return func(c *grpcDialConfig) { c.insecure = true }
}

// WithClientLogger logs every call with the zap interceptor.
func WithClientLogger(logger *zap.Logger) GRPCOption {
	return func(c *grpcDialConfig) { c.logger = logger }
}

// WithClientMetrics records every call on the given client metrics.
func WithClientMetrics(m *grpc_prometheus.ClientMetrics) GRPCOption {
	return func(c *grpcDialConfig) { c.metrics = m }
}

// WithDialOptions appends raw dial options, e.g. a custom dialer.
func WithDialOptions(opts ...grpc.DialOption) GRPCOption {
	return func(c *grpcDialConfig) { c.extra = append(c.extra, opts...) }
}

// DialGRPC connects to addr, e.g. "localhost:9090". The returned transport
// owns the connection; Close releases it.
func DialGRPC(addr string, opts ...GRPCOption) (*GRPCTransport, error) {
	cfg := &grpcDialConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	creds := credentials.NewTLS(&tls.Config{MinVersion: tls.VersionTLS12})
	if cfg.insecure {
		creds = insecure.NewCredentials()
	}

	var interceptors []grpc.UnaryClientInterceptor
	if cfg.metrics != nil {
		interceptors = append(interceptors, cfg.metrics.UnaryClientInterceptor())
	}
	if cfg.logger != nil {
		interceptors = append(interceptors, grpc_zap.UnaryClientInterceptor(cfg.logger.With(zap.String("module", "grpc"))))
	}

	dialOpts := []grpc.DialOption{
		grpc.WithTransportCredentials(creds),
		grpc.WithDefaultCallOptions(grpc.ForceCodec(Codec{})),
		grpc.WithUnaryInterceptor(grpc_middleware.ChainUnaryClient(interceptors...)),
	}
	dialOpts = append(dialOpts, cfg.extra...)

	conn, err := grpc.Dial(addr, dialOpts...)
	if err != nil {
		return nil, errors.Wrapf(err, "dial gRPC endpoint %s", addr)
	}

	t := NewGRPCTransport(conn)
	t.closer = conn.Close
	return t, nil
}

func (t *GRPCTransport) QueryUnverified(ctx context.Context, path string, request []byte) ([]byte, error) {
	out := &frame{}
	if err := t.conn.Invoke(ctx, path, &frame{bz: request}, out, grpc.ForceCodec(Codec{})); err != nil {
		return nil, err
	}
	return out.bz, nil
}

// LatestBlock returns the chain tip, or nil if the node sent no block.
func (t *GRPCTransport) LatestBlock(ctx context.Context) (*cmttypes.Block, error) {
	resp, err := t.blocks.GetLatestBlock(ctx, &cmtservice.GetLatestBlockRequest{}, grpc.ForceCodec(Codec{}))
	if err != nil {
		return nil, err
	}
	if resp.Block == nil {
		return nil, nil
	}
	block, err := cmttypes.BlockFromProto(resp.Block) //nolint:staticcheck // Block is deprecated in favor of SdkBlock
	if err != nil {
		return nil, errors.Wrap(err, "convert latest block")
	}
	return block, nil
}

func (t *GRPCTransport) Close() error {
	return t.closer()
}
