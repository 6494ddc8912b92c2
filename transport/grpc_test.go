package transport

import (
	"context"
	"math/rand"
	"net"
	"testing"

	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	"github.com/cosmos/cosmos-sdk/client/grpc/cmtservice"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/xiaolou86/dydx-v4-clients/metrics"
	"github.com/xiaolou86/dydx-v4-clients/protocol/prices"
	"github.com/xiaolou86/dydx-v4-clients/querier"
	"github.com/xiaolou86/dydx-v4-clients/testutil/datagen"
)

type blockServer struct {
	cmtservice.UnimplementedServiceServer
	block *cmtproto.Block
}

func (s *blockServer) GetLatestBlock(context.Context, *cmtservice.GetLatestBlockRequest) (*cmtservice.GetLatestBlockResponse, error) {
	return &cmtservice.GetLatestBlockResponse{Block: s.block}, nil //nolint:staticcheck
}

// priceHandler answers MarketPrice queries with a price derived from the
// requested id and rejects every other method.
func priceHandler(_ any, stream grpc.ServerStream) error {
	method, _ := grpc.MethodFromServerStream(stream)
	if method != querier.PathMarketPrice {
		return status.Errorf(codes.NotFound, "unknown method %s", method)
	}

	in := &frame{}
	if err := stream.RecvMsg(in); err != nil {
		return err
	}
	var req prices.QueryMarketPriceRequest
	if err := req.Unmarshal(in.bz); err != nil {
		return status.Error(codes.InvalidArgument, err.Error())
	}
	bz, err := (&prices.QueryMarketPriceResponse{
		MarketPrice: prices.MarketPrice{Id: req.Id, Exponent: -5, Price: uint64(req.Id) + 100},
	}).Marshal()
	if err != nil {
		return err
	}
	return stream.SendMsg(&frame{bz: bz})
}

func newBufconnTransport(t *testing.T, block *cmtproto.Block) (*GRPCTransport, *metrics.QuerierMetrics) {
	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer(grpc.ForceServerCodec(Codec{}), grpc.UnknownServiceHandler(priceHandler))
	cmtservice.RegisterServiceServer(srv, &blockServer{block: block})
	go func() {
		_ = srv.Serve(lis)
	}()
	t.Cleanup(srv.Stop)

	m := metrics.NewQuerierMetrics()
	tr, err := DialGRPC("bufnet",
		WithInsecure(),
		WithClientLogger(zap.NewNop()),
		WithClientMetrics(m.GRPCClientMetrics),
		WithDialOptions(grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		})),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = tr.Close() })
	return tr, m
}

func TestGRPCTransport(t *testing.T) {
	block := datagen.GenRandomBlock(rand.New(rand.NewSource(3)), 12345)
	pb, err := block.ToProto()
	require.NoError(t, err)

	tr, m := newBufconnTransport(t, pb)
	q := querier.New(tr)
	ctx := context.Background()

	mp, err := q.GetPrice(ctx, 7)
	require.NoError(t, err)
	require.Equal(t, &prices.MarketPrice{Id: 7, Exponent: -5, Price: 107}, mp)

	got, err := q.LatestBlock(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(12345), got.Height)
	require.Equal(t, block.Hash(), got.Hash())

	families, err := m.Registry.Gather()
	require.NoError(t, err)
	var names []string
	for _, f := range families {
		names = append(names, f.GetName())
	}
	require.Contains(t, names, "grpc_client_started_total")
}

func TestGRPCTransportStatusError(t *testing.T) {
	tr, _ := newBufconnTransport(t, nil)
	q := querier.New(tr)

	_, err := q.GetClobPair(context.Background(), 1)
	require.Error(t, err)
	require.Equal(t, codes.NotFound, status.Code(err))

	// a node without a block behaves like a protocol violation
	_, err = q.LatestBlockHeight(context.Background())
	require.ErrorIs(t, err, querier.ErrUnexpectedResponse)
}
