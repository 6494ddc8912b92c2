package transport_test

import (
	"context"
	"math/rand"
	"testing"

	abci "github.com/cometbft/cometbft/abci/types"
	cmtbytes "github.com/cometbft/cometbft/libs/bytes"
	rpcclient "github.com/cometbft/cometbft/rpc/client"
	coretypes "github.com/cometbft/cometbft/rpc/core/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/xiaolou86/dydx-v4-clients/querier"
	"github.com/xiaolou86/dydx-v4-clients/testutil/datagen"
	"github.com/xiaolou86/dydx-v4-clients/transport"
)

func TestCometQueryUnverified(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	req := datagen.GenRandomByteArray(r, 16)
	value := datagen.GenRandomByteArray(r, 40)

	ctrl := gomock.NewController(t)
	client := transport.NewMockRPCClient(ctrl)
	client.EXPECT().
		ABCIQueryWithOptions(gomock.Any(), querier.PathMarketPrice, cmtbytes.HexBytes(req), rpcclient.ABCIQueryOptions{Prove: false}).
		Return(&coretypes.ResultABCIQuery{Response: abci.ResponseQuery{Value: value}}, nil)

	out, err := transport.NewCometTransport(client).QueryUnverified(context.Background(), querier.PathMarketPrice, req)
	require.NoError(t, err)
	require.Equal(t, value, out)
}

func TestCometQueryABCIError(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := transport.NewMockRPCClient(ctrl)
	client.EXPECT().
		ABCIQueryWithOptions(gomock.Any(), querier.PathAccount, gomock.Any(), gomock.Any()).
		Return(&coretypes.ResultABCIQuery{Response: abci.ResponseQuery{
			Code:      sdkerrors.ErrNotFound.ABCICode(),
			Codespace: sdkerrors.ErrNotFound.Codespace(),
			Log:       "account dydx1unknown not found",
		}}, nil)

	_, err := transport.NewCometTransport(client).QueryUnverified(context.Background(), querier.PathAccount, []byte{})
	require.ErrorIs(t, err, sdkerrors.ErrNotFound)
	require.Contains(t, err.Error(), "dydx1unknown")
}

func TestCometLatestBlock(t *testing.T) {
	block := datagen.GenRandomBlock(rand.New(rand.NewSource(2)), 12345)

	ctrl := gomock.NewController(t)
	client := transport.NewMockRPCClient(ctrl)
	client.EXPECT().Block(gomock.Any(), gomock.Nil()).Return(&coretypes.ResultBlock{Block: block}, nil).Times(1)

	q := querier.New(transport.NewCometTransport(client))
	height, err := q.LatestBlockHeight(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(12345), height)
}
