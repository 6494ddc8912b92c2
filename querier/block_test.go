package querier_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/xiaolou86/dydx-v4-clients/querier"
	"github.com/xiaolou86/dydx-v4-clients/testutil/datagen"
)

func TestLatestBlockHeight(t *testing.T) {
	r := rand.New(rand.NewSource(12345))
	q, transport := newTestQuerier(t)
	transport.EXPECT().LatestBlock(gomock.Any()).Return(datagen.GenRandomBlock(r, 12345), nil).Times(1)

	height, err := q.LatestBlockHeight(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(12345), height)
}

func TestLatestBlock(t *testing.T) {
	block := datagen.GenRandomBlock(rand.New(rand.NewSource(2)), 77)

	t.Run("ok", func(t *testing.T) {
		q, transport := newTestQuerier(t)
		transport.EXPECT().LatestBlock(gomock.Any()).Return(block, nil).Times(1)

		got, err := q.LatestBlock(context.Background())
		require.NoError(t, err)
		require.Same(t, block, got)
	})

	t.Run("no block", func(t *testing.T) {
		q, transport := newTestQuerier(t)
		transport.EXPECT().LatestBlock(gomock.Any()).Return(nil, nil).Times(1)

		_, err := q.LatestBlockHeight(context.Background())
		require.ErrorIs(t, err, querier.ErrUnexpectedResponse)
	})

	t.Run("transport error", func(t *testing.T) {
		errNode := errors.New("node unreachable")
		q, transport := newTestQuerier(t)
		transport.EXPECT().LatestBlock(gomock.Any()).Return(nil, errNode).Times(1)

		_, err := q.LatestBlockHeight(context.Background())
		require.Equal(t, errNode, err)
	})
}
