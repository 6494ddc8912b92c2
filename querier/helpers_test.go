package querier_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/xiaolou86/dydx-v4-clients/querier"
)

type marshaler interface {
	Marshal() ([]byte, error)
}

func mustMarshal(t *testing.T, m marshaler) []byte {
	t.Helper()
	bz, err := m.Marshal()
	require.NoError(t, err)
	return bz
}

func newTestQuerier(t *testing.T) (*querier.Querier, *querier.MockTransport) {
	ctrl := gomock.NewController(t)
	transport := querier.NewMockTransport(ctrl)
	return querier.New(transport), transport
}

// expectQuery makes transport answer req on path with resp exactly once.
func expectQuery(t *testing.T, transport *querier.MockTransport, path string, req, resp marshaler) {
	t.Helper()
	transport.EXPECT().
		QueryUnverified(gomock.Any(), gomock.Eq(path), gomock.Eq(mustMarshal(t, req))).
		Return(mustMarshal(t, resp), nil).
		Times(1)
}

func newMockTransport(t *testing.T) *querier.MockTransport {
	return querier.NewMockTransport(gomock.NewController(t))
}
