package transport

import (
	"context"
	"time"

	errorsmod "cosmossdk.io/errors"
	rpcclient "github.com/cometbft/cometbft/rpc/client"
	rpchttp "github.com/cometbft/cometbft/rpc/client/http"
	cmttypes "github.com/cometbft/cometbft/types"
	"github.com/pkg/errors"
)

// CometTransport sends queries as unproven ABCI queries over CometBFT RPC.
type CometTransport struct {
	client RPCClient
}

func NewCometTransport(client RPCClient) *CometTransport {
	return &CometTransport{client: client}
}

// DialComet returns a transport backed by an HTTP RPC client for addr, e.g.
// "http://localhost:26657". A zero timeout disables the client timeout.
func DialComet(addr string, timeout time.Duration) (*CometTransport, error) {
	client, err := rpchttp.NewWithTimeout(addr, "/websocket", uint(timeout/time.Second))
	if err != nil {
		return nil, errors.Wrapf(err, "create CometBFT RPC client for %s", addr)
	}
	return NewCometTransport(client), nil
}

// QueryUnverified runs an ABCI query without requesting a proof. A response
// with a non-zero code becomes the ABCI error it carries.
func (t *CometTransport) QueryUnverified(ctx context.Context, path string, request []byte) ([]byte, error) {
	res, err := t.client.ABCIQueryWithOptions(ctx, path, request, rpcclient.ABCIQueryOptions{Prove: false})
	if err != nil {
		return nil, err
	}
	if !res.Response.IsOK() {
		return nil, errorsmod.ABCIError(res.Response.Codespace, res.Response.Code, res.Response.Log)
	}
	return res.Response.Value, nil
}

func (t *CometTransport) LatestBlock(ctx context.Context) (*cmttypes.Block, error) {
	res, err := t.client.Block(ctx, nil)
	if err != nil {
		return nil, err
	}
	return res.Block, nil
}
