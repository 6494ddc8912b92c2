package querier

import (
	"context"

	"github.com/xiaolou86/dydx-v4-clients/protocol/bridge"
)

// GetDelayedCompleteBridgeMessages returns the pending bridge completions
// for address. The empty address is sent as is and matches every message.
func (q *Querier) GetDelayedCompleteBridgeMessages(ctx context.Context, address string) ([]bridge.DelayedCompleteBridgeMessage, error) {
	req := &bridge.QueryDelayedCompleteBridgeMessagesRequest{Address: address}
	resp := &bridge.QueryDelayedCompleteBridgeMessagesResponse{}
	if err := q.send(ctx, PathDelayedCompleteBridgeMessages, req, resp); err != nil {
		return nil, err
	}
	return resp.Messages, nil
}
