// Package bridge holds the wire types of the dydxprotocol.bridge module.
package bridge

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/xiaolou86/dydx-v4-clients/protocol/internal/wire"
)

// BridgeEvent is a deposit observed on Ethereum that credits Coin to Address.
type BridgeEvent struct {
	Id             uint32   `json:"id"`
	Coin           sdk.Coin `json:"coin"`
	Address        string   `json:"address"`
	EthBlockHeight uint64   `json:"eth_block_height"`
}

func (m *BridgeEvent) Reset()         { *m = BridgeEvent{} }
func (m *BridgeEvent) String() string { return wire.JSON(m) }
func (*BridgeEvent) ProtoMessage()    {}
func (m *BridgeEvent) Size() int      { return wire.Size(m) }

func (m *BridgeEvent) Marshal() ([]byte, error) {
	var w wire.Buffer
	w.Uint32(1, m.Id)
	if err := w.Message(2, &m.Coin); err != nil {
		return nil, err
	}
	w.String(3, m.Address)
	w.Uint64(4, m.EthBlockHeight)
	return w.Output(), nil
}

func (m *BridgeEvent) Unmarshal(dAtA []byte) error {
	return wire.Walk(dAtA, func(f wire.Field) (err error) {
		switch f.Num {
		case 1:
			m.Id, err = f.AsUint32()
		case 2:
			err = f.AsMessage(&m.Coin)
		case 3:
			m.Address, err = f.AsString()
		case 4:
			m.EthBlockHeight, err = f.AsUint64()
		}
		return err
	})
}

type MsgCompleteBridge struct {
	Authority string      `json:"authority"`
	Event     BridgeEvent `json:"event"`
}

func (m *MsgCompleteBridge) Reset()         { *m = MsgCompleteBridge{} }
func (m *MsgCompleteBridge) String() string { return wire.JSON(m) }
func (*MsgCompleteBridge) ProtoMessage()    {}
func (m *MsgCompleteBridge) Size() int      { return wire.Size(m) }

func (m *MsgCompleteBridge) Marshal() ([]byte, error) {
	var w wire.Buffer
	w.String(1, m.Authority)
	if err := w.Message(2, &m.Event); err != nil {
		return nil, err
	}
	return w.Output(), nil
}

func (m *MsgCompleteBridge) Unmarshal(dAtA []byte) error {
	return wire.Walk(dAtA, func(f wire.Field) (err error) {
		switch f.Num {
		case 1:
			m.Authority, err = f.AsString()
		case 2:
			err = f.AsMessage(&m.Event)
		}
		return err
	})
}

// DelayedCompleteBridgeMessage is a bridge completion scheduled for execution
// at BlockHeight.
type DelayedCompleteBridgeMessage struct {
	Message     MsgCompleteBridge `json:"message"`
	BlockHeight uint32            `json:"block_height"`
}

func (m *DelayedCompleteBridgeMessage) Reset()         { *m = DelayedCompleteBridgeMessage{} }
func (m *DelayedCompleteBridgeMessage) String() string { return wire.JSON(m) }
func (*DelayedCompleteBridgeMessage) ProtoMessage()    {}
func (m *DelayedCompleteBridgeMessage) Size() int      { return wire.Size(m) }

func (m *DelayedCompleteBridgeMessage) Marshal() ([]byte, error) {
	var w wire.Buffer
	if err := w.Message(1, &m.Message); err != nil {
		return nil, err
	}
	w.Uint32(2, m.BlockHeight)
	return w.Output(), nil
}

func (m *DelayedCompleteBridgeMessage) Unmarshal(dAtA []byte) error {
	return wire.Walk(dAtA, func(f wire.Field) (err error) {
		switch f.Num {
		case 1:
			err = f.AsMessage(&m.Message)
		case 2:
			m.BlockHeight, err = f.AsUint32()
		}
		return err
	})
}

// QueryDelayedCompleteBridgeMessagesRequest filters by recipient address. An
// empty address matches every message.
type QueryDelayedCompleteBridgeMessagesRequest struct {
	Address string `json:"address"`
}

func (m *QueryDelayedCompleteBridgeMessagesRequest) Reset() {
	*m = QueryDelayedCompleteBridgeMessagesRequest{}
}
func (m *QueryDelayedCompleteBridgeMessagesRequest) String() string { return wire.JSON(m) }
func (*QueryDelayedCompleteBridgeMessagesRequest) ProtoMessage()    {}
func (m *QueryDelayedCompleteBridgeMessagesRequest) Size() int      { return wire.Size(m) }

func (m *QueryDelayedCompleteBridgeMessagesRequest) Marshal() ([]byte, error) {
	var w wire.Buffer
	w.String(1, m.Address)
	return w.Output(), nil
}

func (m *QueryDelayedCompleteBridgeMessagesRequest) Unmarshal(dAtA []byte) error {
	return wire.Walk(dAtA, func(f wire.Field) (err error) {
		if f.Num == 1 {
			m.Address, err = f.AsString()
		}
		return err
	})
}

type QueryDelayedCompleteBridgeMessagesResponse struct {
	Messages []DelayedCompleteBridgeMessage `json:"messages"`
}

func (m *QueryDelayedCompleteBridgeMessagesResponse) Reset() {
	*m = QueryDelayedCompleteBridgeMessagesResponse{}
}
func (m *QueryDelayedCompleteBridgeMessagesResponse) String() string { return wire.JSON(m) }
func (*QueryDelayedCompleteBridgeMessagesResponse) ProtoMessage()    {}
func (m *QueryDelayedCompleteBridgeMessagesResponse) Size() int      { return wire.Size(m) }

func (m *QueryDelayedCompleteBridgeMessagesResponse) Marshal() ([]byte, error) {
	var w wire.Buffer
	for i := range m.Messages {
		if err := w.Message(1, &m.Messages[i]); err != nil {
			return nil, err
		}
	}
	return w.Output(), nil
}

func (m *QueryDelayedCompleteBridgeMessagesResponse) Unmarshal(dAtA []byte) error {
	return wire.Walk(dAtA, func(f wire.Field) error {
		if f.Num == 1 {
			return wire.AppendValue(f, &m.Messages)
		}
		return nil
	})
}
