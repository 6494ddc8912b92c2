package clob

import (
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/xiaolou86/dydx-v4-clients/protocol/dtypes"
	"github.com/xiaolou86/dydx-v4-clients/protocol/internal/wire"
)

// EquityTierLimit caps the number of open orders for subaccounts holding at
// least UsdTncRequired of net collateral.
type EquityTierLimit struct {
	UsdTncRequired dtypes.SerializableInt `json:"usd_tnc_required"`
	Limit          uint32                 `json:"limit"`
}

func (m *EquityTierLimit) Reset()         { *m = EquityTierLimit{} }
func (m *EquityTierLimit) String() string { return wire.JSON(m) }
func (*EquityTierLimit) ProtoMessage()    {}
func (m *EquityTierLimit) Size() int      { return wire.Size(m) }

func (m *EquityTierLimit) Marshal() ([]byte, error) {
	var w wire.Buffer
	tnc, err := m.UsdTncRequired.Marshal()
	if err != nil {
		return nil, err
	}
	w.Bytes(1, tnc)
	w.Uint32(2, m.Limit)
	return w.Output(), nil
}

func (m *EquityTierLimit) Unmarshal(dAtA []byte) error {
	return wire.Walk(dAtA, func(f wire.Field) (err error) {
		switch f.Num {
		case 1:
			var bz []byte
			if bz, err = f.AsBytes(); err == nil {
				err = m.UsdTncRequired.Unmarshal(bz)
			}
		case 2:
			m.Limit, err = f.AsUint32()
		}
		return err
	})
}

type EquityTierLimitConfiguration struct {
	ShortTermOrderEquityTiers []EquityTierLimit `json:"short_term_order_equity_tiers"`
	StatefulOrderEquityTiers  []EquityTierLimit `json:"stateful_order_equity_tiers"`
}

func (m *EquityTierLimitConfiguration) Reset()         { *m = EquityTierLimitConfiguration{} }
func (m *EquityTierLimitConfiguration) String() string { return wire.JSON(m) }
func (*EquityTierLimitConfiguration) ProtoMessage()    {}
func (m *EquityTierLimitConfiguration) Size() int      { return wire.Size(m) }

func (m *EquityTierLimitConfiguration) Marshal() ([]byte, error) {
	var w wire.Buffer
	for i := range m.ShortTermOrderEquityTiers {
		if err := w.Message(1, &m.ShortTermOrderEquityTiers[i]); err != nil {
			return nil, err
		}
	}
	for i := range m.StatefulOrderEquityTiers {
		if err := w.Message(2, &m.StatefulOrderEquityTiers[i]); err != nil {
			return nil, err
		}
	}
	return w.Output(), nil
}

func (m *EquityTierLimitConfiguration) Unmarshal(dAtA []byte) error {
	return wire.Walk(dAtA, func(f wire.Field) error {
		switch f.Num {
		case 1:
			return wire.AppendValue(f, &m.ShortTermOrderEquityTiers)
		case 2:
			return wire.AppendValue(f, &m.StatefulOrderEquityTiers)
		}
		return nil
	})
}

// MaxPerNBlocksRateLimit allows at most Limit messages over NumBlocks blocks.
type MaxPerNBlocksRateLimit struct {
	NumBlocks uint32 `json:"num_blocks"`
	Limit     uint32 `json:"limit"`
}

func (m *MaxPerNBlocksRateLimit) Reset()         { *m = MaxPerNBlocksRateLimit{} }
func (m *MaxPerNBlocksRateLimit) String() string { return wire.JSON(m) }
func (*MaxPerNBlocksRateLimit) ProtoMessage()    {}
func (m *MaxPerNBlocksRateLimit) Size() int      { return wire.Size(m) }

func (m *MaxPerNBlocksRateLimit) Marshal() ([]byte, error) {
	var w wire.Buffer
	w.Uint32(1, m.NumBlocks)
	w.Uint32(2, m.Limit)
	return w.Output(), nil
}

func (m *MaxPerNBlocksRateLimit) Unmarshal(dAtA []byte) error {
	return wire.Walk(dAtA, func(f wire.Field) (err error) {
		switch f.Num {
		case 1:
			m.NumBlocks, err = f.AsUint32()
		case 2:
			m.Limit, err = f.AsUint32()
		}
		return err
	})
}

type BlockRateLimitConfiguration struct {
	MaxShortTermOrdersPerNBlocks             []MaxPerNBlocksRateLimit `json:"max_short_term_orders_per_n_blocks"`
	MaxStatefulOrdersPerNBlocks              []MaxPerNBlocksRateLimit `json:"max_stateful_orders_per_n_blocks"`
	MaxShortTermOrderCancellationsPerNBlocks []MaxPerNBlocksRateLimit `json:"max_short_term_order_cancellations_per_n_blocks"`
}

func (m *BlockRateLimitConfiguration) Reset()         { *m = BlockRateLimitConfiguration{} }
func (m *BlockRateLimitConfiguration) String() string { return wire.JSON(m) }
func (*BlockRateLimitConfiguration) ProtoMessage()    {}
func (m *BlockRateLimitConfiguration) Size() int      { return wire.Size(m) }

func (m *BlockRateLimitConfiguration) Marshal() ([]byte, error) {
	var w wire.Buffer
	lists := [][]MaxPerNBlocksRateLimit{
		m.MaxShortTermOrdersPerNBlocks,
		m.MaxStatefulOrdersPerNBlocks,
		m.MaxShortTermOrderCancellationsPerNBlocks,
	}
	for n, list := range lists {
		for i := range list {
			if err := w.Message(protowire.Number(n+1), &list[i]); err != nil {
				return nil, err
			}
		}
	}
	return w.Output(), nil
}

func (m *BlockRateLimitConfiguration) Unmarshal(dAtA []byte) error {
	return wire.Walk(dAtA, func(f wire.Field) error {
		switch f.Num {
		case 1:
			return wire.AppendValue(f, &m.MaxShortTermOrdersPerNBlocks)
		case 2:
			return wire.AppendValue(f, &m.MaxStatefulOrdersPerNBlocks)
		case 3:
			return wire.AppendValue(f, &m.MaxShortTermOrderCancellationsPerNBlocks)
		}
		return nil
	})
}
