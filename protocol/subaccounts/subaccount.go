// Package subaccounts holds the wire types of the dydxprotocol.subaccounts
// module.
package subaccounts

import (
	"github.com/xiaolou86/dydx-v4-clients/protocol/dtypes"
	"github.com/xiaolou86/dydx-v4-clients/protocol/internal/wire"
)

// SubaccountId identifies a subaccount by owner address and number.
type SubaccountId struct {
	Owner  string `json:"owner"`
	Number uint32 `json:"number"`
}

func (m *SubaccountId) Reset()         { *m = SubaccountId{} }
func (m *SubaccountId) String() string { return wire.JSON(m) }
func (*SubaccountId) ProtoMessage()    {}
func (m *SubaccountId) Size() int      { return wire.Size(m) }

func (m *SubaccountId) Marshal() ([]byte, error) {
	var w wire.Buffer
	w.String(1, m.Owner)
	w.Uint32(2, m.Number)
	return w.Output(), nil
}

func (m *SubaccountId) Unmarshal(dAtA []byte) error {
	return wire.Walk(dAtA, func(f wire.Field) (err error) {
		switch f.Num {
		case 1:
			m.Owner, err = f.AsString()
		case 2:
			m.Number, err = f.AsUint32()
		}
		return err
	})
}

// AssetPosition is a subaccount's signed balance of one asset.
type AssetPosition struct {
	AssetId  uint32                 `json:"asset_id"`
	Quantums dtypes.SerializableInt `json:"quantums"`
	Index    uint64                 `json:"index"`
}

func (m *AssetPosition) Reset()         { *m = AssetPosition{} }
func (m *AssetPosition) String() string { return wire.JSON(m) }
func (*AssetPosition) ProtoMessage()    {}
func (m *AssetPosition) Size() int      { return wire.Size(m) }

func (m *AssetPosition) Marshal() ([]byte, error) {
	var w wire.Buffer
	w.Uint32(1, m.AssetId)
	quantums, err := m.Quantums.Marshal()
	if err != nil {
		return nil, err
	}
	w.Bytes(2, quantums)
	w.Uint64(3, m.Index)
	return w.Output(), nil
}

func (m *AssetPosition) Unmarshal(dAtA []byte) error {
	return wire.Walk(dAtA, func(f wire.Field) (err error) {
		switch f.Num {
		case 1:
			m.AssetId, err = f.AsUint32()
		case 2:
			var bz []byte
			if bz, err = f.AsBytes(); err == nil {
				err = m.Quantums.Unmarshal(bz)
			}
		case 3:
			m.Index, err = f.AsUint64()
		}
		return err
	})
}

// PerpetualPosition is a subaccount's open position in one perpetual.
type PerpetualPosition struct {
	PerpetualId  uint32                 `json:"perpetual_id"`
	Quantums     dtypes.SerializableInt `json:"quantums"`
	FundingIndex dtypes.SerializableInt `json:"funding_index"`
}

func (m *PerpetualPosition) Reset()         { *m = PerpetualPosition{} }
func (m *PerpetualPosition) String() string { return wire.JSON(m) }
func (*PerpetualPosition) ProtoMessage()    {}
func (m *PerpetualPosition) Size() int      { return wire.Size(m) }

func (m *PerpetualPosition) Marshal() ([]byte, error) {
	var w wire.Buffer
	w.Uint32(1, m.PerpetualId)
	quantums, err := m.Quantums.Marshal()
	if err != nil {
		return nil, err
	}
	w.Bytes(2, quantums)
	fundingIndex, err := m.FundingIndex.Marshal()
	if err != nil {
		return nil, err
	}
	w.Bytes(3, fundingIndex)
	return w.Output(), nil
}

func (m *PerpetualPosition) Unmarshal(dAtA []byte) error {
	return wire.Walk(dAtA, func(f wire.Field) (err error) {
		var bz []byte
		switch f.Num {
		case 1:
			m.PerpetualId, err = f.AsUint32()
		case 2:
			if bz, err = f.AsBytes(); err == nil {
				err = m.Quantums.Unmarshal(bz)
			}
		case 3:
			if bz, err = f.AsBytes(); err == nil {
				err = m.FundingIndex.Unmarshal(bz)
			}
		}
		return err
	})
}

// Subaccount is the on-chain state of one subaccount. A subaccount that was
// never funded is returned by the node with only its Id set.
type Subaccount struct {
	Id                 *SubaccountId        `json:"id"`
	AssetPositions     []*AssetPosition     `json:"asset_positions"`
	PerpetualPositions []*PerpetualPosition `json:"perpetual_positions"`
	MarginEnabled      bool                 `json:"margin_enabled"`
}

func (m *Subaccount) Reset()         { *m = Subaccount{} }
func (m *Subaccount) String() string { return wire.JSON(m) }
func (*Subaccount) ProtoMessage()    {}
func (m *Subaccount) Size() int      { return wire.Size(m) }

func (m *Subaccount) Marshal() ([]byte, error) {
	var w wire.Buffer
	if m.Id != nil {
		if err := w.Message(1, m.Id); err != nil {
			return nil, err
		}
	}
	for _, p := range m.AssetPositions {
		if err := w.Message(2, p); err != nil {
			return nil, err
		}
	}
	for _, p := range m.PerpetualPositions {
		if err := w.Message(3, p); err != nil {
			return nil, err
		}
	}
	w.Bool(4, m.MarginEnabled)
	return w.Output(), nil
}

func (m *Subaccount) Unmarshal(dAtA []byte) error {
	return wire.Walk(dAtA, func(f wire.Field) (err error) {
		switch f.Num {
		case 1:
			if m.Id == nil {
				m.Id = &SubaccountId{}
			}
			err = f.AsMessage(m.Id)
		case 2:
			err = wire.AppendMessage(f, &m.AssetPositions)
		case 3:
			err = wire.AppendMessage(f, &m.PerpetualPositions)
		case 4:
			m.MarginEnabled, err = f.AsBool()
		}
		return err
	})
}

// GetUsdcPosition returns the quantums of the USDC asset position (asset 0),
// or zero when the subaccount holds none.
func (m *Subaccount) GetUsdcPosition() dtypes.SerializableInt {
	for _, p := range m.AssetPositions {
		if p.AssetId == UsdcAssetId {
			return p.Quantums
		}
	}
	return dtypes.NewInt(0)
}

// UsdcAssetId is the asset id of the quote asset.
const UsdcAssetId uint32 = 0
