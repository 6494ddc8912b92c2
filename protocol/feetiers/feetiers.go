// Package feetiers holds the wire types of the dydxprotocol.feetiers module.
package feetiers

import (
	"github.com/xiaolou86/dydx-v4-clients/protocol/internal/wire"
)

// PerpetualFeeTier holds the fees, in parts per million, charged to users
// meeting the tier's volume requirements.
type PerpetualFeeTier struct {
	Name                           string `json:"name"`
	AbsoluteVolumeRequirement      uint64 `json:"absolute_volume_requirement"`
	TotalVolumeShareRequirementPpm uint32 `json:"total_volume_share_requirement_ppm"`
	MakerVolumeShareRequirementPpm uint32 `json:"maker_volume_share_requirement_ppm"`
	MakerFeePpm                    int32  `json:"maker_fee_ppm"`
	TakerFeePpm                    int32  `json:"taker_fee_ppm"`
}

func (m *PerpetualFeeTier) Reset()         { *m = PerpetualFeeTier{} }
func (m *PerpetualFeeTier) String() string { return wire.JSON(m) }
func (*PerpetualFeeTier) ProtoMessage()    {}
func (m *PerpetualFeeTier) Size() int      { return wire.Size(m) }

func (m *PerpetualFeeTier) Marshal() ([]byte, error) {
	var w wire.Buffer
	w.String(1, m.Name)
	w.Uint64(2, m.AbsoluteVolumeRequirement)
	w.Uint32(3, m.TotalVolumeShareRequirementPpm)
	w.Uint32(4, m.MakerVolumeShareRequirementPpm)
	w.Sint32(5, m.MakerFeePpm)
	w.Sint32(6, m.TakerFeePpm)
	return w.Output(), nil
}

func (m *PerpetualFeeTier) Unmarshal(dAtA []byte) error {
	return wire.Walk(dAtA, func(f wire.Field) (err error) {
		switch f.Num {
		case 1:
			m.Name, err = f.AsString()
		case 2:
			m.AbsoluteVolumeRequirement, err = f.AsUint64()
		case 3:
			m.TotalVolumeShareRequirementPpm, err = f.AsUint32()
		case 4:
			m.MakerVolumeShareRequirementPpm, err = f.AsUint32()
		case 5:
			m.MakerFeePpm, err = f.AsSint32()
		case 6:
			m.TakerFeePpm, err = f.AsSint32()
		}
		return err
	})
}

type PerpetualFeeParams struct {
	Tiers []*PerpetualFeeTier `json:"tiers"`
}

func (m *PerpetualFeeParams) Reset()         { *m = PerpetualFeeParams{} }
func (m *PerpetualFeeParams) String() string { return wire.JSON(m) }
func (*PerpetualFeeParams) ProtoMessage()    {}
func (m *PerpetualFeeParams) Size() int      { return wire.Size(m) }

func (m *PerpetualFeeParams) Marshal() ([]byte, error) {
	var w wire.Buffer
	for _, tier := range m.Tiers {
		if err := w.Message(1, tier); err != nil {
			return nil, err
		}
	}
	return w.Output(), nil
}

func (m *PerpetualFeeParams) Unmarshal(dAtA []byte) error {
	return wire.Walk(dAtA, func(f wire.Field) error {
		if f.Num == 1 {
			return wire.AppendMessage(f, &m.Tiers)
		}
		return nil
	})
}

// QueryPerpetualFeeParamsRequest has no fields.
type QueryPerpetualFeeParamsRequest struct{}

func (m *QueryPerpetualFeeParamsRequest) Reset()                   { *m = QueryPerpetualFeeParamsRequest{} }
func (m *QueryPerpetualFeeParamsRequest) String() string           { return wire.JSON(m) }
func (*QueryPerpetualFeeParamsRequest) ProtoMessage()              {}
func (m *QueryPerpetualFeeParamsRequest) Size() int                { return 0 }
func (m *QueryPerpetualFeeParamsRequest) Marshal() ([]byte, error) { return []byte{}, nil }

func (m *QueryPerpetualFeeParamsRequest) Unmarshal(dAtA []byte) error {
	return wire.Walk(dAtA, func(wire.Field) error { return nil })
}

type QueryPerpetualFeeParamsResponse struct {
	Params PerpetualFeeParams `json:"params"`
}

func (m *QueryPerpetualFeeParamsResponse) Reset()         { *m = QueryPerpetualFeeParamsResponse{} }
func (m *QueryPerpetualFeeParamsResponse) String() string { return wire.JSON(m) }
func (*QueryPerpetualFeeParamsResponse) ProtoMessage()    {}
func (m *QueryPerpetualFeeParamsResponse) Size() int      { return wire.Size(m) }

func (m *QueryPerpetualFeeParamsResponse) Marshal() ([]byte, error) {
	var w wire.Buffer
	if err := w.Message(1, &m.Params); err != nil {
		return nil, err
	}
	return w.Output(), nil
}

func (m *QueryPerpetualFeeParamsResponse) Unmarshal(dAtA []byte) error {
	return wire.Walk(dAtA, func(f wire.Field) error {
		if f.Num == 1 {
			return f.AsMessage(&m.Params)
		}
		return nil
	})
}

type QueryUserFeeTierRequest struct {
	User string `json:"user"`
}

func (m *QueryUserFeeTierRequest) Reset()         { *m = QueryUserFeeTierRequest{} }
func (m *QueryUserFeeTierRequest) String() string { return wire.JSON(m) }
func (*QueryUserFeeTierRequest) ProtoMessage()    {}
func (m *QueryUserFeeTierRequest) Size() int      { return wire.Size(m) }

func (m *QueryUserFeeTierRequest) Marshal() ([]byte, error) {
	var w wire.Buffer
	w.String(1, m.User)
	return w.Output(), nil
}

func (m *QueryUserFeeTierRequest) Unmarshal(dAtA []byte) error {
	return wire.Walk(dAtA, func(f wire.Field) (err error) {
		if f.Num == 1 {
			m.User, err = f.AsString()
		}
		return err
	})
}

// QueryUserFeeTierResponse carries the tier and its index in
// PerpetualFeeParams.Tiers.
type QueryUserFeeTierResponse struct {
	Index uint32            `json:"index"`
	Tier  *PerpetualFeeTier `json:"tier"`
}

func (m *QueryUserFeeTierResponse) Reset()         { *m = QueryUserFeeTierResponse{} }
func (m *QueryUserFeeTierResponse) String() string { return wire.JSON(m) }
func (*QueryUserFeeTierResponse) ProtoMessage()    {}
func (m *QueryUserFeeTierResponse) Size() int      { return wire.Size(m) }

func (m *QueryUserFeeTierResponse) Marshal() ([]byte, error) {
	var w wire.Buffer
	w.Uint32(1, m.Index)
	if m.Tier != nil {
		if err := w.Message(2, m.Tier); err != nil {
			return nil, err
		}
	}
	return w.Output(), nil
}

func (m *QueryUserFeeTierResponse) Unmarshal(dAtA []byte) error {
	return wire.Walk(dAtA, func(f wire.Field) (err error) {
		switch f.Num {
		case 1:
			m.Index, err = f.AsUint32()
		case 2:
			if m.Tier == nil {
				m.Tier = &PerpetualFeeTier{}
			}
			err = f.AsMessage(m.Tier)
		}
		return err
	})
}
