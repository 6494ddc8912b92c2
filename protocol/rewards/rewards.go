// Package rewards holds the wire types of the dydxprotocol.rewards module.
package rewards

import (
	"github.com/xiaolou86/dydx-v4-clients/protocol/internal/wire"
)

// Params configures trading rewards paid from TreasuryAccount in Denom.
type Params struct {
	TreasuryAccount  string `json:"treasury_account"`
	Denom            string `json:"denom"`
	DenomExponent    int32  `json:"denom_exponent"`
	MarketId         uint32 `json:"market_id"`
	FeeMultiplierPpm uint32 `json:"fee_multiplier_ppm"`
}

func (m *Params) Reset()         { *m = Params{} }
func (m *Params) String() string { return wire.JSON(m) }
func (*Params) ProtoMessage()    {}
func (m *Params) Size() int      { return wire.Size(m) }

func (m *Params) Marshal() ([]byte, error) {
	var w wire.Buffer
	w.String(1, m.TreasuryAccount)
	w.String(2, m.Denom)
	w.Sint32(3, m.DenomExponent)
	w.Uint32(4, m.MarketId)
	w.Uint32(5, m.FeeMultiplierPpm)
	return w.Output(), nil
}

func (m *Params) Unmarshal(dAtA []byte) error {
	return wire.Walk(dAtA, func(f wire.Field) (err error) {
		switch f.Num {
		case 1:
			m.TreasuryAccount, err = f.AsString()
		case 2:
			m.Denom, err = f.AsString()
		case 3:
			m.DenomExponent, err = f.AsSint32()
		case 4:
			m.MarketId, err = f.AsUint32()
		case 5:
			m.FeeMultiplierPpm, err = f.AsUint32()
		}
		return err
	})
}

// QueryParamsRequest has no fields.
type QueryParamsRequest struct{}

func (m *QueryParamsRequest) Reset()                   { *m = QueryParamsRequest{} }
func (m *QueryParamsRequest) String() string           { return wire.JSON(m) }
func (*QueryParamsRequest) ProtoMessage()              {}
func (m *QueryParamsRequest) Size() int                { return 0 }
func (m *QueryParamsRequest) Marshal() ([]byte, error) { return []byte{}, nil }

func (m *QueryParamsRequest) Unmarshal(dAtA []byte) error {
	return wire.Walk(dAtA, func(wire.Field) error { return nil })
}

type QueryParamsResponse struct {
	Params Params `json:"params"`
}

func (m *QueryParamsResponse) Reset()         { *m = QueryParamsResponse{} }
func (m *QueryParamsResponse) String() string { return wire.JSON(m) }
func (*QueryParamsResponse) ProtoMessage()    {}
func (m *QueryParamsResponse) Size() int      { return wire.Size(m) }

func (m *QueryParamsResponse) Marshal() ([]byte, error) {
	var w wire.Buffer
	if err := w.Message(1, &m.Params); err != nil {
		return nil, err
	}
	return w.Output(), nil
}

func (m *QueryParamsResponse) Unmarshal(dAtA []byte) error {
	return wire.Walk(dAtA, func(f wire.Field) error {
		if f.Num == 1 {
			return f.AsMessage(&m.Params)
		}
		return nil
	})
}
