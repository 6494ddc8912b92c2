// Package perpetuals holds the wire types of the dydxprotocol.perpetuals
// module.
package perpetuals

import (
	"github.com/cosmos/cosmos-sdk/types/query"

	"github.com/xiaolou86/dydx-v4-clients/protocol/dtypes"
	"github.com/xiaolou86/dydx-v4-clients/protocol/internal/wire"
)

type PerpetualParams struct {
	Id                uint32 `json:"id"`
	Ticker            string `json:"ticker"`
	MarketId          uint32 `json:"market_id"`
	AtomicResolution  int32  `json:"atomic_resolution"`
	DefaultFundingPpm int32  `json:"default_funding_ppm"`
	LiquidityTier     uint32 `json:"liquidity_tier"`
}

func (m *PerpetualParams) Reset()         { *m = PerpetualParams{} }
func (m *PerpetualParams) String() string { return wire.JSON(m) }
func (*PerpetualParams) ProtoMessage()    {}
func (m *PerpetualParams) Size() int      { return wire.Size(m) }

func (m *PerpetualParams) Marshal() ([]byte, error) {
	var w wire.Buffer
	w.Uint32(1, m.Id)
	w.String(2, m.Ticker)
	w.Uint32(3, m.MarketId)
	w.Sint32(4, m.AtomicResolution)
	w.Sint32(5, m.DefaultFundingPpm)
	w.Uint32(6, m.LiquidityTier)
	return w.Output(), nil
}

func (m *PerpetualParams) Unmarshal(dAtA []byte) error {
	return wire.Walk(dAtA, func(f wire.Field) (err error) {
		switch f.Num {
		case 1:
			m.Id, err = f.AsUint32()
		case 2:
			m.Ticker, err = f.AsString()
		case 3:
			m.MarketId, err = f.AsUint32()
		case 4:
			m.AtomicResolution, err = f.AsSint32()
		case 5:
			m.DefaultFundingPpm, err = f.AsSint32()
		case 6:
			m.LiquidityTier, err = f.AsUint32()
		}
		return err
	})
}

type Perpetual struct {
	Params       PerpetualParams        `json:"params"`
	FundingIndex dtypes.SerializableInt `json:"funding_index"`
	OpenInterest dtypes.SerializableInt `json:"open_interest"`
}

func (m *Perpetual) Reset()         { *m = Perpetual{} }
func (m *Perpetual) String() string { return wire.JSON(m) }
func (*Perpetual) ProtoMessage()    {}
func (m *Perpetual) Size() int      { return wire.Size(m) }

func (m *Perpetual) Marshal() ([]byte, error) {
	var w wire.Buffer
	if err := w.Message(1, &m.Params); err != nil {
		return nil, err
	}
	fundingIndex, err := m.FundingIndex.Marshal()
	if err != nil {
		return nil, err
	}
	w.Bytes(2, fundingIndex)
	openInterest, err := m.OpenInterest.Marshal()
	if err != nil {
		return nil, err
	}
	w.Bytes(3, openInterest)
	return w.Output(), nil
}

func (m *Perpetual) Unmarshal(dAtA []byte) error {
	return wire.Walk(dAtA, func(f wire.Field) (err error) {
		var bz []byte
		switch f.Num {
		case 1:
			err = f.AsMessage(&m.Params)
		case 2:
			if bz, err = f.AsBytes(); err == nil {
				err = m.FundingIndex.Unmarshal(bz)
			}
		case 3:
			if bz, err = f.AsBytes(); err == nil {
				err = m.OpenInterest.Unmarshal(bz)
			}
		}
		return err
	})
}

type QueryPerpetualRequest struct {
	Id uint32 `json:"id"`
}

func (m *QueryPerpetualRequest) Reset()         { *m = QueryPerpetualRequest{} }
func (m *QueryPerpetualRequest) String() string { return wire.JSON(m) }
func (*QueryPerpetualRequest) ProtoMessage()    {}
func (m *QueryPerpetualRequest) Size() int      { return wire.Size(m) }

func (m *QueryPerpetualRequest) Marshal() ([]byte, error) {
	var w wire.Buffer
	w.Uint32(1, m.Id)
	return w.Output(), nil
}

func (m *QueryPerpetualRequest) Unmarshal(dAtA []byte) error {
	return wire.Walk(dAtA, func(f wire.Field) (err error) {
		if f.Num == 1 {
			m.Id, err = f.AsUint32()
		}
		return err
	})
}

type QueryPerpetualResponse struct {
	Perpetual Perpetual `json:"perpetual"`
}

func (m *QueryPerpetualResponse) Reset()         { *m = QueryPerpetualResponse{} }
func (m *QueryPerpetualResponse) String() string { return wire.JSON(m) }
func (*QueryPerpetualResponse) ProtoMessage()    {}
func (m *QueryPerpetualResponse) Size() int      { return wire.Size(m) }

func (m *QueryPerpetualResponse) Marshal() ([]byte, error) {
	var w wire.Buffer
	if err := w.Message(1, &m.Perpetual); err != nil {
		return nil, err
	}
	return w.Output(), nil
}

func (m *QueryPerpetualResponse) Unmarshal(dAtA []byte) error {
	return wire.Walk(dAtA, func(f wire.Field) error {
		if f.Num == 1 {
			return f.AsMessage(&m.Perpetual)
		}
		return nil
	})
}

type QueryAllPerpetualsRequest struct {
	Pagination *query.PageRequest `json:"pagination"`
}

func (m *QueryAllPerpetualsRequest) Reset()         { *m = QueryAllPerpetualsRequest{} }
func (m *QueryAllPerpetualsRequest) String() string { return wire.JSON(m) }
func (*QueryAllPerpetualsRequest) ProtoMessage()    {}
func (m *QueryAllPerpetualsRequest) Size() int      { return wire.Size(m) }

func (m *QueryAllPerpetualsRequest) Marshal() ([]byte, error) {
	var w wire.Buffer
	if m.Pagination != nil {
		if err := w.Message(1, m.Pagination); err != nil {
			return nil, err
		}
	}
	return w.Output(), nil
}

func (m *QueryAllPerpetualsRequest) Unmarshal(dAtA []byte) error {
	return wire.Walk(dAtA, func(f wire.Field) error {
		if f.Num == 1 {
			if m.Pagination == nil {
				m.Pagination = &query.PageRequest{}
			}
			return f.AsMessage(m.Pagination)
		}
		return nil
	})
}

type QueryAllPerpetualsResponse struct {
	Perpetual  []Perpetual          `json:"perpetual"`
	Pagination *query.PageResponse `json:"pagination"`
}

func (m *QueryAllPerpetualsResponse) Reset()         { *m = QueryAllPerpetualsResponse{} }
func (m *QueryAllPerpetualsResponse) String() string { return wire.JSON(m) }
func (*QueryAllPerpetualsResponse) ProtoMessage()    {}
func (m *QueryAllPerpetualsResponse) Size() int      { return wire.Size(m) }

func (m *QueryAllPerpetualsResponse) Marshal() ([]byte, error) {
	var w wire.Buffer
	for i := range m.Perpetual {
		if err := w.Message(1, &m.Perpetual[i]); err != nil {
			return nil, err
		}
	}
	if m.Pagination != nil {
		if err := w.Message(2, m.Pagination); err != nil {
			return nil, err
		}
	}
	return w.Output(), nil
}

func (m *QueryAllPerpetualsResponse) Unmarshal(dAtA []byte) error {
	return wire.Walk(dAtA, func(f wire.Field) error {
		switch f.Num {
		case 1:
			return wire.AppendValue(f, &m.Perpetual)
		case 2:
			if m.Pagination == nil {
				m.Pagination = &query.PageResponse{}
			}
			return f.AsMessage(m.Pagination)
		}
		return nil
	})
}
