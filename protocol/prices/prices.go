// Package prices holds the wire types of the dydxprotocol.prices module.
package prices

import (
	"github.com/cosmos/cosmos-sdk/types/query"

	"github.com/xiaolou86/dydx-v4-clients/protocol/internal/wire"
)

// MarketPrice is the oracle price of a market, Price * 10^Exponent.
type MarketPrice struct {
	Id       uint32 `json:"id"`
	Exponent int32  `json:"exponent"`
	Price    uint64 `json:"price"`
}

func (m *MarketPrice) Reset()         { *m = MarketPrice{} }
func (m *MarketPrice) String() string { return wire.JSON(m) }
func (*MarketPrice) ProtoMessage()    {}
func (m *MarketPrice) Size() int      { return wire.Size(m) }

func (m *MarketPrice) Marshal() ([]byte, error) {
	var w wire.Buffer
	w.Uint32(1, m.Id)
	w.Sint32(2, m.Exponent)
	w.Uint64(3, m.Price)
	return w.Output(), nil
}

func (m *MarketPrice) Unmarshal(dAtA []byte) error {
	return wire.Walk(dAtA, func(f wire.Field) (err error) {
		switch f.Num {
		case 1:
			m.Id, err = f.AsUint32()
		case 2:
			m.Exponent, err = f.AsSint32()
		case 3:
			m.Price, err = f.AsUint64()
		}
		return err
	})
}

type QueryMarketPriceRequest struct {
	Id uint32 `json:"id"`
}

func (m *QueryMarketPriceRequest) Reset()         { *m = QueryMarketPriceRequest{} }
func (m *QueryMarketPriceRequest) String() string { return wire.JSON(m) }
func (*QueryMarketPriceRequest) ProtoMessage()    {}
func (m *QueryMarketPriceRequest) Size() int      { return wire.Size(m) }

func (m *QueryMarketPriceRequest) Marshal() ([]byte, error) {
	var w wire.Buffer
	w.Uint32(1, m.Id)
	return w.Output(), nil
}

func (m *QueryMarketPriceRequest) Unmarshal(dAtA []byte) error {
	return wire.Walk(dAtA, func(f wire.Field) (err error) {
		if f.Num == 1 {
			m.Id, err = f.AsUint32()
		}
		return err
	})
}

type QueryMarketPriceResponse struct {
	MarketPrice MarketPrice `json:"market_price"`
}

func (m *QueryMarketPriceResponse) Reset()         { *m = QueryMarketPriceResponse{} }
func (m *QueryMarketPriceResponse) String() string { return wire.JSON(m) }
func (*QueryMarketPriceResponse) ProtoMessage()    {}
func (m *QueryMarketPriceResponse) Size() int      { return wire.Size(m) }

func (m *QueryMarketPriceResponse) Marshal() ([]byte, error) {
	var w wire.Buffer
	if err := w.Message(1, &m.MarketPrice); err != nil {
		return nil, err
	}
	return w.Output(), nil
}

func (m *QueryMarketPriceResponse) Unmarshal(dAtA []byte) error {
	return wire.Walk(dAtA, func(f wire.Field) error {
		if f.Num == 1 {
			return f.AsMessage(&m.MarketPrice)
		}
		return nil
	})
}

type QueryAllMarketPricesRequest struct {
	Pagination *query.PageRequest `json:"pagination"`
}

func (m *QueryAllMarketPricesRequest) Reset()         { *m = QueryAllMarketPricesRequest{} }
func (m *QueryAllMarketPricesRequest) String() string { return wire.JSON(m) }
func (*QueryAllMarketPricesRequest) ProtoMessage()    {}
func (m *QueryAllMarketPricesRequest) Size() int      { return wire.Size(m) }

func (m *QueryAllMarketPricesRequest) Marshal() ([]byte, error) {
	var w wire.Buffer
	if m.Pagination != nil {
		if err := w.Message(1, m.Pagination); err != nil {
			return nil, err
		}
	}
	return w.Output(), nil
}

func (m *QueryAllMarketPricesRequest) Unmarshal(dAtA []byte) error {
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

type QueryAllMarketPricesResponse struct {
	MarketPrices []MarketPrice       `json:"market_prices"`
	Pagination   *query.PageResponse `json:"pagination"`
}

func (m *QueryAllMarketPricesResponse) Reset()         { *m = QueryAllMarketPricesResponse{} }
func (m *QueryAllMarketPricesResponse) String() string { return wire.JSON(m) }
func (*QueryAllMarketPricesResponse) ProtoMessage()    {}
func (m *QueryAllMarketPricesResponse) Size() int      { return wire.Size(m) }

func (m *QueryAllMarketPricesResponse) Marshal() ([]byte, error) {
	var w wire.Buffer
	for i := range m.MarketPrices {
		if err := w.Message(1, &m.MarketPrices[i]); err != nil {
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

func (m *QueryAllMarketPricesResponse) Unmarshal(dAtA []byte) error {
	return wire.Walk(dAtA, func(f wire.Field) error {
		switch f.Num {
		case 1:
			return wire.AppendValue(f, &m.MarketPrices)
		case 2:
			if m.Pagination == nil {
				m.Pagination = &query.PageResponse{}
			}
			return f.AsMessage(m.Pagination)
		}
		return nil
	})
}
