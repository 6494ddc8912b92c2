package clob

import (
	"github.com/cosmos/cosmos-sdk/types/query"

	"github.com/xiaolou86/dydx-v4-clients/protocol/internal/wire"
)

type QueryGetClobPairRequest struct {
	Id uint32 `json:"id"`
}

func (m *QueryGetClobPairRequest) Reset()         { *m = QueryGetClobPairRequest{} }
func (m *QueryGetClobPairRequest) String() string { return wire.JSON(m) }
func (*QueryGetClobPairRequest) ProtoMessage()    {}
func (m *QueryGetClobPairRequest) Size() int      { return wire.Size(m) }

func (m *QueryGetClobPairRequest) Marshal() ([]byte, error) {
	var w wire.Buffer
	w.Uint32(1, m.Id)
	return w.Output(), nil
}

func (m *QueryGetClobPairRequest) Unmarshal(dAtA []byte) error {
	return wire.Walk(dAtA, func(f wire.Field) (err error) {
		if f.Num == 1 {
			m.Id, err = f.AsUint32()
		}
		return err
	})
}

type QueryClobPairResponse struct {
	ClobPair ClobPair `json:"clob_pair"`
}

func (m *QueryClobPairResponse) Reset()         { *m = QueryClobPairResponse{} }
func (m *QueryClobPairResponse) String() string { return wire.JSON(m) }
func (*QueryClobPairResponse) ProtoMessage()    {}
func (m *QueryClobPairResponse) Size() int      { return wire.Size(m) }

func (m *QueryClobPairResponse) Marshal() ([]byte, error) {
	var w wire.Buffer
	if err := w.Message(1, &m.ClobPair); err != nil {
		return nil, err
	}
	return w.Output(), nil
}

func (m *QueryClobPairResponse) Unmarshal(dAtA []byte) error {
	return wire.Walk(dAtA, func(f wire.Field) error {
		if f.Num == 1 {
			return f.AsMessage(&m.ClobPair)
		}
		return nil
	})
}

type QueryAllClobPairRequest struct {
	Pagination *query.PageRequest `json:"pagination"`
}

func (m *QueryAllClobPairRequest) Reset()         { *m = QueryAllClobPairRequest{} }
func (m *QueryAllClobPairRequest) String() string { return wire.JSON(m) }
func (*QueryAllClobPairRequest) ProtoMessage()    {}
func (m *QueryAllClobPairRequest) Size() int      { return wire.Size(m) }

func (m *QueryAllClobPairRequest) Marshal() ([]byte, error) {
	var w wire.Buffer
	if m.Pagination != nil {
		if err := w.Message(1, m.Pagination); err != nil {
			return nil, err
		}
	}
	return w.Output(), nil
}

func (m *QueryAllClobPairRequest) Unmarshal(dAtA []byte) error {
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

type QueryClobPairAllResponse struct {
	ClobPair   []ClobPair           `json:"clob_pair"`
	Pagination *query.PageResponse `json:"pagination"`
}

func (m *QueryClobPairAllResponse) Reset()         { *m = QueryClobPairAllResponse{} }
func (m *QueryClobPairAllResponse) String() string { return wire.JSON(m) }
func (*QueryClobPairAllResponse) ProtoMessage()    {}
func (m *QueryClobPairAllResponse) Size() int      { return wire.Size(m) }

func (m *QueryClobPairAllResponse) Marshal() ([]byte, error) {
	var w wire.Buffer
	for i := range m.ClobPair {
		if err := w.Message(1, &m.ClobPair[i]); err != nil {
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

func (m *QueryClobPairAllResponse) Unmarshal(dAtA []byte) error {
	return wire.Walk(dAtA, func(f wire.Field) error {
		switch f.Num {
		case 1:
			return wire.AppendValue(f, &m.ClobPair)
		case 2:
			if m.Pagination == nil {
				m.Pagination = &query.PageResponse{}
			}
			return f.AsMessage(m.Pagination)
		}
		return nil
	})
}

// QueryEquityTierLimitConfigurationRequest has no fields.
type QueryEquityTierLimitConfigurationRequest struct{}

func (m *QueryEquityTierLimitConfigurationRequest) Reset() {
	*m = QueryEquityTierLimitConfigurationRequest{}
}
func (m *QueryEquityTierLimitConfigurationRequest) String() string { return wire.JSON(m) }
func (*QueryEquityTierLimitConfigurationRequest) ProtoMessage()    {}
func (m *QueryEquityTierLimitConfigurationRequest) Size() int      { return 0 }

func (m *QueryEquityTierLimitConfigurationRequest) Marshal() ([]byte, error) {
	return []byte{}, nil
}

func (m *QueryEquityTierLimitConfigurationRequest) Unmarshal(dAtA []byte) error {
	return wire.Walk(dAtA, func(wire.Field) error { return nil })
}

type QueryEquityTierLimitConfigurationResponse struct {
	EquityTierLimitConfig EquityTierLimitConfiguration `json:"equity_tier_limit_config"`
}

func (m *QueryEquityTierLimitConfigurationResponse) Reset() {
	*m = QueryEquityTierLimitConfigurationResponse{}
}
func (m *QueryEquityTierLimitConfigurationResponse) String() string { return wire.JSON(m) }
func (*QueryEquityTierLimitConfigurationResponse) ProtoMessage()    {}
func (m *QueryEquityTierLimitConfigurationResponse) Size() int      { return wire.Size(m) }

func (m *QueryEquityTierLimitConfigurationResponse) Marshal() ([]byte, error) {
	var w wire.Buffer
	if err := w.Message(1, &m.EquityTierLimitConfig); err != nil {
		return nil, err
	}
	return w.Output(), nil
}

func (m *QueryEquityTierLimitConfigurationResponse) Unmarshal(dAtA []byte) error {
	return wire.Walk(dAtA, func(f wire.Field) error {
		if f.Num == 1 {
			return f.AsMessage(&m.EquityTierLimitConfig)
		}
		return nil
	})
}

// QueryBlockRateLimitConfigurationRequest has no fields.
type QueryBlockRateLimitConfigurationRequest struct{}

func (m *QueryBlockRateLimitConfigurationRequest) Reset() {
	*m = QueryBlockRateLimitConfigurationRequest{}
}
func (m *QueryBlockRateLimitConfigurationRequest) String() string { return wire.JSON(m) }
func (*QueryBlockRateLimitConfigurationRequest) ProtoMessage()    {}
func (m *QueryBlockRateLimitConfigurationRequest) Size() int      { return 0 }

func (m *QueryBlockRateLimitConfigurationRequest) Marshal() ([]byte, error) {
	return []byte{}, nil
}

func (m *QueryBlockRateLimitConfigurationRequest) Unmarshal(dAtA []byte) error {
	return wire.Walk(dAtA, func(wire.Field) error { return nil })
}

type QueryBlockRateLimitConfigurationResponse struct {
	BlockRateLimitConfig BlockRateLimitConfiguration `json:"block_rate_limit_config"`
}

func (m *QueryBlockRateLimitConfigurationResponse) Reset() {
	*m = QueryBlockRateLimitConfigurationResponse{}
}
func (m *QueryBlockRateLimitConfigurationResponse) String() string { return wire.JSON(m) }
func (*QueryBlockRateLimitConfigurationResponse) ProtoMessage()    {}
func (m *QueryBlockRateLimitConfigurationResponse) Size() int      { return wire.Size(m) }

func (m *QueryBlockRateLimitConfigurationResponse) Marshal() ([]byte, error) {
	var w wire.Buffer
	if err := w.Message(1, &m.BlockRateLimitConfig); err != nil {
		return nil, err
	}
	return w.Output(), nil
}

func (m *QueryBlockRateLimitConfigurationResponse) Unmarshal(dAtA []byte) error {
	return wire.Walk(dAtA, func(f wire.Field) error {
		if f.Num == 1 {
			return f.AsMessage(&m.BlockRateLimitConfig)
		}
		return nil
	})
}
