// Package stats holds the wire types of the dydxprotocol.stats module.
package stats

import (
	"github.com/xiaolou86/dydx-v4-clients/protocol/internal/wire"
)

// UserStats is a user's trailing taker and maker notional volume, in quote
// quantums.
type UserStats struct {
	TakerNotional uint64 `json:"taker_notional"`
	MakerNotional uint64 `json:"maker_notional"`
}

func (m *UserStats) Reset()         { *m = UserStats{} }
func (m *UserStats) String() string { return wire.JSON(m) }
func (*UserStats) ProtoMessage()    {}
func (m *UserStats) Size() int      { return wire.Size(m) }

func (m *UserStats) Marshal() ([]byte, error) {
	var w wire.Buffer
	w.Uint64(1, m.TakerNotional)
	w.Uint64(2, m.MakerNotional)
	return w.Output(), nil
}

func (m *UserStats) Unmarshal(dAtA []byte) error {
	return wire.Walk(dAtA, func(f wire.Field) (err error) {
		switch f.Num {
		case 1:
			m.TakerNotional, err = f.AsUint64()
		case 2:
			m.MakerNotional, err = f.AsUint64()
		}
		return err
	})
}

type QueryUserStatsRequest struct {
	User string `json:"user"`
}

func (m *QueryUserStatsRequest) Reset()         { *m = QueryUserStatsRequest{} }
func (m *QueryUserStatsRequest) String() string { return wire.JSON(m) }
func (*QueryUserStatsRequest) ProtoMessage()    {}
func (m *QueryUserStatsRequest) Size() int      { return wire.Size(m) }

func (m *QueryUserStatsRequest) Marshal() ([]byte, error) {
	var w wire.Buffer
	w.String(1, m.User)
	return w.Output(), nil
}

func (m *QueryUserStatsRequest) Unmarshal(dAtA []byte) error {
	return wire.Walk(dAtA, func(f wire.Field) (err error) {
		if f.Num == 1 {
			m.User, err = f.AsString()
		}
		return err
	})
}

type QueryUserStatsResponse struct {
	Stats *UserStats `json:"stats"`
}

func (m *QueryUserStatsResponse) Reset()         { *m = QueryUserStatsResponse{} }
func (m *QueryUserStatsResponse) String() string { return wire.JSON(m) }
func (*QueryUserStatsResponse) ProtoMessage()    {}
func (m *QueryUserStatsResponse) Size() int      { return wire.Size(m) }

func (m *QueryUserStatsResponse) Marshal() ([]byte, error) {
	var w wire.Buffer
	if m.Stats != nil {
		if err := w.Message(1, m.Stats); err != nil {
			return nil, err
		}
	}
	return w.Output(), nil
}

func (m *QueryUserStatsResponse) Unmarshal(dAtA []byte) error {
	return wire.Walk(dAtA, func(f wire.Field) error {
		if f.Num == 1 {
			if m.Stats == nil {
				m.Stats = &UserStats{}
			}
			return f.AsMessage(m.Stats)
		}
		return nil
	})
}
