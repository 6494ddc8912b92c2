// Package clob holds the wire types of the dydxprotocol.clob module.
package clob

import (
	"github.com/xiaolou86/dydx-v4-clients/protocol/internal/wire"
)

// ClobPair_Status is the trading status of an order book.
type ClobPair_Status int32

const (
	ClobPair_STATUS_UNSPECIFIED      ClobPair_Status = 0
	ClobPair_STATUS_ACTIVE           ClobPair_Status = 1
	ClobPair_STATUS_PAUSED           ClobPair_Status = 2
	ClobPair_STATUS_CANCEL_ONLY      ClobPair_Status = 3
	ClobPair_STATUS_POST_ONLY        ClobPair_Status = 4
	ClobPair_STATUS_INITIALIZING     ClobPair_Status = 5
	ClobPair_STATUS_FINAL_SETTLEMENT ClobPair_Status = 6
)

var clobPairStatusName = map[ClobPair_Status]string{
	ClobPair_STATUS_UNSPECIFIED:      "STATUS_UNSPECIFIED",
	ClobPair_STATUS_ACTIVE:           "STATUS_ACTIVE",
	ClobPair_STATUS_PAUSED:           "STATUS_PAUSED",
	ClobPair_STATUS_CANCEL_ONLY:      "STATUS_CANCEL_ONLY",
	ClobPair_STATUS_POST_ONLY:        "STATUS_POST_ONLY",
	ClobPair_STATUS_INITIALIZING:     "STATUS_INITIALIZING",
	ClobPair_STATUS_FINAL_SETTLEMENT: "STATUS_FINAL_SETTLEMENT",
}

func (s ClobPair_Status) String() string {
	if name, ok := clobPairStatusName[s]; ok {
		return name
	}
	return "UNKNOWN"
}

// PerpetualClobMetadata links an order book to a perpetual.
type PerpetualClobMetadata struct {
	PerpetualId uint32 `json:"perpetual_id"`
}

func (m *PerpetualClobMetadata) Reset()         { *m = PerpetualClobMetadata{} }
func (m *PerpetualClobMetadata) String() string { return wire.JSON(m) }
func (*PerpetualClobMetadata) ProtoMessage()    {}
func (m *PerpetualClobMetadata) Size() int      { return wire.Size(m) }

func (m *PerpetualClobMetadata) Marshal() ([]byte, error) {
	var w wire.Buffer
	w.Uint32(1, m.PerpetualId)
	return w.Output(), nil
}

func (m *PerpetualClobMetadata) Unmarshal(dAtA []byte) error {
	return wire.Walk(dAtA, func(f wire.Field) (err error) {
		if f.Num == 1 {
			m.PerpetualId, err = f.AsUint32()
		}
		return err
	})
}

// SpotClobMetadata links an order book to a base/quote asset pair.
type SpotClobMetadata struct {
	BaseAssetId  uint32 `json:"base_asset_id"`
	QuoteAssetId uint32 `json:"quote_asset_id"`
}

func (m *SpotClobMetadata) Reset()         { *m = SpotClobMetadata{} }
func (m *SpotClobMetadata) String() string { return wire.JSON(m) }
func (*SpotClobMetadata) ProtoMessage()    {}
func (m *SpotClobMetadata) Size() int      { return wire.Size(m) }

func (m *SpotClobMetadata) Marshal() ([]byte, error) {
	var w wire.Buffer
	w.Uint32(1, m.BaseAssetId)
	w.Uint32(2, m.QuoteAssetId)
	return w.Output(), nil
}

func (m *SpotClobMetadata) Unmarshal(dAtA []byte) error {
	return wire.Walk(dAtA, func(f wire.Field) (err error) {
		switch f.Num {
		case 1:
			m.BaseAssetId, err = f.AsUint32()
		case 2:
			m.QuoteAssetId, err = f.AsUint32()
		}
		return err
	})
}

// ClobPair is a single order book. PerpetualClobMetadata and
// SpotClobMetadata form a oneof: at most one is set.
type ClobPair struct {
	Id                        uint32                 `json:"id"`
	PerpetualClobMetadata     *PerpetualClobMetadata `json:"perpetual_clob_metadata,omitempty"`
	SpotClobMetadata          *SpotClobMetadata      `json:"spot_clob_metadata,omitempty"`
	StepBaseQuantums          uint64                 `json:"step_base_quantums"`
	SubticksPerTick           uint32                 `json:"subticks_per_tick"`
	QuantumConversionExponent int32                  `json:"quantum_conversion_exponent"`
	Status                    ClobPair_Status        `json:"status"`
}

func (m *ClobPair) Reset()         { *m = ClobPair{} }
func (m *ClobPair) String() string { return wire.JSON(m) }
func (*ClobPair) ProtoMessage()    {}
func (m *ClobPair) Size() int      { return wire.Size(m) }

func (m *ClobPair) Marshal() ([]byte, error) {
	var w wire.Buffer
	w.Uint32(1, m.Id)
	if m.PerpetualClobMetadata != nil {
		if err := w.Message(2, m.PerpetualClobMetadata); err != nil {
			return nil, err
		}
	}
	if m.SpotClobMetadata != nil {
		if err := w.Message(3, m.SpotClobMetadata); err != nil {
			return nil, err
		}
	}
	w.Uint64(4, m.StepBaseQuantums)
	w.Uint32(5, m.SubticksPerTick)
	w.Sint32(6, m.QuantumConversionExponent)
	w.Int32(7, int32(m.Status))
	return w.Output(), nil
}

func (m *ClobPair) Unmarshal(dAtA []byte) error {
	return wire.Walk(dAtA, func(f wire.Field) (err error) {
		switch f.Num {
		case 1:
			m.Id, err = f.AsUint32()
		case 2:
			m.SpotClobMetadata = nil
			if m.PerpetualClobMetadata == nil {
				m.PerpetualClobMetadata = &PerpetualClobMetadata{}
			}
			err = f.AsMessage(m.PerpetualClobMetadata)
		case 3:
			m.PerpetualClobMetadata = nil
			if m.SpotClobMetadata == nil {
				m.SpotClobMetadata = &SpotClobMetadata{}
			}
			err = f.AsMessage(m.SpotClobMetadata)
		case 4:
			m.StepBaseQuantums, err = f.AsUint64()
		case 5:
			m.SubticksPerTick, err = f.AsUint32()
		case 6:
			m.QuantumConversionExponent, err = f.AsSint32()
		case 7:
			var status int32
			status, err = f.AsInt32()
			m.Status = ClobPair_Status(status)
		}
		return err
	})
}

// GetPerpetualId returns the perpetual backing the order book, if any.
func (m *ClobPair) GetPerpetualId() (uint32, bool) {
	if m.PerpetualClobMetadata == nil {
		return 0, false
	}
	return m.PerpetualClobMetadata.PerpetualId, true
}
