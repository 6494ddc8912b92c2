package subaccounts

import (
	"github.com/cosmos/cosmos-sdk/types/query"

	"github.com/xiaolou86/dydx-v4-clients/protocol/internal/wire"
)

type QueryGetSubaccountRequest struct {
	Owner  string `json:"owner"`
	Number uint32 `json:"number"`
}

func (m *QueryGetSubaccountRequest) Reset()         { *m = QueryGetSubaccountRequest{} }
func (m *QueryGetSubaccountRequest) String() string { return wire.JSON(m) }
func (*QueryGetSubaccountRequest) ProtoMessage()    {}
func (m *QueryGetSubaccountRequest) Size() int      { return wire.Size(m) }

func (m *QueryGetSubaccountRequest) Marshal() ([]byte, error) {
	var w wire.Buffer
	w.String(1, m.Owner)
	w.Uint32(2, m.Number)
	return w.Output(), nil
}

func (m *QueryGetSubaccountRequest) Unmarshal(dAtA []byte) error {
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

type QuerySubaccountResponse struct {
	Subaccount Subaccount `json:"subaccount"`
}

func (m *QuerySubaccountResponse) Reset()         { *m = QuerySubaccountResponse{} }
func (m *QuerySubaccountResponse) String() string { return wire.JSON(m) }
func (*QuerySubaccountResponse) ProtoMessage()    {}
func (m *QuerySubaccountResponse) Size() int      { return wire.Size(m) }

func (m *QuerySubaccountResponse) Marshal() ([]byte, error) {
	var w wire.Buffer
	if err := w.Message(1, &m.Subaccount); err != nil {
		return nil, err
	}
	return w.Output(), nil
}

func (m *QuerySubaccountResponse) Unmarshal(dAtA []byte) error {
	return wire.Walk(dAtA, func(f wire.Field) error {
		if f.Num == 1 {
			return f.AsMessage(&m.Subaccount)
		}
		return nil
	})
}

type QueryAllSubaccountRequest struct {
	Pagination *query.PageRequest `json:"pagination"`
}

func (m *QueryAllSubaccountRequest) Reset()         { *m = QueryAllSubaccountRequest{} }
func (m *QueryAllSubaccountRequest) String() string { return wire.JSON(m) }
func (*QueryAllSubaccountRequest) ProtoMessage()    {}
func (m *QueryAllSubaccountRequest) Size() int      { return wire.Size(m) }

func (m *QueryAllSubaccountRequest) Marshal() ([]byte, error) {
	var w wire.Buffer
	if m.Pagination != nil {
		if err := w.Message(1, m.Pagination); err != nil {
			return nil, err
		}
	}
	return w.Output(), nil
}

func (m *QueryAllSubaccountRequest) Unmarshal(dAtA []byte) error {
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

type QuerySubaccountAllResponse struct {
	Subaccount []Subaccount         `json:"subaccount"`
	Pagination *query.PageResponse `json:"pagination"`
}

func (m *QuerySubaccountAllResponse) Reset()         { *m = QuerySubaccountAllResponse{} }
func (m *QuerySubaccountAllResponse) String() string { return wire.JSON(m) }
func (*QuerySubaccountAllResponse) ProtoMessage()    {}
func (m *QuerySubaccountAllResponse) Size() int      { return wire.Size(m) }

func (m *QuerySubaccountAllResponse) Marshal() ([]byte, error) {
	var w wire.Buffer
	for i := range m.Subaccount {
		if err := w.Message(1, &m.Subaccount[i]); err != nil {
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

func (m *QuerySubaccountAllResponse) Unmarshal(dAtA []byte) error {
	return wire.Walk(dAtA, func(f wire.Field) error {
		switch f.Num {
		case 1:
			return wire.AppendValue(f, &m.Subaccount)
		case 2:
			if m.Pagination == nil {
				m.Pagination = &query.PageResponse{}
			}
			return f.AsMessage(m.Pagination)
		}
		return nil
	})
}
