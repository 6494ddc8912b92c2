package transport

import (
	"github.com/pkg/errors"
	"google.golang.org/grpc/encoding"
)

const codecName = "dydxquery"

// frame carries an already encoded message through gRPC unchanged.
type frame struct {
	bz []byte
}

type gogoMarshaler interface {
	Marshal() ([]byte, error)
}

type gogoUnmarshaler interface {
	Unmarshal(dAtA []byte) error
}

// Codec implements encoding.Codec for the gRPC transport. Frames pass
// through as is; any other value must encode itself, as gogoproto
// generated types do.
type Codec struct{}

var _ encoding.Codec = Codec{}

func (Codec) Marshal(v any) ([]byte, error) {
	switch m := v.(type) {
	case *frame:
		return m.bz, nil
	case gogoMarshaler:
		return m.Marshal()
	default:
		return nil, errors.Errorf("%s codec: cannot marshal %T", codecName, v)
	}
}

func (Codec) Unmarshal(data []byte, v any) error {
	switch m := v.(type) {
	case *frame:
		m.bz = append([]byte(nil), data...)
		return nil
	case gogoUnmarshaler:
		return m.Unmarshal(data)
	default:
		return errors.Errorf("%s codec: cannot unmarshal into %T", codecName, v)
	}
}

func (Codec) Name() string { return codecName }
