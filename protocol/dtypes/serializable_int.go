// Package dtypes holds scalar types shared by the dYdX protocol messages.
package dtypes

import (
	"encoding/json"
	"math/big"

	sdkmath "cosmossdk.io/math"
	"github.com/pkg/errors"
)

// SerializableInt is an arbitrary-precision integer carried in a protobuf
// bytes field. The wire form is big.Int's gob encoding; nil encodes to no bytes.
type SerializableInt struct {
	i *big.Int
}

func NewInt(i int64) SerializableInt {
	return SerializableInt{i: big.NewInt(i)}
}

func NewIntFromBigInt(i *big.Int) SerializableInt {
	if i == nil {
		return SerializableInt{}
	}
	return SerializableInt{i: new(big.Int).Set(i)}
}

// BigInt returns a copy of the value, or nil if unset.
func (i SerializableInt) BigInt() *big.Int {
	if i.i == nil {
		return nil
	}
	return new(big.Int).Set(i.i)
}

// MathInt converts the value to an sdkmath.Int, treating nil as zero.
func (i SerializableInt) MathInt() sdkmath.Int {
	if i.i == nil {
		return sdkmath.ZeroInt()
	}
	return sdkmath.NewIntFromBigInt(i.i)
}

func (i SerializableInt) IsNil() bool {
	return i.i == nil
}

// Cmp compares two values, treating nil as zero.
func (i SerializableInt) Cmp(o SerializableInt) int {
	return i.orZero().Cmp(o.orZero())
}

func (i SerializableInt) orZero() *big.Int {
	if i.i == nil {
		return new(big.Int)
	}
	return i.i
}

func (i SerializableInt) String() string {
	if i.i == nil {
		return "nil"
	}
	return i.i.String()
}

func (i SerializableInt) Marshal() ([]byte, error) {
	if i.i == nil {
		return nil, nil
	}
	return i.i.GobEncode()
}

func (i *SerializableInt) Unmarshal(data []byte) error {
	if len(data) == 0 {
		i.i = nil
		return nil
	}
	v := new(big.Int)
	if err := v.GobDecode(data); err != nil {
		return errors.Wrap(err, "decode serializable int")
	}
	i.i = v
	return nil
}

func (i SerializableInt) MarshalJSON() ([]byte, error) {
	if i.i == nil {
		return []byte("null"), nil
	}
	return json.Marshal(i.i.String())
}

func (i *SerializableInt) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		i.i = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return errors.Errorf("invalid integer %q", s)
	}
	i.i = v
	return nil
}
