// Package wire holds the protobuf encoding helpers shared by the dYdX message
// types. Encoding follows proto3: scalar fields equal to their zero value are
// omitted, unknown fields are skipped on decode.
package wire

import (
	"encoding/json"
	"math"

	"github.com/pkg/errors"
	"google.golang.org/protobuf/encoding/protowire"
)

type Marshaler interface {
	Marshal() ([]byte, error)
}

type Unmarshaler interface {
	Unmarshal(dAtA []byte) error
}

// Buffer accumulates the encoding of a single message.
type Buffer struct {
	b []byte
}

func (w *Buffer) Uint64(num protowire.Number, v uint64) {
	if v == 0 {
		return
	}
	w.b = protowire.AppendTag(w.b, num, protowire.VarintType)
	w.b = protowire.AppendVarint(w.b, v)
}

func (w *Buffer) Uint32(num protowire.Number, v uint32) {
	w.Uint64(num, uint64(v))
}

// Int32 encodes an int32 or enum field. Negative values are sign extended to
// ten bytes as protobuf requires.
func (w *Buffer) Int32(num protowire.Number, v int32) {
	w.Uint64(num, uint64(int64(v)))
}

func (w *Buffer) Sint32(num protowire.Number, v int32) {
	w.Uint64(num, protowire.EncodeZigZag(int64(v)))
}

func (w *Buffer) Bool(num protowire.Number, v bool) {
	if !v {
		return
	}
	w.Uint64(num, 1)
}

func (w *Buffer) String(num protowire.Number, v string) {
	if v == "" {
		return
	}
	w.b = protowire.AppendTag(w.b, num, protowire.BytesType)
	w.b = protowire.AppendString(w.b, v)
}

func (w *Buffer) Bytes(num protowire.Number, v []byte) {
	if len(v) == 0 {
		return
	}
	w.b = protowire.AppendTag(w.b, num, protowire.BytesType)
	w.b = protowire.AppendBytes(w.b, v)
}

// Message encodes an embedded message. Callers skip nil pointers themselves;
// a present but empty message is still written.
func (w *Buffer) Message(num protowire.Number, m Marshaler) error {
	bz, err := m.Marshal()
	if err != nil {
		return errors.Wrapf(err, "marshal field %d", num)
	}
	w.b = protowire.AppendTag(w.b, num, protowire.BytesType)
	w.b = protowire.AppendBytes(w.b, bz)
	return nil
}

// Output returns the encoded message. It is never nil.
func (w *Buffer) Output() []byte {
	if w.b == nil {
		return []byte{}
	}
	return w.b
}

// Field is one decoded key/value pair of a message.
type Field struct {
	Num  protowire.Number
	Type protowire.Type

	varint uint64
	bytes  []byte
}

func (f Field) wantType(t protowire.Type) error {
	if f.Type != t {
		return errors.Errorf("field %d: unexpected wire type %d, want %d", f.Num, f.Type, t)
	}
	return nil
}

func (f Field) AsUint64() (uint64, error) {
	if err := f.wantType(protowire.VarintType); err != nil {
		return 0, err
	}
	return f.varint, nil
}

func (f Field) AsUint32() (uint32, error) {
	v, err := f.AsUint64()
	return uint32(v), err
}

func (f Field) AsInt32() (int32, error) {
	v, err := f.AsUint64()
	return int32(int64(v)), err
}

func (f Field) AsSint32() (int32, error) {
	v, err := f.AsUint64()
	return int32(protowire.DecodeZigZag(v & math.MaxUint32)), err
}

func (f Field) AsBool() (bool, error) {
	v, err := f.AsUint64()
	return v != 0, err
}

func (f Field) AsString() (string, error) {
	if err := f.wantType(protowire.BytesType); err != nil {
		return "", err
	}
	return string(f.bytes), nil
}

// AsBytes returns a copy of a length-delimited field.
func (f Field) AsBytes() ([]byte, error) {
	if err := f.wantType(protowire.BytesType); err != nil {
		return nil, err
	}
	return append([]byte(nil), f.bytes...), nil
}

func (f Field) AsMessage(m Unmarshaler) error {
	if err := f.wantType(protowire.BytesType); err != nil {
		return err
	}
	if err := m.Unmarshal(f.bytes); err != nil {
		return errors.Wrapf(err, "unmarshal field %d", f.Num)
	}
	return nil
}

// Walk calls fn for every varint and length-delimited field of b in wire
// order. Fixed-width and group fields are skipped.
func Walk(b []byte, fn func(Field) error) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return errors.Wrap(protowire.ParseError(n), "consume tag")
		}
		b = b[n:]

		f := Field{Num: num, Type: typ}
		switch typ {
		case protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return errors.Wrapf(protowire.ParseError(n), "field %d", num)
			}
			f.varint = v
			b = b[n:]
		case protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return errors.Wrapf(protowire.ParseError(n), "field %d", num)
			}
			f.bytes = v
			b = b[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return errors.Wrapf(protowire.ParseError(n), "field %d", num)
			}
			b = b[n:]
			continue
		}

		if err := fn(f); err != nil {
			return err
		}
	}
	return nil
}

// Size returns the encoded length of m, or 0 if it cannot be encoded.
func Size(m Marshaler) int {
	bz, err := m.Marshal()
	if err != nil {
		return 0
	}
	return len(bz)
}

// JSON renders v for String methods.
func JSON(v any) string {
	bz, err := json.Marshal(v)
	if err != nil {
		return err.Error()
	}
	return string(bz)
}

// AppendValue decodes f into a new element of a non-nullable repeated field.
func AppendValue[T any, PT interface {
	*T
	Unmarshaler
}](f Field, list *[]T) error {
	var v T
	if err := f.AsMessage(PT(&v)); err != nil {
		return err
	}
	*list = append(*list, v)
	return nil
}

// AppendMessage decodes f into a new element of a nullable repeated field.
func AppendMessage[T any, PT interface {
	*T
	Unmarshaler
}](f Field, list *[]PT) error {
	m := PT(new(T))
	if err := f.AsMessage(m); err != nil {
		return err
	}
	*list = append(*list, m)
	return nil
}
