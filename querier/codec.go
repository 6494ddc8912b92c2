package querier

import (
	errorsmod "cosmossdk.io/errors"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	cryptocodec "github.com/cosmos/cosmos-sdk/crypto/codec"
	cryptotypes "github.com/cosmos/cosmos-sdk/crypto/types"
	gogoproto "github.com/cosmos/gogoproto/proto"
)

// Message is a protobuf message that encodes itself. Both the cosmos-sdk
// generated types and the dYdX types under protocol/ satisfy it.
type Message interface {
	gogoproto.Message
	Marshal() ([]byte, error)
	Unmarshal(dAtA []byte) error
}

// Codec is the serializer owned by a Querier. Integers wider than 64 bits
// travel as dtypes.SerializableInt bytes fields, so no numeric strategy has
// to be installed globally before use.
type Codec struct {
	registry codectypes.InterfaceRegistry
}

// NewCodec builds a codec whose interface registry knows the cosmos public
// key types.
func NewCodec() *Codec {
	registry := codectypes.NewInterfaceRegistry()
	cryptocodec.RegisterInterfaces(registry)
	return &Codec{registry: registry}
}

func (c *Codec) Marshal(msg Message) ([]byte, error) {
	bz, err := msg.Marshal()
	if err != nil {
		return nil, errorsmod.Wrapf(ErrEncodeRequest, "%T: %v", msg, err)
	}
	return bz, nil
}

func (c *Codec) Unmarshal(bz []byte, msg Message) error {
	msg.Reset()
	if err := msg.Unmarshal(bz); err != nil {
		return errorsmod.Wrapf(ErrDecodeResponse, "%T: %v", msg, err)
	}
	return nil
}

// UnpackPubKey decodes a tagged public key. A nil envelope yields a nil key.
func (c *Codec) UnpackPubKey(envelope *codectypes.Any) (cryptotypes.PubKey, error) {
	if envelope == nil {
		return nil, nil
	}
	var pk cryptotypes.PubKey
	if err := c.registry.UnpackAny(envelope, &pk); err != nil {
		return nil, errorsmod.Wrapf(ErrDecodeResponse, "public key %s: %v", envelope.TypeUrl, err)
	}
	return pk, nil
}
