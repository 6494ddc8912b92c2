package querier

import (
	errorsmod "cosmossdk.io/errors"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	cryptotypes "github.com/cosmos/cosmos-sdk/crypto/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	vestingtypes "github.com/cosmos/cosmos-sdk/x/auth/vesting/types"
)

const (
	TypeURLBaseAccount              = "/cosmos.auth.v1beta1.BaseAccount"
	TypeURLModuleAccount            = "/cosmos.auth.v1beta1.ModuleAccount"
	TypeURLBaseVestingAccount       = "/cosmos.vesting.v1beta1.BaseVestingAccount"
	TypeURLContinuousVestingAccount = "/cosmos.vesting.v1beta1.ContinuousVestingAccount"
	TypeURLDelayedVestingAccount    = "/cosmos.vesting.v1beta1.DelayedVestingAccount"
	TypeURLPeriodicVestingAccount   = "/cosmos.vesting.v1beta1.PeriodicVestingAccount"
	TypeURLPermanentLockedAccount   = "/cosmos.vesting.v1beta1.PermanentLockedAccount"
)

// Account is the part of an on-chain account record every account type
// shares.
type Account struct {
	TypeURL       string             `json:"type_url"`
	Address       string             `json:"address"`
	PubKey        cryptotypes.PubKey `json:"pub_key"`
	AccountNumber uint64             `json:"account_number"`
	Sequence      uint64             `json:"sequence"`
}

// BaseAccountDecodeFunc decodes the payload of one account type and returns
// its embedded base account.
type BaseAccountDecodeFunc func(bz []byte) (*authtypes.BaseAccount, error)

// AccountDecoder turns a tagged account envelope into an Account by
// dispatching on its type URL.
type AccountDecoder struct {
	codec    *Codec
	decoders map[string]BaseAccountDecodeFunc
}

// NewAccountDecoder returns a decoder that knows the auth and vesting
// account types.
func NewAccountDecoder(codec *Codec) *AccountDecoder {
	d := &AccountDecoder{
		codec:    codec,
		decoders: make(map[string]BaseAccountDecodeFunc),
	}

	d.Register(TypeURLBaseAccount, decodeBase(func(a *authtypes.BaseAccount) *authtypes.BaseAccount {
		return a
	}))
	d.Register(TypeURLModuleAccount, decodeBase(func(a *authtypes.ModuleAccount) *authtypes.BaseAccount {
		return a.BaseAccount
	}))
	d.Register(TypeURLBaseVestingAccount, decodeBase(func(a *vestingtypes.BaseVestingAccount) *authtypes.BaseAccount {
		return a.BaseAccount
	}))
	d.Register(TypeURLContinuousVestingAccount, decodeBase(func(a *vestingtypes.ContinuousVestingAccount) *authtypes.BaseAccount {
		return vestingBase(a.BaseVestingAccount)
	}))
	d.Register(TypeURLDelayedVestingAccount, decodeBase(func(a *vestingtypes.DelayedVestingAccount) *authtypes.BaseAccount {
		return vestingBase(a.BaseVestingAccount)
	}))
	d.Register(TypeURLPeriodicVestingAccount, decodeBase(func(a *vestingtypes.PeriodicVestingAccount) *authtypes.BaseAccount {
		return vestingBase(a.BaseVestingAccount)
	}))
	d.Register(TypeURLPermanentLockedAccount, decodeBase(func(a *vestingtypes.PermanentLockedAccount) *authtypes.BaseAccount {
		return vestingBase(a.BaseVestingAccount)
	}))

	return d
}

// Register binds a type URL to its decoder, replacing any previous binding.
// It must not be called concurrently with Decode.
func (d *AccountDecoder) Register(typeURL string, decode BaseAccountDecodeFunc) {
	d.decoders[typeURL] = decode
}

func (d *AccountDecoder) Decode(envelope *codectypes.Any) (*Account, error) {
	if envelope == nil || envelope.TypeUrl == "" {
		return nil, ErrUnexpectedResponse.Wrap("account envelope carries no type URL")
	}
	decode, ok := d.decoders[envelope.TypeUrl]
	if !ok {
		return nil, ErrUnknownAccountType.Wrap(envelope.TypeUrl)
	}
	if len(envelope.Value) == 0 {
		return nil, ErrUnexpectedResponse.Wrapf("empty %s payload", envelope.TypeUrl)
	}

	base, err := decode(envelope.Value)
	if err != nil {
		return nil, errorsmod.Wrapf(ErrDecodeResponse, "%s: %v", envelope.TypeUrl, err)
	}
	if base == nil {
		return nil, ErrUnexpectedResponse.Wrapf("%s carries no base account", envelope.TypeUrl)
	}

	pk, err := d.codec.UnpackPubKey(base.PubKey)
	if err != nil {
		return nil, err
	}

	return &Account{
		TypeURL:       envelope.TypeUrl,
		Address:       base.Address,
		PubKey:        pk,
		AccountNumber: base.AccountNumber,
		Sequence:      base.Sequence,
	}, nil
}

func decodeBase[T any, PT interface {
	*T
	Message
}](base func(PT) *authtypes.BaseAccount) BaseAccountDecodeFunc {
	return func(bz []byte) (*authtypes.BaseAccount, error) {
		acc := PT(new(T))
		if err := acc.Unmarshal(bz); err != nil {
			return nil, err
		}
		return base(acc), nil
	}
}

func vestingBase(v *vestingtypes.BaseVestingAccount) *authtypes.BaseAccount {
	if v == nil {
		return nil
	}
	return v.BaseAccount
}
