// Package datagen builds random protocol fixtures for tests.
package datagen

import (
	"math/big"
	"math/rand"
	"testing"
	"time"

	sdkmath "cosmossdk.io/math"
	cmttypes "github.com/cometbft/cometbft/types"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	"github.com/cosmos/cosmos-sdk/crypto/keys/secp256k1"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/bech32"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/xiaolou86/dydx-v4-clients/protocol/dtypes"
)

// AddressPrefix is the bech32 prefix of dYdX account addresses.
const AddressPrefix = "dydx"

func AddRandomSeedsToFuzzer(f *testing.F, num uint) {
	// Seed based on the current time
	r := rand.New(rand.NewSource(time.Now().Unix()))
	var idx uint
	for idx = 0; idx < num; idx++ {
		f.Add(r.Int63())
	}
}

func GenRandomByteArray(r *rand.Rand, length uint64) []byte {
	newHeaderBytes := make([]byte, length)
	r.Read(newHeaderBytes)
	return newHeaderBytes
}

func GenRandomHexStr(r *rand.Rand, length uint64) string {
	const hexChars = "0123456789abcdef"
	bz := make([]byte, length)
	for i := range bz {
		bz[i] = hexChars[r.Intn(len(hexChars))]
	}
	return string(bz)
}

func GenRandomAddress(r *rand.Rand) string {
	addr, err := bech32.ConvertAndEncode(AddressPrefix, GenRandomByteArray(r, 20))
	if err != nil {
		panic(err)
	}
	return addr
}

// GenRandomSerializableInt returns a signed integer of up to 128 bits.
func GenRandomSerializableInt(r *rand.Rand) dtypes.SerializableInt {
	v := new(big.Int).SetBytes(GenRandomByteArray(r, uint64(r.Intn(16)+1)))
	if r.Intn(2) == 0 {
		v.Neg(v)
	}
	return dtypes.NewIntFromBigInt(v)
}

func GenRandomCoin(r *rand.Rand) sdk.Coin {
	denoms := []string{"adv4tnt", "ibc/8E27BA2D5493AF5636760E354E46004562C46AB7EC0CC4C1CA14E9E20E2545B5", "adydx"}
	return sdk.NewCoin(denoms[r.Intn(len(denoms))], sdkmath.NewInt(r.Int63()))
}

func GenRandomCoins(r *rand.Rand) sdk.Coins {
	coins := sdk.NewCoins()
	for i := 0; i < r.Intn(3)+1; i++ {
		coins = coins.Add(GenRandomCoin(r))
	}
	return coins
}

// GenRandomBaseAccount returns a base account with a secp256k1 public key.
func GenRandomBaseAccount(r *rand.Rand) *authtypes.BaseAccount {
	pk := secp256k1.GenPrivKey().PubKey()
	pkAny, err := codectypes.NewAnyWithValue(pk)
	if err != nil {
		panic(err)
	}
	return &authtypes.BaseAccount{
		Address:       GenRandomAddress(r),
		PubKey:        pkAny,
		AccountNumber: r.Uint64(),
		Sequence:      r.Uint64(),
	}
}

// GenRandomBlock returns a block at height that passes ValidateBasic.
func GenRandomBlock(r *rand.Rand, height int64) *cmttypes.Block {
	txs := []cmttypes.Tx{GenRandomByteArray(r, 32), GenRandomByteArray(r, 64)}
	block := cmttypes.MakeBlock(height, txs, &cmttypes.Commit{}, nil)
	block.ChainID = "dydx-testnet-4"
	block.Time = time.Unix(r.Int63n(1<<32), 0).UTC()
	block.ProposerAddress = GenRandomByteArray(r, 20)
	return block
}
