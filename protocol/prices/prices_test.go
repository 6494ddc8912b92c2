package prices_test

import (
	"encoding/hex"
	"math/rand"
	"testing"

	"github.com/cosmos/cosmos-sdk/types/query"
	"github.com/stretchr/testify/require"

	"github.com/xiaolou86/dydx-v4-clients/protocol/prices"
	"github.com/xiaolou86/dydx-v4-clients/testutil/datagen"
)

func TestMarketPriceWireForm(t *testing.T) {
	mp := &prices.MarketPrice{Id: 1, Exponent: -5, Price: 100}
	bz, err := mp.Marshal()
	require.NoError(t, err)
	require.Equal(t, "080110091864", hex.EncodeToString(bz))
	require.Equal(t, len(bz), mp.Size())

	var decoded prices.MarketPrice
	require.NoError(t, decoded.Unmarshal(bz))
	require.Equal(t, *mp, decoded)
}

func TestZeroValuesAreOmitted(t *testing.T) {
	bz, err := (&prices.QueryMarketPriceRequest{}).Marshal()
	require.NoError(t, err)
	require.Empty(t, bz)
	require.NotNil(t, bz)
}

func FuzzAllMarketPricesResponse(f *testing.F) {
	datagen.AddRandomSeedsToFuzzer(f, 10)
	f.Fuzz(func(t *testing.T, seed int64) {
		r := rand.New(rand.NewSource(seed))
		resp := &prices.QueryAllMarketPricesResponse{
			Pagination: &query.PageResponse{NextKey: datagen.GenRandomByteArray(r, 8), Total: r.Uint64()},
		}
		for i := 0; i < r.Intn(5)+1; i++ {
			resp.MarketPrices = append(resp.MarketPrices, *datagen.GenRandomMarketPrice(r, uint32(i)))
		}

		bz, err := resp.Marshal()
		require.NoError(t, err)
		decoded := &prices.QueryAllMarketPricesResponse{}
		require.NoError(t, decoded.Unmarshal(bz))
		require.Equal(t, resp, decoded)
	})
}
