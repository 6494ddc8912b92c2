package subaccounts_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xiaolou86/dydx-v4-clients/protocol/dtypes"
	"github.com/xiaolou86/dydx-v4-clients/protocol/subaccounts"
	"github.com/xiaolou86/dydx-v4-clients/testutil/datagen"
)

func FuzzSubaccount(f *testing.F) {
	datagen.AddRandomSeedsToFuzzer(f, 10)
	f.Fuzz(func(t *testing.T, seed int64) {
		r := rand.New(rand.NewSource(seed))
		sa := datagen.GenRandomSubaccount(r, datagen.GenRandomAddress(r), uint32(r.Intn(128)))

		bz, err := sa.Marshal()
		require.NoError(t, err)
		decoded := &subaccounts.Subaccount{}
		require.NoError(t, decoded.Unmarshal(bz))

		require.Equal(t, sa.Id, decoded.Id)
		require.Equal(t, sa.MarginEnabled, decoded.MarginEnabled)
		require.Len(t, decoded.AssetPositions, len(sa.AssetPositions))
		for i, p := range sa.AssetPositions {
			require.Equal(t, p.AssetId, decoded.AssetPositions[i].AssetId)
			require.Equal(t, p.Index, decoded.AssetPositions[i].Index)
			require.Zero(t, p.Quantums.Cmp(decoded.AssetPositions[i].Quantums))
		}
		require.Len(t, decoded.PerpetualPositions, len(sa.PerpetualPositions))

		reencoded, err := decoded.Marshal()
		require.NoError(t, err)
		require.Equal(t, bz, reencoded)
	})
}

func TestGetUsdcPosition(t *testing.T) {
	sa := &subaccounts.Subaccount{
		AssetPositions: []*subaccounts.AssetPosition{
			{AssetId: 5, Quantums: dtypes.NewInt(9)},
			{AssetId: subaccounts.UsdcAssetId, Quantums: dtypes.NewInt(-1_000_000)},
		},
	}
	require.Zero(t, sa.GetUsdcPosition().Cmp(dtypes.NewInt(-1_000_000)))

	empty := &subaccounts.Subaccount{}
	require.Zero(t, empty.GetUsdcPosition().Cmp(dtypes.NewInt(0)))
}

func TestQueryGetSubaccountRequest(t *testing.T) {
	req := &subaccounts.QueryGetSubaccountRequest{Owner: "dydx1owner", Number: 127}
	bz, err := req.Marshal()
	require.NoError(t, err)

	decoded := &subaccounts.QueryGetSubaccountRequest{}
	require.NoError(t, decoded.Unmarshal(bz))
	require.Equal(t, req, decoded)
}

func TestUnknownFieldsAreSkipped(t *testing.T) {
	id := &subaccounts.SubaccountId{Owner: "dydx1owner", Number: 2}
	bz, err := id.Marshal()
	require.NoError(t, err)

	// field 9 as varint, field 10 as fixed64
	bz = append(bz, 0x48, 0x01, 0x51, 1, 2, 3, 4, 5, 6, 7, 8)
	decoded := &subaccounts.SubaccountId{}
	require.NoError(t, decoded.Unmarshal(bz))
	require.Equal(t, id, decoded)
}
