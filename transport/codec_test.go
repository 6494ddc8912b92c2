package transport

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xiaolou86/dydx-v4-clients/protocol/prices"
)

func TestCodecFramePassThrough(t *testing.T) {
	c := Codec{}
	bz, err := c.Marshal(&frame{bz: []byte{0x08, 0x01}})
	require.NoError(t, err)
	require.Equal(t, []byte{0x08, 0x01}, bz)

	data := []byte{0x0a, 0x00}
	out := &frame{}
	require.NoError(t, c.Unmarshal(data, out))
	data[0] = 0xff
	require.Equal(t, []byte{0x0a, 0x00}, out.bz)
}

func TestCodecSelfEncodingMessage(t *testing.T) {
	c := Codec{}
	bz, err := c.Marshal(&prices.QueryMarketPriceRequest{Id: 7})
	require.NoError(t, err)

	var decoded prices.QueryMarketPriceRequest
	require.NoError(t, c.Unmarshal(bz, &decoded))
	require.Equal(t, uint32(7), decoded.Id)
	require.Equal(t, codecName, c.Name())
}

func TestCodecRejectsPlainValues(t *testing.T) {
	c := Codec{}
	_, err := c.Marshal("not a message")
	require.ErrorContains(t, err, "cannot marshal string")
	require.ErrorContains(t, c.Unmarshal([]byte{}, new(int)), "cannot unmarshal into *int")
}
