package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spacemeshos/go-rewardtx/common/types"
)

func TestAddress_RoundTrip(t *testing.T) {
	pub := types.PubKey(generator)
	id := pub.KeyID()
	addr := id.Address()
	require.NotEmpty(t, addr)

	parsed, err := types.ParseAddress(addr)
	require.NoError(t, err)
	require.Equal(t, id, parsed)
}

func TestAddress_Parse(t *testing.T) {
	valid := types.KeyID{1, 2, 3}.Address()
	corrupted := []byte(valid)
	if corrupted[5] == '2' {
		corrupted[5] = '3'
	} else {
		corrupted[5] = '2'
	}
	for _, tc := range []struct {
		desc string
		src  string
		err  error
	}{
		{desc: "valid", src: valid},
		{desc: "bad checksum", src: string(corrupted), err: types.ErrDecodeAddress},
		{desc: "empty", src: "", err: types.ErrDecodeAddress},
		{desc: "not base58", src: "0OIl", err: types.ErrDecodeAddress},
	} {
		t.Run(tc.desc, func(t *testing.T) {
			_, err := types.ParseAddress(tc.src)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestAddress_WrongNetwork(t *testing.T) {
	id := types.KeyID{7}
	types.SetAddressPrefix(types.TestnetAddressPrefix)
	testnet := id.Address()
	types.SetAddressPrefix(types.MainnetAddressPrefix)
	t.Cleanup(func() { types.SetAddressPrefix(types.MainnetAddressPrefix) })

	require.NotEqual(t, testnet, id.Address())
	_, err := types.ParseAddress(testnet)
	require.ErrorIs(t, err, types.ErrUnsupportedNetwork)
}
