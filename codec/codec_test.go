package codec_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spacemeshos/go-rewardtx/codec"
	"github.com/spacemeshos/go-rewardtx/common/types"
)

func TestEncodeDecode(t *testing.T) {
	uid := types.NewRegUserID(types.RegID{Height: 100, Index: 2})
	buf, err := codec.Encode(&uid)
	require.NoError(t, err)
	require.Equal(t, buf, codec.MustEncode(&uid))

	var decoded types.UserID
	require.NoError(t, codec.Decode(buf, &decoded))
	require.Equal(t, uid, decoded)

	require.Error(t, codec.Decode(buf[:3], &decoded))
}

func TestEncodeError(t *testing.T) {
	_, err := codec.Encode(&types.UserID{})
	require.ErrorIs(t, err, types.ErrMalformedIdentity)
	require.Panics(t, func() { codec.MustEncode(&types.UserID{}) })
}
