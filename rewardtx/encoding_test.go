package rewardtx

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/spacemeshos/go-scale"
	"github.com/stretchr/testify/require"

	"github.com/spacemeshos/go-rewardtx/codec"
	"github.com/spacemeshos/go-rewardtx/common/types"
)

var generator = func() types.PubKey {
	raw, err := hex.DecodeString("0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798")
	if err != nil {
		panic(err)
	}
	pub, err := types.PubKeyFromBytes(raw)
	if err != nil {
		panic(err)
	}
	return pub
}()

var ignoreHash = cmpopts.IgnoreUnexported(BlockReward{}, MultiCoinBlockReward{})

func regUID(height uint32, index uint16) types.UserID {
	return types.NewRegUserID(types.RegID{Height: height, Index: index})
}

func TestBlockRewardEncoding(t *testing.T) {
	for _, tc := range []struct {
		desc string
		tx   *BlockReward
	}{
		{"regid", NewBlockReward(regUID(10, 2), 50, 100)},
		{"pubkey", NewBlockReward(types.NewPubKeyUserID(generator), 1<<40, 7)},
		{"zero", NewBlockReward(regUID(0, 0), 0, 0)},
		{"negative height", NewBlockReward(regUID(1, 1), 1, -5)},
	} {
		t.Run(tc.desc, func(t *testing.T) {
			buf, err := codec.Encode(tc.tx)
			require.NoError(t, err)

			again, err := codec.Encode(tc.tx)
			require.NoError(t, err)
			require.Equal(t, buf, again)

			decoded, err := DecodeBlockReward(buf)
			require.NoError(t, err)
			if diff := cmp.Diff(tc.tx, decoded, ignoreHash); diff != "" {
				t.Errorf("decoded mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBlockRewardLayout(t *testing.T) {
	tx := NewBlockReward(regUID(1, 2), 3, 4)
	buf, err := codec.Encode(tx)
	require.NoError(t, err)
	// compact(1) | len(6) regid | compact(3) | compact(4)
	expected := []byte{1 << 2, 6 << 2, 1, 0, 0, 0, 2, 0, 3 << 2, 4 << 2}
	require.Equal(t, expected, buf)
}

func TestMultiCoinBlockRewardEncoding(t *testing.T) {
	for _, tc := range []struct {
		desc string
		tx   *MultiCoinBlockReward
	}{
		{
			"regid",
			NewMultiCoinBlockReward(regUID(3, 1), map[types.CoinType]uint64{types.WICC: 10, types.WUSD: 20}, 5, 100),
		},
		{
			"pubkey",
			NewMultiCoinBlockReward(types.NewPubKeyUserID(generator), map[types.CoinType]uint64{types.WGRT: 1}, 0, 1),
		},
		{
			"unknown coin",
			NewMultiCoinBlockReward(regUID(3, 1), map[types.CoinType]uint64{types.CoinType(200): 1}, 0, 1),
		},
		{
			"empty values",
			NewMultiCoinBlockReward(regUID(3, 1), nil, 99, 2),
		},
	} {
		t.Run(tc.desc, func(t *testing.T) {
			buf, err := codec.Encode(tc.tx)
			require.NoError(t, err)

			decoded, err := DecodeMultiCoinBlockReward(buf)
			require.NoError(t, err)
			if diff := cmp.Diff(tc.tx, decoded, ignoreHash, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("decoded mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMultiCoinBlockRewardDeterministic(t *testing.T) {
	values := map[types.CoinType]uint64{types.WUSD: 3, types.WICC: 1, types.WGRT: 2}
	first := codec.MustEncode(NewMultiCoinBlockReward(regUID(1, 1), values, 0, 1))
	for range 20 {
		again := map[types.CoinType]uint64{}
		for coin, value := range values {
			again[coin] = value
		}
		require.Equal(t, first, codec.MustEncode(NewMultiCoinBlockReward(regUID(1, 1), again, 0, 1)))
	}
	// compact(1) | compact(1) | len(6) regid | compact(3) | coins in ascending order | compact(0)
	expected := []byte{
		1 << 2, 1 << 2,
		6 << 2, 1, 0, 0, 0, 1, 0,
		3 << 2,
		1, 1 << 2,
		2, 2 << 2,
		3, 3 << 2,
		0,
	}
	require.Equal(t, expected, first)
}

func TestDecodeTruncated(t *testing.T) {
	for _, tx := range []Reward{
		NewBlockReward(types.NewPubKeyUserID(generator), 1000, 10),
		NewMultiCoinBlockReward(regUID(5, 5), map[types.CoinType]uint64{types.WICC: 10, types.WUSD: 1 << 33}, 7, 10),
	} {
		t.Run(tx.Type().String(), func(t *testing.T) {
			buf := codec.MustEncode(tx)
			for i := range len(buf) {
				var err error
				switch tx.(type) {
				case *BlockReward:
					_, err = DecodeBlockReward(buf[:i])
				case *MultiCoinBlockReward:
					_, err = DecodeMultiCoinBlockReward(buf[:i])
				}
				require.ErrorIs(t, err, ErrDecodeTruncated, "prefix %d", i)
			}
		})
	}
}

func TestDecodeTrailing(t *testing.T) {
	for _, tx := range []Reward{
		NewBlockReward(regUID(1, 2), 3, 4),
		NewMultiCoinBlockReward(regUID(5, 5), map[types.CoinType]uint64{types.WICC: 10}, 7, 10),
	} {
		t.Run(tx.Type().String(), func(t *testing.T) {
			buf := append(codec.MustEncode(tx), 0xde, 0xad)
			var err error
			switch tx.(type) {
			case *BlockReward:
				_, err = DecodeBlockReward(buf)
			case *MultiCoinBlockReward:
				_, err = DecodeMultiCoinBlockReward(buf)
			}
			require.ErrorIs(t, err, ErrDecodeTrailing)
			require.Equal(t, "bad-tx-trailing", RejectCode(err))
		})
	}
}

func TestDecodeDuplicateKey(t *testing.T) {
	buf := []byte{
		1 << 2, 1 << 2,
		6 << 2, 1, 0, 0, 0, 1, 0,
		2 << 2,
		1, 1 << 2,
		1, 2 << 2,
		0,
	}
	_, err := DecodeMultiCoinBlockReward(buf)
	require.ErrorIs(t, err, ErrDecodeDuplicateKey)
	require.Equal(t, "bad-tx-dup-coin", RejectCode(err))
}

func TestDecodeUnsortedKeys(t *testing.T) {
	buf := []byte{
		1 << 2, 1 << 2,
		6 << 2, 1, 0, 0, 0, 1, 0,
		2 << 2,
		3, 4 << 2,
		1, 2 << 2,
		0,
	}
	_, err := DecodeMultiCoinBlockReward(buf)
	require.ErrorIs(t, err, ErrDecodeUnsortedKeys)
	require.Equal(t, "bad-tx-coin-order", RejectCode(err))

	// same entries in ascending order
	buf[10], buf[11], buf[12], buf[13] = 1, 2<<2, 3, 4<<2
	tx, err := DecodeMultiCoinBlockReward(buf)
	require.NoError(t, err)
	require.Equal(t, buf, codec.MustEncode(tx))
}

func TestUnsupportedVersion(t *testing.T) {
	t.Run("encode", func(t *testing.T) {
		tx := NewBlockReward(regUID(1, 1), 1, 1)
		tx.Version = 2
		_, err := codec.Encode(tx)
		require.ErrorIs(t, err, ErrUnsupportedVersion)

		_, err = tx.SigHash(true)
		require.ErrorIs(t, err, ErrUnsupportedVersion)
	})
	t.Run("decode", func(t *testing.T) {
		buf := codec.MustEncode(NewMultiCoinBlockReward(regUID(1, 1), nil, 0, 1))
		buf[0] = 2 << 2
		_, err := DecodeMultiCoinBlockReward(buf)
		require.ErrorIs(t, err, ErrUnsupportedVersion)
	})
}

func TestDecodeMalformedIdentity(t *testing.T) {
	// identity of 5 bytes
	buf := []byte{1 << 2, 5 << 2, 1, 2, 3, 4, 5, 0, 0}
	_, err := DecodeBlockReward(buf)
	require.ErrorIs(t, err, ErrMalformedIdentity)

	// length prefix above the public key size
	buf = append([]byte{1 << 2, 40 << 2}, make([]byte, 42)...)
	_, err = DecodeBlockReward(buf)
	require.ErrorIs(t, err, ErrMalformedIdentity)
	require.Equal(t, "bad-uid-malformed", RejectCode(err))
}

func TestEnvelope(t *testing.T) {
	for _, tx := range []Reward{
		NewBlockReward(regUID(1, 2), 3, 4),
		NewMultiCoinBlockReward(regUID(1, 2), map[types.CoinType]uint64{types.WUSD: 1}, 2, 3),
	} {
		raw, err := Encode(tx)
		require.NoError(t, err)
		require.Equal(t, byte(tx.Type()), raw[0])

		decoded, err := Decode(raw)
		require.NoError(t, err)
		if diff := cmp.Diff(tx, decoded, ignoreHash); diff != "" {
			t.Errorf("decoded mismatch (-want +got):\n%s", diff)
		}

		_, err = Decode(append(raw, 0xff))
		require.ErrorIs(t, err, ErrDecodeTrailing)
	}

	_, err := Decode(nil)
	require.ErrorIs(t, err, ErrDecodeTruncated)
	_, err = Decode([]byte{5, 0})
	require.ErrorIs(t, err, ErrUnknownTxType)
}

func TestSigHash(t *testing.T) {
	tx := NewBlockReward(regUID(1, 2), 3, 4)
	first, err := tx.SigHash(false)
	require.NoError(t, err)
	require.NotEqual(t, types.EmptyTransactionID, first)

	tx.RewardValue = 4
	cached, err := tx.SigHash(false)
	require.NoError(t, err)
	require.Equal(t, first, cached)

	fresh, err := tx.SigHash(true)
	require.NoError(t, err)
	require.NotEqual(t, first, fresh)

	cached, err = tx.SigHash(false)
	require.NoError(t, err)
	require.Equal(t, fresh, cached)
}

func TestSigHashCoversType(t *testing.T) {
	// both records carry version and regid first, the type byte keeps their hashes apart
	single, err := NewBlockReward(regUID(1, 2), 0, 0).SigHash(true)
	require.NoError(t, err)
	multi, err := NewMultiCoinBlockReward(regUID(1, 2), nil, 0, 0).SigHash(true)
	require.NoError(t, err)
	require.NotEqual(t, single, multi)
}

func TestValues(t *testing.T) {
	single := NewBlockReward(regUID(1, 2), 3, 4)
	require.Equal(t, map[types.CoinType]uint64{types.WICC: 3}, single.Values())

	multi := NewMultiCoinBlockReward(regUID(1, 2), map[types.CoinType]uint64{types.WUSD: 1}, 2, 3)
	values := multi.Values()
	values[types.WICC] = 100
	require.Equal(t, map[types.CoinType]uint64{types.WUSD: 1}, multi.RewardValues)
}

func TestNewFromRaw(t *testing.T) {
	tx, err := NewBlockRewardFromRaw(generator[:], 1, 1)
	require.NoError(t, err)
	require.Equal(t, types.PubKeyKind, tx.UserID.Kind)

	tx, err = NewBlockRewardFromRaw(types.RegID{Height: 9, Index: 1}.Bytes(), 1, 1)
	require.NoError(t, err)
	require.Equal(t, types.RegIDKind, tx.UserID.Kind)

	_, err = NewBlockRewardFromRaw([]byte{1, 2, 3, 4, 5, 6, 7}, 1, 1)
	require.ErrorIs(t, err, ErrMalformedIdentity)

	multi, err := NewMultiCoinBlockRewardFromRaw(generator[:], nil, 1, 1)
	require.NoError(t, err)
	require.Equal(t, generator, multi.UserID.PubKey)
}

func TestCheckTx(t *testing.T) {
	require.NoError(t, NewBlockReward(regUID(1, 2), 3, 4).CheckTx(0))
	require.NoError(t, NewMultiCoinBlockReward(regUID(1, 2), nil, 3, 4).CheckTx(0))
}

func TestScaleDecoderDirect(t *testing.T) {
	buf := codec.MustEncode(NewBlockReward(regUID(1, 2), 3, 4))
	var tx BlockReward
	n, err := tx.DecodeScale(scale.NewDecoder(bytes.NewReader(buf)))
	require.NoError(t, err)
	require.Equal(t, len(buf), n)
}
