package rewardtx

import (
	"bytes"
	"fmt"
	"io"

	"github.com/spacemeshos/go-scale"
	"go.uber.org/zap/zapcore"

	"github.com/spacemeshos/go-rewardtx/codec"
	"github.com/spacemeshos/go-rewardtx/common/types"
	"github.com/spacemeshos/go-rewardtx/hash"
)

// TxType tags the kind of transaction.
type TxType uint8

const (
	// BlockRewardTx credits native coin to the block producer.
	BlockRewardTx TxType = 1
	// UCoinBlockRewardTx credits several coins and delegate profits to the block producer.
	UCoinBlockRewardTx TxType = 12
)

func (t TxType) String() string {
	switch t {
	case BlockRewardTx:
		return "BLOCK_REWARD_TX"
	case UCoinBlockRewardTx:
		return "UCOIN_BLOCK_REWARD_TX"
	}
	return fmt.Sprintf("tx(%d)", uint8(t))
}

// Version1 is the only supported record version. The field order of the
// encoding is fixed per version as it is also the input of the signature hash.
const Version1 uint32 = 1

// Reward is implemented by BlockReward and MultiCoinBlockReward.
type Reward interface {
	scale.Encodable
	scale.Decodable
	zapcore.ObjectMarshaler

	Type() TxType
	Recipient() types.UserID
	// SigHash returns cached signature hash unless recompute is true or
	// the hash was never computed.
	SigHash(recompute bool) (types.TransactionID, error)
	// Values returns reward amounts by coin.
	Values() map[types.CoinType]uint64
	CheckTx(height int32) error
	InvolvedKeyIDs(KeyIDResolver) (map[types.KeyID]struct{}, error)
	Describe(KeyIDResolver) string
	Object(KeyIDResolver) Object

	credit(*types.Account) error
}

func checkVersion(version uint32) error {
	if version != Version1 {
		return fmt.Errorf("%w: %d", ErrUnsupportedVersion, version)
	}
	return nil
}

func encodeVersion(enc *scale.Encoder, version uint32) (int, error) {
	if err := checkVersion(version); err != nil {
		return 0, err
	}
	return scale.EncodeCompact32(enc, version)
}

func decodeVersion(dec *scale.Decoder) (uint32, int, error) {
	version, n, err := scale.DecodeCompact32(dec)
	if err != nil {
		return 0, n, err
	}
	if err := checkVersion(version); err != nil {
		return 0, n, err
	}
	return version, n, nil
}

// sigHash hashes version, transaction type and the fields that follow the version
// in the canonical encoding.
func sigHash(
	version uint32,
	typ TxType,
	body func(*scale.Encoder) (int, error),
) (types.TransactionID, error) {
	hasher := hash.GetHasher()
	defer hash.PutHasher(hasher)
	enc := scale.NewEncoder(hasher)
	if _, err := encodeVersion(enc, version); err != nil {
		return types.TransactionID{}, err
	}
	if _, err := scale.EncodeByte(enc, byte(typ)); err != nil {
		return types.TransactionID{}, err
	}
	if _, err := body(enc); err != nil {
		return types.TransactionID{}, err
	}
	var id types.TransactionID
	hasher.Sum(id[:0])
	return id, nil
}

// eofReader remembers whether the underlying reader was exhausted.
type eofReader struct {
	r   io.Reader
	eof bool
}

func (e *eofReader) Read(p []byte) (int, error) {
	n, err := e.r.Read(p)
	if err == io.EOF {
		e.eof = true
	}
	return n, err
}

func decode(buf []byte, value scale.Decodable) error {
	rd := &eofReader{r: bytes.NewReader(buf)}
	n, err := codec.DecodeFrom(rd, value)
	if err != nil {
		if rd.eof {
			return fmt.Errorf("%w: %w", ErrDecodeTruncated, err)
		}
		return err
	}
	if n != len(buf) {
		return fmt.Errorf("%w: %d of %d bytes unread", ErrDecodeTrailing, len(buf)-n, len(buf))
	}
	return nil
}

// Encode prefixes canonical encoding of the record with its transaction type.
func Encode(tx Reward) ([]byte, error) {
	body, err := codec.Encode(tx)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", tx.Type(), err)
	}
	return append([]byte{byte(tx.Type())}, body...), nil
}

// Decode is the inverse of Encode.
func Decode(raw []byte) (Reward, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: empty envelope", ErrDecodeTruncated)
	}
	var tx Reward
	switch typ := TxType(raw[0]); typ {
	case BlockRewardTx:
		tx = &BlockReward{}
	case UCoinBlockRewardTx:
		tx = &MultiCoinBlockReward{}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownTxType, typ)
	}
	if err := decode(raw[1:], tx); err != nil {
		return nil, fmt.Errorf("decode %s: %w", tx.Type(), err)
	}
	return tx, nil
}

func resolveAddress(resolver KeyIDResolver, uid types.UserID) string {
	if resolver == nil {
		return ""
	}
	keyID, err := resolver.GetKeyID(uid)
	if err != nil {
		return ""
	}
	return keyID.Address()
}

func hashString(tx Reward) string {
	id, err := tx.SigHash(false)
	if err != nil {
		return ""
	}
	return id.String()
}
