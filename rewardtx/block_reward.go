package rewardtx

import (
	"fmt"

	"github.com/spacemeshos/go-scale"
	"go.uber.org/zap/zapcore"

	"github.com/spacemeshos/go-rewardtx/common/types"
)

// BlockReward credits RewardValue of native coin to the block producer.
type BlockReward struct {
	Version     uint32
	UserID      types.UserID
	RewardValue uint64
	ValidHeight int32

	sigHash *types.TransactionID
}

// NewBlockReward returns a version 1 record.
func NewBlockReward(uid types.UserID, value uint64, height int32) *BlockReward {
	return &BlockReward{
		Version:     Version1,
		UserID:      uid,
		RewardValue: value,
		ValidHeight: height,
	}
}

// NewBlockRewardFromRaw interprets account bytes longer than a registration id as a public key.
func NewBlockRewardFromRaw(account []byte, value uint64, height int32) (*BlockReward, error) {
	uid, err := types.UserIDFromBytes(account)
	if err != nil {
		return nil, err
	}
	return NewBlockReward(uid, value, height), nil
}

// DecodeBlockReward decodes canonical encoding of the record.
func DecodeBlockReward(buf []byte) (*BlockReward, error) {
	var tx BlockReward
	if err := decode(buf, &tx); err != nil {
		return nil, err
	}
	return &tx, nil
}

// Type returns BlockRewardTx.
func (tx *BlockReward) Type() TxType {
	return BlockRewardTx
}

// Recipient of the reward.
func (tx *BlockReward) Recipient() types.UserID {
	return tx.UserID
}

// Values returns reward value keyed by the native coin.
func (tx *BlockReward) Values() map[types.CoinType]uint64 {
	return map[types.CoinType]uint64{types.WICC: tx.RewardValue}
}

// SigHash returns the signature hash.
func (tx *BlockReward) SigHash(recompute bool) (types.TransactionID, error) {
	if !recompute && tx.sigHash != nil {
		return *tx.sigHash, nil
	}
	id, err := sigHash(tx.Version, tx.Type(), tx.encodeBody)
	if err != nil {
		return types.TransactionID{}, err
	}
	tx.sigHash = &id
	return id, nil
}

// CheckTx accepts every record.
func (tx *BlockReward) CheckTx(int32) error {
	return nil
}

func (tx *BlockReward) credit(account *types.Account) error {
	return account.Credit(types.WICC, tx.RewardValue)
}

// InvolvedKeyIDs resolves a registration id through the resolver or derives the
// key id from a valid public key.
func (tx *BlockReward) InvolvedKeyIDs(resolver KeyIDResolver) (map[types.KeyID]struct{}, error) {
	switch tx.UserID.Kind {
	case types.RegIDKind:
		keyID, err := resolver.GetKeyID(tx.UserID)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrUnresolvedIdentity, tx.UserID, err)
		}
		return map[types.KeyID]struct{}{keyID: {}}, nil
	case types.PubKeyKind:
		if err := tx.UserID.Validate(); err != nil {
			return nil, err
		}
		return map[types.KeyID]struct{}{tx.UserID.PubKey.KeyID(): {}}, nil
	}
	return nil, fmt.Errorf("%w: unknown kind %d", ErrMalformedIdentity, tx.UserID.Kind)
}

// Describe returns a single line for logs.
func (tx *BlockReward) Describe(resolver KeyIDResolver) string {
	return fmt.Sprintf("txType=%s, hash=%s, ver=%d, account=%s, addr=%s, rewardValue=%d",
		tx.Type(), hashString(tx), tx.Version, tx.UserID, resolveAddress(resolver, tx.UserID), tx.RewardValue)
}

// Object returns the record with stable field labels.
func (tx *BlockReward) Object(resolver KeyIDResolver) Object {
	return Object{
		{Key: "txid", Value: hashString(tx)},
		{Key: "tx_type", Value: tx.Type().String()},
		{Key: "ver", Value: tx.Version},
		{Key: "uid", Value: tx.UserID.String()},
		{Key: "addr", Value: resolveAddress(resolver, tx.UserID)},
		{Key: "reward_value", Value: tx.RewardValue},
		{Key: "valid_height", Value: tx.ValidHeight},
	}
}

// MarshalLogObject implements logging interface.
func (tx *BlockReward) MarshalLogObject(encoder zapcore.ObjectEncoder) error {
	encoder.AddString("type", tx.Type().String())
	encoder.AddUint32("version", tx.Version)
	if err := encoder.AddObject("uid", tx.UserID); err != nil {
		return err
	}
	encoder.AddUint64("reward_value", tx.RewardValue)
	encoder.AddInt32("valid_height", tx.ValidHeight)
	return nil
}

// EncodeScale writes version, recipient, reward value and valid height.
func (tx *BlockReward) EncodeScale(enc *scale.Encoder) (total int, err error) {
	{
		n, err := encodeVersion(enc, tx.Version)
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		n, err := tx.encodeBody(enc)
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}

func (tx *BlockReward) encodeBody(enc *scale.Encoder) (total int, err error) {
	{
		n, err := tx.UserID.EncodeScale(enc)
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		n, err := scale.EncodeCompact64(enc, tx.RewardValue)
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		n, err := scale.EncodeCompact32(enc, uint32(tx.ValidHeight))
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}

// DecodeScale is the inverse of EncodeScale.
func (tx *BlockReward) DecodeScale(dec *scale.Decoder) (total int, err error) {
	{
		field, n, err := decodeVersion(dec)
		if err != nil {
			return total, err
		}
		total += n
		tx.Version = field
	}
	{
		n, err := tx.UserID.DecodeScale(dec)
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		field, n, err := scale.DecodeCompact64(dec)
		if err != nil {
			return total, err
		}
		total += n
		tx.RewardValue = field
	}
	{
		field, n, err := scale.DecodeCompact32(dec)
		if err != nil {
			return total, err
		}
		total += n
		tx.ValidHeight = int32(field)
	}
	return total, nil
}
