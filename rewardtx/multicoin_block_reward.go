package rewardtx

import (
	"fmt"
	"maps"
	"slices"

	"github.com/spacemeshos/go-scale"
	"go.uber.org/zap/zapcore"

	"github.com/spacemeshos/go-rewardtx/common/types"
)

// MultiCoinBlockReward credits several coins and delegate profits to the block producer.
type MultiCoinBlockReward struct {
	Version      uint32
	ValidHeight  int32
	UserID       types.UserID
	RewardValues map[types.CoinType]uint64
	// Profits are paid in native coin on top of RewardValues.
	Profits uint64

	sigHash *types.TransactionID
}

// NewMultiCoinBlockReward returns a version 1 record.
func NewMultiCoinBlockReward(
	uid types.UserID,
	values map[types.CoinType]uint64,
	profits uint64,
	height int32,
) *MultiCoinBlockReward {
	return &MultiCoinBlockReward{
		Version:      Version1,
		ValidHeight:  height,
		UserID:       uid,
		RewardValues: values,
		Profits:      profits,
	}
}

// NewMultiCoinBlockRewardFromRaw interprets account bytes longer than a registration id as a public key.
func NewMultiCoinBlockRewardFromRaw(
	account []byte,
	values map[types.CoinType]uint64,
	profits uint64,
	height int32,
) (*MultiCoinBlockReward, error) {
	uid, err := types.UserIDFromBytes(account)
	if err != nil {
		return nil, err
	}
	return NewMultiCoinBlockReward(uid, values, profits, height), nil
}

// DecodeMultiCoinBlockReward decodes canonical encoding of the record.
func DecodeMultiCoinBlockReward(buf []byte) (*MultiCoinBlockReward, error) {
	var tx MultiCoinBlockReward
	if err := decode(buf, &tx); err != nil {
		return nil, err
	}
	return &tx, nil
}

// Type returns UCoinBlockRewardTx.
func (tx *MultiCoinBlockReward) Type() TxType {
	return UCoinBlockRewardTx
}

// Recipient of the reward.
func (tx *MultiCoinBlockReward) Recipient() types.UserID {
	return tx.UserID
}

// Values returns a copy of reward values.
func (tx *MultiCoinBlockReward) Values() map[types.CoinType]uint64 {
	return maps.Clone(tx.RewardValues)
}

// SigHash returns the signature hash.
func (tx *MultiCoinBlockReward) SigHash(recompute bool) (types.TransactionID, error) {
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
func (tx *MultiCoinBlockReward) CheckTx(int32) error {
	return nil
}

// credit applies reward values in ascending coin order and then profits in native coin.
// Account may be partially credited on error.
func (tx *MultiCoinBlockReward) credit(account *types.Account) error {
	for _, coin := range slices.Sorted(maps.Keys(tx.RewardValues)) {
		if err := account.Credit(coin, tx.RewardValues[coin]); err != nil {
			return err
		}
	}
	return account.Credit(types.WICC, tx.Profits)
}

// InvolvedKeyIDs resolves the recipient through the resolver for either kind of identity.
func (tx *MultiCoinBlockReward) InvolvedKeyIDs(resolver KeyIDResolver) (map[types.KeyID]struct{}, error) {
	keyID, err := resolver.GetKeyID(tx.UserID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrUnresolvedIdentity, tx.UserID, err)
	}
	return map[types.KeyID]struct{}{keyID: {}}, nil
}

func (tx *MultiCoinBlockReward) describeValues() string {
	var values string
	for _, coin := range slices.Sorted(maps.Keys(tx.RewardValues)) {
		values += fmt.Sprintf("%s:%d, ", coin, tx.RewardValues[coin])
	}
	return values
}

// Describe returns a single line for logs.
func (tx *MultiCoinBlockReward) Describe(resolver KeyIDResolver) string {
	return fmt.Sprintf("txType=%s, hash=%s, ver=%d, account=%s, addr=%s, rewardValues=%s, profits=%d",
		tx.Type(), hashString(tx), tx.Version, tx.UserID, resolveAddress(resolver, tx.UserID),
		tx.describeValues(), tx.Profits)
}

// Object returns the record with stable field labels.
func (tx *MultiCoinBlockReward) Object(resolver KeyIDResolver) Object {
	values := make(Object, 0, len(tx.RewardValues))
	for _, coin := range slices.Sorted(maps.Keys(tx.RewardValues)) {
		values = append(values, Field{Key: coin.String(), Value: tx.RewardValues[coin]})
	}
	return Object{
		{Key: "txid", Value: hashString(tx)},
		{Key: "tx_type", Value: tx.Type().String()},
		{Key: "ver", Value: tx.Version},
		{Key: "uid", Value: tx.UserID.String()},
		{Key: "addr", Value: resolveAddress(resolver, tx.UserID)},
		{Key: "reward_value", Value: values},
		{Key: "valid_height", Value: tx.ValidHeight},
	}
}

// MarshalLogObject implements logging interface.
func (tx *MultiCoinBlockReward) MarshalLogObject(encoder zapcore.ObjectEncoder) error {
	encoder.AddString("type", tx.Type().String())
	encoder.AddUint32("version", tx.Version)
	if err := encoder.AddObject("uid", tx.UserID); err != nil {
		return err
	}
	for _, coin := range slices.Sorted(maps.Keys(tx.RewardValues)) {
		encoder.AddUint64(coin.String(), tx.RewardValues[coin])
	}
	encoder.AddUint64("profits", tx.Profits)
	encoder.AddInt32("valid_height", tx.ValidHeight)
	return nil
}

// EncodeScale writes version, valid height, recipient, reward values sorted by coin and profits.
func (tx *MultiCoinBlockReward) EncodeScale(enc *scale.Encoder) (total int, err error) {
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

func (tx *MultiCoinBlockReward) encodeBody(enc *scale.Encoder) (total int, err error) {
	{
		n, err := scale.EncodeCompact32(enc, uint32(tx.ValidHeight))
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		n, err := tx.UserID.EncodeScale(enc)
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		n, err := scale.EncodeCompact32(enc, uint32(len(tx.RewardValues)))
		if err != nil {
			return total, err
		}
		total += n
	}
	for _, coin := range slices.Sorted(maps.Keys(tx.RewardValues)) {
		{
			n, err := scale.EncodeByte(enc, byte(coin))
			if err != nil {
				return total, err
			}
			total += n
		}
		{
			n, err := scale.EncodeCompact64(enc, tx.RewardValues[coin])
			if err != nil {
				return total, err
			}
			total += n
		}
	}
	{
		n, err := scale.EncodeCompact64(enc, tx.Profits)
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}

// DecodeScale is the inverse of EncodeScale. Coin types must be unique and ascending.
func (tx *MultiCoinBlockReward) DecodeScale(dec *scale.Decoder) (total int, err error) {
	{
		field, n, err := decodeVersion(dec)
		if err != nil {
			return total, err
		}
		total += n
		tx.Version = field
	}
	{
		field, n, err := scale.DecodeCompact32(dec)
		if err != nil {
			return total, err
		}
		total += n
		tx.ValidHeight = int32(field)
	}
	{
		n, err := tx.UserID.DecodeScale(dec)
		if err != nil {
			return total, err
		}
		total += n
	}
	var count uint32
	{
		field, n, err := scale.DecodeCompact32(dec)
		if err != nil {
			return total, err
		}
		total += n
		count = field
	}
	tx.RewardValues = nil
	var prev types.CoinType
	for i := range count {
		var coin types.CoinType
		{
			field, n, err := scale.DecodeByte(dec)
			if err != nil {
				return total, err
			}
			total += n
			coin = types.CoinType(field)
		}
		if _, exists := tx.RewardValues[coin]; exists {
			return total, fmt.Errorf("%w: %s", ErrDecodeDuplicateKey, coin)
		}
		if i > 0 && coin < prev {
			return total, fmt.Errorf("%w: %s after %s", ErrDecodeUnsortedKeys, coin, prev)
		}
		prev = coin
		{
			field, n, err := scale.DecodeCompact64(dec)
			if err != nil {
				return total, err
			}
			total += n
			if tx.RewardValues == nil {
				tx.RewardValues = make(map[types.CoinType]uint64)
			}
			tx.RewardValues[coin] = field
		}
	}
	{
		field, n, err := scale.DecodeCompact64(dec)
		if err != nil {
			return total, err
		}
		total += n
		tx.Profits = field
	}
	return total, nil
}
