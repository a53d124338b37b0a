package types

import (
	"encoding/hex"
	"fmt"

	"github.com/spacemeshos/go-scale"
	"go.uber.org/zap/zapcore"
)

const (
	// Hash32Length is 32, the expected length of the hash.
	Hash32Length = 32
)

// Hash32 represents the 32-byte blake3 hash of arbitrary data.
type Hash32 [Hash32Length]byte

// Bytes gets the byte representation of the underlying hash.
func (h Hash32) Bytes() []byte { return h[:] }

// Hex converts a hash to a hex string.
func (h Hash32) Hex() string { return hex.EncodeToString(h[:]) }

// String implements the stringer interface and is used also by the logger when
// doing full logging into a file.
func (h Hash32) String() string {
	return h.Hex()
}

// ShortString returns the first 10 characters of the hash, for logging purposes.
func (h Hash32) ShortString() string {
	return h.Hex()[:10]
}

// Empty returns true if hash was never set.
func (h Hash32) Empty() bool {
	return h == Hash32{}
}

// MarshalText returns the hex representation of h.
func (h Hash32) MarshalText() ([]byte, error) {
	return []byte(h.Hex()), nil
}

// UnmarshalText parses a hash in hex syntax.
func (h *Hash32) UnmarshalText(input []byte) error {
	if len(input) != 2*Hash32Length {
		return fmt.Errorf("hash: expected %d hex characters, got %d", 2*Hash32Length, len(input))
	}
	_, err := hex.Decode(h[:], input)
	return err
}

// EncodeScale implements scale codec interface.
func (h *Hash32) EncodeScale(e *scale.Encoder) (int, error) {
	return scale.EncodeByteArray(e, h[:])
}

// DecodeScale implements scale codec interface.
func (h *Hash32) DecodeScale(d *scale.Decoder) (int, error) {
	return scale.DecodeByteArray(d, h[:])
}

// TransactionID is a 32-byte blake3 sum of the signed fields of a transaction, used as an identifier.
type TransactionID Hash32

// EmptyTransactionID is a canonical empty TransactionID.
var EmptyTransactionID = TransactionID{}

// Hash32 returns the TransactionID as a Hash32.
func (id TransactionID) Hash32() Hash32 {
	return Hash32(id)
}

// Bytes returns the TransactionID as a byte slice.
func (id TransactionID) Bytes() []byte {
	return id[:]
}

// String returns a hexadecimal representation of the TransactionID.
func (id TransactionID) String() string {
	return id.Hash32().String()
}

// ShortString returns the first 10 characters of the ID, for logging purposes.
func (id TransactionID) ShortString() string {
	return id.Hash32().ShortString()
}

// MarshalLogObject implements logging interface.
func (id TransactionID) MarshalLogObject(encoder zapcore.ObjectEncoder) error {
	encoder.AddString("tx_id", id.String())
	return nil
}

// EncodeScale implements scale codec interface.
func (id *TransactionID) EncodeScale(e *scale.Encoder) (int, error) {
	return scale.EncodeByteArray(e, id[:])
}

// DecodeScale implements scale codec interface.
func (id *TransactionID) DecodeScale(d *scale.Decoder) (int, error) {
	return scale.DecodeByteArray(d, id[:])
}
