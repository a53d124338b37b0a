package types

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/minio/sha256-simd"
	"github.com/spacemeshos/go-scale"
	"go.uber.org/zap/zapcore"
	"golang.org/x/crypto/ripemd160" //nolint:staticcheck
)

const (
	// RegIDSize is the size of the encoded registration id.
	RegIDSize = 6
	// PubKeySize is the size of a compressed secp256k1 public key.
	PubKeySize = 33
	// KeyIDSize is the size of the public key hash.
	KeyIDSize = 20
)

// ErrMalformedIdentity is returned when identity bytes can't be interpreted as a
// registration id or a valid public key.
var ErrMalformedIdentity = errors.New("malformed identity")

// RegID is a short account identifier assigned when the account is registered on chain:
// the height of the registering block and the index of the transaction in that block.
type RegID struct {
	Height uint32
	Index  uint16
}

// RegIDFromBytes decodes 6 little endian bytes into RegID.
func RegIDFromBytes(b []byte) (RegID, error) {
	if len(b) != RegIDSize {
		return RegID{}, fmt.Errorf("%w: regid expects %d bytes, got %d", ErrMalformedIdentity, RegIDSize, len(b))
	}
	return RegID{
		Height: binary.LittleEndian.Uint32(b),
		Index:  binary.LittleEndian.Uint16(b[4:]),
	}, nil
}

// ParseRegID parses RegID from `height-index` form.
func ParseRegID(s string) (RegID, error) {
	height, index, ok := strings.Cut(s, "-")
	if !ok {
		return RegID{}, fmt.Errorf("%w: regid %q is not in height-index form", ErrMalformedIdentity, s)
	}
	h, err := strconv.ParseUint(height, 10, 32)
	if err != nil {
		return RegID{}, fmt.Errorf("%w: regid height %q: %w", ErrMalformedIdentity, height, err)
	}
	i, err := strconv.ParseUint(index, 10, 16)
	if err != nil {
		return RegID{}, fmt.Errorf("%w: regid index %q: %w", ErrMalformedIdentity, index, err)
	}
	return RegID{Height: uint32(h), Index: uint16(i)}, nil
}

// Bytes returns 6 byte little endian representation.
func (r RegID) Bytes() []byte {
	var buf [RegIDSize]byte
	binary.LittleEndian.PutUint32(buf[:], r.Height)
	binary.LittleEndian.PutUint16(buf[4:], r.Index)
	return buf[:]
}

// String returns `height-index`.
func (r RegID) String() string {
	return fmt.Sprintf("%d-%d", r.Height, r.Index)
}

// PubKey is a compressed secp256k1 public key.
type PubKey [PubKeySize]byte

// PubKeyFromBytes copies b into PubKey.
func PubKeyFromBytes(b []byte) (PubKey, error) {
	var pub PubKey
	if len(b) != PubKeySize {
		return pub, fmt.Errorf("%w: pubkey expects %d bytes, got %d", ErrMalformedIdentity, PubKeySize, len(b))
	}
	copy(pub[:], b)
	return pub, nil
}

// Empty is true if key was never set.
func (p PubKey) Empty() bool {
	return p == PubKey{}
}

// Valid returns true if the key is a point on the secp256k1 curve.
func (p PubKey) Valid() bool {
	_, err := secp256k1.ParsePubKey(p[:])
	return err == nil
}

// KeyID returns RIPEMD160(SHA256(pubkey)).
func (p PubKey) KeyID() KeyID {
	sum := sha256.Sum256(p[:])
	hasher := ripemd160.New()
	hasher.Write(sum[:])
	var id KeyID
	hasher.Sum(id[:0])
	return id
}

// String returns hex encoded key.
func (p PubKey) String() string {
	return hex.EncodeToString(p[:])
}

// KeyID is the canonical account key.
type KeyID [KeyIDSize]byte

// Empty is true if key id was never set.
func (k KeyID) Empty() bool {
	return k == KeyID{}
}

// Bytes returns key id as a slice.
func (k KeyID) Bytes() []byte {
	return k[:]
}

// String returns hex encoded key id.
func (k KeyID) String() string {
	return hex.EncodeToString(k[:])
}

// UserIDKind selects which case of the UserID is populated.
type UserIDKind uint8

const (
	// RegIDKind is a UserID that carries a registration id.
	RegIDKind UserIDKind = iota + 1
	// PubKeyKind is a UserID that carries a raw public key.
	PubKeyKind
)

// UserID identifies the recipient of a transaction either by a registration id
// or by a raw public key.
type UserID struct {
	Kind   UserIDKind
	RegID  RegID
	PubKey PubKey
}

// NewRegUserID returns UserID of RegIDKind.
func NewRegUserID(id RegID) UserID {
	return UserID{Kind: RegIDKind, RegID: id}
}

// NewPubKeyUserID returns UserID of PubKeyKind.
func NewPubKeyUserID(pub PubKey) UserID {
	return UserID{Kind: PubKeyKind, PubKey: pub}
}

// UserIDFromBytes picks the case by the length of the identity bytes:
// anything longer than a registration id must be a public key.
func UserIDFromBytes(b []byte) (UserID, error) {
	if len(b) > RegIDSize {
		pub, err := PubKeyFromBytes(b)
		if err != nil {
			return UserID{}, err
		}
		return NewPubKeyUserID(pub), nil
	}
	reg, err := RegIDFromBytes(b)
	if err != nil {
		return UserID{}, err
	}
	return NewRegUserID(reg), nil
}

// ParseUserID parses either `height-index` or a hex encoded public key.
func ParseUserID(s string) (UserID, error) {
	if strings.Contains(s, "-") {
		reg, err := ParseRegID(s)
		if err != nil {
			return UserID{}, err
		}
		return NewRegUserID(reg), nil
	}
	raw, err := hex.DecodeString(s)
	if err != nil {
		return UserID{}, fmt.Errorf("%w: %w", ErrMalformedIdentity, err)
	}
	return UserIDFromBytes(raw)
}

// Bytes returns identity bytes for the populated case.
func (u UserID) Bytes() []byte {
	switch u.Kind {
	case RegIDKind:
		return u.RegID.Bytes()
	case PubKeyKind:
		return u.PubKey[:]
	}
	return nil
}

// String returns `height-index` for registration ids and hex for public keys.
func (u UserID) String() string {
	switch u.Kind {
	case RegIDKind:
		return u.RegID.String()
	case PubKeyKind:
		return u.PubKey.String()
	}
	return ""
}

// Validate applies the rule of the populated case. Registration ids are checked
// by resolving them against the ledger, public keys must be on the curve.
func (u UserID) Validate() error {
	switch u.Kind {
	case RegIDKind:
		return nil
	case PubKeyKind:
		if !u.PubKey.Valid() {
			return fmt.Errorf("%w: pubkey %s is not on the curve", ErrMalformedIdentity, u.PubKey)
		}
		return nil
	}
	return fmt.Errorf("%w: unknown kind %d", ErrMalformedIdentity, u.Kind)
}

// MarshalLogObject implements logging interface.
func (u UserID) MarshalLogObject(encoder zapcore.ObjectEncoder) error {
	switch u.Kind {
	case RegIDKind:
		encoder.AddString("regid", u.RegID.String())
	case PubKeyKind:
		encoder.AddString("pubkey", u.PubKey.String())
	}
	return nil
}

// EncodeScale writes identity bytes with compact length prefix.
func (u *UserID) EncodeScale(e *scale.Encoder) (int, error) {
	b := u.Bytes()
	if b == nil {
		return 0, fmt.Errorf("%w: unknown kind %d", ErrMalformedIdentity, u.Kind)
	}
	return scale.EncodeByteSliceWithLimit(e, b, PubKeySize)
}

// DecodeScale reads length prefixed identity bytes and selects the case by length.
func (u *UserID) DecodeScale(d *scale.Decoder) (int, error) {
	b, n, err := scale.DecodeByteSliceWithLimit(d, PubKeySize)
	if errors.Is(err, scale.ErrDecodeTooManyElements) {
		return n, fmt.Errorf("%w: %w", ErrMalformedIdentity, err)
	} else if err != nil {
		return n, err
	}
	switch len(b) {
	case RegIDSize, PubKeySize:
	default:
		return n, fmt.Errorf("%w: unexpected identity length %d", ErrMalformedIdentity, len(b))
	}
	id, err := UserIDFromBytes(b)
	if err != nil {
		return n, err
	}
	*u = id
	return n, nil
}
