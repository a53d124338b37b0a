package types

import (
	"errors"
	"fmt"

	"github.com/cosmos/btcutil/base58"
)

const (
	// MainnetAddressPrefix is the base58check version byte of mainnet addresses.
	MainnetAddressPrefix byte = 73
	// TestnetAddressPrefix is the base58check version byte of testnet addresses.
	TestnetAddressPrefix byte = 135
)

var (
	// ErrDecodeAddress is returned when an address is not a valid base58check string.
	ErrDecodeAddress = errors.New("error decoding base58check address")
	// ErrUnsupportedNetwork is returned when the address prefix doesn't match the configured network.
	ErrUnsupportedNetwork = errors.New("unsupported network")
)

// Config is the configuration of the address encoding.
type Config struct {
	Prefix byte `mapstructure:"prefix"`
}

// DefaultAddressConfig returns the default configuration of the address encoding.
func DefaultAddressConfig() Config {
	return Config{Prefix: MainnetAddressPrefix}
}

var addressPrefix = MainnetAddressPrefix

// SetAddressPrefix updates the network version byte used for addresses.
func SetAddressPrefix(prefix byte) {
	addressPrefix = prefix
}

// Address returns base58check encoding of the key id.
func (k KeyID) Address() string {
	return base58.CheckEncode(k[:], addressPrefix)
}

// ParseAddress decodes base58check address into KeyID.
func ParseAddress(src string) (KeyID, error) {
	var id KeyID
	payload, version, err := base58.CheckDecode(src)
	if err != nil {
		return id, fmt.Errorf("%w: %w", ErrDecodeAddress, err)
	}
	if version != addressPrefix {
		return id, fmt.Errorf("%w: expected prefix %d, got %d", ErrUnsupportedNetwork, addressPrefix, version)
	}
	if len(payload) != KeyIDSize {
		return id, fmt.Errorf("%w: expected %d bytes, got %d", ErrDecodeAddress, KeyIDSize, len(payload))
	}
	copy(id[:], payload)
	return id, nil
}
