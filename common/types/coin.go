package types

import (
	"errors"
	"fmt"
)

// ErrUnknownCoinType is returned for coin tags outside of the known set.
var ErrUnknownCoinType = errors.New("unknown coin type")

// CoinType tags a denomination.
type CoinType uint8

const (
	// WICC is the native coin.
	WICC CoinType = 1
	// WGRT is the fcoin.
	WGRT CoinType = 2
	// WUSD is the stable coin.
	WUSD CoinType = 3
)

// Known returns true for WICC, WGRT and WUSD.
func (c CoinType) Known() bool {
	switch c {
	case WICC, WGRT, WUSD:
		return true
	}
	return false
}

// String returns coin symbol.
func (c CoinType) String() string {
	switch c {
	case WICC:
		return "WICC"
	case WGRT:
		return "WGRT"
	case WUSD:
		return "WUSD"
	}
	return fmt.Sprintf("coin(%d)", uint8(c))
}

// ParseCoinType is the inverse of String for known coins.
func ParseCoinType(s string) (CoinType, error) {
	for _, c := range []CoinType{WICC, WGRT, WUSD} {
		if c.String() == s {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCoinType, s)
}
