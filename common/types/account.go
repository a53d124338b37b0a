package types

import (
	"errors"
	"fmt"
	"math/bits"

	"go.uber.org/zap/zapcore"
)

// ErrBalanceOverflow is returned when a credit would wrap a balance.
var ErrBalanceOverflow = errors.New("balance overflow")

// Account is the ledger state of a single key.
type Account struct {
	KeyID KeyID
	// RegID is zero until the account is registered.
	RegID RegID
	Owner PubKey

	FreeBcoins uint64
	FreeScoins uint64
	FreeFcoins uint64
}

func (a *Account) balance(coin CoinType) (*uint64, error) {
	switch coin {
	case WICC:
		return &a.FreeBcoins, nil
	case WUSD:
		return &a.FreeScoins, nil
	case WGRT:
		return &a.FreeFcoins, nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownCoinType, uint8(coin))
}

// Balance returns available balance of the coin.
func (a *Account) Balance(coin CoinType) (uint64, error) {
	balance, err := a.balance(coin)
	if err != nil {
		return 0, err
	}
	return *balance, nil
}

// Credit adds amount to the available balance of the coin.
// Balance is left unchanged on error.
func (a *Account) Credit(coin CoinType, amount uint64) error {
	balance, err := a.balance(coin)
	if err != nil {
		return err
	}
	sum, carry := bits.Add64(*balance, amount, 0)
	if carry != 0 {
		return fmt.Errorf("%w: %s %d + %d", ErrBalanceOverflow, coin, *balance, amount)
	}
	*balance = sum
	return nil
}

// MarshalLogObject implements logging interface.
func (a *Account) MarshalLogObject(encoder zapcore.ObjectEncoder) error {
	encoder.AddString("keyid", a.KeyID.String())
	encoder.AddString("regid", a.RegID.String())
	encoder.AddUint64("wicc", a.FreeBcoins)
	encoder.AddUint64("wusd", a.FreeScoins)
	encoder.AddUint64("wgrt", a.FreeFcoins)
	return nil
}
