package rewardtx

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/spacemeshos/go-rewardtx/common/types"
)

// Opt for configuring Executor.
type Opt func(*Executor)

// WithLogger configures logger for the executor.
func WithLogger(logger *zap.Logger) Opt {
	return func(e *Executor) {
		e.logger = logger
	}
}

// NewExecutor returns Executor.
func NewExecutor(opts ...Opt) *Executor {
	e := &Executor{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Executor applies reward transactions to the ledger.
// It holds no state between calls and is safe for concurrent use as long as the
// collaborators are.
type Executor struct {
	logger *zap.Logger
}

// Check runs context free validation of the record.
func (e *Executor) Check(tx Reward, height int32, state ValidationState) error {
	if err := tx.CheckTx(height); err != nil {
		return Reject(state, err)
	}
	return nil
}

// Execute runs a single pass of the transaction at the phase.
//
// Provisional pass writes the recipient account back unchanged and records its key id
// in the address index. Final pass credits the recipient and writes the account back.
// Every failure is reported to state, nothing is written when a credit fails.
func (e *Executor) Execute(
	tx Reward,
	height int32,
	phase Phase,
	cache Cache,
	state ValidationState,
) error {
	if !phase.Valid() {
		return Reject(state, fmt.Errorf("%w: %s", ErrInvalidPhase, phase))
	}
	uid := tx.Recipient()
	account, err := cache.Accounts.GetAccount(uid)
	if err != nil {
		return Reject(state, fmt.Errorf("%w: %s: %w", ErrAccountRead, uid, err))
	}
	before := account
	if phase == Final {
		updated := account
		if err := tx.credit(&updated); err != nil {
			return Reject(state, fmt.Errorf("credit %s: %w", uid, err))
		}
		account = updated
	}
	if err := cache.Accounts.SetAccount(account.KeyID, account); err != nil {
		return Reject(state, fmt.Errorf("%w: %s: %w", ErrAccountWrite, account.KeyID, err))
	}
	if phase == Provisional {
		txid, err := tx.SigHash(false)
		if err != nil {
			return Reject(state, err)
		}
		err = cache.TxAddresses.SaveTxAddresses(height, phase, txid, []types.KeyID{account.KeyID})
		if err != nil {
			return Reject(state, fmt.Errorf("%w: %s: %w", ErrTxAddresses, txid, err))
		}
	}
	executed.WithLabelValues(tx.Type().String(), phase.String()).Inc()
	if phase == Final {
		for _, coin := range []types.CoinType{types.WICC, types.WGRT, types.WUSD} {
			was, _ := before.Balance(coin)
			now, _ := account.Balance(coin)
			if now > was {
				credited.WithLabelValues(coin.String()).Add(float64(now - was))
			}
		}
	}
	e.logger.Debug("executed reward tx",
		zap.Int32("height", height),
		zap.Stringer("phase", phase),
		zap.Object("tx", tx),
		zap.Object("account", &account),
	)
	return nil
}
