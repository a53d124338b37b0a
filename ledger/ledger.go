// Package ledger implements account and address index collaborators of the reward
// executor on top of the sqlite database.
package ledger

import (
	"errors"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"github.com/spacemeshos/go-rewardtx/common/types"
	"github.com/spacemeshos/go-rewardtx/rewardtx"
	"github.com/spacemeshos/go-rewardtx/sql"
	"github.com/spacemeshos/go-rewardtx/sql/accounts"
	"github.com/spacemeshos/go-rewardtx/sql/txaddresses"
)

// ErrKeyIDMismatch is returned when an account is written under a different key id.
var ErrKeyIDMismatch = errors.New("account key id mismatch")

// DefaultCacheSize is the number of cached registration ids.
const DefaultCacheSize = 1024

// Config for the ledger.
type Config struct {
	CacheSize int `mapstructure:"cache-size"`
}

// DefaultConfig returns default ledger config.
func DefaultConfig() Config {
	return Config{CacheSize: DefaultCacheSize}
}

// Opt for configuring Ledger.
type Opt func(*Ledger)

// WithLogger configures logger for the ledger.
func WithLogger(logger *zap.Logger) Opt {
	return func(l *Ledger) {
		l.logger = logger
	}
}

// WithConfig overwrites default config.
func WithConfig(cfg Config) Opt {
	return func(l *Ledger) {
		l.cfg = cfg
	}
}

// Ledger serves accounts and records touched addresses.
// Transaction boundaries are owned by the caller through the executor passed to New.
type Ledger struct {
	logger *zap.Logger
	cfg    Config
	db     sql.Executor
	// registration id to key id, populated from reads
	regids *lru.Cache[types.RegID, types.KeyID]
}

// New returns Ledger that executes queries with db.
func New(db sql.Executor, opts ...Opt) (*Ledger, error) {
	l := &Ledger{
		logger: zap.NewNop(),
		cfg:    DefaultConfig(),
		db:     db,
	}
	for _, opt := range opts {
		opt(l)
	}
	cache, err := lru.New[types.RegID, types.KeyID](l.cfg.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("create regid cache: %w", err)
	}
	l.regids = cache
	return l, nil
}

// WithExecutor returns Ledger that shares the cache and runs queries with db.
func (l *Ledger) WithExecutor(db sql.Executor) *Ledger {
	return &Ledger{
		logger: l.logger,
		cfg:    l.cfg,
		db:     db,
		regids: l.regids,
	}
}

// GetKeyID resolves registration ids through the accounts table. Public keys resolve
// to their hash when an account with that key id exists.
func (l *Ledger) GetKeyID(uid types.UserID) (types.KeyID, error) {
	switch uid.Kind {
	case types.RegIDKind:
		if keyID, ok := l.regids.Get(uid.RegID); ok {
			return keyID, nil
		}
		account, err := accounts.ByRegID(l.db, uid.RegID)
		if err != nil {
			return types.KeyID{}, err
		}
		l.regids.Add(uid.RegID, account.KeyID)
		return account.KeyID, nil
	case types.PubKeyKind:
		if err := uid.Validate(); err != nil {
			return types.KeyID{}, err
		}
		keyID := uid.PubKey.KeyID()
		exists, err := accounts.Has(l.db, keyID)
		if err != nil {
			return types.KeyID{}, err
		}
		if !exists {
			return types.KeyID{}, fmt.Errorf("%w: account %s", sql.ErrNotFound, keyID)
		}
		return keyID, nil
	}
	return types.KeyID{}, fmt.Errorf("%w: unknown kind %d", types.ErrMalformedIdentity, uid.Kind)
}

// GetAccount loads account of the identity.
func (l *Ledger) GetAccount(uid types.UserID) (types.Account, error) {
	keyID, err := l.GetKeyID(uid)
	if err != nil {
		return types.Account{}, err
	}
	return accounts.Get(l.db, keyID)
}

// SetAccount writes the account.
func (l *Ledger) SetAccount(keyID types.KeyID, account types.Account) error {
	if account.KeyID != keyID {
		return fmt.Errorf("%w: %s != %s", ErrKeyIDMismatch, account.KeyID, keyID)
	}
	if err := accounts.Update(l.db, &account); err != nil {
		return err
	}
	l.logger.Debug("account updated", zap.Object("account", &account))
	return nil
}

// SaveTxAddresses records key ids touched by the transaction.
func (l *Ledger) SaveTxAddresses(
	height int32,
	phase rewardtx.Phase,
	txid types.TransactionID,
	keyIDs []types.KeyID,
) error {
	for _, keyID := range keyIDs {
		if err := txaddresses.Add(l.db, txaddresses.Entry{
			KeyID:  keyID,
			TxID:   txid,
			Height: height,
			Phase:  int8(phase),
		}); err != nil {
			return err
		}
	}
	return nil
}

// Register creates an account for the public key with the registration id.
func (l *Ledger) Register(regID types.RegID, owner types.PubKey) (types.Account, error) {
	if !owner.Valid() {
		return types.Account{}, fmt.Errorf("%w: pubkey %s is not on the curve", types.ErrMalformedIdentity, owner)
	}
	account := types.Account{KeyID: owner.KeyID(), RegID: regID, Owner: owner}
	exists, err := accounts.Has(l.db, account.KeyID)
	if err != nil {
		return types.Account{}, err
	}
	if exists {
		return types.Account{}, fmt.Errorf("%w: account %s", sql.ErrObjectExists, account.KeyID)
	}
	if err := accounts.Update(l.db, &account); err != nil {
		return types.Account{}, err
	}
	l.logger.Info("account registered", zap.Object("account", &account))
	return account, nil
}

var (
	_ rewardtx.AccountCache = (*Ledger)(nil)
	_ rewardtx.AddressIndex = (*Ledger)(nil)
)
