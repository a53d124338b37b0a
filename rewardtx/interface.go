package rewardtx

import (
	"github.com/spacemeshos/go-rewardtx/common/types"
)

//go:generate mockgen -typed -package=mocks -destination=./mocks/mocks.go -source=./interface.go

// KeyIDResolver resolves an identity to the canonical account key.
type KeyIDResolver interface {
	GetKeyID(types.UserID) (types.KeyID, error)
}

// AccountCache is the ledger that holds account balances.
type AccountCache interface {
	KeyIDResolver
	GetAccount(types.UserID) (types.Account, error)
	SetAccount(types.KeyID, types.Account) error
}

// AddressIndex records which accounts were touched by a transaction.
type AddressIndex interface {
	SaveTxAddresses(height int32, phase Phase, txid types.TransactionID, keyIDs []types.KeyID) error
}

// ValidationState receives failure reports.
type ValidationState interface {
	Reject(Rejection)
}

// Cache bundles collaborators that a reward transaction is executed against.
// Transaction boundaries are owned by the caller.
type Cache struct {
	Accounts    AccountCache
	TxAddresses AddressIndex
}
