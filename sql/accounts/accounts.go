package accounts

import (
	"fmt"

	"github.com/spacemeshos/go-rewardtx/common/types"
	"github.com/spacemeshos/go-rewardtx/sql"
)

const fields = "keyid, regid, owner, free_bcoins, free_scoins, free_fcoins"

func load(db sql.Executor, query string, enc sql.Encoder) (types.Account, error) {
	var (
		account types.Account
		err     error
	)
	rows, execErr := db.Exec(query, enc, func(stmt *sql.Statement) bool {
		stmt.ColumnBytes(0, account.KeyID[:])
		if !sql.IsNull(stmt, 1) {
			regid := make([]byte, stmt.ColumnLen(1))
			stmt.ColumnBytes(1, regid)
			account.RegID, err = types.RegIDFromBytes(regid)
		}
		if !sql.IsNull(stmt, 2) {
			stmt.ColumnBytes(2, account.Owner[:])
		}
		account.FreeBcoins = uint64(stmt.ColumnInt64(3))
		account.FreeScoins = uint64(stmt.ColumnInt64(4))
		account.FreeFcoins = uint64(stmt.ColumnInt64(5))
		return false
	})
	if execErr != nil {
		return types.Account{}, execErr
	}
	if rows == 0 {
		return types.Account{}, sql.ErrNotFound
	}
	if err != nil {
		return types.Account{}, err
	}
	return account, nil
}

// Get account by key id.
func Get(db sql.Executor, keyID types.KeyID) (types.Account, error) {
	account, err := load(db, "select "+fields+" from accounts where keyid = ?1;",
		func(stmt *sql.Statement) {
			stmt.BindBytes(1, keyID.Bytes())
		},
	)
	if err != nil {
		return types.Account{}, fmt.Errorf("load %s: %w", keyID, err)
	}
	return account, nil
}

// ByRegID loads the account registered with the id.
func ByRegID(db sql.Executor, regID types.RegID) (types.Account, error) {
	account, err := load(db, "select "+fields+" from accounts where regid = ?1;",
		func(stmt *sql.Statement) {
			stmt.BindBytes(1, regID.Bytes())
		},
	)
	if err != nil {
		return types.Account{}, fmt.Errorf("load regid %s: %w", regID, err)
	}
	return account, nil
}

// ByOwner loads the account owned by the public key.
func ByOwner(db sql.Executor, owner types.PubKey) (types.Account, error) {
	account, err := load(db, "select "+fields+" from accounts where owner = ?1;",
		func(stmt *sql.Statement) {
			stmt.BindBytes(1, owner[:])
		},
	)
	if err != nil {
		return types.Account{}, fmt.Errorf("load owner %s: %w", owner, err)
	}
	return account, nil
}

// Has the account in the database.
func Has(db sql.Executor, keyID types.KeyID) (bool, error) {
	rows, err := db.Exec("select 1 from accounts where keyid = ?1;",
		func(stmt *sql.Statement) {
			stmt.BindBytes(1, keyID.Bytes())
		}, nil,
	)
	if err != nil {
		return false, fmt.Errorf("has %s: %w", keyID, err)
	}
	return rows > 0, nil
}

// Update inserts the account or overwrites its state.
// Zero RegID and empty Owner are stored as nulls.
func Update(db sql.Executor, account *types.Account) error {
	_, err := db.Exec(`insert into accounts (`+fields+`)
		values (?1, ?2, ?3, ?4, ?5, ?6)
		on conflict (keyid) do update set
			regid = excluded.regid,
			owner = excluded.owner,
			free_bcoins = excluded.free_bcoins,
			free_scoins = excluded.free_scoins,
			free_fcoins = excluded.free_fcoins;`,
		func(stmt *sql.Statement) {
			stmt.BindBytes(1, account.KeyID.Bytes())
			if account.RegID == (types.RegID{}) {
				stmt.BindNull(2)
			} else {
				stmt.BindBytes(2, account.RegID.Bytes())
			}
			if account.Owner.Empty() {
				stmt.BindNull(3)
			} else {
				stmt.BindBytes(3, account.Owner[:])
			}
			stmt.BindInt64(4, int64(account.FreeBcoins))
			stmt.BindInt64(5, int64(account.FreeScoins))
			stmt.BindInt64(6, int64(account.FreeFcoins))
		}, nil)
	if err != nil {
		return fmt.Errorf("update %s: %w", account.KeyID, err)
	}
	return nil
}

// All returns all accounts ordered by key id.
func All(db sql.Executor) ([]types.Account, error) {
	var (
		rst []types.Account
		err error
	)
	_, execErr := db.Exec("select "+fields+" from accounts order by keyid;", nil,
		func(stmt *sql.Statement) bool {
			var account types.Account
			stmt.ColumnBytes(0, account.KeyID[:])
			if !sql.IsNull(stmt, 1) {
				regid := make([]byte, stmt.ColumnLen(1))
				stmt.ColumnBytes(1, regid)
				if account.RegID, err = types.RegIDFromBytes(regid); err != nil {
					return false
				}
			}
			if !sql.IsNull(stmt, 2) {
				stmt.ColumnBytes(2, account.Owner[:])
			}
			account.FreeBcoins = uint64(stmt.ColumnInt64(3))
			account.FreeScoins = uint64(stmt.ColumnInt64(4))
			account.FreeFcoins = uint64(stmt.ColumnInt64(5))
			rst = append(rst, account)
			return true
		})
	if execErr != nil {
		return nil, fmt.Errorf("load all accounts: %w", execErr)
	}
	if err != nil {
		return nil, fmt.Errorf("load all accounts: %w", err)
	}
	return rst, nil
}
