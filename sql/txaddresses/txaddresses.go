package txaddresses

import (
	"fmt"

	"github.com/spacemeshos/go-rewardtx/common/types"
	"github.com/spacemeshos/go-rewardtx/sql"
)

// Entry is a single touched address.
type Entry struct {
	KeyID  types.KeyID
	TxID   types.TransactionID
	Height int32
	Phase  int8
}

// Add records that the transaction touched the key id. Repeated adds are ignored.
func Add(db sql.Executor, entry Entry) error {
	if _, err := db.Exec(`insert into tx_addresses (keyid, txid, height, phase)
		values (?1, ?2, ?3, ?4)
		on conflict do nothing;`,
		func(stmt *sql.Statement) {
			stmt.BindBytes(1, entry.KeyID.Bytes())
			stmt.BindBytes(2, entry.TxID.Bytes())
			stmt.BindInt64(3, int64(entry.Height))
			stmt.BindInt64(4, int64(entry.Phase))
		}, nil); err != nil {
		return fmt.Errorf("add %s for %s: %w", entry.KeyID, entry.TxID, err)
	}
	return nil
}

func decodeEntry(stmt *sql.Statement) Entry {
	var entry Entry
	stmt.ColumnBytes(0, entry.KeyID[:])
	stmt.ColumnBytes(1, entry.TxID[:])
	entry.Height = int32(stmt.ColumnInt64(2))
	entry.Phase = int8(stmt.ColumnInt64(3))
	return entry
}

// ByKeyID returns entries of the key id ordered by height.
func ByKeyID(db sql.Executor, keyID types.KeyID) ([]Entry, error) {
	var rst []Entry
	if _, err := db.Exec(`select keyid, txid, height, phase from tx_addresses
		where keyid = ?1 order by height, txid;`,
		func(stmt *sql.Statement) {
			stmt.BindBytes(1, keyID.Bytes())
		},
		func(stmt *sql.Statement) bool {
			rst = append(rst, decodeEntry(stmt))
			return true
		}); err != nil {
		return nil, fmt.Errorf("entries of %s: %w", keyID, err)
	}
	return rst, nil
}

// ByHeight returns entries recorded at the height.
func ByHeight(db sql.Executor, height int32) ([]Entry, error) {
	var rst []Entry
	if _, err := db.Exec(`select keyid, txid, height, phase from tx_addresses
		where height = ?1 order by keyid, txid;`,
		func(stmt *sql.Statement) {
			stmt.BindInt64(1, int64(height))
		},
		func(stmt *sql.Statement) bool {
			rst = append(rst, decodeEntry(stmt))
			return true
		}); err != nil {
		return nil, fmt.Errorf("entries at %d: %w", height, err)
	}
	return rst, nil
}
