package txaddresses

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spacemeshos/go-rewardtx/common/types"
	"github.com/spacemeshos/go-rewardtx/sql"
)

func TestAdd(t *testing.T) {
	db := sql.InMemory()
	var (
		first, second types.KeyID
		tx1, tx2      types.TransactionID
	)
	first[0], second[0] = 1, 2
	tx1[0], tx2[0] = 1, 2

	entries := []Entry{
		{KeyID: first, TxID: tx1, Height: 10},
		{KeyID: first, TxID: tx2, Height: 11},
		{KeyID: second, TxID: tx2, Height: 11},
	}
	for _, entry := range entries {
		require.NoError(t, Add(db, entry))
		require.NoError(t, Add(db, entry))
	}

	got, err := ByKeyID(db, first)
	require.NoError(t, err)
	require.Equal(t, entries[:2], got)

	got, err = ByHeight(db, 11)
	require.NoError(t, err)
	require.Equal(t, entries[1:], got)

	got, err = ByHeight(db, 12)
	require.NoError(t, err)
	require.Empty(t, got)
}
