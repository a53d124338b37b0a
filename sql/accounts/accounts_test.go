package accounts

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spacemeshos/go-rewardtx/common/types"
	"github.com/spacemeshos/go-rewardtx/sql"
)

func genAccount(seed byte) types.Account {
	var account types.Account
	account.KeyID[0] = seed
	account.RegID = types.RegID{Height: uint32(seed), Index: 1}
	account.Owner[0] = 0x02
	account.Owner[1] = seed
	account.FreeBcoins = uint64(seed) * 10
	account.FreeScoins = uint64(seed) * 20
	account.FreeFcoins = uint64(seed) * 30
	return account
}

func TestUpdateAndGet(t *testing.T) {
	db := sql.InMemory()
	account := genAccount(1)

	_, err := Get(db, account.KeyID)
	require.ErrorIs(t, err, sql.ErrNotFound)
	has, err := Has(db, account.KeyID)
	require.NoError(t, err)
	require.False(t, has)

	require.NoError(t, Update(db, &account))
	got, err := Get(db, account.KeyID)
	require.NoError(t, err)
	require.Equal(t, account, got)

	account.FreeBcoins = ^uint64(0)
	require.NoError(t, Update(db, &account))
	got, err = Get(db, account.KeyID)
	require.NoError(t, err)
	require.Equal(t, account, got)

	has, err = Has(db, account.KeyID)
	require.NoError(t, err)
	require.True(t, has)
}

func TestLookups(t *testing.T) {
	db := sql.InMemory()
	first, second := genAccount(1), genAccount(2)
	require.NoError(t, Update(db, &first))
	require.NoError(t, Update(db, &second))

	got, err := ByRegID(db, second.RegID)
	require.NoError(t, err)
	require.Equal(t, second, got)

	got, err = ByOwner(db, first.Owner)
	require.NoError(t, err)
	require.Equal(t, first, got)

	_, err = ByRegID(db, types.RegID{Height: 99})
	require.ErrorIs(t, err, sql.ErrNotFound)

	all, err := All(db)
	require.NoError(t, err)
	require.Equal(t, []types.Account{first, second}, all)
}

func TestUnregistered(t *testing.T) {
	db := sql.InMemory()
	var first, second types.Account
	first.KeyID[0] = 1
	second.KeyID[0] = 2
	// null regids don't collide on the unique index
	require.NoError(t, Update(db, &first))
	require.NoError(t, Update(db, &second))

	got, err := Get(db, second.KeyID)
	require.NoError(t, err)
	require.Equal(t, second, got)
}

func TestDuplicateRegID(t *testing.T) {
	db := sql.InMemory()
	first, second := genAccount(1), genAccount(2)
	second.RegID = first.RegID
	require.NoError(t, Update(db, &first))
	require.ErrorIs(t, Update(db, &second), sql.ErrObjectExists)
}
