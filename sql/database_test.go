package sql

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func testTables(db Executor) error {
	if _, err := db.Exec(`create table testing1 (
		id varchar primary key,
		field int
	)`, nil, nil); err != nil {
		return err
	}
	return nil
}

func testURI(tb testing.TB) string {
	tb.Helper()
	return "file:" + filepath.Join(tb.TempDir(), "state.sql")
}

func TestTransactionIsolation(t *testing.T) {
	db := InMemory(WithMigrations(testTables))

	tx, err := db.Tx(context.Background())
	require.NoError(t, err)

	key := "dsada"
	_, err = tx.Exec("insert into testing1(id, field) values (?1, ?2)", func(stmt *Statement) {
		stmt.BindText(1, key)
		stmt.BindInt64(2, 20)
	}, nil)
	require.NoError(t, err)

	rows, err := tx.Exec("select 1 from testing1 where id = ?1", func(stmt *Statement) {
		stmt.BindText(1, key)
	}, nil)
	require.NoError(t, err)
	require.Equal(t, 1, rows)

	require.NoError(t, tx.Release())

	rows, err = db.Exec("select 1 from testing1 where id = ?1", func(stmt *Statement) {
		stmt.BindText(1, key)
	}, nil)
	require.NoError(t, err)
	require.Equal(t, 0, rows)
}

func TestWithTx(t *testing.T) {
	db := InMemory(WithMigrations(testTables), WithLatencyMetering(true))
	insert := func(tx *Tx, id string) error {
		_, err := tx.Exec("insert into testing1(id, field) values (?1, 1)", func(stmt *Statement) {
			stmt.BindText(1, id)
		}, nil)
		return err
	}

	failure := errors.New("abort")
	err := db.WithTx(context.Background(), func(tx *Tx) error {
		require.NoError(t, insert(tx, "rolled back"))
		return failure
	})
	require.ErrorIs(t, err, failure)

	require.NoError(t, db.WithTx(context.Background(), func(tx *Tx) error {
		return insert(tx, "committed")
	}))

	var ids []string
	_, err = db.Exec("select id from testing1", nil, func(stmt *Statement) bool {
		ids = append(ids, stmt.ColumnText(0))
		return true
	})
	require.NoError(t, err)
	require.Equal(t, []string{"committed"}, ids)
}

func TestObjectExists(t *testing.T) {
	db := InMemory(WithMigrations(testTables))
	insert := func() error {
		_, err := db.Exec("insert into testing1(id, field) values ('a', 1)", nil, nil)
		return err
	}
	require.NoError(t, insert())
	require.ErrorIs(t, insert(), ErrObjectExists)
}

func TestDecoderStopsIteration(t *testing.T) {
	db := InMemory(WithMigrations(testTables))
	for _, id := range []string{"a", "b", "c"} {
		_, err := db.Exec("insert into testing1(id, field) values (?1, 1)", func(stmt *Statement) {
			stmt.BindText(1, id)
		}, nil)
		require.NoError(t, err)
	}
	rows, err := db.Exec("select id from testing1", nil, func(*Statement) bool {
		return false
	})
	require.NoError(t, err)
	require.Equal(t, 1, rows)
}

func TestPersistentReopen(t *testing.T) {
	uri := testURI(t)
	db, err := Open(uri, WithLogger(zaptest.NewLogger(t)))
	require.NoError(t, err)
	_, err = db.Exec("insert into accounts(keyid) values (?1)", func(stmt *Statement) {
		stmt.BindBytes(1, make([]byte, 20))
	}, nil)
	require.NoError(t, err)
	require.NoError(t, db.Close())
	require.NoError(t, db.Close())

	db, err = Open(uri, WithLogger(zaptest.NewLogger(t)))
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, db.Close()) })
	rows, err := db.Exec("select 1 from accounts", nil, nil)
	require.NoError(t, err)
	require.Equal(t, 1, rows)
}
