package metadata

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE metadata (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);`)
	require.NoError(t, err)
	return db
}

func TestSetAndGet_InsertThenGet(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "user", []byte(`{"version":1}`)))

	v, ok, err := r.Get(ctx, "user")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []byte(`{"version":1}`), v)
}

func TestGet_NotExists_ReportsAbsent(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	v, ok, err := r.Get(context.Background(), "absent")
	require.NoError(t, err)
	require.False(t, ok)
	require.Nil(t, v)
}

func TestSet_UpsertOverwritesValue(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "k", []byte("old")))
	require.NoError(t, r.Set(ctx, "k", []byte("new")))

	v, ok, err := r.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []byte("new"), v)
}

func TestSet_NilValueStoredAsEmpty(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "empty", nil))

	v, ok, err := r.Get(ctx, "empty")
	require.NoError(t, err)
	require.True(t, ok)
	require.Empty(t, v)
}

func TestList_ReturnsAllPairs(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "notifications", []byte("true")))
	require.NoError(t, r.Set(ctx, "autoSave", []byte("false")))

	m, err := r.List(ctx)
	require.NoError(t, err)
	assert.Len(t, m, 2)
	assert.Equal(t, []byte("true"), m["notifications"])
	assert.Equal(t, []byte("false"), m["autoSave"])
}

func TestDelete_RemovesKeys_AndIsIdempotent(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "a", []byte{1}))
	require.NoError(t, r.Set(ctx, "b", []byte{2}))
	require.NoError(t, r.Set(ctx, "c", []byte{3}))
	require.NoError(t, r.Delete(ctx, "a", "b"))

	m, err := r.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string][]byte{"c": {3}}, m)

	require.NoError(t, r.Delete(ctx, "a", "b"))
	require.NoError(t, r.Delete(ctx))
}

func TestClear_RemovesAllKeys(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "a", []byte{1}))
	require.NoError(t, r.Set(ctx, "b", []byte{2}))
	require.NoError(t, r.Clear(ctx))
	require.NoError(t, r.Clear(ctx))

	m, err := r.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, m)
}

func newRepoWithMock(t *testing.T) (*SQLiteRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewSQLiteRepository(db), mock
}

func TestGet_DBErrorWrapped(t *testing.T) {
	r, mock := newRepoWithMock(t)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT value FROM metadata WHERE key = ?`)).
		WithArgs("k").
		WillReturnError(errors.New("disk I/O error"))

	v, ok, err := r.Get(context.Background(), "k")
	require.Error(t, err)
	require.False(t, ok)
	require.Nil(t, v)
	require.Contains(t, err.Error(), "failed to get metadata[k]")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSet_DBErrorWrapped(t *testing.T) {
	r, mock := newRepoWithMock(t)
	mock.ExpectExec(`INSERT INTO metadata`).
		WithArgs("k", []byte("v")).
		WillReturnError(errors.New("readonly database"))

	err := r.Set(context.Background(), "k", []byte("v"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to set metadata[k]")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete_DBErrorWrapped(t *testing.T) {
	r, mock := newRepoWithMock(t)
	mock.ExpectExec(`DELETE FROM metadata WHERE key IN \(\?,\?\)`).
		WithArgs("a", "b").
		WillReturnError(errors.New("locked"))

	err := r.Delete(context.Background(), "a", "b")
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to delete metadata")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestClear_DBErrorWrapped(t *testing.T) {
	r, mock := newRepoWithMock(t)
	mock.ExpectExec(`DELETE FROM metadata$`).WillReturnError(errors.New("locked"))

	err := r.Clear(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to clear metadata")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestList_DBErrorWrapped(t *testing.T) {
	r, mock := newRepoWithMock(t)
	mock.ExpectQuery(`SELECT key, value FROM metadata`).WillReturnError(errors.New("gone"))

	_, err := r.List(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to list metadata")
	require.NoError(t, mock.ExpectationsWereMet())
}
