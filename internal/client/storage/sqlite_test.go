package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func setupStore(t *testing.T) *SQLiteStore {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "store.db")
	db, err := Open(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewSQLiteStore(db)
}

func TestSQLiteStore_SetGet(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "token", []byte("abc")))

	v, err := s.Get(ctx, "token")
	require.NoError(t, err)
	require.Equal(t, []byte("abc"), v)
}

func TestSQLiteStore_GetMissingReturnsNil(t *testing.T) {
	s := setupStore(t)

	v, err := s.Get(context.Background(), "nope")
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestSQLiteStore_SetOverwrites(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", []byte("first")))
	require.NoError(t, s.Set(ctx, "k", []byte("second")))

	v, err := s.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("second"), v)
}

func TestSQLiteStore_SetMany(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "a", []byte("old")))
	require.NoError(t, s.SetMany(ctx, map[string][]byte{
		"a": []byte("1"),
		"b": []byte("2"),
	}))

	all, err := s.List(ctx)
	require.NoError(t, err)
	require.Equal(t, map[string][]byte{"a": []byte("1"), "b": []byte("2")}, all)
}

func TestSQLiteStore_Delete(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", []byte("v")))
	require.NoError(t, s.Delete(ctx, "k"))

	v, err := s.Get(ctx, "k")
	require.NoError(t, err)
	require.Nil(t, v)

	// Deleting an absent key is not an error.
	require.NoError(t, s.Delete(ctx, "k"))
}

func TestSQLiteStore_ListAndClear(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "a", []byte("1")))
	require.NoError(t, s.Set(ctx, "b", []byte("2")))

	all, err := s.List(ctx)
	require.NoError(t, err)
	require.Equal(t, map[string][]byte{"a": []byte("1"), "b": []byte("2")}, all)

	require.NoError(t, s.Clear(ctx))
	all, err = s.List(ctx)
	require.NoError(t, err)
	require.Empty(t, all)
}
