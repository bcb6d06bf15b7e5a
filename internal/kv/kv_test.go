package kv

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"
)

func newSQLite(t *testing.T) Store {
	t.Helper()
	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "kv.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func newRedis(t *testing.T) Store {
	t.Helper()
	mr := miniredis.RunT(t)
	s, err := NewRedisStore(context.Background(), RedisConfig{Addr: mr.Addr()})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func backends(t *testing.T) map[string]Store {
	return map[string]Store{
		"sqlite": newSQLite(t),
		"redis":  newRedis(t),
	}
}

func TestLoadMissingKeyReturnsFallback(t *testing.T) {
	ctx := context.Background()
	fallback := []byte(`{"value":0}`)

	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			got := store.Load(ctx, "absent", fallback)
			require.Equal(t, fallback, got)
		})
	}
}

func TestSaveThenLoad(t *testing.T) {
	ctx := context.Background()

	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, store.Save(ctx, "counter", []byte(`{"value":3}`)))
			got := store.Load(ctx, "counter", nil)
			require.JSONEq(t, `{"value":3}`, string(got))
		})
	}
}

func TestSaveOverwrites(t *testing.T) {
	ctx := context.Background()

	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, store.Save(ctx, "counter", []byte(`{"value":1}`)))
			require.NoError(t, store.Save(ctx, "counter", []byte(`{"value":2}`)))
			got := store.Load(ctx, "counter", nil)
			require.JSONEq(t, `{"value":2}`, string(got))
		})
	}
}

func TestKeysAreIndependent(t *testing.T) {
	ctx := context.Background()

	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, store.Save(ctx, "counter", []byte(`{"value":7}`)))
			require.NoError(t, store.Save(ctx, "notes", []byte(`{"notes":[]}`)))
			require.JSONEq(t, `{"value":7}`, string(store.Load(ctx, "counter", nil)))
			require.JSONEq(t, `{"notes":[]}`, string(store.Load(ctx, "notes", nil)))
		})
	}
}
