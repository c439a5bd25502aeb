package store

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func backends(t *testing.T) map[string]ChunkStore {
	t.Helper()
	fsStore, err := NewFSStore(t.TempDir())
	require.NoError(t, err)
	pebbleStore, err := NewPebbleStore(t.TempDir())
	require.NoError(t, err)
	return map[string]ChunkStore{
		"memory": NewMemoryStore(),
		"fs":     fsStore,
		"pebble": pebbleStore,
	}
}

func TestChunkStore_PutGetDelete(t *testing.T) {
	ctx := context.Background()
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			defer s.Close()

			_, err := s.Get(ctx, "c/0/0")
			assert.ErrorIs(t, err, ErrChunkNotFound)

			data := []byte{1, 2, 3, 4}
			require.NoError(t, s.Put(ctx, "c/0/0", data))

			got, err := s.Get(ctx, "c/0/0")
			require.NoError(t, err)
			assert.Equal(t, data, got)

			// Overwrite.
			require.NoError(t, s.Put(ctx, "c/0/0", []byte{9}))
			got, err = s.Get(ctx, "c/0/0")
			require.NoError(t, err)
			assert.Equal(t, []byte{9}, got)

			require.NoError(t, s.Delete(ctx, "c/0/0"))
			_, err = s.Get(ctx, "c/0/0")
			assert.ErrorIs(t, err, ErrChunkNotFound)

			assert.ErrorIs(t, s.Delete(ctx, "c/0/0"), ErrChunkNotFound)
		})
	}
}

func TestChunkStore_List(t *testing.T) {
	ctx := context.Background()
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			defer s.Close()

			require.NoError(t, s.Put(ctx, "c/0/0", []byte{1}))
			require.NoError(t, s.Put(ctx, "c/0/1", []byte{2}))
			require.NoError(t, s.Put(ctx, "c/1/0", []byte{3}))

			keys, err := s.List(ctx, "")
			require.NoError(t, err)
			sort.Strings(keys)
			assert.Equal(t, []string{"c/0/0", "c/0/1", "c/1/0"}, keys)

			keys, err = s.List(ctx, "c/0")
			require.NoError(t, err)
			sort.Strings(keys)
			assert.Equal(t, []string{"c/0/0", "c/0/1"}, keys)

			keys, err = s.List(ctx, "x")
			require.NoError(t, err)
			assert.Empty(t, keys)
		})
	}
}

func TestChunkStore_DotSeparatedKeys(t *testing.T) {
	ctx := context.Background()
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			defer s.Close()

			require.NoError(t, s.Put(ctx, "0.1.2", []byte{7}))
			got, err := s.Get(ctx, "0.1.2")
			require.NoError(t, err)
			assert.Equal(t, []byte{7}, got)

			keys, err := s.List(ctx, "0.")
			require.NoError(t, err)
			assert.Equal(t, []string{"0.1.2"}, keys)
		})
	}
}

func TestChunkStore_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			defer s.Close()
			assert.Error(t, s.Put(ctx, "c", []byte{1}))
			_, err := s.Get(ctx, "c")
			assert.Error(t, err)
		})
	}
}

func TestMemoryStore_Closed(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	require.NoError(t, s.Put(ctx, "c", []byte{1}))
	require.NoError(t, s.Close())

	_, err := s.Get(ctx, "c")
	assert.ErrorIs(t, err, ErrStoreClosed)
	assert.ErrorIs(t, s.Put(ctx, "c", []byte{1}), ErrStoreClosed)
}

func TestFSStore_RejectsTraversal(t *testing.T) {
	s, err := NewFSStore(t.TempDir())
	require.NoError(t, err)
	assert.Error(t, s.Put(context.Background(), "../escape", []byte{1}))
	assert.Error(t, s.Put(context.Background(), "", []byte{1}))
}
