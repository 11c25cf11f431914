package overlay

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSQLiteKV(t *testing.T) *SQLiteKV {
	t.Helper()

	kv, err := NewSQLiteKV(filepath.Join(t.TempDir(), "overlay.db"), zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { kv.Close() })
	return kv
}

func TestSQLiteKVSetGet(t *testing.T) {
	kv := newTestSQLiteKV(t)

	require.NoError(t, kv.Set("adminArticles", []byte(`[{"id":"1718200000000"}]`)))

	got, ok, err := kv.Get("adminArticles")
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `[{"id":"1718200000000"}]`, string(got))
}

func TestSQLiteKVUpsert(t *testing.T) {
	kv := newTestSQLiteKV(t)

	require.NoError(t, kv.Set("articleLikeCounts", []byte(`{"1":1}`)))
	require.NoError(t, kv.Set("articleLikeCounts", []byte(`{"1":2}`)))

	got, ok, err := kv.Get("articleLikeCounts")
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `{"1":2}`, string(got))
}

func TestSQLiteKVMissingKey(t *testing.T) {
	kv := newTestSQLiteKV(t)

	_, ok, err := kv.Get("nothing")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSQLiteKVDelete(t *testing.T) {
	kv := newTestSQLiteKV(t)

	require.NoError(t, kv.Set("comments-1", []byte(`[]`)))
	require.NoError(t, kv.Delete("comments-1"))

	_, ok, err := kv.Get("comments-1")
	require.NoError(t, err)
	assert.False(t, ok)

	// Deleting a missing key is not an error.
	assert.NoError(t, kv.Delete("comments-1"))
}

func TestSQLiteKVPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "overlay.db")

	kv, err := NewSQLiteKV(path, zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, kv.Set("bookmarkedArticles", []byte(`["2"]`)))
	require.NoError(t, kv.Close())

	reopened, err := NewSQLiteKV(path, zerolog.Nop())
	require.NoError(t, err)
	defer reopened.Close()

	got, ok, err := reopened.Get("bookmarkedArticles")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `["2"]`, string(got))
}
