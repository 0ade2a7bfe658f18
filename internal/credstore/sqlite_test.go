package credstore

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupStore(t *testing.T) *SQLiteStore {
	t.Helper()

	db, err := InitDatabase(context.Background(), filepath.Join(t.TempDir(), "cred.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewSQLiteStore(db)
}

func TestSQLiteStore_SaveAndLoad(t *testing.T) {
	ctx := context.Background()
	s := setupStore(t)

	require.NoError(t, s.Save(ctx, "tok-1", time.Now().Add(time.Hour)))

	token, ok, err := s.Load(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "tok-1", token)
}

func TestSQLiteStore_SaveReplacesPreviousToken(t *testing.T) {
	ctx := context.Background()
	s := setupStore(t)

	require.NoError(t, s.Save(ctx, "tok-1", time.Now().Add(time.Hour)))
	require.NoError(t, s.Save(ctx, "tok-2", time.Now().Add(time.Hour)))

	token, ok, err := s.Load(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "tok-2", token)
}

func TestSQLiteStore_LoadEmptySlot(t *testing.T) {
	ctx := context.Background()
	s := setupStore(t)

	token, ok, err := s.Load(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, token)
}

func TestSQLiteStore_ExpiredSlotErasedOnRead(t *testing.T) {
	ctx := context.Background()
	s := setupStore(t)

	require.NoError(t, s.Save(ctx, "tok-1", time.Now().Add(time.Hour)))
	s.now = func() time.Time { return time.Now().Add(2 * time.Hour) }

	_, ok, err := s.Load(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	// The expired row must be gone, not merely skipped.
	var count int
	require.NoError(t, s.db.QueryRow(`SELECT COUNT(*) FROM credentials`).Scan(&count))
	assert.Zero(t, count)
}

func TestSQLiteStore_ClearIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s := setupStore(t)

	require.NoError(t, s.Clear(ctx))

	require.NoError(t, s.Save(ctx, "tok-1", time.Now().Add(time.Hour)))
	require.NoError(t, s.Clear(ctx))
	require.NoError(t, s.Clear(ctx))

	_, ok, err := s.Load(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestInitDatabase_BadPath(t *testing.T) {
	_, err := InitDatabase(context.Background(), "/nonexistent-dir/sub/cred.db")
	require.Error(t, err)
}
