package identity

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/capcheck/internal/client/migrations"
	"github.com/dmitrijs2005/capcheck/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/capcheck/internal/common"

	_ "modernc.org/sqlite"
)

func openDB(t *testing.T, path string) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, migrations.Up(context.Background(), db))
	return db
}

func TestSQLiteStore_FirstCallPersistsDefault(t *testing.T) {
	db := openDB(t, filepath.Join(t.TempDir(), "id.db"))
	ctx := context.Background()

	id, err := NewSQLiteStore(db, "1").EnsureIdentity(ctx)
	require.NoError(t, err)
	assert.Equal(t, "1", id)

	stored, err := metadata.NewSQLiteRepository(db).Get(ctx, common.MetadataKeyUserID)
	require.NoError(t, err)
	assert.Equal(t, []byte("1"), stored)
}

func TestSQLiteStore_SurvivesRestartAndIgnoresNewDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "id.db")
	ctx := context.Background()

	first := openDB(t, path)
	id, err := NewSQLiteStore(first, "1").EnsureIdentity(ctx)
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second := openDB(t, path)
	again, err := NewSQLiteStore(second, "42").EnsureIdentity(ctx)
	require.NoError(t, err)
	assert.Equal(t, id, again)
}

func TestSQLiteStore_EmptyDefaultGeneratesStableUUID(t *testing.T) {
	db := openDB(t, filepath.Join(t.TempDir(), "id.db"))
	store := NewSQLiteStore(db, "")
	ctx := context.Background()

	id, err := store.EnsureIdentity(ctx)
	require.NoError(t, err)
	_, err = uuid.Parse(id)
	require.NoError(t, err)

	again, err := store.EnsureIdentity(ctx)
	require.NoError(t, err)
	assert.Equal(t, id, again)
}

func TestSQLiteStore_StorageFailureIsExplicit(t *testing.T) {
	db := openDB(t, filepath.Join(t.TempDir(), "id.db"))
	require.NoError(t, db.Close())

	id, err := NewSQLiteStore(db, "1").EnsureIdentity(context.Background())
	require.ErrorIs(t, err, ErrPersistence)
	assert.Empty(t, id)
}

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore("1")
	id, err := s.EnsureIdentity(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1", id)

	s.Err = assert.AnError
	_, err = s.EnsureIdentity(context.Background())
	require.ErrorIs(t, err, ErrPersistence)
	require.ErrorIs(t, err, assert.AnError)
}

func TestMemoryStore_EmptyDefaultGeneratesStableUUID(t *testing.T) {
	s := NewMemoryStore("")
	ctx := context.Background()

	id, err := s.EnsureIdentity(ctx)
	require.NoError(t, err)
	_, err = uuid.Parse(id)
	require.NoError(t, err)

	again, err := s.EnsureIdentity(ctx)
	require.NoError(t, err)
	assert.Equal(t, id, again)
}
