package services

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/capcheck/internal/client/client"
	"github.com/dmitrijs2005/capcheck/internal/client/models"
	"github.com/dmitrijs2005/capcheck/internal/client/repositories/files"
	"github.com/dmitrijs2005/capcheck/internal/logging"
)

// ---- helpers ----

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := client.InitDatabase(context.Background(), filepath.Join(t.TempDir(), "community.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func touch(t *testing.T, dir, name string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte("jpeg"), 0o600))
	return p
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ---- tests ----

func TestPreuploadService_UploadedRemovesCopy(t *testing.T) {
	db := setupDB(t)
	s := NewPreuploadService(db, logging.Nop())
	ctx := context.Background()

	dir := t.TempDir()
	copyPath := touch(t, dir, "copy.jpg")
	require.NoError(t, s.Track(ctx, copyPath, "/photos/a.jpg"))

	require.NoError(t, s.Uploaded(ctx, copyPath))
	assert.False(t, exists(copyPath))

	p, err := files.NewSQLiteRepository(db).Get(ctx, copyPath)
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestPreuploadService_LeavesUntrackedFilesAlone(t *testing.T) {
	s := NewPreuploadService(setupDB(t), logging.Nop())
	ctx := context.Background()

	original := touch(t, t.TempDir(), "original.jpg")

	require.NoError(t, s.Uploaded(ctx, original))
	require.NoError(t, s.Discard(ctx, original))
	assert.True(t, exists(original))
}

func TestPreuploadService_Discard(t *testing.T) {
	s := NewPreuploadService(setupDB(t), logging.Nop())
	ctx := context.Background()

	copyPath := touch(t, t.TempDir(), "copy.jpg")
	require.NoError(t, s.Track(ctx, copyPath, "/photos/a.jpg"))

	require.NoError(t, s.Discard(ctx, copyPath))
	assert.False(t, exists(copyPath))

	// already gone on disk and in the table
	require.NoError(t, s.Discard(ctx, copyPath))
}

func TestPreuploadService_Sweep(t *testing.T) {
	db := setupDB(t)
	s := NewPreuploadService(db, logging.Nop())
	ctx := context.Background()
	dir := t.TempDir()

	a := touch(t, dir, "a.jpg")
	b := touch(t, dir, "b.jpg")
	missing := filepath.Join(dir, "missing.jpg")
	require.NoError(t, s.Track(ctx, a, "/photos/a.jpg"))
	require.NoError(t, s.Track(ctx, b, "/photos/b.jpg"))
	require.NoError(t, s.Track(ctx, missing, "/photos/c.jpg"))
	require.NoError(t, files.NewSQLiteRepository(db).MarkUploaded(ctx, b))

	n, err := s.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.False(t, exists(a))
	assert.False(t, exists(b))

	all, err := files.NewSQLiteRepository(db).List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	n, err = s.Sweep(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestPreuploadService_TrackRecordsPending(t *testing.T) {
	db := setupDB(t)
	s := NewPreuploadService(db, logging.Nop())
	ctx := context.Background()

	require.NoError(t, s.Track(ctx, "/w/preupload/x.jpg", "/photos/x.jpg"))

	p, err := files.NewSQLiteRepository(db).Get(ctx, "/w/preupload/x.jpg")
	require.NoError(t, err)
	assert.Equal(t, &models.Preupload{
		LocalPath:    "/w/preupload/x.jpg",
		SourcePath:   "/photos/x.jpg",
		UploadStatus: models.UploadPending,
	}, p)
}
