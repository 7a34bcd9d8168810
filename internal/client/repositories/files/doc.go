// Package files provides the client-side persistence layer for the
// compressed image copies the picker writes before an upload.
//
// # Overview
//
// The package defines a Repository interface for creating, querying and
// marking upload state of Preupload records (local path, source path, upload
// status). A SQLite-backed implementation (SQLiteRepository) persists data via
// a dbx.DBTX (*sql.DB or *sql.Tx).
//
// Typical Usage
//
//	repo := files.NewSQLiteRepository(db)
//	_ = repo.CreateOrUpdate(ctx, p)
//	p, _ := repo.Get(ctx, localPath)
//	all, _ := repo.List(ctx)
//	_ = repo.MarkUploaded(ctx, localPath)
//	_ = repo.Delete(ctx, localPath)
//
// See also: internal/client/models.Preupload for field semantics.
package files
