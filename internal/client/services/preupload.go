package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/dmitrijs2005/capcheck/internal/client/models"
	"github.com/dmitrijs2005/capcheck/internal/client/repositories/files"
	"github.com/dmitrijs2005/capcheck/internal/dbx"
	"github.com/dmitrijs2005/capcheck/internal/logging"
)

// Cleaner disposes of images the controller no longer needs. Paths it did not
// create are left alone.
type Cleaner interface {
	Uploaded(ctx context.Context, path string) error
	Discard(ctx context.Context, path string) error
}

// PreuploadService tracks the compressed copies written by the picker and
// deletes them once they are posted, replaced or abandoned.
type PreuploadService struct {
	db  *sql.DB
	log logging.Logger
}

var _ Cleaner = (*PreuploadService)(nil)

func NewPreuploadService(db *sql.DB, log logging.Logger) *PreuploadService {
	return &PreuploadService{db: db, log: log.With("component", "preuploads")}
}

// Track records a compressed copy at localPath made from sourcePath.
func (s *PreuploadService) Track(ctx context.Context, localPath, sourcePath string) error {
	return files.NewSQLiteRepository(s.db).CreateOrUpdate(ctx, &models.Preupload{
		LocalPath:    localPath,
		SourcePath:   sourcePath,
		UploadStatus: models.UploadPending,
	})
}

// Uploaded marks the copy as posted and removes it.
func (s *PreuploadService) Uploaded(ctx context.Context, path string) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := files.NewSQLiteRepository(tx)

		p, err := repo.Get(ctx, path)
		if err != nil || p == nil {
			return err
		}
		if err := repo.MarkUploaded(ctx, path); err != nil {
			return err
		}
		return s.remove(ctx, repo, p.LocalPath)
	})
}

// Discard removes an unposted copy.
func (s *PreuploadService) Discard(ctx context.Context, path string) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := files.NewSQLiteRepository(tx)

		p, err := repo.Get(ctx, path)
		if err != nil || p == nil {
			return err
		}
		return s.remove(ctx, repo, p.LocalPath)
	})
}

// Sweep removes every tracked copy, e.g. leftovers of a previous run, and
// returns how many were removed.
func (s *PreuploadService) Sweep(ctx context.Context) (int, error) {
	repo := files.NewSQLiteRepository(s.db)

	all, err := repo.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("list preuploads: %w", err)
	}

	var errs []error
	removed := 0
	for _, p := range all {
		if p.UploadStatus == models.UploadPending {
			s.log.Debug(ctx, "discarding abandoned image", "path", p.LocalPath, "source", p.SourcePath)
		}
		if err := s.remove(ctx, repo, p.LocalPath); err != nil {
			errs = append(errs, err)
			continue
		}
		removed++
	}
	return removed, errors.Join(errs...)
}

func (s *PreuploadService) remove(ctx context.Context, repo files.Repository, path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove %s: %w", path, err)
	}
	if err := repo.Delete(ctx, path); err != nil {
		return err
	}
	s.log.Debug(ctx, "preupload removed", "path", path)
	return nil
}
