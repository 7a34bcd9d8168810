package files

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/dmitrijs2005/capcheck/internal/client/models"
	"github.com/dmitrijs2005/capcheck/internal/dbx"
)

const table = "preuploads"

// ErrNotTracked is returned by MarkUploaded for an unknown path.
var ErrNotTracked = errors.New("preupload is not tracked")

type SQLiteRepository struct {
	db dbx.DBTX
}

var _ Repository = (*SQLiteRepository)(nil)

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) CreateOrUpdate(ctx context.Context, p *models.Preupload) error {
	status := p.UploadStatus
	if status == "" {
		status = models.UploadPending
	}

	query, args, err := sq.Insert(table).
		Columns("local_path", "source_path", "upload_status").
		Values(p.LocalPath, p.SourcePath, string(status)).
		Suffix(`ON CONFLICT(local_path) DO UPDATE SET
				source_path = excluded.source_path,
				upload_status = excluded.upload_status`).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build preupload upsert: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to upsert preupload: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Get(ctx context.Context, localPath string) (*models.Preupload, error) {
	query, args, err := sq.Select("local_path", "source_path", "upload_status").
		From(table).
		Where(sq.Eq{"local_path": localPath}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build preupload query: %w", err)
	}

	p := &models.Preupload{}
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&p.LocalPath, &p.SourcePath, &p.UploadStatus)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get preupload: %w", err)
	}
	return p, nil
}

func (r *SQLiteRepository) List(ctx context.Context) ([]*models.Preupload, error) {
	query, args, err := sq.Select("local_path", "source_path", "upload_status").
		From(table).
		OrderBy("local_path").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build preupload list: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error selecting preuploads: %w", err)
	}
	defer rows.Close()

	var result []*models.Preupload
	for rows.Next() {
		item := &models.Preupload{}
		if err := rows.Scan(&item.LocalPath, &item.SourcePath, &item.UploadStatus); err != nil {
			return nil, err
		}
		result = append(result, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLiteRepository) MarkUploaded(ctx context.Context, localPath string) error {
	query, args, err := sq.Update(table).
		Set("upload_status", string(models.UploadCompleted)).
		Where(sq.Eq{"local_path": localPath}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build preupload update: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to mark preupload uploaded: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected != 1 {
		return fmt.Errorf("%w: %s", ErrNotTracked, localPath)
	}
	return nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, localPath string) error {
	query, args, err := sq.Delete(table).Where(sq.Eq{"local_path": localPath}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build preupload delete: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to delete preupload: %w", err)
	}
	return nil
}
