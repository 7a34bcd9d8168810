package files

import (
	"context"

	"github.com/dmitrijs2005/capcheck/internal/client/models"
)

// Repository describes CRUD and workflow operations for Preupload records.
type Repository interface {
	// CreateOrUpdate inserts or replaces the record for p.LocalPath.
	CreateOrUpdate(ctx context.Context, p *models.Preupload) error

	// Get returns the record for localPath, or (nil, nil) when untracked.
	Get(ctx context.Context, localPath string) (*models.Preupload, error)

	// List returns every tracked record ordered by local path.
	List(ctx context.Context) ([]*models.Preupload, error)

	// MarkUploaded sets UploadStatus to completed.
	MarkUploaded(ctx context.Context, localPath string) error

	// Delete forgets the record. Deleting an untracked path is not an error.
	Delete(ctx context.Context, localPath string) error
}
