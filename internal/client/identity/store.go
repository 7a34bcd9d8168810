// Package identity keeps the per-installation user identifier.
//
// The identifier is written once, on the first EnsureIdentity call, and read
// back unchanged afterwards. There is no rotation and no login flow.
package identity

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/capcheck/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/capcheck/internal/common"
	"github.com/dmitrijs2005/capcheck/internal/dbx"
)

var (
	// ErrPersistence wraps every storage failure of a Store.
	ErrPersistence = errors.New("identity persistence failed")

	errEmptyIdentity = errors.New("stored identity is empty")
)

//go:generate mockgen -destination=mocks/store_mock.go -package=mocks . Store

// Store ensures an identity exists and returns it.
type Store interface {
	EnsureIdentity(ctx context.Context) (string, error)
}

// SQLiteStore persists the identity in the metadata table.
type SQLiteStore struct {
	db        *sql.DB
	defaultID string
	newID     func() string
}

var _ Store = (*SQLiteStore)(nil)

// NewSQLiteStore returns a store that writes defaultID on first use. An empty
// defaultID makes the store generate a random UUID instead.
func NewSQLiteStore(db *sql.DB, defaultID string) *SQLiteStore {
	return &SQLiteStore{db: db, defaultID: defaultID, newID: uuid.NewString}
}

func (s *SQLiteStore) initialID() string {
	if s.defaultID != "" {
		return s.defaultID
	}
	return s.newID()
}

// EnsureIdentity reads the stored identity, writing the initial one in the
// same transaction when none exists yet.
func (s *SQLiteStore) EnsureIdentity(ctx context.Context) (string, error) {
	var id string

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)

		stored, err := repo.Get(ctx, common.MetadataKeyUserID)
		if err != nil {
			return err
		}
		if stored != nil {
			if len(stored) == 0 {
				return errEmptyIdentity
			}
			id = string(stored)
			return nil
		}

		id = s.initialID()
		return repo.Set(ctx, common.MetadataKeyUserID, []byte(id))
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	return id, nil
}
