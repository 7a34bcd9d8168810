package client

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/capcheck/internal/client/migrations"

	_ "modernc.org/sqlite"
)

// InitDatabase opens the local SQLite database at dsn and migrates it.
func InitDatabase(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if err := migrations.Up(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}
