// Package storage owns the datastore lifecycle: one bun client opened at
// process start, migrated, injected into repositories, and closed on
// shutdown.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	"github.com/goliatone/go-blog/internal/posts"
)

// Open connects to the sqlite database behind the supplied DSN.
func Open(dsn string) (*bun.DB, error) {
	sqldb, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("storage: open %q: %w", dsn, err)
	}
	return bun.NewDB(sqldb, sqlitedialect.New()), nil
}

// Migrate creates the posts schema idempotently. The unique slug index is the
// concurrency safety net for duplicate creates.
func Migrate(ctx context.Context, db *bun.DB) error {
	if _, err := db.NewCreateTable().
		Model((*posts.Post)(nil)).
		IfNotExists().
		Exec(ctx); err != nil {
		return fmt.Errorf("storage: create posts table: %w", err)
	}

	if _, err := db.NewCreateIndex().
		Model((*posts.Post)(nil)).
		Index("posts_slug_idx").
		Unique().
		Column("slug").
		IfNotExists().
		Exec(ctx); err != nil {
		return fmt.Errorf("storage: create slug index: %w", err)
	}

	return nil
}
