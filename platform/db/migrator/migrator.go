package migrator

import (
	"context"
	"database/sql"
	"io/fs"

	"github.com/pressly/goose/v3"
)

type Migrator struct {
	db         *sql.DB
	migrations fs.FS
	dir        string
}

// NewMigrator runs goose migrations stored under dir inside fsys.
// Pass a nil fsys to read dir from the local filesystem.
func NewMigrator(db *sql.DB, fsys fs.FS, dir string) *Migrator {
	return &Migrator{
		db:         db,
		migrations: fsys,
		dir:        dir,
	}
}

func (m *Migrator) Up(ctx context.Context) error {
	goose.SetBaseFS(m.migrations)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.UpContext(ctx, m.db, m.dir)
}

func (m *Migrator) Version(ctx context.Context) (int64, error) {
	goose.SetBaseFS(m.migrations)
	defer goose.SetBaseFS(nil)

	return goose.GetDBVersionContext(ctx, m.db)
}
