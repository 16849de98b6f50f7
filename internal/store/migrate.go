package store

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/matheus3301/dmsync/internal/apperr"
	"github.com/matheus3301/dmsync/internal/store/migrations"
)

// SchemaVersion is the newest migration shipped in the migrations package.
const SchemaVersion uint = 1

// ErrDirtySchema is returned when a previous migration stopped halfway.
// The database must be repaired by hand before the daemon can use it.
var ErrDirtySchema = errors.New("schema is dirty")

// MigrateResult reports the schema version before and after Migrate.
type MigrateResult struct {
	From    uint
	Version uint
	Changed bool
}

// Migrate brings the schema up to SchemaVersion. A dirty schema is refused
// instead of being forced.
func (db *DB) Migrate() (*MigrateResult, error) {
	source, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return nil, fmt.Errorf("migration source: %w", err)
	}
	driver, err := sqlite3.WithInstance(db.DB, &sqlite3.Config{})
	if err != nil {
		return nil, apperr.Store("migrate", err)
	}
	m, err := migrate.NewWithInstance("iofs", source, "sqlite3", driver)
	if err != nil {
		return nil, apperr.Store("migrate", err)
	}

	from, dirty, err := m.Version()
	switch {
	case errors.Is(err, migrate.ErrNilVersion):
		from = 0
	case err != nil:
		return nil, apperr.Store("migrate", err)
	case dirty:
		return nil, fmt.Errorf("version %d: %w", from, ErrDirtySchema)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return nil, apperr.Store("migrate", err)
	}
	to, _, err := m.Version()
	if err != nil {
		return nil, apperr.Store("migrate", err)
	}
	return &MigrateResult{From: from, Version: to, Changed: to != from}, nil
}
