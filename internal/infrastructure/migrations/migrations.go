// Package migrations owns the soundboard database schema.
//
// Schema files are embedded and applied with golang-migrate through a small
// driver that works on any *sql.DB opened with ncruces/go-sqlite3. The stock
// golang-migrate sqlite3 driver pulls in mattn/go-sqlite3, which registers
// the same "sqlite3" driver name and needs CGO.
//
// Usage:
//
//	db, _ := sql.Open("sqlite3", "file:soundboard.db")
//	err := migrations.RunMigrations(db)
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"io/fs"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed *.sql
var embeddedMigrationsFS embed.FS

// MigrationsFS returns the embedded filesystem containing migration SQL files.
func MigrationsFS() fs.FS {
	return embeddedMigrationsFS
}

// RunMigrations applies all pending migrations to db.
// Running it against an up-to-date database is a no-op and returns nil.
func RunMigrations(db *sql.DB) error {
	source, err := iofs.New(embeddedMigrationsFS, ".")
	if err != nil {
		return err
	}

	driver, err := newDriver(db)
	if err != nil {
		return err
	}

	m, err := migrate.NewWithInstance("iofs", source, "sqlite3", driver)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			return nil
		}
		return err
	}
	return nil
}
