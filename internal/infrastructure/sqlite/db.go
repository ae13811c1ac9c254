// Package sqlite provides SQLite database infrastructure for soundboard.
// It handles connection lifecycle, migrations, and the sound repository.
package sqlite

import (
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/kobeSmallman/mobileSoundboard/internal/infrastructure/migrations"
	"github.com/kobeSmallman/mobileSoundboard/internal/log"
	"github.com/kobeSmallman/mobileSoundboard/internal/sounds/domain"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// DB manages the SQLite connection for soundboard.
type DB struct {
	conn *sql.DB
	path string
}

// NewDB opens the database at path, configures pragmas, and applies the schema.
// The parent directory is created if missing. An existing file is copied to
// {path}.bak before the schema is touched.
//
// Example:
//
//	db, err := sqlite.NewDB("~/.local/share/soundboard/soundboard.db")
//	if err != nil {
//	    return err
//	}
//	defer db.Close()
func NewDB(path string) (*DB, error) {
	log.Debug(log.CatDB, "Opening database", "path", path)

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		log.ErrorErr(log.CatDB, "Failed to create database directory", err, "path", dir)
		return nil, fmt.Errorf("failed to create database directory %s: %w", dir, err)
	}

	if _, err := os.Stat(path); err == nil {
		backupPath := path + ".bak"
		if err := copyFile(path, backupPath); err != nil {
			log.ErrorErr(log.CatDB, "Failed to create backup", err, "path", path, "backup", backupPath)
			return nil, fmt.Errorf("failed to create backup: %w", err)
		}
		log.Debug(log.CatDB, "Created backup", "backup", backupPath)
	}

	conn, err := sql.Open("sqlite3", "file:"+path)
	if err != nil {
		log.ErrorErr(log.CatDB, "Failed to open database", err, "path", path)
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := conn.Ping(); err != nil {
		_ = conn.Close()
		log.ErrorErr(log.CatDB, "Failed to ping database", err, "path", path)
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
	} {
		if _, err := conn.Exec(pragma); err != nil {
			_ = conn.Close()
			log.ErrorErr(log.CatDB, "Failed to configure database", err, "pragma", pragma)
			return nil, fmt.Errorf("failed to run %q: %w", pragma, err)
		}
	}

	if err := migrations.RunMigrations(conn); err != nil {
		_ = conn.Close()
		log.ErrorErr(log.CatDB, "Failed to run migrations", err)
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info(log.CatDB, "Database initialized", "path", path)

	return &DB{conn: conn, path: path}, nil
}

// Close releases database resources.
func (db *DB) Close() error {
	if db.conn != nil {
		log.Debug(log.CatDB, "Closing database", "path", db.path)
		return db.conn.Close()
	}
	return nil
}

// Path returns the database file path.
func (db *DB) Path() string {
	return db.path
}

// SoundRepository returns a SoundRepository backed by this connection.
func (db *DB) SoundRepository() domain.SoundRepository {
	return newSoundRepository(db.conn)
}

// Connection returns the underlying *sql.DB for testing purposes.
func (db *DB) Connection() *sql.DB {
	return db.conn
}

// copyFile copies src to dst, overwriting dst.
// A failed close of dst is reported so a truncated backup is never silent.
func copyFile(src, dst string) (retErr error) {
	in, err := os.Open(src) //nolint:gosec // G304: src is the configured database path
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := in.Close(); closeErr != nil && retErr == nil {
			retErr = fmt.Errorf("failed to close source file: %w", closeErr)
		}
	}()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_RDWR|os.O_CREATE|os.O_TRUNC, info.Mode()) //nolint:gosec // G304: dst is derived from the database path
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := out.Close(); closeErr != nil && retErr == nil {
			retErr = fmt.Errorf("failed to close backup file: %w", closeErr)
		}
	}()

	_, err = io.Copy(out, in)
	return err
}
