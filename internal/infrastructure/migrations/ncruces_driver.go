package migrations

import (
	"database/sql"
	"errors"
	"io"
	"sync/atomic"

	"github.com/golang-migrate/migrate/v4/database"
)

// versionTable records the applied schema version.
const versionTable = "schema_migrations"

// ownedTables are dropped by Drop, children before parents.
var ownedTables = []string{"sounds", versionTable}

// driver applies migrations to a connection owned by the caller.
// golang-migrate serialises its calls, so the only state is the lock flag.
type driver struct {
	db     *sql.DB
	locked atomic.Bool
}

var _ database.Driver = (*driver)(nil)

func newDriver(db *sql.DB) (*driver, error) {
	if err := db.Ping(); err != nil {
		return nil, err
	}
	const ddl = `CREATE TABLE IF NOT EXISTS ` + versionTable + ` (version INTEGER NOT NULL, dirty BOOLEAN NOT NULL);
	CREATE UNIQUE INDEX IF NOT EXISTS ` + versionTable + `_version ON ` + versionTable + ` (version);`
	if _, err := db.Exec(ddl); err != nil {
		return nil, &database.Error{OrigErr: err, Query: []byte(ddl)}
	}
	return &driver{db: db}, nil
}

func (d *driver) Open(string) (database.Driver, error) {
	return nil, errors.New("migrations: open by URL is not supported")
}

// Close leaves the connection open; it belongs to sqlite.DB.
func (d *driver) Close() error { return nil }

func (d *driver) Lock() error {
	if !d.locked.CompareAndSwap(false, true) {
		return database.ErrLocked
	}
	return nil
}

func (d *driver) Unlock() error {
	if !d.locked.CompareAndSwap(true, false) {
		return database.ErrNotLocked
	}
	return nil
}

// Run executes one migration file in a transaction.
func (d *driver) Run(migration io.Reader) error {
	body, err := io.ReadAll(migration)
	if err != nil {
		return err
	}
	return d.inTx(func(tx *sql.Tx) error {
		if _, err := tx.Exec(string(body)); err != nil {
			return &database.Error{OrigErr: err, Query: body}
		}
		return nil
	})
}

func (d *driver) SetVersion(version int, dirty bool) error {
	return d.inTx(func(tx *sql.Tx) error {
		if _, err := tx.Exec(`DELETE FROM ` + versionTable); err != nil {
			return err
		}
		// A dirty NilVersion is kept so a failed first down migration shows up.
		if version < 0 && !(version == database.NilVersion && dirty) {
			return nil
		}
		_, err := tx.Exec(`INSERT INTO `+versionTable+` (version, dirty) VALUES (?, ?)`, version, dirty)
		return err
	})
}

func (d *driver) Version() (int, bool, error) {
	var (
		version int
		dirty   bool
	)
	err := d.db.QueryRow(`SELECT version, dirty FROM `+versionTable+` LIMIT 1`).Scan(&version, &dirty)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return database.NilVersion, false, nil
	case err != nil:
		return 0, false, &database.Error{OrigErr: err, Err: "reading schema version"}
	}
	return version, dirty, nil
}

// Drop removes the soundboard tables.
func (d *driver) Drop() error {
	return d.inTx(func(tx *sql.Tx) error {
		for _, table := range ownedTables {
			if _, err := tx.Exec(`DROP TABLE IF EXISTS ` + table); err != nil {
				return &database.Error{OrigErr: err, Err: "dropping " + table}
			}
		}
		return nil
	})
}

func (d *driver) inTx(fn func(tx *sql.Tx) error) error {
	tx, err := d.db.Begin()
	if err != nil {
		return &database.Error{OrigErr: err, Err: "transaction start failed"}
	}
	if err := fn(tx); err != nil {
		return errors.Join(err, tx.Rollback())
	}
	return tx.Commit()
}
