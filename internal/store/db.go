package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// DB is the SQLite backend. Writers take the database lock at BEGIN
// (immediate transactions), so concurrent read-modify-writes from any
// process serialize instead of racing.
type DB struct {
	*sql.DB
	clock Clock
}

// Open creates a new SQLite connection with WAL mode and recommended pragmas.
func Open(path string) (*DB, error) {
	return OpenWithClock(path, SystemClock{})
}

// OpenWithClock is Open with an explicit time source for message stamping.
func OpenWithClock(path string, clock Clock) (*DB, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on&_txlock=immediate")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}
	if clock == nil {
		clock = SystemClock{}
	}
	return &DB{DB: db, clock: clock}, nil
}

// Close closes the underlying connection pool.
func (db *DB) Close() error {
	return db.DB.Close()
}

type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
	QueryRow(query string, args ...any) *sql.Row
}

// bumpRev increments a namespace revision inside the caller's transaction.
func bumpRev(tx execer, namespace string) (int64, error) {
	var rev int64
	err := tx.QueryRow(`
		INSERT INTO revisions (namespace, rev) VALUES (?, 1)
		ON CONFLICT(namespace) DO UPDATE SET rev = revisions.rev + 1
		RETURNING rev`, namespace).Scan(&rev)
	return rev, err
}

func (db *DB) readRev(ctx context.Context, namespace string) (int64, error) {
	var rev int64
	err := db.QueryRowContext(ctx, `SELECT rev FROM revisions WHERE namespace = ?`, namespace).Scan(&rev)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	return rev, err
}

var _ Backend = (*DB)(nil)
