package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/bsak/authsvc/internal/repository/sqlite/migrations"
)

// DB wraps a SQLite connection and exposes the repositories built on it.
type DB struct {
	sqlDB *sql.DB
}

// New opens the SQLite database at dbPath and configures it for use.
// It enables WAL mode and foreign keys.
func New(dbPath string) (*DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}
	if _, err := db.ExecContext(context.Background(), "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	// SQLite handles one writer at a time; serialize access through a
	// single connection.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &DB{sqlDB: db}, nil
}

// Migrate applies all unapplied embedded migrations.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Run(ctx, db.sqlDB)
}

// Users returns the user repository backed by this database.
func (db *DB) Users() *UserRepository {
	return &UserRepository{db: db.sqlDB}
}

// Close closes the underlying database handle.
func (db *DB) Close() error {
	return db.sqlDB.Close()
}
