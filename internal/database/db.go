// Package database implements the SQLite-backed entity store for users,
// tasks, and timesheet entries, plus the SQL-text backup format.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const defaultDBTimeout = 5 * time.Second

// Database wraps the SQLite handle and carries the path it was opened
// from. All access goes through context-aware helpers with a default
// timeout.
type Database struct {
	DB     *sql.DB
	dbFile string
}

// Schema statements, shared with the export writer so a replayed backup
// recreates tables identical to a fresh store.
const (
	schemaUsers = `CREATE TABLE IF NOT EXISTS users (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	username TEXT NOT NULL UNIQUE,
	name TEXT NOT NULL,
	role TEXT NOT NULL DEFAULT 'employee',
	avatar TEXT NOT NULL DEFAULT ''
)`
	schemaTasks = `CREATE TABLE IF NOT EXISTS tasks (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	estimatedHours REAL,
	dueDate TEXT,
	status TEXT NOT NULL DEFAULT 'todo'
)`
	schemaTimesheets = `CREATE TABLE IF NOT EXISTS timesheets (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	userId INTEGER NOT NULL,
	userName TEXT NOT NULL,
	date TEXT NOT NULL,
	startTime TEXT NOT NULL,
	endTime TEXT NOT NULL,
	durationHours REAL NOT NULL DEFAULT 0,
	taskName TEXT NOT NULL,
	taskCategory TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	managerComment TEXT NOT NULL DEFAULT '',
	FOREIGN KEY(userId) REFERENCES users(id)
)`
	schemaSettings = `CREATE TABLE IF NOT EXISTS settings (
	key TEXT PRIMARY KEY,
	value TEXT
)`
)

// Open opens (or creates) the database at path and bootstraps the schema.
func Open(ctx context.Context, path string) (*Database, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	d := &Database{DB: db, dbFile: path}
	if err := d.createTables(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return d, nil
}

// Close closes the underlying handle.
func (d *Database) Close() error {
	return d.DB.Close()
}

func (d *Database) createTables(ctx context.Context) error {
	queries := []string{schemaUsers, schemaTasks, schemaTimesheets, schemaSettings}
	for _, query := range queries {
		if _, err := d.DB.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("create table: %w", err)
		}
	}
	d.migrate(ctx)
	return nil
}

// migrate applies additive column migrations for stores created by older
// builds. Failures are ignored on purpose: ALTER errors when the column
// already exists.
func (d *Database) migrate(ctx context.Context) {
	_, _ = d.DB.ExecContext(ctx, "ALTER TABLE users ADD COLUMN avatar TEXT NOT NULL DEFAULT ''")
	_, _ = d.DB.ExecContext(ctx, "ALTER TABLE tasks ADD COLUMN status TEXT NOT NULL DEFAULT 'todo'")
	_, _ = d.DB.ExecContext(ctx, "ALTER TABLE timesheets ADD COLUMN managerComment TEXT NOT NULL DEFAULT ''")
}

func (d *Database) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, defaultDBTimeout)
}

// withDBContext runs fn under the default operation timeout.
func (d *Database) withDBContext(ctx context.Context, fn func(context.Context) error) error {
	ctx, cancel := d.withTimeout(ctx)
	defer cancel()
	return fn(ctx)
}

func withDBContextResult[T any](d *Database, ctx context.Context, fn func(context.Context) (T, error)) (T, error) {
	ctx, cancel := d.withTimeout(ctx)
	defer cancel()
	return fn(ctx)
}

// WithTx runs fn inside a transaction, rolling back on error.
func (d *Database) WithTx(ctx context.Context, fn func(*sql.Tx) error) error {
	ctx, cancel := d.withTimeout(ctx)
	defer cancel()
	tx, err := d.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}
