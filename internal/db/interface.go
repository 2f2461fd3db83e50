package db

import (
	"database/sql"
	"strings"
)

// Database is the common interface for SQLite and DuckDB
type Database interface {
	Exec(query string, args ...any) (sql.Result, error)
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
	Close() error
	Path() string
	GetVersion() (int, error)
	GetDB() *sql.DB
}

var _ Database = (*DB)(nil)
var _ Database = (*DuckDB)(nil)

// GetDB returns the underlying sql.DB for DB (SQLite)
func (d *DB) GetDB() *sql.DB {
	return d.DB
}

// GetDB returns the underlying sql.DB for DuckDB
func (d *DuckDB) GetDB() *sql.DB {
	return d.DB
}

// DBType represents the database type
type DBType string

const (
	TypeSQLite DBType = "sqlite"
	TypeDuckDB DBType = "duckdb"
)

// OpenType opens basePath with the given backend. For DuckDB the .db suffix
// is swapped for .duckdb.
func OpenType(basePath string, t DBType) (Database, error) {
	if t == TypeDuckDB {
		return OpenDuckDB(GetDuckDBPath(basePath))
	}
	return Open(basePath)
}

// GetDuckDBPath returns the DuckDB path for a given base path
func GetDuckDBPath(basePath string) string {
	return strings.TrimSuffix(basePath, ".db") + ".duckdb"
}
