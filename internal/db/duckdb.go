package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/marcboeker/go-duckdb/v2"
)

const duckDBSchemaVersion = 2

// DuckDB 스키마 (SQLite와 동일한 테이블)
const duckDBSchema = `
CREATE TABLE IF NOT EXISTS metadata (
    key VARCHAR PRIMARY KEY,
    value VARCHAR,
    updated_at TIMESTAMP DEFAULT now()
);

CREATE TABLE IF NOT EXISTS ideas (
    id VARCHAR PRIMARY KEY,
    image_url VARCHAR NOT NULL DEFAULT '',
    description VARCHAR NOT NULL DEFAULT '',
    status VARCHAR NOT NULL CHECK (status IN ('inbox', 'processed')),
    position INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS idea_tags (
    idea_id VARCHAR NOT NULL,
    category VARCHAR NOT NULL,
    position INTEGER NOT NULL DEFAULT 0,
    value VARCHAR NOT NULL,
    PRIMARY KEY (idea_id, category, position)
);
`

// DuckDB wraps a DuckDB connection
type DuckDB struct {
	*sql.DB
	path string
}

// OpenDuckDB opens or creates a DuckDB database
func OpenDuckDB(path string) (*DuckDB, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("не удалось создать каталог: %w", err)
	}

	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, fmt.Errorf("не удалось открыть DuckDB: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("не удалось подключиться к DuckDB: %w", err)
	}

	d := &DuckDB{DB: db, path: path}

	if err := d.Init(); err != nil {
		db.Close()
		return nil, fmt.Errorf("не удалось инициализировать схему: %w", err)
	}

	return d, nil
}

// Init initializes the DuckDB schema
func (d *DuckDB) Init() error {
	if _, err := d.Exec(duckDBSchema); err != nil {
		return fmt.Errorf("не удалось применить схему: %w", err)
	}

	// DuckDB는 now() 사용
	_, err := d.Exec(`
		INSERT INTO metadata (key, value, updated_at)
		VALUES ('schema_version', ?, now())
		ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = now()
	`, duckDBSchemaVersion)
	if err != nil {
		return fmt.Errorf("не удалось сохранить версию схемы: %w", err)
	}

	return nil
}

// Path returns the database file path
func (d *DuckDB) Path() string {
	return d.path
}

// GetVersion returns current schema version
func (d *DuckDB) GetVersion() (int, error) {
	var version int
	err := d.QueryRow(`SELECT CAST(value AS INTEGER) FROM metadata WHERE key = 'schema_version'`).Scan(&version)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return version, nil
}
