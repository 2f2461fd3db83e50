package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

const schemaVersion = 2

// 기본 테이블 (v1)
const schemaBase = `
-- 아이디어
CREATE TABLE IF NOT EXISTS ideas (
    id TEXT PRIMARY KEY,
    image_url TEXT NOT NULL DEFAULT '',
    description TEXT NOT NULL DEFAULT '',
    status TEXT NOT NULL CHECK (status IN ('inbox', 'processed'))
);

CREATE INDEX IF NOT EXISTS idx_ideas_status ON ideas(status);

-- 태그 (카테고리는 열린 집합)
CREATE TABLE IF NOT EXISTS idea_tags (
    idea_id TEXT NOT NULL,
    category TEXT NOT NULL,
    position INTEGER NOT NULL DEFAULT 0,
    value TEXT NOT NULL,
    PRIMARY KEY (idea_id, category, position)
);

CREATE INDEX IF NOT EXISTS idx_idea_tags_idea ON idea_tags(idea_id);

-- 메타데이터
CREATE TABLE IF NOT EXISTS metadata (
    key TEXT PRIMARY KEY,
    value TEXT,
    updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
`

// DB wraps sql.DB with helper methods
type DB struct {
	*sql.DB
	path string
}

// Open opens or creates the database
func Open(path string) (*DB, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("не удалось создать каталог: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("не удалось открыть БД: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("не удалось подключиться к БД: %w", err)
	}

	d := &DB{DB: db, path: path}

	// 스키마 자동 초기화
	if err := d.Init(); err != nil {
		db.Close()
		return nil, fmt.Errorf("не удалось инициализировать схему: %w", err)
	}

	return d, nil
}

// Init initializes the database schema
func (d *DB) Init() error {
	if _, err := d.Exec(schemaBase); err != nil {
		return fmt.Errorf("не удалось применить базовую схему: %w", err)
	}

	if err := d.migrate(); err != nil {
		return fmt.Errorf("ошибка миграции: %w", err)
	}

	_, err := d.Exec(`INSERT OR REPLACE INTO metadata (key, value, updated_at) VALUES ('schema_version', ?, CURRENT_TIMESTAMP)`, schemaVersion)
	if err != nil {
		return fmt.Errorf("не удалось сохранить версию схемы: %w", err)
	}

	return nil
}

// migrate runs database migrations
func (d *DB) migrate() error {
	currentVersion, err := d.GetVersion()
	if err != nil {
		return err
	}

	// v1 -> v2: 원본 순서 보존용 position 컬럼
	if currentVersion < 2 && !d.hasColumn("ideas", "position") {
		if _, err := d.Exec(`ALTER TABLE ideas ADD COLUMN position INTEGER NOT NULL DEFAULT 0`); err != nil {
			return err
		}
	}

	return nil
}

func (d *DB) hasColumn(table, column string) bool {
	rows, err := d.Query(fmt.Sprintf(`PRAGMA table_info(%s)`, table))
	if err != nil {
		return false
	}
	defer rows.Close()

	for rows.Next() {
		var cid, notnull, pk int
		var name, ctype string
		var dflt sql.NullString
		if err := rows.Scan(&cid, &name, &ctype, &notnull, &dflt, &pk); err != nil {
			return false
		}
		if name == column {
			return true
		}
	}
	return false
}

// GetVersion returns current schema version
func (d *DB) GetVersion() (int, error) {
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

// Path returns the database file path
func (d *DB) Path() string {
	return d.path
}
