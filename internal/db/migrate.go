package db

import (
	"database/sql"
	"fmt"
	"os"
	"strings"
)

// MigrationResult contains migration statistics
type MigrationResult struct {
	TablesProcessed int
	RowsMigrated    map[string]int
	Errors          []string
}

// copySpec describes one table copied by MigrateSQLiteToDuckDB. metadata is
// not copied, each backend keeps its own schema version.
type copySpec struct {
	table   string
	columns []string
}

var migratedTables = []copySpec{
	{"ideas", []string{"id", "image_url", "description", "status", "position"}},
	{"idea_tags", []string{"idea_id", "category", "position", "value"}},
}

// MigrateSQLiteToDuckDB migrates data from SQLite to DuckDB. An existing
// DuckDB file is moved aside to <path>.backup first.
func MigrateSQLiteToDuckDB(sqlitePath, duckdbPath string) (*MigrationResult, error) {
	result := &MigrationResult{
		RowsMigrated: make(map[string]int),
	}

	if _, err := os.Stat(sqlitePath); err != nil {
		return nil, fmt.Errorf("SQLite-файл не найден: %w", err)
	}

	sqliteDB, err := Open(sqlitePath)
	if err != nil {
		return nil, fmt.Errorf("не удалось открыть SQLite: %w", err)
	}
	defer sqliteDB.Close()

	if _, err := os.Stat(duckdbPath); err == nil {
		if err := os.Rename(duckdbPath, duckdbPath+".backup"); err != nil {
			return nil, fmt.Errorf("не удалось сохранить резервную копию: %w", err)
		}
	}

	duckDB, err := OpenDuckDB(duckdbPath)
	if err != nil {
		return nil, err
	}
	defer duckDB.Close()

	for _, spec := range migratedTables {
		count, err := spec.copy(sqliteDB.DB, duckDB.DB)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", spec.table, err))
			continue
		}
		result.RowsMigrated[spec.table] = count
		result.TablesProcessed++
	}

	return result, nil
}

// copy moves every row of the table in one DuckDB transaction, so a failed
// table leaves no partial rows behind
func (c copySpec) copy(from, to *sql.DB) (int, error) {
	cols := strings.Join(c.columns, ", ")
	marks := strings.TrimSuffix(strings.Repeat("?, ", len(c.columns)), ", ")

	rows, err := from.Query(fmt.Sprintf(`SELECT %s FROM %s ORDER BY rowid`, cols, c.table))
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	tx, err := to.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(fmt.Sprintf(`INSERT OR IGNORE INTO %s (%s) VALUES (%s)`, c.table, cols, marks))
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	n := 0
	row := make([]any, len(c.columns))
	dest := make([]any, len(c.columns))
	for i := range row {
		dest[i] = &row[i]
	}
	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return 0, err
		}
		if _, err := stmt.Exec(row...); err != nil {
			return 0, err
		}
		n++
	}
	if err := rows.Err(); err != nil {
		return 0, err
	}

	return n, tx.Commit()
}

// BackupAndMigrate copies the SQLite file to <path>.backup and migrates it
// to the DuckDB file next to it
func BackupAndMigrate(sqlitePath string) (*MigrationResult, error) {
	backupPath := sqlitePath + ".backup"

	src, err := os.Open(sqlitePath)
	if err != nil {
		return nil, fmt.Errorf("не удалось открыть исходный файл: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(backupPath)
	if err != nil {
		return nil, fmt.Errorf("не удалось создать резервную копию: %w", err)
	}
	defer dst.Close()

	if _, err := dst.ReadFrom(src); err != nil {
		return nil, fmt.Errorf("не удалось скопировать резервную копию: %w", err)
	}

	return MigrateSQLiteToDuckDB(sqlitePath, GetDuckDBPath(sqlitePath))
}
