package cli

import (
	"fmt"
	"os"
	"sort"

	"github.com/n0roo/workshop/internal/db"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Перенести идеи из SQLite в DuckDB",
	Long: `Копирует таблицы идей и тегов из SQLite в DuckDB-файл рядом с ним.

Примеры:
  workshop migrate
  workshop migrate --backup
  workshop migrate --source ~/ideas.db --force`,
	RunE: runMigrate,
}

var (
	migrateSource string
	migrateForce  bool
	migrateBackup bool
)

func init() {
	rootCmd.AddCommand(migrateCmd)

	migrateCmd.Flags().StringVar(&migrateSource, "source", "", "путь к SQLite (по умолчанию --db)")
	migrateCmd.Flags().BoolVar(&migrateForce, "force", false, "перезаписать существующий DuckDB-файл")
	migrateCmd.Flags().BoolVar(&migrateBackup, "backup", false, "сохранить копию SQLite перед переносом")
}

func runMigrate(cmd *cobra.Command, args []string) error {
	sqlitePath := migrateSource
	if sqlitePath == "" {
		sqlitePath = GetDBPath()
	}

	if _, err := os.Stat(sqlitePath); os.IsNotExist(err) {
		return fmt.Errorf("SQLite-файл не найден: %s", sqlitePath)
	}

	duckdbPath := db.GetDuckDBPath(sqlitePath)
	if _, err := os.Stat(duckdbPath); err == nil && !migrateForce {
		return fmt.Errorf("DuckDB-файл уже существует: %s (используйте --force)", duckdbPath)
	}

	var (
		result *db.MigrationResult
		err    error
	)
	if migrateBackup {
		result, err = db.BackupAndMigrate(sqlitePath)
	} else {
		result, err = db.MigrateSQLiteToDuckDB(sqlitePath, duckdbPath)
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if jsonOut {
		return writeJSON(out, result)
	}

	fmt.Fprintf(out, "🔄 %s → %s\n", sqlitePath, duckdbPath)
	tables := make([]string, 0, len(result.RowsMigrated))
	for table := range result.RowsMigrated {
		tables = append(tables, table)
	}
	sort.Strings(tables)
	for _, table := range tables {
		fmt.Fprintf(out, "   %-10s %d\n", table, result.RowsMigrated[table])
	}
	for _, e := range result.Errors {
		fmt.Fprintf(out, "   ⚠️  %s\n", e)
	}
	if len(result.Errors) > 0 {
		return fmt.Errorf("перенос завершён с ошибками: %d", len(result.Errors))
	}
	return nil
}
