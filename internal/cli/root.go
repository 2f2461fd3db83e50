package cli

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/n0roo/workshop/internal/config"
	"github.com/n0roo/workshop/internal/db"
	"github.com/n0roo/workshop/internal/source"
	"github.com/spf13/cobra"
)

var (
	dbPath   string
	rootDir  string
	jsonOut  bool
	debugLog string
)

var rootCmd = &cobra.Command{
	Use:   "workshop",
	Short: "Каталог идей для столярной мастерской",
	Long: `Мастерская: каталог идей для столярных проектов.

Без подкоманды запускает интерактивный браузер:
  - Входящие: новые, ещё не разобранные идеи
  - Каталог: разобранные идеи
  - Проекты: пока пусто

Идеи загружаются из источника, указанного в .workshop/config.yaml
(встроенный набор, YAML-файл, SQLite или DuckDB).`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
	RunE:              runTui,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootDir, "dir", "", "каталог проекта (по умолчанию ищется .workshop вверх от текущего)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "путь к БД (по умолчанию .workshop/ideas.db)")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "вывод в JSON")
	rootCmd.PersistentFlags().StringVar(&debugLog, "debug", "", "писать журнал в файл")
}

// setupLogging sends the standard logger to --debug, or discards it
func setupLogging(cmd *cobra.Command, args []string) error {
	if debugLog == "" {
		log.SetOutput(io.Discard)
		return nil
	}
	f, err := os.OpenFile(debugLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("не удалось открыть журнал: %w", err)
	}
	log.SetOutput(f)
	log.SetPrefix("workshop ")
	return nil
}

// ProjectRoot returns the --dir flag or the nearest directory holding .workshop
func ProjectRoot() string {
	if rootDir != "" {
		return rootDir
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return config.ResolveRoot(cwd)
}

// GetDBPath returns the database path
func GetDBPath() string {
	if dbPath != "" {
		return dbPath
	}
	return config.DefaultDBPath(ProjectRoot())
}

func loadConfig() (*config.Config, string, error) {
	root := ProjectRoot()
	cfg, err := config.Load(root)
	if err != nil {
		return nil, "", err
	}
	return cfg, root, nil
}

// openSource builds the configured idea source. The --db flag forces the
// database path for the sqlite and duckdb sources.
func openSource() (source.Source, *config.Config, func() error, error) {
	cfg, root, err := loadConfig()
	if err != nil {
		return nil, nil, nil, err
	}
	applyDBFlag(cfg)

	src, closeFn, err := source.New(cfg, root, GetDBPath())
	if err != nil {
		return nil, nil, nil, fmt.Errorf("не удалось открыть источник идей: %w", err)
	}
	return src, cfg, closeFn, nil
}

// applyDBFlag points the sqlite and duckdb sources at --db when it is set
func applyDBFlag(cfg *config.Config) {
	if dbPath != "" && source.DBType(cfg.Source.Type) != "" {
		cfg.Source.Path = dbPath
	}
}

// openTargetDB opens the database the configured source reads from.
// Path resolution matches openSource: --db, then source.path, then the
// default .workshop/ideas.db.
func openTargetDB() (db.Database, error) {
	cfg, root, err := loadConfig()
	if err != nil {
		return nil, err
	}

	typ := source.DBType(cfg.Source.Type)
	if typ == "" {
		return nil, fmt.Errorf("источник %q не хранится в базе: укажите sqlite или duckdb (workshop config init --source sqlite)", cfg.Source.Type)
	}
	applyDBFlag(cfg)

	path := cfg.ResolvePath(root)
	if path == "" {
		path = GetDBPath()
	}
	return db.OpenType(path, typ)
}
