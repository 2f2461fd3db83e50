package cli

import (
	"fmt"

	"github.com/n0roo/workshop/internal/catalog"
	"github.com/n0roo/workshop/internal/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Настройки проекта",
	Long: `Управление настройками проекта.

Файл настроек: .workshop/config.yaml

Примеры:
  workshop config show
  workshop config init --source yaml --path ideas.yaml
  workshop config init --source sqlite --section inbox`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Показать текущие настройки",
	RunE:  runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Создать файл настроек",
	RunE:  runConfigInit,
}

var (
	configForce   bool
	configSource  string
	configPath    string
	configSection string
)

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)

	configInitCmd.Flags().BoolVar(&configForce, "force", false, "перезаписать существующий файл")
	configInitCmd.Flags().StringVar(&configSource, "source", string(config.SourceStatic), "источник идей (static|yaml|sqlite|duckdb)")
	configInitCmd.Flags().StringVar(&configPath, "path", "", "путь к файлу источника")
	configInitCmd.Flags().StringVar(&configSection, "section", "catalog", "раздел по умолчанию")
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, root, err := loadConfig()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if jsonOut {
		return writeJSON(out, cfg)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	if config.Exists(root) {
		fmt.Fprintf(out, "# %s\n", config.Path(root))
	} else {
		fmt.Fprintln(out, "# настройки по умолчанию (файл не найден)")
	}
	fmt.Fprint(out, string(data))
	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	root := ProjectRoot()
	if config.Exists(root) && !configForce {
		return fmt.Errorf("файл настроек уже существует: %s (используйте --force)", config.Path(root))
	}

	if _, err := catalog.ParseSection(configSection); err != nil {
		return err
	}

	cfg := config.Default()
	cfg.Source = config.SourceConfig{Type: config.SourceType(configSource), Path: configPath}
	cfg.UI.DefaultSection = configSection
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := config.Save(root, cfg); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✅ Настройки сохранены: %s\n", config.Path(root))
	return nil
}
