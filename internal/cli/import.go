package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/n0roo/workshop/internal/source"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file.yaml>",
	Short: "Загрузить идеи из YAML в базу",
	Long: `Проверяет YAML-файл идей и записывает его в базу, заменяя прежнее содержимое.

Запись идёт в базу источника из .workshop/config.yaml (sqlite или duckdb):
--db, иначе source.path, иначе .workshop/ideas.db. Источники static и yaml
не хранятся в базе, для них импорт недоступен.

Формат файла:
  ideas:
    - id: "1"
      image_url: https://...
      description: Обеденный стол из дуба
      status: processed
      tags:
        productType: [Стол]
        material: [Дуб]`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

var exportCmd = &cobra.Command{
	Use:   "export [file.yaml]",
	Short: "Выгрузить идеи текущего источника в YAML",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExport,
}

func init() {
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(exportCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
	defer cancel()

	ideas, err := source.NewYAMLFile(args[0]).Load(ctx)
	if err != nil {
		return err
	}

	database, err := openTargetDB()
	if err != nil {
		return err
	}
	defer database.Close()

	if err := source.Import(ctx, database, ideas); err != nil {
		return err
	}
	log.Printf("imported %d ideas into %s", len(ideas), database.Path())

	fmt.Fprintf(cmd.OutOrStdout(), "✅ Загружено идей: %d → %s\n", len(ideas), database.Path())
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	ideas, _, err := loadIdeas()
	if err != nil {
		return err
	}

	data, err := source.MarshalYAML(ideas)
	if err != nil {
		return err
	}

	if len(args) == 0 {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(args[0], data, 0644); err != nil {
		return fmt.Errorf("не удалось записать файл: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "✅ Выгружено идей: %d → %s\n", len(ideas), args[0])
	return nil
}
