package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/n0roo/workshop/internal/catalog"
	"github.com/n0roo/workshop/internal/idea"
	"github.com/n0roo/workshop/internal/tui"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const loadTimeout = 10 * time.Second

var (
	ideasSection string
	ideasSearch  string
)

var ideasCmd = &cobra.Command{
	Use:   "ideas",
	Short: "Просмотр идей",
}

var ideasListCmd = &cobra.Command{
	Use:   "list",
	Short: "Список идей раздела",
	Long: `Выводит идеи раздела, отфильтрованные по описанию.

Разделы: inbox (статус inbox), catalog (статус processed), projects (всегда пусто).
Поиск без учёта регистра и только по описанию.

Примеры:
  workshop ideas list
  workshop ideas list --section inbox
  workshop ideas list --search дуб --json`,
	RunE: runIdeasList,
}

var ideasShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Детали идеи",
	Args:  cobra.ExactArgs(1),
	RunE:  runIdeasShow,
}

func init() {
	rootCmd.AddCommand(ideasCmd)
	ideasCmd.AddCommand(ideasListCmd)
	ideasCmd.AddCommand(ideasShowCmd)

	ideasListCmd.Flags().StringVar(&ideasSection, "section", "", "раздел (inbox|catalog|projects), по умолчанию из конфигурации")
	ideasListCmd.Flags().StringVar(&ideasSearch, "search", "", "строка поиска по описанию")
}

func loadIdeas() ([]idea.Idea, string, error) {
	src, cfg, closeFn, err := openSource()
	if err != nil {
		return nil, "", err
	}
	defer closeFn()

	ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
	defer cancel()

	ideas, err := src.Load(ctx)
	if err != nil {
		return nil, "", err
	}
	return ideas, cfg.UI.DefaultSection, nil
}

func runIdeasList(cmd *cobra.Command, args []string) error {
	ideas, defaultSection, err := loadIdeas()
	if err != nil {
		return err
	}

	name := ideasSection
	if name == "" {
		name = defaultSection
	}
	section, err := catalog.ParseSection(name)
	if err != nil {
		return err
	}

	vm := catalog.New(ideas)
	vm.SetActiveSection(section)
	vm.SetSearchQuery(ideasSearch)
	visible := vm.Visible()

	out := cmd.OutOrStdout()
	if jsonOut {
		if visible == nil {
			visible = []idea.Idea{}
		}
		return writeJSON(out, visible)
	}

	if len(visible) == 0 {
		fmt.Fprintf(out, "%s: ничего не найдено\n", section.Title())
		return nil
	}
	writeIdeaTable(out, visible)
	return nil
}

func runIdeasShow(cmd *cobra.Command, args []string) error {
	ideas, _, err := loadIdeas()
	if err != nil {
		return err
	}

	it, ok := findIdea(ideas, args[0])
	if !ok {
		return fmt.Errorf("идея '%s' не найдена", args[0])
	}

	out := cmd.OutOrStdout()
	if jsonOut {
		return writeJSON(out, it)
	}

	styled, width := terminalWidth(out)
	fmt.Fprintln(out, tui.RenderMarkdown(tui.IdeaMarkdown(it), width, styled))
	return nil
}

func findIdea(ideas []idea.Idea, id string) (idea.Idea, bool) {
	for _, it := range ideas {
		if it.ID == id {
			return it, true
		}
	}
	return idea.Idea{}, false
}

func writeIdeaTable(w io.Writer, ideas []idea.Idea) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "STATUS", "DESCRIPTION", "PRODUCT TYPE", "TECHNIQUE", "MATERIAL"})
	table.SetAutoWrapText(false)
	for _, it := range ideas {
		productTypes, _ := it.Tags.Get(idea.TagProductType)
		techniques, _ := it.Tags.Get(idea.TagTechnique)
		materials, _ := it.Tags.Get(idea.TagMaterial)
		table.Append([]string{
			it.ID,
			string(it.Status),
			it.Description,
			strings.Join(productTypes, ", "),
			strings.Join(techniques, ", "),
			strings.Join(materials, ", "),
		})
	}
	table.Render()
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// terminalWidth reports whether w is an interactive terminal and its width.
// Non-terminals get 80 columns.
func terminalWidth(w io.Writer) (bool, int) {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return false, 80
	}
	if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
		return true, width
	}
	return true, 80
}
