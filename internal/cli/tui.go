package cli

import (
	"github.com/n0roo/workshop/internal/catalog"
	"github.com/n0roo/workshop/internal/config"
	"github.com/n0roo/workshop/internal/tui"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Запустить интерактивный браузер",
	RunE:  runTui,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTui(cmd *cobra.Command, args []string) error {
	src, cfg, closeFn, err := openSource()
	if err != nil {
		return err
	}
	defer closeFn()

	opts, err := tuiOptions(cfg)
	if err != nil {
		return err
	}
	opts.LogPath = debugLog

	return tui.Run(src, opts)
}

func tuiOptions(cfg *config.Config) (tui.Options, error) {
	opts := tui.DefaultOptions()

	if cfg.UI.DefaultSection != "" {
		section, err := catalog.ParseSection(cfg.UI.DefaultSection)
		if err != nil {
			return opts, err
		}
		opts.Section = section
	}
	opts.TechniqueBadges = cfg.UI.TechniqueBadges
	opts.AltScreen = cfg.UI.AltScreen

	return opts, nil
}
