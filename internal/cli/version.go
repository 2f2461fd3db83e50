package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Set with -ldflags "-X github.com/n0roo/workshop/internal/cli.Version=..."
var (
	Version = "0.1.0"
	Commit  = "none"
	Date    = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Версия и сведения о сборке",
	Run:   runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.Version = Version
}

func runVersion(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()
	info := map[string]string{
		"version": Version,
		"commit":  Commit,
		"date":    Date,
		"go":      runtime.Version(),
		"os":      runtime.GOOS,
		"arch":    runtime.GOARCH,
	}

	if jsonOut {
		writeJSON(out, info)
		return
	}

	fmt.Fprintf(out, "Мастерская %s\n\n", Version)
	fmt.Fprintf(out, "  Commit:  %s\n", Commit)
	fmt.Fprintf(out, "  Built:   %s\n", Date)
	fmt.Fprintf(out, "  Go:      %s\n", runtime.Version())
	fmt.Fprintf(out, "  OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
}
