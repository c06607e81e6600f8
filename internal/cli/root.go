package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// Version information (set by build flags)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "packscan",
	Short: "Minecraft modpack and localization-resource scanner",
	Long: `packscan - Minecraft modpack and localization-resource scanner

Scans a mod/modpack project directory and produces structured metadata
(modpack manifest, mod jar list, language-file inventory) for downstream
translation tooling.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(versionCmd)

	// Output flags
	rootCmd.PersistentFlags().IntP("verbose", "v", 0, "Verbosity level (0-3)")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output file path")
	rootCmd.PersistentFlags().StringP("format", "f", "text", "Output format (text, json)")

	// Backend flags
	rootCmd.PersistentFlags().String("backend-url", "", "Project-management backend API root")
	rootCmd.PersistentFlags().Duration("timeout", 30*time.Second, "Backend request timeout")

	// Config flag
	rootCmd.PersistentFlags().String("config", "", "Config file path (default: per-user config dir)")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("packscan %s (commit: %s, built: %s)\n", version, commit, date)
	},
}
