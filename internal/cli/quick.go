package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/minelate/packscan/internal/quickscan"
)

var quickCmd = &cobra.Command{
	Use:   "quick <dir-path>",
	Short: "Run the lightweight classification-only scan",
	Long: `Quick walks a directory tree and sorts files into jar, language,
and modpack buckets without running the full scan pipeline.`,
	Args: cobra.ExactArgs(1),
	RunE: runQuick,
}

func init() {
	rootCmd.AddCommand(quickCmd)
}

func runQuick(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	result, err := quickscan.Scan(args[0])
	if err != nil {
		return err
	}

	if format == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	fmt.Printf("Total files:   %d\n", result.TotalFiles)
	fmt.Printf("Jar files:     %d\n", len(result.JarFiles))
	fmt.Printf("Language files: %d\n", len(result.LangFiles))
	fmt.Printf("Modpack files: %d\n", len(result.ModpackFiles))
	for _, e := range result.Errors {
		fmt.Printf("[x] %s\n", e)
	}
	return nil
}
