package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/minelate/packscan/internal/engine"
)

var detectCmd = &cobra.Command{
	Use:   "detect <dir-path>",
	Short: "Detect the project type of a directory",
	Long:  `Detect reports whether a directory looks like a modpack, a mods folder, a resource pack, or none of those.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := os.Stat(args[0]); err != nil {
			return fmt.Errorf("directory does not exist: %s", args[0])
		}
		fmt.Println(engine.DetectProjectType(args[0]))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(detectCmd)
}
