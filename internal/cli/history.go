package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/minelate/packscan/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List saved scans",
	Long:  `History lists the scans persisted in the history database.`,
	RunE:  runHistory,
}

var historyShowCmd = &cobra.Command{
	Use:   "show <scan-id>",
	Short: "Show a saved scan result as JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.PersistentFlags().String("history", "", "History database path (SQLite)")
}

func openHistory(cmd *cobra.Command) (*history.SQLiteStore, error) {
	path, _ := cmd.Flags().GetString("history")
	if path == "" {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return nil, err
		}
		path = cfg.HistoryPath
	}
	store, err := history.NewSQLiteStore(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history file %q: %w", path, err)
	}
	return store, nil
}

func runHistory(cmd *cobra.Command, args []string) error {
	store, err := openHistory(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	summaries, err := store.List(context.Background())
	if err != nil {
		return err
	}
	if len(summaries) == 0 {
		fmt.Println("No saved scans.")
		return nil
	}

	for _, s := range summaries {
		fmt.Printf("%s  %s  mods=%d keys=%d  %s\n",
			s.ID, s.CreatedAt.Format("2006-01-02 15:04"), s.TotalMods, s.TotalTranslatableKeys, s.ProjectPath)
	}
	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	store, err := openHistory(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	record, err := store.LoadByID(context.Background(), args[0])
	if err != nil {
		return err
	}
	if record == nil {
		return fmt.Errorf("scan %s not found", args[0])
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(record.Result)
}
