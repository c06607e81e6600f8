package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/minelate/packscan/internal/backend"
	"github.com/minelate/packscan/internal/config"
	"github.com/minelate/packscan/internal/engine"
	"github.com/minelate/packscan/internal/history"
	"github.com/minelate/packscan/internal/registry"
	"github.com/minelate/packscan/internal/report"
)

var scanCmd = &cobra.Command{
	Use:   "scan <project-path>",
	Short: "Run the full scan pipeline against a project directory",
	Long: `Scan detects the modpack manifest, catalogs mod jar files, and
inventories translatable language resources under the given project
directory, then prints a report.`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)
	// History and backend submission are scan-specific.
	scanCmd.Flags().String("history", "", "History database path for saving scan results (SQLite)")
	scanCmd.Flags().Bool("create-project", false, "Register the completed scan with the backend")
}

// runScan is the main scan command handler. It wires up the full pipeline:
// registry → scanner → reporter, with optional history and backend steps.
func runScan(cmd *cobra.Command, args []string) error {
	projectPath := args[0]

	// ------------------------------------------------------------------ //
	// 1. Read flags and config
	// ------------------------------------------------------------------ //
	verbose, _ := cmd.Flags().GetInt("verbose")
	outputPath, _ := cmd.Flags().GetString("output")
	format, _ := cmd.Flags().GetString("format")
	historyPath, _ := cmd.Flags().GetString("history")
	createProject, _ := cmd.Flags().GetBool("create-project")
	backendURL, _ := cmd.Flags().GetString("backend-url")
	timeout, _ := cmd.Flags().GetDuration("timeout")

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if backendURL == "" {
		backendURL = cfg.BackendURL
	}
	if historyPath == "" && cfg.AutoSave {
		historyPath = cfg.HistoryPath
	}

	// ------------------------------------------------------------------ //
	// 2. Context (CTRL+C cancels the scan gracefully)
	// ------------------------------------------------------------------ //
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	// ------------------------------------------------------------------ //
	// 3. Build scanner
	// ------------------------------------------------------------------ //
	scanCfg := engine.DefaultScanConfig()
	scanCfg.Verbose = verbose

	scanner := engine.NewScanner(registry.New(), scanCfg)
	if verbose > 0 {
		scanner.SetProgressCallback(func(p engine.ScanProgress) {
			fmt.Printf("[*] %3.0f%% %s\n", p.Progress, p.Message)
		})
		fmt.Printf("[*] Project: %s\n", projectPath)
	}

	// ------------------------------------------------------------------ //
	// 4. Run the pipeline
	// ------------------------------------------------------------------ //
	result, err := scanner.Scan(ctx, projectPath)
	if err != nil {
		return err
	}

	// ------------------------------------------------------------------ //
	// 5. History (optional): persist the completed result
	// ------------------------------------------------------------------ //
	if historyPath != "" {
		if err := cfg.EnsureDirectories(); err != nil {
			return err
		}
		store, err := history.NewSQLiteStore(historyPath)
		if err != nil {
			return fmt.Errorf("failed to open history file %q: %w", historyPath, err)
		}
		defer store.Close()

		if err := store.Save(ctx, result); err != nil {
			return err
		}
		if verbose > 0 {
			fmt.Printf("[*] Saved scan %s to %s\n", result.ScanID, historyPath)
		}
	}

	// ------------------------------------------------------------------ //
	// 6. Backend (optional): create a translation project
	// ------------------------------------------------------------------ //
	if createProject {
		client, err := backend.NewClient(backend.ClientOptions{
			BaseURL: backendURL,
			Timeout: timeout,
		})
		if err != nil {
			return err
		}
		projectID, err := client.CreateProject(ctx, result)
		if err != nil {
			return err
		}
		fmt.Printf("[+] Created project %s\n", projectID)
	}

	// ------------------------------------------------------------------ //
	// 7. Report
	// ------------------------------------------------------------------ //
	reporter, err := report.New(format)
	if err != nil {
		return err
	}
	if text, ok := reporter.(*report.TextReporter); ok {
		text.Verbose = verbose
	}

	out := os.Stdout
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	return reporter.Generate(ctx, result, out)
}

// loadConfig reads the config file named by --config, or the default
// per-user location.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}
