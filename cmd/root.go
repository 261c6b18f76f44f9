// Package cmd implements the tmanina command line interface.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"tmanina/internal/cli"
	"tmanina/internal/config"
	"tmanina/internal/progress"
	"tmanina/internal/storage"

	"github.com/spf13/cobra"
)

var (
	flagDataDir string
	flagStore   string
	flagQuiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "tmanina",
	Short: "Daily dhikr tracker",
	Long:  "Track daily remembrance: tasbih counts, adhkar, streaks, and prayer times.",
	RunE:  runStats,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Data directory (default XDG data dir)")
	rootCmd.PersistentFlags().StringVar(&flagStore, "store", "", "Progress backend: file or sqlite (default from config)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress decorative output")
}

// loadConfigOrDefault loads config, returning defaults on error so every
// command can run before `tmanina` has ever been configured.
func loadConfigOrDefault() config.Config {
	cfg, err := config.Load()
	if err != nil {
		return config.DefaultConfig()
	}
	return cfg
}

func dataDir(cfg config.Config) string {
	if flagDataDir != "" {
		return flagDataDir
	}
	if cfg.General.DataDir != "" {
		return cfg.General.DataDir
	}
	return storage.DataDir()
}

// openStore opens the progress store over the configured backend.
// The returned closer is a no-op for the file backend.
func openStore(cfg config.Config) (*progress.Store, func() error, error) {
	backendName := cfg.General.Store
	if flagStore != "" {
		backendName = flagStore
	}

	dir := dataDir(cfg)

	switch backendName {
	case "sqlite":
		db, err := storage.OpenSQLite(filepath.Join(dir, "tmanina.db"))
		if err != nil {
			return nil, nil, fmt.Errorf("opening sqlite backend: %w", err)
		}
		return progress.NewStore(db), db.Close, nil
	case "", "file":
		fb, err := storage.NewFileBackend(dir)
		if err != nil {
			return nil, nil, fmt.Errorf("opening file backend: %w", err)
		}
		return progress.NewStore(fb), func() error { return nil }, nil
	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", backendName)
	}
}

func runStats(_ *cobra.Command, _ []string) error {
	cfg := loadConfigOrDefault()
	st, closeStore, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = closeStore() }()

	snap := st.Snapshot(time.Now())

	fmt.Println()
	if !flagQuiet {
		fmt.Println(cli.RenderTitle("TMANINA · طمأنينة"))
		fmt.Println()
	}

	fmt.Print(cli.RenderKeyValues([][2]string{
		{"Today", cli.FormatNumber(int64(snap.Today))},
		{"This week", cli.FormatNumber(int64(snap.Week))},
		{"This month", cli.FormatNumber(int64(snap.Month))},
		{"Streak", cli.FormatStreak(snap.Streak)},
	}))
	fmt.Println()

	return nil
}
