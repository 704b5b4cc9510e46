package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizcard/internal/catalog"
	"github.com/abhisek/quizcard/internal/config"
	"github.com/abhisek/quizcard/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "quizcard",
	Short: "Flash-card quizzes in the terminal",
	Long:  "quizcard runs multiple-choice quizzes as swipeable cards and keeps a history of your results.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides QUIZCARD_DB env var)")
	rootCmd.PersistentFlags().String("catalog", "", "Path to a catalog JSON file replacing the built-in quizzes")
	rootCmd.PersistentFlags().String("config", "", "Path to config.toml (default $XDG_CONFIG_HOME/quizcard/config.toml)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(quizzesCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(authorCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadSettings resolves defaults, the config file and the persistent flags.
func loadSettings(cmd *cobra.Command) (config.Settings, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = config.DefaultConfigPath()
	}
	db, _ := cmd.Flags().GetString("db")
	cat, _ := cmd.Flags().GetString("catalog")
	return config.Load(path, config.Overrides{DBPath: db, CatalogPath: cat})
}

// openStore opens the history database named by s.
func openStore(s config.Settings) (*store.Store, error) {
	if err := store.EnsureDir(s.DBPath); err != nil {
		return nil, fmt.Errorf("prepare database directory: %w", err)
	}
	st, err := store.Open(s.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

// loadCatalog returns the catalog file named by s, or the built-in one.
func loadCatalog(s config.Settings) (*catalog.Static, error) {
	if s.CatalogPath == "" {
		return catalog.Default()
	}
	return catalog.LoadFile(s.CatalogPath)
}
