package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/quizcard/internal/app"
)

// runApp opens the store, loads the catalog and launches the TUI.
func runApp(cmd *cobra.Command) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	cat, err := loadCatalog(settings)
	if err != nil {
		return err
	}
	st, err := openStore(settings)
	if err != nil {
		return err
	}
	defer st.Close()

	return app.Run(app.Options{
		Catalog:  cat,
		History:  st.HistoryRepo(),
		Settings: settings,
	})
}
