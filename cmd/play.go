package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizcard/internal/console"
	"github.com/abhisek/quizcard/internal/feedback"
	"github.com/abhisek/quizcard/internal/history"
	"github.com/abhisek/quizcard/internal/session"
)

var playCmd = &cobra.Command{
	Use:   "play <quiz-id>",
	Short: "Take a quiz in line mode, without the full-screen UI",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
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

		recorder := history.NewRecorder(st.HistoryRepo())
		engine := session.NewEngine(cat,
			settings.Gate(feedback.InstantAnimator{}),
			session.WithCompletionHandlers(recorder),
		)

		_, err = console.NewPlayer(engine, os.Stdin, cmd.OutOrStdout()).Play(cmd.Context(), args[0])
		return err
	},
}
