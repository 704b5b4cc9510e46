package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizcard/internal/console"
	"github.com/abhisek/quizcard/internal/history"
	"github.com/abhisek/quizcard/internal/prompt"
	"github.com/abhisek/quizcard/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show or edit past quiz results",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List past results, most recent first",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings(cmd)
		if err != nil {
			return err
		}
		st, err := openStore(settings)
		if err != nil {
			return err
		}
		defer st.Close()

		recs, err := st.HistoryRepo().All(cmd.Context())
		if err != nil {
			return fmt.Errorf("list history: %w", err)
		}
		if len(recs) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No quizzes taken yet.")
			return nil
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-36s  %-16s  %-32s  %-6s  %s\n", "ID", "Date", "Quiz", "Level", "Score")
		for _, r := range recs {
			fmt.Fprintf(out, "%-36s  %-16s  %-32s  %-6s  %d/%d\n",
				r.ID, r.CreatedAt.Local().Format("2006-01-02 15:04"), r.Title,
				history.LevelOf(r), r.Score, r.TotalQuestions)
		}
		return nil
	},
}

var historyRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Remove a past result",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings(cmd)
		if err != nil {
			return err
		}
		st, err := openStore(settings)
		if err != nil {
			return err
		}
		defer st.Close()

		if yes, _ := cmd.Flags().GetBool("yes"); !yes {
			c := console.NewConfirmer(console.NewLineReader(os.Stdin), cmd.OutOrStdout())
			label, err := c.Confirm(cmd.Context(), prompt.RemoveRecord())
			if err != nil {
				return err
			}
			if !prompt.Accepted(label) {
				return nil
			}
		}

		err = st.HistoryRepo().Remove(cmd.Context(), args[0])
		if errors.Is(err, store.ErrRecordNotFound) {
			return fmt.Errorf("no record with id %q", args[0])
		}
		if err != nil {
			return fmt.Errorf("remove record: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Removed.")
		return nil
	},
}

func init() {
	historyRmCmd.Flags().BoolP("yes", "y", false, "Remove without asking")
	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyRmCmd)
}
