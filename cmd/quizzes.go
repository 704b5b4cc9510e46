package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizcard/internal/catalog"
)

var quizzesCmd = &cobra.Command{
	Use:   "quizzes",
	Short: "List the quizzes in the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings(cmd)
		if err != nil {
			return err
		}
		cat, err := loadCatalog(settings)
		if err != nil {
			return err
		}

		quizzes := cat.All()
		if lv, _ := cmd.Flags().GetString("level"); lv != "" {
			level, err := catalog.ParseLevel(lv)
			if err != nil {
				return err
			}
			quizzes = cat.ByLevel(level)
		}

		if len(quizzes) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No quizzes found.")
			return nil
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-24s  %-32s  %-6s  %s\n", "ID", "Title", "Level", "Questions")
		for _, q := range quizzes {
			fmt.Fprintf(out, "%-24s  %-32s  %-6s  %d\n", q.ID, q.Title, q.Level, len(q.Questions))
		}
		return nil
	},
}

func init() {
	quizzesCmd.Flags().String("level", "", "Only list quizzes of this level (easy, medium, hard)")
}
