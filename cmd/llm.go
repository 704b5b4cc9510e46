package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizcard/internal/llm"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect language model usage",
}

var llmStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show token usage and estimated cost by purpose and model",
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

		usage, err := st.EventRepo().LLMUsage(cmd.Context())
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if len(usage) == 0 {
			fmt.Fprintln(out, "No LLM usage recorded yet.")
			return nil
		}

		fmt.Fprintf(out, "%-16s  %-28s  %6s  %6s  %10s  %10s  %10s\n",
			"Purpose", "Model", "Calls", "Failed", "Input", "Output", "Cost")
		fmt.Fprintln(out, strings.Repeat("─", 98))

		var calls, in, outTok int
		var cost float64
		for _, u := range usage {
			costStr := "-"
			if usd, ok := llm.EstimateCost(u.Model, llm.Usage{InputTokens: u.InputTokens, OutputTokens: u.OutputTokens}); ok {
				costStr = fmt.Sprintf("$%.4f", usd)
				cost += usd
			}
			model := u.Model
			if len(model) > 28 {
				model = model[:28]
			}
			fmt.Fprintf(out, "%-16s  %-28s  %6d  %6d  %10d  %10d  %10s\n",
				u.Purpose, model, u.Calls, u.Failures, u.InputTokens, u.OutputTokens, costStr)
			calls += u.Calls
			in += u.InputTokens
			outTok += u.OutputTokens
		}

		fmt.Fprintln(out, strings.Repeat("─", 98))
		fmt.Fprintf(out, "%-16s  %-28s  %6d  %6s  %10d  %10d  %10s\n",
			"Total", "", calls, "", in, outTok, fmt.Sprintf("$%.4f", cost))
		return nil
	},
}

func init() {
	llmCmd.AddCommand(llmStatsCmd)
}
