package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizcard/internal/authoring"
	"github.com/abhisek/quizcard/internal/catalog"
	"github.com/abhisek/quizcard/internal/llm"
)

var authorCmd = &cobra.Command{
	Use:   "author",
	Short: "Draft a new quiz with a language model",
	Long: `Draft a new quiz with a language model and write it as a catalog file.

The provider is chosen with QUIZCARD_LLM_PROVIDER (anthropic, openai, gemini,
openrouter, mock) and its key with QUIZCARD_<PROVIDER>_API_KEY. When --out
names an existing catalog the quiz is appended to it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		topic, _ := cmd.Flags().GetString("topic")
		count, _ := cmd.Flags().GetInt("questions")
		lv, _ := cmd.Flags().GetString("level")
		out, _ := cmd.Flags().GetString("out")

		level, err := catalog.ParseLevel(lv)
		if err != nil {
			return err
		}

		settings, err := loadSettings(cmd)
		if err != nil {
			return err
		}
		st, err := openStore(settings)
		if err != nil {
			return err
		}
		defer st.Close()

		existing, err := readCatalogFile(out)
		if err != nil {
			return err
		}
		base, err := loadCatalog(settings)
		if err != nil {
			return err
		}
		var avoid []string
		for _, quizzes := range [][]catalog.Quiz{base.All(), existing} {
			for _, q := range quizzes {
				for _, question := range q.Questions {
					avoid = append(avoid, question.Title)
				}
			}
		}

		ctx := cmd.Context()
		provider, err := llm.New(ctx, llm.ConfigFromEnv(nil), llm.Options{Log: st.EventRepo()})
		if err != nil {
			return fmt.Errorf("LLM provider not configured: %w", err)
		}

		draft, err := authoring.New(provider, authoring.DefaultConfig()).Generate(ctx, authoring.Request{
			Topic:     topic,
			Level:     level,
			Questions: count,
			Avoid:     avoid,
		})
		if err != nil {
			return err
		}

		quizzes := authoring.Append(existing, draft.Quiz)
		raw, err := catalog.Encode(quizzes)
		if err != nil {
			return fmt.Errorf("encode catalog: %w", err)
		}
		// Reparse so nothing is written that the app would refuse to load.
		if _, err := catalog.Parse(out, raw); err != nil {
			return err
		}

		if out == "" {
			fmt.Fprintln(cmd.OutOrStdout(), string(raw))
		} else if err := os.WriteFile(out, append(raw, '\n'), 0o644); err != nil {
			return fmt.Errorf("write catalog: %w", err)
		}

		q := quizzes[len(quizzes)-1]
		fmt.Fprintf(cmd.ErrOrStderr(), "Drafted %q (%s, %d questions) with %s: %d tokens",
			q.ID, q.Level, len(q.Questions), draft.Model, draft.Usage.Total())
		if usd, ok := llm.EstimateCost(draft.Model, draft.Usage); ok {
			fmt.Fprintf(cmd.ErrOrStderr(), ", about $%.4f", usd)
		}
		fmt.Fprintln(cmd.ErrOrStderr())
		return nil
	},
}

// readCatalogFile returns the quizzes in path, or none when path is empty
// or does not exist.
func readCatalogFile(path string) ([]catalog.Quiz, error) {
	if path == "" {
		return nil, nil
	}
	cat, err := catalog.LoadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return cat.All(), nil
}

func init() {
	authorCmd.Flags().String("topic", "", "What the quiz is about")
	authorCmd.Flags().Int("questions", 5, "Number of questions")
	authorCmd.Flags().String("level", "medium", "Difficulty: easy, medium or hard")
	authorCmd.Flags().StringP("out", "o", "", "Catalog file to write or extend (default stdout)")
	authorCmd.MarkFlagRequired("topic")
}
