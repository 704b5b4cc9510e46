// Package authoring drafts new quizzes with a language model.
package authoring

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/abhisek/quizcard/internal/catalog"
	"github.com/abhisek/quizcard/internal/llm"
)

// Purpose labels authoring requests in the request log.
const Purpose = "quiz-authoring"

// QuizSchema is the structured output requested from the model.
var QuizSchema = &llm.Schema{
	Name:        "quiz-draft",
	Description: "A multiple-choice quiz with its questions",
	Definition:  catalog.QuizSchemaDefinition,
}

// Request describes the quiz to draft.
type Request struct {
	Topic     string
	Level     catalog.Level
	Questions int

	// Avoid lists question titles that must not be repeated, usually the
	// titles already in the catalog.
	Avoid []string
}

func (r Request) validate() error {
	switch {
	case r.Topic == "":
		return errors.New("topic is required")
	case !r.Level.Valid():
		return fmt.Errorf("invalid level %d", int(r.Level))
	case r.Questions < 1:
		return fmt.Errorf("question count must be positive, got %d", r.Questions)
	}
	return nil
}

// Config tunes the Generator.
type Config struct {
	// Checks run in order on every draft. The first failure rejects it.
	Checks []Check

	MaxTokens   int
	Temperature float64

	// MaxAvoid caps how many titles from Request.Avoid go into the prompt.
	MaxAvoid int

	// Attempts is how many drafts to request before giving up when a
	// check fails with a retryable error.
	Attempts int
}

// DefaultConfig returns the standard checks and limits.
func DefaultConfig() Config {
	return Config{
		Checks:      []Check{Structure{}, Duplicates{}},
		MaxTokens:   4096,
		Temperature: 0.7,
		MaxAvoid:    30,
		Attempts:    2,
	}
}

// Generator drafts quizzes through an llm.Provider.
type Generator struct {
	provider llm.Provider
	config   Config
}

// New creates a Generator.
func New(provider llm.Provider, cfg Config) *Generator {
	if cfg.Attempts < 1 {
		cfg.Attempts = 1
	}
	return &Generator{provider: provider, config: cfg}
}

// Draft is a generated quiz with the usage it cost.
type Draft struct {
	Quiz  catalog.Quiz
	Usage llm.Usage
	Model string
}

// Generate asks the model for a quiz and checks the result. The id is
// derived from the title, and the level is the one requested.
func (g *Generator) Generate(ctx context.Context, req Request) (*Draft, error) {
	if err := req.validate(); err != nil {
		return nil, fmt.Errorf("authoring request: %w", err)
	}
	ctx = llm.WithPurpose(ctx, Purpose)

	prompt := llm.UserPrompt(systemPrompt, userMessage(req, g.config.MaxAvoid))
	prompt.Schema = QuizSchema
	prompt.MaxTokens = g.config.MaxTokens
	prompt.Temperature = g.config.Temperature

	var (
		usage llm.Usage
		err   error
	)
	for range g.config.Attempts {
		var d *Draft
		d, err = g.attempt(ctx, prompt, req)
		if d != nil {
			usage.InputTokens += d.Usage.InputTokens
			usage.OutputTokens += d.Usage.OutputTokens
		}
		if err == nil {
			d.Usage = usage
			return d, nil
		}
		var verr *ValidationError
		if !errors.As(err, &verr) || !verr.Retryable {
			return nil, err
		}
	}
	return nil, err
}

// attempt returns the draft even when a check rejects it so the caller can
// account for its usage.
func (g *Generator) attempt(ctx context.Context, prompt llm.Request, req Request) (*Draft, error) {
	resp, err := g.provider.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("generate quiz: %w", err)
	}

	var q catalog.Quiz
	if err := json.Unmarshal(resp.Content, &q); err != nil {
		return nil, fmt.Errorf("decode quiz: %w", err)
	}
	q.Level = req.Level
	q.ID = Slug(q.Title)

	d := &Draft{Quiz: q, Usage: resp.Usage, Model: resp.Model}
	for _, c := range g.config.Checks {
		if verr := c.Check(q, req); verr != nil {
			return d, verr
		}
	}
	if err := q.Validate(); err != nil {
		return d, &ValidationError{Check: "catalog", Message: err.Error()}
	}
	return d, nil
}
