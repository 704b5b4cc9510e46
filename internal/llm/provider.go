// Package llm talks to hosted language models for quiz authoring. Every
// backend is reached through Provider, and cross-cutting behavior such as
// retries and request logging is layered on as decorators.
package llm

import (
	"context"
	"encoding/json"
)

// Provider generates a completion for a request.
type Provider interface {
	// Generate sends req and returns the model output. When req.Schema is
	// set the output is JSON that has been validated against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model the provider is configured for.
	ModelID() string
}

// Request is a single-turn or multi-turn prompt.
type Request struct {
	System   string
	Messages []Message

	// Schema, when set, asks the backend for structured JSON output.
	Schema *Schema

	MaxTokens   int
	Temperature float64
}

// Message is one conversation turn.
type Message struct {
	Role    Role
	Content string
}

// Role is the sender of a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// UserPrompt builds a request with a system prompt and one user turn.
func UserPrompt(system, user string) Request {
	return Request{
		System:   system,
		Messages: []Message{{Role: RoleUser, Content: user}},
	}
}

// Schema is a named JSON Schema for structured output.
type Schema struct {
	// Name is a kebab-case identifier, e.g. "quiz-draft".
	Name        string
	Description string
	Definition  map[string]any
}

// StopReason is why generation ended, normalized across backends.
type StopReason string

const (
	StopEnd       StopReason = "end"
	StopMaxTokens StopReason = "max_tokens"
)

// Response is the model output.
type Response struct {
	Content    json.RawMessage
	Usage      Usage
	Model      string
	StopReason StopReason
}

// Usage is the token count of one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
}

// Total returns input plus output tokens.
func (u Usage) Total() int {
	return u.InputTokens + u.OutputTokens
}
