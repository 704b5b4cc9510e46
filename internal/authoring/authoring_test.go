package authoring

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quizcard/internal/catalog"
	"github.com/abhisek/quizcard/internal/llm"
)

func draftJSON(t *testing.T, title string, questions ...catalog.Question) json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(catalog.Quiz{
		ID:          "ignored",
		Title:       title,
		Description: "drafted",
		Level:       catalog.LevelEasy,
		Questions:   questions,
	})
	require.NoError(t, err)
	return raw
}

var (
	qDefer = catalog.Question{Title: "When does a deferred call run?", Choices: []string{"Immediately", "When the function returns"}, Correct: 1}
	qNil   = catalog.Question{Title: "What is the zero value of a map?", Choices: []string{"nil", "empty map", "0"}, Correct: 0}
)

func request() Request {
	return Request{Topic: "Go", Level: catalog.LevelMedium, Questions: 2}
}

func TestGenerate_Success(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: draftJSON(t, "Go Gotchas!", qDefer, qNil),
		Usage:   llm.Usage{InputTokens: 100, OutputTokens: 200},
	})
	g := New(mock, DefaultConfig())

	d, err := g.Generate(context.Background(), request())
	require.NoError(t, err)

	assert.Equal(t, "go-gotchas", d.Quiz.ID)
	assert.Equal(t, catalog.LevelMedium, d.Quiz.Level)
	assert.Len(t, d.Quiz.Questions, 2)
	assert.Equal(t, 300, d.Usage.Total())

	calls := mock.Calls()
	require.Len(t, calls, 1)
	assert.Same(t, QuizSchema, calls[0].Schema)
	assert.Contains(t, calls[0].Messages[0].Content, "Topic: Go")
	assert.Contains(t, calls[0].Messages[0].Content, "Level: medium")
}

func TestGenerate_RetriesRejectedDraft(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: draftJSON(t, "Short", qDefer), Usage: llm.Usage{InputTokens: 10}},
		llm.MockResponse{Content: draftJSON(t, "Full", qDefer, qNil), Usage: llm.Usage{InputTokens: 10}},
	)
	d, err := New(mock, DefaultConfig()).Generate(context.Background(), request())
	require.NoError(t, err)
	assert.Equal(t, "full", d.Quiz.ID)
	assert.Equal(t, 20, d.Usage.InputTokens)
}

func TestGenerate_GivesUpAfterAttempts(t *testing.T) {
	short := draftJSON(t, "Short", qDefer)
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: short},
		llm.MockResponse{Content: short},
		llm.MockResponse{Content: short},
	)
	_, err := New(mock, DefaultConfig()).Generate(context.Background(), request())

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "structure", verr.Check)
	assert.Len(t, mock.Calls(), 2)
}

func TestGenerate_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.UnavailableError{}})
	_, err := New(mock, DefaultConfig()).Generate(context.Background(), request())

	var unavailable *llm.UnavailableError
	assert.True(t, errors.As(err, &unavailable))
	assert.Len(t, mock.Calls(), 1)
}

func TestGenerate_BadRequest(t *testing.T) {
	g := New(llm.NewMockProvider(), DefaultConfig())
	for _, req := range []Request{
		{Level: catalog.LevelEasy, Questions: 1},
		{Topic: "Go", Level: 9, Questions: 1},
		{Topic: "Go", Level: catalog.LevelEasy},
	} {
		_, err := g.Generate(context.Background(), req)
		assert.Error(t, err, "%+v", req)
	}
}

func TestStructure(t *testing.T) {
	req := Request{Topic: "Go", Level: catalog.LevelEasy, Questions: 1}
	quiz := func(q catalog.Question) catalog.Quiz {
		return catalog.Quiz{ID: "x", Title: "X", Level: catalog.LevelEasy, Questions: []catalog.Question{q}}
	}

	tests := []struct {
		name string
		q    catalog.Question
		ok   bool
	}{
		{"valid", qDefer, true},
		{"one choice", catalog.Question{Title: "t", Choices: []string{"a"}}, false},
		{"too many choices", catalog.Question{Title: "t", Choices: []string{"a", "b", "c", "d", "e", "f"}}, false},
		{"correct out of range", catalog.Question{Title: "t", Choices: []string{"a", "b"}, Correct: 2}, false},
		{"repeated choice", catalog.Question{Title: "t", Choices: []string{"Yes", " yes "}}, false},
		{"empty choice", catalog.Question{Title: "t", Choices: []string{"a", "  "}}, false},
		{"empty title", catalog.Question{Choices: []string{"a", "b"}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verr := Structure{}.Check(quiz(tt.q), req)
			assert.Equal(t, tt.ok, verr == nil, "%v", verr)
		})
	}
}

func TestDuplicates(t *testing.T) {
	q := catalog.Quiz{Questions: []catalog.Question{qDefer, qNil}}

	assert.Nil(t, Duplicates{}.Check(q, Request{}))
	assert.NotNil(t, Duplicates{}.Check(q, Request{Avoid: []string{"what is the ZERO value of a map?"}}))

	q.Questions = append(q.Questions, qDefer)
	assert.NotNil(t, Duplicates{}.Check(q, Request{}))
}

func TestUserMessage_CapsAvoid(t *testing.T) {
	req := Request{Topic: "Go", Level: catalog.LevelHard, Questions: 3, Avoid: []string{"a", "b", "c"}}
	msg := userMessage(req, 2)
	assert.NotContains(t, msg, "1. a")
	assert.Contains(t, msg, "1. b")
	assert.Contains(t, msg, "2. c")

	assert.True(t, strings.HasSuffix(userMessage(Request{Topic: "Go", Level: catalog.LevelEasy}, 5), "None"))
}

func TestSlug(t *testing.T) {
	tests := map[string]string{
		"Go Basics":           "go-basics",
		"  HTTP/2 & TLS 1.3 ": "http-2-tls-1-3",
		"Ünïcode only":        "n-code-only",
		"***":                 "quiz",
		"already-kebab-case":  "already-kebab-case",
	}
	for in, want := range tests {
		assert.Equal(t, want, Slug(in), in)
	}
}

func TestAppend(t *testing.T) {
	quizzes := []catalog.Quiz{{ID: "go"}, {ID: "go-2"}}
	out := Append(quizzes, catalog.Quiz{ID: "go"})
	require.Len(t, out, 3)
	assert.Equal(t, "go-3", out[2].ID)

	out = Append(nil, catalog.Quiz{ID: "fresh"})
	assert.Equal(t, "fresh", out[0].ID)
}
