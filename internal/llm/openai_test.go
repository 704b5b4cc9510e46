package llm

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func openaiServer(t *testing.T, status int, body map[string]any, seen *map[string]any) *OpenAIProvider {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if seen != nil {
			raw, _ := io.ReadAll(r.Body)
			json.Unmarshal(raw, seen)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(srv.Close)

	p, err := NewOpenAIProvider(Endpoint{APIKey: "test-key", Model: "gpt-4o-mini", BaseURL: srv.URL + "/v1"})
	if err != nil {
		t.Fatalf("NewOpenAIProvider: %v", err)
	}
	return p
}

func completion(content, finish string) map[string]any {
	return map[string]any{
		"id":      "chatcmpl-test",
		"object":  "chat.completion",
		"created": 1234567890,
		"model":   "gpt-4o-mini",
		"choices": []map[string]any{{
			"index":         0,
			"message":       map[string]any{"role": "assistant", "content": content},
			"finish_reason": finish,
		}},
		"usage": map[string]any{"prompt_tokens": 40, "completion_tokens": 25, "total_tokens": 65},
	}
}

func TestOpenAIProvider_Generate(t *testing.T) {
	var seen map[string]any
	p := openaiServer(t, http.StatusOK, completion(`{"x":3,"y":4}`, "stop"), &seen)

	req := UserPrompt("You write quizzes.", "Draw a point.")
	req.MaxTokens = 256
	req.Schema = pointSchema
	resp, err := p.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Usage.InputTokens != 40 || resp.Usage.OutputTokens != 25 || resp.StopReason != StopEnd {
		t.Errorf("resp = %+v", resp)
	}

	msgs, _ := seen["messages"].([]any)
	if len(msgs) != 2 {
		t.Fatalf("sent %d messages, want system + user", len(msgs))
	}
	format, _ := seen["response_format"].(map[string]any)
	if format["type"] != "json_schema" {
		t.Errorf("response_format = %v", format)
	}
}

func TestOpenAIProvider_SchemaMismatch(t *testing.T) {
	p := openaiServer(t, http.StatusOK, completion(`{"x":"three"}`, "stop"), nil)
	req := UserPrompt("", "Draw a point.")
	req.Schema = pointSchema

	_, err := p.Generate(context.Background(), req)
	var invalid *InvalidResponseError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected *InvalidResponseError, got %T (%v)", err, err)
	}
}

func TestOpenAIProvider_Truncated(t *testing.T) {
	p := openaiServer(t, http.StatusOK, completion(`{"x":`, "length"), nil)
	_, err := p.Generate(context.Background(), UserPrompt("", "x"))
	var truncated *TruncatedError
	if !errors.As(err, &truncated) {
		t.Fatalf("expected *TruncatedError, got %T (%v)", err, err)
	}
}

func TestOpenAIProvider_Errors(t *testing.T) {
	errBody := map[string]any{"error": map[string]any{"message": "nope", "type": "error"}}

	p := openaiServer(t, http.StatusTooManyRequests, errBody, nil)
	_, err := p.Generate(context.Background(), UserPrompt("", "x"))
	var rl *RateLimitError
	if !errors.As(err, &rl) {
		t.Fatalf("expected *RateLimitError, got %T (%v)", err, err)
	}

	p = openaiServer(t, http.StatusBadGateway, errBody, nil)
	_, err = p.Generate(context.Background(), UserPrompt("", "x"))
	var unavailable *UnavailableError
	if !errors.As(err, &unavailable) {
		t.Fatalf("expected *UnavailableError, got %T (%v)", err, err)
	}
}

func TestNewOpenRouterProvider(t *testing.T) {
	if _, err := NewOpenRouterProvider(Endpoint{}); err == nil {
		t.Fatal("expected missing key error")
	}

	p, err := NewOpenRouterProvider(Endpoint{APIKey: "k", Model: "google/gemini-2.0-flash-exp"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(p.ModelID(), "google/") {
		t.Errorf("ModelID = %q", p.ModelID())
	}
}
