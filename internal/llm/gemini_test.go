package llm

import "testing"

func TestGeminiAliases(t *testing.T) {
	tests := []struct{ in, want string }{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-pro", "gemini-2.5-pro"},
		{"gemini-2.5-flash", "gemini-2.5-flash"},
	}
	for _, tt := range tests {
		if got := alias(tt.in, geminiAliases); got != tt.want {
			t.Errorf("alias(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGeminiSchema(t *testing.T) {
	s := geminiSchema(map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{"type": "string"},
			"level": map[string]any{"type": "string", "enum": []any{"easy", "medium", "hard"}},
			"choices": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"correct": map[string]any{"type": "integer"},
		},
		"required": []any{"title", "choices"},
	})

	if s.Type != "OBJECT" || len(s.Properties) != 4 {
		t.Fatalf("unexpected schema %+v", s)
	}
	if s.Properties["title"].Type != "STRING" || s.Properties["correct"].Type != "INTEGER" {
		t.Errorf("scalar types not mapped")
	}
	if len(s.Properties["level"].Enum) != 3 {
		t.Errorf("enum = %v", s.Properties["level"].Enum)
	}
	if s.Properties["choices"].Type != "ARRAY" || s.Properties["choices"].Items.Type != "STRING" {
		t.Errorf("array not mapped")
	}
	if len(s.Required) != 2 {
		t.Errorf("required = %v", s.Required)
	}
}

func TestStringList(t *testing.T) {
	if got := stringList([]string{"a"}); len(got) != 1 {
		t.Errorf("[]string = %v", got)
	}
	if got := stringList([]any{"a", 1, "b"}); len(got) != 2 {
		t.Errorf("[]any = %v", got)
	}
	if got := stringList(nil); got != nil {
		t.Errorf("nil = %v", got)
	}
}
