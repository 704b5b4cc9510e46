package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		schema  *Schema
		raw     string
		wantErr bool
	}{
		{"valid", pointSchema, `{"x":1,"y":2,"label":"a"}`, false},
		{"optional omitted", pointSchema, `{"x":1,"y":2}`, false},
		{"missing required", pointSchema, `{"x":1}`, true},
		{"wrong type", pointSchema, `{"x":"one","y":2}`, true},
		{"bad enum", pointSchema, `{"x":1,"y":2,"label":"z"}`, true},
		{"extra property", pointSchema, `{"x":1,"y":2,"z":3}`, true},
		{"malformed", pointSchema, `{"x":`, true},
		{"empty", pointSchema, ``, true},
		{"no schema", nil, `not json`, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate(tt.schema, json.RawMessage(tt.raw))
			if (err != nil) != tt.wantErr {
				t.Fatalf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				var invalid *InvalidResponseError
				if !errors.As(err, &invalid) {
					t.Errorf("expected *InvalidResponseError, got %T", err)
				}
			}
		})
	}
}
