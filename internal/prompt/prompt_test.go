package prompt

import (
	"context"
	"testing"
)

func TestCancelLabel(t *testing.T) {
	for _, req := range []Request{SkipQuestion(), StopQuiz(), RemoveRecord()} {
		if got := req.CancelLabel(); got != No {
			t.Errorf("%s: CancelLabel = %q, want %q", req.ID, got, No)
		}
		if !req.Has(Yes) || !req.Has(No) {
			t.Errorf("%s: expected Yes and No options", req.ID)
		}
		if req.Has("Maybe") {
			t.Errorf("%s: unexpected option Maybe", req.ID)
		}
	}
}

func TestStopIsDestructive(t *testing.T) {
	for _, o := range StopQuiz().Options {
		if o.Label == Yes && !o.Destructive {
			t.Error("expected Yes on stop prompt to be destructive")
		}
	}
}

func TestConfirmerFunc(t *testing.T) {
	var seen ID
	c := ConfirmerFunc(func(_ context.Context, req Request) (string, error) {
		seen = req.ID
		return Yes, nil
	})
	label, err := c.Confirm(context.Background(), SkipQuestion())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !Accepted(label) || seen != Skip {
		t.Errorf("got label %q for %q", label, seen)
	}
}
