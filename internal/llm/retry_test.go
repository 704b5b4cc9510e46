package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func fastRetry() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: 3,
		InitialWait: time.Millisecond,
		MaxWait:     5 * time.Millisecond,
		Multiplier:  2,
	}
}

func TestRetry_FirstAttempt(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{"ok":true}`)})
	resp, err := WithRetry(mock, fastRetry()).Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{"ok":true}` || len(mock.Calls()) != 1 {
		t.Fatalf("resp = %s, calls = %d", resp.Content, len(mock.Calls()))
	}
}

func TestRetry_TransientThenSuccess(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &UnavailableError{Err: errors.New("down")}},
		MockResponse{Err: &RateLimitError{Err: errors.New("slow down")}},
		MockResponse{Content: json.RawMessage(`{"ok":true}`)},
	)
	if _, err := WithRetry(mock, fastRetry()).Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mock.Calls()) != 3 {
		t.Fatalf("calls = %d, want 3", len(mock.Calls()))
	}
}

func TestRetry_GivesUp(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &UnavailableError{}},
		MockResponse{Err: &UnavailableError{}},
		MockResponse{Err: &UnavailableError{}},
		MockResponse{Content: json.RawMessage(`{}`)},
	)
	_, err := WithRetry(mock, fastRetry()).Generate(context.Background(), Request{})
	var unavailable *UnavailableError
	if !errors.As(err, &unavailable) {
		t.Fatalf("expected *UnavailableError, got %v", err)
	}
	if len(mock.Calls()) != 3 {
		t.Fatalf("calls = %d, want 3", len(mock.Calls()))
	}
}

func TestRetry_TruncatedNotRetried(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &TruncatedError{}},
		MockResponse{Content: json.RawMessage(`{}`)},
	)
	_, err := WithRetry(mock, fastRetry()).Generate(context.Background(), Request{})
	var truncated *TruncatedError
	if !errors.As(err, &truncated) || len(mock.Calls()) != 1 {
		t.Fatalf("err = %v, calls = %d", err, len(mock.Calls()))
	}
}

func TestRetry_InvalidResponseRetriedOnce(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &InvalidResponseError{Err: errors.New("bad")}},
		MockResponse{Err: &InvalidResponseError{Err: errors.New("bad again")}},
		MockResponse{Content: json.RawMessage(`{}`)},
	)
	_, err := WithRetry(mock, fastRetry()).Generate(context.Background(), Request{})
	var invalid *InvalidResponseError
	if !errors.As(err, &invalid) || len(mock.Calls()) != 2 {
		t.Fatalf("err = %v, calls = %d", err, len(mock.Calls()))
	}
}

func TestRetry_ContextCanceledDuringWait(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &RateLimitError{RetryAfter: time.Hour}},
		MockResponse{Content: json.RawMessage(`{}`)},
	)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := WithRetry(mock, fastRetry()).Generate(ctx, Request{})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}

func TestRetryPolicy_WaitIsCapped(t *testing.T) {
	p := RetryPolicy{InitialWait: time.Second, MaxWait: 2 * time.Second, Multiplier: 10}
	for attempt := range 5 {
		if w := p.Wait(attempt); w > 2400*time.Millisecond {
			t.Errorf("Wait(%d) = %v, want <= 2.4s", attempt, w)
		}
	}
}

func TestWithTimeout(t *testing.T) {
	slow := providerFunc(func(ctx context.Context, _ Request) (*Response, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	})
	_, err := WithTimeout(slow, 5*time.Millisecond).Generate(context.Background(), Request{})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}

type providerFunc func(context.Context, Request) (*Response, error)

func (f providerFunc) Generate(ctx context.Context, req Request) (*Response, error) {
	return f(ctx, req)
}

func (providerFunc) ModelID() string { return "func" }
