package llm

import (
	"context"
	"encoding/json"
	"sync"
)

// MockResponse is one scripted reply of a MockProvider.
type MockResponse struct {
	Content json.RawMessage
	Usage   Usage
	Err     error
}

// MockProvider replays scripted replies in order and records requests.
// Content is validated against the request schema like a real backend.
type MockProvider struct {
	mu      sync.Mutex
	replies []MockResponse
	calls   []Request
}

// NewMockProvider creates a MockProvider with the given replies.
func NewMockProvider(replies ...MockResponse) *MockProvider {
	return &MockProvider{replies: replies}
}

// Generate pops the next reply. An empty script yields *UnavailableError.
func (m *MockProvider) Generate(_ context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, req)
	if len(m.replies) == 0 {
		return nil, &UnavailableError{}
	}
	r := m.replies[0]
	m.replies = m.replies[1:]

	if r.Err != nil {
		return nil, r.Err
	}
	if err := validate(req.Schema, r.Content); err != nil {
		return nil, err
	}
	return &Response{Content: r.Content, Usage: r.Usage, Model: Mock, StopReason: StopEnd}, nil
}

// ModelID returns "mock".
func (m *MockProvider) ModelID() string {
	return Mock
}

// Push appends a reply to the script.
func (m *MockProvider) Push(r MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.replies = append(m.replies, r)
}

// Calls returns a copy of the recorded requests.
func (m *MockProvider) Calls() []Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Request(nil), m.calls...)
}
