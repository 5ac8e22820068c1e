// Package mock provides a test double for the source.Source interface.
package mock

import (
	"context"
	"sync"

	"github.com/poiesic/leadrank/core"
)

// MockSource is a test double for source.Source.
// It allows custom behavior injection via a function field and records the
// queries it receives.
type MockSource struct {
	// SearchFunc is called by Search if set.
	// If nil, Search returns the configured Posts unfiltered.
	SearchFunc func(ctx context.Context, query string, window core.RecencyWindow, limit int) ([]*core.Post, error)

	// Posts is the default result set returned when SearchFunc is nil.
	Posts []*core.Post

	mu      sync.Mutex
	queries []string
}

// NewMockSource creates a mock source returning the given posts for any query.
// Note: Returns concrete type to allow test assertions.
func NewMockSource(posts ...*core.Post) *MockSource {
	return &MockSource{Posts: posts}
}

// Search records the query and returns the configured posts.
func (m *MockSource) Search(ctx context.Context, query string, window core.RecencyWindow, limit int) ([]*core.Post, error) {
	m.mu.Lock()
	m.queries = append(m.queries, query)
	m.mu.Unlock()

	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, query, window, limit)
	}

	if limit > 0 && limit < len(m.Posts) {
		return m.Posts[:limit], nil
	}
	return m.Posts, nil
}

// Queries returns the queries Search has received, in call order.
func (m *MockSource) Queries() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.queries))
	copy(out, m.queries)
	return out
}

// CallCount returns the number of Search calls.
func (m *MockSource) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.queries)
}
