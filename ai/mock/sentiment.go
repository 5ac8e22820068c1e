package mock

import (
	"context"
	"strings"

	"github.com/poiesic/leadrank/ai"
)

// negativeCues drive the default mock sentiment prediction.
var negativeCues = []string{
	"broke", "broken", "hate", "terrible", "awful", "disappointed",
	"problem", "issue", "leak", "fail", "failed", "worst", "annoyed",
	"frustrat", "refund", "returned",
}

// MockSentimentClassifier is a test double for ai.SentimentClassifier.
// It allows custom behavior injection via function fields.
type MockSentimentClassifier struct {
	// ClassifySentimentFunc is called by ClassifySentiment if set.
	// If nil, uses default keyword-driven behavior.
	ClassifySentimentFunc func(ctx context.Context, text string) (ai.Sentiment, error)

	// ClassifySentimentsFunc is called by ClassifySentiments if set.
	// If nil, applies the single-text behavior to each entry.
	ClassifySentimentsFunc func(ctx context.Context, texts []string) ([]ai.Sentiment, error)

	callCount int
}

// NewMockSentimentClassifier creates a mock sentiment classifier with default behavior.
// Note: Returns concrete type to allow test assertions.
func NewMockSentimentClassifier() *MockSentimentClassifier {
	return &MockSentimentClassifier{}
}

// ClassifySentiment predicts sentiment from negative cue words.
// Default behavior: any negative cue in the text yields a negative label
// with 0.9 confidence; otherwise positive with 0.9 confidence.
func (m *MockSentimentClassifier) ClassifySentiment(ctx context.Context, text string) (ai.Sentiment, error) {
	m.callCount++

	if m.ClassifySentimentFunc != nil {
		return m.ClassifySentimentFunc(ctx, text)
	}

	lower := strings.ToLower(text)
	for _, cue := range negativeCues {
		if strings.Contains(lower, cue) {
			return ai.Sentiment{Label: ai.SentimentNegative, Score: 0.9}, nil
		}
	}
	return ai.Sentiment{Label: ai.SentimentPositive, Score: 0.9}, nil
}

// ClassifySentiments predicts sentiment for multiple texts.
func (m *MockSentimentClassifier) ClassifySentiments(ctx context.Context, texts []string) ([]ai.Sentiment, error) {
	m.callCount++

	if m.ClassifySentimentsFunc != nil {
		return m.ClassifySentimentsFunc(ctx, texts)
	}

	results := make([]ai.Sentiment, len(texts))
	for i, text := range texts {
		sentiment, err := m.ClassifySentiment(ctx, text)
		if err != nil {
			return nil, err
		}
		results[i] = sentiment
	}
	return results, nil
}

// CallCount returns the number of times any method was called.
func (m *MockSentimentClassifier) CallCount() int {
	return m.callCount
}

// Reset clears the call count and injected behavior.
func (m *MockSentimentClassifier) Reset() {
	m.callCount = 0
	m.ClassifySentimentFunc = nil
	m.ClassifySentimentsFunc = nil
}
