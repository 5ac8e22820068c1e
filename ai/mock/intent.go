package mock

import (
	"context"
	"strings"

	"github.com/poiesic/leadrank/ai"
)

// Cue words driving the default mock intent prediction.
var (
	recommendationCues = []string{"recommend", "suggestion", "which one", "what should i", "any recs", "best "}
	problemCues        = []string{"problem", "issue", "broke", "broken", "help", "struggling", "can't", "doesn't work"}
)

// MockIntentClassifier is a test double for ai.IntentClassifier.
// It allows custom behavior injection via function fields.
type MockIntentClassifier struct {
	// ClassifyIntentFunc is called by ClassifyIntent if set.
	// If nil, uses default keyword-driven behavior.
	ClassifyIntentFunc func(ctx context.Context, text string, labels []string) ([]ai.IntentScore, error)

	// ClassifyIntentsFunc is called by ClassifyIntents if set.
	// If nil, applies the single-text behavior to each entry.
	ClassifyIntentsFunc func(ctx context.Context, texts []string, labels []string) ([][]ai.IntentScore, error)

	callCount int
}

// NewMockIntentClassifier creates a mock intent classifier with default behavior.
// Note: Returns concrete type to allow test assertions.
func NewMockIntentClassifier() *MockIntentClassifier {
	return &MockIntentClassifier{}
}

// ClassifyIntent scores the text against the candidate labels.
// Default behavior: recommendation cues rank "seeking recommendation" first,
// problem cues rank "problem statement" first, otherwise "discussion" wins.
func (m *MockIntentClassifier) ClassifyIntent(ctx context.Context, text string, labels []string) ([]ai.IntentScore, error) {
	m.callCount++

	if m.ClassifyIntentFunc != nil {
		return m.ClassifyIntentFunc(ctx, text, labels)
	}

	if len(labels) == 0 {
		labels = ai.DefaultIntentLabels
	}

	top := ai.IntentDiscussion
	lower := strings.ToLower(text)
	switch {
	case containsAny(lower, recommendationCues):
		top = ai.IntentSeekingRecommendation
	case containsAny(lower, problemCues):
		top = ai.IntentProblemStatement
	}

	scores := make([]ai.IntentScore, 0, len(labels))
	for _, label := range labels {
		score := 0.1
		if label == top {
			score = 0.8
		}
		scores = append(scores, ai.IntentScore{Label: label, Score: score})
	}

	// Move the winning label to the front; remaining order is input order.
	for i, s := range scores {
		if s.Label == top && i > 0 {
			scores[0], scores[i] = scores[i], scores[0]
			break
		}
	}

	return scores, nil
}

// ClassifyIntents scores multiple texts against the candidate labels.
func (m *MockIntentClassifier) ClassifyIntents(ctx context.Context, texts []string, labels []string) ([][]ai.IntentScore, error) {
	m.callCount++

	if m.ClassifyIntentsFunc != nil {
		return m.ClassifyIntentsFunc(ctx, texts, labels)
	}

	results := make([][]ai.IntentScore, len(texts))
	for i, text := range texts {
		scores, err := m.ClassifyIntent(ctx, text, labels)
		if err != nil {
			return nil, err
		}
		results[i] = scores
	}
	return results, nil
}

// CallCount returns the number of times any method was called.
func (m *MockIntentClassifier) CallCount() int {
	return m.callCount
}

// Reset clears the call count and injected behavior.
func (m *MockIntentClassifier) Reset() {
	m.callCount = 0
	m.ClassifyIntentFunc = nil
	m.ClassifyIntentsFunc = nil
}

func containsAny(text string, cues []string) bool {
	for _, cue := range cues {
		if strings.Contains(text, cue) {
			return true
		}
	}
	return false
}
