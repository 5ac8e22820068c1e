// Package mock provides test double implementations of AI service interfaces.
//
// This package contains mock implementations of ai.Embedder,
// ai.SentimentClassifier, ai.IntentClassifier, and ai.AIProvider for use in
// unit tests. The mocks allow tests to run without external AI service
// dependencies and enable controlled, deterministic behavior.
//
// # Usage in Tests
//
//	// Basic usage with default behavior
//	mockProvider := mock.NewMockProvider()
//	vec, err := mockProvider.Embedder().EmbedText(ctx, "test")
//
//	// Custom behavior injection
//	mockSentiment := mock.NewMockSentimentClassifier()
//	mockSentiment.ClassifySentimentFunc = func(ctx context.Context, text string) (ai.Sentiment, error) {
//	    return ai.Sentiment{Label: ai.SentimentNegative, Score: 0.7}, nil
//	}
//
//	// Check call counts
//	count := mockSentiment.CallCount()
//
// # Default Behavior
//
// The mock implementations provide sensible defaults:
//
//   - MockEmbedder: Returns deterministic vectors based on text hash
//   - MockSentimentClassifier: Predicts negative for texts containing complaint cues
//   - MockIntentClassifier: Ranks intent labels from simple keyword cues
//   - MockProvider: Aggregates the mock services
package mock
