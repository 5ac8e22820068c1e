package ai

import "context"

// Embedder generates vector embeddings from text for semantic similarity scoring.
// Implementations must be thread-safe for concurrent use.
type Embedder interface {
	// EmbedText generates a vector embedding for a single text string.
	// The returned vector represents the semantic meaning of the text.
	// Returns an error if the embedding generation fails.
	EmbedText(ctx context.Context, text string) ([]float32, error)

	// EmbedTexts generates vector embeddings for multiple text strings in a batch.
	// Batch processing is more efficient than calling EmbedText multiple times.
	// The returned slice contains embeddings in the same order as the input texts.
	// Returns an error if any embedding generation fails.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// SentimentClassifier predicts binary sentiment for text.
// Implementations must be thread-safe for concurrent use.
type SentimentClassifier interface {
	// ClassifySentiment predicts the sentiment of a single text.
	// The returned label is SentimentPositive or SentimentNegative with a
	// confidence in [0,1].
	ClassifySentiment(ctx context.Context, text string) (Sentiment, error)

	// ClassifySentiments predicts sentiment for multiple texts in a batch.
	// The returned slice is in the same order as the input texts.
	ClassifySentiments(ctx context.Context, texts []string) ([]Sentiment, error)
}

// IntentClassifier scores text against a set of candidate intent labels.
// Implementations must be thread-safe for concurrent use.
type IntentClassifier interface {
	// ClassifyIntent scores the text against every candidate label and returns
	// the predictions ranked by confidence, highest first. Callers typically
	// use only the top entry. An empty labels slice defaults to
	// DefaultIntentLabels.
	ClassifyIntent(ctx context.Context, text string, labels []string) ([]IntentScore, error)

	// ClassifyIntents scores multiple texts in a batch.
	// The returned slice is in the same order as the input texts.
	ClassifyIntents(ctx context.Context, texts []string, labels []string) ([][]IntentScore, error)
}

// Sentiment is a binary sentiment prediction with its confidence.
type Sentiment struct {
	// Label is SentimentPositive or SentimentNegative.
	Label string

	// Score is the prediction confidence, in [0,1].
	Score float64
}

// IntentScore is one candidate intent label with its confidence.
type IntentScore struct {
	// Label is one of the candidate labels passed to the classifier.
	Label string

	// Score is the prediction confidence, in [0,1].
	Score float64
}

// AIProvider aggregates AI services for convenient initialization and lifecycle management.
// A provider creates and manages the embedder and classifier instances,
// ensuring they share configuration and resources appropriately.
type AIProvider interface {
	// Embedder returns the text embedding service.
	// The returned Embedder is safe for concurrent use.
	Embedder() Embedder

	// SentimentClassifier returns the sentiment classification service.
	// The returned classifier is safe for concurrent use.
	SentimentClassifier() SentimentClassifier

	// IntentClassifier returns the intent classification service.
	// The returned classifier is safe for concurrent use.
	IntentClassifier() IntentClassifier

	// Close releases resources held by the provider and its services.
	// After Close is called, the provider and its services should not be used.
	Close() error
}
