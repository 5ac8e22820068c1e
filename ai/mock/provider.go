// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package mock

import "github.com/poiesic/leadrank/ai"

// MockProvider is a test double for ai.AIProvider.
// It aggregates mock embedder and classifier instances.
type MockProvider struct {
	embedder  *MockEmbedder
	sentiment *MockSentimentClassifier
	intent    *MockIntentClassifier
}

// NewMockProvider creates a new mock provider with default mock services.
//
// Returns ai.AIProvider interface for consistency with production constructors.
// Use GetMockEmbedder()/GetMockSentiment()/GetMockIntent() to access concrete
// types for test assertions.
func NewMockProvider() ai.AIProvider {
	return &MockProvider{
		embedder:  NewMockEmbedder(),
		sentiment: NewMockSentimentClassifier(),
		intent:    NewMockIntentClassifier(),
	}
}

// NewMockProviderWithServices creates a mock provider with custom mock services.
// This allows full control over the behavior of each service.
func NewMockProviderWithServices(embedder *MockEmbedder, sentiment *MockSentimentClassifier, intent *MockIntentClassifier) ai.AIProvider {
	return &MockProvider{
		embedder:  embedder,
		sentiment: sentiment,
		intent:    intent,
	}
}

// Embedder returns the mock embedder.
func (p *MockProvider) Embedder() ai.Embedder {
	return p.embedder
}

// SentimentClassifier returns the mock sentiment classifier.
func (p *MockProvider) SentimentClassifier() ai.SentimentClassifier {
	return p.sentiment
}

// IntentClassifier returns the mock intent classifier.
func (p *MockProvider) IntentClassifier() ai.IntentClassifier {
	return p.intent
}

// Close is a no-op for mock provider.
func (p *MockProvider) Close() error {
	return nil
}

// GetMockEmbedder returns the underlying mock embedder for test assertions.
// This allows tests to check call counts and inject custom behavior.
func (p *MockProvider) GetMockEmbedder() *MockEmbedder {
	return p.embedder
}

// GetMockSentiment returns the underlying mock sentiment classifier for test assertions.
func (p *MockProvider) GetMockSentiment() *MockSentimentClassifier {
	return p.sentiment
}

// GetMockIntent returns the underlying mock intent classifier for test assertions.
func (p *MockProvider) GetMockIntent() *MockIntentClassifier {
	return p.intent
}
