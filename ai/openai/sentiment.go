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


package openai

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/poiesic/leadrank/ai"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// SentimentClassifier implements ai.SentimentClassifier using OpenAI-compatible chat APIs.
type SentimentClassifier struct {
	client llms.Model
	logger *slog.Logger
}

// sentimentResponse matches the JSON structure expected from the LLM.
type sentimentResponse struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}

// newSentimentClassifier is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newSentimentClassifier(config *ai.Config) (*SentimentClassifier, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	// Create OpenAI client configured for chat/classification
	// Use "none" as token for local OpenAI-compatible services that don't require authentication
	client, err := openai.New(
		openai.WithBaseURL(config.ClassifierHost),
		openai.WithToken("none"),
		openai.WithModel(config.ClassifierModel),
	)
	if err != nil {
		return nil, err
	}

	return &SentimentClassifier{
		client: client,
		logger: slog.Default().With("component", "openai-sentiment"),
	}, nil
}

// NewSentimentClassifier creates a new sentiment classifier using the provided configuration.
//
// Returns ai.SentimentClassifier interface to enforce abstraction.
func NewSentimentClassifier(config *ai.Config) (ai.SentimentClassifier, error) {
	return newSentimentClassifier(config)
}

// ClassifySentiment predicts the sentiment of a single text using an LLM.
func (s *SentimentClassifier) ClassifySentiment(ctx context.Context, text string) (ai.Sentiment, error) {
	text = scrubString(text)

	var result sentimentResponse
	if err := completeJSON(ctx, s.client, s.logger, buildSentimentPrompt(), text, &result); err != nil {
		return ai.Sentiment{}, err
	}

	label := strings.ToLower(strings.TrimSpace(result.Label))
	if label != ai.SentimentPositive && label != ai.SentimentNegative {
		s.logger.Warn("unexpected sentiment label", "label", result.Label)
		return ai.Sentiment{}, fmt.Errorf("%w: %q", ErrInvalidLabel, result.Label)
	}

	return ai.Sentiment{
		Label: label,
		Score: clampConfidence(result.Confidence),
	}, nil
}

// ClassifySentiments predicts sentiment for multiple texts.
// Texts are classified sequentially within a single call so the model client
// is acquired once per batch.
func (s *SentimentClassifier) ClassifySentiments(ctx context.Context, texts []string) ([]ai.Sentiment, error) {
	results := make([]ai.Sentiment, len(texts))
	for i, text := range texts {
		sentiment, err := s.ClassifySentiment(ctx, text)
		if err != nil {
			return nil, err
		}
		results[i] = sentiment
	}
	return results, nil
}

// clampConfidence bounds a model-reported confidence to [0,1].
func clampConfidence(c float64) float64 {
	if c < 0 {
		return 0
	}
	if c > 1 {
		return 1
	}
	return c
}
