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
	"log/slog"
	"slices"
	"strings"

	"github.com/poiesic/leadrank/ai"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// IntentClassifier implements ai.IntentClassifier using OpenAI-compatible chat APIs.
type IntentClassifier struct {
	client llms.Model
	logger *slog.Logger
}

// intentScore is an internal type used for JSON unmarshaling.
type intentScore struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}

// intentResponse is the wrapper structure for the LLM's JSON response.
type intentResponse struct {
	Scores []intentScore `json:"scores"`
}

// newIntentClassifier is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newIntentClassifier(config *ai.Config) (*IntentClassifier, error) {
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

	return &IntentClassifier{
		client: client,
		logger: slog.Default().With("component", "openai-intent"),
	}, nil
}

// NewIntentClassifier creates a new intent classifier using the provided configuration.
//
// Returns ai.IntentClassifier interface to enforce abstraction.
func NewIntentClassifier(config *ai.Config) (ai.IntentClassifier, error) {
	return newIntentClassifier(config)
}

// ClassifyIntent scores the text against every candidate label using an LLM.
// Labels the model did not score come back with confidence 0 so callers always
// see the full candidate set. Results are ranked by confidence descending.
func (c *IntentClassifier) ClassifyIntent(ctx context.Context, text string, labels []string) ([]ai.IntentScore, error) {
	if len(labels) == 0 {
		labels = ai.DefaultIntentLabels
	}
	text = scrubString(text)

	var result intentResponse
	if err := completeJSON(ctx, c.client, c.logger, buildIntentPrompt(labels), text, &result); err != nil {
		return nil, err
	}

	// Index the model's scores by normalized label, discarding invented labels.
	byLabel := make(map[string]float64, len(result.Scores))
	for _, s := range result.Scores {
		byLabel[strings.ToLower(strings.TrimSpace(s.Label))] = clampConfidence(s.Confidence)
	}

	scores := make([]ai.IntentScore, 0, len(labels))
	for _, label := range labels {
		confidence, ok := byLabel[strings.ToLower(label)]
		if !ok {
			c.logger.Debug("label missing from model response", "label", label)
		}
		scores = append(scores, ai.IntentScore{Label: label, Score: confidence})
	}

	slices.SortStableFunc(scores, func(a, b ai.IntentScore) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		default:
			return 0
		}
	})

	return scores, nil
}

// ClassifyIntents scores multiple texts against the candidate labels.
// Texts are classified sequentially within a single call so the model client
// is acquired once per batch.
func (c *IntentClassifier) ClassifyIntents(ctx context.Context, texts []string, labels []string) ([][]ai.IntentScore, error) {
	results := make([][]ai.IntentScore, len(texts))
	for i, text := range texts {
		scores, err := c.ClassifyIntent(ctx, text, labels)
		if err != nil {
			return nil, err
		}
		results[i] = scores
	}
	return results, nil
}
