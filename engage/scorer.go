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

package engage

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"strings"

	"github.com/poiesic/leadrank/ai"
	"github.com/poiesic/leadrank/core"
)

// Component weights and intent boosts for the promotion-worthiness fusion.
const (
	semanticWeight  = 0.4
	intentWeight    = 0.4
	sentimentWeight = 0.2

	seekingRecommendationBoost = 1.5
	problemStatementBoost      = 1.3
)

// Scorer re-scores a ranked candidate batch for outbound engagement using
// semantic similarity to a product description plus sentiment and intent
// signals. It is strictly a refinement stage: callers must already hold a
// valid lexically ranked batch before invoking it.
type Scorer struct {
	provider ai.AIProvider
	logger   *slog.Logger
}

// Option configures a Scorer.
type Option func(*Scorer)

// WithLogger sets the logger used for classification diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Scorer) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewScorer creates an engagement scorer backed by the given AI provider.
func NewScorer(provider ai.AIProvider, opts ...Option) (*Scorer, error) {
	if provider == nil {
		return nil, ErrNilProvider
	}
	s := &Scorer{
		provider: provider,
		logger:   slog.Default().With("component", "engage"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Score computes a promotion-worthiness score for every post in the batch
// and returns the batch re-sorted by it, highest first. The description is
// embedded once; post texts are embedded and classified in batches.
//
// Per post:
//
//	semantic  = cosine(description embedding, post embedding)
//	intent    = top-label confidence, boosted 1.5x for seeking-recommendation
//	            and 1.3x for problem-statement intents
//	sentiment = confidence, positive adds and negative subtracts
//	promo     = 0.4*semantic + 0.4*intent + 0.2*sentiment
//
// On any provider failure Score returns the batch unmodified, in its
// original lexical order, together with the error; the caller decides
// whether lexical-only ranking is acceptable.
func (s *Scorer) Score(ctx context.Context, batch []*core.ScoredPost, description string) ([]*core.ScoredPost, error) {
	if len(batch) == 0 {
		return batch, nil
	}
	if strings.TrimSpace(description) == "" {
		return batch, ErrEmptyDescription
	}

	texts := make([]string, len(batch))
	for i, sp := range batch {
		texts[i] = sp.Post.Text()
	}

	descVec, err := s.provider.Embedder().EmbedText(ctx, description)
	if err != nil {
		return batch, fmt.Errorf("embedding description: %w", err)
	}
	postVecs, err := s.provider.Embedder().EmbedTexts(ctx, texts)
	if err != nil {
		return batch, fmt.Errorf("embedding posts: %w", err)
	}
	sentiments, err := s.provider.SentimentClassifier().ClassifySentiments(ctx, texts)
	if err != nil {
		return batch, fmt.Errorf("classifying sentiment: %w", err)
	}
	intents, err := s.provider.IntentClassifier().ClassifyIntents(ctx, texts, ai.DefaultIntentLabels)
	if err != nil {
		return batch, fmt.Errorf("classifying intent: %w", err)
	}
	if len(postVecs) != len(batch) || len(sentiments) != len(batch) || len(intents) != len(batch) {
		return batch, fmt.Errorf("%w: got %d embeddings, %d sentiments, %d intents for %d posts",
			ErrBatchMismatch, len(postVecs), len(sentiments), len(intents), len(batch))
	}

	for i, sp := range batch {
		sp.SemanticScore = cosineSimilarity(descVec, postVecs[i])
		sp.Sentiment = sentiments[i].Label
		sp.SentimentScore = sentiments[i].Score
		if len(intents[i]) > 0 {
			sp.Intent = intents[i][0].Label
			sp.IntentScore = intents[i][0].Score
		}
		sp.PromoScore = fuse(sp)

		s.logger.Debug("scored post for engagement",
			"post_id", sp.Post.ID,
			"semantic", sp.SemanticScore,
			"sentiment", sp.Sentiment,
			"intent", sp.Intent,
			"promo", sp.PromoScore)
	}

	sorted := make([]*core.ScoredPost, len(batch))
	copy(sorted, batch)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].PromoScore != sorted[j].PromoScore {
			return sorted[i].PromoScore > sorted[j].PromoScore
		}
		if sorted[i].SimilarityScore != sorted[j].SimilarityScore {
			return sorted[i].SimilarityScore > sorted[j].SimilarityScore
		}
		return sorted[i].Post.ID < sorted[j].Post.ID
	})
	return sorted, nil
}

func fuse(sp *core.ScoredPost) float64 {
	intentComponent := sp.IntentScore * intentBoost(sp.Intent)

	sentimentComponent := sp.SentimentScore
	if sp.Sentiment != ai.SentimentPositive {
		sentimentComponent = -sentimentComponent
	}

	return semanticWeight*sp.SemanticScore +
		intentWeight*intentComponent +
		sentimentWeight*sentimentComponent
}

func intentBoost(label string) float64 {
	switch strings.ToLower(label) {
	case ai.IntentSeekingRecommendation:
		return seekingRecommendationBoost
	case ai.IntentProblemStatement:
		return problemStatementBoost
	default:
		return 1.0
	}
}

// cosineSimilarity computes the cosine similarity of two embedding vectors.
// Mismatched or zero vectors score zero.
func cosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
