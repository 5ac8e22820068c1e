package engage

import (
	"context"
	"errors"
	"testing"

	"github.com/poiesic/leadrank/ai"
	"github.com/poiesic/leadrank/ai/mock"
	"github.com/poiesic/leadrank/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const productDescription = "We sell compact espresso machines for home baristas."

func engageBatch() []*core.ScoredPost {
	return []*core.ScoredPost{
		{
			Post: &core.Post{
				ID:    "rec",
				Title: "Which espresso machine would you recommend?",
				Body:  "Looking for a compact machine for my kitchen.",
			},
			SimilarityScore: 0.8,
		},
		{
			Post: &core.Post{
				ID:    "chat",
				Title: "Sunday espresso chat",
				Body:  "Just enjoying a quiet morning shot.",
			},
			SimilarityScore: 0.9,
		},
	}
}

func TestNewScorerNilProvider(t *testing.T) {
	_, err := NewScorer(nil)
	assert.ErrorIs(t, err, ErrNilProvider)
}

func TestScorePopulatesSignals(t *testing.T) {
	scorer, err := NewScorer(mock.NewMockProvider())
	require.NoError(t, err)

	batch := engageBatch()
	scored, err := scorer.Score(context.Background(), batch, productDescription)
	require.NoError(t, err)
	require.Len(t, scored, 2)

	for _, sp := range scored {
		assert.NotEmpty(t, sp.Sentiment)
		assert.NotEmpty(t, sp.Intent)
		assert.Greater(t, sp.SentimentScore, 0.0)
		assert.Greater(t, sp.IntentScore, 0.0)
	}
}

func TestScoreBoostsSeekingRecommendation(t *testing.T) {
	scorer, err := NewScorer(mock.NewMockProvider())
	require.NoError(t, err)

	scored, err := scorer.Score(context.Background(), engageBatch(), productDescription)
	require.NoError(t, err)
	require.Len(t, scored, 2)

	// The recommendation-seeking post gets the 1.5x intent boost and must
	// outrank plain discussion despite its lower lexical score.
	assert.Equal(t, "rec", scored[0].Post.ID)
	assert.Equal(t, ai.IntentSeekingRecommendation, scored[0].Intent)
	assert.Greater(t, scored[0].PromoScore, scored[1].PromoScore)
}

func TestScoreNegativeSentimentSubtracts(t *testing.T) {
	scorer, err := NewScorer(mock.NewMockProvider())
	require.NoError(t, err)

	batch := []*core.ScoredPost{
		{Post: &core.Post{ID: "neg", Title: "Casual talk", Body: "this machine is terrible and I hate it"}},
		{Post: &core.Post{ID: "pos", Title: "Casual talk", Body: "this machine is lovely and I enjoy it"}},
	}

	scored, err := scorer.Score(context.Background(), batch, productDescription)
	require.NoError(t, err)
	require.Len(t, scored, 2)

	byID := map[string]*core.ScoredPost{
		scored[0].Post.ID: scored[0],
		scored[1].Post.ID: scored[1],
	}
	assert.Equal(t, ai.SentimentNegative, byID["neg"].Sentiment)
	assert.Equal(t, ai.SentimentPositive, byID["pos"].Sentiment)
	assert.Less(t, byID["neg"].PromoScore, byID["pos"].PromoScore)
}

func TestScoreProviderFailureKeepsLexicalOrder(t *testing.T) {
	boom := errors.New("model offline")
	sentiment := mock.NewMockSentimentClassifier()
	sentiment.ClassifySentimentsFunc = func(ctx context.Context, texts []string) ([]ai.Sentiment, error) {
		return nil, boom
	}
	provider := mock.NewMockProviderWithServices(
		mock.NewMockEmbedder(), sentiment, mock.NewMockIntentClassifier())

	scorer, err := NewScorer(provider)
	require.NoError(t, err)

	batch := engageBatch()
	scored, err := scorer.Score(context.Background(), batch, productDescription)
	require.ErrorIs(t, err, boom)
	require.Len(t, scored, 2)
	assert.Equal(t, "rec", scored[0].Post.ID)
	assert.Equal(t, "chat", scored[1].Post.ID)
	assert.Zero(t, scored[0].PromoScore)
}

func TestScoreEmptyDescription(t *testing.T) {
	scorer, err := NewScorer(mock.NewMockProvider())
	require.NoError(t, err)

	_, err = scorer.Score(context.Background(), engageBatch(), "   ")
	assert.ErrorIs(t, err, ErrEmptyDescription)
}

func TestScoreEmptyBatch(t *testing.T) {
	scorer, err := NewScorer(mock.NewMockProvider())
	require.NoError(t, err)

	scored, err := scorer.Score(context.Background(), nil, productDescription)
	require.NoError(t, err)
	assert.Empty(t, scored)
}

func TestIntentBoost(t *testing.T) {
	assert.InDelta(t, 1.5, intentBoost(ai.IntentSeekingRecommendation), 1e-9)
	assert.InDelta(t, 1.3, intentBoost(ai.IntentProblemStatement), 1e-9)
	assert.InDelta(t, 1.0, intentBoost(ai.IntentDiscussion), 1e-9)
	assert.InDelta(t, 1.0, intentBoost(""), 1e-9)
}

func TestCosineSimilarity(t *testing.T) {
	a := []float32{1, 0, 0}
	assert.InDelta(t, 1.0, cosineSimilarity(a, []float32{2, 0, 0}), 1e-9)
	assert.InDelta(t, 0.0, cosineSimilarity(a, []float32{0, 1, 0}), 1e-9)
	assert.InDelta(t, -1.0, cosineSimilarity(a, []float32{-1, 0, 0}), 1e-9)
	assert.Zero(t, cosineSimilarity(a, []float32{1, 0}))
	assert.Zero(t, cosineSimilarity(nil, nil))
}
