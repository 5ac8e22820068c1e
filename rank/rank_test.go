package rank

import (
	"testing"

	"github.com/poiesic/leadrank/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scoredFixture() []*core.ScoredPost {
	return []*core.ScoredPost{
		{Post: &core.Post{ID: "low", Score: 100}, SimilarityScore: 0.1},
		{Post: &core.Post{ID: "mid", Score: 5}, SimilarityScore: 0.5},
		{Post: &core.Post{ID: "high", Score: 1}, SimilarityScore: 0.9},
		{Post: &core.Post{ID: "tie-b", Score: 10}, SimilarityScore: 0.5},
		{Post: &core.Post{ID: "tie-a", Score: 10}, SimilarityScore: 0.5},
	}
}

func resultIDs(scored []*core.ScoredPost) []string {
	ids := make([]string, len(scored))
	for i, sp := range scored {
		ids[i] = sp.Post.ID
	}
	return ids
}

func TestRankOrderAndThreshold(t *testing.T) {
	ranked := Rank(scoredFixture(), 0.2, 0)
	assert.Equal(t, []string{"high", "tie-a", "tie-b", "mid"}, resultIDs(ranked))

	for _, sp := range ranked {
		assert.GreaterOrEqual(t, sp.SimilarityScore, 0.2)
	}
}

func TestRankPopularityIsTieBreakOnly(t *testing.T) {
	ranked := Rank(scoredFixture(), 0, 0)
	// "low" has the highest popularity but the lowest score; it must sort last.
	require.NotEmpty(t, ranked)
	assert.Equal(t, "low", ranked[len(ranked)-1].Post.ID)
}

func TestRankTruncationIsPrefix(t *testing.T) {
	full := Rank(scoredFixture(), 0.2, 0)
	capped := Rank(scoredFixture(), 0.2, 2)

	require.Len(t, capped, 2)
	assert.Equal(t, resultIDs(full)[:2], resultIDs(capped))
}

func TestRankDeterministic(t *testing.T) {
	first := resultIDs(Rank(scoredFixture(), 0, 0))
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, resultIDs(Rank(scoredFixture(), 0, 0)))
	}
}

func TestRankEmptyInput(t *testing.T) {
	assert.Empty(t, Rank(nil, 0.2, 10))
}
