package rank

import (
	"sort"

	"github.com/poiesic/leadrank/core"
)

// Rank filters scored posts by the similarity threshold, orders the
// survivors, and bounds the result. Ordering is by score descending with
// popularity descending as the tie-break and post ID as the final
// deterministic tie-break. Truncation takes a strict prefix of the sorted
// list and never reorders.
func Rank(scored []*core.ScoredPost, minSimilarity float64, maxResults int) []*core.ScoredPost {
	kept := make([]*core.ScoredPost, 0, len(scored))
	for _, sp := range scored {
		if sp.SimilarityScore >= minSimilarity {
			kept = append(kept, sp)
		}
	}

	sort.SliceStable(kept, func(i, j int) bool {
		if kept[i].SimilarityScore != kept[j].SimilarityScore {
			return kept[i].SimilarityScore > kept[j].SimilarityScore
		}
		if kept[i].Post.Score != kept[j].Post.Score {
			return kept[i].Post.Score > kept[j].Post.Score
		}
		return kept[i].Post.ID < kept[j].Post.ID
	})

	if maxResults > 0 && len(kept) > maxResults {
		kept = kept[:maxResults]
	}
	return kept
}
