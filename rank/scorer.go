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

package rank

import (
	"fmt"
	"strings"

	"github.com/poiesic/leadrank/core"
)

// ScorePool computes lexical relevance scores for the whole candidate pool
// against the profile's keyword tiers.
//
// The vector space is built once over {all post texts, primary query,
// secondary query}, so scores are only comparable within one call; scoring
// per-shard subsets separately would distort document frequencies. Per
// keyword tier the cosine similarity is averaged with the literal keyword
// coverage fraction, then the two tiers are fused with the profile weights:
//
//	score = PrimaryWeight*(primarySim+primaryCoverage)/2 +
//	        SecondaryWeight*(secondarySim+secondaryCoverage)/2
//
// Cosine over short noisy text is unreliable alone and literal presence
// ignores context; averaging the two keeps both precision and recall without
// a trained model. All returned scores are in [0,1], in input order.
func ScorePool(posts []*core.Post, profile *core.Profile) ([]*core.ScoredPost, error) {
	if len(posts) == 0 {
		return nil, nil
	}

	primary, secondary := EffectiveKeywords(profile)
	if len(primary) == 0 {
		return nil, fmt.Errorf("%w: profile has no usable keywords", ErrNoKeywords)
	}

	docs := make([]string, 0, len(posts)+2)
	for _, post := range posts {
		docs = append(docs, post.Text())
	}
	docs = append(docs, strings.Join(primary, " "), strings.Join(secondary, " "))

	vectors := newVectorizer().FitTransform(docs)
	primaryQuery := vectors[len(vectors)-2]
	secondaryQuery := vectors[len(vectors)-1]

	scored := make([]*core.ScoredPost, len(posts))
	for i, post := range posts {
		primarySim := cosine(vectors[i], primaryQuery)
		secondarySim := cosine(vectors[i], secondaryQuery)
		primaryCov, secondaryCov := coverage(post.Text(), primary, secondary)

		combinedPrimary := (primarySim + primaryCov) / 2
		combinedSecondary := (secondarySim + secondaryCov) / 2

		scored[i] = &core.ScoredPost{
			Post:           post,
			PrimaryScore:   clamp01(combinedPrimary),
			SecondaryScore: clamp01(combinedSecondary),
			SimilarityScore: clamp01(profile.PrimaryWeight*combinedPrimary +
				profile.SecondaryWeight*combinedSecondary),
		}
	}
	return scored, nil
}

// coverage returns the fraction of each keyword tier literally present in
// the text, case-insensitive. An empty secondary tier scores zero.
func coverage(text string, primary, secondary []string) (float64, float64) {
	lower := strings.ToLower(text)

	count := func(keywords []string) float64 {
		if len(keywords) == 0 {
			return 0
		}
		var matches int
		for _, kw := range keywords {
			if strings.Contains(lower, strings.ToLower(kw)) {
				matches++
			}
		}
		return float64(matches) / float64(len(keywords))
	}
	return count(primary), count(secondary)
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
