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


package core

import (
	"fmt"
	"math"
	"strings"
)

// weightEpsilon tolerates float arithmetic when checking the 1.0 weight sum.
const weightEpsilon = 1e-9

// ValidateProfile validates a Profile according to domain rules.
//
// Validation rules:
//   - PrimaryKeywords must contain at least one non-blank entry
//   - PrimaryWeight + SecondaryWeight must equal 1.0
//   - MinSimilarity must be in [0,1]
//   - MaxResults must not be negative
//
// A validation failure is a caller error and fatal for the request only.
func ValidateProfile(p *Profile) error {
	if p == nil {
		return fmt.Errorf("%w: profile is nil", ErrInvalidProfile)
	}

	if len(usableKeywords(p.PrimaryKeywords)) == 0 && len(usableKeywords(p.SecondaryKeywords)) == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidProfile, ErrNoPrimaryKeywords)
	}

	if math.Abs(p.PrimaryWeight+p.SecondaryWeight-1.0) > weightEpsilon {
		return fmt.Errorf("%w: %w (got %.3f + %.3f)",
			ErrInvalidProfile, ErrInvalidWeights, p.PrimaryWeight, p.SecondaryWeight)
	}

	if p.MinSimilarity < 0 || p.MinSimilarity > 1 {
		return fmt.Errorf("%w: %w (got %.3f)", ErrInvalidProfile, ErrInvalidMinSimilarity, p.MinSimilarity)
	}

	if p.MaxResults < 0 {
		return fmt.Errorf("%w: %w (got %d)", ErrInvalidProfile, ErrNegativeMaxResults, p.MaxResults)
	}

	return nil
}

// ValidatePost validates a Post according to domain rules.
//
// Validation rules:
//   - ID, Title, URL must not be empty
//   - CreatedAt must not be zero
//
// NOT validated:
//   - Author (an empty author means the post is never deduplicated)
//   - Body (empty bodies are an admission-policy decision, not a model error)
func ValidatePost(post *Post) error {
	if post == nil {
		return fmt.Errorf("%w: post is nil", ErrInvalidPost)
	}

	if post.ID == "" {
		return fmt.Errorf("%w: %w", ErrInvalidPost, ErrMissingPostID)
	}

	if post.Title == "" {
		return fmt.Errorf("%w: %w", ErrInvalidPost, ErrMissingTitle)
	}

	if post.URL == "" {
		return fmt.Errorf("%w: %w", ErrInvalidPost, ErrMissingURL)
	}

	if post.CreatedAt.IsZero() {
		return fmt.Errorf("%w: %w", ErrInvalidPost, ErrMissingCreatedAt)
	}

	return nil
}

// usableKeywords filters out blank keyword entries.
func usableKeywords(keywords []string) []string {
	out := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		if strings.TrimSpace(kw) != "" {
			out = append(out, kw)
		}
	}
	return out
}
