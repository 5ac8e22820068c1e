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

package filter

import (
	"regexp"
	"strings"
	"time"

	"github.com/poiesic/leadrank/core"
)

// Reason identifies which admission rule rejected a post.
type Reason string

const (
	ReasonAdmitted      Reason = ""
	ReasonInvalid       Reason = "invalid"
	ReasonEmptyBody     Reason = "empty_body"
	ReasonPrefixTag     Reason = "prefix_tag"
	ReasonPromoPattern  Reason = "promo_pattern"
	ReasonPromoFlair    Reason = "promo_flair"
	ReasonPromoTerm     Reason = "promo_term"
	ReasonLinkWall      Reason = "link_wall"
	ReasonBodyTooLong   Reason = "body_too_long"
	ReasonStale         Reason = "stale"
	ReasonSmallGroup    Reason = "small_group"
	ReasonExcludedGroup Reason = "excluded_group"
)

const (
	// DefaultMaxBodyChars caps the body length of an admitted post.
	DefaultMaxBodyChars = 2500
	// DefaultMinGroupSubscribers is the subscriber floor for source groups.
	DefaultMinGroupSubscribers = 100
	// DefaultMinCommentsForEmptyBody is the comment count at which a
	// body-less post is still considered worth surfacing.
	DefaultMinCommentsForEmptyBody = 3

	linkWallMinWords    = 300
	linkWallMaxHeaders  = 3
	linkWallMaxBullets  = 3
	linkWallMinComments = 3
)

// Config controls the admission rules.
type Config struct {
	// MaxBodyChars rejects posts with bodies longer than this many
	// characters. Zero selects DefaultMaxBodyChars.
	MaxBodyChars int

	// MinGroupSubscribers rejects posts from groups smaller than this.
	// Groups reporting zero subscribers are treated as unknown-size and
	// pass the floor. Zero selects DefaultMinGroupSubscribers.
	MinGroupSubscribers int

	// MinCommentsForEmptyBody admits a body-less post when its comment
	// count is at least this value. Zero selects the default.
	MinCommentsForEmptyBody int

	// Window bounds how old an admitted post may be.
	Window core.RecencyWindow

	// ExcludedGroups are source-group names that are never admitted.
	// Matching is case-insensitive.
	ExcludedGroups map[string]struct{}

	// Now supplies the evaluation time for recency checks. Nil means
	// time.Now.
	Now func() time.Time
}

var (
	prefixTagPattern = regexp.MustCompile(`^[\[(](hiring|ad|advertisement|sponsored|promo|promotion|deal|sale|discount|giveaway|contest|affiliate|referral)[\])]`)

	promoPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\d+%\s*off`),
		regexp.MustCompile(`save\s*\$?\d+`),
		regexp.MustCompile(`limited\s*time\s*offer`),
		regexp.MustCompile(`click\s*here\s*to`),
		regexp.MustCompile(`dm\s*for\s*promo`),
		regexp.MustCompile(`(discount|promo)\s*code`),
		regexp.MustCompile(`exclusive\s*offer`),
		regexp.MustCompile(`special\s*price`),
		regexp.MustCompile(`^now\s*available`),
		regexp.MustCompile(`(buy|order)\s*now`),
		regexp.MustCompile(`sale\s*ends`),
	}

	urlPattern = regexp.MustCompile(`https?://\S+|\[[^\]]+\]\([^)]+\)`)

	flairTerms = []string{"ad", "sponsored", "advertisement", "promotion"}
)

// Filter applies rule-based admission control to raw candidate posts.
// A Filter is stateless and safe for concurrent use.
type Filter struct {
	cfg Config
}

// New creates a Filter, substituting defaults for zero-valued limits.
func New(cfg Config) *Filter {
	if cfg.MaxBodyChars <= 0 {
		cfg.MaxBodyChars = DefaultMaxBodyChars
	}
	if cfg.MinGroupSubscribers <= 0 {
		cfg.MinGroupSubscribers = DefaultMinGroupSubscribers
	}
	if cfg.MinCommentsForEmptyBody <= 0 {
		cfg.MinCommentsForEmptyBody = DefaultMinCommentsForEmptyBody
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Filter{cfg: cfg}
}

// Admit reports whether the post passes every admission rule. When it does
// not, the returned Reason names the first rule that rejected it. Rules
// grant no partial credit.
func (f *Filter) Admit(post *core.Post) (bool, Reason) {
	if post == nil || core.ValidatePost(post) != nil {
		return false, ReasonInvalid
	}

	title := strings.ToLower(post.Title)
	body := strings.ToLower(post.Body)

	if strings.TrimSpace(body) == "" {
		// A body-less post with an active discussion is still a lead;
		// anything quieter is noise.
		if post.CommentCount < f.cfg.MinCommentsForEmptyBody {
			return false, ReasonEmptyBody
		}
		body = ""
	}

	if prefixTagPattern.MatchString(title) || prefixTagPattern.MatchString(body) ||
		strings.HasPrefix(title, "hiring:") {
		return false, ReasonPrefixTag
	}

	for _, p := range promoPatterns {
		if p.MatchString(title) {
			return false, ReasonPromoPattern
		}
	}

	if post.Flair != "" {
		flair := strings.ToLower(post.Flair)
		for _, term := range flairTerms {
			if strings.Contains(flair, term) {
				return false, ReasonPromoFlair
			}
		}
	}

	if strings.Contains(title, "coupon code") || strings.Contains(title, "promo code") ||
		strings.Contains(title, "hiring") || strings.Contains(title, "hire") ||
		strings.Contains(body, "coupon code") || strings.Contains(body, "promo code") ||
		strings.Contains(body, "hiring") {
		return false, ReasonPromoTerm
	}

	if isLinkWall(body, post.CommentCount) {
		return false, ReasonLinkWall
	}

	if len(post.Body) > f.cfg.MaxBodyChars {
		return false, ReasonBodyTooLong
	}

	if cutoff, ok := f.cfg.Window.Cutoff(f.cfg.Now()); ok && post.CreatedAt.Before(cutoff) {
		return false, ReasonStale
	}

	if post.GroupSubscribers > 0 && post.GroupSubscribers < f.cfg.MinGroupSubscribers {
		return false, ReasonSmallGroup
	}

	if len(f.cfg.ExcludedGroups) > 0 {
		if _, excluded := f.cfg.ExcludedGroups[strings.ToLower(post.Group)]; excluded {
			return false, ReasonExcludedGroup
		}
	}

	return true, ReasonAdmitted
}

// isLinkWall detects long link-heavy marketing copy: a body that carries a
// URL, runs past 300 words, is structured with more than three markdown
// headers and more than three bullet lines, yet has attracted fewer than
// three comments.
func isLinkWall(body string, commentCount int) bool {
	if commentCount >= linkWallMinComments {
		return false
	}
	if !urlPattern.MatchString(body) {
		return false
	}
	if len(strings.Fields(body)) <= linkWallMinWords {
		return false
	}

	var headers, bullets int
	for _, line := range strings.Split(body, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "#") {
			headers++
		}
		if strings.HasPrefix(trimmed, "*") || strings.HasPrefix(trimmed, "-") ||
			strings.HasPrefix(trimmed, "+") {
			bullets++
		}
	}
	return headers > linkWallMaxHeaders && bullets > linkWallMaxBullets
}
