package source

import (
	"context"
	"strings"
	"time"

	"github.com/poiesic/leadrank/core"
)

// Static is a Source backed by a fixed, in-memory post slice. It filters
// locally by keyword match the way a streaming source would, which makes it
// useful for ranking pre-fetched dumps and for tests.
type Static struct {
	posts []*core.Post
}

// FromPosts creates a Static source over the given posts.
// The slice is not copied; callers must not mutate it afterwards.
func FromPosts(posts []*core.Post) *Static {
	return &Static{posts: posts}
}

// Search returns posts whose title+body matches the query, in input order.
// A post matches when all words of at least one quoted query term appear in
// its text. The recency window is applied against the newest post in the set
// so dumps captured earlier remain searchable.
func (s *Static) Search(ctx context.Context, query string, window core.RecencyWindow, limit int) ([]*core.Post, error) {
	terms := parseQueryTerms(query)

	cutoff, bounded := window.Cutoff(s.newestCreation())

	out := make([]*core.Post, 0, len(s.posts))
	for _, post := range s.posts {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if bounded && post.CreatedAt.Before(cutoff) {
			continue
		}
		if !matchesAnyTerm(post.Text(), terms) {
			continue
		}
		out = append(out, post)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}

// newestCreation returns the creation time of the newest post in the set.
// Window cutoffs for static dumps are anchored here rather than at the wall
// clock, so dumps captured earlier remain searchable.
func (s *Static) newestCreation() time.Time {
	var newest time.Time
	for _, p := range s.posts {
		if p.CreatedAt.After(newest) {
			newest = p.CreatedAt
		}
	}
	if newest.IsZero() {
		newest = time.Now()
	}
	return newest
}

// parseQueryTerms splits a query of the form `"kw one" OR "kw two"` into its
// quoted terms. Unquoted queries yield a single term.
func parseQueryTerms(query string) []string {
	var terms []string
	rest := query
	for {
		open := strings.IndexByte(rest, '"')
		if open < 0 {
			break
		}
		rest = rest[open+1:]
		close := strings.IndexByte(rest, '"')
		if close < 0 {
			break
		}
		if term := strings.TrimSpace(rest[:close]); term != "" {
			terms = append(terms, term)
		}
		rest = rest[close+1:]
	}
	if len(terms) == 0 {
		if term := strings.TrimSpace(query); term != "" {
			terms = []string{term}
		}
	}
	return terms
}

// matchesAnyTerm reports whether every word of at least one term appears in
// the text, case-insensitively.
func matchesAnyTerm(text string, terms []string) bool {
	if len(terms) == 0 {
		return true
	}
	words := make(map[string]bool)
	for _, w := range strings.Fields(strings.ToLower(text)) {
		words[strings.Trim(w, ".,!?;:'\"()[]{}")] = true
	}
	for _, term := range terms {
		all := true
		for _, w := range strings.Fields(strings.ToLower(term)) {
			if !words[w] {
				all = false
				break
			}
		}
		if all {
			return true
		}
	}
	return false
}
