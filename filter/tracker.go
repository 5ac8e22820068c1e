package filter

import "github.com/poiesic/leadrank/core"

// Tracker deduplicates posts across shards within one pipeline run. It keys
// on (author, normalized title), so the same post surfaced by overlapping
// shard queries, or cross-posted to multiple groups, is admitted once.
//
// A Tracker is scoped to a single run and is not safe for concurrent use;
// the pipeline deduplicates the merged pool serially.
type Tracker struct {
	seen map[core.ID]struct{}
}

// NewTracker creates a Tracker, optionally seeded with identity keys of
// previously delivered posts so they are never re-surfaced. The seed map is
// copied; the caller keeps ownership.
func NewTracker(seed map[core.ID]struct{}) *Tracker {
	seen := make(map[core.ID]struct{}, len(seed))
	for id := range seed {
		seen[id] = struct{}{}
	}
	return &Tracker{seen: seen}
}

// Admit reports whether the post's identity key has not been seen before,
// recording it if so. Posts without an author have no identity key and are
// always admitted.
func (t *Tracker) Admit(post *core.Post) bool {
	key, ok := post.IdentityKey()
	if !ok {
		return true
	}
	if _, dup := t.seen[key]; dup {
		return false
	}
	t.seen[key] = struct{}{}
	return true
}

// Len returns the number of identity keys recorded, including the seed.
func (t *Tracker) Len() int {
	return len(t.seen)
}
