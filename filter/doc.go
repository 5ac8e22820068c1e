// Package filter provides rule-based admission control and cross-shard
// deduplication for raw candidate posts.
//
// The Filter rejects promotional, hiring, stale, and low-signal posts using
// fixed heuristics; the Tracker rejects duplicates by (author, normalized
// title) identity, optionally seeded with previously delivered posts. Both
// run before any scoring so the lexical vector space is built only over
// posts worth ranking.
package filter
