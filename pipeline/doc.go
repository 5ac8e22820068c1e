// Package pipeline orchestrates one ranking request from profile to ranked
// result set.
//
// A run plans overlapping keyword-pair shards, fetches each shard
// concurrently with a per-shard timeout, filters and deduplicates the merged
// pool, scores it lexically in a single vector space, ranks and bounds the
// survivors, and optionally re-scores them for engagement. Shard failures
// degrade recall but never abort a run.
package pipeline
