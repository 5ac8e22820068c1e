// Package rank turns an interest profile into search shards and a ranked
// result set.
//
// PlanShards splits the profile's primary keywords into overlapping
// pair-shards so each source query stays short while recall stays wide.
// ScorePool computes lexical relevance for the merged candidate pool in a
// single TF-IDF vector space, fusing cosine similarity with literal keyword
// coverage per keyword tier. Rank applies the similarity threshold, orders
// by (score, popularity), and bounds the result.
package rank
