// Package engage re-scores ranked posts for outbound engagement.
//
// The Scorer fuses semantic similarity to a product description with
// sentiment and intent classification into a single promotion-worthiness
// score, then re-sorts the batch by it. The stage is optional: on provider
// failure the caller keeps the lexical ranking.
package engage
