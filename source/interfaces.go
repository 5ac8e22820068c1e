package source

import (
	"context"

	"github.com/poiesic/leadrank/core"
)

// Source is the candidate source adapter the ranking pipeline consumes.
// Implementations perform full-text search against a remote corpus (a social
// platform, a search index, a local dump) and return raw candidate posts.
// Implementations must be thread-safe: the pipeline issues shard queries
// concurrently.
type Source interface {
	// Search returns posts matching the query text, newest-first where the
	// backend supports it. The window bounds how old returned posts may be;
	// limit caps the number of posts returned (0 means backend default).
	//
	// Returned posts must populate at least: ID, Title, Body, URL, Score,
	// CreatedAt, CommentCount, Group, GroupSubscribers. Author and Flair are
	// optional. An error from one query must be treated as recoverable by
	// callers; it never aborts the pipeline.
	Search(ctx context.Context, query string, window core.RecencyWindow, limit int) ([]*core.Post, error)
}
