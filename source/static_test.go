package source

import (
	"context"
	"testing"
	"time"

	"github.com/poiesic/leadrank/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func staticPosts() []*core.Post {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return []*core.Post{
		{ID: "1", Title: "Best espresso machine for a small kitchen", CreatedAt: now},
		{ID: "2", Title: "My coffee grinder setup", Body: "espresso every morning", CreatedAt: now.Add(-2 * time.Hour)},
		{ID: "3", Title: "Gardening tips for spring", CreatedAt: now.Add(-48 * time.Hour)},
	}
}

func TestStaticSearch(t *testing.T) {
	ctx := context.Background()
	src := FromPosts(staticPosts())

	t.Run("quoted OR query matches any term", func(t *testing.T) {
		posts, err := src.Search(ctx, `"espresso machine" OR "gardening"`, core.WindowAll, 0)
		require.NoError(t, err)
		assert.Len(t, posts, 2)
	})

	t.Run("all words of a term must appear", func(t *testing.T) {
		posts, err := src.Search(ctx, `"espresso machine"`, core.WindowAll, 0)
		require.NoError(t, err)
		require.Len(t, posts, 1)
		assert.Equal(t, "1", posts[0].ID)
	})

	t.Run("unquoted query is a single term", func(t *testing.T) {
		posts, err := src.Search(ctx, "espresso", core.WindowAll, 0)
		require.NoError(t, err)
		assert.Len(t, posts, 2)
	})

	t.Run("window excludes old posts", func(t *testing.T) {
		posts, err := src.Search(ctx, "gardening", core.WindowDay, 0)
		require.NoError(t, err)
		assert.Empty(t, posts)
	})

	t.Run("limit caps results", func(t *testing.T) {
		posts, err := src.Search(ctx, "espresso", core.WindowAll, 1)
		require.NoError(t, err)
		assert.Len(t, posts, 1)
	})

	t.Run("no match returns empty", func(t *testing.T) {
		posts, err := src.Search(ctx, `"quantum computing"`, core.WindowAll, 0)
		require.NoError(t, err)
		assert.Empty(t, posts)
	})
}

func TestParseQueryTerms(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "two quoted terms", query: `"coffee" OR "espresso machine"`, want: []string{"coffee", "espresso machine"}},
		{name: "single quoted", query: `"coffee"`, want: []string{"coffee"}},
		{name: "unquoted", query: "coffee", want: []string{"coffee"}},
		{name: "empty", query: "", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseQueryTerms(tt.query))
		})
	}
}
