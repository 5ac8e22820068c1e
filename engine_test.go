package leadrank

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/poiesic/leadrank/core"
	"github.com/poiesic/leadrank/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recentTime() time.Time {
	return time.Now().UTC().Add(-2 * time.Hour)
}

func TestNewEngine(t *testing.T) {
	t.Run("create new engine", func(t *testing.T) {
		tmpDir := filepath.Join(t.TempDir(), "test_db")
		engine, err := NewEngine(tmpDir, WithoutAI())
		require.NoError(t, err)
		require.NotNil(t, engine)
		defer engine.Close()

		assert.NotNil(t, engine.SeenRepository())
		assert.NotNil(t, engine.backend)
		assert.NotNil(t, engine.logger)
		assert.Nil(t, engine.provider)
	})

	t.Run("error with invalid path", func(t *testing.T) {
		// Try to create an engine at a file path instead of a directory.
		tmpFile := filepath.Join(t.TempDir(), "not_a_dir")
		err := os.WriteFile(tmpFile, []byte("test"), 0644)
		require.NoError(t, err)

		engine, err := NewEngine(tmpFile, WithoutAI())
		assert.Error(t, err)
		assert.Nil(t, engine)
	})
}

func TestEngine_Close(t *testing.T) {
	engine, err := NewEngine(t.TempDir(), WithoutAI())
	require.NoError(t, err)
	require.NotNil(t, engine)

	assert.NoError(t, engine.Close())
}

func TestEngine_NewPipeline(t *testing.T) {
	engine, err := NewEngine("", WithoutAI(), WithInMemoryStorage())
	require.NoError(t, err)
	defer engine.Close()

	posts := []*core.Post{{
		ID:               "a",
		Title:            "Espresso machine advice for coffee lovers",
		Body:             "Which espresso machine should I buy for my coffee bar?",
		URL:              "https://example.com/a",
		CreatedAt:        recentTime(),
		CommentCount:     4,
		Group:            "homebarista",
		GroupSubscribers: 9000,
		Author:           "alice",
	}}

	p, err := engine.NewPipeline(source.FromPosts(posts))
	require.NoError(t, err)
	defer p.Release()

	profile, err := core.NewProfile([]string{"coffee", "espresso"}, []string{"machine"})
	require.NoError(t, err)

	result, err := p.Run(context.Background(), profile)
	require.NoError(t, err)
	require.Len(t, result.Posts, 1)

	// Delivery history is wired through the engine's repository.
	second, err := p.Run(context.Background(), profile)
	require.NoError(t, err)
	assert.Empty(t, second.Posts)
}
