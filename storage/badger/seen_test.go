package badger

import (
	"context"
	"testing"
	"time"

	"github.com/poiesic/leadrank/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) *SeenRepository {
	t.Helper()
	repo, err := NewMemorySeenRepository()
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo.(*SeenRepository)
}

func TestAddAndGetSeen(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	now := time.Now().UTC()

	ids := []core.ID{
		core.IDFromContent("alice\x00firstpost"),
		core.IDFromContent("bob\x00secondpost"),
	}
	require.NoError(t, repo.AddSeen(ctx, "profile-1", now, ids...))

	seen, err := repo.GetSeen(ctx, "profile-1")
	require.NoError(t, err)
	require.Len(t, seen, 2)
	for _, id := range ids {
		assert.Contains(t, seen, id)
	}
}

func TestGetSeenUnknownProfile(t *testing.T) {
	repo := newTestRepo(t)

	seen, err := repo.GetSeen(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Empty(t, seen)
}

func TestSeenIsolatedPerProfile(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	now := time.Now().UTC()

	require.NoError(t, repo.AddSeen(ctx, "profile-1", now, core.ID(1)))
	require.NoError(t, repo.AddSeen(ctx, "profile-2", now, core.ID(2)))

	seen, err := repo.GetSeen(ctx, "profile-1")
	require.NoError(t, err)
	assert.Contains(t, seen, core.ID(1))
	assert.NotContains(t, seen, core.ID(2))
}

func TestAddSeenIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	now := time.Now().UTC()

	require.NoError(t, repo.AddSeen(ctx, "profile-1", now, core.ID(7)))
	require.NoError(t, repo.AddSeen(ctx, "profile-1", now.Add(time.Hour), core.ID(7)))

	seen, err := repo.GetSeen(ctx, "profile-1")
	require.NoError(t, err)
	assert.Len(t, seen, 1)
}

func TestPurgeSeenByCutoff(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	now := time.Now().UTC()

	require.NoError(t, repo.AddSeen(ctx, "profile-1", now.Add(-48*time.Hour), core.ID(1)))
	require.NoError(t, repo.AddSeen(ctx, "profile-1", now, core.ID(2)))

	removed, err := repo.PurgeSeen(ctx, "profile-1", now.Add(-time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	seen, err := repo.GetSeen(ctx, "profile-1")
	require.NoError(t, err)
	assert.NotContains(t, seen, core.ID(1))
	assert.Contains(t, seen, core.ID(2))
}

func TestPurgeSeenAll(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	now := time.Now().UTC()

	require.NoError(t, repo.AddSeen(ctx, "profile-1", now, core.ID(1), core.ID(2), core.ID(3)))

	removed, err := repo.PurgeSeen(ctx, "profile-1", time.Time{})
	require.NoError(t, err)
	assert.Equal(t, 3, removed)

	seen, err := repo.GetSeen(ctx, "profile-1")
	require.NoError(t, err)
	assert.Empty(t, seen)
}

func TestAddSeenNoIDs(t *testing.T) {
	repo := newTestRepo(t)
	assert.NoError(t, repo.AddSeen(context.Background(), "profile-1", time.Now()))
}

func TestSeenCancelledContext(t *testing.T) {
	repo := newTestRepo(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Error(t, repo.AddSeen(ctx, "profile-1", time.Now(), core.ID(1)))
	_, err := repo.GetSeen(ctx, "profile-1")
	assert.Error(t, err)
}
