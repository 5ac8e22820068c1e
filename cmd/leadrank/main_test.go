package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/poiesic/leadrank/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitList(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"simple", "coffee,espresso", []string{"coffee", "espresso"}},
		{"spaces trimmed", " coffee , espresso ", []string{"coffee", "espresso"}},
		{"empty entries dropped", "coffee,,espresso,", []string{"coffee", "espresso"}},
		{"blank", "   ", nil},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitList(tt.input))
		})
	}
}

func TestLoadPosts(t *testing.T) {
	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	dump := []postDump{
		{
			ID:               "abc",
			Title:            "Espresso advice",
			Body:             "Which machine?",
			URL:              "https://example.com/abc",
			Score:            12,
			CreatedAt:        created,
			CommentCount:     3,
			Group:            "homebarista",
			GroupSubscribers: 9000,
			Author:           "alice",
		},
	}
	data, err := json.Marshal(dump)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "posts.json")
	require.NoError(t, os.WriteFile(path, data, 0644))

	posts, err := loadPosts(path)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "abc", posts[0].ID)
	assert.Equal(t, "alice", posts[0].Author)
	assert.True(t, created.Equal(posts[0].CreatedAt))
}

func TestLoadPostsMissingFile(t *testing.T) {
	_, err := loadPosts(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadPostsInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := loadPosts(path)
	assert.Error(t, err)
}

func TestWriteResults(t *testing.T) {
	posts := []*core.ScoredPost{
		{
			Post:            &core.Post{ID: "abc", Title: "Espresso advice", Score: 12},
			SimilarityScore: 0.8,
			PrimaryScore:    0.9,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, writeResults(&buf, posts))

	var decoded []scoredDump
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "abc", decoded[0].ID)
	assert.InDelta(t, 0.8, decoded[0].SimilarityScore, 1e-9)
	assert.Equal(t, 12, decoded[0].Popularity)
}
