package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/poiesic/leadrank/core"
)

// postDump is the JSON wire shape of a candidate post.
type postDump struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Body             string    `json:"body"`
	URL              string    `json:"url"`
	Score            int       `json:"score"`
	CreatedAt        time.Time `json:"created_at"`
	CommentCount     int       `json:"comment_count"`
	Group            string    `json:"group"`
	GroupSubscribers int       `json:"group_subscribers"`
	Author           string    `json:"author"`
	Flair            string    `json:"flair"`
}

// scoredDump is the JSON wire shape of one ranked result.
type scoredDump struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	URL             string  `json:"url"`
	Group           string  `json:"group"`
	Popularity      int     `json:"popularity"`
	SimilarityScore float64 `json:"similarity_score"`
	PrimaryScore    float64 `json:"primary_score"`
	SecondaryScore  float64 `json:"secondary_score"`
	SemanticScore   float64 `json:"semantic_score,omitempty"`
	Sentiment       string  `json:"sentiment,omitempty"`
	SentimentScore  float64 `json:"sentiment_score,omitempty"`
	Intent          string  `json:"intent,omitempty"`
	IntentScore     float64 `json:"intent_score,omitempty"`
	PromoScore      float64 `json:"promo_score,omitempty"`
}

// loadPosts reads a JSON array of posts from the given file.
func loadPosts(path string) ([]*core.Post, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var dumps []postDump
	if err := json.Unmarshal(data, &dumps); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	posts := make([]*core.Post, len(dumps))
	for i, d := range dumps {
		posts[i] = &core.Post{
			ID:               d.ID,
			Title:            d.Title,
			Body:             d.Body,
			URL:              d.URL,
			Score:            d.Score,
			CreatedAt:        d.CreatedAt,
			CommentCount:     d.CommentCount,
			Group:            d.Group,
			GroupSubscribers: d.GroupSubscribers,
			Author:           d.Author,
			Flair:            d.Flair,
		}
	}
	return posts, nil
}

// writeResults renders ranked posts as indented JSON.
func writeResults(w io.Writer, posts []*core.ScoredPost) error {
	dumps := make([]scoredDump, len(posts))
	for i, sp := range posts {
		dumps[i] = scoredDump{
			ID:              sp.Post.ID,
			Title:           sp.Post.Title,
			URL:             sp.Post.URL,
			Group:           sp.Post.Group,
			Popularity:      sp.Post.Score,
			SimilarityScore: sp.SimilarityScore,
			PrimaryScore:    sp.PrimaryScore,
			SecondaryScore:  sp.SecondaryScore,
			SemanticScore:   sp.SemanticScore,
			Sentiment:       sp.Sentiment,
			SentimentScore:  sp.SentimentScore,
			Intent:          sp.Intent,
			IntentScore:     sp.IntentScore,
			PromoScore:      sp.PromoScore,
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(dumps)
}
