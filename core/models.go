package core

import (
	"encoding/binary"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated using content-based hashing.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// RecencyWindow bounds how far back candidate posts may have been created.
type RecencyWindow int

const (
	// WindowAll applies no recency bound.
	WindowAll RecencyWindow = iota
	// WindowDay keeps posts created within the last 24 hours.
	WindowDay
	// WindowWeek keeps posts created within the last 7 days.
	WindowWeek
	// WindowMonth keeps posts created within the last 30 days.
	WindowMonth
)

// String returns the window name used in configuration and CLI flags.
func (w RecencyWindow) String() string {
	switch w {
	case WindowDay:
		return "day"
	case WindowWeek:
		return "week"
	case WindowMonth:
		return "month"
	default:
		return "all"
	}
}

// ParseRecencyWindow parses a window name ("all", "day", "week", "month").
func ParseRecencyWindow(s string) (RecencyWindow, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return WindowAll, nil
	case "day":
		return WindowDay, nil
	case "week":
		return WindowWeek, nil
	case "month":
		return WindowMonth, nil
	default:
		return WindowAll, fmt.Errorf("%w: %q", ErrInvalidWindow, s)
	}
}

// Cutoff returns the earliest creation time admitted by the window relative
// to now. ok is false for WindowAll, which admits any creation time.
func (w RecencyWindow) Cutoff(now time.Time) (cutoff time.Time, ok bool) {
	switch w {
	case WindowDay:
		return now.Add(-24 * time.Hour), true
	case WindowWeek:
		return now.Add(-7 * 24 * time.Hour), true
	case WindowMonth:
		return now.Add(-30 * 24 * time.Hour), true
	default:
		return time.Time{}, false
	}
}

// Profile describes what "relevant" means for one ranking request.
// A Profile is immutable once validated; the pipeline never writes to it.
type Profile struct {
	PrimaryKeywords   []string
	SecondaryKeywords []string
	PrimaryWeight     float64 // Weight of the primary keyword tier; defaults to 0.7
	SecondaryWeight   float64 // Weight of the secondary keyword tier; defaults to 0.3
	MinSimilarity     float64 // Minimum fused score for a post to be returned
	MaxResults        int     // Result cap; 0 means unlimited
	Window            RecencyWindow
	ExcludedGroups    map[string]struct{} // Source groups never admitted
	Seen              map[ID]struct{}     // Identity keys delivered previously, never re-surfaced
	Description       string              // Free-text product description for the engage stage
}

// NewProfile creates a validated profile with default weights (0.7/0.3) and
// a default similarity threshold of 0.2.
func NewProfile(primary, secondary []string) (*Profile, error) {
	p := &Profile{
		PrimaryKeywords:   primary,
		SecondaryKeywords: secondary,
		PrimaryWeight:     0.7,
		SecondaryWeight:   0.3,
		MinSimilarity:     0.2,
	}
	if err := ValidateProfile(p); err != nil {
		return nil, err
	}
	return p, nil
}

// Key returns a stable identifier used to scope persisted delivery history.
// It hashes both keyword tiers, so profiles with the same keywords share
// seen entries.
func (p *Profile) Key() string {
	var b strings.Builder
	for _, kw := range p.PrimaryKeywords {
		b.WriteString(strings.ToLower(strings.TrimSpace(kw)))
		b.WriteByte('\x00')
	}
	b.WriteByte('\x1f')
	for _, kw := range p.SecondaryKeywords {
		b.WriteString(strings.ToLower(strings.TrimSpace(kw)))
		b.WriteByte('\x00')
	}
	return fmt.Sprintf("%016x", uint64(IDFromContent(b.String())))
}

// Post is a raw candidate item as returned by a candidate source.
// Posts are read-only after creation; ownership transfers in pipeline order.
type Post struct {
	ID               string
	Title            string
	Body             string
	URL              string
	Score            int // Source-native popularity score
	CreatedAt        time.Time
	CommentCount     int
	Group            string // Source-group name (e.g. a subreddit)
	GroupSubscribers int
	Author           string // Empty when the author is deleted or unavailable
	Flair            string
}

// Text returns the combined title and body used for all scoring.
func (p *Post) Text() string {
	return p.Title + " " + p.Body
}

// NormalizeTitle lower-cases a title and strips all whitespace.
// Used to build identity keys that survive minor cross-post edits.
func NormalizeTitle(title string) string {
	var b strings.Builder
	b.Grow(len(title))
	for _, r := range strings.ToLower(title) {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// IdentityKey returns the deduplication key for the post, hashed from
// (author, normalized title). ok is false when the post has no author, in
// which case the post is treated as always-novel and never deduplicated.
func (p *Post) IdentityKey() (ID, bool) {
	if p.Author == "" {
		return 0, false
	}
	return IDFromContent(p.Author + "\x00" + NormalizeTitle(p.Title)), true
}

// ScoredPost wraps a surviving Post with its relevance scores.
// Lexical fields are set by the rank scorer; the remaining fields are set by
// the engage stage. A ScoredPost is immutable once scores are attached.
type ScoredPost struct {
	Post *Post

	// Lexical stage
	SimilarityScore float64 // Final fused score, in [0,1]
	PrimaryScore    float64 // Combined primary similarity + coverage, in [0,1]
	SecondaryScore  float64 // Combined secondary similarity + coverage, in [0,1]

	// Engage stage
	SemanticScore  float64 // Cosine similarity to the profile description
	Sentiment      string  // "positive" or "negative"
	SentimentScore float64 // Sentiment confidence, in [0,1]
	Intent         string  // Top intent label
	IntentScore    float64 // Intent confidence, in [0,1]
	PromoScore     float64 // Fused promotion-worthiness score
}
