package filter

import (
	"strings"
	"testing"
	"time"

	"github.com/poiesic/leadrank/core"
	"github.com/stretchr/testify/assert"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func testFilter(cfg Config) *Filter {
	if cfg.Now == nil {
		cfg.Now = func() time.Time { return testNow }
	}
	return New(cfg)
}

func validPost() *core.Post {
	return &core.Post{
		ID:               "abc123",
		Title:            "Looking for advice on my setup",
		Body:             "I have been struggling with this for a while and would love input.",
		URL:              "https://example.com/posts/abc123",
		Score:            42,
		CreatedAt:        testNow.Add(-2 * time.Hour),
		CommentCount:     5,
		Group:            "homebarista",
		GroupSubscribers: 12000,
		Author:           "espresso_fan",
	}
}

func TestAdmitValidPost(t *testing.T) {
	f := testFilter(Config{})
	ok, reason := f.Admit(validPost())
	assert.True(t, ok)
	assert.Equal(t, ReasonAdmitted, reason)
}

func TestAdmitRejections(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*core.Post)
		cfg    Config
		reason Reason
	}{
		{
			name:   "missing title",
			modify: func(p *core.Post) { p.Title = "" },
			reason: ReasonInvalid,
		},
		{
			name: "empty body with quiet thread",
			modify: func(p *core.Post) {
				p.Body = "   "
				p.CommentCount = 1
			},
			reason: ReasonEmptyBody,
		},
		{
			name:   "hiring bracket tag",
			modify: func(p *core.Post) { p.Title = "[hiring] Looking for a marketer" },
			reason: ReasonPrefixTag,
		},
		{
			name:   "sponsored paren tag",
			modify: func(p *core.Post) { p.Title = "(sponsored) Our new grinder" },
			reason: ReasonPrefixTag,
		},
		{
			name:   "hiring colon prefix",
			modify: func(p *core.Post) { p.Title = "Hiring: growth marketer" },
			reason: ReasonPrefixTag,
		},
		{
			name:   "percent off",
			modify: func(p *core.Post) { p.Title = "Get 50% off this weekend" },
			reason: ReasonPromoPattern,
		},
		{
			name:   "limited time offer",
			modify: func(p *core.Post) { p.Title = "Limited time offer on beans" },
			reason: ReasonPromoPattern,
		},
		{
			name:   "buy now",
			modify: func(p *core.Post) { p.Title = "Buy now before the sale ends" },
			reason: ReasonPromoPattern,
		},
		{
			name:   "promo flair",
			modify: func(p *core.Post) { p.Flair = "Sponsored" },
			reason: ReasonPromoFlair,
		},
		{
			name:   "promo code in body",
			modify: func(p *core.Post) { p.Body = "use my promo code LATTE10 at checkout" },
			reason: ReasonPromoTerm,
		},
		{
			name:   "hiring in body",
			modify: func(p *core.Post) { p.Body = "we are hiring baristas" },
			reason: ReasonPromoTerm,
		},
		{
			name:   "body over cap",
			modify: func(p *core.Post) { p.Body = strings.Repeat("a", 3000) },
			cfg:    Config{MaxBodyChars: 2500},
			reason: ReasonBodyTooLong,
		},
		{
			name:   "stale under day window",
			modify: func(p *core.Post) { p.CreatedAt = testNow.Add(-25 * time.Hour) },
			cfg:    Config{Window: core.WindowDay},
			reason: ReasonStale,
		},
		{
			name:   "tiny group",
			modify: func(p *core.Post) { p.GroupSubscribers = 40 },
			reason: ReasonSmallGroup,
		},
		{
			name:   "excluded group",
			modify: func(p *core.Post) { p.Group = "Deals" },
			cfg:    Config{ExcludedGroups: map[string]struct{}{"deals": {}}},
			reason: ReasonExcludedGroup,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := testFilter(tt.cfg)
			post := validPost()
			tt.modify(post)
			ok, reason := f.Admit(post)
			assert.False(t, ok)
			assert.Equal(t, tt.reason, reason)
		})
	}
}

func TestAdmitEmptyBodyWithActiveThread(t *testing.T) {
	f := testFilter(Config{})
	post := validPost()
	post.Body = ""
	post.CommentCount = 3
	ok, reason := f.Admit(post)
	assert.True(t, ok)
	assert.Equal(t, ReasonAdmitted, reason)
}

func TestAdmitRecentUnderDayWindow(t *testing.T) {
	f := testFilter(Config{Window: core.WindowDay})
	post := validPost()
	post.CreatedAt = testNow.Add(-2 * time.Hour)
	ok, _ := f.Admit(post)
	assert.True(t, ok)
}

func TestAdmitUnknownGroupSizePassesFloor(t *testing.T) {
	f := testFilter(Config{})
	post := validPost()
	post.GroupSubscribers = 0
	ok, _ := f.Admit(post)
	assert.True(t, ok)
}

func TestHiringTagRejectedRegardlessOfBody(t *testing.T) {
	f := testFilter(Config{})
	post := validPost()
	post.Title = "[hiring] Looking for a marketer"
	post.Body = "Completely ordinary discussion text about espresso machines."
	ok, reason := f.Admit(post)
	assert.False(t, ok)
	assert.Equal(t, ReasonPrefixTag, reason)
}

func TestLinkWallRejected(t *testing.T) {
	var b strings.Builder
	b.WriteString("Check this out https://example.com/tool\n")
	for i := 0; i < 5; i++ {
		b.WriteString("# Key Features\n")
		b.WriteString("* fast\n")
	}
	filler := strings.Repeat("word ", 400)
	// Keep under the body cap so only the link-wall rule can fire.
	b.WriteString(filler[:2000])

	f := testFilter(Config{})
	post := validPost()
	post.Body = b.String()
	post.CommentCount = 1

	ok, reason := f.Admit(post)
	assert.False(t, ok)
	assert.Equal(t, ReasonLinkWall, reason)
}
