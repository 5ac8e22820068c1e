package core

import (
	"errors"
	"testing"
	"time"
)

func TestValidateProfile(t *testing.T) {
	tests := []struct {
		name    string
		profile *Profile
		wantErr error
	}{
		{
			name: "valid profile",
			profile: &Profile{
				PrimaryKeywords:   []string{"coffee", "espresso"},
				SecondaryKeywords: []string{"machine"},
				PrimaryWeight:     0.7,
				SecondaryWeight:   0.3,
				MinSimilarity:     0.2,
				MaxResults:        10,
			},
			wantErr: nil,
		},
		{
			name: "sentinel primary with secondary keywords",
			profile: &Profile{
				PrimaryKeywords:   []string{""},
				SecondaryKeywords: []string{"coffee"},
				PrimaryWeight:     0.7,
				SecondaryWeight:   0.3,
			},
			wantErr: nil,
		},
		{
			name:    "nil profile",
			profile: nil,
			wantErr: ErrInvalidProfile,
		},
		{
			name: "no keywords at all",
			profile: &Profile{
				PrimaryKeywords: []string{"", "  "},
				PrimaryWeight:   0.7,
				SecondaryWeight: 0.3,
			},
			wantErr: ErrNoPrimaryKeywords,
		},
		{
			name: "weights do not sum to one",
			profile: &Profile{
				PrimaryKeywords: []string{"coffee"},
				PrimaryWeight:   0.7,
				SecondaryWeight: 0.4,
			},
			wantErr: ErrInvalidWeights,
		},
		{
			name: "negative min similarity",
			profile: &Profile{
				PrimaryKeywords: []string{"coffee"},
				PrimaryWeight:   0.7,
				SecondaryWeight: 0.3,
				MinSimilarity:   -0.1,
			},
			wantErr: ErrInvalidMinSimilarity,
		},
		{
			name: "min similarity above one",
			profile: &Profile{
				PrimaryKeywords: []string{"coffee"},
				PrimaryWeight:   0.7,
				SecondaryWeight: 0.3,
				MinSimilarity:   1.5,
			},
			wantErr: ErrInvalidMinSimilarity,
		},
		{
			name: "negative max results",
			profile: &Profile{
				PrimaryKeywords: []string{"coffee"},
				PrimaryWeight:   0.7,
				SecondaryWeight: 0.3,
				MaxResults:      -1,
			},
			wantErr: ErrNegativeMaxResults,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateProfile(tt.profile)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateProfile() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateProfile() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidatePost(t *testing.T) {
	validTime := time.Now().Add(-1 * time.Hour)

	valid := func() *Post {
		return &Post{
			ID:        "t3_abc",
			Title:     "Looking for an espresso machine",
			URL:       "https://example.com/t3_abc",
			CreatedAt: validTime,
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Post)
		wantErr error
	}{
		{
			name:    "valid post",
			mutate:  func(p *Post) {},
			wantErr: nil,
		},
		{
			name:    "valid post without author",
			mutate:  func(p *Post) { p.Author = "" },
			wantErr: nil,
		},
		{
			name:    "missing id",
			mutate:  func(p *Post) { p.ID = "" },
			wantErr: ErrMissingPostID,
		},
		{
			name:    "missing title",
			mutate:  func(p *Post) { p.Title = "" },
			wantErr: ErrMissingTitle,
		},
		{
			name:    "missing url",
			mutate:  func(p *Post) { p.URL = "" },
			wantErr: ErrMissingURL,
		},
		{
			name:    "zero created at",
			mutate:  func(p *Post) { p.CreatedAt = time.Time{} },
			wantErr: ErrMissingCreatedAt,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			post := valid()
			tt.mutate(post)

			err := ValidatePost(post)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidatePost() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidatePost() error = %v, want %v", err, tt.wantErr)
			}
			if !errors.Is(err, ErrInvalidPost) {
				t.Errorf("ValidatePost() error %v should wrap ErrInvalidPost", err)
			}
		})
	}

	t.Run("nil post", func(t *testing.T) {
		if err := ValidatePost(nil); !errors.Is(err, ErrInvalidPost) {
			t.Errorf("ValidatePost(nil) = %v", err)
		}
	})
}
